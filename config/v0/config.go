// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package v0 provides the schema for v0 of the system config file for dc2ansible
//
// v0 allows for breaking changes without a major version increase
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// Config is the system configuration file for dc2ansible
//
// Every field except schema-version and aliases mirrors a CLI flag and
// provides its default, explicit flags always win
type Config struct {
	SchemaVersion   string                `json:"schema-version"`
	Aliases         config.AliasMap       `json:"aliases,omitempty"`
	DefaultsPrefix  string                `json:"defaults-prefix,omitempty"`
	SecretProvider  config.SecretProvider `json:"secret-provider,omitempty"`
	SecretTemplate  string                `json:"secret-string-template,omitempty"`
	MinSecretLength int                   `json:"min-secret-length,omitempty"`
	ExtProxyNet     string                `json:"ext-proxy-net,omitempty"`
	SecretPatterns  []string              `json:"secret-patterns,omitempty"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
	}

	if provider, ok := schema.Properties.Get("secret-provider"); ok && provider != nil {
		provider.Description = "Secret provider used for generated secret expressions"
		provider.Enum = []any{}
		for _, p := range config.AvailableSecretProviders() {
			provider.Enum = append(provider.Enum, p)
		}
	}

	if length, ok := schema.Properties.Get("min-secret-length"); ok && length != nil {
		length.Description = "Minimum length for generated secrets"
		length.Minimum = "1"
	}

	if patterns, ok := schema.Properties.Get("secret-patterns"); ok && patterns != nil {
		patterns.Description = "Additional regular expressions marking environment keys as secrets"
	}
}

// LoadConfig loads and validates a configuration document
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{
		SchemaVersion:  SchemaVersion,
		Aliases:        config.AliasMap{},
		SecretProvider: config.DefaultSecretProvider,
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var versioned struct {
		SchemaVersion string `json:"schema-version"`
	}
	if err := yaml.Unmarshal(data, &versioned); err != nil {
		return nil, err
	}

	switch version := versioned.SchemaVersion; version {
	case SchemaVersion:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		return cfg, Validate(cfg)
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// LoadDefaultConfig loads the configuration file from the default directory
//
// If the configuration file does not exist, this function returns a default valid but "empty" config
func LoadDefaultConfig() (*Config, error) {
	dir, err := config.DefaultDirectory()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, config.DefaultFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{
				SchemaVersion:  SchemaVersion,
				Aliases:        config.AliasMap{},
				SecretProvider: config.DefaultSecretProvider,
			}, nil
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	return cfg, nil
}

// Since every validation operation leverages the same config, only calculate it once to save some compute cycles
//
// This also prevents any schema changes from occuring at runtime
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(config *Config) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
