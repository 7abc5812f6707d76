// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package dc2ansible converts docker compose projects into the bootstrap
// document for an Ansible role.
package dc2ansible

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cast"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/compose"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/secrets"
)

const (
	// DefaultRoleName is the role name used when none is specified
	DefaultRoleName = "docker_"
	// DefaultSecretTemplate is the path template for stored secrets
	DefaultSecretTemplate = "services/{role_name}/{service_name}/{env_key}"
	// DefaultMinSecretLength is the minimum length for generated secrets
	DefaultMinSecretLength = 12
	// DefaultExternalProxyNet is the name of the external proxy network
	DefaultExternalProxyNet = "proxy-tier"
)

// Ansible variable names allow neither whitespace nor dashes
var normalizePattern = regexp.MustCompile(`[\s-]`)

// volumeIDPattern grabs the trailing path segment a bind mount's variable
// name derives from
var volumeIDPattern = regexp.MustCompile(`[\w._]+$`)

// dbImagePattern flags images of known database engines
var dbImagePattern = regexp.MustCompile(`(mariadb|postgres|redis)`)

// NormalizeName lowercases a name and folds whitespace and dashes to underscores
func NormalizeName(name string) string {
	return strings.ToLower(normalizePattern.ReplaceAllString(name, "_"))
}

// NormalizeDefaultsPrefix validates a defaults prefix and ensures it ends
// with an underscore
func NormalizeDefaultsPrefix(prefix string) (string, error) {
	if normalizePattern.MatchString(prefix) {
		return "", errors.New("defaults prefix contains invalid characters")
	}
	if !strings.HasSuffix(prefix, "_") {
		prefix += "_"
	}
	return prefix, nil
}

// ConvertOptions configures a single compose to role conversion
type ConvertOptions struct {
	// Project is the canonical project, usually rendered by docker compose config
	Project *compose.Document
	// Original is the compose document as written on disk, rewrites operate
	// on it so layout and vendor extensions survive canonicalization
	Original *compose.Document

	RoleName         string
	DefaultsPrefix   string
	SecretProvider   config.SecretProvider
	SecretTemplate   string
	MinSecretLength  int
	SecretPatterns   []string
	SecretRule       string
	ProxyContainer   string
	ExternalProxyNet string
	UID              int

	// FS is scanned for mounted env files, nil means the host filesystem
	FS afero.Fs
	// Dir anchors relative paths of the compose file, usually its directory
	Dir string
}

type converter struct {
	ConvertOptions

	classifier *SecretClassifier
	provider   secrets.Provider
	overrides  map[string]ServiceOverrides

	bootstrap     *Bootstrap
	servicesByEnv map[string][]string
	serviceTags   map[string]string
	logger        *log.Logger
}

// Convert turns a compose project into the bootstrap document for an
// Ansible role.
//
// Services are processed in name order, and when two services share an
// environment key the first one claims the default. The returned document
// is validated against the bootstrap schema.
func Convert(ctx context.Context, opts ConvertOptions) (*Bootstrap, error) {
	if opts.Project == nil || opts.Original == nil {
		return nil, errors.New("both the canonical and the original compose documents are required")
	}

	prefix, err := NormalizeDefaultsPrefix(opts.DefaultsPrefix)
	if err != nil {
		return nil, err
	}
	opts.DefaultsPrefix = prefix

	if opts.RoleName == "" {
		opts.RoleName = DefaultRoleName
	}
	if opts.SecretProvider == "" {
		opts.SecretProvider = config.DefaultSecretProvider
	}
	if opts.SecretTemplate == "" {
		opts.SecretTemplate = DefaultSecretTemplate
	}
	if opts.MinSecretLength <= 0 {
		opts.MinSecretLength = DefaultMinSecretLength
	}
	if opts.ExternalProxyNet == "" {
		opts.ExternalProxyNet = DefaultExternalProxyNet
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}

	provider := secrets.Get(string(opts.SecretProvider))
	if provider == nil {
		return nil, fmt.Errorf("unknown secret provider: %q", opts.SecretProvider)
	}

	classifier, err := NewSecretClassifier(opts.SecretPatterns, opts.SecretRule)
	if err != nil {
		return nil, err
	}

	c := &converter{
		ConvertOptions: opts,
		classifier:     classifier,
		provider:       provider,
		overrides:      map[string]ServiceOverrides{},
		servicesByEnv:  map[string][]string{},
		serviceTags:    map[string]string{},
		logger:         log.FromContext(ctx),
	}

	files := opts.Project.Files
	if files == nil {
		files = []string{}
	}

	c.bootstrap = &Bootstrap{
		RoleName:              NormalizeName(opts.RoleName),
		Defaults:              []Default{},
		AnsibleVars:           map[string]any{},
		ExampleDefaults:       map[string]any{},
		ComposeVarsFile:       map[string]any{},
		SecretProvider:        string(opts.SecretProvider),
		DefaultsPrefix:        opts.DefaultsPrefix,
		SecretStringTemplate:  opts.SecretTemplate,
		ComposeFiles:          slices.Clone(files),
		ComposeConfig:         opts.Project.Raw,
		FinalCompose:          map[string]any{},
		ServicesByEnv:         c.servicesByEnv,
		ProxyContainer:        opts.ProxyContainer,
		BackupPaths:           []string{},
		ExamplePlaybook:       []any{},
		ExposedPortsByService: map[string][]int{},
		VolumeDefaults:        map[string]string{},
		ImagesTags:            map[string]TagDefinition{},
		ExternalProxyNet:      opts.ExternalProxyNet,
		EnvFiles:              map[string]string{},
	}
	if c.bootstrap.ComposeConfig == nil {
		c.bootstrap.ComposeConfig = map[string]any{}
	}

	for _, name := range slices.Sorted(maps.Keys(opts.Project.Project.Services)) {
		if err := c.handleService(name); err != nil {
			return nil, fmt.Errorf("service %s: %w", name, err)
		}
	}
	c.addReleases()
	if err := c.renderFinalCompose(); err != nil {
		return nil, err
	}

	return c.bootstrap, Validate(c.bootstrap)
}

func (c *converter) handleService(name string) error {
	svc := c.Project.Project.Services[name]

	overrides, err := serviceOverrides(c.Project.RawServices()[name])
	if err != nil {
		return err
	}
	c.overrides[name] = overrides

	if err := c.handleEnvironment(name, svc); err != nil {
		return err
	}
	if err := c.handleVolumes(name, svc); err != nil {
		return err
	}
	c.handlePorts(name, svc)
	c.handleImage(name, svc)
	return nil
}

// handleEnvironment records a default for every environment variable of a
// service. env_file entries fold into environment during canonicalization,
// so the original document is consulted to map keys back to their file of
// origin.
func (c *converter) handleEnvironment(name string, svc compose.Service) error {
	env := svc.Environment.Entries()
	if len(env) == 0 {
		return nil
	}

	original := c.Original.Project.Services[name]
	keyToFile := map[string]string{}
	for _, envFile := range original.EnvFile.Paths() {
		entries, err := ParseEnvFile(c.FS, c.resolvePath(envFile), true)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			keyToFile[entry.Key] = envFile
		}
	}

	for _, key := range slices.Sorted(maps.Keys(env)) {
		if err := c.addEnvDefault(name, key, env[key], keyToFile[key]); err != nil {
			return err
		}
	}
	return nil
}

// scanMountedFile extracts defaults from a bind-mounted file when it opts
// in as a role-managed env file, see FileTypeEnv
func (c *converter) scanMountedFile(service, path string) error {
	resolved := c.resolvePath(path)
	info, err := c.FS.Stat(resolved)
	if err != nil || info.IsDir() {
		return nil
	}

	entries, err := ParseEnvFile(c.FS, resolved, false)
	if err != nil {
		c.logger.Warn("supposed env file could not be parsed", "path", resolved, "error", err)
		return nil
	}

	for _, entry := range entries {
		if err := c.addEnvDefault(service, entry.Key, entry.Value, path); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) handleVolumes(name string, svc compose.Service) error {
	for _, item := range svc.Volumes {
		mount := item.Mount()
		switch mount.Type {
		case "bind":
			source := mount.Source
			c.bootstrap.BackupPaths = append(c.bootstrap.BackupPaths, source)
			if err := c.scanMountedFile(name, source); err != nil {
				return err
			}
			volID := "data"
			if m := volumeIDPattern.FindString(source); m != "" {
				volID = m
			}
			volID = strings.ReplaceAll(volID, ".", "_")
			c.bootstrap.VolumeDefaults[source] = c.DefaultsPrefix + volID + "_mount_dir"
		case "volume":
			if mount.Source == "" {
				// anonymous volumes have no stable host path
				continue
			}
			volName := mount.Source
			if vol := c.Project.Project.Volumes[mount.Source]; vol != nil && vol.Name != "" {
				volName = vol.Name
			}
			c.bootstrap.BackupPaths = append(c.bootstrap.BackupPaths, "/var/lib/docker/volumes/"+volName)
		}
	}
	return nil
}

func (c *converter) handlePorts(name string, svc compose.Service) {
	for _, item := range svc.Ports {
		published := item.Published()
		if published == "" {
			continue
		}
		port, err := strconv.Atoi(published)
		if err != nil {
			c.logger.Warn("skipping unparseable published port", "service", name, "port", published)
			continue
		}
		c.bootstrap.ExposedPortsByService[name] = append(c.bootstrap.ExposedPortsByService[name], port)
		key := hostPortKey(name, port)
		c.addDefault(Default{
			Key:         c.variable(key),
			OriginalKey: key,
			Value:       port,
			Service:     name,
		}, key)
	}
}

func (c *converter) handleImage(name string, svc compose.Service) {
	image := svc.Image
	if image == "" {
		c.logger.Debug("service has no image", "service", name)
		return
	}
	_, tag := splitImageTag(image)
	def := TagDefinition{Service: name, Tag: tag}
	if kind := dbImagePattern.FindString(image); kind != "" {
		def.Kind = kind
	}
	c.bootstrap.ImagesTags[image] = def
	c.serviceTags[name] = tag
}

// addReleases aggregates every service's image tag into a single default so
// upgrades are a one-variable change per service
func (c *converter) addReleases() {
	c.bootstrap.Defaults = append(c.bootstrap.Defaults, Default{
		Key:   c.variable("releases"),
		Value: c.serviceTags,
	})
}

func (c *converter) addEnvDefault(service, key string, value any, envFile string) error {
	overrides := c.overrides[service]
	if slices.Contains(overrides.Skip, key) {
		c.logger.Debug("skipping environment variable", "service", service, "key", key)
		return nil
	}

	isSecret := slices.Contains(overrides.Secret, key)
	if !isSecret {
		var err error
		isSecret, err = c.classifier.IsSecret(service, key, value)
		if err != nil {
			return err
		}
	}

	c.addDefault(Default{
		Key:         c.variable(key),
		OriginalKey: key,
		Value:       cast.ToString(value),
		IsSecret:    isSecret,
		Service:     service,
		EnvFile:     envFile,
	}, key)
	return nil
}

// addDefault records a default once, the first service claiming a key wins
func (c *converter) addDefault(d Default, originalKey string) {
	if len(c.servicesByEnv[originalKey]) > 0 {
		return
	}

	if d.IsSecret {
		d.SecretPath = c.secretPath(d.Service, originalKey)
		d.SecretExpr = c.provider.Expression(d.SecretPath, max(len(cast.ToString(d.Value)), c.MinSecretLength))
	}
	if d.EnvFile != "" {
		c.bootstrap.EnvFiles[d.EnvFile] = fileNameID(d.EnvFile)
	}

	c.bootstrap.Defaults = append(c.bootstrap.Defaults, d)
	c.servicesByEnv[originalKey] = append(c.servicesByEnv[originalKey], d.Service)
}

// variable derives the prefixed defaults variable for an environment key
func (c *converter) variable(key string) string {
	return c.DefaultsPrefix + NormalizeName(key)
}

func (c *converter) secretPath(service, key string) string {
	return strings.NewReplacer(
		"{role_name}", c.bootstrap.RoleName,
		"{service_name}", service,
		"{env_key}", key,
	).Replace(c.SecretTemplate)
}

func (c *converter) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir, path)
}

func hostPortKey(service string, port int) string {
	return fmt.Sprintf("host_port_%s_%d", service, port)
}

// fileNameID turns an env file path into an identifier usable in variable
// names, derived from its file name
func fileNameID(path string) string {
	return NormalizeName(strings.ReplaceAll(filepath.Base(path), ".", "_"))
}

// splitImageTag splits an image reference into base and tag, references
// without a tag get "latest". A colon inside the registry host (a port) is
// not a tag separator.
func splitImageTag(image string) (string, string) {
	if idx := strings.LastIndex(image, ":"); idx > strings.LastIndex(image, "/") {
		return image[:idx], image[idx+1:]
	}
	return image, "latest"
}
