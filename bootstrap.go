// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"github.com/invopop/jsonschema"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
)

// Default is one entry of the generated role's defaults
//
// Secret entries additionally carry the store path and the lookup expression
// the role uses to resolve the value at deploy time
type Default struct {
	Key         string `json:"key"`
	OriginalKey string `json:"original_key,omitempty"`
	Value       any    `json:"value"`
	IsSecret    bool   `json:"is_secret"`
	Service     string `json:"service,omitempty"`
	SecretPath  string `json:"secret_path,omitempty"`
	SecretExpr  string `json:"secret_expr,omitempty"`
	EnvFile     string `json:"env_file,omitempty"`
}

// TagDefinition records which service pins an image and at which tag
type TagDefinition struct {
	Service string `json:"service"`
	Tag     string `json:"tag"`
	// Kind is set when the image is a known database engine, these services
	// usually want extra backup handling in the role
	Kind string `json:"kind,omitempty"`
}

// Bootstrap is the conversion result: everything a role template needs to
// scaffold an Ansible role around a compose project
//
// The document is emitted as JSON and is stable across runs for the same
// input, keys and defaults are ordered deterministically
type Bootstrap struct {
	RoleName              string                   `json:"role_name"`
	Defaults              []Default                `json:"defaults"`
	AnsibleVars           map[string]any           `json:"ansible_vars"`
	ExampleDefaults       map[string]any           `json:"example_defaults"`
	ComposeVarsFile       map[string]any           `json:"compose_vars_file"`
	SecretProvider        string                   `json:"secret_provider"`
	DefaultsPrefix        string                   `json:"defaults_prefix"`
	SecretStringTemplate  string                   `json:"secret_string_template"`
	ComposeFiles          []string                 `json:"compose_files"`
	ComposeConfig         map[string]any           `json:"compose_config"`
	FinalCompose          map[string]any           `json:"final_compose"`
	ServicesByEnv         map[string][]string      `json:"services_by_env"`
	ProxyContainer        string                   `json:"proxy_container,omitempty"`
	BackupPaths           []string                 `json:"backup_paths"`
	ExamplePlaybook       []any                    `json:"example_playbook"`
	ExposedPortsByService map[string][]int         `json:"exposed_ports_by_service"`
	VolumeDefaults        map[string]string        `json:"volume_defaults"`
	ImagesTags            map[string]TagDefinition `json:"images_tags"`
	ExternalProxyNet      string                   `json:"external_proxy_net"`
	EnvFiles              map[string]string        `json:"env_files"`
}

// JSONSchemaExtend extends the JSON schema for a bootstrap document
func (Bootstrap) JSONSchemaExtend(schema *jsonschema.Schema) {
	if roleName, ok := schema.Properties.Get("role_name"); ok && roleName != nil {
		roleName.Description = "Normalized name of the generated role"
	}

	if defaults, ok := schema.Properties.Get("defaults"); ok && defaults != nil {
		defaults.Description = "Entries for the role's defaults/main.yml, in emission order"
	}

	if provider, ok := schema.Properties.Get("secret_provider"); ok && provider != nil {
		provider.Description = "Secret provider used for generated secret expressions"
		provider.Enum = []any{}
		for _, p := range config.AvailableSecretProviders() {
			provider.Enum = append(provider.Enum, p)
		}
	}

	if prefix, ok := schema.Properties.Get("defaults_prefix"); ok && prefix != nil {
		prefix.Description = "Prefix applied to every generated variable name"
		prefix.Pattern = `^[^\s-]*_$`
	}

	if finalCompose, ok := schema.Properties.Get("final_compose"); ok && finalCompose != nil {
		finalCompose.Description = "The rewritten compose document, rendered into templates/docker-compose.yml.j2"
	}

	if backupPaths, ok := schema.Properties.Get("backup_paths"); ok && backupPaths != nil {
		backupPaths.Description = "Host paths holding state worth backing up: bind sources and named volume directories"
	}
}
