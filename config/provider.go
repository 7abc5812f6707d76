// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package config

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/secrets"
)

// SecretProvider selects the Ansible lookup plugin used for generated secret expressions
type SecretProvider string

var _ pflag.Value = (*SecretProvider)(nil)

// AvailableSecretProviders returns a list of available secret providers
func AvailableSecretProviders() []string {
	return secrets.Names()
}

const (
	// SecretProviderPasswordstore emits community.general.passwordstore lookups
	SecretProviderPasswordstore SecretProvider = "passwordstore"
	// DefaultSecretProvider is the secret provider used when none is specified
	DefaultSecretProvider SecretProvider = SecretProviderPasswordstore
)

// String implements the pflag.Value and fmt.Stringer interfaces
func (p *SecretProvider) String() string {
	return string(*p)
}

// Set implements the pflag.Value interface
func (p *SecretProvider) Set(value string) error {
	if !slices.Contains(AvailableSecretProviders(), value) {
		return fmt.Errorf("invalid secret provider: %s", value)
	}
	*p = SecretProvider(value)
	return nil
}

// Type implements the pflag.Value interface
func (p *SecretProvider) Type() string {
	return "string"
}
