// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package config

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretProvider(t *testing.T) {
	t.Run("constants", func(t *testing.T) {
		assert.Equal(t, SecretProvider("passwordstore"), SecretProviderPasswordstore)
		assert.Equal(t, SecretProviderPasswordstore, DefaultSecretProvider)
	})

	t.Run("available providers", func(t *testing.T) {
		providers := AvailableSecretProviders()
		assert.Len(t, providers, 1)
		assert.Contains(t, providers, string(SecretProviderPasswordstore))
	})

	t.Run("pflag value interface", func(t *testing.T) {
		var provider SecretProvider = SecretProviderPasswordstore
		assert.Equal(t, "passwordstore", provider.String())
		assert.Equal(t, "string", provider.Type())

		err := provider.Set("passwordstore")
		assert.NoError(t, err)
		assert.Equal(t, SecretProviderPasswordstore, provider)

		err = provider.Set("invalid")
		assert.Error(t, err)
		assert.Equal(t, "invalid secret provider: invalid", err.Error())
		assert.Equal(t, SecretProviderPasswordstore, provider, "provider should remain unchanged after invalid set")

		var flagValue pflag.Value = &provider
		assert.NotNil(t, flagValue)
	})

	t.Run("set method edge cases", func(t *testing.T) {
		testCases := []struct {
			value       string
			expectedErr string
		}{
			{value: "", expectedErr: "invalid secret provider: "},
			{value: " passwordstore ", expectedErr: "invalid secret provider:  passwordstore "},
			{value: "Passwordstore", expectedErr: "invalid secret provider: Passwordstore"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("set_%s", tc.value), func(t *testing.T) {
				var provider SecretProvider
				err := provider.Set(tc.value)
				assert.Error(t, err)
				require.EqualError(t, err, tc.expectedErr)
			})
		}
	})
}
