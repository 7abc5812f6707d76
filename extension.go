// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ExtensionKey is the compose extension consulted for per-service
// conversion overrides, docker compose config passes x- keys through
// untouched
const ExtensionKey = "x-dc2ansible"

// ServiceOverrides tunes the conversion of a single service through the
// x-dc2ansible compose extension
type ServiceOverrides struct {
	// Secret lists environment keys always treated as secrets
	Secret []string `mapstructure:"secret"`
	// Skip lists environment keys left out of the generated defaults
	Skip []string `mapstructure:"skip"`
}

// serviceOverrides decodes the x-dc2ansible extension of a raw service
// mapping, services without the extension decode to the zero value
func serviceOverrides(raw any) (ServiceOverrides, error) {
	var overrides ServiceOverrides

	service, ok := raw.(map[string]any)
	if !ok {
		return overrides, nil
	}
	ext, ok := service[ExtensionKey]
	if !ok {
		return overrides, nil
	}

	config := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &overrides,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return overrides, fmt.Errorf("%s: %w", ExtensionKey, err)
	}
	if err := decoder.Decode(ext); err != nil {
		return overrides, fmt.Errorf("%s: %w", ExtensionKey, err)
	}

	return overrides, nil
}
