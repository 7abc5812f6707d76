// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the default file name for the config file
const DefaultFileName = "config.yaml"

// EnvVar overrides the directory the config file is loaded from when set
const EnvVar = "DC2ANSIBLE_CONFIG"

// DefaultDirectory returns the default directory for dc2ansible configuration ($HOME/.dc2ansible)
//
// Currently this relies upon the $HOME environment variable being set
// In future iterations this may instead leverage the XDG fallback system
func DefaultDirectory() (string, error) {
	if dir, ok := os.LookupEnv(EnvVar); ok && dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".dc2ansible"), nil
}
