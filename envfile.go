// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	// fileMountIdentifier prefixes the marker comment that flags a mounted
	// file as managed by the generated role
	fileMountIdentifier = "# deploy-docker-compose-template::type"

	// FileTypeEnv marks a mounted file holding environment variables, the
	// role templates such files from its defaults
	FileTypeEnv = fileMountIdentifier + "::env"
)

// EnvEntry is one KEY=VALUE line of an env file
type EnvEntry struct {
	Key   string
	Value string
}

// ParseEnvFile reads KEY=VALUE pairs from a file, preserving line order.
// Duplicate keys keep their first position and their last value.
//
// Files referenced by a service's env_file are always parsed. Every other
// candidate must opt in by carrying the FileTypeEnv marker on its first
// line, otherwise no entries are returned: the file belongs to the user,
// not to the role.
func ParseEnvFile(fsys afero.Fs, path string, composeEnvFile bool) ([]EnvEntry, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var entries []EnvEntry
	index := map[string]int{}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if !composeEnvFile && i == 0 && !strings.HasPrefix(line, FileTypeEnv) {
			break
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%s: line %d is not a KEY=VALUE pair", path, i+1)
		}
		if at, seen := index[key]; seen {
			entries[at].Value = value
			continue
		}
		index[key] = len(entries)
		entries = append(entries, EnvEntry{Key: key, Value: value})
	}
	return entries, nil
}
