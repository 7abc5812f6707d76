// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// WriteRole materializes the role skeleton for a bootstrap document.
//
// defaults/main.yml carries every generated default in emission order,
// secrets resolve through their lookup expressions. The mount dir
// variables referenced by the compose template default to the original
// bind sources. templates/docker-compose.yml.j2 is the rewritten compose
// document, Jinja expressions are emitted as plain scalars and never
// interpreted.
func WriteRole(fsys afero.Fs, dir string, bootstrap *Bootstrap) error {
	if err := Validate(bootstrap); err != nil {
		return err
	}

	defaults := yaml.MapSlice{}
	for _, d := range bootstrap.Defaults {
		value := d.Value
		if d.IsSecret {
			value = d.SecretExpr
		}
		defaults = append(defaults, yaml.MapItem{Key: d.Key, Value: value})
	}

	mountDirs := map[string]string{}
	for source, variable := range bootstrap.VolumeDefaults {
		mountDirs[variable] = source
	}
	for _, variable := range slices.Sorted(maps.Keys(mountDirs)) {
		defaults = append(defaults, yaml.MapItem{Key: variable, Value: mountDirs[variable]})
	}

	defaultsData, err := yaml.MarshalWithOptions(defaults, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("failed to marshal defaults: %w", err)
	}

	composeData, err := yaml.MarshalWithOptions(bootstrap.FinalCompose, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("failed to marshal compose template: %w", err)
	}

	if err := writeFile(fsys, filepath.Join(dir, "defaults", "main.yml"), append([]byte("---\n"), defaultsData...)); err != nil {
		return err
	}
	return writeFile(fsys, filepath.Join(dir, "templates", "docker-compose.yml.j2"), composeData)
}

func writeFile(fsys afero.Fs, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}
