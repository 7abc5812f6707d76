// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package compose loads docker compose projects into the model generated
// from the compose specification schema.
//
// Projects are either canonicalized through the docker CLI (Resolver) or
// decoded straight from disk (Read) when docker is unavailable or
// deliberately bypassed.
package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// SchemaURL is where the compose specification schema is published.
// The model in compose_gen.go is generated from this document, see gen/main.go.
const SchemaURL = "https://raw.githubusercontent.com/compose-spec/compose-spec/master/schema/compose-spec.json"

// Document couples the typed project model with the raw mapping it was
// decoded from. The raw form preserves vendor extensions and key order
// semantics that the typed model drops, and is what rewrites operate on.
type Document struct {
	Project ComposeSpecification
	Raw     map[string]any
	// Files are the compose files the document came from, in the order
	// they were passed to docker compose.
	Files []string
}

// Decode parses a compose document. The input may be YAML or JSON: docker
// compose emits either depending on version even when JSON is requested
// (docker/compose#11669), and JSON is a subset of YAML anyway, so a single
// YAML decode handles both.
func Decode(data []byte, files []string) (*Document, error) {
	doc := &Document{Files: files}
	if err := yaml.Unmarshal(data, &doc.Project); err != nil {
		return nil, fmt.Errorf("failed to decode compose project: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc.Raw); err != nil {
		return nil, fmt.Errorf("failed to decode compose project: %w", err)
	}
	if len(doc.Project.Services) == 0 {
		return nil, errors.New("no services defined")
	}
	return doc, nil
}

// Read loads a single compose file without resolving it through docker.
// Interpolation, extends and includes are left as written.
func Read(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, []string{path})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// RawServices returns the services mapping of the raw document, creating
// it if absent.
func (d *Document) RawServices() map[string]any {
	if d.Raw == nil {
		d.Raw = map[string]any{}
	}
	services, ok := d.Raw["services"].(map[string]any)
	if !ok {
		services = map[string]any{}
		d.Raw["services"] = services
	}
	return services
}

// Entries returns the mapping form of a list-or-dict value. List entries
// are split on the first "=", a bare KEY becomes a nil value, matching how
// docker compose canonicalizes environment blocks.
func (v *ListOrDict) Entries() map[string]any {
	if v == nil {
		return nil
	}
	if v.Map != nil {
		return v.Map
	}
	entries := make(map[string]any, len(v.List))
	for _, item := range v.List {
		key, value, found := strings.Cut(item, "=")
		if found {
			entries[key] = value
		} else {
			entries[key] = nil
		}
	}
	return entries
}

// Values returns the list form of a string-or-list value.
func (v *StringOrList) Values() []string {
	switch {
	case v == nil:
		return nil
	case v.String != nil:
		return []string{*v.String}
	default:
		return v.List
	}
}

// Paths returns the env files named by an env_file value, in order.
func (v *EnvFile) Paths() []string {
	switch {
	case v == nil:
		return nil
	case v.String != nil:
		return []string{*v.String}
	}
	paths := make([]string, 0, len(v.List))
	for _, item := range v.List {
		switch {
		case item.String != nil:
			paths = append(paths, *item.String)
		case item.EnvFileConfig != nil:
			paths = append(paths, item.EnvFileConfig.Path)
		}
	}
	return paths
}

// Published returns the host port of a port mapping, or "" when the entry
// only exposes a container port. Short syntax is parsed the way docker
// does: [HOST_IP:]HOST[:CONTAINER][/PROTOCOL].
func (v PortsItem) Published() string {
	switch {
	case v.PortsConfig != nil:
		return cast.ToString(v.PortsConfig.Published)
	case v.String != nil:
		spec, _, _ := strings.Cut(*v.String, "/")
		parts := strings.Split(spec, ":")
		switch len(parts) {
		case 2:
			return parts[0]
		case 3:
			return parts[1]
		}
		return ""
	default:
		// a bare container port has no host binding
		return ""
	}
}

// Mount normalizes a volume entry to its long form. Short strings are
// split into [SOURCE:]TARGET[:MODE], with the type inferred from the
// source: path-like sources are binds, everything else is a named volume.
func (v VolumesItem) Mount() VolumesConfig {
	if v.VolumesConfig != nil {
		return *v.VolumesConfig
	}
	if v.String == nil {
		return VolumesConfig{}
	}
	parts := strings.SplitN(*v.String, ":", 3)
	mount := VolumesConfig{Type: "volume"}
	switch len(parts) {
	case 1:
		mount.Target = parts[0]
	default:
		mount.Source = parts[0]
		mount.Target = parts[1]
		if len(parts) == 3 && strings.Contains(parts[2], "ro") {
			ro := true
			mount.ReadOnly = &ro
		}
	}
	if isPathSource(mount.Source) {
		mount.Type = "bind"
	}
	return mount
}

func isPathSource(source string) bool {
	return strings.HasPrefix(source, "/") ||
		strings.HasPrefix(source, "./") ||
		strings.HasPrefix(source, "../") ||
		strings.HasPrefix(source, "~")
}
