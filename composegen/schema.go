// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package composegen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Schema is the subset of JSON Schema (draft-07) the generator understands.
//
// Keywords with no bearing on the emitted Go types (numeric bounds, string
// patterns, uniqueItems, ...) are parsed so documents round-trip into the
// model, but only the structural keywords drive generation.
type Schema struct {
	ID          string `json:"$id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`

	Type                 any                `json:"type,omitempty"`
	Format               string             `json:"format,omitempty"`
	Const                any                `json:"const,omitempty"`
	Enum                 []any              `json:"enum,omitempty"`
	Default              any                `json:"default,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	Definitions          map[string]*Schema `json:"definitions,omitempty"`
	Defs                 map[string]*Schema `json:"$defs,omitempty"`

	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	AllOf []*Schema `json:"allOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`
}

// ParseSchema decodes a JSON Schema document.
func ParseSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return &s, nil
}

// AllDefinitions merges "definitions" (draft-07) and "$defs" (2019-09+),
// which the compose spec has used interchangeably over time.
func (s *Schema) AllDefinitions() map[string]*Schema {
	if len(s.Defs) == 0 {
		return s.Definitions
	}
	merged := make(map[string]*Schema, len(s.Definitions)+len(s.Defs))
	for name, def := range s.Definitions {
		merged[name] = def
	}
	for name, def := range s.Defs {
		merged[name] = def
	}
	return merged
}

// Types returns the declared type(s) of the schema. A bare "type": "string"
// and a type array both normalize to a slice.
func (s *Schema) Types() ([]string, error) {
	switch t := s.Type.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{t}, nil
	case []any:
		types := make([]string, 0, len(t))
		for _, v := range t {
			str, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported type entry %v (%T)", v, v)
			}
			types = append(types, str)
		}
		return types, nil
	default:
		return nil, fmt.Errorf("unsupported type keyword %v (%T)", s.Type, s.Type)
	}
}

// Variants returns the schemas of a oneOf/anyOf union, or nil if the schema
// is not a union.
func (s *Schema) Variants() []*Schema {
	if len(s.OneOf) > 0 {
		return s.OneOf
	}
	return s.AnyOf
}

// IsRequired reports whether the named property is in the required list.
func (s *Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// isNullOnly reports whether the schema admits null and nothing else.
// An empty schema admits anything and is not null-only.
func (s *Schema) isNullOnly() bool {
	if s == nil || s.Ref != "" || len(s.Properties) > 0 || len(s.PatternProperties) > 0 || s.Items != nil || len(s.Variants()) > 0 {
		return false
	}
	types, err := s.Types()
	return err == nil && len(types) == 1 && types[0] == "null"
}

// refTarget returns the definition name a local $ref points at.
// Only local definition pointers are supported, matching the compose spec.
func refTarget(ref string) (string, error) {
	for _, prefix := range []string{"#/definitions/", "#/$defs/"} {
		if rest, ok := strings.CutPrefix(ref, prefix); ok {
			if rest == "" || strings.Contains(rest, "/") {
				return "", fmt.Errorf("unsupported $ref %q: nested definition pointers are not supported", ref)
			}
			return rest, nil
		}
	}
	return "", fmt.Errorf("unsupported $ref %q: only local definition references are supported", ref)
}

// signature returns a stable structural fingerprint of the schema, used for
// model reuse. Descriptions and titles are cosmetic and excluded so two
// definitions that differ only in prose still collapse into one model.
func (s *Schema) signature() string {
	var b strings.Builder
	s.writeSignature(&b)
	return b.String()
}

func (s *Schema) writeSignature(b *strings.Builder) {
	if s == nil {
		b.WriteString("<nil>")
		return
	}
	if s.Ref != "" {
		fmt.Fprintf(b, "ref(%s)", s.Ref)
		return
	}
	types, err := s.Types()
	if err == nil && len(types) > 0 {
		sorted := append([]string(nil), types...)
		sort.Strings(sorted)
		fmt.Fprintf(b, "type(%s)", strings.Join(sorted, "|"))
	}
	if len(s.Properties) > 0 {
		b.WriteString("props(")
		for _, name := range sortedKeys(s.Properties) {
			fmt.Fprintf(b, "%s:", name)
			s.Properties[name].writeSignature(b)
			if s.IsRequired(name) {
				b.WriteString("!")
			}
			b.WriteString(",")
		}
		b.WriteString(")")
	}
	if len(s.PatternProperties) > 0 {
		b.WriteString("patterns(")
		for _, pattern := range sortedKeys(s.PatternProperties) {
			s.PatternProperties[pattern].writeSignature(b)
			b.WriteString(",")
		}
		b.WriteString(")")
	}
	if s.Items != nil {
		b.WriteString("items(")
		s.Items.writeSignature(b)
		b.WriteString(")")
	}
	if variants := s.Variants(); len(variants) > 0 {
		b.WriteString("union(")
		for _, v := range variants {
			v.writeSignature(b)
			b.WriteString(",")
		}
		b.WriteString(")")
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
