// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package composegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture exercises the structural features the compose-spec schema uses:
// local $refs, nullable objects, scalar and structured unions, null-paired
// unions, pattern property maps, name collisions and structurally identical
// definitions.
const fixture = `{
  "title": "Registry Catalog",
  "type": "object",
  "properties": {
    "entries": {
      "type": "object",
      "patternProperties": {"^[a-z]+$": {"$ref": "#/definitions/entry"}}
    },
    "version": {"type": "string"}
  },
  "definitions": {
    "entry": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "count": {"type": "integer"},
        "ratio": {"type": "number"},
        "enabled": {"type": "boolean"},
        "tags": {"$ref": "#/definitions/string_list"},
        "source": {
          "oneOf": [
            {"type": "string"},
            {"type": "object", "properties": {"url": {"type": "string"}, "pinned": {"type": "boolean"}}}
          ]
        },
        "size": {"type": ["integer", "string"]},
        "mirror": {"type": ["object", "null"], "properties": {"url": {"type": "string"}}},
        "alias": {
          "oneOf": [
            {"type": "object", "properties": {"target": {"type": "string"}}},
            {"type": "null"}
          ]
        },
        "limits": {
          "type": "object",
          "patternProperties": {
            ".+": {
              "oneOf": [
                {"type": "integer"},
                {"type": "object", "required": ["max"], "properties": {"max": {"type": "integer"}}}
              ]
            }
          }
        }
      }
    },
    "string_list": {"type": "array", "items": {"type": "string"}},
    "source": {"type": "string"},
    "flag": {"type": ["boolean", "object"], "properties": {"reason": {"type": "string"}}},
    "toggle": {"type": ["boolean", "object"], "properties": {"reason": {"type": "string"}}}
  }
}`

func defaultOptions() Options {
	return Options{
		Package:       "model",
		Source:        "https://example.com/catalog.json",
		TargetVersion: "1.21",
		ReuseModels:   true,
		UnionTypes:    true,
	}
}

func buildModel(t *testing.T, opts Options) (*ast.File, string) {
	t.Helper()
	src, err := Generate([]byte(fixture), opts)
	require.NoError(t, err)
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "model_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source must parse:\n%s", src)
	return f, string(src)
}

func structFields(t *testing.T, f *ast.File, name string) map[string]string {
	t.Helper()
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != name {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			require.True(t, ok, "%s is not a struct", name)
			fields := map[string]string{}
			for _, fld := range st.Fields.List {
				for _, n := range fld.Names {
					fields[n.Name] = types.ExprString(fld.Type)
				}
			}
			return fields
		}
	}
	require.Fail(t, "type not found", "no struct %q in generated source", name)
	return nil
}

func TestGenerate(t *testing.T) {
	f, src := buildModel(t, defaultOptions())

	assert.True(t, strings.HasPrefix(src, "// Code generated by composegen. DO NOT EDIT."))
	assert.Contains(t, src, "// source: https://example.com/catalog.json")
	assert.Contains(t, src, "// options: style=tagged-structs format=jsonschema target=go1.21 reuse-models=true union-types=true")

	root := structFields(t, f, "RegistryCatalog")
	assert.Equal(t, map[string]string{
		"Entries": "map[string]Entry",
		"Version": "string",
	}, root)

	entry := structFields(t, f, "Entry")
	assert.Equal(t, map[string]string{
		"Alias":   "*Alias",
		"Count":   "*int",
		"Enabled": "*bool",
		"Limits":  "map[string]LimitsItem",
		"Mirror":  "*Mirror",
		"Name":    "string",
		"Ratio":   "*float64",
		"Size":    "any",
		"Source":  "*Source1",
		"Tags":    "StringList",
	}, entry)

	// oneOf [X, null] folds to a nullable X instead of a union
	assert.Equal(t, map[string]string{"Target": "string"}, structFields(t, f, "Alias"))

	// the definition claimed Source, so the inline union is suffixed
	union := structFields(t, f, "Source1")
	assert.Equal(t, map[string]string{
		"String":        "*string",
		"Source1Config": "*Source1Config",
	}, union)
	assert.Contains(t, src, "func (v *Source1) UnmarshalYAML(b []byte) error")
	assert.Contains(t, src, "func (v Source1) MarshalYAML() ([]byte, error)")

	limits := structFields(t, f, "LimitsItem")
	assert.Equal(t, map[string]string{
		"Integer":      "*int",
		"LimitsConfig": "*LimitsConfig",
	}, limits)
	assert.Equal(t, map[string]string{"Max": "int"}, structFields(t, f, "LimitsConfig"))

	assert.Contains(t, src, "type StringList []string")
	assert.Contains(t, src, "type Source string")
	assert.Contains(t, src, `yaml:"name" json:"name"`)
	assert.Contains(t, src, `yaml:"count,omitempty" json:"count,omitempty"`)
}

func TestGenerateReuseModels(t *testing.T) {
	t.Run("identical definitions collapse", func(t *testing.T) {
		_, src := buildModel(t, defaultOptions())
		assert.Contains(t, src, "type Flag struct")
		assert.Contains(t, src, "type Toggle = Flag")
		assert.NotContains(t, src, "ToggleConfig")
	})

	t.Run("disabled keeps every model", func(t *testing.T) {
		opts := defaultOptions()
		opts.ReuseModels = false
		_, src := buildModel(t, opts)
		assert.Contains(t, src, "type Flag struct")
		assert.Contains(t, src, "type Toggle struct")
		assert.Contains(t, src, "type FlagConfig struct")
		assert.Contains(t, src, "type ToggleConfig struct")
	})
}

func TestGenerateUnionTypes(t *testing.T) {
	opts := defaultOptions()
	opts.UnionTypes = false
	f, src := buildModel(t, opts)

	entry := structFields(t, f, "Entry")
	assert.Equal(t, "any", entry["Source"])
	assert.Equal(t, "map[string]any", entry["Limits"])
	assert.Contains(t, src, "type Flag = any")
	assert.NotContains(t, src, "UnmarshalYAML")
	assert.NotContains(t, src, "goccy/go-yaml")
}

func TestGenerateTargetVersion(t *testing.T) {
	opts := defaultOptions()
	opts.TargetVersion = "1.17"
	f, src := buildModel(t, opts)

	entry := structFields(t, f, "Entry")
	assert.Equal(t, "interface{}", entry["Size"])
	assert.Contains(t, src, "// options: style=tagged-structs format=jsonschema target=go1.17 reuse-models=true union-types=true")
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate([]byte(fixture), defaultOptions())
	require.NoError(t, err)
	second, err := Generate([]byte(fixture), defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestGenerateErrors(t *testing.T) {
	testCases := []struct {
		name     string
		schema   string
		expected string
	}{
		{
			name:     "invalid json",
			schema:   `{"title": `,
			expected: "failed to parse schema",
		},
		{
			name:     "remote ref",
			schema:   `{"type": "object", "properties": {"x": {"$ref": "https://example.com/other.json"}}}`,
			expected: "unsupported $ref",
		},
		{
			name:     "nested definition ref",
			schema:   `{"type": "object", "properties": {"x": {"$ref": "#/definitions/a/properties/b"}}}`,
			expected: "unsupported $ref",
		},
		{
			name:     "unknown type keyword",
			schema:   `{"type": "object", "properties": {"x": {"type": "tuple"}}}`,
			expected: `unsupported type "tuple"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate([]byte(tc.schema), defaultOptions())
			require.ErrorContains(t, err, tc.expected)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(*Options)
		expected string
	}{
		{
			name:     "unsupported format",
			mutate:   func(o *Options) { o.Format = "openapi" },
			expected: `unsupported input format "openapi"`,
		},
		{
			name:     "unsupported style",
			mutate:   func(o *Options) { o.Style = "dataclasses" },
			expected: `unsupported model style "dataclasses"`,
		},
		{
			name:     "missing package",
			mutate:   func(o *Options) { o.Package = "" },
			expected: "package name must not be empty",
		},
		{
			name:     "invalid target version",
			mutate:   func(o *Options) { o.TargetVersion = "banana" },
			expected: "invalid target version",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaultOptions()
			tc.mutate(&opts)
			_, err := Generate([]byte(fixture), opts)
			require.ErrorContains(t, err, tc.expected)
		})
	}
}

func TestParseSchema(t *testing.T) {
	s, err := ParseSchema([]byte(`{"definitions": {"a": {"type": "string"}}, "$defs": {"b": {"type": "integer"}}}`))
	require.NoError(t, err)

	defs := s.AllDefinitions()
	assert.Len(t, defs, 2)
	assert.Contains(t, defs, "a")
	assert.Contains(t, defs, "b")
}
