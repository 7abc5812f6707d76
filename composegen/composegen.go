// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package composegen turns a JSON Schema document into a Go model file.
//
// It exists to generate the compose-spec model this project reads compose
// files into, but nothing in it is compose specific: any draft-07 style
// schema with local definitions generates. The emitted file is gofmt'd,
// deterministic for a given input and options, and safe to commit.
package composegen

import (
	"fmt"
	"strconv"
	"strings"
)

// Format identifies the input document format.
type Format string

// FormatJSONSchema is the only supported input format.
const FormatJSONSchema Format = "jsonschema"

// Style selects the shape of the emitted model.
type Style string

// StyleTaggedStructs emits plain structs with yaml and json field tags.
const StyleTaggedStructs Style = "tagged-structs"

// Options configure a single generation run.
type Options struct {
	// Package is the package name of the emitted file.
	Package string
	// Source is recorded in the generated header, typically the URL the
	// schema was fetched from. It does not affect the emitted types.
	Source string
	// Format is the input document format. Only FormatJSONSchema is
	// supported; an empty value defaults to it.
	Format Format
	// Style is the output model style. An empty value defaults to
	// StyleTaggedStructs.
	Style Style
	// TargetVersion is the minimum Go release the emitted file is written
	// for, e.g. "1.21". Targets below 1.18 spell the empty interface as
	// interface{} instead of any.
	TargetVersion string
	// ReuseModels collapses structurally identical schemas into a single
	// named type instead of emitting one per occurrence.
	ReuseModels bool
	// UnionTypes emits a named type per oneOf/anyOf with struct or array
	// variants, holding one field per variant and decoding by trial.
	// When false such unions decode into the empty interface.
	UnionTypes bool
}

func (o Options) validate() error {
	if o.Format != "" && o.Format != FormatJSONSchema {
		return fmt.Errorf("unsupported input format %q, expected %q", o.Format, FormatJSONSchema)
	}
	if o.Style != "" && o.Style != StyleTaggedStructs {
		return fmt.Errorf("unsupported model style %q, expected %q", o.Style, StyleTaggedStructs)
	}
	if o.Package == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if o.TargetVersion != "" {
		if _, _, err := parseGoVersion(o.TargetVersion); err != nil {
			return err
		}
	}
	return nil
}

// anySpelling returns the spelling of the empty interface for the target
// Go version.
func (o Options) anySpelling() string {
	if o.TargetVersion == "" {
		return "any"
	}
	major, minor, err := parseGoVersion(o.TargetVersion)
	if err != nil || major > 1 || minor >= 18 {
		return "any"
	}
	return "interface{}"
}

func parseGoVersion(v string) (major, minor int, err error) {
	before, rest, found := strings.Cut(strings.TrimPrefix(v, "go"), ".")
	if !found {
		return 0, 0, fmt.Errorf("invalid target version %q, expected MAJOR.MINOR", v)
	}
	major, err = strconv.Atoi(before)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target version %q: %w", v, err)
	}
	// tolerate patch suffixes like 1.21.0
	minorPart, _, _ := strings.Cut(rest, ".")
	minor, err = strconv.Atoi(minorPart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid target version %q: %w", v, err)
	}
	return major, minor, nil
}

// Generate renders the schema document into a single Go source file.
//
// The output is stable: generating twice from the same document and options
// yields byte identical files.
func Generate(data []byte, opts Options) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	schema, err := ParseSchema(data)
	if err != nil {
		return nil, err
	}
	g := newGenerator(schema, opts)
	return g.generate()
}
