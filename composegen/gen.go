// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package composegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"unicode/utf8"
)

type defKind int

const (
	kindAny defKind = iota
	kindStruct
	kindUnion
	kindSlice
	kindMap
	kindScalar
)

type field struct {
	Name string
	Type string
	Tag  string
}

type variant struct {
	Field string
	Type  string
	// Probe is the concrete type trial decoded in UnmarshalYAML. Ptr
	// variants decode by value and store the address.
	Probe string
	Ptr   bool
}

type decl struct {
	Kind     string // struct, union, alias
	Name     string
	Path     string
	Fields   []field
	Variants []variant
	Target   string
	Alias    bool
}

type generator struct {
	root *Schema
	opts Options

	defs      map[string]*Schema
	defOrder  []string
	goName    map[string]string
	kinds     map[string]defKind
	nullable  map[string]bool
	taken     map[string]bool
	bySig     map[string]string
	decls     []*decl
	hasUnions bool
}

func newGenerator(root *Schema, opts Options) *generator {
	if opts.Format == "" {
		opts.Format = FormatJSONSchema
	}
	if opts.Style == "" {
		opts.Style = StyleTaggedStructs
	}
	return &generator{
		root:     root,
		opts:     opts,
		goName:   map[string]string{},
		kinds:    map[string]defKind{},
		nullable: map[string]bool{},
		taken:    map[string]bool{},
		bySig:    map[string]string{},
	}
}

func (g *generator) generate() ([]byte, error) {
	g.defs = g.root.AllDefinitions()
	g.defOrder = sortedKeys(g.defs)

	// Reserve every definition name up front so forward references
	// resolve while earlier definitions are still being processed.
	for _, defName := range g.defOrder {
		def := g.defs[defName]
		g.goName[defName] = g.allocate(titleCase(defName))
		kind, isNull, err := g.classify(def)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", defName, err)
		}
		g.kinds[defName] = kind
		g.nullable[defName] = isNull
		if g.opts.ReuseModels {
			if sig := def.signature(); sig != "" {
				if _, ok := g.bySig[sig]; !ok {
					g.bySig[sig] = g.goName[defName]
				}
			}
		}
	}

	rootName := "Model"
	if g.root.Title != "" {
		rootName = titleCase(g.root.Title)
	}
	rootName = g.allocate(rootName)
	if err := g.buildStruct(g.root, rootName, "#"); err != nil {
		return nil, err
	}

	for _, defName := range g.defOrder {
		path := "#/definitions/" + defName
		if err := g.buildDef(g.defs[defName], g.goName[defName], path); err != nil {
			return nil, fmt.Errorf("definition %q: %w", defName, err)
		}
	}

	var imports []string
	if g.hasUnions {
		imports = []string{`"errors"`, "", `"github.com/goccy/go-yaml"`}
	}
	var buf bytes.Buffer
	err := modelTemplate.Execute(&buf, fileData{
		Package: g.opts.Package,
		Source:  g.opts.Source,
		Options: g.optionsEcho(),
		Imports: imports,
		Decls:   g.decls,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render model: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		// return the unformatted source so the caller can inspect it
		return buf.Bytes(), fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

func (g *generator) optionsEcho() string {
	parts := []string{
		"style=" + string(g.opts.Style),
		"format=" + string(g.opts.Format),
	}
	if g.opts.TargetVersion != "" {
		parts = append(parts, "target=go"+strings.TrimPrefix(g.opts.TargetVersion, "go"))
	}
	parts = append(parts,
		fmt.Sprintf("reuse-models=%t", g.opts.ReuseModels),
		fmt.Sprintf("union-types=%t", g.opts.UnionTypes),
	)
	return strings.Join(parts, " ")
}

// foldNull unwraps unions that pair a single real schema with null:
// oneOf [X, null] types as a nullable X, not as a union.
func foldNull(s *Schema) (*Schema, bool) {
	variants := s.Variants()
	if len(variants) == 0 {
		return s, false
	}
	var rest []*Schema
	for _, v := range variants {
		if !v.isNullOnly() {
			rest = append(rest, v)
		}
	}
	if len(rest) == 1 {
		return rest[0], len(variants) > 1
	}
	return s, false
}

// classify determines how references to a definition are typed without
// descending into it. Nullability is reported so referencing sites can
// wrap struct types in a pointer.
func (g *generator) classify(s *Schema) (defKind, bool, error) {
	if s.Ref != "" {
		return kindAny, false, nil
	}
	if folded, hadNull := foldNull(s); folded != s {
		kind, isNull, err := g.classify(folded)
		return kind, isNull || hadNull, err
	}
	if variants := s.Variants(); len(variants) > 0 {
		if scalarOnly(variants) || !g.opts.UnionTypes {
			return kindAny, false, nil
		}
		return kindUnion, false, nil
	}
	types, err := s.Types()
	if err != nil {
		return kindAny, false, err
	}
	rest, isNull := stripNull(types)
	if len(rest) > 1 {
		if hasStructure(rest) && g.opts.UnionTypes {
			return kindUnion, isNull, nil
		}
		return kindAny, isNull, nil
	}
	var t string
	if len(rest) == 1 {
		t = rest[0]
	}
	switch t {
	case "object":
		if len(s.Properties) > 0 {
			return kindStruct, isNull, nil
		}
		return kindMap, isNull, nil
	case "array":
		return kindSlice, isNull, nil
	case "string", "integer", "number", "boolean":
		return kindScalar, isNull, nil
	case "":
		if len(s.Properties) > 0 {
			return kindStruct, isNull, nil
		}
		return kindAny, isNull, nil
	default:
		return kindAny, false, fmt.Errorf("unsupported type %q", t)
	}
}

func (g *generator) buildDef(s *Schema, name, path string) error {
	defName := strings.TrimPrefix(path, "#/definitions/")
	if g.opts.ReuseModels {
		// a definition structurally identical to an earlier one becomes an
		// alias instead of a second model
		if sig := s.signature(); sig != "" {
			if prior, ok := g.bySig[sig]; ok && prior != name {
				g.decls = append(g.decls, &decl{Kind: "alias", Name: name, Path: path, Target: prior, Alias: true})
				return nil
			}
		}
	}
	if folded, _ := foldNull(s); folded != s {
		// nullability was recorded during classification
		s = folded
	}
	switch g.kinds[defName] {
	case kindStruct:
		return g.buildStruct(s, name, path)
	case kindUnion:
		if variants := s.Variants(); len(variants) > 0 {
			return g.buildUnion(variants, name, path)
		}
		// multi-type declaration, e.g. ["boolean", "object"]
		types, err := s.Types()
		if err != nil {
			return err
		}
		rest, _ := stripNull(types)
		return g.buildUnion(syntheticVariants(s, rest), name, path)
	case kindSlice:
		elem, err := g.typeOf(s.Items, name+"Item", path+"/items", false)
		if err != nil {
			return err
		}
		g.decls = append(g.decls, &decl{Kind: "alias", Name: name, Path: path, Target: "[]" + elem})
		return nil
	case kindMap:
		elem, err := g.mapValueType(s, name, path)
		if err != nil {
			return err
		}
		g.decls = append(g.decls, &decl{Kind: "alias", Name: name, Path: path, Target: "map[string]" + elem})
		return nil
	case kindScalar:
		types, err := s.Types()
		if err != nil {
			return err
		}
		rest, _ := stripNull(types)
		g.decls = append(g.decls, &decl{Kind: "alias", Name: name, Path: path, Target: scalarType(rest[0])})
		return nil
	default:
		g.decls = append(g.decls, &decl{Kind: "alias", Name: name, Path: path, Target: g.opts.anySpelling(), Alias: true})
		return nil
	}
}

// typeOf resolves a schema to the Go type used at a referencing site.
// ctx names any type that has to be hoisted, and optional wraps value
// kinds in a pointer so absent and zero stay distinguishable. Strings are
// the exception: the empty string stands for absent.
func (g *generator) typeOf(s *Schema, ctx, path string, optional bool) (string, error) {
	if s == nil {
		return g.opts.anySpelling(), nil
	}
	if s.Ref != "" {
		target, err := refTarget(s.Ref)
		if err != nil {
			return "", err
		}
		name, ok := g.goName[target]
		if !ok {
			return "", fmt.Errorf("unresolved $ref %q", s.Ref)
		}
		switch g.kinds[target] {
		case kindStruct, kindUnion:
			if g.nullable[target] || optional {
				return "*" + name, nil
			}
			return name, nil
		default:
			return name, nil
		}
	}
	if variants := s.Variants(); len(variants) > 0 {
		if folded, hadNull := foldNull(s); folded != s {
			return g.typeOf(folded, ctx, path, optional || hadNull)
		}
		if scalarOnly(variants) || !g.opts.UnionTypes {
			return g.opts.anySpelling(), nil
		}
		name, err := g.hoistUnion(s, variants, ctx, path)
		if err != nil {
			return "", err
		}
		if optional {
			return "*" + name, nil
		}
		return name, nil
	}

	types, err := s.Types()
	if err != nil {
		return "", err
	}
	rest, isNull := stripNull(types)
	if len(rest) > 1 {
		if !hasStructure(rest) || !g.opts.UnionTypes {
			return g.opts.anySpelling(), nil
		}
		name, err := g.hoistUnion(s, syntheticVariants(s, rest), ctx, path)
		if err != nil {
			return "", err
		}
		if optional {
			return "*" + name, nil
		}
		return name, nil
	}
	var t string
	if len(rest) == 1 {
		t = rest[0]
	}
	switch t {
	case "object":
		if len(s.Properties) > 0 {
			name, err := g.hoistStruct(s, ctx, path)
			if err != nil {
				return "", err
			}
			if isNull || optional {
				return "*" + name, nil
			}
			return name, nil
		}
		elem, err := g.mapValueType(s, ctx, path)
		if err != nil {
			return "", err
		}
		return "map[string]" + elem, nil
	case "array":
		elem, err := g.typeOf(s.Items, ctx+"Item", path+"/items", false)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil
	case "string":
		return "string", nil
	case "integer":
		return ptrIf(optional, "int"), nil
	case "number":
		return ptrIf(optional, "float64"), nil
	case "boolean":
		return ptrIf(optional, "bool"), nil
	case "":
		if len(s.Properties) > 0 {
			name, err := g.hoistStruct(s, ctx, path)
			if err != nil {
				return "", err
			}
			if optional {
				return "*" + name, nil
			}
			return name, nil
		}
		return g.opts.anySpelling(), nil
	default:
		return "", fmt.Errorf("unsupported type %q at %s", t, path)
	}
}

func (g *generator) mapValueType(s *Schema, ctx, path string) (string, error) {
	patterns := sortedKeys(s.PatternProperties)
	if len(patterns) == 0 {
		return g.opts.anySpelling(), nil
	}
	// the first pattern is representative; the compose schema never mixes
	// value shapes within one object
	return g.typeOf(s.PatternProperties[patterns[0]], ctx+"Item", path+"/patternProperties", false)
}

func (g *generator) buildStruct(s *Schema, name, path string) error {
	d := &decl{Kind: "struct", Name: name, Path: path}
	for _, prop := range sortedKeys(s.Properties) {
		required := s.IsRequired(prop)
		typ, err := g.typeOf(s.Properties[prop], titleCase(prop), path+"/properties/"+prop, !required)
		if err != nil {
			return err
		}
		tag := prop
		if !required {
			tag += ",omitempty"
		}
		d.Fields = append(d.Fields, field{
			Name: titleCase(prop),
			Type: typ,
			Tag:  fmt.Sprintf("`yaml:%q json:%q`", tag, tag),
		})
	}
	g.decls = append(g.decls, d)
	return nil
}

func (g *generator) hoistStruct(s *Schema, ctx, path string) (string, error) {
	var sig string
	if g.opts.ReuseModels {
		if sig = s.signature(); sig != "" {
			if name, ok := g.bySig[sig]; ok {
				return name, nil
			}
		}
	}
	name := g.allocate(ctx)
	if sig != "" {
		g.bySig[sig] = name
	}
	return name, g.buildStruct(s, name, path)
}

func (g *generator) hoistUnion(s *Schema, variants []*Schema, ctx, path string) (string, error) {
	var sig string
	if g.opts.ReuseModels {
		if sig = s.signature(); sig != "" {
			if name, ok := g.bySig[sig]; ok {
				return name, nil
			}
		}
	}
	name := g.allocate(ctx)
	if sig != "" {
		g.bySig[sig] = name
	}
	return name, g.buildUnion(variants, name, path)
}

func (g *generator) buildUnion(variants []*Schema, name, path string) error {
	g.hasUnions = true
	d := &decl{Kind: "union", Name: name, Path: path}
	for i, vs := range variants {
		v, err := g.unionVariant(vs, name, fmt.Sprintf("%s/oneOf[%d]", path, i))
		if err != nil {
			return err
		}
		if v != nil {
			d.Variants = append(d.Variants, *v)
		}
	}
	if len(d.Variants) == 0 {
		return fmt.Errorf("union at %s has no decodable variants", path)
	}
	g.decls = append(g.decls, d)
	return nil
}

func (g *generator) unionVariant(vs *Schema, unionName, path string) (*variant, error) {
	if vs.Ref != "" {
		target, err := refTarget(vs.Ref)
		if err != nil {
			return nil, err
		}
		name, ok := g.goName[target]
		if !ok {
			return nil, fmt.Errorf("unresolved $ref %q", vs.Ref)
		}
		switch g.kinds[target] {
		case kindStruct, kindUnion:
			return &variant{Field: name, Type: "*" + name, Probe: name, Ptr: true}, nil
		default:
			return &variant{Field: name, Type: name, Probe: name}, nil
		}
	}
	types, err := vs.Types()
	if err != nil {
		return nil, err
	}
	rest, _ := stripNull(types)
	if len(rest) > 1 {
		return nil, fmt.Errorf("multi-type union variant at %s is not supported", path)
	}
	var t string
	if len(rest) == 1 {
		t = rest[0]
	}
	switch t {
	case "string":
		return &variant{Field: "String", Type: "*string", Probe: "string", Ptr: true}, nil
	case "number":
		return &variant{Field: "Number", Type: "*float64", Probe: "float64", Ptr: true}, nil
	case "integer":
		return &variant{Field: "Integer", Type: "*int", Probe: "int", Ptr: true}, nil
	case "boolean":
		return &variant{Field: "Bool", Type: "*bool", Probe: "bool", Ptr: true}, nil
	case "array":
		elem, err := g.typeOf(vs.Items, unionName+"Item", path+"/items", false)
		if err != nil {
			return nil, err
		}
		return &variant{Field: "List", Type: "[]" + elem, Probe: "[]" + elem}, nil
	case "object":
		if len(vs.Properties) > 0 {
			cfg := strings.TrimSuffix(unionName, "Item") + "Config"
			hoisted, err := g.hoistStruct(vs, cfg, path)
			if err != nil {
				return nil, err
			}
			return &variant{Field: hoisted, Type: "*" + hoisted, Probe: hoisted, Ptr: true}, nil
		}
		elem, err := g.mapValueType(vs, unionName, path)
		if err != nil {
			return nil, err
		}
		return &variant{Field: "Map", Type: "map[string]" + elem, Probe: "map[string]" + elem}, nil
	case "":
		// a bare null (or empty) variant decodes to the zero union
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported union variant type %q at %s", t, path)
	}
}

func (g *generator) allocate(base string) string {
	if base == "" {
		base = "Model"
	}
	name := base
	for i := 1; g.taken[name]; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	g.taken[name] = true
	return name
}

func scalarOnly(variants []*Schema) bool {
	for _, v := range variants {
		if v.Ref != "" || len(v.Properties) > 0 || len(v.PatternProperties) > 0 || v.Items != nil || len(v.Variants()) > 0 {
			return false
		}
		types, err := v.Types()
		if err != nil {
			return false
		}
		for _, t := range types {
			switch t {
			case "string", "number", "integer", "boolean", "null":
			default:
				return false
			}
		}
	}
	return true
}

func stripNull(types []string) (rest []string, isNull bool) {
	for _, t := range types {
		if t == "null" {
			isNull = true
			continue
		}
		rest = append(rest, t)
	}
	return rest, isNull
}

func hasStructure(types []string) bool {
	for _, t := range types {
		if t == "object" || t == "array" {
			return true
		}
	}
	return false
}

// syntheticVariants splits a multi-type declaration like
// {"type": ["boolean", "object"], "properties": ...} into one schema per
// declared type so it can be treated as an ordinary union.
func syntheticVariants(s *Schema, types []string) []*Schema {
	variants := make([]*Schema, 0, len(types))
	for _, t := range types {
		if t == "object" || t == "array" {
			variants = append(variants, &Schema{
				Type:                 t,
				Properties:           s.Properties,
				PatternProperties:    s.PatternProperties,
				Required:             s.Required,
				AdditionalProperties: s.AdditionalProperties,
				Items:                s.Items,
			})
		} else {
			variants = append(variants, &Schema{Type: t})
		}
	}
	return variants
}

func scalarType(t string) string {
	switch t {
	case "integer":
		return "int"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	default:
		return "string"
	}
}

func ptrIf(optional bool, typ string) string {
	if optional {
		return "*" + typ
	}
	return typ
}

func titleCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	var b strings.Builder
	for _, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		b.WriteString(strings.ToUpper(string(r)))
		b.WriteString(p[size:])
	}
	return b.String()
}
