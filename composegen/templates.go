// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package composegen

import "text/template"

type fileData struct {
	Package string
	Source  string
	Options string
	Imports []string
	Decls   []*decl
}

var modelTemplate = template.Must(template.New("model").Parse(`// Code generated by composegen. DO NOT EDIT.
//
{{- if .Source}}
// source: {{.Source}}
{{- end}}
// options: {{.Options}}

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}
{{- range .Decls}}
{{- if eq .Kind "struct"}}

// {{.Name}} corresponds to {{.Path}}.
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}} {{.Tag}}
{{- end}}
}
{{- else if eq .Kind "union"}}

// {{.Name}} corresponds to {{.Path}}. Exactly one variant field is set
// after a successful decode.
type {{.Name}} struct {
{{- range .Variants}}
	{{.Field}} {{.Type}}
{{- end}}
}

// UnmarshalYAML decodes into the first variant that accepts the value.
func (v *{{.Name}}) UnmarshalYAML(b []byte) error {
{{- range $i, $vr := .Variants}}
	var x{{$i}} {{$vr.Probe}}
	if err := yaml.Unmarshal(b, &x{{$i}}); err == nil {
		v.{{$vr.Field}} = {{if $vr.Ptr}}&{{end}}x{{$i}}
		return nil
	}
{{- end}}
	return errors.New("value does not match any variant of {{.Name}}")
}

// MarshalYAML encodes the variant that is set.
func (v {{.Name}}) MarshalYAML() ([]byte, error) {
	switch {
{{- range .Variants}}
	case v.{{.Field}} != nil:
		return yaml.Marshal(v.{{.Field}})
{{- end}}
	}
	return yaml.Marshal(nil)
}
{{- else}}

// {{.Name}} corresponds to {{.Path}}.
type {{.Name}} {{if .Alias}}= {{end}}{{.Target}}
{{- end}}
{{- end}}
`))
