// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Explain summarizes a bootstrap document as markdown: which defaults were
// generated, where secrets will live, and what the role operator still has
// to decide
func Explain(bootstrap *Bootstrap) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Role bootstrap: %s\n\n", bootstrap.RoleName)
	fmt.Fprintf(&sb, "Converted from %s.\n\n", strings.Join(bootstrap.ComposeFiles, ", "))

	sb.WriteString("## Defaults\n\n")
	sb.WriteString("| Variable | Value | Service |\n")
	sb.WriteString("|---|---|---|\n")
	for _, d := range bootstrap.Defaults {
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", d.Key, valueCell(d), d.Service)
	}
	sb.WriteString("\n")

	var secretDefaults []Default
	for _, d := range bootstrap.Defaults {
		if d.IsSecret {
			secretDefaults = append(secretDefaults, d)
		}
	}
	if len(secretDefaults) > 0 {
		sb.WriteString("## Secrets\n\n")
		fmt.Fprintf(&sb, "Resolved through `%s` lookups at deploy time, never stored in the role:\n\n", bootstrap.SecretProvider)
		for _, d := range secretDefaults {
			fmt.Fprintf(&sb, "- `%s` from `%s`\n", d.Key, d.SecretPath)
		}
		sb.WriteString("\n")
	}

	if len(bootstrap.BackupPaths) > 0 {
		sb.WriteString("## Backup paths\n\n")
		sb.WriteString("Host paths holding state worth backing up:\n\n")
		for _, path := range bootstrap.BackupPaths {
			fmt.Fprintf(&sb, "- `%s`\n", path)
		}
		sb.WriteString("\n")
	}

	if len(bootstrap.EnvFiles) > 0 {
		sb.WriteString("## Env files\n\n")
		sb.WriteString("| File | Identifier |\n")
		sb.WriteString("|---|---|\n")
		for _, file := range slices.Sorted(maps.Keys(bootstrap.EnvFiles)) {
			fmt.Fprintf(&sb, "| `%s` | `%s` |\n", file, bootstrap.EnvFiles[file])
		}
		sb.WriteString("\n")
	}

	if len(bootstrap.ExposedPortsByService) > 0 {
		sb.WriteString("## Exposed ports\n\n")
		for _, service := range slices.Sorted(maps.Keys(bootstrap.ExposedPortsByService)) {
			ports := make([]string, 0, len(bootstrap.ExposedPortsByService[service]))
			for _, port := range bootstrap.ExposedPortsByService[service] {
				ports = append(ports, fmt.Sprintf("%d", port))
			}
			fmt.Fprintf(&sb, "- `%s`: %s\n", service, strings.Join(ports, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Usage\n\n")
	sb.WriteString("```yaml\n")
	sb.WriteString("- hosts: docker_hosts\n")
	sb.WriteString("  roles:\n")
	fmt.Fprintf(&sb, "    - role: %s\n", bootstrap.RoleName)
	sb.WriteString("```\n")

	return sb.String()
}

// valueCell renders a default's value for the defaults table, secret values
// are never shown
func valueCell(d Default) string {
	if d.IsSecret {
		return "`********`"
	}
	switch v := d.Value.(type) {
	case map[string]string:
		pairs := make([]string, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			pairs = append(pairs, fmt.Sprintf("%s: %s", k, v[k]))
		}
		return strings.Join(pairs, ", ")
	default:
		return fmt.Sprintf("`%v`", v)
	}
}
