// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package fetch

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
)

func TestResolveRelative(t *testing.T) {
	tests := []struct {
		name        string
		prev        string
		uri         string
		aliases     config.AliasMap
		next        string
		expectedErr string
	}{
		{
			name: "http -> file",
			prev: "http://example.com/dir/bar.yaml",
			uri:  "file:foo.env",
			next: "http://example.com/dir/foo.env",
		},
		{
			name: "https -> file",
			prev: "https://example.com/dir/bar.yaml",
			uri:  "file:foo.env",
			next: "https://example.com/dir/foo.env",
		},
		{
			name: "http -> file with double dot path",
			prev: "http://example.com/dir/bar.yaml",
			uri:  "file:..",
			next: "http://example.com/compose.yaml",
		},
		{
			name: "http -> file with dot path",
			prev: "http://example.com/dir/bar.yaml",
			uri:  "file:.",
			next: "http://example.com/dir",
		},
		{
			name: "http -> file carries query",
			prev: "http://example.com/dir/bar.yaml",
			uri:  "file:foo.env?ref=prod",
			next: "http://example.com/dir/foo.env?ref=prod",
		},
		{
			name: "pkg -> file",
			prev: "pkg:github/owner/repo@main#dir/bar.yaml",
			uri:  "file:foo.env",
			next: "pkg:github/owner/repo@main#dir/foo.env",
		},
		{
			name:        "nil prev: invalid pkg url", // https://raw.githubusercontent.com/package-url/purl-spec/master/test-suite-data.json
			uri:         "pkg:EnterpriseLibrary.Common@6.0.1304",
			expectedErr: "purl is missing type or name",
		},
		{
			name: "pkg -> file with dot path",
			prev: "pkg:github/owner/repo@main#dir/bar.yaml",
			uri:  "file:.",
			next: "pkg:github/owner/repo@main#dir",
		},
		{
			name: "file -> file",
			prev: "file:bar.yaml",
			uri:  "file:foo.env",
			next: "file:foo.env",
		},
		{
			name: "file -> file with dot path",
			prev: "file:bar.yaml",
			uri:  "file:.",
			next: "file:.",
		},
		{
			name: "http -> http",
			prev: "http://example.com/bar.yaml",
			uri:  "http://example.com/other.yaml",
			next: "http://example.com/other.yaml",
		},
		{
			name: "http -> pkg",
			prev: "http://example.com/bar.yaml",
			uri:  "pkg:github/owner/repo",
			next: "pkg:github/owner/repo@main#compose.yaml",
		},
		{
			name: "pkg with no subpath",
			prev: "file:/dir/bar.yaml",
			uri:  "pkg:github/owner/repo",
			next: "pkg:github/owner/repo@main#compose.yaml",
		},
		{
			name: "pkg with no version",
			prev: "file:/dir/bar.yaml",
			uri:  "pkg:github/owner/repo#dir/foo.yaml",
			next: "pkg:github/owner/repo@main#dir/foo.yaml",
		},
		{
			name: "pkg with version and subpath",
			prev: "file:/dir/bar.yaml",
			uri:  "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			next: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
		},
		{
			name: "pkg -> file with path traversal",
			prev: "pkg:github/owner/repo@v1.0.0#dir/bar.yaml",
			uri:  "file:../env/foo.env",
			next: "pkg:github/owner/repo@v1.0.0#env/foo.env",
		},
		{
			name:        "file -> file with invalid uri parse",
			prev:        "file:bar.yaml",
			uri:         "http://invalid%url",
			expectedErr: "parse \"http://invalid%url\": invalid URL escape \"%ur\"",
		},
		{
			name:        "file -> file with no scheme",
			prev:        "file:bar.yaml",
			uri:         "no-scheme",
			expectedErr: `unsupported scheme: "" in "no-scheme"`,
		},
		{
			name:        "file with no scheme -> file",
			prev:        "no-scheme",
			uri:         "file:foo.env",
			expectedErr: `unsupported scheme: "" in "no-scheme"`,
		},
		{
			name: "file -> file with directory path",
			prev: "file:dir/bar.yaml",
			uri:  "file:foo.env",
			next: "file:dir/foo.env",
		},
		{
			name: "file -> file with host form",
			prev: "file://dir/bar.yaml",
			uri:  "file:foo.env",
			next: "file:foo.env",
		},
		{
			name: "file -> file with directory path and dot replacement",
			prev: "file:dir/bar.yaml",
			uri:  "file:.",
			next: "file:dir",
		},
		{
			name: "pkg -> pkg",
			prev: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			uri:  "pkg:github/owner/repo2@v2.0.0#dir/bar.yaml",
			next: "pkg:github/owner/repo2@v2.0.0#dir/bar.yaml",
		},
		{
			name: "pkg -> http",
			prev: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			uri:  "http://example.com/other.yaml",
			next: "http://example.com/other.yaml",
		},
		{
			name: "file -> http",
			prev: "file:dir/bar.yaml",
			uri:  "http://example.com/other.yaml",
			next: "http://example.com/other.yaml",
		},
		{
			name: "file -> https",
			prev: "file:dir/bar.yaml",
			uri:  "https://example.com/other.yaml",
			next: "https://example.com/other.yaml",
		},
		{
			name: "file -> pkg",
			prev: "file:dir/bar.yaml",
			uri:  "pkg:github/owner/repo@v1.0.0#dir/bar.yaml",
			next: "pkg:github/owner/repo@v1.0.0#dir/bar.yaml",
		},
		{
			name:        "unsupported scheme",
			prev:        "file:dir/bar.yaml",
			uri:         "ftp://example.com/bar.yaml",
			expectedErr: `unsupported scheme: "ftp" in "ftp://example.com/bar.yaml"`,
		},
		{
			name: "nil prev: pkg",
			uri:  "pkg:github/owner/repo",
			next: "pkg:github/owner/repo@main#compose.yaml",
		},
		{
			name: "pkg -> file with dot subpath",
			prev: "pkg:github/owner/repo@v1.0.0#.",
			uri:  "file:foo.env",
			next: "pkg:github/owner/repo@v1.0.0#foo.env",
		},
		{
			name: "pkg -> file with empty version",
			prev: "pkg:github/owner/repo#dir/foo.yaml",
			uri:  "file:bar.env",
			next: "pkg:github/owner/repo@main#dir/bar.env",
		},
		{
			name: "pkg -> file with dot subpath replacement",
			prev: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			uri:  "file:../.",
			next: "pkg:github/owner/repo@v1.0.0#compose.yaml",
		},
		{
			name: "pkg -> file up one dir",
			prev: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			uri:  "file:..",
			next: "pkg:github/owner/repo@v1.0.0#compose.yaml",
		},
		{
			name: "file -> file up one dir",
			prev: "file:dir/bar.yaml",
			uri:  "file:..",
			next: "file:compose.yaml",
		},
		{
			name: "file -> file up one dir nested",
			prev: "file:dir/sub/subdir/bar.yaml",
			uri:  "file:..",
			next: "file:dir/sub", // only time a join doesn't result in a file
		},
		{
			name: "nil prev: file",
			prev: "",
			uri:  "file:foo/bar.yaml",
			next: "file:foo/bar.yaml",
		},
		{
			name: "nil prev: file without scheme",
			uri:  "foo/bar.yaml",
			next: "file:foo/bar.yaml",
		},
		{
			name: "nil prev: abs file without scheme",
			uri:  "/foo/bar.yaml",
			next: "file:/foo/bar.yaml",
		},
		{
			name: "relative file -> abs file",
			prev: "file:foo/bar.yaml",
			uri:  "file:/",
			next: "file:/",
		},
		{
			name: "oci -> file",
			prev: "oci:registry.example.com/acme/site:latest",
			uri:  "file:foo.env",
			next: "oci:registry.example.com/acme/site:latest#foo.env",
		},
		{
			name: "oci -> nested",
			prev: "oci:registry.example.com/acme/site:latest#compose.yaml",
			uri:  "file:deploy/foo.env",
			next: "oci:registry.example.com/acme/site:latest#deploy/foo.env",
		},
		{
			name: "file -> pkg with alias resolution",
			prev: "file:dir/bar.yaml",
			uri:  "pkg:github/owner/repo@v1.0.0#dir/bar.yaml",
			aliases: config.AliasMap{
				"github": {
					Type: "github",
					Base: "https://github.com/",
				},
			},
			next: "pkg:github/owner/repo@v1.0.0?base=https%3A%2F%2Fgithub.com%2F#dir/bar.yaml",
		},
		{
			name: "pkg -> file with alias resolution",
			prev: "pkg:github/owner/repo@v1.0.0#dir/foo.yaml",
			uri:  "file:bar.env",
			aliases: config.AliasMap{
				"github": {
					Type: "github",
					Base: "https://github.com",
				},
			},
			next: "pkg:github/owner/repo@v1.0.0?base=https%3A%2F%2Fgithub.com#dir/bar.env",
		},
		{
			name: "nil prev: pkg with alias resolution",
			uri:  "pkg:gl/owner/repo#deploy/compose.yaml",
			aliases: config.AliasMap{
				"gl": {
					Type:         "gitlab",
					Base:         "https://gitlab.example.com",
					TokenFromEnv: "CI_TOKEN",
				},
			},
			next: "pkg:gitlab/owner/repo@main?base=https%3A%2F%2Fgitlab.example.com&token-from-env=CI_TOKEN#deploy/compose.yaml",
		},
		{
			name:        "pkg -> file with invalid package URL",
			prev:        "pkg:invalid",
			uri:         "file:foo.env",
			expectedErr: "purl is missing type or name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := url.Parse(tc.prev)
			require.NoError(t, err)

			if strings.HasPrefix(tc.name, "nil prev") {
				u = nil
			}

			next, err := ResolveRelative(u, tc.uri, tc.aliases)

			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				assert.Nil(t, next)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, next.Scheme)
				assert.Equal(t, tc.next, next.String())
			}
		})
	}
}
