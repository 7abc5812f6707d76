// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package fetch

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitLabClient(t *testing.T) {
	doc := "services:\n  web:\n    image: nginx:1.27\n"

	t.Run("fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/raw") && strings.Contains(r.URL.Path, "/repository/files/") {
				assert.Equal(t, "main", r.URL.Query().Get("ref"))
				_, _ = w.Write([]byte(doc))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(server.Close)

		ctx := log.WithContext(t.Context(), log.New(io.Discard))

		client, err := NewGitLabClient(server.Client(), server.URL, "")
		require.NoError(t, err)

		rc, err := client.Fetch(ctx, nil)
		assert.Nil(t, rc)
		require.EqualError(t, err, "uri is nil")

		u, err := ResolveRelative(nil, "file:compose.yaml", nil)
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, u)
		require.EqualError(t, err, `purl scheme is not "pkg": "file"`)
		assert.Nil(t, rc)

		u, err = ResolveRelative(nil, "pkg:github/acme/site", nil)
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, u)
		require.EqualError(t, err, `purl type is not "gitlab": "github"`)
		assert.Nil(t, rc)

		u, err = ResolveRelative(nil, "pkg:gitlab/acme/site@main#deploy/compose.yaml", nil)
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, u)
		require.NoError(t, err)

		b, err := io.ReadAll(rc)
		require.NoError(t, err)

		assert.Equal(t, doc, string(b))
	})

	t.Run("environment variables", func(t *testing.T) {
		_, err := NewGitLabClient(nil, "", "")
		require.NoError(t, err)

		customEnv := "CUSTOM_GITLAB_TOKEN"
		_, err = NewGitLabClient(nil, "", customEnv)
		require.Error(t, err)
		assert.Contains(t, err.Error(), customEnv)

		t.Setenv(customEnv, "dummy-token")
		client, err := NewGitLabClient(nil, "", customEnv)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("base url", func(t *testing.T) {
		client, err := NewGitLabClient(nil, "", "")
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.com/api/v4/", client.client.BaseURL().String())

		client, err = NewGitLabClient(nil, "https://gitlab.example.com/", "")
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v4/", client.client.BaseURL().String())
	})
}
