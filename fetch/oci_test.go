// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package fetch_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/olareg/olareg"
	olaregcfg "github.com/olareg/olareg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"

	dc2ansible "github.com/DadaDaMotha/ansible-deploy-docker-compose-template"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/fetch"
)

func TestOCIClient(t *testing.T) {
	r1 := olareg.New(olaregcfg.Config{
		Storage: olaregcfg.ConfigStorage{
			StoreType: olaregcfg.StoreMem,
		},
	})
	s1 := httptest.NewServer(r1)
	t.Cleanup(func() {
		s1.Close()
		_ = r1.Close()
	})

	r2 := olareg.New(olaregcfg.Config{
		Storage: olaregcfg.ConfigStorage{
			StoreType: olaregcfg.StoreMem,
		},
	})
	s2 := httptest.NewTLSServer(r2)
	t.Cleanup(func() {
		s2.Close()
		_ = r2.Close()
	})

	// not testing context cancellation at this time
	ctx := log.WithContext(t.Context(), log.New(io.Discard))

	doc := "services:\n  web:\n    image: nginx:1.27\n    env_file: deploy/web.env\n"

	seed := func(server *httptest.Server) {
		tmp := t.TempDir()
		t.Chdir(tmp)

		err := os.WriteFile(fetch.DefaultFileName, []byte(doc), 0o644)
		require.NoError(t, err)

		err = os.Mkdir("deploy", 0o755)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join("deploy", "web.env"), []byte("TZ=UTC\n"), 0o644)
		require.NoError(t, err)

		serverURL, err := url.Parse(server.URL)
		require.NoError(t, err)
		registry := serverURL.Host
		isPlainHTTP := serverURL.Scheme == "http"

		dst, err := remote.NewRepository(fmt.Sprintf("%s/project-1:latest", registry))
		require.NoError(t, err)
		dst.PlainHTTP = isPlainHTTP
		dst.Client = &auth.Client{
			Client: server.Client(),
		}

		err = dc2ansible.Publish(ctx, dst, []string{fetch.DefaultFileName, "deploy/web.env"})
		require.NoError(t, err)
	}

	f := func(server *httptest.Server) {
		serverURL, err := url.Parse(server.URL)
		require.NoError(t, err)
		registry := serverURL.Host
		isPlainHTTP := serverURL.Scheme == "http"
		httpClient := server.Client()

		client, err := fetch.NewOCIClient(httpClient, false, isPlainHTTP)
		require.NoError(t, err)

		uri, err := url.Parse(fmt.Sprintf("oci:%s/project-1:latest", registry))
		require.NoError(t, err)

		rc, err := client.Fetch(ctx, uri)
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, doc, string(b))

		// a named file within the artifact
		uri, err = url.Parse(fmt.Sprintf("oci:%s/project-1:latest#deploy/web.env", registry))
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, uri)
		require.NoError(t, err)

		b, err = io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "TZ=UTC\n", string(b))

		// fails w/ internal not found error
		uri, err = url.Parse(fmt.Sprintf("oci:%s/project-1:latest#other.yaml", registry))
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, uri)
		assert.Nil(t, rc)
		require.EqualError(t, err, "other.yaml: not found")

		// fails w/ HTTP 404
		uri, err = url.Parse(fmt.Sprintf("oci:%s/project-1:dne", registry))
		require.NoError(t, err)

		rc, err = client.Fetch(ctx, uri)
		assert.Nil(t, rc)
		require.EqualError(t, err, fmt.Sprintf("%s/project-1:dne: not found", registry))

		// fails w/ nil uri
		rc, err = client.Fetch(ctx, nil)
		assert.Nil(t, rc)
		require.EqualError(t, err, "uri is nil")

		// fails w/ non-oci protocol scheme
		rc, err = client.Fetch(ctx, &url.URL{})
		assert.Nil(t, rc)
		require.EqualError(t, err, `scheme is not "oci"`)

		// fails w/ invalid reference
		rc, err = client.Fetch(ctx, &url.URL{Scheme: "oci"})
		assert.Nil(t, rc)
		require.EqualError(t, err, `invalid reference: missing registry or repository`)
	}

	seed(s1)
	f(s1)
	seed(s2)
	f(s2)
}
