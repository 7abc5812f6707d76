// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package fetch

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"github.com/package-url/packageurl-go"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
)

// ResolveRelative resolves a reference relative to the location it was found at.
//
// Absolute references (http(s), pkg, oci) resolve to themselves, file references
// resolve against prev: joined onto the path for http(s), the subpath for pkg and
// the fragment for oci. A nil prev treats schemeless references as local files.
func ResolveRelative(prev *url.URL, ref string, aliases config.AliasMap) (*url.URL, error) {
	uri, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}

	if uri.Scheme == "" {
		if prev != nil {
			return nil, fmt.Errorf("unsupported scheme: %q in %q", uri.Scheme, ref)
		}
		uri = &url.URL{Scheme: "file", Opaque: ref}
	}

	switch uri.Scheme {
	case "http", "https", "oci":
		return uri, nil
	case "pkg":
		pURL, err := packageurl.FromString(uri.String())
		if err != nil {
			return nil, err
		}

		pURL, _ = MapBasedResolver(aliases).ResolveAlias(pURL)

		if pURL.Version == "" {
			pURL.Version = DefaultVersion
		}
		if pURL.Subpath == "" {
			pURL.Subpath = DefaultFileName
		}
		return url.Parse(pURL.String())
	case "file":
	default:
		return nil, fmt.Errorf("unsupported scheme: %q in %q", uri.Scheme, ref)
	}

	if prev == nil {
		return uri, nil
	}

	// absolute file path
	if uri.Opaque == "" {
		return uri, nil
	}

	switch prev.Scheme {
	case "file":
		dir := filepath.Dir(prev.Opaque)
		if dir == "." {
			return uri, nil
		}
		next := &url.URL{
			Scheme:   "file",
			Opaque:   filepath.Join(dir, uri.Opaque),
			RawQuery: uri.RawQuery,
		}
		if next.Opaque == "." {
			next.Opaque = DefaultFileName
		}
		return next, nil
	case "http", "https":
		next := *prev // https://github.com/golang/go/issues/38351
		next.Path = filepath.Join(filepath.Dir(prev.Path), uri.Opaque)
		next.RawQuery = uri.RawQuery
		if next.Path == "." || next.Path == "/" {
			next.Path = "/" + DefaultFileName
		}
		return &next, nil
	case "pkg":
		pURL, err := packageurl.FromString(prev.String())
		if err != nil {
			return nil, err
		}

		pURL, _ = MapBasedResolver(aliases).ResolveAlias(pURL)

		pURL.Subpath = filepath.Join(filepath.Dir(pURL.Subpath), uri.Opaque)
		if pURL.Subpath == "." {
			pURL.Subpath = DefaultFileName
		}
		if pURL.Version == "" {
			pURL.Version = DefaultVersion
		}
		return url.Parse(pURL.String())
	case "oci":
		next := *prev
		next.Fragment = path.Join(path.Dir(next.Fragment), uri.Opaque)
		if next.Fragment == "." {
			next.Fragment = DefaultFileName
		}
		return &next, nil
	default:
		return nil, fmt.Errorf("unsupported scheme: %q in %q", prev.Scheme, prev.String())
	}
}
