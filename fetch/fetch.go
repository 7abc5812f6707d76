// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package fetch provides clients for retrieving compose files and schema documents.
package fetch

import (
	"context"
	"io"
	"net/url"

	"github.com/package-url/packageurl-go"
)

// DefaultFileName is the default file name to use when a path resolves to "."
const DefaultFileName = "compose.yaml"

// DefaultVersion is the default version to use when a version is not specified
const DefaultVersion = "main"

// QualifierTokenFromEnv is the qualifier for the token to use when fetching a package
const QualifierTokenFromEnv = "token-from-env"

// QualifierBaseURL is the qualifier for the base URL to use when fetching a package
const QualifierBaseURL = "base"

// OCIQueryParamInsecureSkipTLSVerify disables TLS certificate verification for oci URLs
const OCIQueryParamInsecureSkipTLSVerify = "insecure-skip-tls-verify"

// OCIQueryParamPlainHTTP uses plain HTTP instead of HTTPS for oci URLs
const OCIQueryParamPlainHTTP = "plain-http"

// Fetcher fetches a file from a local or remote location.
type Fetcher interface {
	Fetch(context.Context, *url.URL) (io.ReadCloser, error)
}

// PackageAliasMapper handles mapping package URL aliases to their resolved forms
type PackageAliasMapper interface {
	ResolveAlias(packageurl.PackageURL) (packageurl.PackageURL, bool)
}
