// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// HTTPClient fetches a file from a remote HTTP server
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient returns a new HTTPClient
func NewHTTPClient(client *http.Client) *HTTPClient {
	return &HTTPClient{client: client}
}

// Fetch performs a GET request against the provided URL and returns the response body
func (f *HTTPClient) Fetch(ctx context.Context, uri *url.URL) (io.ReadCloser, error) {
	if uri == nil {
		return nil, fmt.Errorf("uri is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "dc2ansible")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", uri, resp.Status)
	}
	return resp.Body, nil
}
