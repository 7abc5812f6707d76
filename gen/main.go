// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package main regenerates the compose model from the published compose specification schema.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/compose"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/composegen"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/fetch"
)

func run(ctx context.Context, root string) error {
	svc, err := fetch.NewFetcherService()
	if err != nil {
		return err
	}

	uri, err := fetch.ResolveRelative(nil, compose.SchemaURL, nil)
	if err != nil {
		return err
	}

	fetcher, err := svc.GetFetcher(uri)
	if err != nil {
		return err
	}

	rc, err := fetcher.Fetch(ctx, uri)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	src, err := composegen.Generate(data, composegen.Options{
		Package:       "compose",
		Source:        compose.SchemaURL,
		Format:        composegen.FormatJSONSchema,
		Style:         composegen.StyleTaggedStructs,
		TargetVersion: "1.21",
		ReuseModels:   true,
		UnionTypes:    true,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, "compose", "compose_gen.go"), src, 0o644)
}

// main is the entry point for the application
func main() {
	// usage: `go run gen/main.go`
	if err := run(context.Background(), ""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
