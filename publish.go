// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
)

// MediaTypeComposeProject is the artifact type for published compose projects
const MediaTypeComposeProject = "application/vnd.docker.compose.project"

// MediaTypeComposeFile is the mediatype for individual compose files within an artifact
const MediaTypeComposeFile = "application/vnd.docker.compose.file+yaml"

// Publish pushes a compose project to an OCI registry
//
// Each path is staged as its own layer, annotated with its cleaned relative
// path so fetchers can address individual files by name
func Publish(ctx context.Context, dst *remote.Repository, paths []string) error {
	logger := log.FromContext(ctx)

	if len(paths) == 0 {
		return fmt.Errorf("need at least one compose file")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	ociStore, err := file.New(cwd)
	if err != nil {
		return err
	}
	defer ociStore.Close()

	paths = slices.Compact(slices.Clone(paths))

	layers := []ocispec.Descriptor{}
	for _, p := range paths {
		name := filepath.ToSlash(filepath.Clean(p))
		logger.Debug("staging", "entry", name)

		desc, err := ociStore.Add(ctx, name, MediaTypeComposeFile, p)
		if err != nil {
			return err
		}
		layers = append(layers, desc)
	}

	root, err := oras.PackManifest(ctx, ociStore, oras.PackManifestVersion1_1, MediaTypeComposeProject, oras.PackManifestOptions{
		Layers: layers,
	})
	if err != nil {
		return err
	}

	if err := ociStore.Tag(ctx, root, root.Digest.String()); err != nil {
		return err
	}

	desc, err := oras.Copy(ctx, ociStore, root.Digest.String(), dst, dst.Reference.Reference, oras.DefaultCopyOptions)
	if err != nil {
		return err
	}
	logger.Info("published", "digest", desc.Digest, "to", dst.Reference.Reference)

	return nil
}
