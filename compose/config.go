// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Resolver canonicalizes compose projects by shelling out to
// "docker compose config". Interpolation, extends, includes and profiles
// are all handled by docker itself, so the output matches what an actual
// deployment would run.
type Resolver struct {
	// Bin is the docker binary to invoke, "docker" when empty.
	Bin string
	// Dir is the working directory for the docker process. Relative
	// env_file and bind mount paths resolve against it, matching how
	// docker treats the directory of the first compose file.
	Dir string
}

// Resolve renders the given compose files into a single canonical
// document. File order matters: later files override earlier ones.
//
// docker's stderr is passed through so interpolation warnings stay
// visible, and the underlying process error is returned unwrapped enough
// for callers to recover the exit status.
func (r Resolver) Resolve(ctx context.Context, files []string) (*Document, error) {
	if len(files) == 0 {
		return nil, errors.New("no compose files given")
	}
	bin := r.Bin
	if bin == "" {
		bin = "docker"
	}
	args := []string{"compose"}
	for _, f := range files {
		args = append(args, "-f", f)
	}
	args = append(args, "config", "--format", "json", "--no-path-resolution")

	logger := log.FromContext(ctx)
	logger.Debug("resolving compose project", "cmd", bin+" "+strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.Dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%q not found in PATH, install docker or rerun with --no-resolve: %w", bin, err)
		}
		return nil, fmt.Errorf("docker compose config: %w", err)
	}
	return Decode(stdout.Bytes(), files)
}
