// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"oras.land/oras-go/v2/registry"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/retry"

	dc2ansible "github.com/DadaDaMotha/ansible-deploy-docker-compose-template"
)

// NewPublishCmd creates the publish command, suitable for standalone use or
// embedding as a sub-command.
func NewPublishCmd() *cobra.Command {
	var (
		level           string
		ver             bool
		plainHTTP       bool
		insecureSkipTLS bool
		dir             string
		files           []string
	)

	publish := &cobra.Command{
		Use:           "dc2ansible-publish",
		Short:         "Pack compose file(s) into an OCI artifact and publish",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				switch bi.Main.Path {
				case "github.com/DadaDaMotha/ansible-deploy-docker-compose-template":
					fmt.Fprintln(cmd.OutOrStdout(), bi.Main.Version)
				default:
					for _, dep := range bi.Deps {
						if dep.Path == "github.com/DadaDaMotha/ansible-deploy-docker-compose-template" {
							fmt.Fprintln(cmd.OutOrStdout(), dep.Version)
							break
						}
					}
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("requires a registry reference")
			}

			if dir != "" {
				if err := os.Chdir(dir); err != nil {
					return err
				}
			}

			ref, err := registry.ParseReference(args[0])
			if err != nil {
				return fmt.Errorf("unable to parse reference: %w", err)
			}
			if err := ref.ValidateReferenceAsTag(); err != nil {
				return fmt.Errorf("reference is not a tag: %w", err)
			}

			dst, err := remote.NewRepository(ref.String())
			if err != nil {
				return err
			}
			dst.PlainHTTP = plainHTTP
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.TLSClientConfig.InsecureSkipVerify = insecureSkipTLS
			dst.Client = &http.Client{
				Transport: retry.NewTransport(transport),
			}

			logger.Debug("publishing", "ref", ref.String(), "files", files)

			return dc2ansible.Publish(ctx, dst, files)
		},
	}

	publish.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = publish.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	publish.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	publish.Flags().BoolVar(&plainHTTP, "plain-http", false, "Allow insecure connections to registry without SSL check")
	publish.Flags().BoolVar(&insecureSkipTLS, "insecure-skip-tls-verify", false, "Allow connections to SSL registry without certs")
	publish.Flags().StringVarP(&dir, "directory", "C", "", "Change to directory before doing anything")
	_ = publish.MarkFlagDirname("directory")
	publish.Flags().StringArrayVarP(&files, "file", "f", nil, "Compose file(s) to pack, later files override earlier ones")
	_ = publish.MarkFlagFilename("file", "yaml", "yml")

	return publish
}

// PublishMain executes the publish command for the dc2ansible-publish CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func PublishMain() int {
	cli := NewPublishCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)

	if err := cli.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}
