// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package cmd provides the root command for the dc2ansible CLI.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"os/signal"
	"path"
	"path/filepath"
	"runtime/debug"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	dc2ansible "github.com/DadaDaMotha/ansible-deploy-docker-compose-template"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/compose"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config"
	configv0 "github.com/DadaDaMotha/ansible-deploy-docker-compose-template/config/v0"
	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/fetch"
)

// NewRootCmd creates the root command for the dc2ansible CLI.
func NewRootCmd() *cobra.Command {
	var (
		files          []string
		roleName       string
		prefix         string
		provider       = config.DefaultSecretProvider // VarP does not allow you to set a default value
		secretTemplate string
		minLength      int
		patterns       []string
		rule           string
		proxy          string
		extNet         string
		uid            int
		out            string
		roleDir        string
		explain        bool
		noResolve      bool
		level          string
		ver            bool
		timeout        time.Duration
		dir            string
		configPath     string
	)

	var cfg *configv0.Config // cfg is not set via CLI flag

	// closure initializer
	loadConfig := func(cmd *cobra.Command) error {
		switch {
		case cmd.Flags().Changed("config"):
			f, err := os.Open(configPath)
			if err != nil {
				return fmt.Errorf("failed to open config file: %w", err)
			}
			defer f.Close()
			cfg, err = configv0.LoadConfig(f)
			if err != nil {
				return fmt.Errorf("failed to load config file: %w", err)
			}
		default:
			// honors $DC2ANSIBLE_CONFIG as a directory override
			var err error
			cfg, err = configv0.LoadDefaultConfig()
			if err != nil {
				return err
			}
		}

		// default < cfg < flags
		if !cmd.Flags().Changed("defaults-prefix") && cfg.DefaultsPrefix != "" {
			prefix = cfg.DefaultsPrefix
		}
		if !cmd.Flags().Changed("secret-provider") && cfg.SecretProvider != "" && cfg.SecretProvider != provider {
			if err := provider.Set(cfg.SecretProvider.String()); err != nil {
				return err // config validates against the same registry during loading, leaving in case a regression happens in schema validation
			}
		}
		if !cmd.Flags().Changed("secret-string-template") && cfg.SecretTemplate != "" {
			secretTemplate = cfg.SecretTemplate
		}
		if !cmd.Flags().Changed("min-secret-length") && cfg.MinSecretLength > 0 {
			minLength = cfg.MinSecretLength
		}
		if !cmd.Flags().Changed("ext-proxy-net") && cfg.ExtProxyNet != "" {
			extNet = cfg.ExtProxyNet
		}
		if !cmd.Flags().Changed("secret-pattern") && len(cfg.SecretPatterns) > 0 {
			patterns = cfg.SecretPatterns
		}

		return nil
	}

	root := &cobra.Command{
		Use:   "dc2ansible",
		Short: "Bootstrap an Ansible role from a docker compose project",
		Example: `
dc2ansible -f docker-compose.yml -p phh_

dc2ansible -f docker-compose.yml -f docker-compose.prod.yml -n pihole --role-dir roles/pihole

dc2ansible -f "pkg:github/DadaDaMotha/deployments#pihole/compose.yaml" --explain
`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if dir != "" {
				if err := os.Chdir(dir); err != nil {
					return err
				}
			}

			return loadConfig(cmd)
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				switch bi.Main.Path {
				case "github.com/DadaDaMotha/ansible-deploy-docker-compose-template":
					fmt.Fprintln(os.Stdout, bi.Main.Version)
				default:
					for _, dep := range bi.Deps {
						if dep.Path == "github.com/DadaDaMotha/ansible-deploy-docker-compose-template" {
							fmt.Fprintln(os.Stdout, dep.Version)
							break
						}
					}
				}
				return nil
			}

			if len(files) == 0 {
				return fmt.Errorf("at least one compose file is required")
			}

			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
				cmd.SetContext(ctx)
			}

			if prefix == "" && !cmd.Flags().Changed("defaults-prefix") && term.IsTerminal(int(os.Stdin.Fd())) {
				err := survey.AskOne(&survey.Input{
					Message: "Prefix for the role's default variables",
					Help:    "Identifier ending in an underscore, e.g. phh_",
				}, &prefix, survey.WithValidator(func(ans any) error {
					s, _ := ans.(string)
					_, err := dc2ansible.NormalizeDefaultsPrefix(s)
					return err
				}))
				if err != nil {
					return err
				}
			}

			local, cleanup, err := localize(ctx, files, cfg.Aliases)
			if err != nil {
				return err
			}
			defer cleanup()

			fsys := afero.NewOsFs()

			var project, original *compose.Document
			if noResolve {
				if len(local) != 1 {
					return fmt.Errorf("--no-resolve supports exactly one compose file, got %d", len(local))
				}
				project, err = compose.Read(fsys, local[0])
				if err != nil {
					return err
				}
			} else {
				for i, p := range local {
					abs, err := filepath.Abs(p)
					if err != nil {
						return err
					}
					local[i] = abs
				}
				resolver := compose.Resolver{Dir: filepath.Dir(local[0])}
				project, err = resolver.Resolve(ctx, local)
				if err != nil {
					return err
				}
			}
			// rewrites operate on a second decode so the template keeps the
			// layout of the file as written
			original, err = compose.Read(fsys, local[0])
			if err != nil {
				return err
			}
			project.Files = slices.Clone(files)

			bootstrap, err := dc2ansible.Convert(ctx, dc2ansible.ConvertOptions{
				Project:          project,
				Original:         original,
				RoleName:         roleName,
				DefaultsPrefix:   prefix,
				SecretProvider:   provider,
				SecretTemplate:   secretTemplate,
				MinSecretLength:  minLength,
				SecretPatterns:   patterns,
				SecretRule:       rule,
				ProxyContainer:   proxy,
				ExternalProxyNet: extNet,
				UID:              uid,
				FS:               fsys,
				Dir:              filepath.Dir(local[0]),
			})
			if err != nil {
				return err
			}

			if explain {
				md := dc2ansible.Explain(bootstrap)
				if termenv.EnvNoColor() || !term.IsTerminal(int(os.Stdout.Fd())) {
					fmt.Fprintln(os.Stdout, md)
					return nil
				}
				renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
				if err != nil {
					return err
				}
				rendered, err := renderer.Render(md)
				if err != nil {
					return err
				}
				fmt.Fprint(os.Stdout, rendered)
				return nil
			}

			if roleDir != "" {
				if err := dc2ansible.WriteRole(fsys, roleDir, bootstrap); err != nil {
					return err
				}
				logger.Info("bootstrapped role", "name", bootstrap.RoleName, "dir", roleDir, "defaults", len(bootstrap.Defaults))
				if !cmd.Flags().Changed("out") {
					return nil
				}
			}

			data, err := json.MarshalIndent(bootstrap, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if out == "-" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return afero.WriteFile(fsys, out, data, 0o644)
		},
	}

	root.Flags().StringArrayVarP(&files, "file", "f", nil, "Compose file(s), later files override earlier ones (local path, http(s), pkg or oci reference)")
	_ = root.MarkFlagFilename("file", "yaml", "yml")
	root.Flags().StringVarP(&roleName, "role-name", "n", "", "Name of the generated role")
	root.Flags().StringVarP(&prefix, "defaults-prefix", "p", "", "Prefix for the role's default variables, prompted for when omitted on a terminal")
	root.Flags().Var(&provider, "secret-provider", fmt.Sprintf(`Provider for generated secret lookups ("%s")`, strings.Join(config.AvailableSecretProviders(), `", "`)))
	_ = root.RegisterFlagCompletionFunc("secret-provider", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.AvailableSecretProviders(), cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().StringVar(&secretTemplate, "secret-string-template", "", "Override the expression template for generated secrets")
	root.Flags().IntVar(&minLength, "min-secret-length", dc2ansible.DefaultMinSecretLength, "Minimum length for generated secrets")
	root.Flags().StringArrayVar(&patterns, "secret-pattern", nil, "Additional regular expression(s) marking environment keys as secrets")
	root.Flags().StringVar(&rule, "secret-rule", "", `Expression deciding whether an environment key is a secret (e.g. 'key matches "^DB_"')`)
	root.Flags().StringVar(&proxy, "proxy-container", "", "Service to attach to the external proxy network")
	root.Flags().StringVarP(&extNet, "ext-proxy-net", "e", dc2ansible.DefaultExternalProxyNet, "Name of the external proxy network")
	root.Flags().IntVar(&uid, "uid", 0, "Rewrite numeric user directives to this UID, 0 leaves them unchanged")
	root.Flags().StringVarP(&out, "out", "o", "-", `Write the bootstrap document to this file, "-" prints to stdout`)
	_ = root.MarkFlagFilename("out", "json")
	root.Flags().StringVar(&roleDir, "role-dir", "", "Write defaults/main.yml and templates/docker-compose.yml.j2 under this directory")
	_ = root.MarkFlagDirname("role-dir")
	root.Flags().BoolVar(&explain, "explain", false, "Print explanation of the bootstrap and exit")
	root.Flags().BoolVar(&noResolve, "no-resolve", false, `Read the compose file as-is instead of rendering it with "docker compose config"`)
	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	root.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Maximum time allowed for execution")
	root.Flags().StringVarP(&dir, "directory", "C", "", "Change to directory before doing anything")
	_ = root.MarkFlagDirname("directory")
	root.Flags().StringVar(&configPath, "config", "${HOME}/.dc2ansible/config.yaml", "Path to dc2ansible config file") // mirrors config.DefaultDirectory
	_ = root.MarkFlagFilename("config", "yaml", "yml")

	return root
}

// localize turns compose file references into paths on the local
// filesystem. Remote references are fetched into a temporary directory
// which the returned cleanup function removes, local paths pass through
// untouched.
func localize(ctx context.Context, refs []string, aliases config.AliasMap) ([]string, func(), error) {
	cleanup := func() {}

	svc, err := fetch.NewFetcherService()
	if err != nil {
		return nil, cleanup, err
	}

	var tmp string
	local := make([]string, 0, len(refs))
	for i, ref := range refs {
		resolved, err := fetch.ResolveRelative(nil, ref, aliases)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to resolve %q: %w", ref, err)
		}

		if resolved.Scheme == "file" {
			local = append(local, localPath(resolved))
			continue
		}

		if tmp == "" {
			tmp, err = os.MkdirTemp("", "dc2ansible-*")
			if err != nil {
				return nil, cleanup, err
			}
			cleanup = func() { _ = os.RemoveAll(tmp) }
		}

		fetcher, err := svc.GetFetcher(resolved)
		if err != nil {
			return nil, cleanup, err
		}
		rc, err := fetcher.Fetch(ctx, resolved)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to fetch %q: %w", resolved, err)
		}

		dst := filepath.Join(tmp, fmt.Sprintf("%d-%s", i, remoteBaseName(resolved)))
		f, err := os.Create(dst)
		if err != nil {
			_ = rc.Close()
			return nil, cleanup, err
		}
		_, err = io.Copy(f, rc)
		_ = rc.Close()
		if cErr := f.Close(); err == nil {
			err = cErr
		}
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to fetch %q: %w", resolved, err)
		}
		local = append(local, dst)
	}
	return local, cleanup, nil
}

// localPath extracts the filesystem path from a file URL, handling both
// opaque (file:foo.yaml) and path (file:///tmp/foo.yaml) forms.
func localPath(uri *url.URL) string {
	clone := *uri
	clone.Scheme = ""
	clone.RawQuery = ""
	return filepath.Clean(clone.String())
}

// remoteBaseName picks a file name for a fetched reference, preferring
// the fragment (oci), then the subpath/path, then the default name.
func remoteBaseName(uri *url.URL) string {
	for _, candidate := range []string{uri.Fragment, uri.Path, uri.Opaque} {
		if name := path.Base(candidate); name != "." && name != "/" {
			return name
		}
	}
	return fetch.DefaultFileName
}

// Main executes the root command for the dc2ansible CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	cmd, err := cli.ExecuteContextC(ctx)
	if err != nil {
		logger.Print("")

		if errors.Is(cmd.Context().Err(), context.DeadlineExceeded) {
			logger.Error("timed out")
		}

		logger.Error(err)
	}
	return ParseExitCode(err)
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 1 - there was some error
// n - the underlying error from an exec.Command
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eErr *exec.ExitError
	if errors.As(err, &eErr) {
		if status, ok := eErr.Sys().(syscall.WaitStatus); ok {
			if status.Exited() {
				return status.ExitStatus()
			}
			if status.Signaled() {
				if status.Signal() == syscall.SIGINT {
					return 130
				}
			}
		}
	}
	return 1
}
