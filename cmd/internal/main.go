// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package main is the entry point for the application
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	dc2ansiblecmd "github.com/DadaDaMotha/ansible-deploy-docker-compose-template/cmd"
)

// this application is only for internal testing only
// in order to replicate / dogfood the user experience of
// embedding dc2ansible as a sub-command
//
// the following is the preferred minimal amount of setup needed
func main() {
	internalRoot := &cobra.Command{
		Use: "internal",
	}

	// small cobra wrapper
	wrap := &cobra.Command{
		Use:                "run",
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		Run: func(_ *cobra.Command, _ []string) {
			os.Args = os.Args[1:]
			code := dc2ansiblecmd.Main()
			os.Exit(code)
		},
	}

	internalRoot.AddCommand(wrap)
	internalRoot.AddCommand(dc2ansiblecmd.NewPublishCmd())

	// multi-call binary w/ wrapper
	switch filepath.Base(os.Args[0]) {
	case "dc2ansible":
		os.Exit(dc2ansiblecmd.Main())
	default:
		internalRoot.Execute()
	}
}
