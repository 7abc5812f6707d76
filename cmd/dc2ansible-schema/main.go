// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package main is the entry point for the application.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	dc2ansible "github.com/DadaDaMotha/ansible-deploy-docker-compose-template"
)

func main() {
	schema := dc2ansible.BootstrapSchema()

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v", err)
		os.Exit(1)
	}

	fmt.Fprint(os.Stdout, string(b))
}
