// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package main is the entry point for the application
package main

import (
	"os"

	"github.com/DadaDaMotha/ansible-deploy-docker-compose-template/cmd"
)

func main() {
	code := cmd.Main()
	os.Exit(code)
}
