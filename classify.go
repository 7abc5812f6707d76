// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// defaultSecretPattern matches the environment key names that are treated as
// secrets without any further configuration
var defaultSecretPattern = regexp.MustCompile(`(?i)(password|secret|token|api_key|db_pass|secret_key)$`)

// SecretClassifier decides which environment variables hold secret values
type SecretClassifier struct {
	extra   *regexp.Regexp
	program *vm.Program
}

// NewSecretClassifier builds a classifier from optional extensions to the
// default key patterns
//
// patterns are regular expressions matched against key names, rule is an
// expr expression evaluated with key, value and service in scope
func NewSecretClassifier(patterns []string, rule string) (*SecretClassifier, error) {
	c := &SecretClassifier{}

	if len(patterns) > 0 {
		re, err := regexp.Compile("(" + strings.Join(patterns, "|") + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid secret pattern: %w", err)
		}
		c.extra = re
	}

	if rule != "" {
		program, err := expr.Compile(rule, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("invalid secret rule: %w", err)
		}
		c.program = program
	}

	return c, nil
}

// IsSecret reports whether an environment variable should be handled as a secret
func (c *SecretClassifier) IsSecret(service, key string, value any) (bool, error) {
	if defaultSecretPattern.MatchString(key) {
		return true, nil
	}

	if c.extra != nil && c.extra.MatchString(key) {
		return true, nil
	}

	if c.program == nil {
		return false, nil
	}

	env := map[string]any{
		"key":     key,
		"value":   value,
		"service": service,
	}

	out, err := expr.Run(c.program, env)
	if err != nil {
		return false, err
	}

	return out.(bool), nil // this is safe due to expr.AsBool()
}
