// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

// Package secrets renders the lookup expressions a generated role uses to
// resolve its secret values at deploy time
package secrets

import (
	"fmt"
	"slices"
	"sync"
)

var _register sync.RWMutex

// Provider renders the expression a role places into its defaults for one secret
//
// Expressions are emitted verbatim into the bootstrap document and never
// evaluated by this tool
type Provider interface {
	Expression(path string, length int) string
}

var _registrations = map[string]func() Provider{
	"passwordstore": func() Provider { return passwordstore{} },
}

// Get retrieves a new instance of a registered secret provider
//
// Returns nil if the provider doesn't exist
func Get(name string) Provider {
	_register.RLock()
	factory, exists := _registrations[name]
	_register.RUnlock()

	if !exists {
		return nil
	}
	return factory()
}

// Register registers a new secret provider
func Register(name string, registrationFunc func() Provider) error {
	_register.Lock()
	defer _register.Unlock()

	_, exists := _registrations[name]
	if exists {
		return fmt.Errorf("%q is already registered", name)
	}

	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	if registrationFunc == nil {
		return fmt.Errorf("registration function cannot be nil")
	}

	_registrations[name] = registrationFunc
	return nil
}

// Names returns a list of all secret provider names
func Names() []string {
	_register.RLock()
	defer _register.RUnlock()

	result := make([]string, 0, len(_registrations))
	for name := range _registrations {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}
