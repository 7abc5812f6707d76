// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package secrets

import "fmt"

// passwordstore renders community.general.passwordstore lookups
//
// create=true lets the lookup generate the secret on first use, so running a
// freshly bootstrapped role never requires a pre-seeded store
type passwordstore struct{}

func (passwordstore) Expression(path string, length int) string {
	return fmt.Sprintf("{{ lookup('community.general.passwordstore', '%s create=true length=%d') }}", path, length)
}
