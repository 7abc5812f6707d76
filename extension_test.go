// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOverrides(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		raw         any
		expected    ServiceOverrides
		expectedErr string
	}{
		{
			name: "no extension",
			raw:  map[string]any{"image": "nginx:1.27"},
		},
		{
			name: "not a mapping",
			raw:  "nope",
		},
		{
			name: "nil service",
			raw:  nil,
		},
		{
			name: "secret and skip",
			raw: map[string]any{
				ExtensionKey: map[string]any{
					"secret": []any{"LICENSE_ID"},
					"skip":   []any{"DEBUG", "TZ"},
				},
			},
			expected: ServiceOverrides{
				Secret: []string{"LICENSE_ID"},
				Skip:   []string{"DEBUG", "TZ"},
			},
		},
		{
			name: "single values become lists",
			raw: map[string]any{
				ExtensionKey: map[string]any{"secret": "LICENSE_ID"},
			},
			expected: ServiceOverrides{Secret: []string{"LICENSE_ID"}},
		},
		{
			name: "unknown keys are ignored",
			raw: map[string]any{
				ExtensionKey: map[string]any{"rename": map[string]any{"FOO": "BAR"}},
			},
		},
		{
			name: "unusable shape",
			raw: map[string]any{
				ExtensionKey: map[string]any{"secret": map[string]any{"FOO": 1}},
			},
			expectedErr: ExtensionKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			overrides, err := serviceOverrides(tc.raw)
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, overrides)
		})
	}
}
