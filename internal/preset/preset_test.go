// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package preset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaw_AllPresetsDecode(t *testing.T) {
	for _, name := range Names() {
		t.Run(string(name), func(t *testing.T) {
			raw, err := Raw(string(name))
			require.NoError(t, err)

			var rules map[string]any
			require.NoError(t, json.Unmarshal(raw, &rules))
			assert.Contains(t, rules, "sort-order")
			assert.Equal(t, []any{".git/**", "node_modules/**", "bower_components/**"}, rules["exclude"])
		})
	}
}

func TestRaw_Unknown(t *testing.T) {
	raw, err := Raw("airbnb")
	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorContains(t, err, "csscomb")
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("zen"))
	assert.True(t, Valid("yandex"))
	assert.False(t, Valid("Zen"))
	assert.False(t, Valid(""))
}

func TestNames_IsACopy(t *testing.T) {
	n := Names()
	n[0] = "mutated"
	assert.Equal(t, Csscomb, Names()[0])
	assert.Equal(t, []string{"csscomb", "yandex", "zen"}, Strings())
}
