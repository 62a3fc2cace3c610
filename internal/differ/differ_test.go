// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/combctl/internal/preset"
	"github.com/tfctl/combctl/internal/resolver"
)

func mustPreset(t *testing.T, name string) *resolver.ResolvedConfig {
	t.Helper()
	cfg, err := resolver.LoadConfig(resolver.FromPreset(name))
	require.NoError(t, err)
	return cfg
}

func TestCompare_Identical(t *testing.T) {
	a := mustPreset(t, string(preset.Zen))
	b := mustPreset(t, string(preset.Zen))

	d, err := Compare(a, b)
	require.NoError(t, err)
	assert.True(t, d.Identical())

	out, err := d.Render(false)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompare_Modified(t *testing.T) {
	a := &resolver.ResolvedConfig{
		Rules:   map[string]any{"color-case": "lower", "block-indent": "    "},
		Exclude: []string{"vendor/**"},
	}
	b := &resolver.ResolvedConfig{
		Rules: map[string]any{"color-case": "upper", "block-indent": "    "},
	}

	d, err := Compare(a, b)
	require.NoError(t, err)
	assert.False(t, d.Identical())

	out, err := d.Render(false)
	require.NoError(t, err)
	assert.Contains(t, out, `"color-case": "lower"`)
	assert.Contains(t, out, `"color-case": "upper"`)
	assert.Contains(t, out, "vendor/**")
}

func TestCompare_Ignore(t *testing.T) {
	a := &resolver.ResolvedConfig{Rules: map[string]any{"color-case": "lower", "eof-newline": true}}
	b := &resolver.ResolvedConfig{Rules: map[string]any{"color-case": "upper", "eof-newline": true}}

	d, err := Compare(a, b, "color-case")
	require.NoError(t, err)
	assert.True(t, d.Identical())
}

func TestCompare_Nil(t *testing.T) {
	_, err := Compare(nil, &resolver.ResolvedConfig{})
	assert.Error(t, err)
}

func TestDocument_Ignore(t *testing.T) {
	cfg := &resolver.ResolvedConfig{
		Rules:   map[string]any{"color-case": "lower"},
		Exclude: []string{"*.min.css"},
	}

	doc, err := document(cfg, "exclude")
	require.NoError(t, err)
	assert.NotContains(t, doc, "exclude")
	assert.Equal(t, "lower", doc["color-case"])
}

func TestDelta_NilIsIdentical(t *testing.T) {
	var d *Delta
	assert.True(t, d.Identical())
}
