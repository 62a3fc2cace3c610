// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"io"

	"github.com/tfctl/combctl/internal/filters"
	"github.com/tfctl/combctl/internal/preset"
	"github.com/tfctl/combctl/internal/resolver"
)

// PresetRows summarizes every built-in preset: its name, how many rules it
// sets, how many sort-order groups it declares and whether it is the default.
func PresetRows() ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	for _, name := range preset.Names() {
		cfg, err := resolver.LoadConfig(resolver.FromPreset(string(name)))
		if err != nil {
			return nil, err
		}

		groups := 0
		if so, ok := cfg.Rules["sort-order"].([]any); ok {
			groups = len(so)
		}

		def := ""
		if name == preset.Default {
			def = "*"
		}

		rows = append(rows, map[string]interface{}{
			"name":    string(name),
			"rules":   len(cfg.Rules),
			"groups":  groups,
			"default": def,
		})
	}
	return rows, nil
}

// PresetTable writes the preset catalogue. Text renders a table; JSON and YAML
// encode the rows.
func PresetTable(w io.Writer, format Format, opts TableOptions) error {
	rows, err := PresetRows()
	if err != nil {
		return err
	}
	rows = filters.Apply(rows, opts.Filter)

	if format != FormatText {
		list := make([]interface{}, len(rows))
		for i, r := range rows {
			list[i] = r
		}
		return Encode(w, list, format)
	}

	TableWriter(rows, []string{"name", "rules", "groups", "default"}, opts, w)
	return nil
}
