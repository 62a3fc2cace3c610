// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/output"
)

func presetsCommandAction(ctx context.Context, cmd *cli.Command) error {
	format, err := Format(cmd)
	if err != nil {
		return err
	}
	return output.PresetTable(Writer(cmd), format, TableOptionsFromCommand(cmd))
}

// presetsCommandBuilder constructs the cli.Command for "presets". It carries
// only presentation flags; host options do not affect the catalogue.
func presetsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "presets",
		Usage:     "list the built-in presets",
		UsageText: "combctl presets [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags(),
		Action: presetsCommandAction,
	}
}
