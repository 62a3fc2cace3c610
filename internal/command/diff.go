// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/differ"
	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/resolver"
)

// diffCommandAction compares the config that applies to a file or directory
// against a preset.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	opts, err := OptionsFromCommand(cmd)
	if err != nil {
		return err
	}

	target, err := Target(cmd.Args().First())
	if err != nil {
		return err
	}

	r := resolver.New()
	cfg, err := r.Resolve(target, opts.ResolverOptions())
	if err != nil {
		return err
	}

	against := cmd.String("against")
	if against == "" {
		against = opts.Preset
	}
	base, err := r.LoadConfig(resolver.FromPreset(against))
	if err != nil {
		return err
	}

	delta, err := differ.Compare(base, cfg, cmd.StringSlice("ignore")...)
	if err != nil {
		return err
	}

	w := Writer(cmd)
	if delta.Identical() {
		fmt.Fprintf(w, "%s matches %s.\n", cfg.Origin(), base.Origin())
		return nil
	}

	text, err := delta.Render(cmd.Bool("color"))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, text)
	return nil
}

// diffCommandBuilder constructs the cli.Command for "diff".
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "diff the effective config against a preset",
		UsageText: "combctl diff [FILE|DIR] [--against PRESET] [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "against",
				Aliases: []string{"a"},
				Usage:   "preset to compare with (defaults to --predef)",
				Validator: func(value string) error {
					return FlagValidators(value, PresetValidator)
				},
			},
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "top-level keys to leave out of the comparison",
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored diff output",
			},
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}
