// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/output"
	"github.com/tfctl/combctl/internal/resolver"
)

// showCommandAction prints the effective configuration for a file or
// directory, or for a preset when --preset is given.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	opts, err := OptionsFromCommand(cmd)
	if err != nil {
		return err
	}

	format, err := Format(cmd)
	if err != nil {
		return err
	}

	r := resolver.New()

	var cfg *resolver.ResolvedConfig
	if name := cmd.String("preset"); name != "" {
		cfg, err = r.LoadConfig(resolver.FromPreset(name))
	} else {
		var target string
		if target, err = Target(cmd.Args().First()); err != nil {
			return err
		}
		cfg, err = r.Resolve(target, opts.ResolverOptions())
	}
	if err != nil {
		return err
	}

	return output.Render(Writer(cmd), cfg, format, cmd.String("query"), TableOptionsFromCommand(cmd))
}

// showCommandBuilder constructs the cli.Command for "show".
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "show",
		Usage:     "print the effective csscomb config",
		UsageText: "combctl show [FILE|DIR] [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Usage: "show a built-in preset instead of resolving",
				Validator: func(value string) error {
					return FlagValidators(value, PresetValidator)
				},
			},
			&cli.StringFlag{
				Name:  "query",
				Usage: "gjson path selecting part of the config",
			},
		},
		Report: true,
		Action: showCommandAction,
		Meta:   meta,
	}).Build()
}
