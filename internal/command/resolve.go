// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/output"
	"github.com/tfctl/combctl/internal/resolver"
)

// resolveCommandAction reports, for each file, which configuration applies
// and whether the exclude patterns let it through.
func resolveCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.NArg() == 0 {
		return errors.New("at least one file is required")
	}

	opts, err := OptionsFromCommand(cmd)
	if err != nil {
		return err
	}

	format, err := Format(cmd)
	if err != nil {
		return err
	}

	r := resolver.New()
	for _, arg := range cmd.Args().Slice() {
		target, err := Target(arg)
		if err != nil {
			return err
		}

		cfg, err := r.Resolve(target, opts.ResolverOptions())
		if err != nil {
			return err
		}

		d := resolver.IsEligible(cfg, target, ProjectRootFor(opts, target))
		if err := output.RenderDecision(Writer(cmd), target, cfg, d, format, cmd.String("filter")); err != nil {
			return err
		}
	}

	return nil
}

// resolveCommandBuilder constructs the cli.Command for "resolve".
func resolveCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "resolve",
		Usage:     "show which config applies to files and whether they are excluded",
		UsageText: "combctl resolve FILE... [options]",
		Report:    true,
		Action:    resolveCommandAction,
		Meta:      meta,
	}).Build()
}
