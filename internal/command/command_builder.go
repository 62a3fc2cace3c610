// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/meta"
)

// CommandBuilder constructs a cli.Command for the combctl subcommands using a
// consistent pattern. The builder wires metadata, appends the host option
// flags (namespaced to the command) and optionally the presentation flags, and
// sets up validators.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	// Report adds the --output/--color/--titles/--padding flags.
	Report bool
	Action func(context.Context, *cli.Command) error
	Meta   meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := append(cb.Flags, NewOptionFlags(cb.Name, cb.Meta.Config.Source)...)
	if cb.Report {
		flags = append(flags, NewGlobalFlags()...)
	}

	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: cb.Action,
	}
}
