// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the combctl
	// subcommand and also represents the namespace key to be used when
	// retrieving option values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing options file is fine; every option has a default.
	cfg, _ := config.Load(ns) //nolint
	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "combctl",
		Usage: "csscomb config resolver and runner",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "combctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands, commands(meta)...)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

func commands(meta meta.Meta) []*cli.Command {
	return []*cli.Command{
		runCommandBuilder(meta),
		resolveCommandBuilder(meta),
		showCommandBuilder(meta),
		diffCommandBuilder(meta),
		presetsCommandBuilder(meta),
		completionCommandBuilder(meta),
	}
}

// BoolFlags returns every spelling ("-q", "--quiet", ...) of the boolean flags
// accepted by the named subcommand, plus help and version. These never take
// the following argument as their value.
func BoolFlags(name string) map[string]bool {
	out := map[string]bool{}
	add := func(names []string) {
		for _, n := range names {
			out["-"+n] = true
			out["--"+n] = true
		}
	}
	add([]string{"help", "h", "version", "v"})

	for _, cmd := range commands(meta.Meta{}) {
		if cmd.Name != name {
			continue
		}
		for _, f := range cmd.Flags {
			if _, ok := f.(*cli.BoolFlag); ok {
				add(f.Names())
			}
		}
	}

	return out
}
