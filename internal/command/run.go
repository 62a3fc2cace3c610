// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/tfctl/combctl/internal/comb"
	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/engine"
	"github.com/tfctl/combctl/internal/host"
	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/notify"
	"github.com/tfctl/combctl/internal/resolver"
)

// unsaved hides the Saver side of a document so a host save only fires the
// will-save hooks.
type unsaved struct {
	host.Document
}

// runCommandAction combs each file argument in turn. A failing file does not
// stop the others; every failure is reported in the returned error.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.NArg() == 0 {
		return errors.New("at least one file is required")
	}

	opts, err := OptionsFromCommand(cmd)
	if err != nil {
		return err
	}

	r := &runner{
		opts:     opts,
		engine:   NewEngine(opts),
		notifier: runNotifier(cmd),
		lines:    cmd.String("lines"),
		grammar:  cmd.String("grammar"),
		onSave:   cmd.Bool("save-trigger"),
		stdout:   cmd.Bool("stdout"),
	}

	var errs error
	for _, path := range cmd.Args().Slice() {
		if err := r.run(ctx, cmd, path); err != nil {
			log.Errorf("run: %s: %v", path, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	return errs
}

type runner struct {
	opts     config.Options
	engine   engine.Engine
	notifier notify.Sink
	lines    string
	grammar  string
	onSave   bool
	stdout   bool
}

func (r *runner) run(ctx context.Context, cmd *cli.Command, path string) error {
	doc, err := host.OpenFile(path, host.WithGrammar(r.grammar))
	if err != nil {
		return err
	}

	if r.lines != "" {
		sel, err := host.ParseLineRange(r.lines, doc.Text())
		if err != nil {
			return err
		}
		if err := doc.Select(sel); err != nil {
			return err
		}
	}

	// Per-file project root so relative excludes work across projects.
	opts := r.opts
	opts.ProjectRoot = ProjectRootFor(opts, doc.Path())

	var active host.Document = doc
	if r.stdout {
		active = unsaved{doc}
	}
	h := host.NewFileHost(active)

	var combErr error
	integ := &comb.Integration{
		Engine:   r.engine,
		Notifier: r.notifier,
		Options:  opts,
		Resolver: resolver.New(),
		OnOutcome: func(o comb.Outcome, err error) {
			log.Debugf("run: %s trigger=%s scope=%s changed=%t skipped=%t reason=%s",
				doc.Path(), o.Trigger, o.Scope, o.Changed, o.Skipped, o.Decision.Reason)
			combErr = err
		},
	}
	integ.Activate(h)
	defer integ.Deactivate()

	if r.onSave {
		// The host saves regardless of hook failures, as an editor would.
		if err := h.Save(ctx); err != nil {
			return err
		}
	} else {
		if err := h.Run(ctx, comb.CommandName); err != nil {
			return err
		}
		if !r.stdout {
			if err := doc.Save(); err != nil {
				return err
			}
		}
	}

	if r.stdout && combErr == nil {
		fmt.Fprint(Writer(cmd), doc.Text())
	}

	return combErr
}

// runNotifier picks where notifications go. With --quiet they are only
// logged. Console info lines move to stderr when stdout carries CSS.
func runNotifier(cmd *cli.Command) notify.Sink {
	if cmd.Bool("quiet") {
		return notify.Log{}
	}

	c := notify.NewConsole()
	c.Err = cmd.Root().ErrWriter
	if c.Err == nil {
		c.Err = os.Stderr
	}
	c.Out = Writer(cmd)
	if cmd.Bool("stdout") {
		c.Out = c.Err
	}
	return c
}

// runCommandBuilder constructs the cli.Command for "run".
func runCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "run",
		Usage:     "comb css files in place",
		UsageText: "combctl run FILE... [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lines",
				Aliases: []string{"l"},
				Usage:   "comb only lines FROM:TO (1-based, inclusive)",
			},
			&cli.StringFlag{
				Name:    "grammar",
				Aliases: []string{"g"},
				Usage:   "grammar to use instead of the file extension's",
				Validator: func(value string) error {
					return FlagValidators(value, GrammarValidator)
				},
			},
			&cli.BoolFlag{
				Name:  "save-trigger",
				Usage: "act as the editor's will-save hook (honors --on-save, ignores --lines)",
			},
			&cli.BoolFlag{
				Name:  "stdout",
				Usage: "write the result to stdout instead of the file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "send notifications to the log instead of the console",
			},
		},
		Action: runCommandAction,
		Meta:   meta,
	}).Build()
}
