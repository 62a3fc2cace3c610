// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comb

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/engine"
	"github.com/tfctl/combctl/internal/host"
	"github.com/tfctl/combctl/internal/log"
	"github.com/tfctl/combctl/internal/notify"
	"github.com/tfctl/combctl/internal/resolver"
)

// Notification texts.
const (
	MsgIgnored          = "File is ignored in csscomb config"
	MsgFileProcessed    = "File processed by csscomb"
	MsgLinesProcessed   = "Lines processed by csscomb"
	MsgStylusSelection  = "Stylus is not supported yet!"
	MsgNothingToProcess = "Nothing to process"
)

// Trigger identifies what started a combing pass.
type Trigger int

const (
	TriggerCommand Trigger = iota
	TriggerSave
)

func (t Trigger) String() string {
	if t == TriggerSave {
		return "save"
	}
	return "command"
}

// Scope is the part of the document a pass operates on.
type Scope string

const (
	ScopeNone      Scope = ""
	ScopeBuffer    Scope = "buffer"
	ScopeSelection Scope = "selection"
)

// Outcome describes what a pass did. Skipped is set when the trigger did not
// apply (on-save disabled or unsupported grammar) and nothing was examined.
type Outcome struct {
	Trigger  Trigger
	Scope    Scope
	Decision resolver.Decision
	Config   *resolver.ResolvedConfig
	Dialect  string
	Changed  bool
	Skipped  bool
}

// Combiner binds a document to the collaborators a pass needs.
type Combiner struct {
	Doc      host.Document
	Engine   engine.Engine
	Notifier notify.Sink
	Options  config.Options
	Resolver *resolver.Resolver
}

// Comb runs one pass for trigger. The returned error is non-nil when the
// configuration could not be loaded, the selection dialect is unsupported,
// the engine failed or the document rejected the edit. In every error case the
// document is unchanged.
func (c *Combiner) Comb(ctx context.Context, trigger Trigger) (Outcome, error) {
	out := Outcome{Trigger: trigger}
	doc := c.Doc
	if doc == nil {
		return out, errors.New("no active document")
	}

	if trigger == TriggerSave && !c.appliesOnSave() {
		log.Debugf("comb: save trigger skipped for %s (on-save=%t grammar=%s)",
			doc.Path(), c.Options.UpdateOnSave, doc.Grammar())
		out.Skipped = true
		return out, nil
	}

	cfg, err := c.resolverOrDefault().Resolve(doc.Path(), c.Options.ResolverOptions())
	if err != nil {
		return out, c.fail(err)
	}
	out.Config = cfg
	log.WithField("origin", cfg.Origin()).Debugf("comb: resolved config for %s", doc.Path())

	out.Decision = resolver.IsEligible(cfg, doc.Path(), c.Options.ProjectRoot)
	if !out.Decision.Eligible {
		log.Debugf("comb: %s ignored by pattern %q", out.Decision.RelPath, out.Decision.Pattern)
		notify.Info(c.sink(), MsgIgnored)
		return out, nil
	}

	// Ignored files report as ignored even when there is nothing to process.
	text, sel, scope := c.target(trigger)
	out.Scope = scope
	if text == "" {
		out.Decision = resolver.Decision{Eligible: false, Reason: resolver.ReasonNoSelectionNoText}
		notify.Info(c.sink(), MsgNothingToProcess)
		return out, nil
	}

	out.Dialect = resolver.SelectSyntaxDialect(doc.Grammar(), c.Options.ProcessStylus)
	if scope == ScopeSelection && out.Dialect == resolver.DialectStylus {
		log.Warnf("comb: refusing stylus selection in %s", doc.Path())
		notify.Error(c.sink(), MsgStylusSelection)
		return out, &resolver.DialectUnsupportedError{
			Dialect: resolver.DialectStylus,
			Reason:  "selections cannot be processed",
		}
	}

	eng := c.Engine
	if eng == nil {
		eng = engine.NewExecEngine(c.Options.Engine)
	}

	result, err := eng.Process(ctx, cfg.RulesCopy(), text, out.Dialect)
	if err != nil {
		return out, c.fail(err)
	}
	log.Debugf("comb: %s %s in, %s out", scope,
		humanize.Bytes(uint64(len(text))), humanize.Bytes(uint64(len(result))))

	out.Changed = result != text
	if scope == ScopeSelection {
		err = doc.ReplaceRange(sel, result)
	} else {
		err = doc.SetText(result)
	}
	if err != nil {
		out.Changed = false
		return out, c.fail(fmt.Errorf("applying result: %w", err))
	}

	if scope == ScopeSelection {
		notify.Info(c.sink(), MsgLinesProcessed)
	} else {
		notify.Info(c.sink(), MsgFileProcessed)
	}

	return out, nil
}

func (c *Combiner) appliesOnSave() bool {
	return c.Options.UpdateOnSave && resolver.Supported(c.Doc.Grammar())
}

// target picks the text to process. Saves always take the whole buffer.
func (c *Combiner) target(trigger Trigger) (string, host.Range, Scope) {
	if trigger == TriggerCommand {
		if sel, ok := c.Doc.Selection(); ok && !sel.Empty() {
			if text := host.SelectedText(c.Doc); text != "" {
				return text, sel, ScopeSelection
			}
		}
	}
	return c.Doc.Text(), host.Range{}, ScopeBuffer
}

func (c *Combiner) fail(err error) error {
	log.WithError(err).Errorf("comb: %s", c.Doc.Path())
	notify.Error(c.sink(), err.Error())
	return err
}

func (c *Combiner) sink() notify.Sink {
	return notify.Toggle{Enabled: c.Options.ShowNotifications, Next: c.Notifier}
}

func (c *Combiner) resolverOrDefault() *resolver.Resolver {
	if c.Resolver != nil {
		return c.Resolver
	}
	return resolver.New()
}
