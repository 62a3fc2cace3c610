// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comb

import (
	"context"
	"errors"

	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/engine"
	"github.com/tfctl/combctl/internal/host"
	"github.com/tfctl/combctl/internal/notify"
	"github.com/tfctl/combctl/internal/resolver"
)

// CommandName is the command registered with the host.
const CommandName = "css-comb:run"

// Integration wires combing into a host: a command that combs the active
// document and a will-save hook. Every registration is tracked so Deactivate
// releases all of them exactly once.
type Integration struct {
	Engine   engine.Engine
	Notifier notify.Sink
	Options  config.Options
	Resolver *resolver.Resolver

	// OnOutcome, when set, observes every completed pass.
	OnOutcome func(Outcome, error)

	registry *host.Registry
}

// Activate registers the command and the will-save hook with h.
func (i *Integration) Activate(h host.Host) {
	if i.registry != nil {
		i.registry.Dispose()
	}
	i.registry = &host.Registry{}

	i.registry.Add(h.RegisterCommand(CommandName, func(ctx context.Context) error {
		doc := h.ActiveDocument()
		if doc == nil {
			return errors.New("no active document")
		}
		_, err := i.run(ctx, doc, TriggerCommand)
		return err
	}))

	i.registry.Add(h.OnWillSave(func(ctx context.Context, doc host.Document) error {
		_, err := i.run(ctx, doc, TriggerSave)
		return err
	}))
}

// Deactivate releases every registration made by Activate. It is safe to call
// more than once.
func (i *Integration) Deactivate() {
	if i.registry == nil {
		return
	}
	i.registry.Dispose()
}

// Active reports whether registrations are live.
func (i *Integration) Active() bool {
	return i.registry != nil && i.registry.Len() > 0
}

func (i *Integration) run(ctx context.Context, doc host.Document, trigger Trigger) (Outcome, error) {
	c := &Combiner{
		Doc:      doc,
		Engine:   i.Engine,
		Notifier: i.Notifier,
		Options:  i.Options,
		Resolver: i.Resolver,
	}
	out, err := c.Comb(ctx, trigger)
	if i.OnOutcome != nil {
		i.OnOutcome(out, err)
	}
	return out, err
}
