// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package comb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/combctl/internal/host"
	"github.com/tfctl/combctl/internal/notify"
)

func TestIntegration_ActivateRunDeactivate(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.css"), "a{}")
	doc := openDoc(t, path)
	h := host.NewFileHost(doc)

	var outcomes []Outcome
	i := &Integration{
		Engine:    &upper{},
		Notifier:  notify.Nop{},
		Options:   options(),
		OnOutcome: func(o Outcome, _ error) { outcomes = append(outcomes, o) },
	}

	i.Activate(h)
	assert.True(t, i.Active())
	assert.Equal(t, []string{CommandName}, h.Commands())

	require.NoError(t, h.Run(context.Background(), CommandName))
	assert.Equal(t, "A{}", doc.Text())
	require.Len(t, outcomes, 1)
	assert.Equal(t, TriggerCommand, outcomes[0].Trigger)

	i.Deactivate()
	assert.False(t, i.Active())
	assert.Empty(t, h.Commands())
	assert.Error(t, h.Run(context.Background(), CommandName))

	// Second deactivate is a no-op.
	i.Deactivate()
}

func TestIntegration_SaveHookFormatsBeforeWrite(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.css"), "a{}")
	doc := openDoc(t, path)
	h := host.NewFileHost(doc)

	i := &Integration{Engine: &upper{}, Notifier: notify.Nop{}, Options: options()}
	i.Activate(h)
	defer i.Deactivate()

	require.NoError(t, h.Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A{}", string(data))
}

func TestIntegration_SaveHookDisabled(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.css"), "a{}")
	doc := openDoc(t, path)
	h := host.NewFileHost(doc)

	opts := options()
	opts.UpdateOnSave = false
	eng := &upper{}
	i := &Integration{Engine: eng, Notifier: notify.Nop{}, Options: opts}
	i.Activate(h)
	defer i.Deactivate()

	require.NoError(t, h.Save(context.Background()))
	assert.Zero(t, eng.calls)
	assert.Equal(t, "a{}", doc.Text())
}

func TestIntegration_ReactivateReplacesRegistrations(t *testing.T) {
	doc := openDoc(t, writeFile(t, filepath.Join(t.TempDir(), "a.css"), "a{}"))
	h := host.NewFileHost(doc)

	eng := &upper{}
	i := &Integration{Engine: eng, Notifier: notify.Nop{}, Options: options()}
	i.Activate(h)
	i.Activate(h)
	defer i.Deactivate()

	require.NoError(t, h.Save(context.Background()))
	assert.Equal(t, 1, eng.calls, "only one will-save hook should be live")
}
