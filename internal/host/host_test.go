// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package host

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_DisposeExactlyOnce(t *testing.T) {
	var reg Registry
	counts := make([]int, 3)

	handles := make([]Disposable, 3)
	for i := range counts {
		handles[i] = reg.Add(NewDisposable(func() { counts[i]++ }))
	}
	assert.Equal(t, 3, reg.Len())

	// Dispose one handle directly, then the whole registry twice.
	handles[1].Dispose()
	reg.Dispose()
	reg.Dispose()
	handles[0].Dispose()

	assert.Equal(t, []int{1, 1, 1}, counts)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_ReverseOrder(t *testing.T) {
	var reg Registry
	var order []int
	for i := 0; i < 3; i++ {
		reg.Add(NewDisposable(func() { order = append(order, i) }))
	}
	reg.Dispose()
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestRegistry_AddAfterDispose(t *testing.T) {
	var reg Registry
	reg.Dispose()

	called := 0
	reg.Add(NewDisposable(func() { called++ }))
	assert.Equal(t, 1, called)
	assert.Equal(t, 0, reg.Len())
}

func TestFileHost_Commands(t *testing.T) {
	h := NewFileHost(nil)
	ran := 0

	d := h.RegisterCommand("css-comb:run", func(context.Context) error { ran++; return nil })
	assert.Equal(t, []string{"css-comb:run"}, h.Commands())

	require.NoError(t, h.Run(context.Background(), "css-comb:run"))
	assert.Equal(t, 1, ran)

	d.Dispose()
	assert.Empty(t, h.Commands())
	assert.ErrorContains(t, h.Run(context.Background(), "css-comb:run"), "not registered")
}

func TestFileHost_ReRegisterKeepsNewest(t *testing.T) {
	h := NewFileHost(nil)
	var which string

	first := h.RegisterCommand("x", func(context.Context) error { which = "first"; return nil })
	h.RegisterCommand("x", func(context.Context) error { which = "second"; return nil })
	first.Dispose()

	require.NoError(t, h.Run(context.Background(), "x"))
	assert.Equal(t, "second", which)
}

func TestFileHost_SaveRunsHooksThenWrites(t *testing.T) {
	p := writeTemp(t, "a.css", "a{}")
	doc, err := OpenFile(p)
	require.NoError(t, err)
	h := NewFileHost(doc)

	var calls []string
	h.OnWillSave(func(_ context.Context, d Document) error {
		calls = append(calls, "fail")
		return errors.New("engine blew up")
	})
	h.OnWillSave(func(_ context.Context, d Document) error {
		calls = append(calls, "format")
		return d.SetText("a {}\n")
	})
	removed := h.OnWillSave(func(context.Context, Document) error {
		calls = append(calls, "removed")
		return nil
	})
	removed.Dispose()

	require.NoError(t, h.Save(context.Background()))
	assert.Equal(t, []string{"fail", "format"}, calls)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a {}\n", string(data))
}
