// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/apex/log"
)

// CommandFunc is a registered command handler.
type CommandFunc func(ctx context.Context) error

// SaveFunc runs synchronously before a document is written.
type SaveFunc func(ctx context.Context, doc Document) error

// Host is the editor surface an integration binds to.
type Host interface {
	RegisterCommand(name string, fn CommandFunc) Disposable
	OnWillSave(fn SaveFunc) Disposable
	ActiveDocument() Document
}

// Saver is implemented by documents that can be persisted.
type Saver interface {
	Save() error
}

type saveHook struct {
	fn SaveFunc
}

type command struct {
	fn CommandFunc
}

// FileHost is a Host around a single document, standing in for an editor when
// combctl runs from the command line or from an editor's save hook.
type FileHost struct {
	mu       sync.Mutex
	doc      Document
	commands map[string]*command
	hooks    []*saveHook
}

// NewFileHost returns a host whose active document is doc.
func NewFileHost(doc Document) *FileHost {
	return &FileHost{
		doc:      doc,
		commands: make(map[string]*command),
	}
}

// ActiveDocument implements Host.
func (h *FileHost) ActiveDocument() Document { return h.doc }

// RegisterCommand implements Host. Registering a name twice replaces the
// earlier handler; disposing the earlier handle then leaves the newer one in
// place.
func (h *FileHost) RegisterCommand(name string, fn CommandFunc) Disposable {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &command{fn: fn}
	h.commands[name] = c
	return NewDisposable(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if h.commands[name] == c {
			delete(h.commands, name)
		}
	})
}

// OnWillSave implements Host.
func (h *FileHost) OnWillSave(fn SaveFunc) Disposable {
	hook := &saveHook{fn: fn}

	h.mu.Lock()
	h.hooks = append(h.hooks, hook)
	h.mu.Unlock()

	return NewDisposable(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.hooks = slices.DeleteFunc(h.hooks, func(s *saveHook) bool { return s == hook })
	})
}

// Commands returns the registered command names.
func (h *FileHost) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.commands))
	for n := range h.commands {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Run invokes a registered command.
func (h *FileHost) Run(ctx context.Context, name string) error {
	h.mu.Lock()
	c, ok := h.commands[name]
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("command %q is not registered", name)
	}
	return c.fn(ctx)
}

// Save fires the will-save hooks in registration order and then persists the
// document if it supports saving. Hook failures are logged and do not stop
// the save; a failed hook leaves the buffer untouched.
func (h *FileHost) Save(ctx context.Context) error {
	h.mu.Lock()
	hooks := slices.Clone(h.hooks)
	h.mu.Unlock()

	for _, hook := range hooks {
		if err := hook.fn(ctx, h.doc); err != nil {
			log.WithError(err).Debugf("will-save hook failed for %s", h.doc.Path())
		}
	}

	if s, ok := h.doc.(Saver); ok {
		return s.Save()
	}
	return nil
}
