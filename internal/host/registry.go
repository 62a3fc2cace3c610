// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"slices"
	"sync"
)

// Disposable releases a registration.
type Disposable interface {
	Dispose()
}

type onceDisposable struct {
	once sync.Once
	fn   func()
}

func (d *onceDisposable) Dispose() {
	d.once.Do(func() {
		if d.fn != nil {
			d.fn()
		}
	})
}

// NewDisposable wraps fn so that it runs at most once no matter how many
// times, or from where, the handle is disposed.
func NewDisposable(fn func()) Disposable {
	return &onceDisposable{fn: fn}
}

// Registry collects registration handles so an integration can tear all of
// them down together. Handles may also be disposed individually; every
// release still happens exactly once.
type Registry struct {
	mu       sync.Mutex
	handles  []Disposable
	disposed bool
}

// Add tracks d and returns a handle for it. Adding to a registry that has
// already been disposed releases d immediately.
func (r *Registry) Add(d Disposable) Disposable {
	h := NewDisposable(d.Dispose)

	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		h.Dispose()
		return h
	}
	r.handles = append(r.handles, h)
	r.mu.Unlock()

	return h
}

// Len returns the number of tracked handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Dispose releases every tracked handle, most recent first. Calling it again
// is a no-op.
func (r *Registry) Dispose() {
	r.mu.Lock()
	handles := r.handles
	r.handles = nil
	r.disposed = true
	r.mu.Unlock()

	for _, h := range slices.Backward(handles) {
		h.Dispose()
	}
}
