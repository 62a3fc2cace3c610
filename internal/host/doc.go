// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package host models the editor side of combctl: a document with optional
// selection, command and will-save hooks, and the disposable registrations
// that bind them. FileDocument and Host implement it for a plain file on disk
// so the CLI can stand in for an editor.
package host
