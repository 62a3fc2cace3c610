// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package comb drives a single combing pass over a document. It resolves the
// csscomb configuration for the document's path, applies the exclude policy,
// chooses the syntax dialect, hands the text to an engine and writes the
// result back into the document.
//
// Two triggers exist. TriggerSave runs from a will-save hook, only when
// shouldUpdateOnSave is set and the grammar is supported, and always formats
// the whole buffer. TriggerCommand formats the selection when one is present
// and the whole buffer otherwise.
//
// Failures are terminal for the pass: the document is left untouched, the
// user is notified and the error is returned to the caller.
package comb
