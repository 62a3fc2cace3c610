// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package engine is the seam to the CSS property-ordering engine. combctl
// never reorders CSS itself; ExecEngine hands text and rules to the external
// csscomb command and returns what it produced.
package engine
