// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package resolver decides which csscomb configuration governs a file and
// whether that file should be processed at all.
//
// Resolution is a fixed precedence chain; the first source that yields a file
// wins and later sources are never consulted:
//
//  1. the nearest .csscomb.json walking up from the target's directory
//     (skipped when searching is disabled),
//  2. an explicit custom config path, with a leading ~ expanded to the
//     invoking user's home directory,
//  3. a built-in preset (see package preset).
//
// Exclude patterns from the configuration are matched with doublestar glob
// semantics against the target path made relative to the configuration file's
// directory. When a preset is in effect the project root is used instead, and
// the plain target path when no project root is known.
//
// A ResolvedConfig is built fresh for every invocation; nothing is cached.
package resolver
