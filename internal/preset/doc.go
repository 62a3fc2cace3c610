// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package preset holds the built-in csscomb rule sets (csscomb, zen and
// yandex). The set is closed: presets are embedded at build time and cannot be
// extended at runtime.
package preset
