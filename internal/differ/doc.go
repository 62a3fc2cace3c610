// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes and renders differences between two resolved
// csscomb configurations, typically a project's file and one of the presets.
package differ
