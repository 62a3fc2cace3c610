// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders resolved configurations, eligibility decisions and
// the preset catalogue as text tables, JSON or YAML.
package output
