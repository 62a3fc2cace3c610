// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for combctl's host
// options. These are the editor-level settings (search toggle, preset, custom
// config path, notifications, on-save, stylus handling), not the per-project
// .csscomb.json files, which belong to package resolver.
//
// The options live in a YAML document in the user's configuration directory,
// typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/combctl.yaml or $HOME/.config/combctl.yaml
//   - Windows: %APPDATA%/combctl.yaml
//
// COMBCTL_CFG_FILE overrides the location. Keys may be namespaced by
// subcommand, e.g. run.predef wins over predef for `combctl run`.
package config
