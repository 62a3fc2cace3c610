// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"

	"github.com/tfctl/combctl/internal/preset"
)

// ConfigReadError reports a configuration file that was located but could not
// be read, including one that disappeared between resolution and load.
type ConfigReadError struct {
	Path string
	Err  error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("can't read csscomb config %s: %v", e.Path, e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// ConfigParseError reports configuration content that is not a valid csscomb
// configuration document.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("can't parse csscomb config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error { return e.Err }

// UnknownPresetError reports a preset name outside the built-in set.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (must be one of %v)", e.Name, preset.Strings())
}

// Unwrap lets callers test with errors.Is(err, preset.ErrUnknown).
func (e *UnknownPresetError) Unwrap() error { return preset.ErrUnknown }

// DialectUnsupportedError reports a dialect that cannot be processed in the
// requested mode. Stylus selections are the only current case.
type DialectUnsupportedError struct {
	Dialect string
	Reason  string
}

func (e *DialectUnsupportedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("dialect %s is not supported", e.Dialect)
	}
	return fmt.Sprintf("dialect %s is not supported: %s", e.Dialect, e.Reason)
}
