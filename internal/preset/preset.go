// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package preset

import (
	"embed"
	"errors"
	"fmt"
	"slices"
)

//go:embed presets/*.json
var presetFS embed.FS

// Name identifies a built-in preset.
type Name string

const (
	Csscomb Name = "csscomb"
	Zen     Name = "zen"
	Yandex  Name = "yandex"
)

// Default is the preset used when nothing else is configured.
const Default = Csscomb

// ErrUnknown is returned by Raw for names outside the built-in set.
var ErrUnknown = errors.New("unknown preset")

var names = []Name{Csscomb, Yandex, Zen}

// Names returns the built-in preset names in alphabetical order.
func Names() []Name {
	return slices.Clone(names)
}

// Strings returns Names as plain strings, handy for flag validation and
// completion.
func Strings() []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// Valid reports whether name is one of the built-in presets.
func Valid(name string) bool {
	return slices.Contains(names, Name(name))
}

// Raw returns the embedded JSON document for the named preset.
func Raw(name string) ([]byte, error) {
	if !Valid(name) {
		return nil, fmt.Errorf("%w: %q (must be one of %v)", ErrUnknown, name, Strings())
	}
	return presetFS.ReadFile("presets/" + name + ".json")
}
