// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"slices"
	"strings"
)

// Dialect identifiers understood by csscomb.
const (
	DialectCSS    = "css"
	DialectLESS   = "less"
	DialectSCSS   = "scss"
	DialectSass   = "sass"
	DialectStylus = "stylus"
)

var supportedGrammars = []string{DialectCSS, DialectLESS, DialectSCSS, DialectSass, DialectStylus}

// SelectSyntaxDialect maps a host grammar name to a csscomb syntax. Stylus is
// handed over as sass when processStylusAsSass is set; unknown names pass
// through lower-cased and are left for the engine to reject.
func SelectSyntaxDialect(grammar string, processStylusAsSass bool) string {
	syntax := strings.ToLower(grammar)
	if processStylusAsSass && syntax == DialectStylus {
		return DialectSass
	}
	return syntax
}

// Supported reports whether grammar is one the save hook should act on.
func Supported(grammar string) bool {
	return slices.Contains(supportedGrammars, strings.ToLower(grammar))
}
