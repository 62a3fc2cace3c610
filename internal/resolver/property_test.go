// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package resolver

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperties_SelectSyntaxDialect(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("without the stylus flag the grammar is only lower-cased", prop.ForAll(
		func(g string) bool {
			return SelectSyntaxDialect(g, false) == strings.ToLower(g)
		},
		gen.AnyString(),
	))

	properties.Property("the stylus flag only changes stylus", prop.ForAll(
		func(g string) bool {
			got := SelectSyntaxDialect(g, true)
			if strings.ToLower(g) == DialectStylus {
				return got == DialectSass
			}
			return got == strings.ToLower(g)
		},
		gen.OneConstOf("Stylus", "STYLUS", "stylus", "CSS", "Sass", "less", "postcss", ""),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProperties_IsEligible(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, ConfigFileName)

	properties := gopter.NewProperties(nil)

	properties.Property("no exclude list means every file is eligible", prop.ForAll(
		func(dir, name string) bool {
			cfg := &ResolvedConfig{Provenance: ProvenanceAncestor, Path: cfgPath}
			d := IsEligible(cfg, filepath.Join(root, dir, name+".css"), "")
			return d.Eligible && d.Reason == ReasonOK
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("a double star css pattern excludes css files at any depth", prop.ForAll(
		func(dir, name string) bool {
			cfg := &ResolvedConfig{Exclude: []string{"**/*.css"}, Provenance: ProvenanceAncestor, Path: cfgPath}
			top := IsEligible(cfg, filepath.Join(root, name+".css"), "")
			deep := IsEligible(cfg, filepath.Join(root, dir, name+".css"), "")
			return !top.Eligible && !deep.Eligible && deep.RelPath == dir+"/"+name+".css"
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("the first matching pattern is reported", prop.ForAll(
		func(name string) bool {
			cfg := &ResolvedConfig{
				Exclude:    []string{"nomatch/**", name + ".*", "**"},
				Provenance: ProvenanceAncestor,
				Path:       cfgPath,
			}
			d := IsEligible(cfg, filepath.Join(root, name+".scss"), "")
			return !d.Eligible && d.Pattern == name+".*"
		},
		gen.Identifier(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
