// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// ConfigFileName is the per-project configuration file searched for in the
// target's ancestor directories.
const ConfigFileName = ".csscomb.json"

// Provenance records where a ResolvedConfig came from.
type Provenance string

const (
	ProvenanceAncestor Provenance = "ancestor"
	ProvenanceCustom   Provenance = "custom"
	ProvenancePreset   Provenance = "preset"
)

// Options is the immutable slice of host options that drives resolution.
type Options struct {
	// SearchDisabled skips the ancestor .csscomb.json search.
	SearchDisabled bool
	// CustomConfigPath is an explicit config file, possibly starting with ~.
	CustomConfigPath string
	// Preset is the built-in fallback used when no file resolves.
	Preset string
}

// Resolution is the outcome of ResolveConfigPath. A zero Resolution means no
// file was found and a preset should be used.
type Resolution struct {
	Path       string
	Provenance Provenance
}

// Found reports whether a configuration file was located.
func (r Resolution) Found() bool {
	return r.Path != ""
}

// ResolvedConfig is an effective csscomb configuration. Rules is handed to the
// formatting engine untouched; the exclude list is lifted out of it.
type ResolvedConfig struct {
	Rules      map[string]any
	Exclude    []string
	Provenance Provenance
	// Path is the configuration file, empty for presets.
	Path string
	// Preset is the preset name, empty for file configurations.
	Preset string
}

// RulesCopy returns a shallow copy of Rules so callers cannot mutate the
// configuration mid-operation.
func (c *ResolvedConfig) RulesCopy() map[string]any {
	return maps.Clone(c.Rules)
}

// ExcludeCopy returns a copy of Exclude.
func (c *ResolvedConfig) ExcludeCopy() []string {
	return slices.Clone(c.Exclude)
}

// Origin describes the source for log and notification text.
func (c *ResolvedConfig) Origin() string {
	if c.Provenance == ProvenancePreset {
		return "preset " + c.Preset
	}
	return c.Path
}

// Document rebuilds the JSON document the configuration came from: the rules
// plus the exclude list when one exists. Values are the generic types
// encoding/json produces so the result can be diffed, queried or re-encoded.
func (c *ResolvedConfig) Document() (map[string]any, error) {
	raw, err := json.Marshal(c.Rules)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", c.Origin(), err)
	}

	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.Origin(), err)
	}

	if len(c.Exclude) > 0 {
		ex := make([]any, len(c.Exclude))
		for i, p := range c.Exclude {
			ex[i] = p
		}
		doc["exclude"] = ex
	}

	return doc, nil
}

// Reason explains an eligibility decision.
type Reason string

const (
	ReasonOK                Reason = "ok"
	ReasonIgnoredByPattern  Reason = "ignored-by-pattern"
	ReasonNoSelectionNoText Reason = "no-selection-no-text"
)

// Decision is the outcome of an eligibility check.
type Decision struct {
	Eligible bool
	Reason   Reason
	// Pattern is the exclude pattern that matched, if any.
	Pattern string
	// RelPath is the slash separated path the patterns were matched against.
	RelPath string
}
