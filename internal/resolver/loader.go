// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/gjson"

	"github.com/tfctl/combctl/internal/preset"
)

// excludeKey is the top-level key holding exclude patterns.
const excludeKey = "exclude"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source names what LoadConfig should load: a file or a preset.
type Source struct {
	Path       string
	Provenance Provenance
	Preset     string
}

// FromPath is a Source for a configuration file.
func FromPath(path string, provenance Provenance) Source {
	return Source{Path: path, Provenance: provenance}
}

// FromPreset is a Source for a built-in preset.
func FromPreset(name string) Source {
	return Source{Preset: name, Provenance: ProvenancePreset}
}

// FromResolution turns a Resolution into a Source, falling back to the named
// preset when no file was found.
func FromResolution(res Resolution, fallback string) Source {
	if res.Found() {
		return FromPath(res.Path, res.Provenance)
	}
	return FromPreset(fallback)
}

// LoadConfig applies the default Resolver. See Resolver.LoadConfig.
func LoadConfig(src Source) (*ResolvedConfig, error) {
	return std.LoadConfig(src)
}

// LoadConfig reads and parses a configuration file, or looks up a preset. It
// returns *ConfigReadError, *ConfigParseError or *UnknownPresetError on
// failure and never a partially filled config.
func (r *Resolver) LoadConfig(src Source) (*ResolvedConfig, error) {
	if src.Path == "" {
		return loadPreset(src.Preset)
	}

	data, err := r.ReadFile(src.Path)
	if err != nil {
		return nil, &ConfigReadError{Path: src.Path, Err: err}
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, &ConfigParseError{Path: src.Path, Err: err}
	}

	provenance := src.Provenance
	if provenance == "" {
		provenance = ProvenanceCustom
	}
	cfg.Provenance = provenance
	cfg.Path = src.Path

	log.Debugf("loaded config %s: %d rules, %d exclude patterns", src.Path, len(cfg.Rules), len(cfg.Exclude))
	return cfg, nil
}

// Resolve applies the default Resolver. See Resolver.Resolve.
func Resolve(target string, opts Options) (*ResolvedConfig, error) {
	return std.Resolve(target, opts)
}

// Resolve locates and loads the effective configuration for target.
func (r *Resolver) Resolve(target string, opts Options) (*ResolvedConfig, error) {
	res, err := r.ResolveConfigPath(target, opts)
	if err != nil {
		return nil, err
	}

	name := opts.Preset
	if name == "" {
		name = string(preset.Default)
	}

	return r.LoadConfig(FromResolution(res, name))
}

// Parse decodes a csscomb configuration document. The exclude key, when
// present, must be an array of valid glob patterns; everything else is kept
// as opaque rules.
func Parse(data []byte) (*ResolvedConfig, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if !gjson.ValidBytes(data) {
		// Let encoding/json produce a message with an offset.
		var probe any
		if err := json.Unmarshal(data, &probe); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("top-level value must be an object, got %s", doc.Type)
	}

	var rules map[string]any
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, err
	}

	exclude, err := parseExclude(doc.Get(excludeKey))
	if err != nil {
		return nil, err
	}
	delete(rules, excludeKey)

	return &ResolvedConfig{Rules: rules, Exclude: exclude}, nil
}

func parseExclude(v gjson.Result) ([]string, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("%s must be an array of strings, got %s", excludeKey, v.Type)
	}

	patterns := make([]string, 0, len(v.Array()))
	for i, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%s[%d] must be a string, got %s", excludeKey, i, item.Type)
		}
		if !doublestar.ValidatePattern(item.Str) {
			return nil, fmt.Errorf("%s[%d]: invalid glob pattern %q", excludeKey, i, item.Str)
		}
		patterns = append(patterns, item.Str)
	}

	return patterns, nil
}

func loadPreset(name string) (*ResolvedConfig, error) {
	raw, err := preset.Raw(name)
	if err != nil {
		if errors.Is(err, preset.ErrUnknown) {
			return nil, &UnknownPresetError{Name: name}
		}
		return nil, err
	}

	// Presets go through Parse so their exclude list is lifted and validated
	// exactly like a file's.
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("corrupt preset %s: %w", name, err)
	}

	log.Debugf("loaded preset %s (%d exclude patterns)", name, len(cfg.Exclude))
	cfg.Provenance = ProvenancePreset
	cfg.Preset = name
	return cfg, nil
}
