// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/tfctl/combctl/internal/preset"
	"github.com/tfctl/combctl/internal/resolver"
)

// Option keys as they appear in the options file.
const (
	KeyNoSearch          = "shouldNotSearchConfig"
	KeyPredef            = "predef"
	KeyCustomConfig      = "customConfig"
	KeyShowNotifications = "showNotifications"
	KeyUpdateOnSave      = "shouldUpdateOnSave"
	KeyProcessStylus     = "processStylus"
	KeyEngine            = "engine"
	KeyEngineArgs        = "engineArgs"
	KeyProjectRoot       = "projectRoot"
)

// Options is the immutable set of host options handed to every resolution and
// combing call. It is built once per invocation and passed by value.
type Options struct {
	SearchDisabled    bool
	Preset            string
	CustomConfig      string
	ShowNotifications bool
	UpdateOnSave      bool
	ProcessStylus     bool
	Engine            string
	EngineArgs        []string
	ProjectRoot       string
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		Preset:            string(preset.Default),
		ShowNotifications: true,
		Engine:            "csscomb",
	}
}

// FromFile builds Options from the loaded options file, falling back to
// Defaults for every key that is absent. Lookups honor Config.Namespace.
func FromFile() (Options, error) {
	d := Defaults()
	var (
		o   Options
		err error
	)

	if o.SearchDisabled, err = GetBool(KeyNoSearch, d.SearchDisabled); err != nil {
		return d, fmt.Errorf("%s: %w", KeyNoSearch, err)
	}
	if o.Preset, err = GetString(KeyPredef, d.Preset); err != nil {
		return d, fmt.Errorf("%s: %w", KeyPredef, err)
	}
	if o.CustomConfig, err = GetString(KeyCustomConfig, d.CustomConfig); err != nil {
		return d, fmt.Errorf("%s: %w", KeyCustomConfig, err)
	}
	if o.ShowNotifications, err = GetBool(KeyShowNotifications, d.ShowNotifications); err != nil {
		return d, fmt.Errorf("%s: %w", KeyShowNotifications, err)
	}
	if o.UpdateOnSave, err = GetBool(KeyUpdateOnSave, d.UpdateOnSave); err != nil {
		return d, fmt.Errorf("%s: %w", KeyUpdateOnSave, err)
	}
	if o.ProcessStylus, err = GetBool(KeyProcessStylus, d.ProcessStylus); err != nil {
		return d, fmt.Errorf("%s: %w", KeyProcessStylus, err)
	}
	if o.Engine, err = GetString(KeyEngine, d.Engine); err != nil {
		return d, fmt.Errorf("%s: %w", KeyEngine, err)
	}
	if o.EngineArgs, err = GetStringSlice(KeyEngineArgs, d.EngineArgs); err != nil {
		return d, fmt.Errorf("%s: %w", KeyEngineArgs, err)
	}
	if o.ProjectRoot, err = GetString(KeyProjectRoot, d.ProjectRoot); err != nil {
		return d, fmt.Errorf("%s: %w", KeyProjectRoot, err)
	}

	return o, nil
}

// Validate reports option values that can never resolve.
func (o Options) Validate() error {
	if o.Preset != "" && !preset.Valid(o.Preset) {
		return &resolver.UnknownPresetError{Name: o.Preset}
	}
	if o.Engine == "" {
		return fmt.Errorf("engine must not be empty")
	}
	return nil
}

// ResolverOptions projects the subset of options the resolver consumes.
func (o Options) ResolverOptions() resolver.Options {
	return resolver.Options{
		SearchDisabled:   o.SearchDisabled,
		CustomConfigPath: o.CustomConfig,
		Preset:           o.Preset,
	}
}
