// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/engine"
	"github.com/tfctl/combctl/internal/preset"
)

// NewGlobalFlags returns the presentation flags shared by reporting commands.
func NewGlobalFlags() (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "padding between table columns",
			Value: 2,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewOptionFlags returns one flag per host option. Each flag resolves from
// the command line, then its COMBCTL_* environment variable, then the
// namespaced and global keys of the options file at path, then its default.
func NewOptionFlags(ns string, path string) []cli.Flag {
	d := config.Defaults()

	return []cli.Flag{
		NameSpacedBoolFlagFromConfigFile(ns, path, config.KeyNoSearch, &cli.BoolFlag{
			Name:    "no-search",
			Usage:   "do not search ancestor directories for .csscomb.json",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_NO_SEARCH")),
			Value:   d.SearchDisabled,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, config.KeyPredef, &cli.StringFlag{
			Name:    "predef",
			Aliases: []string{"p"},
			Usage:   "preset used when no config file is found",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_PREDEF")),
			Value:   string(preset.Default),
			Validator: func(value string) error {
				return FlagValidators(value, PresetValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, config.KeyCustomConfig, &cli.StringFlag{
			Name:    "custom-config",
			Usage:   "config file used when none is found next to the target (~ expands to home)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_CUSTOM_CONFIG")),
		}),
		NameSpacedBoolFlagFromConfigFile(ns, path, config.KeyShowNotifications, &cli.BoolFlag{
			Name:    "notify",
			Usage:   "show notifications",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_NOTIFY")),
			Value:   d.ShowNotifications,
		}),
		NameSpacedBoolFlagFromConfigFile(ns, path, config.KeyUpdateOnSave, &cli.BoolFlag{
			Name:    "on-save",
			Usage:   "comb files when the save trigger fires",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_ON_SAVE")),
			Value:   d.UpdateOnSave,
		}),
		NameSpacedBoolFlagFromConfigFile(ns, path, config.KeyProcessStylus, &cli.BoolFlag{
			Name:    "process-stylus",
			Usage:   "process stylus as sass",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_PROCESS_STYLUS")),
			Value:   d.ProcessStylus,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, config.KeyEngine, &cli.StringFlag{
			Name:    "engine",
			Usage:   "formatter executable",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_ENGINE")),
			Value:   engine.DefaultCommand,
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, path, config.KeyProjectRoot, &cli.StringFlag{
			Name:    "project-root",
			Usage:   "directory exclude patterns are relative to when a preset is used",
			Sources: cli.NewValueSourceChain(cli.EnvVar("COMBCTL_PROJECT_ROOT")),
			Validator: func(value string) error {
				return FlagValidators(value, DirValidator)
			},
		}),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global options
// file sources for key to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, key string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configFileSources(ns, path, key)...)
	return flag
}

// NameSpacedBoolFlagFromConfigFile is NameSpacedValueChainFlagFromConfigFile
// for boolean flags.
func NameSpacedBoolFlagFromConfigFile(ns string, path string, key string, flag *cli.BoolFlag) *cli.BoolFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configFileSources(ns, path, key)...)
	return flag
}

func configFileSources(ns string, path string, key string) (sources []cli.ValueSource) {
	if path == "" {
		return nil
	}

	if ns != "" {
		sources = append(sources, yaml.YAML(ns+"."+key, altsrc.StringSourcer(path)))
	}
	sources = append(sources, yaml.YAML(key, altsrc.StringSourcer(path)))

	return
}
