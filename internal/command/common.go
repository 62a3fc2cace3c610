// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/engine"
	"github.com/tfctl/combctl/internal/meta"
	"github.com/tfctl/combctl/internal/output"
	"github.com/tfctl/combctl/internal/util"
)

// probeName stands in for a file when a command is pointed at a directory.
// Resolution only looks at the target's directory, so the name never needs
// to exist.
const probeName = "index.css"

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OptionsFromCommand builds the immutable options for this invocation. The
// options file is read first so type errors in it surface; flag values, which
// already fold in env and options file sources, then take precedence.
func OptionsFromCommand(cmd *cli.Command) (config.Options, error) {
	opts, err := config.FromFile()
	if err != nil {
		return opts, fmt.Errorf("invalid options file %s: %w", config.Config.Source, err)
	}

	opts.SearchDisabled = cmd.Bool("no-search")
	opts.Preset = cmd.String("predef")
	opts.CustomConfig = cmd.String("custom-config")
	opts.ShowNotifications = cmd.Bool("notify")
	opts.UpdateOnSave = cmd.Bool("on-save")
	opts.ProcessStylus = cmd.Bool("process-stylus")
	opts.Engine = cmd.String("engine")
	opts.ProjectRoot = cmd.String("project-root")

	if opts.ProjectRoot != "" {
		root, err := util.ParseRootDir(opts.ProjectRoot)
		if err != nil {
			return opts, fmt.Errorf("invalid project root %s: %w", opts.ProjectRoot, err)
		}
		opts.ProjectRoot = root
	}

	log.Debugf("options: %+v", opts)

	return opts, opts.Validate()
}

// NewEngine returns the external formatter configured by opts.
func NewEngine(opts config.Options) *engine.ExecEngine {
	e := engine.NewExecEngine(opts.Engine)
	if len(opts.EngineArgs) > 0 {
		e.Args = opts.EngineArgs
	}
	return e
}

// ProjectRootFor returns the configured project root or, when none is set,
// the nearest ancestor of target carrying a project marker.
func ProjectRootFor(opts config.Options, target string) string {
	if opts.ProjectRoot != "" {
		return opts.ProjectRoot
	}
	return util.FindProjectRoot(target)
}

// Target turns a command argument into an absolute file path. Directories map
// to a probe file inside them and an empty argument to the working directory.
func Target(arg string) (string, error) {
	if arg == "" {
		arg = "."
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", err
	}

	fi, err := os.Stat(abs)
	switch {
	case err == nil && fi.IsDir():
		return filepath.Join(abs, probeName), nil
	case err == nil, errors.Is(err, os.ErrNotExist):
		return abs, nil
	default:
		return "", err
	}
}

// Writer returns the root command's writer so tests can capture output.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// Format returns the validated --output value.
func Format(cmd *cli.Command) (output.Format, error) {
	return output.ParseFormat(cmd.String("output"))
}

// TableOptionsFromCommand maps presentation flags onto output.TableOptions.
func TableOptionsFromCommand(cmd *cli.Command) output.TableOptions {
	return output.TableOptions{
		Color:   cmd.Bool("color"),
		Titles:  cmd.Bool("titles"),
		Padding: cmd.Int("padding"),
		Filter:  cmd.String("filter"),
	}
}
