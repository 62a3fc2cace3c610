// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/apex/log"

	"github.com/tfctl/combctl/internal/resolver"
)

// Engine reformats CSS-family text according to a rule set.
type Engine interface {
	Process(ctx context.Context, rules map[string]any, text string, dialect string) (string, error)
}

// Func adapts a function to Engine.
type Func func(ctx context.Context, rules map[string]any, text string, dialect string) (string, error)

// Process implements Engine.
func (f Func) Process(ctx context.Context, rules map[string]any, text string, dialect string) (string, error) {
	return f(ctx, rules, text, dialect)
}

// Placeholders recognized in ExecEngine.Args.
const (
	ConfigPlaceholder = "{config}"
	FilePlaceholder   = "{file}"
	SyntaxPlaceholder = "{syntax}"
)

// DefaultCommand is the csscomb CLI as installed from npm.
const DefaultCommand = "csscomb"

// DefaultArgs makes csscomb rewrite a temporary copy of the text in place.
var DefaultArgs = []string{"--config", ConfigPlaceholder, FilePlaceholder}

var extensions = map[string]string{
	resolver.DialectCSS:    ".css",
	resolver.DialectLESS:   ".less",
	resolver.DialectSCSS:   ".scss",
	resolver.DialectSass:   ".sass",
	resolver.DialectStylus: ".styl",
}

// ExecEngine runs an external formatter. The rules are written to a temporary
// JSON file substituted for {config}. When Args mention {file}, the text is
// written to a temporary file with the dialect's extension and read back
// after the command exits; otherwise the text is piped on stdin and the
// result is taken from stdout.
type ExecEngine struct {
	Command string
	Args    []string
	// Dir is where temporary files are created; the system default if empty.
	Dir string
}

// NewExecEngine returns an ExecEngine for command with the default csscomb
// argument template.
func NewExecEngine(command string) *ExecEngine {
	if command == "" {
		command = DefaultCommand
	}
	return &ExecEngine{Command: command, Args: DefaultArgs}
}

// Process implements Engine.
func (e *ExecEngine) Process(ctx context.Context, rules map[string]any, text string, dialect string) (string, error) {
	ext, ok := extensions[dialect]
	if !ok {
		return "", &resolver.DialectUnsupportedError{Dialect: dialect, Reason: "unknown syntax"}
	}

	work, err := os.MkdirTemp(e.Dir, "combctl-")
	if err != nil {
		return "", fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(work) //nolint:errcheck

	cfgPath := filepath.Join(work, "csscomb.json")
	raw, err := json.Marshal(rules)
	if err != nil {
		return "", fmt.Errorf("failed to encode rules: %w", err)
	}
	if err := os.WriteFile(cfgPath, raw, 0o600); err != nil {
		return "", fmt.Errorf("failed to write rules: %w", err)
	}

	srcPath := filepath.Join(work, "input"+ext)
	args, usesFile := e.expand(cfgPath, srcPath, dialect)

	cmd := exec.CommandContext(ctx, e.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if usesFile {
		if err := os.WriteFile(srcPath, []byte(text), 0o600); err != nil {
			return "", fmt.Errorf("failed to write input: %w", err)
		}
	} else {
		cmd.Stdin = strings.NewReader(text)
	}

	log.Debugf("engine: %s %v", e.Command, args)
	if err := cmd.Run(); err != nil {
		return "", runError(e.Command, err, stderr.String())
	}

	if !usesFile {
		return stdout.String(), nil
	}

	out, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to read engine output: %w", err)
	}
	return string(out), nil
}

func (e *ExecEngine) expand(cfgPath, srcPath, dialect string) ([]string, bool) {
	tmpl := e.Args
	if tmpl == nil {
		tmpl = DefaultArgs
	}

	usesFile := false
	args := make([]string, len(tmpl))
	for i, a := range tmpl {
		if strings.Contains(a, FilePlaceholder) {
			usesFile = true
		}
		a = strings.ReplaceAll(a, ConfigPlaceholder, cfgPath)
		a = strings.ReplaceAll(a, FilePlaceholder, srcPath)
		a = strings.ReplaceAll(a, SyntaxPlaceholder, dialect)
		args[i] = a
	}
	return args, usesFile
}

// runError turns an exec failure into a message fit for a notification.
func runError(command string, err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s not found in PATH; install it with `npm install -g csscomb` or set --engine: %w", command, err)
	}

	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return fmt.Errorf("%s failed: %w", command, err)
	}
	return fmt.Errorf("%s failed: %s: %w", command, msg, err)
}
