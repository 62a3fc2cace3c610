// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tfctl/combctl/internal/command"
	"github.com/tfctl/combctl/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"combctl", "run"},
			expected: []string{"combctl", "run"},
		},
		{
			name:     "no duplicates",
			args:     []string{"combctl", "run", "--output", "text", "--titles"},
			expected: []string{"combctl", "run", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"combctl", "run", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"combctl", "run", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"combctl", "run", "--titles", "--debug", "--titles"},
			expected: []string{"combctl", "run", "--debug", "--titles"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"combctl", "run", "--output=json", "--titles", "--output=text"},
			expected: []string{"combctl", "run", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"combctl", "run", "--output=json", "--output", "text"},
			expected: []string{"combctl", "run", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"combctl", "show", "--predef", "zen", "--engine", "foo", "--predef", "yandex", "--engine", "bar"},
			expected: []string{"combctl", "show", "--predef", "yandex", "--engine", "bar"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"combctl", "run", "/path/to/iac", "--output", "json", "--output", "text"},
			expected: []string{"combctl", "run", "/path/to/iac", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"combctl", "run", "-o", "json", "-o", "text"},
			expected: []string{"combctl", "run", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"combctl", "run", "--color", "--no-color"},
			expected: []string{"combctl", "run", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"combctl", "run", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"combctl", "run", "--output", "c"},
		},
		{
			name:     "flag at end with no value treated as boolean",
			args:     []string{"combctl", "run", "--titles", "--debug", "--titles"},
			expected: []string{"combctl", "run", "--debug", "--titles"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args, nil)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"combctl", "run", "--alpha", "--beta", "--gamma"}
	result := deduplicateFlags(args, nil)
	expected := []string{"combctl", "run", "--alpha", "--beta", "--gamma"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlagsWithPositionalAfterFlags(t *testing.T) {
	// Positional args after flags should be preserved.
	args := []string{"combctl", "run", "--output", "json", "/path", "--output", "text"}
	result := deduplicateFlags(args, nil)
	expected := []string{"combctl", "run", "/path", "--output", "text"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlags_RepeatedBoolFlagsKeepFiles(t *testing.T) {
	bools := command.BoolFlags("run")
	for _, f := range []string{"--stdout", "-q", "--quiet", "--help"} {
		if !bools[f] {
			t.Fatalf("%s not reported as a bool flag of run", f)
		}
	}
	if bools["--engine"] || bools["--predef"] {
		t.Fatalf("value flags reported as bool: %v", bools)
	}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "stdout around files",
			args: []string{"combctl", "run", "--stdout", "a.css", "--stdout", "b.css"},
			want: []string{"combctl", "run", "a.css", "--stdout", "b.css"},
		},
		{
			name: "short quiet at both ends",
			args: []string{"combctl", "run", "-q", "a.css", "b.css", "-q"},
			want: []string{"combctl", "run", "a.css", "b.css", "-q"},
		},
		{
			name: "value flag still takes its value",
			args: []string{"combctl", "run", "--predef", "zen", "-q", "a.css", "--predef", "yandex"},
			want: []string{"combctl", "run", "-q", "a.css", "--predef", "yandex"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deduplicateFlags(tt.args, bools)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	got := processCommandArgs([]string{"combctl", "run", "--stdout", "a.css", "--stdout", "b.css"})
	want := []string{"combctl", "run", "a.css", "--stdout", "b.css"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("processCommandArgs: got %v, want %v", got, want)
	}
}

func TestProcessSetOnly(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "combctl.yaml")
	content := "run:\n  defaults:\n    - --on-save\n    - --engine /opt/csscomb\n  ci:\n    - --quiet\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvFile, cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"combctl", "run", "a.css"},
			expected: []string{"combctl", "run", "a.css"},
		},
		{
			name:     "named set expanded in place",
			args:     []string{"combctl", "run", "@defaults", "a.css"},
			expected: []string{"combctl", "run", "--on-save", "--engine", "/opt/csscomb", "a.css"},
		},
		{
			name:     "other set",
			args:     []string{"combctl", "run", "a.css", "@ci"},
			expected: []string{"combctl", "run", "a.css", "--quiet"},
		},
		{
			name:     "unknown set removed",
			args:     []string{"combctl", "run", "@nope", "a.css"},
			expected: []string{"combctl", "run", "a.css"},
		},
		{
			name:     "too short",
			args:     []string{"combctl", "run"},
			expected: []string{"combctl", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processSetOnly(append([]string{}, tt.args...))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processSetOnly(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestProcessCommandArgs_SetThenOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "combctl.yaml")
	if err := os.WriteFile(cfg, []byte("run:\n  defaults:\n    - --predef zen\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvFile, cfg)
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	got := processCommandArgs([]string{"combctl", "run", "@defaults", "a.css", "--predef", "yandex"})
	want := []string{"combctl", "run", "a.css", "--predef", "yandex"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = processCommandArgs([]string{"combctl", "completion", "bash"})
	if !reflect.DeepEqual(got, []string{"combctl", "completion", "bash"}) {
		t.Errorf("completion args changed: %v", got)
	}
}

func TestHandleNakedCommand(t *testing.T) {
	if got := handleNakedCommand([]string{"combctl"}); !reflect.DeepEqual(got, []string{"combctl", "--help"}) {
		t.Errorf("got %v", got)
	}
	if got := handleNakedCommand([]string{"combctl", "run"}); !reflect.DeepEqual(got, []string{"combctl", "run"}) {
		t.Errorf("got %v", got)
	}
}
