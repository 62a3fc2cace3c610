// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/combctl/internal/command"
	"github.com/tfctl/combctl/internal/config"
	"github.com/tfctl/combctl/internal/log"
	"github.com/tfctl/combctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) <= 1 || args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args, command.BoolFlags(args[1]))
}

// deduplicateFlags keeps only the last occurrence of each flag so that values
// injected from an @set can be overridden later on the command line. A flag
// without "=" takes the following token as its value when that token is not
// itself a flag, unless the flag is listed in boolFlags. args[0] and args[1]
// are kept as-is.
func deduplicateFlags(args []string, boolFlags map[string]bool) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		key  string
		toks []string
	}

	var units []unit
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !strings.HasPrefix(a, "-") || a == "-" || a == "--" {
			units = append(units, unit{toks: []string{a}})
			continue
		}

		key, _, hasValue := strings.Cut(a, "=")
		u := unit{key: key, toks: []string{a}}
		if !hasValue && !boolFlags[key] && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			u.toks = append(u.toks, rest[i+1])
			i++
		}
		units = append(units, u)
	}

	last := make(map[string]int, len(units))
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.key != "" && last[u.key] != i {
			continue
		}
		out = append(out, u.toks...)
	}

	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments from the options file key "<command>.<set>" at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	if len(args) <= idx {
		return args
	}

	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
