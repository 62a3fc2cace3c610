// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docsgen renders the combctl markdown, man and tldr pages from
// docs/templates/combctl.yaml.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
	Common      FlagSet      `yaml:"common"`
	Report      FlagSet      `yaml:"report"`
}

type FlagSet struct {
	Flags []Flag `yaml:"flags"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Report      bool      `yaml:"report"`
	NoCommon    bool      `yaml:"noCommon"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
	More        string `yaml:"more,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
	IDUpper string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

func main() {
	docs := "docs"
	if len(os.Args) > 1 {
		docs = os.Args[1]
	}

	if err := generate(docs, docs, getVersion(), time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, "docsgen:", err)
		os.Exit(1)
	}
}

// generate reads docs/templates/combctl.yaml and writes one page per
// subcommand and template under out.
func generate(docs string, out string, version string, now time.Time) error {
	templates := filepath.Join(docs, "templates")

	data, err := os.ReadFile(filepath.Join(templates, "combctl.yaml"))
	if err != nil {
		return err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Join(templates, "combctl.yaml"), err)
	}

	types := []Outputs{
		{Template: filepath.Join(templates, "combctl.md.tmpl"), Folder: filepath.Join(out, "commands"), Suffix: ".md"},
		{Template: filepath.Join(templates, "combctl.man.tmpl"), Folder: filepath.Join(out, "man", "share", "man1"), Prefix: "combctl-", Suffix: ".1"},
		{Template: filepath.Join(templates, "combctl.tldr.tmpl"), Folder: filepath.Join(out, "tldr"), Prefix: "combctl-", Suffix: ".md"},
	}

	for _, sub := range config.Subcommands {
		sub.Flags = mergeFlags(config, sub)

		metadata := TemplateData{
			Subcommand: sub,
			Date:       now.Format("January 2, 2006"),
			Version:    version,
			IDUpper:    strings.ToUpper(sub.ID),
		}

		for _, t := range types {
			if err := render(t, metadata); err != nil {
				return err
			}
		}
	}

	return nil
}

// mergeFlags returns the subcommand's own flags plus the shared sets it
// carries, sorted by id.
func mergeFlags(config Config, sub Subcommand) []Flag {
	var merged []Flag
	if !sub.NoCommon {
		merged = append(merged, config.Common.Flags...)
	}
	if sub.Report {
		merged = append(merged, config.Report.Flags...)
	}
	merged = append(merged, sub.Flags...)

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged
}

func render(t Outputs, metadata TemplateData) error {
	if err := os.MkdirAll(t.Folder, 0755); err != nil {
		return err
	}

	tmpl, err := template.ParseFiles(t.Template)
	if err != nil {
		return err
	}

	name := filepath.Join(t.Folder, t.Prefix+metadata.ID+t.Suffix)
	fmt.Println("Generating", name)

	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, metadata)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
