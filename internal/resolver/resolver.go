// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// Stater is the slice of the filesystem ResolveConfigPath needs.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// Resolver bundles the filesystem and environment capabilities used during
// resolution. The zero value is not usable; use New.
type Resolver struct {
	FS       Stater
	ReadFile func(string) ([]byte, error)
	HomeDir  func() (string, error)
}

// New returns a Resolver backed by the operating system.
func New() *Resolver {
	return &Resolver{
		FS:       osFS{},
		ReadFile: os.ReadFile,
		HomeDir:  userHome,
	}
}

var std = New()

// ResolveConfigPath applies the default Resolver. See Resolver.ResolveConfigPath.
func ResolveConfigPath(target string, opts Options) (Resolution, error) {
	return std.ResolveConfigPath(target, opts)
}

// ResolveConfigPath locates the configuration file for target. Sources are
// checked in fixed order and the first hit wins. A zero Resolution with a nil
// error means the caller should fall back to a preset.
func (r *Resolver) ResolveConfigPath(target string, opts Options) (Resolution, error) {
	if !opts.SearchDisabled {
		if p, ok := r.searchAncestors(target); ok {
			log.Debugf("config found by ancestor search: %s", p)
			return Resolution{Path: p, Provenance: ProvenanceAncestor}, nil
		}
	}

	if opts.CustomConfigPath != "" {
		p, err := r.ExpandHome(opts.CustomConfigPath)
		if err != nil {
			return Resolution{}, err
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if r.isFile(p) {
			log.Debugf("using custom config: %s", p)
			return Resolution{Path: p, Provenance: ProvenanceCustom}, nil
		}
		log.Debugf("custom config not found, ignoring: %s", p)
	}

	return Resolution{}, nil
}

// searchAncestors walks from the directory holding target up to the
// filesystem root and returns the first ConfigFileName it finds.
func (r *Resolver) searchAncestors(target string) (string, bool) {
	dir := filepath.Dir(filepath.Clean(target))
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if r.isFile(candidate) {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (r *Resolver) isFile(p string) bool {
	info, err := r.FS.Stat(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Debugf("stat %s", p)
		}
		return false
	}
	return !info.IsDir()
}

// ExpandHome replaces a leading "~" or "~/" with the invoking user's home
// directory. Other forms, including "~user", are returned unchanged.
func (r *Resolver) ExpandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p, nil
	}

	home, err := r.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", p, err)
	}

	return filepath.Join(home, filepath.FromSlash(p[1:])), nil
}

// userHome resolves the home directory, falling back to the Windows variables
// when os.UserHomeDir has nothing to offer.
func userHome() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	for _, key := range []string{"HOMEPATH", "USERPROFILE"} {
		if v := os.Getenv(key); v != "" {
			return v, nil
		}
	}
	return "", errors.New("can't determine user home directory")
}
