// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ProjectMarkers are the entries whose presence marks a directory as a project
// root.
var ProjectMarkers = []string{".git", ".hg", ".svn", "package.json"}

// ParseRootDir returns rootDir as an absolute, cleaned directory path. It
// returns an error if the fs entry does not exist, is empty or is not a
// directory.
func ParseRootDir(rootDir string) (string, error) {
	if rootDir == "" {
		return "", os.ErrInvalid
	}

	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}

// FindProjectRoot walks up from start and returns the first directory that
// holds one of ProjectMarkers. It returns "" when no ancestor qualifies.
// start may be a file, in which case its directory is the first candidate.
func FindProjectRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	if fi, err := os.Stat(dir); err == nil && !fi.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, m := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
