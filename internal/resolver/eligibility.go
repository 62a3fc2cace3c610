// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/bmatcuk/doublestar/v4"
)

// IsEligible decides whether target should be processed under cfg. The exclude
// patterns are matched against target relative to the directory of cfg.Path.
// For presets, projectRoot is the reference point when it is set and contains
// target; otherwise the plain target path is matched.
func IsEligible(cfg *ResolvedConfig, target string, projectRoot string) Decision {
	rel := RelativeTarget(cfg, target, projectRoot)

	if cfg == nil || len(cfg.Exclude) == 0 {
		return Decision{Eligible: true, Reason: ReasonOK, RelPath: rel}
	}

	for _, pattern := range cfg.Exclude {
		// Patterns were validated by Parse, so the error can only be
		// ErrBadPattern for hand built configs. Treat those as non-matching.
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			log.WithError(err).Warnf("skipping exclude pattern %q", pattern)
			continue
		}
		if ok {
			log.Debugf("%s excluded by %q", rel, pattern)
			return Decision{
				Eligible: false,
				Reason:   ReasonIgnoredByPattern,
				Pattern:  pattern,
				RelPath:  rel,
			}
		}
	}

	return Decision{Eligible: true, Reason: ReasonOK, RelPath: rel}
}

// RelativeTarget returns the slash separated path exclude patterns are
// matched against.
func RelativeTarget(cfg *ResolvedConfig, target string, projectRoot string) string {
	target = filepath.Clean(target)

	if cfg != nil && cfg.Path != "" {
		if rel, err := filepath.Rel(filepath.Dir(cfg.Path), target); err == nil {
			return filepath.ToSlash(rel)
		}
		return filepath.ToSlash(target)
	}

	if projectRoot != "" {
		rel, err := filepath.Rel(projectRoot, target)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(rel)
		}
	}

	return filepath.ToSlash(target)
}
