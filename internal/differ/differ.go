// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/combctl/internal/resolver"
)

// Delta is the difference between two configurations.
type Delta struct {
	diff gojsondiff.Diff
	left map[string]interface{}
}

// Identical reports whether the configurations have no differences.
func (d *Delta) Identical() bool {
	return d == nil || d.diff == nil || !d.diff.Modified()
}

// Render formats the delta as an ASCII diff against the left configuration.
// Identical configurations render as an empty string.
func (d *Delta) Render(coloring bool) (string, error) {
	if d.Identical() {
		return "", nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	f := formatter.NewAsciiFormatter(d.left, config)
	return f.Format(d.diff)
}

// Compare diffs a against b. Keys named in ignore are removed from both sides
// before comparing.
func Compare(a, b *resolver.ResolvedConfig, ignore ...string) (*Delta, error) {
	log.Debugf(">> differ.Compare()")

	if a == nil || b == nil {
		return nil, errors.New("both configurations are required")
	}

	left, err := document(a, ignore...)
	if err != nil {
		return nil, err
	}
	right, err := document(b, ignore...)
	if err != nil {
		return nil, err
	}

	lb, err := json.Marshal(left)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", a.Origin(), err)
	}
	rb, err := json.Marshal(right)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", b.Origin(), err)
	}

	delta, err := gojsondiff.New().Compare(lb, rb)
	if err != nil {
		return nil, fmt.Errorf("failed to compare configurations: %w", err)
	}

	log.Debugf("differ: %s vs %s modified=%t", a.Origin(), b.Origin(), delta.Modified())

	return &Delta{diff: delta, left: left}, nil
}

// document returns cfg as a generic JSON document minus the ignored keys.
func document(cfg *resolver.ResolvedConfig, ignore ...string) (map[string]interface{}, error) {
	doc, err := cfg.Document()
	if err != nil {
		return nil, err
	}

	for _, key := range ignore {
		if key != "" {
			delete(doc, key)
		}
	}

	return doc, nil
}
