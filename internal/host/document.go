// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"
)

// Range is a half-open byte range [Start, End) within a document's text.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool { return r.End <= r.Start }

// Valid reports whether the range fits inside text of length n.
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.End >= r.Start && r.End <= n
}

// Document is the host buffer being formatted.
type Document interface {
	// Path is the absolute path of the file backing the buffer.
	Path() string
	Text() string
	// Selection returns the selected range and whether one exists.
	Selection() (Range, bool)
	// Grammar is the host's language name, e.g. "SCSS".
	Grammar() string
	SetText(text string) error
	ReplaceRange(r Range, text string) error
}

// SelectedText returns the text covered by the document's selection, or ""
// when there is none.
func SelectedText(d Document) string {
	r, ok := d.Selection()
	if !ok || r.Empty() {
		return ""
	}
	text := d.Text()
	if !r.Valid(len(text)) {
		return ""
	}
	return text[r.Start:r.End]
}

var grammarsByExt = map[string]string{
	".css":  "CSS",
	".less": "LESS",
	".scss": "SCSS",
	".sass": "Sass",
	".styl": "Stylus",
}

// GrammarFor returns the grammar name for a file path, or "" for unknown
// extensions.
func GrammarFor(path string) string {
	return grammarsByExt[strings.ToLower(filepath.Ext(path))]
}

// FileDocument is a Document backed by a file on disk. Changes stay in memory
// until Save.
type FileDocument struct {
	path      string
	text      string
	grammar   string
	selection *Range
	dirty     bool
	perm      os.FileMode
}

// FileOption customizes a FileDocument.
type FileOption func(*FileDocument)

// WithSelection selects r in the loaded text.
func WithSelection(r Range) FileOption {
	return func(d *FileDocument) {
		d.selection = &r
	}
}

// WithGrammar overrides the extension-derived grammar.
func WithGrammar(grammar string) FileOption {
	return func(d *FileDocument) {
		if grammar != "" {
			d.grammar = grammar
		}
	}
}

// OpenFile loads path into a FileDocument.
func OpenFile(path string, opts ...FileOption) (*FileDocument, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", abs)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	d := &FileDocument{
		path:    abs,
		text:    string(data),
		grammar: GrammarFor(abs),
		perm:    info.Mode().Perm(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.selection != nil && !d.selection.Valid(len(d.text)) {
		return nil, fmt.Errorf("selection %d:%d is outside %s (%d bytes)",
			d.selection.Start, d.selection.End, abs, len(d.text))
	}

	return d, nil
}

// Path implements Document.
func (d *FileDocument) Path() string { return d.path }

// Text implements Document.
func (d *FileDocument) Text() string { return d.text }

// Grammar implements Document.
func (d *FileDocument) Grammar() string { return d.grammar }

// Selection implements Document.
func (d *FileDocument) Selection() (Range, bool) {
	if d.selection == nil {
		return Range{}, false
	}
	return *d.selection, true
}

// Select replaces the selection with r.
func (d *FileDocument) Select(r Range) error {
	if !r.Valid(len(d.text)) {
		return fmt.Errorf("selection %d:%d is outside %s (%d bytes)", r.Start, r.End, d.path, len(d.text))
	}
	d.selection = &r
	return nil
}

// Dirty reports whether the buffer differs from what was loaded or last saved.
func (d *FileDocument) Dirty() bool { return d.dirty }

// SetText implements Document.
func (d *FileDocument) SetText(text string) error {
	if text != d.text {
		d.text = text
		d.dirty = true
	}
	d.selection = nil
	return nil
}

// ReplaceRange implements Document. The selection is moved to cover the
// replacement text.
func (d *FileDocument) ReplaceRange(r Range, text string) error {
	if !r.Valid(len(d.text)) {
		return fmt.Errorf("range %d:%d is outside the buffer (%d bytes)", r.Start, r.End, len(d.text))
	}

	if d.text[r.Start:r.End] != text {
		d.text = d.text[:r.Start] + text + d.text[r.End:]
		d.dirty = true
	}
	d.selection = &Range{Start: r.Start, End: r.Start + len(text)}
	return nil
}

// Save writes the buffer back to disk when it has changed. The write goes to
// a temporary file in the same directory which then replaces the original.
func (d *FileDocument) Save() error {
	if !d.dirty {
		log.Debugf("%s unchanged, not writing", d.path)
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "."+filepath.Base(d.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.WriteString(d.text); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	if err := tmp.Chmod(d.perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.path, err)
	}

	d.dirty = false
	log.Debugf("saved %s", d.path)
	return nil
}

// ParseLineRange parses a 1-based inclusive "FROM:TO" line spec (or a single
// line "N") and converts it to a byte Range over text. The range covers whole
// lines including the trailing newline of the last one.
func ParseLineRange(spec string, text string) (Range, error) {
	from, to, found := strings.Cut(spec, ":")
	if !found {
		to = from
	}

	first, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return Range{}, fmt.Errorf("invalid line range %q: %w", spec, err)
	}
	last, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return Range{}, fmt.Errorf("invalid line range %q: %w", spec, err)
	}
	if first < 1 || last < first {
		return Range{}, fmt.Errorf("invalid line range %q", spec)
	}

	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' && i+1 < len(text) {
			starts = append(starts, i+1)
		}
	}
	if last > len(starts) {
		return Range{}, fmt.Errorf("line range %q exceeds %d lines", spec, len(starts))
	}

	end := len(text)
	if last < len(starts) {
		end = starts[last]
	}

	return Range{Start: starts[first-1], End: end}, nil
}
