// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
)

// Level is the severity of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

// Sink accepts notifications.
type Sink interface {
	Notify(level Level, message string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Level, string)

// Notify implements Sink.
func (f SinkFunc) Notify(level Level, message string) { f(level, message) }

// Info sends an info notification to s.
func Info(s Sink, message string) { s.Notify(LevelInfo, message) }

// Error sends an error notification to s.
func Error(s Sink, message string) { s.Notify(LevelError, message) }

// Console writes info notifications to Out and errors to Err, styled with
// lipgloss when Color is set.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// NewConsole returns a Console on stdout/stderr with color enabled only when
// stderr is a terminal.
func NewConsole() *Console {
	return &Console{
		Out:   os.Stdout,
		Err:   os.Stderr,
		Color: IsTerminal(os.Stderr),
	}
}

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00c8f0"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
)

// Notify implements Sink.
func (c *Console) Notify(level Level, message string) {
	w, style, prefix := c.Out, infoStyle, "info:"
	if level == LevelError {
		w, style, prefix = c.Err, errorStyle, "error:"
	}
	if w == nil {
		return
	}

	if c.Color {
		prefix = style.Render(prefix)
	}

	// A broken pipe on a notification is not worth failing over.
	_, _ = fmt.Fprintln(w, prefix, message)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Log routes notifications to the apex logger.
type Log struct{}

// Notify implements Sink.
func (Log) Notify(level Level, message string) {
	if level == LevelError {
		log.Errorf("notify: %s", message)
		return
	}
	log.Infof("notify: %s", message)
}

// Toggle forwards to Next only when Enabled, mirroring the showNotifications
// option.
type Toggle struct {
	Enabled bool
	Next    Sink
}

// Notify implements Sink.
func (t Toggle) Notify(level Level, message string) {
	if !t.Enabled || t.Next == nil {
		return
	}
	t.Next.Notify(level, message)
}

// Multi fans a notification out to every sink.
type Multi []Sink

// Notify implements Sink.
func (m Multi) Notify(level Level, message string) {
	for _, s := range m {
		if s != nil {
			s.Notify(level, message)
		}
	}
}

// Nop discards notifications.
type Nop struct{}

// Notify implements Sink.
func (Nop) Notify(Level, string) {}

// Message is a notification captured by Recorder.
type Message struct {
	Level Level
	Text  string
}

// Recorder keeps every notification it receives. Useful in tests and for
// hosts that display messages after the fact.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

// Notify implements Sink.
func (r *Recorder) Notify(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Level: level, Text: message})
}

// Last returns the most recent message, or the zero Message.
func (r *Recorder) Last() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}
