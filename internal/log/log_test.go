// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"trace", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestCustomHandler_HandleLog(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	err := h.HandleLog(&log.Entry{
		Level:   log.WarnLevel,
		Message: "config not found",
		Fields:  log.Fields{"path": "/tmp/x"},
	})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), " W config not found path=/tmp/x")
}

func TestCustomHandler_Trace(t *testing.T) {
	var buf bytes.Buffer
	h := &CustomHandler{Writer: &buf}

	_ = h.HandleLog(&log.Entry{Level: log.DebugLevel, Message: "TRACE: walking"})

	assert.Contains(t, buf.String(), " T walking")
}
