// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", "")
	require.NotNil(t, l)
}

// TestNewLoggerWithWriter_Fields verifies that every entry carries the role,
// a timestamp, and the caller function name.
func TestNewLoggerWithWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "test-role", "debug")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLoggerWithWriter_Fields")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLoggerWithWriter_Level verifies that entries below the configured
// level are dropped.
func TestNewLoggerWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, "lvl", "warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "", want: zerolog.InfoLevel},
		{in: "debug", want: zerolog.DebugLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_Independent verifies that fields added to the child do
// not leak into the parent.
func TestGetChildLogger_Independent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("child", "yes").Logger()

	parent.Info().Msg("parent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "child")
}

// TestFromContext verifies that the logger attached with WithContext is
// returned.
func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("request", "r-1").Logger()
	ctx := base.WithContext(context.Background())

	FromContext(ctx).Info().Msg("in context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-1", entry["request"])
}

// TestFromContext_Empty verifies that a bare context yields a usable logger.
func TestFromContext_Empty(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("noop") })
}
