// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			setupContext: func() context.Context {
				return New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			},
		},
		{
			name:          "context without logger",
			setupContext:  context.Background,
			expectDefault: true,
		},
		{
			name: "New with nil logger",
			setupContext: func() context.Context {
				return New(context.Background(), nil)
			},
			expectDefault: true,
		},
		{
			name: "context with wrong type value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.setupContext())
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		message  string
		expected string
	}{
		{name: "info", logFunc: Info, message: "test info message", expected: "INFO"},
		{name: "debug", logFunc: Debug, message: "test debug message", expected: "DEBUG"},
		{name: "warn", logFunc: Warn, message: "test warning message", expected: "WARN"},
		{name: "error", logFunc: Error, message: "test error message", expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, tt.message, "key", "value")

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "key=value")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		envValue string
		want     slog.Level
		wantSet  bool
	}{
		{envValue: "DEBUG", want: slog.LevelDebug, wantSet: true},
		{envValue: "info", want: slog.LevelInfo, wantSet: true},
		{envValue: "WARN", want: slog.LevelWarn, wantSet: true},
		{envValue: "ERROR", want: slog.LevelError, wantSet: true},
		{envValue: "INVALID", want: slog.LevelWarn},
		{envValue: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("value "+tt.envValue, func(t *testing.T) {
			t.Setenv(LevelEnvVar(), tt.envValue)

			level, ok := logLevelFromEnv()
			assert.Equal(t, tt.want, level)
			assert.Equal(t, tt.wantSet, ok)
		})
	}
}

func TestLevelEnvVar(t *testing.T) {
	name := LevelEnvVar()
	assert.True(t, strings.HasSuffix(name, "_LOG_LEVEL"))
	assert.Equal(t, strings.ToUpper(name), name)
}

func TestSetDefaultLevel(t *testing.T) {
	original := LevelVar.Level()
	originalFromEnv := levelFromEnv

	defer func() {
		LevelVar.Set(original)
		levelFromEnv = originalFromEnv
	}()

	levelFromEnv = false
	SetDefaultLevel(slog.LevelInfo)
	assert.Equal(t, slog.LevelInfo, LevelVar.Level())

	levelFromEnv = true
	SetDefaultLevel(slog.LevelDebug)
	assert.Equal(t, slog.LevelInfo, LevelVar.Level(), "environment level must win")
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug},
		WithDestinationWriter(&buf),
		WithColour(false),
	))

	logger.With("file", ".ok").Info("list loaded", "items", 3)

	out := buf.String()
	assert.Contains(t, out, "INFO: list loaded")
	assert.Contains(t, out, `"file"`)
	assert.Contains(t, out, `"items"`)
	assert.NotContains(t, out, "\033[")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPrettyHandlerNoAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(&buf)))
	logger.Warn("plain")

	assert.True(t, strings.HasSuffix(buf.String(), "WARN: plain\n"))
}

func TestPrettyHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelWarn}, WithDestinationWriter(&buf)))
	logger.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestPrettyHandlerColour(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(&buf), WithColour(true)))
	logger.Error("boom")

	assert.Contains(t, buf.String(), "\033[31mERROR:\033[0m")
}
