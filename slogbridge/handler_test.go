// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package slogbridge

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/jsonlog-core/jsonlog"
	"github.com/stacklok/jsonlog-core/scope"
	"github.com/stacklok/jsonlog-core/sink"
)

func newBridge(t *testing.T, opts *jsonlog.Options) (*slog.Logger, *[]string) {
	t.Helper()

	var emitted []string
	provider, err := jsonlog.NewLoggerProvider(sink.Func(func(text string) {
		emitted = append(emitted, text)
	}), opts)
	require.NoError(t, err)
	return slog.New(New(provider, "bridge")), &emitted
}

func lastRecord(t *testing.T, emitted *[]string) map[string]any {
	t.Helper()

	require.NotEmpty(t, *emitted)
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte((*emitted)[len(*emitted)-1]), &parsed))
	return parsed
}

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	t.Run("message and category flow through", func(t *testing.T) {
		t.Parallel()
		logger, emitted := newBridge(t, jsonlog.DefaultOptions())

		logger.Info("request served")

		record := lastRecord(t, emitted)
		assert.Equal(t, "Information", record["logLevel"])
		assert.Equal(t, "bridge", record["category"])
		assert.Equal(t, "request served", record["text"])
	})

	t.Run("attributes flatten like named scopes", func(t *testing.T) {
		t.Parallel()
		logger, emitted := newBridge(t, jsonlog.DefaultOptions())

		logger.Info("m", "RequestId", "abc", "UserId", 42)

		record := lastRecord(t, emitted)
		assert.Equal(t, "abc", record["requestId"])
		assert.Equal(t, float64(42), record["userId"])
	})

	t.Run("error attribute becomes the exception field", func(t *testing.T) {
		t.Parallel()
		logger, emitted := newBridge(t, jsonlog.DefaultOptions())

		logger.Error("failed", "error", errors.New("boom"))

		record := lastRecord(t, emitted)
		assert.Equal(t, "Error", record["logLevel"])
		exception, ok := record["exception"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "boom", exception["error"])
		_, hasFlat := record["error"]
		assert.False(t, hasFlat, "error attr should not flatten into a field")
	})

	t.Run("ambient scopes on the context still apply", func(t *testing.T) {
		t.Parallel()
		var emitted []string
		provider, err := jsonlog.NewLoggerProvider(sink.Func(func(text string) {
			emitted = append(emitted, text)
		}), jsonlog.DefaultOptions())
		require.NoError(t, err)

		core := provider.Logger("bridge")
		ctx, release := core.BeginScope(context.Background(), scope.Field{Key: "TraceId", Value: "t-1"})
		defer release.Release()

		slog.New(New(provider, "bridge")).InfoContext(ctx, "m")

		record := lastRecord(t, &emitted)
		assert.Equal(t, "t-1", record["traceId"])
	})
}

func TestHandler_Enabled(t *testing.T) {
	t.Parallel()

	opts := jsonlog.DefaultOptions()
	opts.Filter = func(_ string, level jsonlog.Level) bool {
		return level >= jsonlog.LevelWarning
	}
	logger, emitted := newBridge(t, opts)

	logger.Info("dropped")
	assert.Empty(t, *emitted)

	logger.Warn("kept")
	assert.Len(t, *emitted, 1)
}

func TestHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	logger, emitted := newBridge(t, jsonlog.DefaultOptions())

	logger.With("Component", "server").Info("m", "RequestId", "abc")

	record := lastRecord(t, emitted)
	assert.Equal(t, "server", record["component"])
	assert.Equal(t, "abc", record["requestId"])
}

func TestHandler_WithGroup(t *testing.T) {
	t.Parallel()

	logger, emitted := newBridge(t, jsonlog.DefaultOptions())

	logger.WithGroup("http").Info("m", "Status", 200)

	record := lastRecord(t, emitted)
	assert.Equal(t, float64(200), record["http.Status"])
}

func TestFromSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want jsonlog.Level
	}{
		{slog.LevelDebug - 4, jsonlog.LevelTrace},
		{slog.LevelDebug, jsonlog.LevelDebug},
		{slog.LevelInfo, jsonlog.LevelInformation},
		{slog.LevelWarn, jsonlog.LevelWarning},
		{slog.LevelError, jsonlog.LevelError},
		{slog.LevelError + 4, jsonlog.LevelCritical},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fromSlogLevel(tc.in), tc.in.String())
	}
}
