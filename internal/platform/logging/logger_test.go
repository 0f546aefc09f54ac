package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("component", "integrity")

	logger.Warn("delete team failed", "team_id", "64f1a2b3c4d5e6f708192a3b", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "delete team failed", entries[0].Message)
	assert.Equal(t, "integrity", fields["component"])
	assert.Equal(t, "64f1a2b3c4d5e6f708192a3b", fields["team_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "events queried", "count", 3)
	logger.DebugContext(ctx, "filtered out by level")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	assert.EqualValues(t, 3, fields["count"])
}

func TestLogger_TeeWritesToEveryCore(t *testing.T) {
	primary, primaryLogs := observer.New(zapcore.InfoLevel)
	remote, remoteLogs := observer.New(zapcore.ErrorLevel)
	logger := FromZap(zap.New(primary)).Tee(remote)

	logger.Info("league created", "league_id", "l1")
	logger.Error("delete league failed", "league_id", "l1")

	assert.Equal(t, 2, primaryLogs.Len())
	require.Equal(t, 1, remoteLogs.Len())
	assert.Equal(t, "delete league failed", remoteLogs.All()[0].Message)
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("no logger configured")
		_ = logger.With("k", "v")
		_ = logger.Named("x")
		_ = logger.Sync()
	})
}
