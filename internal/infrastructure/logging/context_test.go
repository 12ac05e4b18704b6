package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

const (
	testTraceIDHex = "0102030405060708090a0b0c0d0e0f10"
	testSpanIDHex  = "0102030405060708"
)

func contextWithSpan(t *testing.T) context.Context {
	t.Helper()

	traceID, err := trace.TraceIDFromHex(testTraceIDHex)
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex(testSpanIDHex)
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestInfoCtxWithActiveTrace(t *testing.T) {
	logger, logs := newObservedLogger(false)

	logger.InfoCtx(contextWithSpan(t), "traced")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, testTraceIDHex, fields["trace_id"])
	assert.Equal(t, testSpanIDHex, fields["span_id"])
}

func TestInfoCtxWithoutTrace(t *testing.T) {
	logger, logs := newObservedLogger(false)

	logger.InfoCtx(context.Background(), "untraced")

	entries := logs.All()
	require.Len(t, entries, 1)

	// Absence, not empty strings: the keys must not exist at all.
	fields := entries[0].ContextMap()
	_, hasTrace := fields["trace_id"]
	_, hasSpan := fields["span_id"]
	assert.False(t, hasTrace)
	assert.False(t, hasSpan)
}

func TestIncludeLocationToggle(t *testing.T) {
	withLocation, withLogs := newObservedLogger(true)
	withLocation.InfoCtx(context.Background(), "located")

	require.Len(t, withLogs.All(), 1)
	caller, present := withLogs.All()[0].ContextMap()["caller"]
	assert.True(t, present)
	assert.Contains(t, caller, ":")

	withoutLocation, withoutLogs := newObservedLogger(false)
	withoutLocation.InfoCtx(contextWithSpan(t), "not located")

	require.Len(t, withoutLogs.All(), 1)
	_, present = withoutLogs.All()[0].ContextMap()["caller"]
	assert.False(t, present)
}

func TestMixinFieldsExact(t *testing.T) {
	logger, _ := newObservedLogger(false)

	fields := logger.mixinFields(contextWithSpan(t))
	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, "span_id", fields[1].Key)

	assert.Empty(t, logger.mixinFields(context.Background()))
}

func TestTraceQueryPanicDegrades(t *testing.T) {
	orig := traceQuery
	traceQuery = func(context.Context) trace.SpanContext {
		panic("tracing backend exploded")
	}
	t.Cleanup(func() { traceQuery = orig })

	logger, logs := newObservedLogger(false)

	assert.NotPanics(t, func() {
		logger.InfoCtx(context.Background(), "still emitted")
	})

	// The record survives, just without trace enrichment.
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "still emitted", entries[0].Message)
	_, hasTrace := entries[0].ContextMap()["trace_id"]
	assert.False(t, hasTrace)
}

func TestLogWithTraceLevels(t *testing.T) {
	logger, logs := newObservedLogger(false)
	ctx := contextWithSpan(t)

	logger.LogWithTrace(ctx, "debug", "d")
	logger.LogWithTrace(ctx, "warn", "w")
	logger.LogWithTrace(ctx, "error", "e")
	logger.LogWithTrace(ctx, "info", "i")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug", entries[0].Level.String())
	assert.Equal(t, "warn", entries[1].Level.String())
	assert.Equal(t, "error", entries[2].Level.String())
	assert.Equal(t, "info", entries[3].Level.String())

	for _, entry := range entries {
		assert.Equal(t, testTraceIDHex, entry.ContextMap()["trace_id"])
	}
}

func TestLogWithTraceUnknownLevel(t *testing.T) {
	logger, logs := newObservedLogger(false)

	assert.NotPanics(t, func() {
		logger.LogWithTrace(context.Background(), "shout", "loud")
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0].Level.String())
}

func TestContextRoundTrip(t *testing.T) {
	logger, _ := newObservedLogger(false)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	got := FromContext(context.Background())
	assert.Same(t, Global(), got)
}
