package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(includeLocation bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewWithZap(zap.New(core), includeLocation), logs
}

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewDevelopment(t *testing.T) {
	logger := NewDevelopment()
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestParseLevelFallback(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
}

func TestNewWithMalformedLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "not-a-level"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestWithFieldsChildIsolation(t *testing.T) {
	parent, logs := newObservedLogger(false)
	child := parent.WithFields(zap.String("request_id", "abc"))

	child.Info("from child")
	parent.Info("from parent")

	entries := logs.All()
	require.Len(t, entries, 2)

	childFields := entries[0].ContextMap()
	assert.Equal(t, "abc", childFields["request_id"])

	// The parent must not pick up the child's bound fields.
	parentFields := entries[1].ContextMap()
	_, present := parentFields["request_id"]
	assert.False(t, present)
}

func TestMultipleChildrenIndependent(t *testing.T) {
	parent, logs := newObservedLogger(false)
	a := parent.WithFields(zap.String("request_id", "a"))
	b := parent.WithFields(zap.String("request_id", "b"))

	a.Info("one")
	b.Info("two")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "b", entries[1].ContextMap()["request_id"])
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := LoadConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.IncludeLocation)
	assert.False(t, cfg.Development)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_INCLUDE_LOCATION", "false")
	t.Setenv("OTEL_SERVICE_NAME", "svc-under-test")
	t.Setenv("ENV", "production")

	cfg := LoadConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.False(t, cfg.IncludeLocation)
	assert.Equal(t, "svc-under-test", cfg.Service)
	assert.False(t, cfg.Development)
}

func TestLoadConfigMalformedValueKeepsValidSiblings(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_INCLUDE_LOCATION", "garbage")

	cfg := LoadConfig()

	// The malformed boolean falls back to its own default; the valid
	// level next to it must survive.
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.IncludeLocation)

	// The environment itself is left as the caller set it.
	assert.Equal(t, "garbage", os.Getenv("LOG_INCLUDE_LOCATION"))
}

func TestLoadConfigDevelopmentOutsideProduction(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg := LoadConfig()
	assert.True(t, cfg.Development)
}
