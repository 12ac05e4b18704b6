package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/go-backend-template/internal/infrastructure/logging"
)

func TestInitDisabledReturnsNilProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	provider, err := Init(cfg, logging.NewDefault())
	require.NoError(t, err)
	assert.Nil(t, provider)
}

func TestInitInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SamplingRate = 2.0

	provider, err := Init(cfg, logging.NewDefault())
	assert.ErrorIs(t, err, ErrSamplingRateInvalid)
	assert.Nil(t, provider)
}

func TestNilProviderShutdown(t *testing.T) {
	var provider *Provider
	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestInitNoExporters(t *testing.T) {
	// Enabled with neither endpoint nor console exporter: spans are
	// sampled but go nowhere. Still a fully working provider.
	cfg := DefaultConfig()

	provider, err := Init(cfg, logging.NewDefault())
	require.NoError(t, err)
	require.NotNil(t, provider)

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
}

func TestShutdownSurfacesFlushFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConsoleExporter = true

	provider, err := Init(cfg, logging.NewDefault())
	require.NoError(t, err)
	require.NotNil(t, provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A dead context cannot flush the batch processor. The error is
	// returned to the caller; deciding whether to log or swallow it is
	// the caller's job.
	assert.ErrorIs(t, provider.Shutdown(ctx), context.Canceled)
}

func TestInitRecordOmitsServiceField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := logging.NewWithZap(zap.New(core), false)

	provider, err := Init(DefaultConfig(), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	// The service name rides on the logger's initial fields; the init
	// record must not add the key a second time.
	entries := logs.FilterMessage("Tracing initialized").All()
	require.Len(t, entries, 1)
	_, present := entries[0].ContextMap()["service"]
	assert.False(t, present)
}

func TestDisabledTracingEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	provider, err := Init(cfg, logging.NewDefault())
	require.NoError(t, err)
	require.Nil(t, provider)

	// With tracing off nothing installs a span, so the query reports
	// absence and shutdown stays a no-op.
	_, ok := ActiveTraceContext(context.Background())
	assert.False(t, ok)
	assert.NoError(t, provider.Shutdown(context.Background()))
}
