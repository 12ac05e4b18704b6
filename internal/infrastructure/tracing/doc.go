/*
Package tracing provides OpenTelemetry distributed tracing for the service.

# Overview

This package owns the tracing SDK lifecycle: exporter construction, span
processor wiring, resource attributes, and graceful shutdown. The rest of
the application only consumes two things from it: the gin middleware that
opens a server span per request, and ActiveTraceContext, the query the
logging package uses to correlate records with the active trace.

# Features

- OTLP HTTP export when an endpoint is configured
- Console (stdout) export for development and debugging
- Service identity resource attributes (name, version, environment)
- Parent-based ratio sampling
- Gin middleware for automatic HTTP instrumentation
- Nil-safe, non-propagating shutdown

# Usage

	provider, err := tracing.Init(cfg, logger)
	if err != nil {
		logger.Warn("tracing unavailable", zap.Error(err))
	}
	defer provider.Shutdown(ctx)

	router.Use(tracing.Middleware(cfg.ServiceName))

	// Correlating ad hoc work with the active trace:
	if tc, ok := tracing.ActiveTraceContext(ctx); ok {
		logger.Info("working", zap.String("trace_id", tc.TraceID))
	}

Tracing is enrichment, never a dependency: every failure path in this
package degrades to "no trace" instead of surfacing to request handling.
*/
package tracing
