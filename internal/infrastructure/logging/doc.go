// Package logging provides structured logging using uber/zap with
// automatic trace correlation.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Every context-aware emission (InfoCtx, ErrorCtx, LogWithTrace) resolves
// the active OpenTelemetry span at emission time and annotates the record
// with trace_id/span_id, plus the calling source location when enabled.
// Records emitted without an active span carry neither trace field, so
// downstream consumers can distinguish absence from an empty value.
//
// Enrichment is strictly best-effort: a failing trace query or stack
// inspection drops the affected field only; the record is still emitted
// and nothing propagates to the caller.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.InfoCtx(ctx, "server starting", zap.String("port", "8000"))
//
//	reqLogger := logger.WithFields(zap.String("request_id", "req_01H..."))
//	reqLogger.ErrorCtx(ctx, "failed to connect", zap.Error(err))
package logging
