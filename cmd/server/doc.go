// Package main is the entry point for the backend service template.
//
// The server provides:
//   - Health, readiness, and root endpoints
//   - Trace-correlated structured logging on every request
//   - Optional OpenTelemetry tracing (OTLP HTTP or console export)
//   - Prometheus metrics on /metrics
//   - CORS, request-id, and rate limiting middleware
//
// Configuration:
//   - Environment variables (12-factor), see internal/infrastructure/config
//   - Defaults suitable for development
//
// Usage:
//
//	# Production mode
//	ENV=production PORT=8000 ./server
//
//	# Development mode (colored logs, console trace exporter)
//	./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown (drains requests, flushes spans)
package main
