package logging

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// traceQuery resolves the active span context. It is a variable so tests
// can substitute a failing source.
var traceQuery = trace.SpanContextFromContext

// traceFields queries the active span. Any panic out of the tracing API is
// absorbed here: enrichment must never break the log call itself.
func traceFields(ctx context.Context) (traceID, spanID string, ok bool) {
	defer func() {
		if recover() != nil {
			traceID, spanID, ok = "", "", false
		}
	}()

	sc := traceQuery(ctx)
	if !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}

// mixinFields resolves the ambient fields for one record: trace identifiers
// when a span is active, caller location when enabled. Only fields that
// actually resolved are returned; absence is never encoded as an empty value.
func (l *Logger) mixinFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 3)

	if traceID, spanID, ok := traceFields(ctx); ok {
		fields = append(fields,
			zap.String("trace_id", traceID),
			zap.String("span_id", spanID),
		)
	}

	if l.includeLocation {
		if caller, ok := resolveCaller(); ok {
			fields = append(fields, zap.String("caller", caller))
		}
	}

	return fields
}

// DebugCtx logs at debug level with ambient context fields resolved from ctx.
func (l *Logger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.Debug(msg, append(l.mixinFields(ctx), fields...)...)
}

// InfoCtx logs at info level with ambient context fields resolved from ctx.
func (l *Logger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.Info(msg, append(l.mixinFields(ctx), fields...)...)
}

// WarnCtx logs at warn level with ambient context fields resolved from ctx.
func (l *Logger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.Warn(msg, append(l.mixinFields(ctx), fields...)...)
}

// ErrorCtx logs at error level with ambient context fields resolved from ctx.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.Error(msg, append(l.mixinFields(ctx), fields...)...)
}

// LogWithTrace emits msg at the named level with trace identifiers merged
// into fields. It queries the trace source directly, so it works from call
// sites outside the normal ctx-method path (async continuations and the
// like). Unrecognized levels emit at info rather than being rejected.
func (l *Logger) LogWithTrace(ctx context.Context, level, msg string, fields ...zap.Field) {
	if traceID, spanID, ok := traceFields(ctx); ok {
		fields = append(fields,
			zap.String("trace_id", traceID),
			zap.String("span_id", spanID),
		)
	}

	switch strings.ToLower(level) {
	case "debug":
		l.Debug(msg, fields...)
	case "warn":
		l.Warn(msg, fields...)
	case "error":
		l.Error(msg, fields...)
	default:
		l.Info(msg, fields...)
	}
}

type loggerCtxKey struct{}

// NewContext returns a context carrying the given logger, typically a child
// bound with request-scoped fields.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// FromContext returns the logger stored in ctx, or the process-wide logger
// when none is present.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return Global()
}
