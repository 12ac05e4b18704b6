package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceContext carries the identifiers of the active trace span. Values
// are produced fresh on every query and never cached: a trace may start or
// end between two log calls.
type TraceContext struct {
	TraceID string
	SpanID  string
}

// ActiveTraceContext reports the identifiers of the span active in ctx.
// The second return is false when no valid span exists. Failures inside
// the tracing API are absorbed and reported as absence; this query must
// never break its caller.
func ActiveTraceContext(ctx context.Context) (tc TraceContext, ok bool) {
	defer func() {
		if recover() != nil {
			tc, ok = TraceContext{}, false
		}
	}()

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return TraceContext{}, false
	}
	return TraceContext{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}, true
}

// ContextWithRemoteTrace binds an externally supplied trace ID to ctx as a
// remote span context, so spans started from ctx join that trace. Invalid
// IDs leave ctx unchanged.
func ContextWithRemoteTrace(ctx context.Context, traceIDHex string) context.Context {
	traceID, err := trace.TraceIDFromHex(traceIDHex)
	if err != nil {
		return ctx
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}
