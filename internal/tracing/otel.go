package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of toolkit spans
const TracerName = "github.com/harun/paypal-agent-toolkit"

// StartSpan starts a span from tp, or from the global provider when tp is nil,
// and ensures trace_id is set in the tracing context.
func StartSpan(ctx context.Context, tp trace.TracerProvider, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	ctx, span := tp.Tracer(TracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))

	if GetTraceID(ctx) == "" {
		if sc := span.SpanContext(); sc.IsValid() {
			ctx = WithTraceID(ctx, sc.TraceID().String())
		} else {
			ctx = WithTraceID(ctx, NewTraceID())
		}
	}

	return ctx, span
}
