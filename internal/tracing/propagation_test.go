package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestStartSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	ctx, span := StartSpan(context.Background(), tp, "paypal_toolkit.execute")
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("Expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != "paypal_toolkit.execute" {
		t.Errorf("Unexpected span name %s", spans[0].Name())
	}
	if got := GetTraceID(ctx); got != spans[0].SpanContext().TraceID().String() {
		t.Errorf("Expected trace ID from span, got %s", got)
	}
}

func TestStartSpan_KeepsExistingTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	ctx := WithTraceID(context.Background(), "trace-123")

	ctx, span := StartSpan(ctx, tp, "op")
	defer span.End()

	if got := GetTraceID(ctx); got != "trace-123" {
		t.Errorf("Expected trace-123, got %s", got)
	}
}

func TestStartSpan_NoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), noop.NewTracerProvider(), "op")
	defer span.End()

	if GetTraceID(ctx) == "" {
		t.Error("Expected a generated trace ID")
	}
}

func TestInjectHeaders(t *testing.T) {
	t.Run("with span", func(t *testing.T) {
		tp := sdktrace.NewTracerProvider()
		ctx, span := StartSpan(context.Background(), tp, "op")
		defer span.End()

		headers := map[string]string{"Content-Type": "application/json"}
		InjectHeaders(ctx, headers)

		parent := headers["traceparent"]
		if !strings.HasPrefix(parent, "00-"+span.SpanContext().TraceID().String()) {
			t.Errorf("Unexpected traceparent %q", parent)
		}
		if headers["Content-Type"] != "application/json" {
			t.Error("Existing header was changed")
		}
	})

	t.Run("without span", func(t *testing.T) {
		headers := map[string]string{}
		InjectHeaders(context.Background(), headers)

		if len(headers) != 0 {
			t.Errorf("Expected no headers, got %v", headers)
		}
	})
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithTraceID(context.Background(), "trace-123")
	ctx = WithToolCallID(ctx, "call_1")

	logger := LoggerFromContext(ctx, base)
	logger.Info().Msg("dispatch")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"trace-123"`) {
		t.Errorf("Missing trace_id in %s", out)
	}
	if !strings.Contains(out, `"tool_call_id":"call_1"`) {
		t.Errorf("Missing tool_call_id in %s", out)
	}
	if strings.Contains(out, "session_key") {
		t.Errorf("Unexpected session_key in %s", out)
	}
}
