package tracing

import (
	"context"
	"testing"
)

func TestNewTraceID(t *testing.T) {
	id1 := NewTraceID()
	id2 := NewTraceID()

	if id1 == "" {
		t.Error("NewTraceID returned empty string")
	}

	if id1 == id2 {
		t.Error("NewTraceID returned duplicate IDs")
	}
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "test-trace-id")

	if got := GetTraceID(ctx); got != "test-trace-id" {
		t.Errorf("Expected trace ID test-trace-id, got %s", got)
	}
}

func TestWithSessionKey(t *testing.T) {
	ctx := WithSessionKey(context.Background(), "session-abc")

	if got := GetSessionKey(ctx); got != "session-abc" {
		t.Errorf("Expected session key session-abc, got %s", got)
	}
}

func TestWithToolCallID(t *testing.T) {
	ctx := WithToolCallID(context.Background(), "call_1")

	if got := GetToolCallID(ctx); got != "call_1" {
		t.Errorf("Expected tool call ID call_1, got %s", got)
	}
}

func TestEmptyContext(t *testing.T) {
	tc := FromContext(context.Background())

	if tc.TraceID != "" || tc.SessionKey != "" || tc.ToolCallID != "" {
		t.Errorf("Expected empty trace context, got %+v", tc)
	}
}

func TestNewContextRoundTrip(t *testing.T) {
	want := &TraceContext{
		TraceID:    "trace-123",
		SessionKey: "session-abc",
		ToolCallID: "call_1",
	}

	got := FromContext(NewContext(context.Background(), want))

	if *got != *want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}
