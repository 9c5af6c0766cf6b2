package observe

import (
	"context"
	"errors"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/codes"
)

func TestOpMeta_SpanName(t *testing.T) {
	tests := []struct {
		name string
		meta OpMeta
		want string
	}{
		{"with namespace", OpMeta{Namespace: "alpaca", Name: "buy"}, "op.exec.alpaca.buy"},
		{"without namespace", OpMeta{Name: "sell"}, "op.exec.sell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.SpanName(); got != tt.want {
				t.Errorf("SpanName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpMeta_OpID(t *testing.T) {
	tests := []struct {
		name string
		meta OpMeta
		want string
	}{
		{"explicit id", OpMeta{ID: "custom", Namespace: "alpaca", Name: "buy"}, "custom"},
		{"namespace and name", OpMeta{Namespace: "alpaca", Name: "buy"}, "alpaca.buy"},
		{"name only", OpMeta{Name: "buy"}, "buy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.OpID(); got != tt.want {
				t.Errorf("OpID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTracer_SpanLifecycle(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer provider.Shutdown(context.Background())

	tracer := newTracer(provider.Tracer("test"))

	_, span := tracer.StartSpan(context.Background(), OpMeta{Namespace: "alpaca", Name: "buy"})
	tracer.EndSpan(span, nil)

	_, span = tracer.StartSpan(context.Background(), OpMeta{Name: "sell"})
	tracer.EndSpan(span, errors.New("order rejected"))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}

	if spans[0].Name() != "op.exec.alpaca.buy" {
		t.Errorf("span name = %q, want op.exec.alpaca.buy", spans[0].Name())
	}
	if spans[0].Status().Code != codes.Ok {
		t.Errorf("first span status = %v, want Ok", spans[0].Status().Code)
	}
	if spans[1].Status().Code != codes.Error {
		t.Errorf("second span status = %v, want Error", spans[1].Status().Code)
	}
}

func TestNoopTracer(t *testing.T) {
	tracer := newNoopTracer()

	ctx, span := tracer.StartSpan(context.Background(), OpMeta{Name: "buy"})
	if ctx == nil || span == nil {
		t.Fatal("noop tracer returned nil context or span")
	}
	tracer.EndSpan(span, nil)
}
