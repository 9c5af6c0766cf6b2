package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/marketops/tradegate/gate"
)

// counterValue extracts the summed value of an int64 counter by name.
func counterValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s is not an int64 sum", name)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestMetrics_RecordExecution(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	metrics, err := newMetrics(provider.Meter("test"))
	if err != nil {
		t.Fatalf("newMetrics() error = %v", err)
	}

	ctx := context.Background()
	meta := OpMeta{Namespace: "alpaca", Name: "buy"}

	metrics.RecordExecution(ctx, meta, 5*time.Millisecond, nil)
	metrics.RecordExecution(ctx, meta, 5*time.Millisecond, errors.New("order rejected"))
	metrics.RecordExecution(ctx, meta, time.Millisecond, gate.ErrUnauthorized)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if got := counterValue(t, rm, "op.exec.total"); got != 3 {
		t.Errorf("op.exec.total = %d, want 3", got)
	}
	if got := counterValue(t, rm, "op.exec.errors"); got != 1 {
		t.Errorf("op.exec.errors = %d, want 1", got)
	}
	if got := counterValue(t, rm, "op.exec.denied"); got != 1 {
		t.Errorf("op.exec.denied = %d, want 1", got)
	}
}

func TestNoopMetrics_DoesNotPanic(t *testing.T) {
	var m noopMetrics
	m.RecordExecution(context.Background(), OpMeta{Name: "buy"}, time.Millisecond, nil)
	m.RecordExecution(context.Background(), OpMeta{Name: "buy"}, time.Millisecond, gate.ErrUnauthorized)
}
