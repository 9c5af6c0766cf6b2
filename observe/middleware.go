package observe

import (
	"context"
	"errors"
	"time"

	"github.com/marketops/tradegate/gate"
)

// ExecuteFunc is the signature for guarded operation execution with
// telemetry metadata. This is the standard function signature that
// Middleware wraps.
type ExecuteFunc func(ctx context.Context, op OpMeta, args map[string]any) (any, error)

// Bind lifts a gate.ExecuteFunc (which carries no metadata) into an
// ExecuteFunc so it can be wrapped by Middleware.
func Bind(fn gate.ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, _ OpMeta, args map[string]any) (any, error) {
		return fn(ctx, args)
	}
}

// Middleware wraps guarded operation execution with observability
// (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ExecuteFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated
//     unchanged; denials (gate.ErrUnauthorized) are recorded as admission
//     decisions, not operation failures. A call with an empty operation
//     name fails with ErrMissingOpName before the function runs.
//   - Ownership: Arguments and results pass through without modification,
//     and argument values are never logged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an ExecuteFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, op OpMeta, args map[string]any) (any, error) {
		if op.Name == "" {
			return nil, ErrMissingOpName
		}

		// Start span
		ctx, span := m.tracer.StartSpan(ctx, op)

		// Record start time
		start := time.Now()

		// Execute the function
		result, err := fn(ctx, op, args)

		// Calculate duration
		duration := time.Since(start)

		// End span (records error status if err != nil)
		m.tracer.EndSpan(span, err)

		// Record metrics
		m.metrics.RecordExecution(ctx, op, duration, err)

		// Log the execution
		opLogger := m.logger.WithOp(op)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		switch {
		case errors.Is(err, gate.ErrUnauthorized):
			opLogger.Warn(ctx, "operation denied by credential gate", fields...)
		case err != nil:
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			opLogger.Error(ctx, "operation execution failed", fields...)
		default:
			opLogger.Info(ctx, "operation execution completed", fields...)
		}

		return result, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
