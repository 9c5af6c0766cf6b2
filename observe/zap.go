package observe

import (
	"context"

	"go.uber.org/zap"
)

// zapLogger adapts a zap.Logger to the Logger interface for deployments
// that standardize on zap. Redaction rules match the structured logger.
type zapLogger struct {
	base *zap.Logger
}

// NewZapLogger wraps an existing zap logger. A nil logger falls back to
// zap.NewNop().
func NewZapLogger(base *zap.Logger) Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &zapLogger{base: base}
}

// WithOp returns a logger with operation context attached.
func (l *zapLogger) WithOp(meta OpMeta) Logger {
	fields := []zap.Field{
		zap.String("op.id", meta.OpID()),
		zap.String("op.name", meta.Name),
	}
	if meta.Namespace != "" {
		fields = append(fields, zap.String("op.namespace", meta.Namespace))
	}
	if meta.Version != "" {
		fields = append(fields, zap.String("op.version", meta.Version))
	}
	return &zapLogger{base: l.base.With(fields...)}
}

func (l *zapLogger) Info(_ context.Context, msg string, fields ...Field) {
	l.base.Info(msg, toZapFields(fields)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, fields ...Field) {
	l.base.Warn(msg, toZapFields(fields)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, fields ...Field) {
	l.base.Error(msg, toZapFields(fields)...)
}

func (l *zapLogger) Debug(_ context.Context, msg string, fields ...Field) {
	l.base.Debug(msg, toZapFields(fields)...)
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if isRedactedField(f.Key) {
			out = append(out, zap.String(f.Key, "[REDACTED]"))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

// Ensure zapLogger implements Logger
var _ Logger = (*zapLogger)(nil)
