package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceFields извлекает trace_id/span_id активного span как пары
// ключ-значение для leveled-вызовов
func TraceFields(ctx context.Context) []any {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()

	if !sc.IsValid() {
		return nil
	}

	return []any{
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	}
}
