package telemetry

import (
	"context"

	"go.trai.ch/iconic/internal/core/ports"
)

var _ ports.Tracer = (*NoopTracer)(nil)

// NoopTracer discards all spans. Useful in tests and for embedders that do
// not care about tracing.
type NoopTracer struct{}

// NewNoop creates a NoopTracer.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and an end function that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string, _ ...ports.Attr) (context.Context, func(error)) {
	return ctx, func(error) {}
}
