// Package telemetry implements span tracing for the expensive resolution
// steps on top of OpenTelemetry.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/iconic/internal/core/ports"
)

const tracerName = "go.trai.ch/iconic"

var _ ports.Tracer = (*OTelTracer)(nil)

// OTelTracer implements ports.Tracer on the global OpenTelemetry tracer
// provider.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewTracer creates a tracer bound to the global provider. Without an
// installed SDK the global provider is a no-op, so the zero-configuration
// path stays free.
func NewTracer() *OTelTracer {
	return &OTelTracer{tracer: otel.Tracer(tracerName)}
}

// Start opens a span. The returned function ends it and records the
// operation outcome.
func (t *OTelTracer) Start(ctx context.Context, name string, attrs ...ports.Attr) (context.Context, func(error)) {
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		kv = append(kv, attribute.String(a.Key, a.Value))
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(kv...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// Install sets up an SDK tracer provider as the global provider and returns
// a shutdown function. Exporters are attached by the caller via opts; with
// none, spans are created but go nowhere, which keeps span timing visible
// to anything sampling in-process.
func Install(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	return provider.Shutdown
}
