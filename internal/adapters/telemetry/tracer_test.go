package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/iconic/internal/adapters/telemetry"
	"go.trai.ch/iconic/internal/core/ports"
)

func TestOTelTracer_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	shutdown := telemetry.Install(sdktrace.WithSpanProcessor(recorder))
	defer func() { _ = shutdown(t.Context()) }()

	tracer := telemetry.NewTracer()

	_, end := tracer.Start(t.Context(), "index.build", ports.String("theme", "hicolor"))
	end(nil)

	_, endErr := tracer.Start(t.Context(), "resolver.lookup")
	endErr(errors.New("boom"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "index.build", spans[0].Name())
	assert.Equal(t, "resolver.lookup", spans[1].Name())
	assert.NotEmpty(t, spans[1].Events(), "error must be recorded on the span")
}

func TestNoopTracer(t *testing.T) {
	tracer := telemetry.NewNoop()

	ctx, end := tracer.Start(t.Context(), "anything")
	assert.Equal(t, t.Context(), ctx)
	end(nil)
}
