package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies this module's spans within whatever TracerProvider
// the host process has installed.
const tracerName = "github.com/katalvlaran/slither"

// StartSpan starts a span named name under ctx using the process-wide
// TracerProvider, returning the derived context and the span to End. With
// no provider installed, the spans are no-ops.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

// SetTracerProvider installs tp as the process-wide TracerProvider used by
// every subsequent StartSpan call.
func SetTracerProvider(tp trace.TracerProvider) {
	otel.SetTracerProvider(tp)
}
