// Package telemetry wraps the process-wide OpenTelemetry tracer used to
// bracket a solve invocation from cmd/slither.
//
// StartSpan is safe to call with no TracerProvider installed: it falls back
// to OpenTelemetry's own no-op provider, so the solver core stays usable
// with zero tracing overhead and no exporter configured. Callers that want
// real spans install a provider once via SetTracerProvider during startup.
package telemetry
