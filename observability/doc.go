// Package observability initializes OpenTelemetry tracing and provides
// span helpers used across the auth subsystem.
//
// Tracing is opt-in: until InitTracer runs, the global provider is the
// OpenTelemetry no-op and StartSpan is free.
package observability
