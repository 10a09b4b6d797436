package observability

// Package observability provides structured logging, Prometheus metrics,
// and OpenTelemetry tracing for echotool.
//
// Key features:
// - Structured JSON logging with configurable log levels and UTC timestamps
// - Prometheus metrics for every inbound HTTP request
// - Optional OTLP trace export, enabled by OTEL_EXPORTER_OTLP_ENDPOINT
// - HTTP middleware wiring both signals around every handler
