package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: tracenoop.NewTracerProvider().Tracer(""),
	}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	// Note: noop meter never returns errors, but we must check them to satisfy the linter.
	m.conversionDuration, _ = meter.Float64Histogram("owl2sparql.conversion.duration") //nolint:errcheck
	m.conversionCount, _ = meter.Int64Counter("owl2sparql.conversion.count")           //nolint:errcheck
	m.queryLength, _ = meter.Int64Histogram("owl2sparql.query.length")                 //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("owl2sparql.error.count")                     //nolint:errcheck

	return m
}
