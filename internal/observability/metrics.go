package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the conversion-specific metric instruments.
type Metrics struct {
	conversionDuration metric.Float64Histogram
	conversionCount    metric.Int64Counter
	queryLength        metric.Int64Histogram
	errorCount         metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Note: errors from meter instrument creation are unlikely in practice
	// and would only occur with invalid parameters. We use explicit checks
	// to satisfy the linter while continuing with partial metrics on error.
	var err error

	m.conversionDuration, err = meter.Float64Histogram(
		"owl2sparql.conversion.duration",
		metric.WithDescription("Duration of class expression conversions in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.conversionDuration, _ = meter.Float64Histogram("owl2sparql.conversion.duration")
	}

	m.conversionCount, err = meter.Int64Counter(
		"owl2sparql.conversion.count",
		metric.WithDescription("Total number of class expression conversions"),
		metric.WithUnit("{conversion}"),
	)
	if err != nil {
		m.conversionCount, _ = meter.Int64Counter("owl2sparql.conversion.count")
	}

	m.queryLength, err = meter.Int64Histogram(
		"owl2sparql.query.length",
		metric.WithDescription("Length of rendered SPARQL queries in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		m.queryLength, _ = meter.Int64Histogram("owl2sparql.query.length")
	}

	m.errorCount, err = meter.Int64Counter(
		"owl2sparql.error.count",
		metric.WithDescription("Total number of failed conversions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("owl2sparql.error.count")
	}

	return m
}

// RecordConversion records metrics for a completed conversion.
func (m *Metrics) RecordConversion(ctx context.Context, expressionKind, operation string, duration time.Duration) {
	attrs := metric.WithAttributes(
		ExpressionKindAttr(expressionKind),
		OperationAttr(operation),
	)
	m.conversionDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	m.conversionCount.Add(ctx, 1, attrs)
}

// RecordQueryLength records the length of a rendered query.
func (m *Metrics) RecordQueryLength(ctx context.Context, operation string, length int) {
	attrs := metric.WithAttributes(OperationAttr(operation))
	m.queryLength.Record(ctx, int64(length), attrs)
}

// RecordError records a failed conversion.
func (m *Metrics) RecordError(ctx context.Context, expressionKind, errorKind string) {
	attrs := metric.WithAttributes(
		ExpressionKindAttr(expressionKind),
		ErrorKindAttr(errorKind),
	)
	m.errorCount.Add(ctx, 1, attrs)
}
