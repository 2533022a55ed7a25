package observability

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OpenTelemetry tracer with conversion-specific span
// creation methods.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new Tracer using the given TracerProvider.
func NewTracer(tp trace.TracerProvider) *Tracer {
	return &Tracer{
		tracer: tp.Tracer(TracerName),
	}
}

// StartSpan starts a new span with the given name and attributes.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartConversion starts a span for converting a class expression into a
// SELECT query. Every conversion gets a unique identifier so that log lines
// and span attributes can be correlated.
func (t *Tracer) StartConversion(ctx context.Context, expressionKind, rootVariable string, count bool) (context.Context, trace.Span, string) {
	id := uuid.NewString()
	op := OpQuery
	if count {
		op = OpCountQuery
	}
	ctx, span := t.tracer.Start(ctx, "owl2sparql.convert", trace.WithAttributes(
		ConversionIDAttr(id),
		ExpressionKindAttr(expressionKind),
		RootVariableAttr(rootVariable),
		OperationAttr(op),
		attribute.Bool(AttrCountQuery, count),
	))
	return ctx, span, id
}

// StartConfusionMatrix starts a span for building a confusion matrix query.
func (t *Tracer) StartConfusionMatrix(ctx context.Context, expressionKind string, positives, negatives int) (context.Context, trace.Span, string) {
	id := uuid.NewString()
	ctx, span := t.tracer.Start(ctx, "owl2sparql.confusion_matrix", trace.WithAttributes(
		ConversionIDAttr(id),
		ExpressionKindAttr(expressionKind),
		OperationAttr(OpConfusionMatrix),
		attribute.Int(AttrPositiveCount, positives),
		attribute.Int(AttrNegativeCount, negatives),
	))
	return ctx, span, id
}

// SetResult sets result attributes on a conversion span.
func (t *Tracer) SetResult(span trace.Span, queryLength, fragmentCount int) {
	span.SetAttributes(
		QueryLengthAttr(queryLength),
		FragmentCountAttr(fragmentCount),
	)
}

// RecordError records an error on the span.
func (t *Tracer) RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// LoggerWithTrace returns a logger enriched with trace context.
func LoggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return logger
	}
	return logger.With(
		slog.String(LogFieldTraceID, span.SpanContext().TraceID().String()),
		slog.String(LogFieldSpanID, span.SpanContext().SpanID().String()),
	)
}
