// Package observability provides OpenTelemetry-based instrumentation for the
// class-expression conversion pipeline.
//
// It supports distributed tracing, metrics collection, and enhanced structured
// logging.
//
// All observability features are opt-in. When not configured, no-op
// implementations are used with zero performance overhead.
package observability

import "go.opentelemetry.io/otel/attribute"

// Instrumentation identity constants
const (
	// TracerName is the instrumentation name for tracing.
	TracerName = "github.com/nlstn/go-owl2sparql"
	// MeterName is the instrumentation name for metrics.
	MeterName = "github.com/nlstn/go-owl2sparql"
)

// Semantic attribute keys following OpenTelemetry conventions.
const (
	// Conversion attributes
	AttrConversionID   = "owl2sparql.conversion_id"
	AttrExpressionKind = "owl2sparql.expression_kind"
	AttrRootVariable   = "owl2sparql.root_variable"
	AttrOperation      = "owl2sparql.operation"
	AttrCountQuery     = "owl2sparql.count_query"
	AttrValuesCount    = "owl2sparql.values_count"

	// Result attributes
	AttrQueryLength   = "owl2sparql.query.length"
	AttrFragmentCount = "owl2sparql.query.fragment_count"
	AttrVariableCount = "owl2sparql.query.variable_count"

	// Confusion matrix attributes
	AttrPositiveCount = "owl2sparql.positives"
	AttrNegativeCount = "owl2sparql.negatives"

	// Error attributes
	AttrErrorKind = "owl2sparql.error.kind"
)

// Operation types for the owl2sparql.operation attribute.
const (
	OpQuery           = "query"
	OpCountQuery      = "count_query"
	OpConfusionMatrix = "confusion_matrix"
)

// Log field keys for structured logging with trace context.
const (
	LogFieldConversionID   = "conversion_id"
	LogFieldExpressionKind = "expression_kind"
	LogFieldOperation      = "operation"
	LogFieldTraceID        = "trace_id"
	LogFieldSpanID         = "span_id"
	LogFieldDuration       = "duration_ms"
	LogFieldQueryLength    = "query_length"
	LogFieldError          = "error"
)

// ConversionIDAttr creates an attribute for the conversion identifier.
func ConversionIDAttr(id string) attribute.KeyValue {
	return attribute.String(AttrConversionID, id)
}

// ExpressionKindAttr creates an attribute for the root expression kind.
func ExpressionKindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrExpressionKind, kind)
}

// RootVariableAttr creates an attribute for the projection variable.
func RootVariableAttr(v string) attribute.KeyValue {
	return attribute.String(AttrRootVariable, v)
}

// OperationAttr creates an attribute for the operation type.
func OperationAttr(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// QueryLengthAttr creates an attribute for the rendered query length.
func QueryLengthAttr(length int) attribute.KeyValue {
	return attribute.Int(AttrQueryLength, length)
}

// FragmentCountAttr creates an attribute for the emitted fragment count.
func FragmentCountAttr(count int) attribute.KeyValue {
	return attribute.Int(AttrFragmentCount, count)
}

// ErrorKindAttr creates an attribute for the error kind.
func ErrorKindAttr(kind string) attribute.KeyValue {
	return attribute.String(AttrErrorKind, kind)
}
