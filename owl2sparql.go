package owl2sparql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-owl2sparql/internal/convert"
	"github.com/nlstn/go-owl2sparql/internal/observability"
	"github.com/nlstn/go-owl2sparql/owl"
)

// Converter translates OWL class expressions into SPARQL 1.1 SELECT queries.
// A Converter is configured once and can be reused for any number of
// conversions; each conversion gets its own variable allocator, so queries
// never share fresh variables. Converters are safe for concurrent use.
type Converter struct {
	rootVariable         string
	universalViaDeMorgan bool
	namedIndividualsOnly bool
	templateEntities     []owl.Entity

	obs    *observability.Config
	logger *slog.Logger
}

// New creates a Converter with the given options. Without options the
// converter projects ?x, renders every entity as its IRI and encodes
// universal restrictions via De Morgan.
func New(opts ...Option) *Converter {
	c := &Converter{
		rootVariable:         "?x",
		universalViaDeMorgan: true,
	}

	var obsOpts []observability.Option
	for _, opt := range opts {
		opt(c, &obsOpts)
	}

	c.obs = observability.NewConfig(obsOpts...)
	// Initialize never fails; it only selects real or noop implementations.
	_ = c.obs.Initialize()
	return c
}

// Query is a compiled query: the SPARQL text plus the object properties
// encountered at each modal depth of the source expression.
type Query struct {
	// Text is the complete SPARQL query.
	Text string

	// Properties maps modal depth (1 = directly under the root) to the
	// object properties rendered at that depth, in encounter order.
	Properties map[int][]owl.ObjectProperty
}

// Compile converts the class expression and returns the query together with
// the per-depth property record.
func (c *Converter) Compile(ctx context.Context, ce owl.ClassExpression) (*Query, error) {
	result, err := c.run(ctx, ce, c.options(), observability.OpQuery)
	if err != nil {
		return nil, err
	}
	return &Query{Text: result.Query, Properties: result.Properties}, nil
}

// AsQuery converts the class expression into a SELECT DISTINCT query over
// the configured root variable.
func (c *Converter) AsQuery(ctx context.Context, ce owl.ClassExpression) (string, error) {
	result, err := c.run(ctx, ce, c.options(), observability.OpQuery)
	if err != nil {
		return "", err
	}
	return result.Query, nil
}

// AsCountQuery converts the class expression into a query projecting
// COUNT(DISTINCT root) instead of the matching individuals.
func (c *Converter) AsCountQuery(ctx context.Context, ce owl.ClassExpression) (string, error) {
	opts := c.options()
	opts.Count = true
	result, err := c.run(ctx, ce, opts, observability.OpCountQuery)
	if err != nil {
		return "", err
	}
	return result.Query, nil
}

// AsQueryWithValues converts the class expression into a query whose root
// variable is seeded with the given individuals through a VALUES block. Only
// members of the seed set can appear in the result.
func (c *Converter) AsQueryWithValues(ctx context.Context, ce owl.ClassExpression, values []owl.NamedIndividual) (string, error) {
	opts := c.options()
	opts.Values = values
	result, err := c.run(ctx, ce, opts, observability.OpQuery)
	if err != nil {
		return "", err
	}
	return result.Query, nil
}

// AsConfusionMatrixQuery builds a single query that scores the class
// expression against labeled examples: ?tp and ?fn over the positives, ?fp
// and ?tn over the negatives. The expression is compiled once and the same
// pattern is used for both sets.
func (c *Converter) AsConfusionMatrixQuery(ctx context.Context, ce owl.ClassExpression, positives, negatives []owl.NamedIndividual) (string, error) {
	start := time.Now()
	kind := expressionKind(ce)

	ctx, span, id := c.obs.Tracer().StartConfusionMatrix(ctx, kind, len(positives), len(negatives))
	defer span.End()

	result, err := convert.AsConfusionMatrixQuery(ce, positives, negatives, c.options())
	if err != nil {
		c.recordFailure(ctx, span, id, kind, err)
		return "", err
	}

	c.recordSuccess(ctx, span, id, kind, observability.OpConfusionMatrix, result.Query, start)
	return result.Query, nil
}

// options builds the per-conversion options from the converter
// configuration.
func (c *Converter) options() convert.Options {
	return convert.Options{
		RootVariable:         c.rootVariable,
		UniversalViaDeMorgan: c.universalViaDeMorgan,
		NamedIndividualsOnly: c.namedIndividualsOnly,
		TemplateEntities:     c.templateEntities,
	}
}

// run executes one instrumented conversion.
func (c *Converter) run(ctx context.Context, ce owl.ClassExpression, opts convert.Options, operation string) (convert.Result, error) {
	start := time.Now()
	kind := expressionKind(ce)

	ctx, span, id := c.obs.Tracer().StartConversion(ctx, kind, opts.RootVariable, opts.Count)
	defer span.End()

	result, err := convert.AsQuery(ce, opts)
	if err != nil {
		c.recordFailure(ctx, span, id, kind, err)
		return convert.Result{}, err
	}

	c.recordSuccess(ctx, span, id, kind, operation, result.Query, start)
	return result, nil
}

func (c *Converter) recordSuccess(ctx context.Context, span trace.Span, id, kind, operation, query string, start time.Time) {
	duration := time.Since(start)
	fragments := strings.Count(query, "\n") + 1

	c.obs.Tracer().SetResult(span, len(query), fragments)
	c.obs.Metrics().RecordConversion(ctx, kind, operation, duration)
	c.obs.Metrics().RecordQueryLength(ctx, operation, len(query))

	if c.logger != nil {
		observability.LoggerWithTrace(ctx, c.logger).DebugContext(ctx, "converted class expression",
			slog.String(observability.LogFieldConversionID, id),
			slog.String(observability.LogFieldExpressionKind, kind),
			slog.String(observability.LogFieldOperation, operation),
			slog.Int64(observability.LogFieldDuration, duration.Milliseconds()),
			slog.Int(observability.LogFieldQueryLength, len(query)),
		)
	}
}

func (c *Converter) recordFailure(ctx context.Context, span trace.Span, id, kind string, err error) {
	c.obs.Tracer().RecordError(span, err)
	c.obs.Metrics().RecordError(ctx, kind, errorKind(err))

	if c.logger != nil {
		observability.LoggerWithTrace(ctx, c.logger).ErrorContext(ctx, "conversion failed",
			slog.String(observability.LogFieldConversionID, id),
			slog.String(observability.LogFieldExpressionKind, kind),
			slog.String(observability.LogFieldError, err.Error()),
		)
	}
}

func expressionKind(ce owl.ClassExpression) string {
	if ce == nil {
		return "nil"
	}
	name := fmt.Sprintf("%T", ce)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// errorKind maps a conversion error to a low-cardinality metric label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrContractViolation):
		return "contract"
	case errors.Is(err, ErrUnsupportedExpression):
		return "unsupported"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed"
	default:
		return "internal"
	}
}
