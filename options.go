package owl2sparql

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/nlstn/go-owl2sparql/internal/observability"
	"github.com/nlstn/go-owl2sparql/owl"
)

// Option configures a Converter.
type Option func(*Converter, *[]observability.Option)

// WithRootVariable sets the projected variable. The default is ?x.
func WithRootVariable(v string) Option {
	return func(c *Converter, _ *[]observability.Option) {
		c.rootVariable = v
	}
}

// WithCountingUniversal switches universal restrictions from the De Morgan
// encoding to the successor-counting encoding.
func WithCountingUniversal() Option {
	return func(c *Converter, _ *[]observability.Option) {
		c.universalViaDeMorgan = false
	}
}

// WithNamedIndividualsOnly makes binder triples require instances of
// owl:NamedIndividual. Without it a binder matches any term with at least
// one outgoing triple.
func WithNamedIndividualsOnly() Option {
	return func(c *Converter, _ *[]observability.Option) {
		c.namedIndividualsOnly = true
	}
}

// WithTemplateEntities renders the given entities as stable variables
// instead of IRIs, producing a query that can be parametrized per entity.
func WithTemplateEntities(entities ...owl.Entity) Option {
	return func(c *Converter, _ *[]observability.Option) {
		c.templateEntities = append(c.templateEntities, entities...)
	}
}

// WithLogger enables structured logging of conversions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter, obsOpts *[]observability.Option) {
		c.logger = logger
		*obsOpts = append(*obsOpts, observability.WithLogger(logger))
	}
}

// WithTracerProvider enables tracing through the given OpenTelemetry
// provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(_ *Converter, obsOpts *[]observability.Option) {
		*obsOpts = append(*obsOpts, observability.WithTracerProvider(tp))
	}
}

// WithMeterProvider enables metrics collection through the given
// OpenTelemetry provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(_ *Converter, obsOpts *[]observability.Option) {
		*obsOpts = append(*obsOpts, observability.WithMeterProvider(mp))
	}
}
