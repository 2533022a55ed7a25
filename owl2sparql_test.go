package owl2sparql

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/nlstn/go-owl2sparql/owl"
)

const family = "http://example.com/family#"

var (
	personCls   = owl.Class{IRI: owl.IRI(family + "Person")}
	maleCls     = owl.Class{IRI: owl.IRI(family + "Male")}
	hasChildOP  = owl.ObjectProperty{IRI: owl.IRI(family + "hasChild")}
	annaInd     = owl.NamedIndividual{IRI: owl.IRI(family + "anna")}
	heinzInd    = owl.NamedIndividual{IRI: owl.IRI(family + "heinz")}
	michelleInd = owl.NamedIndividual{IRI: owl.IRI(family + "michelle")}
)

func TestAsQuery(t *testing.T) {
	conv := New()

	query, err := conv.AsQuery(context.Background(), personCls)
	require.NoError(t, err)

	assert.Contains(t, query, " DISTINCT ?x WHERE { ")
	assert.Contains(t, query, "?x a <http://example.com/family#Person> . ")
}

func TestAsQueryIsDeterministic(t *testing.T) {
	conv := New()
	ce := &owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
		&owl.ObjectSomeValuesFrom{Property: hasChildOP, Filler: maleCls},
		&owl.ObjectComplementOf{Operand: personCls},
	}}

	first, err := conv.AsQuery(context.Background(), ce)
	require.NoError(t, err)
	second, err := conv.AsQuery(context.Background(), ce)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAsCountQuery(t *testing.T) {
	conv := New()

	query, err := conv.AsCountQuery(context.Background(), personCls)
	require.NoError(t, err)

	assert.Contains(t, query, " ( COUNT ( DISTINCT ?x ) AS ?cnt ) WHERE { ")
}

func TestAsQueryWithValues(t *testing.T) {
	conv := New()

	query, err := conv.AsQueryWithValues(context.Background(), personCls, []owl.NamedIndividual{annaInd, heinzInd})
	require.NoError(t, err)

	assert.Contains(t, query, "VALUES ?x { ")
	assert.Contains(t, query, "<http://example.com/family#anna>")
	assert.Contains(t, query, "<http://example.com/family#heinz>")
}

func TestAsConfusionMatrixQuery(t *testing.T) {
	conv := New()
	ce := &owl.ObjectSomeValuesFrom{Property: hasChildOP, Filler: maleCls}

	query, err := conv.AsConfusionMatrixQuery(context.Background(),
		ce,
		[]owl.NamedIndividual{annaInd, heinzInd},
		[]owl.NamedIndividual{michelleInd},
	)
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT ?tp ?fn ?fp ?tn WHERE {")
	assert.Contains(t, query, "( COUNT ( DISTINCT ?x ) AS ?tp )")
	assert.Contains(t, query, "( ( 2 - COUNT ( DISTINCT ?x ) ) AS ?fn )")
	assert.Contains(t, query, "( COUNT ( DISTINCT ?x ) AS ?fp )")
	assert.Contains(t, query, "( ( 1 - COUNT ( DISTINCT ?x ) ) AS ?tn )")
}

func TestCompileRecordsProperties(t *testing.T) {
	conv := New()
	ce := &owl.ObjectSomeValuesFrom{Property: hasChildOP, Filler: personCls}

	q, err := conv.Compile(context.Background(), ce)
	require.NoError(t, err)

	assert.NotEmpty(t, q.Text)
	require.Contains(t, q.Properties, 1)
	assert.Equal(t, []owl.ObjectProperty{hasChildOP}, q.Properties[1])
}

func TestWithRootVariable(t *testing.T) {
	conv := New(WithRootVariable("?ind"))

	query, err := conv.AsQuery(context.Background(), personCls)
	require.NoError(t, err)

	assert.Contains(t, query, " DISTINCT ?ind WHERE { ")
	assert.Contains(t, query, "?ind a <http://example.com/family#Person> . ")
}

func TestWithCountingUniversal(t *testing.T) {
	ce := &owl.ObjectAllValuesFrom{Property: hasChildOP, Filler: maleCls}

	deMorgan, err := New().AsQuery(context.Background(), ce)
	require.NoError(t, err)
	counting, err := New(WithCountingUniversal()).AsQuery(context.Background(), ce)
	require.NoError(t, err)

	assert.NotContains(t, deMorgan, "COUNT")
	assert.Contains(t, counting, "COUNT( DISTINCT")
}

func TestWithNamedIndividualsOnly(t *testing.T) {
	conv := New(WithNamedIndividualsOnly())

	query, err := conv.AsQuery(context.Background(), &owl.ObjectComplementOf{Operand: personCls})
	require.NoError(t, err)

	assert.Contains(t, query, "?x a <http://www.w3.org/2002/07/owl#NamedIndividual> . ")
}

func TestWithTemplateEntities(t *testing.T) {
	conv := New(WithTemplateEntities(personCls))

	query, err := conv.AsQuery(context.Background(), personCls)
	require.NoError(t, err)

	assert.Contains(t, query, "?x a ?cls_1 . ")
	assert.NotContains(t, query, "#Person")
}

func TestWithObservabilityProviders(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	conv := New(
		WithTracerProvider(tracenoop.NewTracerProvider()),
		WithMeterProvider(noop.NewMeterProvider()),
		WithLogger(logger),
	)

	query, err := conv.AsQuery(context.Background(), personCls)
	require.NoError(t, err)
	assert.NotEmpty(t, query)

	_, err = conv.AsQuery(context.Background(), nil)
	assert.Error(t, err)
}

func TestConverterIsReusable(t *testing.T) {
	conv := New()

	first, err := conv.AsQuery(context.Background(), &owl.ObjectSomeValuesFrom{Property: hasChildOP, Filler: maleCls})
	require.NoError(t, err)
	second, err := conv.AsQuery(context.Background(), &owl.ObjectSomeValuesFrom{Property: hasChildOP, Filler: maleCls})
	require.NoError(t, err)

	// Fresh variables restart per conversion instead of accumulating.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, strings.Count(second, "?s_1 a"))
}

func TestToSPARQL(t *testing.T) {
	query, err := ToSPARQL(personCls, WithRootVariable("?ind"))
	require.NoError(t, err)
	assert.Contains(t, query, "?ind a <http://example.com/family#Person> . ")
}

func TestToConfusionMatrixSPARQL(t *testing.T) {
	query, err := ToConfusionMatrixSPARQL(personCls,
		[]owl.NamedIndividual{annaInd},
		[]owl.NamedIndividual{michelleInd},
	)
	require.NoError(t, err)
	assert.Contains(t, query, "SELECT ?tp ?fn ?fp ?tn WHERE {")
}

func TestSentinelErrors(t *testing.T) {
	conv := New()
	ctx := context.Background()

	t.Run("contract violation", func(t *testing.T) {
		_, err := conv.AsQuery(ctx, nil)
		assert.ErrorIs(t, err, ErrContractViolation)
	})

	t.Run("unsupported expression", func(t *testing.T) {
		ce := &owl.DataSomeValuesFrom{
			Property: owl.DataProperty{IRI: owl.IRI(family + "name")},
			Filler: &owl.DatatypeRestriction{
				Datatype:     owl.Datatype{IRI: owl.XSDString},
				Restrictions: []owl.FacetRestriction{{Facet: owl.FacetMinLength, Value: owl.IntegerLiteral(3)}},
			},
		}
		_, err := conv.AsQuery(ctx, ce)
		assert.ErrorIs(t, err, ErrUnsupportedExpression)

		var cerr *ConversionError
		assert.ErrorAs(t, err, &cerr)
	})

	t.Run("confusion matrix needs examples", func(t *testing.T) {
		_, err := conv.AsConfusionMatrixQuery(ctx, personCls, nil, nil)
		assert.ErrorIs(t, err, ErrContractViolation)
	})
}
