package convert

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlstn/go-owl2sparql/owl"
)

func assertGoldenQuery(t *testing.T, name string, ce owl.ClassExpression, opts Options) {
	t.Helper()

	result, err := AsQuery(ce, opts)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(result.Query))
}

func TestAsQueryGolden(t *testing.T) {
	t.Run("atomic class", func(t *testing.T) {
		assertGoldenQuery(t, "atomic_class", person, DefaultOptions())
	})

	t.Run("union", func(t *testing.T) {
		ce := &owl.ObjectUnionOf{Operands: []owl.ClassExpression{male, female}}
		assertGoldenQuery(t, "union_male_female", ce, DefaultOptions())
	})

	t.Run("existential intersection", func(t *testing.T) {
		ce := &owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
			&owl.ObjectSomeValuesFrom{Property: hasChild, Filler: male},
			teacher,
		}}
		assertGoldenQuery(t, "existential_intersection", ce, DefaultOptions())
	})

	t.Run("count", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Count = true
		assertGoldenQuery(t, "count_person", person, opts)
	})

	t.Run("universal de morgan", func(t *testing.T) {
		ce := &owl.ObjectAllValuesFrom{Property: hasChild, Filler: male}
		assertGoldenQuery(t, "universal_de_morgan", ce, DefaultOptions())
	})
}

func TestAsQueryValues(t *testing.T) {
	opts := DefaultOptions()
	opts.Values = []owl.NamedIndividual{anna, bob}

	result, err := AsQuery(person, opts)
	require.NoError(t, err)

	assert.Contains(t, result.Query, "VALUES ?x { ")
	assert.Contains(t, result.Query, "<http://example.com/society#anna>")
	assert.Contains(t, result.Query, "<http://example.com/society#bob>")
	// The seed block precedes the compiled pattern.
	assert.Less(t, strings.Index(result.Query, "VALUES"), strings.Index(result.Query, "#Person"))
}

func TestAsQueryCustomRootVariable(t *testing.T) {
	opts := DefaultOptions()
	opts.RootVariable = "?subject"

	result, err := AsQuery(person, opts)
	require.NoError(t, err)

	assert.Contains(t, result.Query, " DISTINCT ?subject WHERE { ")
	assert.Contains(t, result.Query, "?subject a <http://example.com/society#Person> . ")
}

func TestAsQueryCountProjection(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = true

	result, err := AsQuery(person, opts)
	require.NoError(t, err)

	assert.Contains(t, result.Query, " ( COUNT ( DISTINCT ?x ) AS ?cnt ) WHERE { ")
	assert.NotContains(t, result.Query, "DISTINCT ?x WHERE")
}

func TestAsConfusionMatrixQuery(t *testing.T) {
	carl := owl.NamedIndividual{IRI: owl.IRI(ns + "carl")}

	t.Run("golden", func(t *testing.T) {
		result, err := AsConfusionMatrixQuery(person, []owl.NamedIndividual{anna, bob}, []owl.NamedIndividual{carl}, DefaultOptions())
		require.NoError(t, err)

		g := goldie.New(t,
			goldie.WithFixtureDir("testdata/golden"),
			goldie.WithNameSuffix(".golden"),
		)
		g.Assert(t, "confusion_matrix_person", []byte(result.Query))
	})

	t.Run("pattern is compiled once", func(t *testing.T) {
		ce := &owl.ObjectSomeValuesFrom{Property: hasChild, Filler: male}
		result, err := AsConfusionMatrixQuery(ce, []owl.NamedIndividual{anna}, []owl.NamedIndividual{carl}, DefaultOptions())
		require.NoError(t, err)

		// The identical pattern text appears in both branches: fresh
		// variables must not be renumbered between them.
		assert.Equal(t, 2, strings.Count(result.Query, "?x <http://example.com/society#hasChild> ?s_1 . "))
		assert.NotContains(t, result.Query, "?s_2")
	})

	t.Run("miss counts are complements", func(t *testing.T) {
		result, err := AsConfusionMatrixQuery(person, []owl.NamedIndividual{anna, bob}, []owl.NamedIndividual{carl}, DefaultOptions())
		require.NoError(t, err)

		assert.Contains(t, result.Query, "( ( 2 - COUNT ( DISTINCT ?x ) ) AS ?fn )")
		assert.Contains(t, result.Query, "( ( 1 - COUNT ( DISTINCT ?x ) ) AS ?tn )")
	})

	t.Run("empty example sets are rejected", func(t *testing.T) {
		_, err := AsConfusionMatrixQuery(person, nil, []owl.NamedIndividual{carl}, DefaultOptions())
		assert.ErrorIs(t, err, ErrContractViolation)

		_, err = AsConfusionMatrixQuery(person, []owl.NamedIndividual{anna}, nil, DefaultOptions())
		assert.ErrorIs(t, err, ErrContractViolation)
	})
}

func TestAsQueryOutputAlwaysParses(t *testing.T) {
	// Every constructor in one expression; grammar validation runs inside
	// AsQuery, so NoError means the output parsed.
	ce := &owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{
		person,
		&owl.ObjectUnionOf{Operands: []owl.ClassExpression{male, female}},
		&owl.ObjectComplementOf{Operand: teacher},
		&owl.ObjectSomeValuesFrom{Property: hasChild, Filler: person},
		&owl.ObjectAllValuesFrom{Property: hasChild, Filler: person},
		&owl.ObjectHasValue{Property: knows, Value: anna},
		&owl.ObjectHasSelf{Property: knows},
		owl.ObjectMaxCardinality(3, hasChild, person),
		&owl.DataSomeValuesFrom{Property: age, Filler: owl.Datatype{IRI: owl.XSDInteger}},
		&owl.DataHasValue{Property: age, Value: owl.IntegerLiteral(42)},
		owl.DataMinCardinality(1, age, owl.TopDatatype()),
	}}

	for _, deMorgan := range []bool{true, false} {
		opts := DefaultOptions()
		opts.UniversalViaDeMorgan = deMorgan
		_, err := AsQuery(ce, opts)
		assert.NoError(t, err)
	}
}
