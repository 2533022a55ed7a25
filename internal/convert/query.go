package convert

import (
	"fmt"
	"strings"

	"github.com/nlstn/go-owl2sparql/internal/sparql"
	"github.com/nlstn/go-owl2sparql/owl"
)

// Options configure one conversion.
type Options struct {
	// RootVariable is the projected variable, e.g. "?x".
	RootVariable string

	// Count replaces the projection with COUNT(DISTINCT root).
	Count bool

	// Values seeds the root variable with a fixed set of individuals.
	Values []owl.NamedIndividual

	// UniversalViaDeMorgan selects the ¬∃r.¬C encoding for object universal
	// restrictions; otherwise the counting encoding is used.
	UniversalViaDeMorgan bool

	// NamedIndividualsOnly restricts binder triples to instances of
	// owl:NamedIndividual instead of arbitrary unbound triples.
	NamedIndividualsOnly bool

	// TemplateEntities are rendered as stable variables instead of IRIs,
	// producing a parametrized query.
	TemplateEntities []owl.Entity
}

// DefaultOptions returns the conversion defaults: root ?x, De Morgan
// universals, IRI rendering for all entities.
func DefaultOptions() Options {
	return Options{RootVariable: "?x", UniversalViaDeMorgan: true}
}

// Result is a compiled query plus the per-depth object-property record
// collected during rendering.
type Result struct {
	Query      string
	Properties map[int][]owl.ObjectProperty
}

// AsQuery compiles the class expression into a complete SELECT query,
// validates it against the SPARQL grammar and returns the query text.
func AsQuery(ce owl.ClassExpression, opts Options) (Result, error) {
	if err := validateRootVariable(opts.RootVariable); err != nil {
		return Result{}, err
	}
	if err := validateExpression(ce); err != nil {
		return Result{}, err
	}

	cc := newConversionContext(opts)
	fragments, err := cc.convert(opts.RootVariable, ce)
	if err != nil {
		return Result{}, err
	}

	qs := make([]string, 0, len(fragments)+8)
	qs = append(qs, "SELECT")
	if opts.Count {
		qs = append(qs, fmt.Sprintf(" ( COUNT ( DISTINCT %s ) AS ?cnt ) WHERE { ", opts.RootVariable))
	} else {
		qs = append(qs, fmt.Sprintf(" DISTINCT %s WHERE { ", opts.RootVariable))
	}
	if len(opts.Values) > 0 {
		qs = append(qs, valuesBlock(opts.RootVariable, opts.Values)...)
	}
	qs = append(qs, fragments...)
	qs = append(qs, " }")

	query := strings.Join(qs, "\n")
	if err := sparql.Validate(query); err != nil {
		return Result{}, &ConversionError{Sentinel: ErrMalformedOutput, Node: ce, Message: err.Error()}
	}
	return Result{Query: query, Properties: cc.properties}, nil
}

// AsConfusionMatrixQuery compiles the class expression once and builds a
// query computing tp, fn, fp and tn against the labeled example sets. Both
// nested SELECT blocks reuse the identical compiled pattern text: compiling
// twice could renumber fresh variables and silently diverge.
func AsConfusionMatrixQuery(ce owl.ClassExpression, positives, negatives []owl.NamedIndividual, opts Options) (Result, error) {
	if err := validateRootVariable(opts.RootVariable); err != nil {
		return Result{}, err
	}
	if err := validateExpression(ce); err != nil {
		return Result{}, err
	}
	if len(positives) == 0 || len(negatives) == 0 {
		return Result{}, contractf(ce, "confusion matrix needs non-empty positive and negative example sets")
	}

	cc := newConversionContext(opts)
	fragments, err := cc.convert(opts.RootVariable, ce)
	if err != nil {
		return Result{}, err
	}
	pattern := strings.Join(fragments, "\n")
	root := opts.RootVariable

	var qs []string
	qs = append(qs, "SELECT ?tp ?fn ?fp ?tn WHERE {")
	qs = append(qs, confusionBranch(root, "?tp", "?fn", positives, pattern)...)
	qs = append(qs, confusionBranch(root, "?fp", "?tn", negatives, pattern)...)
	qs = append(qs, " }")

	query := strings.Join(qs, "\n")
	if err := sparql.Validate(query); err != nil {
		return Result{}, &ConversionError{Sentinel: ErrMalformedOutput, Node: ce, Message: err.Error()}
	}
	return Result{Query: query, Properties: cc.properties}, nil
}

// confusionBranch builds one nested SELECT over a labeled example set. The
// hit count is projected directly; the miss count is the set size minus the
// same aggregate, so hit+miss always equals the set size.
func confusionBranch(root, hitVar, missVar string, examples []owl.NamedIndividual, pattern string) []string {
	qs := []string{fmt.Sprintf("{ SELECT ( COUNT ( DISTINCT %s ) AS %s ) ( ( %d - COUNT ( DISTINCT %s ) ) AS %s ) WHERE { ",
		root, hitVar, len(examples), root, missVar)}
	qs = append(qs, valuesBlock(root, examples)...)
	qs = append(qs, pattern)
	qs = append(qs, " } }")
	return qs
}

func valuesBlock(root string, values []owl.NamedIndividual) []string {
	qs := []string{fmt.Sprintf("VALUES %s { ", root)}
	for _, v := range values {
		qs = append(qs, fmt.Sprintf("<%s>", v.IRI))
	}
	qs = append(qs, "} . ")
	return qs
}
