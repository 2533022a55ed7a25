// Package owl2sparql translates OWL 2 class expressions into SPARQL 1.1
// SELECT queries. A class expression describes a set of individuals; the
// generated query retrieves exactly the individuals an RDF store can prove
// to be members of that set.
//
// A minimal conversion:
//
//	conv := owl2sparql.New()
//	parent := &owl.ObjectSomeValuesFrom{
//		Property: owl.ObjectProperty{IRI: "http://example.com/family#hasChild"},
//		Filler:   owl.Class{IRI: "http://example.com/family#Person"},
//	}
//	query, err := conv.AsQuery(ctx, parent)
//
// produces a query of the shape
//
//	SELECT DISTINCT ?x WHERE {
//	  ?x <http://example.com/family#hasChild> ?s_1 .
//	  ?s_1 a <http://example.com/family#Person> .
//	}
//
// Negation, universal restrictions and cardinality restrictions compile to
// FILTER NOT EXISTS blocks and counting subqueries; see the Converter
// options for the available encodings. AsConfusionMatrixQuery scores an
// expression against labeled example sets in a single query, which is the
// hot operation of concept-learning loops.
//
// Every generated query is checked against a SPARQL grammar before it is
// returned, so a successfully returned query always parses.
package owl2sparql
