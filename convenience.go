package owl2sparql

import (
	"context"

	"github.com/nlstn/go-owl2sparql/owl"
)

// ToSPARQL converts a class expression with a one-off Converter built from
// the given options. For repeated conversions build a Converter once with
// New and reuse it.
func ToSPARQL(ce owl.ClassExpression, opts ...Option) (string, error) {
	return New(opts...).AsQuery(context.Background(), ce)
}

// ToConfusionMatrixSPARQL builds a confusion matrix query with a one-off
// Converter built from the given options.
func ToConfusionMatrixSPARQL(ce owl.ClassExpression, positives, negatives []owl.NamedIndividual, opts ...Option) (string, error) {
	return New(opts...).AsConfusionMatrixQuery(context.Background(), ce, positives, negatives)
}
