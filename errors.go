package owl2sparql

import "github.com/nlstn/go-owl2sparql/internal/convert"

// Sentinel errors for common conversion failures.
// These can be used with errors.Is() for error handling.
var (
	// ErrUnsupportedExpression indicates a class expression or data range
	// variant the compiler cannot translate, such as a constraining facet
	// without a SPARQL comparison.
	ErrUnsupportedExpression = convert.ErrUnsupportedExpression

	// ErrMalformedOutput indicates the assembled query failed the internal
	// grammar check. It signals a bug in this library, not in caller input.
	ErrMalformedOutput = convert.ErrMalformedOutput

	// ErrContractViolation indicates invalid input: a nil expression, an
	// empty operand list, a negative cardinality, a malformed root variable
	// or empty example sets.
	ErrContractViolation = convert.ErrContractViolation
)

// ConversionError carries the sentinel, the offending node and a message.
// Errors returned by Converter methods unwrap to one of the sentinels.
type ConversionError = convert.ConversionError
