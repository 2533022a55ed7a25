package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion pipeline. These can be used with
// errors.Is() for error handling.
var (
	// ErrUnsupportedExpression indicates an expression variant the compiler
	// has no handler for. This is a programming error in the caller or in a
	// new model variant; nothing is partially emitted.
	ErrUnsupportedExpression = errors.New("owl2sparql: unsupported expression")

	// ErrMalformedOutput indicates the assembled query failed grammar
	// validation. This always points at a compiler defect, never at caller
	// input.
	ErrMalformedOutput = errors.New("owl2sparql: malformed query output")

	// ErrContractViolation indicates invalid caller input: a nil expression,
	// an empty n-ary operand list, a negative cardinality or a bad root
	// variable. Rejected at the public entry point before compilation.
	ErrContractViolation = errors.New("owl2sparql: contract violation")
)

// ConversionError wraps a sentinel with the node that triggered it.
type ConversionError struct {
	// Sentinel is one of the package sentinel errors.
	Sentinel error

	// Node is the expression-model node the error refers to, when known.
	Node any

	// Message describes the failure.
	Message string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Node != nil {
		return fmt.Sprintf("%s: %s (%T)", e.Sentinel.Error(), e.Message, e.Node)
	}
	return fmt.Sprintf("%s: %s", e.Sentinel.Error(), e.Message)
}

// Unwrap returns the sentinel so errors.Is() matches.
func (e *ConversionError) Unwrap() error {
	return e.Sentinel
}

func unsupportedf(node any, format string, args ...any) error {
	return &ConversionError{Sentinel: ErrUnsupportedExpression, Node: node, Message: fmt.Sprintf(format, args...)}
}

func contractf(node any, format string, args ...any) error {
	return &ConversionError{Sentinel: ErrContractViolation, Node: node, Message: fmt.Sprintf(format, args...)}
}
