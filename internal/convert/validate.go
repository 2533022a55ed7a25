package convert

import (
	"strings"

	"github.com/nlstn/go-owl2sparql/owl"
)

// validateRootVariable checks the projected variable before compilation.
func validateRootVariable(rootVariable string) error {
	if !strings.HasPrefix(rootVariable, "?") || len(rootVariable) < 2 {
		return contractf(nil, "root variable %q must start with '?'", rootVariable)
	}
	return nil
}

// validateExpression walks the expression tree and rejects malformed input
// before any compilation work: nil nodes, empty n-ary operand lists and
// negative cardinalities. Rejecting here keeps failures at the public entry
// point instead of deep inside recursion.
func validateExpression(ce owl.ClassExpression) error {
	if ce == nil {
		return contractf(nil, "expression must not be nil")
	}

	switch e := ce.(type) {
	case owl.Class:
		return nil
	case *owl.ObjectIntersectionOf:
		return validateOperands(e, e.Operands)
	case *owl.ObjectUnionOf:
		return validateOperands(e, e.Operands)
	case *owl.ObjectComplementOf:
		return validateExpression(e.Operand)
	case *owl.ObjectSomeValuesFrom:
		if e.Property == nil {
			return contractf(e, "existential restriction needs a property")
		}
		return validateExpression(e.Filler)
	case *owl.ObjectAllValuesFrom:
		if e.Property == nil {
			return contractf(e, "universal restriction needs a property")
		}
		return validateExpression(e.Filler)
	case *owl.ObjectHasValue:
		if e.Property == nil {
			return contractf(e, "value restriction needs a property")
		}
		return nil
	case *owl.ObjectHasSelf:
		if e.Property == nil {
			return contractf(e, "self restriction needs a property")
		}
		return nil
	case *owl.ObjectOneOf:
		if len(e.Individuals) == 0 {
			return contractf(e, "enumeration needs at least one individual")
		}
		return nil
	case *owl.ObjectCardinality:
		if e.N < 0 {
			return contractf(e, "cardinality must be non-negative, got %d", e.N)
		}
		if e.Property == nil {
			return contractf(e, "cardinality restriction needs a property")
		}
		return validateExpression(e.Filler)
	case *owl.DataSomeValuesFrom:
		return validateDataRange(e.Filler)
	case *owl.DataAllValuesFrom:
		return validateDataRange(e.Filler)
	case *owl.DataHasValue:
		return nil
	case *owl.DataCardinality:
		if e.N < 0 {
			return contractf(e, "cardinality must be non-negative, got %d", e.N)
		}
		return validateDataRange(e.Filler)
	default:
		// Leave unknown variants to the compiler's fail-fast dispatch so the
		// error names the unsupported node.
		return nil
	}
}

func validateDataRange(dr owl.DataRange) error {
	if dr == nil {
		return contractf(nil, "data range must not be nil")
	}

	switch r := dr.(type) {
	case owl.Datatype:
		return nil
	case *owl.DataOneOf:
		if len(r.Values) == 0 {
			return contractf(r, "enumeration needs at least one literal")
		}
		return nil
	case *owl.DatatypeRestriction:
		if len(r.Restrictions) == 0 {
			return contractf(r, "datatype restriction needs at least one facet")
		}
		return nil
	case *owl.DataComplementOf:
		return validateDataRange(r.Operand)
	case *owl.DataUnionOf:
		if len(r.Operands) == 0 {
			return contractf(r, "n-ary data range needs at least one operand")
		}
		for _, op := range r.Operands {
			if err := validateDataRange(op); err != nil {
				return err
			}
		}
		return nil
	case *owl.DataIntersectionOf:
		if len(r.Operands) == 0 {
			return contractf(r, "n-ary data range needs at least one operand")
		}
		for _, op := range r.Operands {
			if err := validateDataRange(op); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func validateOperands(node owl.ClassExpression, operands []owl.ClassExpression) error {
	if len(operands) == 0 {
		return contractf(node, "n-ary constructor needs at least one operand")
	}
	for _, op := range operands {
		if err := validateExpression(op); err != nil {
			return err
		}
	}
	return nil
}
