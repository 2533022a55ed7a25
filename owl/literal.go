package owl

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Literal is a typed RDF literal: a lexical form paired with a datatype IRI.
type Literal struct {
	Lexical  string
	Datatype Datatype
}

// TypedLiteral builds a literal from a lexical form and datatype.
func TypedLiteral(lexical string, datatype Datatype) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// StringLiteral builds an xsd:string literal.
func StringLiteral(s string) Literal {
	return Literal{Lexical: s, Datatype: Datatype{IRI: XSDString}}
}

// BooleanLiteral builds an xsd:boolean literal.
func BooleanLiteral(b bool) Literal {
	return Literal{Lexical: strconv.FormatBool(b), Datatype: Datatype{IRI: XSDBoolean}}
}

// IntegerLiteral builds an xsd:integer literal.
func IntegerLiteral(n int64) Literal {
	return Literal{Lexical: strconv.FormatInt(n, 10), Datatype: Datatype{IRI: XSDInteger}}
}

// DecimalLiteral builds an xsd:decimal literal from an arbitrary-precision
// decimal value.
func DecimalLiteral(d decimal.Decimal) Literal {
	return Literal{Lexical: d.String(), Datatype: Datatype{IRI: XSDDecimal}}
}

// DoubleLiteral builds an xsd:double literal.
func DoubleLiteral(f float64) Literal {
	return Literal{Lexical: strconv.FormatFloat(f, 'g', -1, 64), Datatype: Datatype{IRI: XSDDouble}}
}

// IsNumeric reports whether the literal's datatype is one of the XSD
// numeric types the compiler can compare in facet restrictions.
func (l Literal) IsNumeric() bool {
	switch l.Datatype.IRI {
	case XSDInteger, XSDDecimal, XSDDouble, XSDFloat, XSDInt, XSDLong, XSDNonNegativeInteger:
		return true
	default:
		return false
	}
}

// DecimalValue parses the lexical form as an arbitrary-precision decimal.
// It fails for non-numeric datatypes or malformed lexical forms.
func (l Literal) DecimalValue() (decimal.Decimal, error) {
	if !l.IsNumeric() {
		return decimal.Zero, fmt.Errorf("literal %q has non-numeric datatype <%s>", l.Lexical, l.Datatype.IRI)
	}
	d, err := decimal.NewFromString(l.Lexical)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse %q as <%s>: %w", l.Lexical, l.Datatype.IRI, err)
	}
	return d, nil
}

// String returns the SPARQL term syntax of the literal.
func (l Literal) String() string {
	return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.IRI)
}
