package owl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Key returns a 64-bit structural hash of an expression-model node. Two
// nodes have the same key whenever they are structurally equal; composite
// nodes hash their full subtree. Accepted node kinds are ClassExpression,
// DataRange, ObjectPropertyExpression, Entity and Literal.
func Key(node any) uint64 {
	return xxhash.Sum64String(Canonical(node))
}

// Equal reports structural equality of two expression-model nodes.
func Equal(a, b any) bool {
	return Canonical(a) == Canonical(b)
}

// Canonical returns a canonical functional-syntax rendering of a node. It
// is injective over well-formed nodes and is the basis for Key and Equal.
func Canonical(node any) string {
	var b strings.Builder
	writeCanonical(&b, node)
	return b.String()
}

func writeCanonical(b *strings.Builder, node any) {
	switch n := node.(type) {
	case Class:
		writeTagged(b, "Class", string(n.IRI))
	case NamedIndividual:
		writeTagged(b, "NamedIndividual", string(n.IRI))
	case ObjectProperty:
		writeTagged(b, "ObjectProperty", string(n.IRI))
	case ObjectInverseOf:
		b.WriteString("ObjectInverseOf(")
		writeCanonical(b, n.Property)
		b.WriteByte(')')
	case DataProperty:
		writeTagged(b, "DataProperty", string(n.IRI))
	case Datatype:
		writeTagged(b, "Datatype", string(n.IRI))
	case Literal:
		b.WriteString("Literal(")
		b.WriteString(strconv.Quote(n.Lexical))
		b.WriteByte('^')
		b.WriteString(string(n.Datatype.IRI))
		b.WriteByte(')')
	case *ObjectIntersectionOf:
		writeNary(b, "ObjectIntersectionOf", toAny(n.Operands))
	case *ObjectUnionOf:
		writeNary(b, "ObjectUnionOf", toAny(n.Operands))
	case *ObjectComplementOf:
		writeNary(b, "ObjectComplementOf", []any{n.Operand})
	case *ObjectSomeValuesFrom:
		writeNary(b, "ObjectSomeValuesFrom", []any{n.Property, n.Filler})
	case *ObjectAllValuesFrom:
		writeNary(b, "ObjectAllValuesFrom", []any{n.Property, n.Filler})
	case *ObjectHasValue:
		writeNary(b, "ObjectHasValue", []any{n.Property, n.Value})
	case *ObjectHasSelf:
		writeNary(b, "ObjectHasSelf", []any{n.Property})
	case *ObjectOneOf:
		writeNary(b, "ObjectOneOf", toAny(n.Individuals))
	case *ObjectCardinality:
		b.WriteString("Object")
		b.WriteString(n.Kind.String())
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(n.N))
		b.WriteByte(',')
		writeCanonical(b, n.Property)
		b.WriteByte(',')
		writeCanonical(b, n.Filler)
		b.WriteByte(')')
	case *DataSomeValuesFrom:
		writeNary(b, "DataSomeValuesFrom", []any{n.Property, n.Filler})
	case *DataAllValuesFrom:
		writeNary(b, "DataAllValuesFrom", []any{n.Property, n.Filler})
	case *DataHasValue:
		writeNary(b, "DataHasValue", []any{n.Property, n.Value})
	case *DataCardinality:
		b.WriteString("Data")
		b.WriteString(n.Kind.String())
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(n.N))
		b.WriteByte(',')
		writeCanonical(b, n.Property)
		b.WriteByte(',')
		writeCanonical(b, n.Filler)
		b.WriteByte(')')
	case *DataOneOf:
		writeNary(b, "DataOneOf", toAny(n.Values))
	case *DataComplementOf:
		writeNary(b, "DataComplementOf", []any{n.Operand})
	case *DataUnionOf:
		writeNary(b, "DataUnionOf", toAny(n.Operands))
	case *DataIntersectionOf:
		writeNary(b, "DataIntersectionOf", toAny(n.Operands))
	case *DatatypeRestriction:
		b.WriteString("DatatypeRestriction(")
		writeCanonical(b, n.Datatype)
		for _, fr := range n.Restrictions {
			b.WriteByte(',')
			b.WriteString(string(fr.Facet))
			b.WriteByte(' ')
			writeCanonical(b, fr.Value)
		}
		b.WriteByte(')')
	case nil:
		b.WriteString("nil")
	default:
		// Unknown node kinds still hash deterministically.
		fmt.Fprintf(b, "%T(%v)", n, n)
	}
}

func writeTagged(b *strings.Builder, tag, iri string) {
	b.WriteString(tag)
	b.WriteByte('(')
	b.WriteString(iri)
	b.WriteByte(')')
}

func writeNary(b *strings.Builder, tag string, operands []any) {
	b.WriteString(tag)
	b.WriteByte('(')
	for i, op := range operands {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCanonical(b, op)
	}
	b.WriteByte(')')
}

func toAny[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
