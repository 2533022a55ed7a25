package owl

// CardinalityKind selects the comparison of a cardinality restriction.
type CardinalityKind int

// Cardinality kinds.
const (
	MinCardinality CardinalityKind = iota
	MaxCardinality
	ExactCardinality
)

// String returns the OWL functional-syntax name of the kind.
func (k CardinalityKind) String() string {
	switch k {
	case MinCardinality:
		return "MinCardinality"
	case MaxCardinality:
		return "MaxCardinality"
	case ExactCardinality:
		return "ExactCardinality"
	default:
		return "UnknownCardinality"
	}
}

// ObjectIntersectionOf is the conjunction C1 ⊓ ... ⊓ Cn.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

func (*ObjectIntersectionOf) classExpression() {}

// ObjectUnionOf is the disjunction C1 ⊔ ... ⊔ Cn.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

func (*ObjectUnionOf) classExpression() {}

// ObjectComplementOf is the negation ¬C.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (*ObjectComplementOf) classExpression() {}

// ObjectSomeValuesFrom is the existential restriction ∃r.C.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (*ObjectSomeValuesFrom) classExpression() {}

// ObjectAllValuesFrom is the universal restriction ∀r.C.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (*ObjectAllValuesFrom) classExpression() {}

// ObjectHasValue is the value restriction ∃r.{a}.
type ObjectHasValue struct {
	Property ObjectPropertyExpression
	Value    NamedIndividual
}

func (*ObjectHasValue) classExpression() {}

// ObjectHasSelf is the self restriction ∃r.Self.
type ObjectHasSelf struct {
	Property ObjectPropertyExpression
}

func (*ObjectHasSelf) classExpression() {}

// ObjectOneOf is the enumeration {a1, ..., an}.
type ObjectOneOf struct {
	Individuals []NamedIndividual
}

func (*ObjectOneOf) classExpression() {}

// ObjectCardinality is a qualified cardinality restriction ≥n r.C, ≤n r.C
// or =n r.C, selected by Kind.
type ObjectCardinality struct {
	Kind     CardinalityKind
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (*ObjectCardinality) classExpression() {}

// ObjectMinCardinality builds ≥n r.C.
func ObjectMinCardinality(n int, property ObjectPropertyExpression, filler ClassExpression) *ObjectCardinality {
	return &ObjectCardinality{Kind: MinCardinality, N: n, Property: property, Filler: filler}
}

// ObjectMaxCardinality builds ≤n r.C.
func ObjectMaxCardinality(n int, property ObjectPropertyExpression, filler ClassExpression) *ObjectCardinality {
	return &ObjectCardinality{Kind: MaxCardinality, N: n, Property: property, Filler: filler}
}

// ObjectExactCardinality builds =n r.C.
func ObjectExactCardinality(n int, property ObjectPropertyExpression, filler ClassExpression) *ObjectCardinality {
	return &ObjectCardinality{Kind: ExactCardinality, N: n, Property: property, Filler: filler}
}

// DataSomeValuesFrom is the data existential restriction ∃p.D.
type DataSomeValuesFrom struct {
	Property DataProperty
	Filler   DataRange
}

func (*DataSomeValuesFrom) classExpression() {}

// DataAllValuesFrom is the data universal restriction ∀p.D.
type DataAllValuesFrom struct {
	Property DataProperty
	Filler   DataRange
}

func (*DataAllValuesFrom) classExpression() {}

// DataHasValue is the data value restriction ∃p.{v}.
type DataHasValue struct {
	Property DataProperty
	Value    Literal
}

func (*DataHasValue) classExpression() {}

// DataCardinality is a qualified data cardinality restriction.
type DataCardinality struct {
	Kind     CardinalityKind
	N        int
	Property DataProperty
	Filler   DataRange
}

func (*DataCardinality) classExpression() {}

// DataMinCardinality builds ≥n p.D.
func DataMinCardinality(n int, property DataProperty, filler DataRange) *DataCardinality {
	return &DataCardinality{Kind: MinCardinality, N: n, Property: property, Filler: filler}
}

// DataMaxCardinality builds ≤n p.D.
func DataMaxCardinality(n int, property DataProperty, filler DataRange) *DataCardinality {
	return &DataCardinality{Kind: MaxCardinality, N: n, Property: property, Filler: filler}
}

// DataExactCardinality builds =n p.D.
func DataExactCardinality(n int, property DataProperty, filler DataRange) *DataCardinality {
	return &DataCardinality{Kind: ExactCardinality, N: n, Property: property, Filler: filler}
}

// DataOneOf is the literal enumeration {v1, ..., vn}.
type DataOneOf struct {
	Values []Literal
}

func (*DataOneOf) dataRange() {}

// DataComplementOf is the data range complement ¬D.
type DataComplementOf struct {
	Operand DataRange
}

func (*DataComplementOf) dataRange() {}

// DataUnionOf is the data range union D1 ∪ ... ∪ Dn.
type DataUnionOf struct {
	Operands []DataRange
}

func (*DataUnionOf) dataRange() {}

// DataIntersectionOf is the data range intersection D1 ∩ ... ∩ Dn.
type DataIntersectionOf struct {
	Operands []DataRange
}

func (*DataIntersectionOf) dataRange() {}

// DatatypeRestriction constrains a datatype with facet restrictions, e.g.
// xsd:integer[>= 18, <= 65].
type DatatypeRestriction struct {
	Datatype     Datatype
	Restrictions []FacetRestriction
}

func (*DatatypeRestriction) dataRange() {}
