package owl

// ObjectPropertyExpression is either a named object property or the inverse
// of one. Inverses exist only for object properties.
type ObjectPropertyExpression interface {
	// Named returns the underlying named property.
	Named() ObjectProperty
	// IsInverse reports whether the expression inverts the edge direction.
	IsInverse() bool
	objectPropertyExpression()
}

// ObjectProperty is a named object property.
type ObjectProperty struct {
	IRI IRI
}

// EntityIRI returns the property IRI.
func (p ObjectProperty) EntityIRI() IRI { return p.IRI }

// Named returns the property itself.
func (p ObjectProperty) Named() ObjectProperty { return p }

// IsInverse always reports false for a named property.
func (p ObjectProperty) IsInverse() bool { return false }

func (ObjectProperty) entity()                   {}
func (ObjectProperty) objectPropertyExpression() {}

// ObjectInverseOf is the inverse of a named object property.
type ObjectInverseOf struct {
	Property ObjectProperty
}

// Named returns the inverted named property.
func (p ObjectInverseOf) Named() ObjectProperty { return p.Property }

// IsInverse always reports true.
func (p ObjectInverseOf) IsInverse() bool { return true }

func (ObjectInverseOf) objectPropertyExpression() {}

// DataProperty is a named data property. Data properties have no inverse.
type DataProperty struct {
	IRI IRI
}

// EntityIRI returns the property IRI.
func (p DataProperty) EntityIRI() IRI { return p.IRI }

func (DataProperty) entity() {}
