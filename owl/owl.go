// Package owl models OWL 2 class expressions, property expressions,
// individuals and literals — the input contract of the SPARQL compiler.
//
// All nodes are immutable value objects: leaf entities (Class,
// ObjectProperty, DataProperty, Datatype, NamedIndividual) are plain
// comparable structs, composite expressions are pointer nodes whose fields
// are never mutated after construction. Equality and hashing are structural,
// see Key and Equal.
package owl

// IRI identifies an ontology entity.
type IRI string

// String returns the IRI as a plain string.
func (i IRI) String() string { return string(i) }

// Entity is a named ontology element identified by an IRI.
type Entity interface {
	EntityIRI() IRI
	entity()
}

// ClassExpression is the tagged union over all OWL 2 class expression
// variants. The compiler dispatches on the concrete type.
type ClassExpression interface {
	classExpression()
}

// DataRange is the tagged union over data range variants: datatypes,
// literal enumerations, facet restrictions and their boolean combinations.
type DataRange interface {
	dataRange()
}

// Class is a named class. A Class is both an Entity and a ClassExpression.
type Class struct {
	IRI IRI
}

// EntityIRI returns the class IRI.
func (c Class) EntityIRI() IRI { return c.IRI }

// IsThing reports whether the class is owl:Thing, the universal top class.
func (c Class) IsThing() bool { return c.IRI == OWLThing }

// IsNothing reports whether the class is owl:Nothing.
func (c Class) IsNothing() bool { return c.IRI == OWLNothing }

func (Class) entity()          {}
func (Class) classExpression() {}

// NamedIndividual is an IRI-identified individual.
type NamedIndividual struct {
	IRI IRI
}

// EntityIRI returns the individual IRI.
func (i NamedIndividual) EntityIRI() IRI { return i.IRI }

func (NamedIndividual) entity() {}

// Datatype is a named datatype. The top datatype rdfs:Literal admits every
// literal.
type Datatype struct {
	IRI IRI
}

// EntityIRI returns the datatype IRI.
func (d Datatype) EntityIRI() IRI { return d.IRI }

// IsTopDatatype reports whether the datatype is rdfs:Literal.
func (d Datatype) IsTopDatatype() bool { return d.IRI == RDFSLiteral }

func (Datatype) entity()    {}
func (Datatype) dataRange() {}
