package owl

// Well-known vocabulary IRIs used by the compiler.
const (
	RDFType IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	RDFSLiteral IRI = "http://www.w3.org/2000/01/rdf-schema#Literal"

	OWLThing           IRI = "http://www.w3.org/2002/07/owl#Thing"
	OWLNothing         IRI = "http://www.w3.org/2002/07/owl#Nothing"
	OWLNamedIndividual IRI = "http://www.w3.org/2002/07/owl#NamedIndividual"

	XSDString             IRI = "http://www.w3.org/2001/XMLSchema#string"
	XSDBoolean            IRI = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDInteger            IRI = "http://www.w3.org/2001/XMLSchema#integer"
	XSDInt                IRI = "http://www.w3.org/2001/XMLSchema#int"
	XSDLong               IRI = "http://www.w3.org/2001/XMLSchema#long"
	XSDNonNegativeInteger IRI = "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"
	XSDDecimal            IRI = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDDouble             IRI = "http://www.w3.org/2001/XMLSchema#double"
	XSDFloat              IRI = "http://www.w3.org/2001/XMLSchema#float"
	XSDDate               IRI = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime           IRI = "http://www.w3.org/2001/XMLSchema#dateTime"
)

// Thing returns the universal top class owl:Thing.
func Thing() Class { return Class{IRI: OWLThing} }

// Nothing returns the bottom class owl:Nothing.
func Nothing() Class { return Class{IRI: OWLNothing} }

// TopDatatype returns the top datatype rdfs:Literal.
func TopDatatype() Datatype { return Datatype{IRI: RDFSLiteral} }
