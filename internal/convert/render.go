package convert

import (
	"fmt"

	"github.com/nlstn/go-owl2sparql/owl"
)

// renderEntity converts a leaf entity to SPARQL term syntax: a full IRI by
// default, or its allocated variable when the entity is templated. Object
// properties are additionally recorded at the current modal depth; nothing
// in this module consumes the record yet, it is the attachment point for
// sub-property expansion.
func (cc *conversionContext) renderEntity(e owl.Entity) string {
	if p, ok := e.(owl.ObjectProperty); ok {
		depth := cc.modalDepth()
		cc.properties[depth] = append(cc.properties[depth], p)
	}
	if cc.isTemplate(e) {
		return cc.mapping.variableFor(e)
	}
	return fmt.Sprintf("<%s>", e.EntityIRI())
}

// renderLiteral converts a literal to SPARQL term syntax.
func (cc *conversionContext) renderLiteral(l owl.Literal) string {
	return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.IRI)
}

// renderObjectProperty renders the named property of a property expression.
// Inverse direction is handled by the caller when placing the triple.
func (cc *conversionContext) renderObjectProperty(pe owl.ObjectPropertyExpression) string {
	return cc.renderEntity(pe.Named())
}

func (cc *conversionContext) isTemplate(e owl.Entity) bool {
	if len(cc.templates) == 0 {
		return false
	}
	_, ok := cc.templates[owl.Key(e)]
	return ok
}
