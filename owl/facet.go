package owl

// Facet is an XSD constraining facet used in datatype restrictions.
type Facet string

// Constraining facets. Only the four comparison facets are translatable to
// SPARQL filters; the others exist so parsers can represent them and the
// compiler can reject them explicitly.
const (
	FacetMinInclusive Facet = "http://www.w3.org/2001/XMLSchema#minInclusive"
	FacetMinExclusive Facet = "http://www.w3.org/2001/XMLSchema#minExclusive"
	FacetMaxInclusive Facet = "http://www.w3.org/2001/XMLSchema#maxInclusive"
	FacetMaxExclusive Facet = "http://www.w3.org/2001/XMLSchema#maxExclusive"
	FacetLength       Facet = "http://www.w3.org/2001/XMLSchema#length"
	FacetMinLength    Facet = "http://www.w3.org/2001/XMLSchema#minLength"
	FacetMaxLength    Facet = "http://www.w3.org/2001/XMLSchema#maxLength"
	FacetPattern      Facet = "http://www.w3.org/2001/XMLSchema#pattern"
)

// FacetRestriction pairs a facet with its restricting value, e.g.
// minInclusive 18.
type FacetRestriction struct {
	Facet Facet
	Value Literal
}
