package convert

import (
	"fmt"

	"github.com/nlstn/go-owl2sparql/owl"
)

// conversionContext carries all mutable state of one top-level conversion:
// the stack of current variables (one level per modal scope), the stack of
// enclosing expressions, the variable allocator and the emitted pattern
// fragments. A context is created per conversion and never shared.
type conversionContext struct {
	root      owl.ClassExpression
	fragments []string

	variables  []string
	parents    []owl.ClassExpression
	parentVars []string

	mapping   *variableMapping
	templates map[uint64]struct{}

	// properties records object properties by modal depth as they are
	// rendered. Reserved for sub-property expansion layers.
	properties map[int][]owl.ObjectProperty

	universalViaDeMorgan bool
	namedIndividualsOnly bool
}

func newConversionContext(opts Options) *conversionContext {
	cc := &conversionContext{
		mapping:              newVariableMapping(),
		properties:           make(map[int][]owl.ObjectProperty),
		universalViaDeMorgan: opts.UniversalViaDeMorgan,
		namedIndividualsOnly: opts.NamedIndividualsOnly,
	}
	if len(opts.TemplateEntities) > 0 {
		cc.templates = make(map[uint64]struct{}, len(opts.TemplateEntities))
		for _, e := range opts.TemplateEntities {
			cc.templates[owl.Key(e)] = struct{}{}
		}
	}
	return cc
}

// convert compiles a class expression at the given root variable and returns
// the pattern fragments. The caller is responsible for prior validation.
func (cc *conversionContext) convert(rootVariable string, ce owl.ClassExpression) ([]string, error) {
	cc.root = ce
	cc.fragments = cc.fragments[:0]

	cc.pushVariable(rootVariable)
	cc.pushParent(ce)
	err := cc.process(ce)
	cc.popParent()
	cc.popVariable()
	if err != nil {
		return nil, err
	}
	return cc.fragments, nil
}

func (cc *conversionContext) modalDepth() int { return len(cc.variables) }

func (cc *conversionContext) currentVariable() string {
	return cc.variables[len(cc.variables)-1]
}

func (cc *conversionContext) pushVariable(v string) { cc.variables = append(cc.variables, v) }

func (cc *conversionContext) popVariable() { cc.variables = cc.variables[:len(cc.variables)-1] }

func (cc *conversionContext) pushParent(ce owl.ClassExpression) {
	cc.parents = append(cc.parents, ce)
	cc.parentVars = append(cc.parentVars, cc.currentVariable())
}

func (cc *conversionContext) popParent() {
	cc.parents = cc.parents[:len(cc.parents)-1]
	cc.parentVars = cc.parentVars[:len(cc.parentVars)-1]
}

func (cc *conversionContext) append(fragment string) {
	cc.fragments = append(cc.fragments, fragment)
}

func (cc *conversionContext) appendTriple(subject, predicate, object string) {
	cc.append(subject + " " + predicate + " " + object + " . ")
}

// appendEdge emits the property edge between two terms, honoring inverse
// direction.
func (cc *conversionContext) appendEdge(subject string, pe owl.ObjectPropertyExpression, object string) {
	predicate := cc.renderObjectProperty(pe)
	if pe.IsInverse() {
		cc.appendTriple(object, predicate, subject)
	} else {
		cc.appendTriple(subject, predicate, object)
	}
}

// appendBinder emits a triple that forces the current variable to be bound.
// FILTER NOT EXISTS and FILTER ... IN over an otherwise-unbound variable are
// boolean tests, not binding patterns, so every negation scope needs one of
// these. With namedIndividualsOnly the binder doubles as the restriction to
// declared individuals.
func (cc *conversionContext) appendBinder() {
	subject := cc.currentVariable()
	if cc.namedIndividualsOnly {
		cc.appendTriple(subject, "a", fmt.Sprintf("<%s>", owl.OWLNamedIndividual))
		return
	}
	cc.appendTriple(subject, cc.mapping.freshPropertyVar(), cc.mapping.freshIndividualVar())
}

// process translates one class expression at the current variable. Unknown
// variants fail fast; nothing is partially emitted for them.
func (cc *conversionContext) process(ce owl.ClassExpression) error {
	switch e := ce.(type) {
	case owl.Class:
		cc.processClass(e)
		return nil
	case *owl.ObjectIntersectionOf:
		return cc.processIntersection(e)
	case *owl.ObjectUnionOf:
		return cc.processUnion(e)
	case *owl.ObjectComplementOf:
		return cc.processComplement(e)
	case *owl.ObjectSomeValuesFrom:
		return cc.processSomeValuesFrom(e)
	case *owl.ObjectAllValuesFrom:
		return cc.processAllValuesFrom(e)
	case *owl.ObjectHasValue:
		cc.processHasValue(e)
		return nil
	case *owl.ObjectHasSelf:
		cc.processHasSelf(e)
		return nil
	case *owl.ObjectOneOf:
		cc.processObjectOneOf(e)
		return nil
	case *owl.ObjectCardinality:
		return cc.processObjectCardinality(e)
	case *owl.DataSomeValuesFrom:
		return cc.processDataSomeValuesFrom(e)
	case *owl.DataAllValuesFrom:
		return cc.processDataAllValuesFrom(e)
	case *owl.DataHasValue:
		cc.appendTriple(cc.currentVariable(), cc.renderEntity(e.Property), cc.renderLiteral(e.Value))
		return nil
	case *owl.DataCardinality:
		return cc.processDataCardinality(e)
	default:
		return unsupportedf(ce, "cannot compile this expression")
	}
}

// processClass handles the atomic case, the final step of the recursion.
// A non-root owl:Thing is vacuously true and emits nothing.
func (cc *conversionContext) processClass(e owl.Class) {
	if !e.IsThing() || owl.ClassExpression(e) == cc.root {
		cc.appendTriple(cc.currentVariable(), "a", cc.renderEntity(e))
	}
}

// processIntersection conjoins operands by concatenating their patterns at
// the same variable, preserving operand order for reproducible output.
func (cc *conversionContext) processIntersection(e *owl.ObjectIntersectionOf) error {
	for _, op := range e.Operands {
		if err := cc.process(op); err != nil {
			return err
		}
	}
	return nil
}

// processUnion wraps each operand in a group pattern and joins consecutive
// groups with UNION: n operands produce exactly n-1 UNION tokens.
func (cc *conversionContext) processUnion(e *owl.ObjectUnionOf) error {
	for i, op := range e.Operands {
		if i > 0 {
			cc.append(" UNION ")
		}
		cc.append("{ ")
		cc.pushParent(op)
		err := cc.process(op)
		cc.popParent()
		if err != nil {
			return err
		}
		cc.append(" }")
	}
	return nil
}

// processComplement emits a binder triple followed by FILTER NOT EXISTS over
// the operand's pattern. The binder is required at every nesting depth, not
// only the outermost: without it a nested complement degrades to a boolean
// filter and returns no bindings.
func (cc *conversionContext) processComplement(e *owl.ObjectComplementOf) error {
	cc.appendBinder()
	cc.append("FILTER NOT EXISTS { ")
	if err := cc.process(e.Operand); err != nil {
		return err
	}
	cc.append(" }")
	return nil
}

// processSomeValuesFrom emits the property edge to a fresh object variable
// and recurses into the filler at that variable.
func (cc *conversionContext) processSomeValuesFrom(e *owl.ObjectSomeValuesFrom) error {
	objectVariable := cc.mapping.freshIndividualVar()
	cc.appendEdge(cc.currentVariable(), e.Property, objectVariable)

	cc.pushVariable(objectVariable)
	defer cc.popVariable()
	return cc.process(e.Filler)
}

func (cc *conversionContext) processAllValuesFrom(e *owl.ObjectAllValuesFrom) error {
	if cc.universalViaDeMorgan {
		return cc.processAllValuesFromDeMorgan(e)
	}
	return cc.processAllValuesFromCounting(e)
}

// processAllValuesFromDeMorgan encodes ∀r.C as ¬∃r.¬C: a binder plus two
// nested FILTER NOT EXISTS blocks, the inner one wrapping the filler at the
// fresh object variable.
func (cc *conversionContext) processAllValuesFromDeMorgan(e *owl.ObjectAllValuesFrom) error {
	cc.appendBinder()
	cc.append("FILTER NOT EXISTS { ")

	objectVariable := cc.mapping.freshIndividualVar()
	cc.appendEdge(cc.currentVariable(), e.Property, objectVariable)

	cc.append("FILTER NOT EXISTS { ")
	cc.pushVariable(objectVariable)
	err := cc.process(e.Filler)
	cc.popVariable()
	if err != nil {
		return err
	}
	cc.append(" }")
	cc.append(" }")
	return nil
}

// processAllValuesFromCounting encodes ∀r.C by comparing two counts per
// subject: distinct r-successors satisfying C against all distinct
// r-successors. A UNION branch covers subjects with no r-successors at all,
// for which the universal holds vacuously.
func (cc *conversionContext) processAllValuesFromCounting(e *owl.ObjectAllValuesFrom) error {
	subject := cc.currentVariable()

	cc.append("{")

	objectVariable := cc.mapping.freshIndividualVar()
	cc.appendEdge(subject, e.Property, objectVariable)

	// Both counts need DISTINCT: duplicate edges would otherwise inflate
	// one side and break the equality.
	restricted := cc.mapping.freshIndividualVar()
	countRestricted := cc.mapping.freshCountVar()
	cc.append(fmt.Sprintf("{ SELECT %s ( COUNT( DISTINCT %s ) AS %s ) WHERE { ", subject, restricted, countRestricted))
	cc.appendEdge(subject, e.Property, restricted)
	cc.pushVariable(restricted)
	err := cc.process(e.Filler)
	cc.popVariable()
	if err != nil {
		return err
	}
	cc.append(fmt.Sprintf(" } GROUP BY %s }", subject))

	total := cc.mapping.freshIndividualVar()
	countTotal := cc.mapping.freshCountVar()
	cc.append(fmt.Sprintf("{ SELECT %s ( COUNT( DISTINCT %s ) AS %s ) WHERE { ", subject, total, countTotal))
	cc.appendEdge(subject, e.Property, total)
	cc.append(fmt.Sprintf(" } GROUP BY %s }", subject))

	cc.append(fmt.Sprintf(" FILTER( %s = %s )", countRestricted, countTotal))
	cc.append("} UNION { ")

	// Vacuous truth: subjects that appear in no edge of the property.
	cc.appendBinder()
	cc.append("FILTER NOT EXISTS { ")
	cc.appendEdge(cc.currentVariable(), e.Property, cc.mapping.freshIndividualVar())
	cc.append(" } }")
	return nil
}

// processHasValue emits a direct triple to the fixed individual, honoring
// inverse direction.
func (cc *conversionContext) processHasValue(e *owl.ObjectHasValue) {
	predicate := cc.renderObjectProperty(e.Property)
	value := cc.renderEntity(e.Value)
	if e.Property.IsInverse() {
		cc.appendTriple(value, predicate, cc.currentVariable())
	} else {
		cc.appendTriple(cc.currentVariable(), predicate, value)
	}
}

// processHasSelf emits the reflexive triple.
func (cc *conversionContext) processHasSelf(e *owl.ObjectHasSelf) {
	subject := cc.currentVariable()
	cc.appendTriple(subject, cc.renderObjectProperty(e.Property), subject)
}

// processObjectOneOf filters the current variable against the enumeration.
// IN alone tests without binding, so at modal depth 1 a binder precedes the
// filter; at deeper levels the enclosing property edge has already bound the
// variable and an extra binder would wrongly require an outgoing triple.
func (cc *conversionContext) processObjectOneOf(e *owl.ObjectOneOf) {
	subject := cc.currentVariable()
	if cc.modalDepth() == 1 {
		cc.appendBinder()
	}

	cc.append(fmt.Sprintf(" FILTER ( %s IN ( ", subject))
	for i, ind := range e.Individuals {
		if i > 0 {
			cc.append(",")
		}
		cc.append(cc.renderEntity(ind))
	}
	cc.append(" ) )")
}

func cardinalityComparator(kind owl.CardinalityKind) (string, error) {
	switch kind {
	case owl.MinCardinality:
		return ">=", nil
	case owl.MaxCardinality:
		return "<=", nil
	case owl.ExactCardinality:
		return "=", nil
	default:
		return "", unsupportedf(kind, "unknown cardinality kind %d", int(kind))
	}
}

// processObjectCardinality emits a counting subquery with a HAVING clause.
// For <= and for n = 0 the subquery alone would drop subjects with no
// qualifying successors, so those cases gain a UNION branch matching
// subjects with no successor satisfying the filler at all.
func (cc *conversionContext) processObjectCardinality(e *owl.ObjectCardinality) error {
	subject := cc.currentVariable()
	objectVariable := cc.mapping.freshIndividualVar()

	comparator, err := cardinalityComparator(e.Kind)
	if err != nil {
		return err
	}

	vacuous := comparator == "<=" || e.N == 0
	if vacuous {
		cc.append("{")
	}

	cc.append(fmt.Sprintf("{ SELECT %s WHERE { ", subject))
	cc.appendEdge(subject, e.Property, objectVariable)
	cc.pushVariable(objectVariable)
	err = cc.process(e.Filler)
	cc.popVariable()
	if err != nil {
		return err
	}
	cc.append(fmt.Sprintf(" } GROUP BY %s HAVING ( COUNT ( %s ) %s %d ) }", subject, objectVariable, comparator, e.N))

	if vacuous {
		cc.append("} UNION {")
		cc.appendBinder()
		cc.append("FILTER NOT EXISTS { ")
		absent := cc.mapping.freshIndividualVar()
		cc.appendEdge(cc.currentVariable(), e.Property, absent)
		cc.pushVariable(absent)
		err = cc.process(e.Filler)
		cc.popVariable()
		if err != nil {
			return err
		}
		cc.append(" } }")
	}
	return nil
}

// processDataSomeValuesFrom mirrors the object existential over a data
// property; data properties have no inverse.
func (cc *conversionContext) processDataSomeValuesFrom(e *owl.DataSomeValuesFrom) error {
	objectVariable := cc.mapping.freshIndividualVar()
	cc.appendTriple(cc.currentVariable(), cc.renderEntity(e.Property), objectVariable)

	cc.pushVariable(objectVariable)
	defer cc.popVariable()
	return cc.processDataRange(e.Filler)
}

// processDataAllValuesFrom always uses the counting encoding and carries no
// vacuous UNION branch; the asymmetry with the object case is inherited
// behavior that consumers may rely on.
func (cc *conversionContext) processDataAllValuesFrom(e *owl.DataAllValuesFrom) error {
	subject := cc.currentVariable()
	predicate := cc.renderEntity(e.Property)

	objectVariable := cc.mapping.freshIndividualVar()
	cc.appendTriple(subject, predicate, objectVariable)

	restricted := cc.mapping.freshIndividualVar()
	countRestricted := cc.mapping.freshCountVar()
	cc.append(fmt.Sprintf("{ SELECT %s ( COUNT( %s ) AS %s ) WHERE { ", subject, restricted, countRestricted))
	cc.appendTriple(subject, predicate, restricted)
	cc.pushVariable(restricted)
	err := cc.processDataRange(e.Filler)
	cc.popVariable()
	if err != nil {
		return err
	}
	cc.append(fmt.Sprintf(" } GROUP BY %s }", subject))

	total := cc.mapping.freshIndividualVar()
	countTotal := cc.mapping.freshCountVar()
	cc.append(fmt.Sprintf("{ SELECT %s ( COUNT( %s ) AS %s ) WHERE { ", subject, total, countTotal))
	cc.appendTriple(subject, predicate, total)
	cc.append(fmt.Sprintf(" } GROUP BY %s }", subject))

	cc.append(fmt.Sprintf(" FILTER( %s = %s )", countRestricted, countTotal))
	return nil
}

// processDataCardinality emits the counting subquery without the vacuous
// UNION branch of the object case.
func (cc *conversionContext) processDataCardinality(e *owl.DataCardinality) error {
	subject := cc.currentVariable()
	objectVariable := cc.mapping.freshIndividualVar()

	comparator, err := cardinalityComparator(e.Kind)
	if err != nil {
		return err
	}

	cc.append(fmt.Sprintf("{ SELECT %s WHERE { ", subject))
	cc.appendTriple(subject, cc.renderEntity(e.Property), objectVariable)
	cc.pushVariable(objectVariable)
	err = cc.processDataRange(e.Filler)
	cc.popVariable()
	if err != nil {
		return err
	}
	cc.append(fmt.Sprintf(" } GROUP BY %s HAVING ( COUNT ( %s ) %s %d ) }", subject, objectVariable, comparator, e.N))
	return nil
}

// processDataRange translates a data range constraint over the current
// (literal-valued) variable.
func (cc *conversionContext) processDataRange(dr owl.DataRange) error {
	switch r := dr.(type) {
	case owl.Datatype:
		cc.processDatatype(r)
		return nil
	case *owl.DataOneOf:
		cc.processDataOneOf(r)
		return nil
	case *owl.DatatypeRestriction:
		return cc.processDatatypeRestriction(r)
	case *owl.DataComplementOf:
		cc.appendBinder()
		cc.append("FILTER NOT EXISTS { ")
		if err := cc.processDataRange(r.Operand); err != nil {
			return err
		}
		cc.append(" }")
		return nil
	case *owl.DataUnionOf:
		for i, op := range r.Operands {
			if i > 0 {
				cc.append(" UNION ")
			}
			cc.append("{ ")
			if err := cc.processDataRange(op); err != nil {
				return err
			}
			cc.append(" }")
		}
		return nil
	case *owl.DataIntersectionOf:
		for _, op := range r.Operands {
			if err := cc.processDataRange(op); err != nil {
				return err
			}
		}
		return nil
	default:
		return unsupportedf(dr, "cannot compile this data range")
	}
}

// processDatatype filters by the datatype of the bound literal. The top
// datatype admits every literal and emits nothing.
func (cc *conversionContext) processDatatype(d owl.Datatype) {
	if d.IsTopDatatype() {
		return
	}
	cc.append(fmt.Sprintf(" FILTER ( DATATYPE ( %s ) = <%s> ) ", cc.currentVariable(), d.IRI))
}

// processDataOneOf follows the same binder-at-depth-1 policy as the object
// enumeration.
func (cc *conversionContext) processDataOneOf(e *owl.DataOneOf) {
	subject := cc.currentVariable()
	if cc.modalDepth() == 1 {
		cc.appendBinder()
	}

	cc.append(fmt.Sprintf(" FILTER ( %s IN ( ", subject))
	for i, v := range e.Values {
		if i > 0 {
			cc.append(",")
		}
		cc.append(cc.renderLiteral(v))
	}
	cc.append(" ) )")
}

var facetComparators = map[owl.Facet]string{
	owl.FacetMinInclusive: ">=",
	owl.FacetMinExclusive: ">",
	owl.FacetMaxInclusive: "<=",
	owl.FacetMaxExclusive: "<",
}

// processDatatypeRestriction emits one comparison filter per facet. Facets
// without a SPARQL comparison are rejected rather than skipped.
func (cc *conversionContext) processDatatypeRestriction(e *owl.DatatypeRestriction) error {
	for _, fr := range e.Restrictions {
		op, ok := facetComparators[fr.Facet]
		if !ok {
			return unsupportedf(e, "facet <%s> has no SPARQL translation", fr.Facet)
		}
		cc.append(fmt.Sprintf(" FILTER ( %s %s %s ) ", cc.currentVariable(), op, cc.renderLiteral(fr.Value)))
	}
	return nil
}
