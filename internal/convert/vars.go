package convert

import (
	"strconv"

	"github.com/nlstn/go-owl2sparql/owl"
)

// variableMapping allocates SPARQL variable names for one conversion. Cached
// names (variableFor) are stable per entity within one mapping instance;
// fresh names are monotonically increasing and never reused. Cached and
// fresh individual names use distinct prefixes (?ind_ vs ?s_) so they cannot
// collide; property names share one counter, which keeps every allocation
// unique.
type variableMapping struct {
	classCount      int
	propertyCount   int
	individualCount int
	countCount      int
	cache           map[uint64]string
}

func newVariableMapping() *variableMapping {
	return &variableMapping{cache: make(map[uint64]string)}
}

// variableFor returns the variable substituted for a templated entity. The
// same entity always yields the same name within one mapping.
func (m *variableMapping) variableFor(e owl.Entity) string {
	key := owl.Key(e)
	if v, ok := m.cache[key]; ok {
		return v
	}

	var v string
	switch e.(type) {
	case owl.Class:
		m.classCount++
		v = "?cls_" + strconv.Itoa(m.classCount)
	case owl.ObjectProperty, owl.DataProperty:
		m.propertyCount++
		v = "?p_" + strconv.Itoa(m.propertyCount)
	case owl.NamedIndividual:
		m.individualCount++
		v = "?ind_" + strconv.Itoa(m.individualCount)
	default:
		// Datatypes are never templated; fall back to an individual slot.
		m.individualCount++
		v = "?ind_" + strconv.Itoa(m.individualCount)
	}

	m.cache[key] = v
	return v
}

// freshIndividualVar returns a new object/subject variable.
func (m *variableMapping) freshIndividualVar() string {
	m.individualCount++
	return "?s_" + strconv.Itoa(m.individualCount)
}

// freshPropertyVar returns a new predicate variable.
func (m *variableMapping) freshPropertyVar() string {
	m.propertyCount++
	return "?p_" + strconv.Itoa(m.propertyCount)
}

// freshCountVar returns a new aggregate-result variable.
func (m *variableMapping) freshCountVar() string {
	m.countCount++
	return "?cnt_" + strconv.Itoa(m.countCount)
}
