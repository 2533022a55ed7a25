// Package sparql implements a recursive-descent parser for the SPARQL 1.1
// SELECT fragment the compiler emits. It is used as a post-hoc grammar
// check: a query that fails to parse indicates a compiler defect and is
// never handed to the caller.
//
// The covered grammar is SELECT queries with DISTINCT, aggregate projection
// expressions, basic graph patterns, FILTER (including NOT EXISTS and IN),
// UNION, VALUES, nested subqueries, GROUP BY and HAVING.
package sparql

import (
	"fmt"
	"strings"
)

// Validate parses the query and returns an error describing the first
// grammar violation, or nil if the query is well-formed.
func Validate(query string) error {
	p := &parser{input: query, length: len(query)}
	if err := p.parseQuery(); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.atEnd() {
		return p.errorf("unexpected trailing input")
	}
	return nil
}

type parser struct {
	input  string
	pos    int
	length int
}

func (p *parser) parseQuery() error {
	p.skipWhitespace()
	if !p.matchKeyword("SELECT") {
		return p.errorf("expected SELECT")
	}
	return p.parseSelectBody()
}

// parseSelectBody parses everything after the SELECT keyword: projection,
// optional WHERE keyword, the group graph pattern and solution modifiers.
func (p *parser) parseSelectBody() error {
	p.skipWhitespace()
	p.matchKeyword("DISTINCT")

	if err := p.parseProjection(); err != nil {
		return err
	}

	p.skipWhitespace()
	p.matchKeyword("WHERE")

	if err := p.parseGroupGraphPattern(); err != nil {
		return err
	}

	return p.parseSolutionModifiers()
}

// parseProjection parses '*', a variable list, or (expression AS ?var)
// items, in any combination of the latter two.
func (p *parser) parseProjection() error {
	p.skipWhitespace()
	if p.peek() == '*' {
		p.advance()
		return nil
	}

	projected := 0
	for {
		p.skipWhitespace()
		ch := p.peek()
		if ch == '(' {
			if err := p.parseProjectionExpression(); err != nil {
				return err
			}
			projected++
			continue
		}
		if ch == '?' || ch == '$' {
			if _, err := p.parseVariable(); err != nil {
				return err
			}
			projected++
			continue
		}
		break
	}

	if projected == 0 {
		return p.errorf("expected at least one projected variable or expression")
	}
	return nil
}

// parseProjectionExpression parses '(' expression AS ?var ')'.
func (p *parser) parseProjectionExpression() error {
	if !p.expect('(') {
		return p.errorf("expected '(' to start projection expression")
	}
	if err := p.parseExpression(); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.matchKeyword("AS") {
		return p.errorf("expected AS in projection expression")
	}
	if _, err := p.parseVariable(); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.expect(')') {
		return p.errorf("expected ')' to close projection expression")
	}
	return nil
}

// parseGroupGraphPattern parses '{' ... '}'.
func (p *parser) parseGroupGraphPattern() error {
	p.skipWhitespace()
	if !p.expect('{') {
		return p.errorf("expected '{' to start graph pattern")
	}
	return p.parseGroupGraphPatternBody()
}

// parseGroupGraphPatternBody parses pattern elements until the closing
// brace. The opening brace has already been consumed.
func (p *parser) parseGroupGraphPatternBody() error {
	for {
		p.skipWhitespace()
		if p.atEnd() {
			return p.errorf("unterminated graph pattern")
		}

		ch := p.peek()
		switch {
		case ch == '}':
			p.advance()
			return nil
		case ch == '.':
			p.advance()
		case ch == '{':
			if err := p.parseGroupOrSubquery(); err != nil {
				return err
			}
			// UNION chains bind nested groups.
			for {
				p.skipWhitespace()
				if !p.matchKeyword("UNION") {
					break
				}
				p.skipWhitespace()
				if p.peek() != '{' {
					return p.errorf("expected '{' after UNION")
				}
				if err := p.parseGroupOrSubquery(); err != nil {
					return err
				}
			}
		case p.matchKeyword("FILTER"):
			if err := p.parseFilter(); err != nil {
				return err
			}
		case p.matchKeyword("VALUES"):
			if err := p.parseValues(); err != nil {
				return err
			}
		default:
			if err := p.parseTriple(); err != nil {
				return err
			}
		}
	}
}

// parseGroupOrSubquery parses a braced group that is either a nested
// subquery or a plain group graph pattern.
func (p *parser) parseGroupOrSubquery() error {
	if !p.expect('{') {
		return p.errorf("expected '{'")
	}
	p.skipWhitespace()
	if p.matchKeyword("SELECT") {
		if err := p.parseSelectBody(); err != nil {
			return err
		}
		p.skipWhitespace()
		if !p.expect('}') {
			return p.errorf("expected '}' to close subquery")
		}
		return nil
	}
	return p.parseGroupGraphPatternBody()
}

// parseFilter parses the constraint after the FILTER keyword: NOT EXISTS,
// EXISTS, or a parenthesized expression.
func (p *parser) parseFilter() error {
	p.skipWhitespace()
	if p.matchKeyword("NOT") {
		p.skipWhitespace()
		if !p.matchKeyword("EXISTS") {
			return p.errorf("expected EXISTS after NOT")
		}
		return p.parseGroupGraphPattern()
	}
	if p.matchKeyword("EXISTS") {
		return p.parseGroupGraphPattern()
	}

	p.skipWhitespace()
	if p.peek() != '(' {
		return p.errorf("expected '(' after FILTER")
	}
	p.advance()
	if err := p.parseExpression(); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.expect(')') {
		return p.errorf("expected ')' to close FILTER")
	}
	return nil
}

// parseValues parses VALUES ?var { term* } with an optional trailing dot.
func (p *parser) parseValues() error {
	p.skipWhitespace()
	if _, err := p.parseVariable(); err != nil {
		return err
	}
	p.skipWhitespace()
	if !p.expect('{') {
		return p.errorf("expected '{' after VALUES variable")
	}
	for {
		p.skipWhitespace()
		if p.peek() == '}' {
			p.advance()
			break
		}
		if p.atEnd() {
			return p.errorf("unterminated VALUES block")
		}
		if p.matchKeyword("UNDEF") {
			continue
		}
		if err := p.parseDataTerm(); err != nil {
			return err
		}
	}
	p.skipWhitespace()
	if p.peek() == '.' {
		p.advance()
	}
	return nil
}

// parseTriple parses subject predicate object with an optional trailing dot.
func (p *parser) parseTriple() error {
	if err := p.parseTerm(false); err != nil {
		return err
	}
	if err := p.parseTerm(true); err != nil {
		return err
	}
	if err := p.parseTerm(false); err != nil {
		return err
	}
	p.skipWhitespace()
	if p.peek() == '.' {
		p.advance()
	}
	return nil
}

// parseTerm parses a variable, IRI or literal. In verb position the keyword
// 'a' abbreviates rdf:type.
func (p *parser) parseTerm(verb bool) error {
	p.skipWhitespace()
	ch := p.peek()
	switch {
	case ch == '?' || ch == '$':
		_, err := p.parseVariable()
		return err
	case ch == '<':
		return p.parseIRIRef()
	case verb && ch == 'a' && !isNameChar(p.peekAt(1)):
		p.advance()
		return nil
	case !verb && ch == '"':
		return p.parseLiteral()
	case !verb && (isDigit(ch) || ch == '-' || ch == '+'):
		return p.parseNumeric()
	default:
		return p.errorf("expected term")
	}
}

// parseDataTerm parses the terms allowed in VALUES blocks.
func (p *parser) parseDataTerm() error {
	ch := p.peek()
	switch {
	case ch == '<':
		return p.parseIRIRef()
	case ch == '"':
		return p.parseLiteral()
	case isDigit(ch) || ch == '-' || ch == '+':
		return p.parseNumeric()
	default:
		return p.errorf("expected IRI or literal in VALUES block")
	}
}

func (p *parser) parseVariable() (string, error) {
	p.skipWhitespace()
	ch := p.peek()
	if ch != '?' && ch != '$' {
		return "", p.errorf("expected variable")
	}
	p.advance()
	name := p.readWhile(isNameChar)
	if name == "" {
		return "", p.errorf("expected variable name")
	}
	return name, nil
}

func (p *parser) parseIRIRef() error {
	if !p.expect('<') {
		return p.errorf("expected '<' to start IRI")
	}
	for !p.atEnd() {
		ch := p.peek()
		if ch == '>' {
			p.advance()
			return nil
		}
		if ch == ' ' || ch == '\n' || ch == '\t' || ch == '<' || ch == '"' {
			return p.errorf("invalid character in IRI")
		}
		p.advance()
	}
	return p.errorf("unterminated IRI")
}

// parseLiteral parses a quoted string with an optional datatype or language
// tag.
func (p *parser) parseLiteral() error {
	if !p.expect('"') {
		return p.errorf("expected '\"' to start literal")
	}
	for {
		if p.atEnd() {
			return p.errorf("unterminated string literal")
		}
		ch := p.peek()
		p.advance()
		if ch == '\\' {
			if p.atEnd() {
				return p.errorf("unterminated escape sequence")
			}
			p.advance()
			continue
		}
		if ch == '"' {
			break
		}
	}

	if p.match("^^") {
		return p.parseIRIRef()
	}
	if p.peek() == '@' {
		p.advance()
		if p.readWhile(isLangChar) == "" {
			return p.errorf("expected language tag")
		}
	}
	return nil
}

func (p *parser) parseNumeric() error {
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.advance()
	}
	digits := p.readWhile(isDigit)
	if p.peek() == '.' && isDigit(p.peekAt(1)) {
		p.advance()
		p.readWhile(isDigit)
	}
	if digits == "" && p.pos == start {
		return p.errorf("expected numeric literal")
	}
	if digits == "" && (p.pos == start+1) {
		return p.errorf("expected digits in numeric literal")
	}
	return nil
}

// parseSolutionModifiers parses optional GROUP BY and HAVING clauses.
func (p *parser) parseSolutionModifiers() error {
	p.skipWhitespace()
	if p.matchKeyword("GROUP") {
		p.skipWhitespace()
		if !p.matchKeyword("BY") {
			return p.errorf("expected BY after GROUP")
		}
		grouped := 0
		for {
			p.skipWhitespace()
			ch := p.peek()
			if ch == '?' || ch == '$' {
				if _, err := p.parseVariable(); err != nil {
					return err
				}
				grouped++
				continue
			}
			break
		}
		if grouped == 0 {
			return p.errorf("expected at least one GROUP BY variable")
		}
	}

	p.skipWhitespace()
	if p.matchKeyword("HAVING") {
		constraints := 0
		for {
			p.skipWhitespace()
			if p.peek() != '(' {
				break
			}
			p.advance()
			if err := p.parseExpression(); err != nil {
				return err
			}
			p.skipWhitespace()
			if !p.expect(')') {
				return p.errorf("expected ')' to close HAVING constraint")
			}
			constraints++
		}
		if constraints == 0 {
			return p.errorf("expected at least one HAVING constraint")
		}
	}
	return nil
}

// Expression parsing, precedence climbing: || over && over comparison over
// additive over multiplicative over unary.

func (p *parser) parseExpression() error {
	return p.parseOrExpression()
}

func (p *parser) parseOrExpression() error {
	if err := p.parseAndExpression(); err != nil {
		return err
	}
	for {
		p.skipWhitespace()
		if !p.match("||") {
			return nil
		}
		if err := p.parseAndExpression(); err != nil {
			return err
		}
	}
}

func (p *parser) parseAndExpression() error {
	if err := p.parseRelationalExpression(); err != nil {
		return err
	}
	for {
		p.skipWhitespace()
		if !p.match("&&") {
			return nil
		}
		if err := p.parseRelationalExpression(); err != nil {
			return err
		}
	}
}

func (p *parser) parseRelationalExpression() error {
	if err := p.parseAdditiveExpression(); err != nil {
		return err
	}
	p.skipWhitespace()

	if p.matchKeyword("NOT") {
		p.skipWhitespace()
		if !p.matchKeyword("IN") {
			return p.errorf("expected IN after NOT")
		}
		return p.parseExpressionList()
	}
	if p.matchKeyword("IN") {
		return p.parseExpressionList()
	}

	for _, op := range []string{"<=", ">=", "!=", "=", "<", ">"} {
		if p.match(op) {
			return p.parseAdditiveExpression()
		}
	}
	return nil
}

func (p *parser) parseExpressionList() error {
	p.skipWhitespace()
	if !p.expect('(') {
		return p.errorf("expected '(' to start expression list")
	}
	for {
		p.skipWhitespace()
		if p.peek() == ')' {
			p.advance()
			return nil
		}
		if err := p.parseExpression(); err != nil {
			return err
		}
		p.skipWhitespace()
		if p.peek() == ',' {
			p.advance()
			continue
		}
		if p.peek() == ')' {
			p.advance()
			return nil
		}
		return p.errorf("expected ',' or ')' in expression list")
	}
}

func (p *parser) parseAdditiveExpression() error {
	if err := p.parseMultiplicativeExpression(); err != nil {
		return err
	}
	for {
		p.skipWhitespace()
		ch := p.peek()
		if ch != '+' && ch != '-' {
			return nil
		}
		p.advance()
		if err := p.parseMultiplicativeExpression(); err != nil {
			return err
		}
	}
}

func (p *parser) parseMultiplicativeExpression() error {
	if err := p.parseUnaryExpression(); err != nil {
		return err
	}
	for {
		p.skipWhitespace()
		ch := p.peek()
		if ch != '*' && ch != '/' {
			return nil
		}
		p.advance()
		if err := p.parseUnaryExpression(); err != nil {
			return err
		}
	}
}

func (p *parser) parseUnaryExpression() error {
	p.skipWhitespace()
	ch := p.peek()
	if ch == '!' || ch == '-' || ch == '+' {
		// A sign directly followed by a digit is a numeric literal, not a
		// unary operator; parsePrimaryExpression handles it.
		if ch == '!' || !isDigit(p.peekAt(1)) {
			p.advance()
		}
	}
	return p.parsePrimaryExpression()
}

func (p *parser) parsePrimaryExpression() error {
	p.skipWhitespace()
	ch := p.peek()
	switch {
	case ch == '(':
		p.advance()
		if err := p.parseExpression(); err != nil {
			return err
		}
		p.skipWhitespace()
		if !p.expect(')') {
			return p.errorf("expected ')' to close expression")
		}
		return nil
	case ch == '?' || ch == '$':
		_, err := p.parseVariable()
		return err
	case ch == '<':
		return p.parseIRIRef()
	case ch == '"':
		return p.parseLiteral()
	case isDigit(ch) || ((ch == '-' || ch == '+') && isDigit(p.peekAt(1))):
		return p.parseNumeric()
	case isLetter(ch):
		return p.parseCallOrBoolean()
	default:
		return p.errorf("expected expression")
	}
}

// parseCallOrBoolean parses true/false or a built-in/aggregate call such as
// COUNT ( DISTINCT ?v ), DATATYPE ( ?v ) or STR ( ?v ).
func (p *parser) parseCallOrBoolean() error {
	name := p.readWhile(isNameChar)
	if name == "" {
		return p.errorf("expected identifier")
	}
	upper := strings.ToUpper(name)
	if upper == "TRUE" || upper == "FALSE" {
		return nil
	}

	p.skipWhitespace()
	if !p.expect('(') {
		return p.errorf("expected '(' after function name %q", name)
	}

	p.skipWhitespace()
	if upper == "COUNT" {
		p.matchKeyword("DISTINCT")
		p.skipWhitespace()
		if p.peek() == '*' {
			p.advance()
			p.skipWhitespace()
			if !p.expect(')') {
				return p.errorf("expected ')' after COUNT(*)")
			}
			return nil
		}
	}

	if p.peek() == ')' {
		p.advance()
		return nil
	}
	for {
		if err := p.parseExpression(); err != nil {
			return err
		}
		p.skipWhitespace()
		if p.peek() == ',' {
			p.advance()
			continue
		}
		break
	}
	p.skipWhitespace()
	if !p.expect(')') {
		return p.errorf("expected ')' to close call to %q", name)
	}
	return nil
}

// Low-level scanning helpers.

func (p *parser) peek() byte {
	if p.pos >= p.length {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) peekAt(offset int) byte {
	if p.pos+offset >= p.length {
		return 0
	}
	return p.input[p.pos+offset]
}

func (p *parser) advance() {
	if p.pos < p.length {
		p.pos++
	}
}

func (p *parser) atEnd() bool { return p.pos >= p.length }

func (p *parser) expect(ch byte) bool {
	p.skipWhitespace()
	if p.peek() != ch {
		return false
	}
	p.advance()
	return true
}

func (p *parser) skipWhitespace() {
	for !p.atEnd() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// match consumes the exact string if it is next.
func (p *parser) match(s string) bool {
	p.skipWhitespace()
	if p.pos+len(s) > p.length {
		return false
	}
	if p.input[p.pos:p.pos+len(s)] != s {
		return false
	}
	p.pos += len(s)
	return true
}

// matchKeyword consumes a case-insensitive keyword, requiring a word
// boundary after it.
func (p *parser) matchKeyword(keyword string) bool {
	p.skipWhitespace()
	end := p.pos + len(keyword)
	if end > p.length {
		return false
	}
	if !strings.EqualFold(p.input[p.pos:end], keyword) {
		return false
	}
	if end < p.length && isNameChar(p.input[end]) {
		return false
	}
	p.pos = end
	return true
}

func (p *parser) readWhile(predicate func(byte) bool) string {
	start := p.pos
	for !p.atEnd() && predicate(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("sparql: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isLangChar(ch byte) bool {
	return isLetter(ch) || ch == '-'
}
