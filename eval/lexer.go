package eval

import "github.com/howerj/q"

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
	tokEnd
)

type token struct {
	kind tokenKind
	num  q.Q
	op   *Operator
}

// lexer turns expression text into a stream of tokens: skips whitespace,
// resolves identifiers first as a variable then as an operator name, and
// matches punctuation against the longest known operator prefix (two
// characters before one).
type lexer struct {
	src           string
	pos           int
	vars          Variables
	hideInternals bool
}

func newLexer(src string, vars Variables, hideInternals bool) *lexer {
	return &lexer{src: src, vars: vars, hideInternals: hideInternals}
}

// visible reports whether op should be resolvable by the lexer: hidden
// operators (CORDIC-adjacent internals like lsr, copysign) disappear from
// both identifier and punctuation lookup when hideInternals is set.
func (l *lexer) visible(op *Operator, ok bool) (*Operator, bool) {
	if ok && op.Hidden && l.hideInternals {
		return nil, false
	}
	return op, ok
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentTail(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\n') {
		l.pos++
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEnd}, nil
	}

	switch c := l.src[l.pos]; {
	case c == '(':
		l.pos++
		return token{kind: tokLParen}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen}, nil
	case isDigit(c):
		return l.lexNumber()
	case isIdentStart(c):
		return l.lexIdent()
	default:
		return l.lexPunct()
	}
}

func (l *lexer) lexNumber() (token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	text := l.src[start:l.pos]
	v, err := q.ParseBase(text, 10)
	if err != nil {
		return token{}, &SyntaxError{Message: "bad numeric literal " + text + ": " + err.Error()}
	}
	return token{kind: tokNumber, num: v}, nil
}

func (l *lexer) lexIdent() (token, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && isIdentTail(l.src[l.pos]) {
		l.pos++
	}
	// The property predicates (int?, odd?, even?, pos?, neg?) carry a
	// trailing '?' as part of their name.
	if l.pos < len(l.src) && l.src[l.pos] == '?' {
		l.pos++
	}
	name := l.src[start:l.pos]

	if v, ok := l.vars.Get(name); ok {
		return token{kind: tokNumber, num: v}, nil
	}
	if op, ok := l.visible(lookupOperator(name)); ok {
		return token{kind: tokOperator, op: op}, nil
	}
	return token{}, &SyntaxError{Message: "unknown identifier " + name}
}

func (l *lexer) lexPunct() (token, error) {
	rest := l.src[l.pos:]
	if len(rest) >= 2 {
		if op, ok := l.visible(lookupOperator(rest[:2])); ok {
			l.pos += 2
			return token{kind: tokOperator, op: op}, nil
		}
	}
	if op, ok := l.visible(lookupOperator(rest[:1])); ok {
		l.pos++
		return token{kind: tokOperator, op: op}, nil
	}
	return token{}, &SyntaxError{Message: "unexpected character " + string(rest[0])}
}
