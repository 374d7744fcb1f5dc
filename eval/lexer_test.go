package eval

import (
	"testing"

	"github.com/howerj/q"
)

func TestLexNumberWithFraction(t *testing.T) {
	lx := newLexer("3.14159", Variables{}, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokNumber || tok.num != q.Pi {
		t.Errorf("lexed %v, want number %d", tok, q.Pi)
	}
}

func TestLexVariableTakesPrecedenceOverOperatorName(t *testing.T) {
	vars := Variables{}
	vars.Set("min", q.FromInt32(99))
	lx := newLexer("min", vars, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokNumber || tok.num != q.FromInt32(99) {
		t.Errorf("lexed %v, want the variable's value", tok)
	}
}

func TestLexPropertyPredicateName(t *testing.T) {
	lx := newLexer("odd?", Variables{}, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokOperator || tok.op.Name != "odd?" {
		t.Errorf("lexed %v, want operator \"odd?\"", tok)
	}
}

func TestLexTwoCharPunctuationPreferred(t *testing.T) {
	lx := newLexer("<=1", Variables{}, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokOperator || tok.op.Name != "<=" {
		t.Errorf("lexed %v, want operator \"<=\"", tok)
	}
}

func TestLexHiddenOperatorRejectedWhenFiltered(t *testing.T) {
	lx := newLexer("lsr", Variables{}, true)
	if _, err := lx.next(); err == nil {
		t.Error("expected an error resolving a hidden identifier with hideInternals set")
	}

	lx = newLexer("lsr", Variables{}, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokOperator || tok.op.Name != "lsr" {
		t.Errorf("lexed %v, want operator \"lsr\"", tok)
	}
}

func TestLexUnknownCharacter(t *testing.T) {
	lx := newLexer("@", Variables{}, false)
	if _, err := lx.next(); err == nil {
		t.Error("expected an error for an unrecognised character")
	}
}

func TestLexEndOfInput(t *testing.T) {
	lx := newLexer("   ", Variables{}, false)
	tok, err := lx.next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.kind != tokEnd {
		t.Errorf("lexed %v, want tokEnd", tok)
	}
}
