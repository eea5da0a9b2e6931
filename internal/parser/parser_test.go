package parser_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/parser"
)

func kinds(atoms []atom.Atom) []atom.Kind {
	out := make([]atom.Kind, len(atoms))
	for i, a := range atoms {
		out[i] = a.Kind()
	}
	return out
}

func TestParseCommentLine(t *testing.T) {
	if got := parser.Parse("  # a comment"); got != nil {
		t.Fatalf("Parse(comment) = %v, want nil", got)
	}
}

func TestParseFreeExpression(t *testing.T) {
	got := parser.Parse("1 1 +")
	want := []atom.Kind{atom.NumKind, atom.NumKind, atom.OpKind}
	if k := kinds(got); !equalKinds(k, want) {
		t.Fatalf("kinds = %v, want %v", k, want)
	}
	if n, ok := got[0].(atom.Num); !ok || n != 1 {
		t.Fatalf("got[0] = %v, want Num(1)", got[0])
	}
}

func TestParseQuotationBrackets(t *testing.T) {
	got := parser.Parse("[ 1 1 + ]")
	want := []atom.Kind{atom.QuotationStartKind, atom.NumKind, atom.NumKind, atom.OpKind, atom.QuotationEndKind}
	if k := kinds(got); !equalKinds(k, want) {
		t.Fatalf("kinds = %v, want %v", k, want)
	}
}

func TestParseLetForm(t *testing.T) {
	got := parser.Parse("let a = 1 1 +")
	if len(got) != 3 {
		t.Fatalf("Parse(let) = %v, want 3 atoms", got)
	}
	quo, ok := got[0].(atom.Quotation)
	if !ok || len(quo.Body) != 3 {
		t.Fatalf("got[0] = %v, want a 3-atom quotation", got[0])
	}
	sym, ok := got[1].(atom.Symbol)
	if !ok || sym.Name != "a" {
		t.Fatalf("got[1] = %v, want Symbol(a)", got[1])
	}
	if got[2].Kind() != atom.DefVarKind {
		t.Fatalf("got[2] kind = %v, want DefVarKind", got[2].Kind())
	}
}

func TestParseFnForm(t *testing.T) {
	got := parser.Parse("fn inc a = a 1 +")
	if len(got) != 3 {
		t.Fatalf("Parse(fn) = %v, want 3 atoms", got)
	}
	quo, ok := got[0].(atom.Quotation)
	if !ok || len(quo.Body) != 1 {
		t.Fatalf("got[0] = %v, want a 1-atom quotation wrapping a Function", got[0])
	}
	fn, ok := quo.Body[0].(atom.Function)
	if !ok || len(fn.Params) != 1 || fn.Params[0] != "a" {
		t.Fatalf("quo.Body[0] = %v, want Function([a], ...)", quo.Body[0])
	}
}

func TestParseFnZeroParams(t *testing.T) {
	got := parser.Parse("fn inc = 1 +")
	quo := got[0].(atom.Quotation)
	fn := quo.Body[0].(atom.Function)
	if len(fn.Params) != 0 {
		t.Fatalf("fn.Params = %v, want empty", fn.Params)
	}
}

func TestParseBareLetKeywordFallsBackToLiteral(t *testing.T) {
	// "let" with no well-formed `let NAME = EXPR` shape behind it resolves
	// via the token grammar's rule 5 instead of the definition-form lowering.
	got := parser.Parse("1 'x let")
	if len(got) != 3 {
		t.Fatalf("Parse = %v, want 3 atoms", got)
	}
	if got[2].Kind() != atom.DefVarLiteralKind {
		t.Fatalf("got[2] kind = %v, want DefVarLiteralKind", got[2].Kind())
	}
}

func TestParseBuiltinResolvesToOp(t *testing.T) {
	got := parser.Parse("dup")
	if len(got) != 1 || got[0].Kind() != atom.OpKind {
		t.Fatalf("Parse(dup) = %v, want a single Op atom", got)
	}
}

func TestParseUnrecognizedOperatorIsFatal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected an unrecognized operator to panic")
		}
	}()
	parser.Parse("@#")
}

func TestParseIsPure(t *testing.T) {
	input := "fn fib = dup 2 <= [ drop 1 ] [ 1 - dup 1 - fib swap fib + ] cond"
	a := kinds(parser.Parse(input))
	b := kinds(parser.Parse(input))
	if !equalKinds(a, b) {
		t.Fatalf("Parse(%q) is not pure: %v vs %v", input, a, b)
	}
}

func equalKinds(a, b []atom.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
