package arity_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/arity"
	"github.com/quill-lang/quill/internal/atom"
)

func op(name string, in, out int) atom.Op {
	return atom.Op{Name: name, In: in, Out: out, Known: true, Handler: func(*atom.Environment) {}}
}

func unknownOp(name string) atom.Op {
	return atom.Op{Name: name, Known: false, Handler: func(*atom.Environment) {}}
}

func TestAnalyzeLiterals(t *testing.T) {
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{atom.Num(1), atom.Num(2)}})
	want := arity.Arity{In: 0, Out: 2, Known: true}
	if got != want {
		t.Fatalf("Analyze(literals) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeOpChain(t *testing.T) {
	// `1 +` needs one more input than the literal supplies: (1,1).
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{atom.Num(1), op("+", 2, 1)}})
	want := arity.Arity{In: 1, Out: 1, Known: true}
	if got != want {
		t.Fatalf("Analyze(1 +) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeFunctionParamsSeedIn(t *testing.T) {
	// The two params seed In; the body starts on an empty operand stack, so
	// `+` demands two more inputs on top of them: (2+2, 1).
	fn := atom.Function{Params: []string{"a", "b"}, Body: []atom.Atom{op("+", 2, 1)}}
	got := arity.Analyze(fn)
	want := arity.Arity{In: 4, Out: 1, Known: true}
	if got != want {
		t.Fatalf("Analyze(fn a b = +) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeUnknownOpPropagates(t *testing.T) {
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{unknownOp("splat")}})
	if got.Known {
		t.Fatalf("Analyze with an unknown-arity op = %+v, want Known=false", got)
	}
}

func TestAnalyzeCondMatchingBranches(t *testing.T) {
	// `dup 2 <= [ drop 1 ] [ 1 - dup 1 - fib swap fib + ] cond`-shaped
	// bodies are exercised end to end in internal/pipeline; here we check
	// the minimal shape: two equal-arity branches plus the +1 for the bool.
	trueBranch := atom.Quotation{Body: []atom.Atom{atom.Num(1)}}
	elseBranch := atom.Quotation{Body: []atom.Atom{atom.Num(2)}}
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{trueBranch, elseBranch, op("cond", 0, 0)}})
	want := arity.Arity{In: 1, Out: 1, Known: true}
	if got != want {
		t.Fatalf("Analyze(cond, matching branches) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeCondOneUnknownBranch(t *testing.T) {
	trueBranch := atom.Quotation{Body: []atom.Atom{atom.Num(1)}}
	elseBranch := atom.Quotation{Body: []atom.Atom{unknownOp("splat")}}
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{trueBranch, elseBranch, op("cond", 0, 0)}})
	want := arity.Arity{In: 1, Out: 1, Known: true}
	if got != want {
		t.Fatalf("Analyze(cond, one unknown branch) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeCondBothUnknownIsUnknown(t *testing.T) {
	trueBranch := atom.Quotation{Body: []atom.Atom{unknownOp("splat")}}
	elseBranch := atom.Quotation{Body: []atom.Atom{unknownOp("splat")}}
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{trueBranch, elseBranch, op("cond", 0, 0)}})
	if got.Known {
		t.Fatalf("Analyze(cond, both branches unknown) = %+v, want Known=false", got)
	}
}

func TestAnalyzeKeepQuotationFromBubblesort(t *testing.T) {
	// `[>]` used by `fix` in the bubblesort fixture: consumes 2, produces 1.
	got := arity.Analyze(atom.Quotation{Body: []atom.Atom{op(">", 2, 1)}})
	want := arity.Arity{In: 2, Out: 1, Known: true}
	if got != want {
		t.Fatalf("Analyze([>]) = %+v, want %+v", got, want)
	}
}
