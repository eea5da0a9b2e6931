package eval

import (
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
)

func popNum(env *atom.Environment, op string) atom.Num {
	a := env.Pop()
	n, ok := a.(atom.Num)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a number, got %s", op, a.String())
	}
	return n
}

func popBool(env *atom.Environment, op string) atom.Bool {
	a := env.Pop()
	b, ok := a.(atom.Bool)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a boolean, got %s", op, a.String())
	}
	return b
}

func popList(env *atom.Environment, op string) atom.List {
	a := env.Pop()
	l, ok := a.(atom.List)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a list, got %s", op, a.String())
	}
	return l
}

func popSymbol(env *atom.Environment, op string) atom.Symbol {
	a := env.Pop()
	s, ok := a.(atom.Symbol)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a symbol, got %s", op, a.String())
	}
	return s
}

func popQuotation(env *atom.Environment, op string) atom.Quotation {
	a := env.Pop()
	q, ok := a.(atom.Quotation)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a quotation, got %s", op, a.String())
	}
	return q
}

// popCallable pops an atom that invokeCallable can run: a Quotation or a
// Function. Used by combinators (repeat, keep, map, reduce_inner) whose
// operand may be either shape.
func popCallable(env *atom.Environment, op string) atom.Atom {
	a := env.Pop()
	switch a.(type) {
	case atom.Quotation, atom.Function:
		return a
	default:
		diagnostics.Raise(diagnostics.PhaseType, "%q expected a callable (quotation or function), got %s", op, a.String())
		panic("unreachable")
	}
}
