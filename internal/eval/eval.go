// Package eval implements Quill's evaluator: the main atom dispatch
// (spec.md §4.4), the built-in operation registry, and the
// parameter-binding protocol for Function calls. Op handlers and the
// dispatch loop live in one package, mirroring the teacher's own
// internal/evaluator package, which keeps evaluator.go and every
// builtins_*.go file together rather than splitting built-ins into a
// package the evaluator would need to call back into (an avoidable import
// cycle: builtins such as map/keep/list must themselves invoke EvalAtom).
package eval

import (
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
)

// EvalAtom interprets a single atom against env, per spec.md §4.4.
func EvalAtom(env *atom.Environment, a atom.Atom) {
	// 1. Lazy capture short-circuit.
	if env.Lazy() {
		switch a.(type) {
		case atom.QuotationStart:
			env.PushFrame(true)
			return
		case atom.QuotationEnd:
			closeQuotation(env)
			return
		default:
			env.Push(a)
			return
		}
	}

	// 2. Arity pre-check: only Op atoms carry a static arity; Quotation and
	// Function values merely push themselves regardless of what their
	// body will later demand.
	if op, ok := a.(atom.Op); ok && op.Known {
		if len(env.Top().Operands) < op.In {
			diagnostics.Raise(diagnostics.PhaseArity,
				"operation %q requires %d input(s), stack has %d", op.Name, op.In, len(env.Top().Operands))
		}
	}

	// 3. Dispatch by variant.
	switch v := a.(type) {
	case atom.Bool, atom.Num, atom.Symbol, atom.Quotation, atom.Function:
		env.Push(a)
	case atom.Op:
		v.Handler(env)
	case atom.QuotationStart:
		env.PushFrame(true)
	case atom.QuotationEnd:
		closeQuotation(env)
	case atom.DefVar:
		evalDefVar(env)
	case atom.DefVarLiteral:
		evalDefVarLiteral(env)
	case atom.DefFnLiteral:
		evalDefFnLiteral(env)
	case atom.Call:
		callee := env.Pop()
		invokeCallable(env, callee)
	case atom.Plain:
		evalPlain(env, v)
	default:
		diagnostics.Raise(diagnostics.PhaseValue, "no evaluation rule for atom %s", a.String())
	}
}

func closeQuotation(env *atom.Environment) {
	top := env.PopFrame()
	env.Push(atom.Quotation{Body: top.Operands})
}

func evalDefVar(env *atom.Environment) {
	sym := popSymbol(env, "let/fn")
	quo := popQuotation(env, "let/fn")
	value := evalToSingleAtom(env, quo.Body)
	env.Bind(sym.Name, value)
}

func evalDefVarLiteral(env *atom.Environment) {
	sym := popSymbol(env, "let")
	value := env.Pop()
	env.Bind(sym.Name, value)
}

func evalDefFnLiteral(env *atom.Environment) {
	sym := popSymbol(env, "fn")
	quo := popQuotation(env, "fn")
	env.Bind(sym.Name, atom.Function{Params: nil, Body: quo.Body})
}

func evalPlain(env *atom.Environment, p atom.Plain) {
	value, ok := env.Find(p.Name)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseName, "unresolved identifier %q", p.Name)
	}
	if fn, isFn := value.(atom.Function); isFn {
		callFunction(env, fn)
		return
	}
	env.Push(value)
}

// evalToSingleAtom evaluates body in a fresh non-lazy frame and requires
// that it leave exactly one atom on that frame's operand stack, per the
// `let`/`fn` definition-form semantics in spec.md §4.1/§4.4.
func evalToSingleAtom(env *atom.Environment, body []atom.Atom) atom.Atom {
	env.PushFrame(false)
	for _, a := range body {
		EvalAtom(env, a)
	}
	top := env.PopFrame()
	if len(top.Operands) != 1 {
		diagnostics.Raise(diagnostics.PhaseValue,
			"definition expression must evaluate to exactly one value, got %d", len(top.Operands))
	}
	return top.Operands[0]
}

// invokeCallable runs a Quotation directly in the current frame, or a
// Function through the parameter-binding protocol. Anything else is a
// fatal value error: call on non-callable.
func invokeCallable(env *atom.Environment, callee atom.Atom) {
	switch c := callee.(type) {
	case atom.Quotation:
		for _, a := range c.Body {
			EvalAtom(env, a)
		}
	case atom.Function:
		callFunction(env, c)
	default:
		diagnostics.Raise(diagnostics.PhaseValue, "cannot call non-callable atom %s", callee.String())
	}
}

// callFunction implements the parameter-binding protocol of spec.md §4.4:
// a zero-parameter function runs in the current frame; otherwise its
// parameters are popped and bound in a dedicated frame whose operand stack
// is concatenated back onto the caller's on return.
func callFunction(env *atom.Environment, fn atom.Function) {
	if len(fn.Params) == 0 {
		for _, a := range fn.Body {
			EvalAtom(env, a)
		}
		return
	}
	env.BindParams(fn.Params)
	for _, a := range fn.Body {
		EvalAtom(env, a)
	}
	env.UnbindParams()
}

// runLoopLike runs body with LoopLike/ForElse set for its duration,
// restoring LoopLike to false on exit, per the flag contract in spec.md
// §5: "a loop-like combinator sets loop_like=true and for_else=true
// before running its body, and restores loop_like=false on exit."
func runLoopLike(env *atom.Environment, body func()) {
	env.LoopLike = true
	env.ForElse = true
	env.UsingForElse = false
	body()
	env.LoopLike = false
}
