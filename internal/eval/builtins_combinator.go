package eval

import (
	"github.com/quill-lang/quill/internal/arity"
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
)

func registerCombinators(reg map[string]atom.Op) {
	reg["list"] = newOp("list", handleList)
	reg["splat"] = newOp("splat", handleSplat)
	reg["at"] = newOp("at", handleAt)
	reg["map"] = newOp("map", handleMap)
	reg["reduce_inner"] = newOp("reduce_inner", handleReduceInner)
	reg["repeat"] = newOp("repeat", handleRepeat)
	reg["for_else"] = newOp("for_else", handleForElse)
	reg["for_if"] = newOp("for_if", handleForIf)
	reg["keep"] = newOp("keep", handleKeep)
	reg["get"] = newOp("get", handleGet)
}

// handleList pops a quotation, evaluates it in a fresh non-lazy frame, and
// wraps the resulting operand stack as a List pushed onto the parent
// frame.
func handleList(env *atom.Environment) {
	quo := popQuotation(env, "list")
	env.PushFrame(false)
	for _, a := range quo.Body {
		EvalAtom(env, a)
	}
	frame := env.PopFrame()
	env.Push(atom.List{Items: frame.Operands})
}

// handleSplat pops a list and appends all its atoms onto the current
// operand stack.
func handleSplat(env *atom.Environment) {
	l := popList(env, "splat")
	env.PushMany(l.Items)
}

// handleAt implements `list n -> list[n]`.
func handleAt(env *atom.Environment) {
	n := popNum(env, "at")
	l := popList(env, "at")
	idx := int(n)
	if idx < 0 || idx >= len(l.Items) {
		diagnostics.Raise(diagnostics.PhaseValue, "at: index %d out of range for list of length %d", idx, len(l.Items))
	}
	env.Push(l.Items[idx])
}

// handleMap pops a quotation then a list; for each element it evaluates
// the quotation with the element as sole input in a fresh non-lazy frame
// and takes the top of that frame as the mapped value.
func handleMap(env *atom.Environment) {
	quo := popCallable(env, "map")
	l := popList(env, "map")

	results := make([]atom.Atom, 0, len(l.Items))
	runLoopLike(env, func() {
		for _, item := range l.Items {
			env.PushFrame(false)
			env.Push(item)
			invokeCallable(env, quo)
			frame := env.PopFrame()
			if len(frame.Operands) != 1 {
				diagnostics.Raise(diagnostics.PhaseValue,
					"map: quotation must leave exactly one value, left %d", len(frame.Operands))
			}
			results = append(results, frame.Operands[0])
		}
	})

	env.Push(atom.List{Items: results})
}

// handleReduceInner pops a quotation then a list; pushes a new frame,
// pushes the first list element, then for each remaining element pushes
// it and evaluates the quotation. The resulting frame's operand stack
// becomes the returned list. Empty input yields an empty list.
func handleReduceInner(env *atom.Environment) {
	quo := popCallable(env, "reduce_inner")
	l := popList(env, "reduce_inner")

	runLoopLike(env, func() {
		env.PushFrame(false)
		if len(l.Items) > 0 {
			env.Push(l.Items[0])
			for _, item := range l.Items[1:] {
				env.Push(item)
				invokeCallable(env, quo)
			}
		}
		frame := env.PopFrame()
		env.Push(atom.List{Items: frame.Operands})
	})
}

// handleRepeat pops a count then a callable and evaluates the callable
// that many times in the current frame.
func handleRepeat(env *atom.Environment) {
	count := popNum(env, "repeat")
	callee := popCallable(env, "repeat")

	runLoopLike(env, func() {
		for i := atom.Num(0); i < count; i++ {
			invokeCallable(env, callee)
		}
	})
}

// handleForElse runs its quotation only if ForElse is true; handleForIf
// only if it is false. Both require that an `if` has already run inside
// the enclosing loop-like body (UsingForElse).
func handleForElse(env *atom.Environment) {
	quo := popQuotation(env, "for_else")
	if !env.UsingForElse {
		diagnostics.Raise(diagnostics.PhaseCombinator, "for_else used outside a loop body with an if")
	}
	if env.ForElse {
		invokeCallable(env, quo)
	}
}

func handleForIf(env *atom.Environment) {
	quo := popQuotation(env, "for_if")
	if !env.UsingForElse {
		diagnostics.Raise(diagnostics.PhaseCombinator, "for_if used outside a loop body with an if")
	}
	if !env.ForElse {
		invokeCallable(env, quo)
	}
}

// handleKeep pops a callable, computes its arity via the analyzer (fatal
// if unknown), copies the top `in` atoms, runs the callable in a scratch
// frame seeded with that copy, and pushes its single result -- leaving the
// original inputs intact under the result.
func handleKeep(env *atom.Environment) {
	callee := popCallable(env, "keep")

	a := arity.Analyze(callee)
	if !a.Known {
		diagnostics.Raise(diagnostics.PhaseCombinator, "keep: callable has unknown arity")
	}

	top := env.Top()
	n := len(top.Operands)
	if n < a.In {
		diagnostics.Raise(diagnostics.PhaseArity, "keep: callable requires %d input(s), stack has %d", a.In, n)
	}
	copied := append([]atom.Atom(nil), top.Operands[n-a.In:]...)

	env.PushFrame(false)
	env.PushMany(copied)
	invokeCallable(env, callee)
	scratch := env.PopFrame()
	if len(scratch.Operands) != 1 {
		diagnostics.Raise(diagnostics.PhaseValue,
			"keep: callable must leave exactly one value, left %d", len(scratch.Operands))
	}
	env.Push(scratch.Operands[0])
}

// handleGet pops a Symbol and looks up the binding. A Function's body is
// pushed as a bare Quotation, dropping its parameter metadata; any other
// binding is pushed directly.
func handleGet(env *atom.Environment) {
	sym := popSymbol(env, "get")
	value, ok := env.Find(sym.Name)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseName, "get: unresolved identifier %q", sym.Name)
	}
	if fn, isFn := value.(atom.Function); isFn {
		env.Push(atom.Quotation{Body: fn.Body})
		return
	}
	env.Push(value)
}
