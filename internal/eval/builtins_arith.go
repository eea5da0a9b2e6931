package eval

import (
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
)

// arithHandler builds a (2,1) arithmetic/comparison handler. Both operands
// are popped as Num, b (top of stack) last, so `a b op` computes a op b.
func arithHandler(name string, fn func(a, b atom.Num) atom.Atom) atom.Handler {
	return func(env *atom.Environment) {
		b := popNum(env, name)
		a := popNum(env, name)
		env.Push(fn(a, b))
	}
}

func registerArith(reg map[string]atom.Op) {
	add := func(name string, fn func(a, b atom.Num) atom.Atom) {
		reg[name] = newOp(name, arithHandler(name, fn))
	}

	add("+", func(a, b atom.Num) atom.Atom { return a + b })
	add("-", func(a, b atom.Num) atom.Atom { return a - b })
	add("*", func(a, b atom.Num) atom.Atom { return a * b })
	add("/", func(a, b atom.Num) atom.Atom {
		if b == 0 {
			diagnostics.Raise(diagnostics.PhaseValue, "division by zero")
		}
		return a / b
	})
	add("%", func(a, b atom.Num) atom.Atom {
		if b == 0 {
			diagnostics.Raise(diagnostics.PhaseValue, "modulus by zero")
		}
		return a % b
	})
	add("<", func(a, b atom.Num) atom.Atom { return atom.Bool(a < b) })
	add(">", func(a, b atom.Num) atom.Atom { return atom.Bool(a > b) })
	add("<=", func(a, b atom.Num) atom.Atom { return atom.Bool(a <= b) })
	add(">=", func(a, b atom.Num) atom.Atom { return atom.Bool(a >= b) })
	add("==", func(a, b atom.Num) atom.Atom { return atom.Bool(a == b) })
	add("!=", func(a, b atom.Num) atom.Atom { return atom.Bool(a != b) })
}
