package eval

import "github.com/quill-lang/quill/internal/atom"

func registerStack(reg map[string]atom.Op) {
	reg["drop"] = newOp("drop", func(env *atom.Environment) {
		env.Pop()
	})
	reg["swap"] = newOp("swap", func(env *atom.Environment) {
		b := env.Pop()
		a := env.Pop()
		env.Push(b)
		env.Push(a)
	})
	reg["rot3"] = newOp("rot3", func(env *atom.Environment) {
		c := env.Pop()
		b := env.Pop()
		a := env.Pop()
		env.Push(b)
		env.Push(c)
		env.Push(a)
	})
	reg["dup"] = newOp("dup", func(env *atom.Environment) {
		a := env.Pop()
		env.Push(a)
		env.Push(a)
	})
}
