package eval

import "github.com/quill-lang/quill/internal/atom"

func registerBool(reg map[string]atom.Op) {
	reg["and"] = newOp("and", func(env *atom.Environment) {
		b := popBool(env, "and")
		a := popBool(env, "and")
		env.Push(atom.Bool(bool(a) && bool(b)))
	})
	reg["or"] = newOp("or", func(env *atom.Environment) {
		b := popBool(env, "or")
		a := popBool(env, "or")
		env.Push(atom.Bool(bool(a) || bool(b)))
	})
	reg["not"] = newOp("not", func(env *atom.Environment) {
		a := popBool(env, "not")
		env.Push(atom.Bool(!bool(a)))
	})

	// cond has a dynamic arity (the analyzer special-cases it instead), so
	// config.BuiltinArity registers it Known=false: the evaluator's arity
	// pre-check must not try to consult a static In for it.
	reg["cond"] = newOp("cond", func(env *atom.Environment) {
		elseBranch := popQuotation(env, "cond")
		trueBranch := popQuotation(env, "cond")
		cond := popBool(env, "cond")
		if bool(cond) {
			invokeCallable(env, trueBranch)
		} else {
			invokeCallable(env, elseBranch)
		}
	})

	reg["if"] = newOp("if", func(env *atom.Environment) {
		quo := popQuotation(env, "if")
		cond := popBool(env, "if")
		if env.LoopLike {
			env.UsingForElse = true
			if bool(cond) {
				env.ForElse = false
			}
		}
		if bool(cond) {
			invokeCallable(env, quo)
		}
	})
}
