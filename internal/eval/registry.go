package eval

import (
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/config"
)

var builtins = buildRegistry()

// newOp builds the atom.Op for a built-in name from config.BuiltinArity,
// the same table config.IsReserved reads, so the reserved-word set and the
// registered builtins' static arities can never drift apart. Every register*
// function in this package goes through newOp rather than writing its own
// In/Out/Known literals.
func newOp(name string, handler atom.Handler) atom.Op {
	a, ok := config.BuiltinArity[name]
	if !ok {
		panic("eval: no config.BuiltinArity entry for built-in " + name)
	}
	return atom.Op{Name: name, Handler: handler, In: a.In, Out: a.Out, Known: a.Known}
}

func buildRegistry() map[string]atom.Op {
	reg := make(map[string]atom.Op)
	registerArith(reg)
	registerBool(reg)
	registerStack(reg)
	registerCombinators(reg)
	registerIO(reg)
	return reg
}

// Lookup returns the built-in Op named name, if any. internal/parser calls
// this to resolve an identifier lexeme against the closed built-in set
// (spec.md §4.1 rule 5), which is why eval has no dependency on parser:
// parser depends on eval, not the reverse.
func Lookup(name string) (atom.Op, bool) {
	op, ok := builtins[name]
	return op, ok
}
