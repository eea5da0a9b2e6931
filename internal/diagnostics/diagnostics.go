// Package diagnostics defines the fatal-error taxonomy shared by the
// parser, the arity analyzer, and the evaluator. Every semantic error in
// Quill is fatal: a Fault is raised with panic and is only ever caught at
// a line or program boundary (internal/pipeline), mirroring the
// panic/recover split between lisp1_5's Error/EOF panic values and its
// top-level input/handler loop.
package diagnostics

import "fmt"

// Phase names the category of a Fault, following the taxonomy in spec.md §7.
type Phase string

const (
	PhaseParse      Phase = "parse"
	PhaseArity      Phase = "arity"
	PhaseType       Phase = "type"
	PhaseName       Phase = "name"
	PhaseValue      Phase = "value"
	PhaseCombinator Phase = "combinator"
)

// Fault is the panic value raised for every fatal condition. It implements
// error so a recovered Fault can be handled like any other Go error once
// it crosses a recover() boundary.
type Fault struct {
	Phase   Phase
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s error: %s", f.Phase, f.Message)
}

// Raise panics with a *Fault built from format and args. There is no
// return value: callers invoke it for its control-flow effect, e.g.
//
//	if len(stack) < n {
//		diagnostics.Raise(diagnostics.PhaseArity, "operation %q requires %d inputs, stack has %d", name, n, len(stack))
//	}
func Raise(phase Phase, format string, args ...interface{}) {
	panic(&Fault{Phase: phase, Message: fmt.Sprintf(format, args...)})
}

// Recover is intended for use in a deferred call at a line or program
// evaluation boundary:
//
//	func EvalLine(line string, env *atom.Environment) (err error) {
//		defer diagnostics.Recover(&err)
//		...
//	}
//
// A *Fault panic is captured into *out; any other panic value is
// re-raised, since it signals a genuine implementation bug rather than a
// language-level fault.
func Recover(out *error) {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*out = fault
}
