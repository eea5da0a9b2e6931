// Package pipeline provides Quill's two external entry points
// (spec.md §6): EvalLine and EvalProgram. It exists to break the import
// cycle that would otherwise exist between internal/parser (which resolves
// identifiers against internal/eval's built-in registry) and
// internal/eval (whose evaluator would otherwise need to call back into
// the parser to re-tokenize quotations) -- it is the one package that may
// depend on both. This mirrors the role of the teacher's own
// internal/pipeline package, which centralizes the Processor chain
// (lexer -> parser -> analyzer -> evaluator) behind a single Pipeline.Run
// entry point; Quill's pipeline is far thinner than that multi-stage
// compiler chain (there is no separate analysis pass -- arity analysis
// runs on demand, inside `keep`, not as a pipeline stage), so it is
// expressed as plain functions (EvalLine, EvalProgram, EvalLines) rather
// than a Processor interface.
package pipeline

import (
	"strings"

	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/eval"
	"github.com/quill-lang/quill/internal/parser"
)

// EvalLine parses one line and evaluates each resulting atom against env
// in order, mutating env. It recovers any *diagnostics.Fault raised during
// parsing or evaluation and returns it as an ordinary error, so a REPL
// driver can report the fault and continue the session.
func EvalLine(line string, env *atom.Environment) (err error) {
	defer diagnostics.Recover(&err)

	for _, a := range parser.Parse(line) {
		eval.EvalAtom(env, a)
	}
	return nil
}

// EvalProgram creates a fresh environment, splits text on newlines, and
// runs each line in order. It stops at the first line that raises a
// *diagnostics.Fault and returns the partially-evaluated environment
// alongside the error, so a program-file driver can still report the
// frame's operand stack up to the point of failure.
func EvalProgram(text string) (*atom.Environment, error) {
	env := atom.NewEnvironment()
	if err := EvalLines(text, env); err != nil {
		return env, err
	}
	return env, nil
}

// EvalLines splits text on newlines and runs each line against env in
// order, stopping at the first fault. Unlike EvalProgram it takes a
// caller-supplied environment, so a driver that needs to configure env
// first (e.g. cmd/quill setting Environment.MaxDepth from its -depth flag)
// can still reuse the same line-splitting behavior as EvalProgram.
func EvalLines(text string, env *atom.Environment) error {
	for _, line := range strings.Split(text, "\n") {
		if err := EvalLine(line, env); err != nil {
			return err
		}
	}
	return nil
}
