// Command quill is Quill's interactive read-eval-print loop and
// program-file driver, the thin external collaborator spec.md §1 and §6
// describe: it consumes only the eval_line/eval_program entry points in
// internal/pipeline and otherwise owns none of the language's semantics.
//
// The REPL loop (read a line, evaluate, print the resulting stack, recover
// a fault and keep going) is grounded on robpike-lisp/main.go's
// input/handler loop; reading a whole program file and evaluating it in
// one pass is grounded on the teacher's own cmd/funxy/main.go
// runModule/file-driver shape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/pipeline"
)

var (
	maxDepth = flag.Int("depth", 0, "maximum frame stack depth; 0 means no limit")
	prompt   = flag.String("prompt", "quill> ", "interactive prompt")
)

func main() {
	flag.Parse()

	// A session id has no language-level meaning; it exists only so a
	// crash report or a piped session's stderr output can be correlated
	// back to one run, the one place in this repo that plausibly wants a
	// unique identifier now that Quill itself carries no Uuid value type.
	sessionID := uuid.New()

	args := flag.Args()
	switch {
	case len(args) > 0:
		runFile(args[0], sessionID)
	case isPipedStdin():
		runStdinProgram(sessionID)
	default:
		runREPL(sessionID)
	}
}

func isPipedStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func runFile(path string, sessionID uuid.UUID) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill[%s]: %v\n", sessionID, err)
		os.Exit(1)
	}
	runProgram(string(data), sessionID)
}

func runStdinProgram(sessionID uuid.UUID) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill[%s]: %v\n", sessionID, err)
		os.Exit(1)
	}
	runProgram(string(data), sessionID)
}

func runProgram(text string, sessionID uuid.UUID) {
	env := atom.NewEnvironment()
	env.MaxDepth = *maxDepth

	if err := pipeline.EvalLines(text, env); err != nil {
		fmt.Fprintf(os.Stderr, "quill[%s]: %v\n", sessionID, err)
		os.Exit(1)
	}
	printStack(env)
}

func runREPL(sessionID uuid.UUID) {
	env := atom.NewEnvironment()
	env.MaxDepth = *maxDepth

	fmt.Fprintf(os.Stderr, "quill session %s (depth limit: %d)\n", sessionID, *maxDepth)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(*prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if err := pipeline.EvalLine(line, env); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		printStack(env)
	}
}

func printStack(env *atom.Environment) {
	items := env.Top().Operands
	parts := make([]string, len(items))
	for i, a := range items {
		parts[i] = a.String()
	}
	fmt.Println(parts)
}
