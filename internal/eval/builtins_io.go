package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/quill-lang/quill/internal/atom"
)

// Stdout is where print/debug write; a package variable rather than a
// constructor parameter so every Handler (a plain func(*atom.Environment))
// can reach it, mirroring the teacher's package-level io.Writer swapped out
// by tests. Tests redirect it to a strings.Builder and restore os.Stdout
// afterward.
var Stdout io.Writer = os.Stdout

func registerIO(reg map[string]atom.Op) {
	reg["print"] = newOp("print", func(env *atom.Environment) {
		a := env.Pop()
		fmt.Fprintln(Stdout, a.String())
	})
	reg["debug"] = newOp("debug", func(env *atom.Environment) {
		top := env.Top()
		fmt.Fprintf(Stdout, "<debug depth=%d stack=%d lazy=%v>\n", env.Depth(), len(top.Operands), top.Lazy)
	})
}
