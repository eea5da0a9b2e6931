// Package atom defines Quill's single sum type and the frame/environment
// machinery that threads it through evaluation. Atom mirrors the role of
// Object in the teacher's internal/evaluator/object.go: one interface,
// one concrete type per variant, a Kind()/String() pair instead of a type
// switch scattered across the evaluator.
package atom

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags a concrete Atom implementation.
type Kind string

const (
	BoolKind           Kind = "BOOL"
	NumKind            Kind = "NUM"
	ListKind           Kind = "LIST"
	SymbolKind         Kind = "SYMBOL"
	PlainKind          Kind = "PLAIN"
	QuotationKind      Kind = "QUOTATION"
	FunctionKind       Kind = "FUNCTION"
	OpKind             Kind = "OP"
	QuotationStartKind Kind = "QUOTATION_START"
	QuotationEndKind   Kind = "QUOTATION_END"
	CallKind           Kind = "CALL"
	DefVarKind         Kind = "DEF_VAR"
	DefVarLiteralKind  Kind = "DEF_VAR_LITERAL"
	DefFnLiteralKind   Kind = "DEF_FN_LITERAL"
)

// Atom is the single value traversed by the evaluator. Every token in a
// parsed line, every value on an operand stack, and every bound variable is
// an Atom.
type Atom interface {
	Kind() Kind
	String() string
}

// Bool is a literal boolean scalar.
type Bool bool

func (b Bool) Kind() Kind    { return BoolKind }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Num is a fixed-width signed integer scalar, matching the NumType = i32
// representation fixed by original_source/pancake/src/types.rs.
type Num int32

func (n Num) Kind() Kind      { return NumKind }
func (n Num) String() string  { return strconv.FormatInt(int64(n), 10) }

// List is an ordered, finite sequence of atoms produced by the list
// combinator.
type List struct {
	Items []Atom
}

func (l List) Kind() Kind { return ListKind }
func (l List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Symbol is a quoted identifier acting as a first-class name, parsed from
// 'ident.
type Symbol struct {
	Name string
}

func (s Symbol) Kind() Kind      { return SymbolKind }
func (s Symbol) String() string  { return "'" + s.Name }

// Plain is an unresolved identifier reference. It is replaced by a binding
// lookup at evaluation time unless captured verbatim inside a lazy frame
// (see Design Notes in SPEC_FULL.md on late binding).
type Plain struct {
	Name string
}

func (p Plain) Kind() Kind     { return PlainKind }
func (p Plain) String() string { return p.Name }

// Quotation is a captured sequence of atoms not yet executed, produced by
// matched brackets.
type Quotation struct {
	Body []Atom
}

func (q Quotation) Kind() Kind { return QuotationKind }
func (q Quotation) String() string {
	parts := make([]string, len(q.Body))
	for i, a := range q.Body {
		parts[i] = a.String()
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

// Function is a quotation plus an ordered list of named parameters.
type Function struct {
	Params []string
	Body   []Atom
}

func (f Function) Kind() Kind { return FunctionKind }
func (f Function) String() string {
	return fmt.Sprintf("fn(%s)", strings.Join(f.Params, " "))
}

// Handler is the signature every built-in operation implements: a function
// from environment to environment, mutating env's top frame in place.
// Kept opaque to everything except internal/eval, which constructs Op
// values; atom itself never calls a Handler.
type Handler func(env *Environment)

// Op is a built-in primitive. Handler is opaque to the evaluator beyond
// invocation; Arity is the static (in, out) pair used for pre-checks and by
// the arity analyzer, or the zero value with Known=false when the stack
// effect is dynamic.
type Op struct {
	Name    string
	Handler Handler
	In      int
	Out     int
	Known   bool
}

func (o Op) Kind() Kind     { return OpKind }
func (o Op) String() string { return o.Name }

// QuotationStart and QuotationEnd are parse-only markers the evaluator
// treats as "open a lazy frame" / "close it and emit a Quotation". They are
// never stored as values in an operand stack at end of evaluation.
type QuotationStart struct{}

func (QuotationStart) Kind() Kind     { return QuotationStartKind }
func (QuotationStart) String() string { return "[" }

type QuotationEnd struct{}

func (QuotationEnd) Kind() Kind     { return QuotationEndKind }
func (QuotationEnd) String() string { return "]" }

// Call is a parse-only atom: pop a callable and invoke it directly.
type Call struct{}

func (Call) Kind() Kind     { return CallKind }
func (Call) String() string { return "call" }

// DefVar is the parse-only atom emitted by `let NAME = EXPR` and
// `fn NAME P1 ... = EXPR`: pop a Symbol then a Quotation, evaluate the
// quotation to a single atom, and bind the symbol to it.
type DefVar struct{}

func (DefVar) Kind() Kind     { return DefVarKind }
func (DefVar) String() string { return "<defvar>" }

// DefVarLiteral pops a Symbol then any atom and binds directly, with no
// evaluation step. The parser emits it for a bare `let` keyword outside the
// `let NAME = EXPR` form, as in `17 'a let`.
type DefVarLiteral struct{}

func (DefVarLiteral) Kind() Kind     { return DefVarLiteralKind }
func (DefVarLiteral) String() string { return "<defvar-literal>" }

// DefFnLiteral pops Symbol then Quotation and binds a zero-parameter
// Function.
type DefFnLiteral struct{}

func (DefFnLiteral) Kind() Kind     { return DefFnLiteralKind }
func (DefFnLiteral) String() string { return "<deffn-literal>" }
