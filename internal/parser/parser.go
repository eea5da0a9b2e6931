// Package parser converts a source line into a sequence of atoms
// (spec.md §4.1). It is pure: Parse(s) == Parse(s) for any input s. It
// depends on internal/eval only to resolve built-in identifier lexemes
// against the closed operation set (internal/eval.Lookup); eval has no
// dependency back on parser, so there is no import cycle, and
// internal/pipeline is the package that wires parser and eval together
// into the EvalLine/EvalProgram entry points.
package parser

import (
	"strconv"
	"strings"

	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/diagnostics"
	"github.com/quill-lang/quill/internal/eval"
	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/token"
)

// Parse tokenizes and assembles a single source line into its atom
// sequence. A line whose first non-whitespace character is `#` yields the
// empty sequence.
func Parse(line string) []atom.Atom {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return nil
	}

	tokens := lexAll(line)

	if atoms, ok := parseDef(tokens); ok {
		return atoms
	}

	return resolveTokens(tokens)
}

func lexAll(line string) []token.Token {
	l := lexer.New(line)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

// parseDef recognizes the two definition forms, tried before free-expression
// tokenization. It returns ok=false (with no side effect) if tokens match
// neither shape, so the caller falls back to tokenizing tokens as a free
// expression -- this is how a bare `let`/`fn` token outside a well-formed
// definition still becomes a DefVarLiteral/DefFnLiteral atom per rule 5.
func parseDef(tokens []token.Token) ([]atom.Atom, bool) {
	if len(tokens) == 0 || tokens[0].Type != token.IDENT {
		return nil, false
	}

	switch tokens[0].Lexeme {
	case config.KeywordLet:
		return parseLet(tokens)
	case config.KeywordFn:
		return parseFn(tokens)
	default:
		return nil, false
	}
}

// parseLet recognizes `let NAME = EXPR`, lowering it to
// [Quotation(parse(EXPR)), Symbol(NAME), DefVar].
func parseLet(tokens []token.Token) ([]atom.Atom, bool) {
	if len(tokens) < 3 || tokens[1].Type != token.IDENT {
		return nil, false
	}
	if tokens[2].Type != token.OPERATOR || tokens[2].Lexeme != "=" {
		return nil, false
	}

	name := tokens[1].Lexeme
	exprAtoms := resolveTokens(tokens[3:])

	return []atom.Atom{
		atom.Quotation{Body: exprAtoms},
		atom.Symbol{Name: name},
		atom.DefVar{},
	}, true
}

// parseFn recognizes `fn NAME P1 P2 ... = EXPR` (zero or more params),
// lowering it to [Quotation([Function(params, parse(EXPR))]), Symbol(NAME), DefVar].
func parseFn(tokens []token.Token) ([]atom.Atom, bool) {
	if len(tokens) < 3 || tokens[1].Type != token.IDENT {
		return nil, false
	}
	name := tokens[1].Lexeme

	i := 2
	var params []string
	for i < len(tokens) && tokens[i].Type == token.IDENT {
		params = append(params, tokens[i].Lexeme)
		i++
	}
	if i >= len(tokens) || tokens[i].Type != token.OPERATOR || tokens[i].Lexeme != "=" {
		return nil, false
	}

	exprAtoms := resolveTokens(tokens[i+1:])
	fn := atom.Function{Params: params, Body: exprAtoms}

	return []atom.Atom{
		atom.Quotation{Body: []atom.Atom{fn}},
		atom.Symbol{Name: name},
		atom.DefVar{},
	}, true
}

// resolveTokens converts a free-expression token sequence into its atom
// sequence, per the token grammar in spec.md §4.1.
func resolveTokens(tokens []token.Token) []atom.Atom {
	atoms := make([]atom.Atom, 0, len(tokens))
	for _, tok := range tokens {
		atoms = append(atoms, resolveToken(tok))
	}
	return atoms
}

func resolveToken(tok token.Token) atom.Atom {
	switch tok.Type {
	case token.LBRACKET:
		return atom.QuotationStart{}
	case token.RBRACKET:
		return atom.QuotationEnd{}
	case token.NUM:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			diagnostics.Raise(diagnostics.PhaseParse, "malformed number literal %q", tok.Lexeme)
		}
		return atom.Num(n)
	case token.SYMBOL:
		return atom.Symbol{Name: tok.Lexeme}
	case token.OPERATOR:
		return resolveOperator(tok.Lexeme)
	case token.IDENT:
		return resolveIdent(tok.Lexeme)
	case token.ILLEGAL:
		diagnostics.Raise(diagnostics.PhaseParse, "illegal character %q", tok.Lexeme)
	}
	diagnostics.Raise(diagnostics.PhaseParse, "unexpected token %q", tok.Lexeme)
	panic("unreachable")
}

func resolveOperator(lexeme string) atom.Atom {
	name, ok := config.BuiltinArith[lexeme]
	if !ok {
		diagnostics.Raise(diagnostics.PhaseParse, "unrecognized operator %q", lexeme)
	}
	op, ok := eval.Lookup(name)
	if !ok {
		diagnostics.Raise(diagnostics.PhaseParse, "unrecognized operator %q", lexeme)
	}
	return op
}

func resolveIdent(name string) atom.Atom {
	switch name {
	case config.KeywordCall:
		return atom.Call{}
	case config.KeywordLet:
		return atom.DefVarLiteral{}
	case config.KeywordFn:
		return atom.DefFnLiteral{}
	case config.KeywordTrue:
		return atom.Bool(true)
	case config.KeywordFalse:
		return atom.Bool(false)
	}
	if op, ok := eval.Lookup(name); ok {
		return op
	}
	return atom.Plain{Name: name}
}
