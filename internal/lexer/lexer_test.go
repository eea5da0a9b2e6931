package lexer_test

import (
	"testing"

	"github.com/quill-lang/quill/internal/lexer"
	"github.com/quill-lang/quill/internal/token"
)

func collect(input string) []token.Token {
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestNextTokenShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{"brackets", "[ ]", []token.Token{
			{Type: token.LBRACKET, Lexeme: "["},
			{Type: token.RBRACKET, Lexeme: "]"},
		}},
		{"number", "42", []token.Token{{Type: token.NUM, Lexeme: "42"}}},
		{"negative_number", "-7", []token.Token{{Type: token.NUM, Lexeme: "-7"}}},
		{"symbol", "'inc", []token.Token{{Type: token.SYMBOL, Lexeme: "inc"}}},
		{"operator_run", "<=", []token.Token{{Type: token.OPERATOR, Lexeme: "<="}}},
		{"identifier", "fib2_helper", []token.Token{{Type: token.IDENT, Lexeme: "fib2_helper"}}},
		{"bracket_ident_no_space", "]keep", []token.Token{
			{Type: token.RBRACKET, Lexeme: "]"},
			{Type: token.IDENT, Lexeme: "keep"},
		}},
		{"bare_minus_is_operator", "3 - 4", []token.Token{
			{Type: token.NUM, Lexeme: "3"},
			{Type: token.OPERATOR, Lexeme: "-"},
			{Type: token.NUM, Lexeme: "4"},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tc.want), tc.want)
			}
			for i := range tc.want {
				if got[i].Type != tc.want[i].Type || got[i].Lexeme != tc.want[i].Lexeme {
					t.Errorf("token[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLexerIsPure(t *testing.T) {
	input := "fn fib = dup 2 <= [ drop 1 ] [ 1 - dup 1 - fib swap fib + ] cond"
	if a, b := collect(input), collect(input); len(a) != len(b) {
		t.Fatalf("lexing %q twice produced different token counts: %d vs %d", input, len(a), len(b))
	}
}
