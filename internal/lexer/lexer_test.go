package lexer

import (
	"testing"

	"github.com/boc-lang/boc/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()

	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %s", err.Message)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "fn main var mut count")

	wantKinds := []token.Kind{token.KwFn, token.Identifier, token.KwVar, token.KwMut, token.Identifier, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d: expected kind %v, got %v", i, k, toks[i].Kind)
		}
	}
}

func TestLexIntegerLiteralBases(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.DecimalLiteral},
		{"0b1010", token.BinaryLiteral},
		{"0o17", token.OctalLiteral},
		{"0xFF", token.HexadecimalLiteral},
		{"123_u32", token.DecimalLiteral},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		if len(toks) != 2 {
			t.Fatalf("%q: expected 2 tokens (literal + EOF), got %d", c.src, len(toks))
		}
		if toks[0].Kind != c.kind {
			t.Fatalf("%q: expected kind %v, got %v", c.src, c.kind, toks[0].Kind)
		}
		if toks[0].Lexeme != c.src {
			t.Fatalf("%q: expected lexeme %q, got %q", c.src, c.src, toks[0].Lexeme)
		}
	}
}

func TestLexOperatorLongestMatch(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"&&=", token.DoubleAmpersandEquals},
		{"&&", token.DoubleAmpersand},
		{"&=", token.AmpersandEquals},
		{"&", token.Ampersand},
		{"||=", token.DoublePipeEquals},
		{"<<=", token.LeftShiftEquals},
		{"..=", token.DotDotEquals},
		{"..<", token.DotDotLess},
	}
	for _, c := range cases {
		toks := lexAll(t, c.src)
		if toks[0].Kind != c.kind {
			t.Fatalf("%q: expected kind %v, got %v", c.src, c.kind, toks[0].Kind)
		}
	}
}

func TestLexCharLiteralEscapes(t *testing.T) {
	cases := []string{`'a'`, `'\n'`, `'\''`, `'\x41'`}
	for _, src := range cases {
		toks := lexAll(t, src)
		if toks[0].Kind != token.CharLiteral {
			t.Fatalf("%q: expected char literal, got %v", src, toks[0].Kind)
		}
	}
}

func TestLexCharLiteralErrors(t *testing.T) {
	cases := []string{`''`, `'`, "'\n'", `'\q'`}
	for _, src := range cases {
		l := New(src)
		_, err := l.Next()
		if err == nil {
			t.Fatalf("%q: expected lex error, got none", src)
		}
	}
}

func TestLexIllegalCharacter(t *testing.T) {
	l := New("#")
	_, err := l.Next()
	if err == nil {
		t.Fatalf("expected lex error for '#'")
	}
}

func TestLexSkipsCommentsAndWhitespace(t *testing.T) {
	toks := lexAll(t, "  // line comment\n\t/* block */ fn")
	if len(toks) != 2 || toks[0].Kind != token.KwFn {
		t.Fatalf("expected a single 'fn' token after trivia, got %+v", toks)
	}
}

func TestLexSpanCoversLexeme(t *testing.T) {
	toks := lexAll(t, "abc")
	span := toks[0].Span
	if span.Start != 0 || span.End != 3 {
		t.Fatalf("expected span 0..3, got %d..%d", span.Start, span.End)
	}
}
