// Package lexer turns source bytes into a stream of tokens, one per
// Next call. ch holds the current byte (0 at EOF) and pos indexes the
// byte after it, and line/column are maintained alongside
// byte offsets purely for diagnostic rendering.
package lexer

import (
	"strings"

	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/token"
)

// Lexer tokenizes a single source buffer. It is stateful and
// single-use: construct one with New per compilation.
type Lexer struct {
	src    string
	pos    int // index just past ch within src
	ch     byte
	line   int
	column int
}

// New creates a lexer positioned at the start of src.
func New(src string) *Lexer {
	l := &Lexer{src: src, line: 1, column: 0}
	l.read()
	return l
}

func (l *Lexer) read() {
	if l.pos > 0 && l.pos <= len(l.src) && l.src[l.pos-1] == '\n' {
		l.line++
		l.column = 0
	}
	if l.pos >= len(l.src) {
		l.ch = 0
		l.pos = len(l.src) + 1
		l.column++
		return
	}
	l.ch = l.src[l.pos]
	l.pos++
	l.column++
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) isEOF() bool { return l.ch == 0 && l.pos > len(l.src) }

func (l *Lexer) span(start, startLine, startColumn int) diag.Span {
	return diag.Span{Start: start, End: l.pos - 1, Line: startLine, Column: startColumn}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

func isIdentMiddle(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isHexDigit(c byte) bool {
	c = lower(c)
	return isDigit(c) || (c >= 'a' && c <= 'f')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Next scans and returns the next token, skipping whitespace and
// comments first. It returns a *diag.Error for lexical failures; the
// caller should stop lexing on the first error per §7.
func (l *Lexer) Next() (token.Token, *diag.Error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	startPos, startLine, startColumn := l.pos-1, l.line, l.column

	switch {
	case l.isEOF():
		return token.Token{Kind: token.EOF, Span: diag.Span{Start: startPos, End: startPos, Line: startLine, Column: startColumn}}, nil
	case isDigit(l.ch):
		return l.lexInteger(startPos, startLine, startColumn)
	case l.ch == '\'':
		return l.lexChar(startPos, startLine, startColumn)
	case isIdentStart(l.ch):
		return l.lexIdentifierOrKeyword(startPos, startLine, startColumn)
	default:
		return l.lexOperator(startPos, startLine, startColumn)
	}
}

func (l *Lexer) skipTrivia() *diag.Error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.read()
		case l.ch == '/' && l.peek() == '/':
			l.read()
			l.read()
			for !l.isEOF() && l.ch != '\n' {
				l.read()
			}
		case l.ch == '/' && l.peek() == '*':
			l.read()
			l.read()
			for !l.isEOF() && !(l.ch == '*' && l.peek() == '/') {
				l.read()
			}
			if l.isEOF() {
				// Unterminated block comments consume to EOF silently;
				// this mirrors the closed error set in §4.1, which does
				// not list an "unterminated block comment" diagnostic.
				return nil
			}
			l.read()
			l.read()
		default:
			return nil
		}
	}
}

func (l *Lexer) lexIdentifierOrKeyword(start, startLine, startColumn int) (token.Token, *diag.Error) {
	for isIdentMiddle(l.ch) {
		l.read()
	}
	lexeme := l.src[start : l.pos-1]
	return token.Token{Kind: token.LookupIdentifier(lexeme), Lexeme: lexeme, Span: l.span(start, startLine, startColumn)}, nil
}

func (l *Lexer) lexInteger(start, startLine, startColumn int) (token.Token, *diag.Error) {
	kind := token.DecimalLiteral
	allowed := "0123456789"

	if l.ch == '0' {
		l.read()
		switch l.ch {
		case 'b':
			kind, allowed = token.BinaryLiteral, "01"
			l.read()
		case 'o':
			kind, allowed = token.OctalLiteral, "01234567"
			l.read()
		case 'x':
			kind, allowed = token.HexadecimalLiteral, "0123456789abcdef"
			l.read()
		}
	} else {
		l.read()
	}

	for !l.isEOF() && strings.IndexByte(allowed, lower(l.ch)) >= 0 {
		l.read()
	}

	if l.ch == '_' {
		l.read()
		for isIdentMiddle(l.ch) {
			l.read()
		}
	}

	lexeme := l.src[start : l.pos-1]
	return token.Token{Kind: kind, Lexeme: lexeme, Span: l.span(start, startLine, startColumn)}, nil
}

func (l *Lexer) lexChar(start, startLine, startColumn int) (token.Token, *diag.Error) {
	l.read() // consume opening '

	if l.isEOF() {
		return token.Token{}, diag.Lexical(l.span(start, startLine, startColumn), "unexpected end of file while parsing char literal")
	}
	if l.ch == '\'' {
		return token.Token{}, diag.Lexical(l.span(start, startLine, startColumn), "empty char literals are not valid")
	}
	if l.ch == '\n' || l.ch == '\r' || l.ch == '\t' {
		return token.Token{}, diag.Lexical(l.span(start, startLine, startColumn), "unexpected character inside char literal")
	}

	if l.ch == '\\' {
		escStart := l.pos - 1
		l.read()
		switch l.ch {
		case '\'', 'n', 'r', 't', '\\', '0':
			l.read()
		case 'x':
			l.read()
			if l.ch < '0' || l.ch > '7' {
				return token.Token{}, diag.Lexical(diag.Span{Start: escStart, End: l.pos - 1, Line: startLine, Column: startColumn}, "invalid escape sequence inside char literal")
			}
			l.read()
			if !isHexDigit(l.ch) {
				return token.Token{}, diag.Lexical(diag.Span{Start: escStart, End: l.pos - 1, Line: startLine, Column: startColumn}, "invalid escape sequence inside char literal")
			}
			l.read()
		default:
			return token.Token{}, diag.Lexical(diag.Span{Start: escStart, End: l.pos - 1, Line: startLine, Column: startColumn}, "invalid escape sequence inside char literal")
		}
	} else {
		l.read()
	}

	if l.ch != '\'' {
		return token.Token{}, diag.Lexical(l.span(start, startLine, startColumn), "missing closing single quote for char literal")
	}
	l.read()

	lexeme := l.src[start : l.pos-1]
	return token.Token{Kind: token.CharLiteral, Lexeme: lexeme, Span: l.span(start, startLine, startColumn)}, nil
}

// operatorRule is one entry of the longest-match table: an operator's
// lexeme and the token kind lexOperator produces when that lexeme
// matches at the current character.
type operatorRule struct {
	lexeme string
	kind   token.Kind
}

func (l *Lexer) lexOperator(start, startLine, startColumn int) (token.Token, *diag.Error) {
	c := l.ch
	c2 := l.peek()
	c3 := byte(0)
	if l.pos+1 < len(l.src) {
		c3 = l.src[l.pos+1]
	}

	var rules []operatorRule
	switch c {
	case '&':
		if c2 == '&' && c3 == '=' {
			rules = []operatorRule{{"&&=", token.DoubleAmpersandEquals}}
		} else {
			rules = []operatorRule{{"&&", token.DoubleAmpersand}, {"&=", token.AmpersandEquals}, {"&", token.Ampersand}}
		}
	case '|':
		if c2 == '|' && c3 == '=' {
			rules = []operatorRule{{"||=", token.DoublePipeEquals}}
		} else {
			rules = []operatorRule{{"||", token.DoublePipe}, {"|=", token.PipeEquals}, {"|", token.Pipe}}
		}
	case '=':
		rules = []operatorRule{{"==", token.DoubleEquals}, {"=", token.Equals}}
	case '!':
		rules = []operatorRule{{"!=", token.ExclamationMarkEquals}, {"!", token.ExclamationMark}}
	case '<':
		rules = []operatorRule{{"<<=", token.LeftShiftEquals}, {"<<", token.LeftShift}, {"<=", token.LessThanEquals}, {"<", token.LessThan}}
	case '>':
		rules = []operatorRule{{">>=", token.RightShiftEquals}, {">>", token.RightShift}, {">=", token.GreaterThanEquals}, {">", token.GreaterThan}}
	case '+':
		rules = []operatorRule{{"++", token.PlusPlus}, {"+=", token.PlusEquals}, {"+", token.Plus}}
	case '-':
		rules = []operatorRule{{"--", token.MinusMinus}, {"-=", token.MinusEquals}, {"-", token.Minus}}
	case '*':
		rules = []operatorRule{{"*=", token.AsteriskEquals}, {"*", token.Asterisk}}
	case '/':
		rules = []operatorRule{{"/=", token.SolidusEquals}, {"/", token.Solidus}}
	case '%':
		rules = []operatorRule{{"%=", token.PercentEquals}, {"%", token.Percent}}
	case '^':
		rules = []operatorRule{{"^=", token.CircumflexEquals}, {"^", token.Circumflex}}
	case '.':
		rules = []operatorRule{{"..=", token.DotDotEquals}, {"..<", token.DotDotLess}}
	case '@':
		rules = []operatorRule{{"@", token.At}}
	case '~':
		rules = []operatorRule{{"~", token.Tilde}}
	case ':':
		rules = []operatorRule{{":", token.Colon}}
	case ',':
		rules = []operatorRule{{",", token.Comma}}
	case ';':
		rules = []operatorRule{{";", token.Semicolon}}
	case '(':
		rules = []operatorRule{{"(", token.LeftParenthesis}}
	case ')':
		rules = []operatorRule{{")", token.RightParenthesis}}
	case '{':
		rules = []operatorRule{{"{", token.LeftCurlyBracket}}
	case '}':
		rules = []operatorRule{{"}", token.RightCurlyBracket}}
	case '[':
		rules = []operatorRule{{"[", token.LeftSquareBracket}}
	case ']':
		rules = []operatorRule{{"]", token.RightSquareBracket}}
	}

	for _, r := range rules {
		if l.matches(r.lexeme) {
			for range r.lexeme {
				l.read()
			}
			return token.Token{Kind: r.kind, Lexeme: r.lexeme, Span: l.span(start, startLine, startColumn)}, nil
		}
	}

	return token.Token{}, diag.Lexical(l.span(start, startLine, startColumn), "unexpected character %q while lexing", c)
}

func (l *Lexer) matches(needle string) bool {
	end := (l.pos - 1) + len(needle)
	if end > len(l.src) {
		return false
	}
	return l.src[l.pos-1:end] == needle
}
