// Package parser implements a recursive-descent parser for statements
// and declarations, and a Pratt (precedence-climbing) parser for
// expressions, over the lexer's token stream. The parser holds exactly
// one token of lookahead.
package parser

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/lexer"
	"github.com/boc-lang/boc/internal/token"
)

// restriction is a bitset of grammar restrictions active while parsing
// a subtree, mirroring the "no expression-with-block as an operand of
// a binary operator in statement position" rule of §4.2.
type restriction uint8

const (
	restrictionNone         restriction = 0
	restrictionNoBlockExprs restriction = 1 << 0
)

// Parser turns a token stream into an untyped ast.Program.
type Parser struct {
	lex         *lexer.Lexer
	tok         token.Token
	restriction restriction
}

// New creates a parser over src. It primes the one-token lookahead
// immediately, so a lexical error on the very first token surfaces
// from New itself.
func New(src string) (*Parser, *diag.Error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance consumes the current lookahead token and lexes the next one.
func (p *Parser) advance() *diag.Error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it has the given kind,
// otherwise fails with "expected X got Y".
func (p *Parser) expect(kind token.Kind) (token.Token, *diag.Error) {
	if p.tok.Kind != kind {
		return token.Token{}, diag.Syntactic(p.tok.Span, "expected %s got %s", kind, p.tok.Kind)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) at(kind token.Kind) bool { return p.tok.Kind == kind }

// Parse runs the full grammar over the parser's token stream: zero or
// more function declarations until EOF.
func Parse(src string) (*ast.Program, *diag.Error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}
