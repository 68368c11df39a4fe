package parser

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/token"
)

// parseType parses one type-syntax tree. allowTopLevelMut gates whether
// a leading `mut` is legal at this position: true for variable
// declarations, false for function return types and parameter types
// (§4.2 — this prohibits silently mutable parameters).
func (p *Parser) parseType(allowTopLevelMut bool) (*ast.TypeSyntax, *diag.Error) {
	start := p.tok.Span
	mutable := false
	if p.at(token.KwMut) {
		if !allowTopLevelMut {
			return nil, diag.Syntactic(p.tok.Span, "mut not allowed here")
		}
		mutable = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case token.Asterisk:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return ast.NewWeakPointerTypeSyntax(inner, mutable, diag.Merge(start, inner.Span())), nil

	case token.Circumflex:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return ast.NewStrongPointerTypeSyntax(inner, mutable, diag.Merge(start, inner.Span())), nil

	case token.LeftSquareBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.RightSquareBracket) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			inner, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			return ast.NewSliceTypeSyntax(inner, mutable, diag.Merge(start, inner.Span())), nil
		}
		sizeTok, err := p.expectIntegerLiteral()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightSquareBracket); err != nil {
			return nil, err
		}
		inner, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayTypeSyntax(sizeTok, inner, mutable, diag.Merge(start, inner.Span())), nil

	case token.Identifier, token.KwBool, token.KwChar, token.KwI8, token.KwI16, token.KwI32, token.KwI64, token.KwIsize,
		token.KwU8, token.KwU16, token.KwU32, token.KwU64, token.KwUsize:
		nameTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		name := ast.NewIdent(nameTok.Lexeme, nameTok.Span)
		return ast.NewNamedTypeSyntax(name, mutable, diag.Merge(start, nameTok.Span)), nil

	default:
		return nil, diag.Syntactic(p.tok.Span, "expected a type got %s", p.tok.Kind)
	}
}

// expectIntegerLiteral consumes an integer-literal token used as an
// array-size operand and returns it as an ast.IntegerLiteral node.
func (p *Parser) expectIntegerLiteral() (*ast.IntegerLiteral, *diag.Error) {
	tok := p.tok
	radix, ok := integerRadixOf(tok.Kind)
	if !ok {
		return nil, diag.Syntactic(tok.Span, "expected an integer literal got %s", tok.Kind)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ast.NewIntegerLiteral(tok.Lexeme, radix, "", tok.Span), nil
}

func integerRadixOf(kind token.Kind) (ast.IntegerRadix, bool) {
	switch kind {
	case token.DecimalLiteral:
		return ast.Decimal, true
	case token.BinaryLiteral:
		return ast.Binary, true
	case token.OctalLiteral:
		return ast.Octal, true
	case token.HexadecimalLiteral:
		return ast.Hexadecimal, true
	default:
		return 0, false
	}
}
