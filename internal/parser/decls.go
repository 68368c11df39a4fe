package parser

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/token"
)

func (p *Parser) parseProgram() (*ast.Program, *diag.Error) {
	var functions []*ast.FunctionDecl
	for !p.at(token.EOF) {
		fn, err := p.parseFunctionDecl()
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return ast.NewProgram(functions), nil
}

// parseFunctionDecl parses `fn NAME(params): return-type block`. The
// return type may not carry a top-level `mut` (allow_top_level_mut is
// false here).
func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, *diag.Error) {
	start := p.tok.Span
	if _, err := p.expect(token.KwFn); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdent(nameTok.Lexeme, nameTok.Span)

	if _, err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	returnType, err := p.parseType(false)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDecl(name, params, returnType, body, diag.Merge(start, body.Span())), nil
}

// parseParamList parses comma-separated `[anon] IDENT ':' type`, with
// no trailing comma and an empty list allowed.
func (p *Parser) parseParamList() ([]*ast.Param, *diag.Error) {
	var params []*ast.Param
	if p.at(token.RightParenthesis) {
		return params, nil
	}
	for {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func (p *Parser) parseParam() (*ast.Param, *diag.Error) {
	start := p.tok.Span
	anonymous := false
	if p.at(token.KwAnon) {
		anonymous = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseType(false)
	if err != nil {
		return nil, err
	}
	return ast.NewParam(anonymous, ast.NewIdent(nameTok.Lexeme, nameTok.Span), typ, diag.Merge(start, typ.Span())), nil
}
