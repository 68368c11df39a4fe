package parser

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/token"
)

// parseStatement dispatches on the leading token, per §4.2.
func (p *Parser) parseStatement() (ast.Stmt, *diag.Error) {
	switch p.tok.Kind {
	case token.KwVar, token.KwMut:
		return p.parseVariableDecl()
	case token.KwFor:
		return p.parseForStatement()
	case token.KwReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVariableDecl() (*ast.VariableDeclStmt, *diag.Error) {
	start := p.tok.Span
	mutable := p.at(token.KwMut)
	if err := p.advance(); err != nil { // consume `var` or `mut`
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdent(nameTok.Lexeme, nameTok.Span)

	var typ *ast.TypeSyntax
	if p.at(token.Colon) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typ, err = p.parseType(true)
		if err != nil {
			return nil, err
		}
	}

	var init ast.Expr
	if p.at(token.Equals) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if typ == nil && init == nil {
		return nil, diag.Syntactic(p.tok.Span, "expected ':' or '=' after variable name")
	}

	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return ast.NewVariableDeclStmt(mutable, name, typ, init, diag.Merge(start, semi.Span)), nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStmt, *diag.Error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // consume `return`
		return nil, err
	}
	var value ast.Expr
	if !p.at(token.Semicolon) {
		v, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(value, diag.Merge(start, semi.Span)), nil
}

// parseForStatement parses the three `for` forms: infinite, condition,
// and range. `for` is a statement, never an expression, in this
// grammar.
func (p *Parser) parseForStatement() (ast.Stmt, *diag.Error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // consume `for`
		return nil, err
	}

	if p.at(token.LeftCurlyBracket) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewForInfiniteStmt(body, diag.Merge(start, body.Span())), nil
	}

	if _, err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}

	if p.at(token.Identifier) {
		// Could be either `for (IDENT in expr)` or `for (expr...)` where
		// expr happens to start with an identifier; look ahead by
		// attempting the range form first via a checkpoint-free grammar:
		// the range form is unambiguous because `in` cannot start an
		// expression, so parsing IDENT then checking for `in` is safe
		// without backtracking.
		nameTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.KwIn) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			iterable, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RightParenthesis); err != nil {
				return nil, err
			}
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			loopVar := ast.NewIdent(nameTok.Lexeme, nameTok.Span)
			return ast.NewForRangeStmt(loopVar, iterable, body, diag.Merge(start, body.Span())), nil
		}
		// Not a range-for: reparse the identifier as the start of a
		// condition expression by folding it back into the Pratt parser.
		cond, err := p.continueExpressionFromIdent(nameTok)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParenthesis); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewForConditionStmt(cond, body, diag.Merge(start, body.Span())), nil
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewForConditionStmt(cond, body, diag.Merge(start, body.Span())), nil
}

// parseExpressionStatement parses an expression, then decides between
// an explicit semicolon, an implicit one after a block-shaped
// expression, or a syntax error, per §4.2.
func (p *Parser) parseExpressionStatement() (*ast.ExpressionStmt, *diag.Error) {
	start := p.tok.Span
	expr, err := p.parseStatementExpression()
	if err != nil {
		return nil, err
	}

	if p.at(token.Semicolon) {
		semi, err := p.expect(token.Semicolon)
		if err != nil {
			return nil, err
		}
		return ast.NewExpressionStmt(expr, true, diag.Merge(start, semi.Span)), nil
	}

	if ast.HasBlock(expr) || p.at(token.RightCurlyBracket) {
		return ast.NewExpressionStmt(expr, false, diag.Merge(start, expr.Span())), nil
	}

	return nil, diag.Syntactic(p.tok.Span, "expected semicolon got %s", p.tok.Kind)
}
