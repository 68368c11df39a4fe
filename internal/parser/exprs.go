package parser

import (
	"strings"

	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/token"
)

// parseExpression parses one expression with the full precedence table,
// with the statement-position block restriction cleared: this is the
// entry point for every expression context except a top-level
// expression statement's own leading expression (var/return
// initializers, if-conditions, for-conditions and iterables, call
// arguments, array elements, and index operands are all unambiguous
// because they are bounded by other punctuation).
func (p *Parser) parseExpression() (ast.Expr, *diag.Error) {
	saved := p.restriction
	p.restriction = restrictionNone
	expr, err := p.parseExpressionWithPrecedence(1)
	p.restriction = saved
	return expr, err
}

// parseStatementExpression is like parseExpression but activates the
// block-expression restriction of §4.2 for the duration of the parse:
// a primary that HasBlock may not be immediately followed by a binary
// operator, so `{1} + 2;` parses as two statements rather than one.
func (p *Parser) parseStatementExpression() (ast.Expr, *diag.Error) {
	saved := p.restriction
	p.restriction = restrictionNoBlockExprs
	expr, err := p.parseExpressionWithPrecedence(1)
	p.restriction = saved
	return expr, err
}

// parseExpressionWithPrecedence implements precedence climbing: parse a
// primary, then repeatedly fold in secondary operators whose precedence
// is at least minPrec, recursing for each right operand at the
// precedence the associativity of that operator demands.
func (p *Parser) parseExpressionWithPrecedence(minPrec int) (ast.Expr, *diag.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.climb(left, minPrec)
}

func (p *Parser) climb(left ast.Expr, minPrec int) (ast.Expr, *diag.Error) {
	for {
		info, ok := opTable[p.tok.Kind]
		if !ok || info.prec < minPrec {
			return left, nil
		}
		if info.category == catBinary && p.restriction&restrictionNoBlockExprs != 0 && ast.HasBlock(left) {
			return left, nil
		}

		opTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		nextMin := info.prec
		if !info.rightAssoc {
			nextMin = info.prec + 1
		}
		right, err := p.parseExpressionWithPrecedence(nextMin)
		if err != nil {
			return nil, err
		}

		switch info.category {
		case catAssign:
			left = ast.NewAssignExpr(info.assignOp, left, right, diag.Merge(left.Span(), right.Span()))
		case catRange:
			left = ast.NewRangeExpr(left, right, opTok.Kind == token.DotDotEquals, diag.Merge(left.Span(), right.Span()))
		case catBinary:
			left = ast.NewBinaryExpr(info.binOp, left, right, diag.Merge(left.Span(), right.Span()))
		}
	}
}

// parseUnary parses the level-13 prefix operators, binding tighter than
// every secondary operator, then hands off to postfix parsing for
// level-14 call/index/update suffixes.
func (p *Parser) parseUnary() (ast.Expr, *diag.Error) {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.Plus:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewUnaryExpr(ast.Pos, operand, span)
		})
	case token.Minus:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewUnaryExpr(ast.Neg, operand, span)
		})
	case token.ExclamationMark:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewUnaryExpr(ast.LogNot, operand, span)
		})
	case token.Tilde:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewUnaryExpr(ast.BitNot, operand, span)
		})
	case token.Asterisk:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewDerefExpr(operand, span)
		})
	case token.Ampersand:
		return p.parsePrefixUnary(start, func(operand ast.Expr, span diag.Span) ast.Expr {
			return ast.NewAddrOfExpr(operand, span)
		})
	case token.PlusPlus:
		return p.parsePrefixUpdate(start, ast.Increment)
	case token.MinusMinus:
		return p.parsePrefixUpdate(start, ast.Decrement)
	default:
		primary, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return p.parsePostfix(primary)
	}
}

func (p *Parser) parsePrefixUnary(start diag.Span, build func(ast.Expr, diag.Span) ast.Expr) (ast.Expr, *diag.Error) {
	if err := p.advance(); err != nil { // consume the prefix operator
		return nil, err
	}
	operand, err := p.parseExpressionWithPrecedence(prefixPrecedence)
	if err != nil {
		return nil, err
	}
	return build(operand, diag.Merge(start, operand.Span())), nil
}

func (p *Parser) parsePrefixUpdate(start diag.Span, op ast.UpdateOp) (ast.Expr, *diag.Error) {
	if err := p.advance(); err != nil { // consume `++`/`--`
		return nil, err
	}
	operand, err := p.parseExpressionWithPrecedence(prefixPrecedence)
	if err != nil {
		return nil, err
	}
	return ast.NewUpdateExpr(op, operand, true, diag.Merge(start, operand.Span())), nil
}

// parsePostfix folds in level-14 call, index, and postfix-update
// suffixes, left-associatively.
func (p *Parser) parsePostfix(expr ast.Expr) (ast.Expr, *diag.Error) {
	for {
		switch p.tok.Kind {
		case token.LeftParenthesis:
			callee, ok := expr.(*ast.Ident)
			if !ok {
				return nil, diag.Syntactic(p.tok.Span, "only a bare identifier may be called")
			}
			call, err := p.parseCallArgs(callee)
			if err != nil {
				return nil, err
			}
			expr = call
		case token.LeftSquareBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			end, err := p.expect(token.RightSquareBracket)
			if err != nil {
				return nil, err
			}
			expr = ast.NewIndexExpr(expr, index, diag.Merge(expr.Span(), end.Span))
		case token.PlusPlus:
			end := p.tok.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = ast.NewUpdateExpr(ast.Increment, expr, false, diag.Merge(expr.Span(), end))
		case token.MinusMinus:
			end := p.tok.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr = ast.NewUpdateExpr(ast.Decrement, expr, false, diag.Merge(expr.Span(), end))
		default:
			return expr, nil
		}
	}
}

// parsePrimary parses one of the non-prefix, non-postfix primary forms:
// identifier, literal, parenthesized expression, array literal, block,
// or if-expression.
func (p *Parser) parsePrimary() (ast.Expr, *diag.Error) {
	switch p.tok.Kind {
	case token.Identifier:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewIdent(tok.Lexeme, tok.Span), nil

	case token.DecimalLiteral, token.BinaryLiteral, token.OctalLiteral, token.HexadecimalLiteral:
		tok := p.tok
		radix, _ := integerRadixOf(tok.Kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		text, suffix := splitIntegerLexeme(tok.Lexeme)
		return ast.NewIntegerLiteral(text, radix, suffix, tok.Span), nil

	case token.CharLiteral:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewCharLiteral(tok.Lexeme, tok.Span), nil

	case token.KwTrue, token.KwFalse:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewBoolLiteral(tok.Kind == token.KwTrue, tok.Span), nil

	case token.LeftParenthesis:
		return p.parseParenExpr()

	case token.LeftSquareBracket:
		return p.parseArrayLiteral()

	case token.LeftCurlyBracket:
		return p.parseBlock()

	case token.KwIf:
		return p.parseIfExpr()

	default:
		return nil, diag.Syntactic(p.tok.Span, "expected an expression got %s", p.tok.Kind)
	}
}

func (p *Parser) parseParenExpr() (ast.Expr, *diag.Error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // consume `(`
		return nil, err
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.RightParenthesis)
	if err != nil {
		return nil, err
	}
	return ast.NewParenExpr(inner, diag.Merge(start, end.Span)), nil
}

func (p *Parser) parseArrayLiteral() (ast.Expr, *diag.Error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // consume `[`
		return nil, err
	}
	var elements []ast.Expr
	for !p.at(token.RightSquareBracket) {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	end, err := p.expect(token.RightSquareBracket)
	if err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(elements, diag.Merge(start, end.Span)), nil
}

// parseBlock parses `{ stmt* }`. A trailing statement is only complete
// as-is (no semicolon, no HasBlock) at the closing curly.
func (p *Parser) parseBlock() (*ast.BlockExpr, *diag.Error) {
	start := p.tok.Span
	if _, err := p.expect(token.LeftCurlyBracket); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(token.RightCurlyBracket) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	end, err := p.expect(token.RightCurlyBracket)
	if err != nil {
		return nil, err
	}
	return ast.NewBlockExpr(stmts, diag.Merge(start, end.Span)), nil
}

func (p *Parser) parseIfExpr() (ast.Expr, *diag.Error) {
	start := p.tok.Span
	if err := p.advance(); err != nil { // consume `if`
		return nil, err
	}
	if _, err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParenthesis); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBranch ast.Expr
	end := then.Span()
	if p.at(token.KwElse) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.KwIf) {
			elseBranch, err = p.parseIfExpr()
		} else {
			elseBranch, err = p.parseBlock()
		}
		if err != nil {
			return nil, err
		}
		end = elseBranch.Span()
	}

	return ast.NewIfExpr(cond, then, elseBranch, diag.Merge(start, end)), nil
}

// parseCallArgs parses the `(args...)` suffix of a call, binding
// arguments by explicit `name: value` form or a bare value, where a
// bare identifier value doubles as its own argument name per §4.2.
func (p *Parser) parseCallArgs(callee *ast.Ident) (*ast.CallExpr, *diag.Error) {
	if _, err := p.expect(token.LeftParenthesis); err != nil {
		return nil, err
	}
	var args []*ast.Arg
	for !p.at(token.RightParenthesis) {
		arg, err := p.parseCallArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.at(token.Comma) {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	end, err := p.expect(token.RightParenthesis)
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(callee, args, diag.Merge(callee.Span(), end.Span)), nil
}

func (p *Parser) parseCallArg() (*ast.Arg, *diag.Error) {
	if p.at(token.Identifier) {
		nameTok := p.tok
		// A leading identifier may be an explicit argument name (if
		// followed by `:`) or simply the start of the value expression.
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.at(token.Colon) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return &ast.Arg{Name: ast.NewIdent(nameTok.Lexeme, nameTok.Span), Value: value}, nil
		}
		value, err := p.continueExpressionFromIdent(nameTok)
		if err != nil {
			return nil, err
		}
		return &ast.Arg{Value: value}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Arg{Value: value}, nil
}

// continueExpressionFromIdent resumes Pratt parsing after an
// identifier token has already been consumed by a caller that needed
// one token of lookahead past it (for-statement's `in` check, call
// argument name disambiguation). It reconstructs the identifier as a
// primary, applies any postfix suffixes, then climbs from there.
func (p *Parser) continueExpressionFromIdent(nameTok token.Token) (ast.Expr, *diag.Error) {
	saved := p.restriction
	p.restriction = restrictionNone
	defer func() { p.restriction = saved }()

	primary := ast.NewIdent(nameTok.Lexeme, nameTok.Span)
	expr, err := p.parsePostfix(primary)
	if err != nil {
		return nil, err
	}
	return p.climb(expr, 1)
}

// splitIntegerLexeme separates a lexed integer literal's digit text
// from its optional `_`-delimited suffix, per the closed suffix set in
// §3.
func splitIntegerLexeme(lexeme string) (text, suffix string) {
	idx := strings.LastIndexByte(lexeme, '_')
	if idx < 0 {
		return lexeme, ""
	}
	candidate := lexeme[idx+1:]
	if token.IntegerSuffixes[candidate] {
		return lexeme[:idx], candidate
	}
	return lexeme, ""
}
