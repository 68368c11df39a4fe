package ast

import "github.com/boc-lang/boc/internal/diag"

func (*ExpressionStmt) stmtNode()      {}
func (*VariableDeclStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()          {}
func (*ForInfiniteStmt) stmtNode()     {}
func (*ForConditionStmt) stmtNode()    {}
func (*ForRangeStmt) stmtNode()        {}

// ExpressionStmt wraps an expression used in statement position. Ends
// tracks whether the source had a trailing semicolon, which controls
// whether the statement's type is void (§4.3) or the expression's own
// type.
type ExpressionStmt struct {
	base
	Expr Expr
	Ends bool
}

// VariableDeclStmt is `var`/`mut NAME (: TYPE)? (= EXPR)? ;`.
type VariableDeclStmt struct {
	base
	Mutable bool
	Name    *Ident
	Type    *TypeSyntax // nil if inferred from Init
	Init    Expr        // nil if absent
}

// ReturnStmt is `return EXPR? ;`.
type ReturnStmt struct {
	base
	Value Expr // nil for a bare `return;`
}

// ForInfiniteStmt is `for { body }`.
type ForInfiniteStmt struct {
	base
	Body *BlockExpr
}

// ForConditionStmt is `for (cond) { body }`.
type ForConditionStmt struct {
	base
	Cond Expr
	Body *BlockExpr
}

// ForRangeStmt is `for (name in iterable) { body }`.
type ForRangeStmt struct {
	base
	LoopVar  *Ident
	Iterable Expr
	Body     *BlockExpr
}

func NewExpressionStmt(expr Expr, ends bool, span diag.Span) *ExpressionStmt {
	return &ExpressionStmt{base: base{span}, Expr: expr, Ends: ends}
}

func NewVariableDeclStmt(mutable bool, name *Ident, typ *TypeSyntax, init Expr, span diag.Span) *VariableDeclStmt {
	return &VariableDeclStmt{base: base{span}, Mutable: mutable, Name: name, Type: typ, Init: init}
}

func NewReturnStmt(value Expr, span diag.Span) *ReturnStmt {
	return &ReturnStmt{base: base{span}, Value: value}
}

func NewForInfiniteStmt(body *BlockExpr, span diag.Span) *ForInfiniteStmt {
	return &ForInfiniteStmt{base: base{span}, Body: body}
}

func NewForConditionStmt(cond Expr, body *BlockExpr, span diag.Span) *ForConditionStmt {
	return &ForConditionStmt{base: base{span}, Cond: cond, Body: body}
}

func NewForRangeStmt(loopVar *Ident, iterable Expr, body *BlockExpr, span diag.Span) *ForRangeStmt {
	return &ForRangeStmt{base: base{span}, LoopVar: loopVar, Iterable: iterable, Body: body}
}
