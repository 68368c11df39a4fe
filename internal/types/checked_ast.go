package types

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

// Node is satisfied by every checked-AST node.
type Node interface {
	Span() diag.Span
	Type() TypeId
}

// Expr is satisfied by every checked expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every checked statement node.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the span and resolved type_id shared by every checked
// node, mirroring ast.base but with the type annotation §3 requires.
type base struct {
	span   diag.Span
	typeID TypeId
}

func (b base) Span() diag.Span { return b.span }
func (b base) Type() TypeId    { return b.typeID }

func (*IntegerLiteral) exprNode() {}
func (*CharLiteral) exprNode()    {}
func (*BoolLiteral) exprNode()    {}
func (*Ident) exprNode()          {}
func (*ParenExpr) exprNode()      {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()     {}
func (*UpdateExpr) exprNode()     {}
func (*DerefExpr) exprNode()      {}
func (*AddrOfExpr) exprNode()     {}
func (*RangeExpr) exprNode()      {}
func (*BlockExpr) exprNode()      {}
func (*IfExpr) exprNode()         {}
func (*CallExpr) exprNode()       {}
func (*ArrayLiteral) exprNode()   {}
func (*IndexExpr) exprNode()      {}

func (*ExpressionStmt) stmtNode()  {}
func (*VariableDeclStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()      {}
func (*ForInfiniteStmt) stmtNode() {}
func (*ForConditionStmt) stmtNode() {}
func (*ForRangeStmt) stmtNode()    {}

type IntegerLiteral struct {
	base
	Text   string
	Radix  ast.IntegerRadix
	Suffix string
}

type CharLiteral struct {
	base
	Raw string
}

type BoolLiteral struct {
	base
	Value bool
}

// Ident carries a resolved variable_id rather than a name string.
type Ident struct {
	base
	Variable VariableId
}

type ParenExpr struct {
	base
	Inner Expr
}

type BinaryExpr struct {
	base
	Op       ast.BinaryOp
	LHS, RHS Expr
}

type UnaryExpr struct {
	base
	Op      ast.UnaryOp
	Operand Expr
}

type AssignExpr struct {
	base
	Op       ast.AssignOp
	LHS, RHS Expr
}

type UpdateExpr struct {
	base
	Op       ast.UpdateOp
	Operand  Expr
	IsPrefix bool
}

type DerefExpr struct {
	base
	Operand Expr
}

type AddrOfExpr struct {
	base
	Operand Expr
}

type RangeExpr struct {
	base
	Start, End Expr
	Inclusive  bool
}

// BlockExpr carries the scope it was checked in and the conservative
// contains_return_statement flag described in §9.
type BlockExpr struct {
	base
	Stmts          []Stmt
	Scope          ScopeId
	ContainsReturn bool
}

// IfExpr's Else is either another *IfExpr (else-if chaining), a
// *BlockExpr, or nil.
type IfExpr struct {
	base
	Cond Expr
	Then *BlockExpr
	Else Expr
}

// CallExpr carries a direct handle to the resolved callee function
// rather than a name, and its Args are already bound to parameter
// order (argument names have been validated and discarded). Builtin is
// non-empty for a call to a prelude-supplied function (currently only
// "print") that has no entry in the program's FunctionTable; Function
// is meaningless when Builtin is set.
type CallExpr struct {
	base
	Function FunctionId
	Builtin  string
	Args     []Expr
}

type ArrayLiteral struct {
	base
	Elements []Expr
}

type IndexExpr struct {
	base
	Array, Index Expr
}

type ExpressionStmt struct {
	base
	Expr Expr
	Ends bool
}

// VariableDeclStmt carries the variable_id it defined; Init is nil
// when the declaration had no initializer.
type VariableDeclStmt struct {
	base
	Variable VariableId
	Init     Expr
}

// ReturnStmt's Value is nil for a bare `return;`.
type ReturnStmt struct {
	base
	Value Expr
}

type ForInfiniteStmt struct {
	base
	Body *BlockExpr
}

type ForConditionStmt struct {
	base
	Cond Expr
	Body *BlockExpr
}

// ForRangeStmt carries the variable_id bound to the loop variable.
type ForRangeStmt struct {
	base
	Variable VariableId
	Iterable Expr
	Body     *BlockExpr
}
