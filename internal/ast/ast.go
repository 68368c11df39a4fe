// Package ast defines the untyped AST: a discriminated union of node
// variants produced by the parser. Each node is immutable after
// construction and uniquely owns its children — the tree never shares
// nodes, so no node needs a back-pointer to its parent.
//
// Rather than a deep virtual-dispatch hierarchy, each node family
// (expressions, statements, type syntax) is a closed set of concrete
// Go struct types satisfying a small marker interface. Callers switch
// on the concrete type; derived properties like HasBlock are computed
// by such a switch instead of a virtual method.
package ast

import "github.com/boc-lang/boc/internal/diag"

// Node is satisfied by every AST node.
type Node interface {
	Span() diag.Span
}

// Expr is satisfied by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the span shared by every node and provides the Span
// accessor; every concrete node embeds it.
type base struct {
	span diag.Span
}

func (b base) Span() diag.Span { return b.span }

// BinaryOp is the closed set of binary operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
	BitAnd
	BitXor
	BitOr
	LogAnd
	LogOr
)

// UnaryOp is the closed set of prefix unary operators.
type UnaryOp int

const (
	Pos UnaryOp = iota
	Neg
	LogNot
	BitNot
)

// AssignOp is the closed set of assignment operators, `=` plus every
// `op=` compound form.
type AssignOp int

const (
	Assign AssignOp = iota
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign
	LogAndAssign
	LogOrAssign
)

// UpdateOp is `++` or `--`, applicable as prefix or postfix.
type UpdateOp int

const (
	Increment UpdateOp = iota
	Decrement
)

// IntegerRadix tags the radix an integer literal was written in.
type IntegerRadix int

const (
	Decimal IntegerRadix = iota
	Binary
	Octal
	Hexadecimal
)

// Program is the root node: an ordered list of function declarations.
type Program struct {
	Functions []*FunctionDecl
}

// Param is one formal parameter of a function declaration.
type Param struct {
	Anonymous bool
	Name      *Ident
	Type      *TypeSyntax
	span      diag.Span
}

func (p *Param) Span() diag.Span { return p.span }

// FunctionDecl is `fn NAME(params): return-type { body }`.
type FunctionDecl struct {
	base
	Name       *Ident
	Parameters []*Param
	ReturnType *TypeSyntax
	Body       *BlockExpr
}

// NewProgram builds a Program from an ordered function list.
func NewProgram(functions []*FunctionDecl) *Program {
	return &Program{Functions: functions}
}

// NewParam builds a parameter node.
func NewParam(anonymous bool, name *Ident, typ *TypeSyntax, span diag.Span) *Param {
	return &Param{Anonymous: anonymous, Name: name, Type: typ, span: span}
}

// NewFunctionDecl builds a function declaration node.
func NewFunctionDecl(name *Ident, params []*Param, returnType *TypeSyntax, body *BlockExpr, span diag.Span) *FunctionDecl {
	return &FunctionDecl{base: base{span}, Name: name, Parameters: params, ReturnType: returnType, Body: body}
}

// HasBlock reports whether expr is a block-shaped expression (block
// or if) that must not be immediately followed by a binary
// operator in statement position without parenthesization. This is a
// derived property computed by a type switch, not a virtual method,
// per the design note against deep class hierarchies.
func HasBlock(expr Expr) bool {
	switch expr.(type) {
	case *BlockExpr, *IfExpr:
		return true
	default:
		return false
	}
}
