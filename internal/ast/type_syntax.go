package ast

import "github.com/boc-lang/boc/internal/diag"

// TypeSyntaxKind is the closed set of type-syntax shapes the parser
// can produce.
type TypeSyntaxKind int

const (
	NamedType TypeSyntaxKind = iota
	WeakPointerType
	StrongPointerType
	ArrayType
	SliceType
)

// TypeSyntax is the recursive type descriptor built by the parser. It
// deliberately mirrors §3's "Type syntax" grammar as one struct with a
// kind tag rather than one Go type per shape, since every shape shares
// the same Mutable flag and, for pointers/arrays/slices, the same
// single Inner child.
type TypeSyntax struct {
	base
	Kind    TypeSyntaxKind
	Mutable bool
	Name    *Ident          // NamedType
	Inner   *TypeSyntax     // pointer/array/slice element type
	Size    *IntegerLiteral // ArrayType only
}

func NewNamedTypeSyntax(name *Ident, mutable bool, span diag.Span) *TypeSyntax {
	return &TypeSyntax{base: base{span}, Kind: NamedType, Mutable: mutable, Name: name}
}

func NewWeakPointerTypeSyntax(inner *TypeSyntax, mutable bool, span diag.Span) *TypeSyntax {
	return &TypeSyntax{base: base{span}, Kind: WeakPointerType, Mutable: mutable, Inner: inner}
}

func NewStrongPointerTypeSyntax(inner *TypeSyntax, mutable bool, span diag.Span) *TypeSyntax {
	return &TypeSyntax{base: base{span}, Kind: StrongPointerType, Mutable: mutable, Inner: inner}
}

func NewArrayTypeSyntax(size *IntegerLiteral, inner *TypeSyntax, mutable bool, span diag.Span) *TypeSyntax {
	return &TypeSyntax{base: base{span}, Kind: ArrayType, Mutable: mutable, Inner: inner, Size: size}
}

func NewSliceTypeSyntax(inner *TypeSyntax, mutable bool, span diag.Span) *TypeSyntax {
	return &TypeSyntax{base: base{span}, Kind: SliceType, Mutable: mutable, Inner: inner}
}
