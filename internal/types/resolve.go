package types

import (
	"strconv"

	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

var builtinsByName = map[string]TypeId{
	"void": Void,
	"u8":   U8, "u16": U16, "u32": U32, "u64": U64, "usize": Usize,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "isize": Isize,
	"bool": Bool, "char": Char,
}

var suffixTypes = map[string]TypeId{
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "usize": Usize,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "isize": Isize,
}

// resolveTypeSyntax resolves an ast.TypeSyntax to an interned TypeId.
func (c *Checker) resolveTypeSyntax(ts *ast.TypeSyntax) (TypeId, *diag.Error) {
	switch ts.Kind {
	case ast.NamedType:
		builtin, ok := builtinsByName[ts.Name.Name]
		if !ok {
			return 0, diag.NameResolution(ts.Span(), "Unknown type: %s", ts.Name.Name)
		}
		return c.prog.Types.WithMutable(builtin, ts.Mutable), nil

	case ast.WeakPointerType:
		inner, err := c.resolveTypeSyntax(ts.Inner)
		if err != nil {
			return 0, err
		}
		return c.prog.Types.Pointer(Weak, inner, ts.Mutable), nil

	case ast.StrongPointerType:
		inner, err := c.resolveTypeSyntax(ts.Inner)
		if err != nil {
			return 0, err
		}
		return c.prog.Types.Pointer(Strong, inner, ts.Mutable), nil

	case ast.ArrayType:
		inner, err := c.resolveTypeSyntax(ts.Inner)
		if err != nil {
			return 0, err
		}
		// Base 0 lets strconv auto-detect the "0b"/"0o"/"0x" prefixes the
		// lexer preserves verbatim in the literal's text.
		size, convErr := strconv.ParseUint(ts.Size.Text, 0, 64)
		if convErr != nil {
			return 0, diag.Type(ts.Size.Span(), "invalid array size literal")
		}
		return c.prog.Types.Array(size, inner, ts.Mutable), nil

	case ast.SliceType:
		inner, err := c.resolveTypeSyntax(ts.Inner)
		if err != nil {
			return 0, err
		}
		return c.prog.Types.Slice(inner, ts.Mutable), nil

	default:
		return 0, diag.Syntactic(ts.Span(), "unknown type syntax")
	}
}
