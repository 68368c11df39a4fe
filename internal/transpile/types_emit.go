package transpile

import (
	"fmt"

	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/types"
)

var scalarNames = map[types.Kind]string{
	types.KindVoid:  "void",
	types.KindU8:    "u8",
	types.KindU16:   "u16",
	types.KindU32:   "u32",
	types.KindU64:   "u64",
	types.KindUsize: "usize",
	types.KindI8:    "i8",
	types.KindI16:   "i16",
	types.KindI32:   "i32",
	types.KindI64:   "i64",
	types.KindIsize: "isize",
	types.KindBool:  "bool",
	types.KindChar:  "char",
}

// emitType renders id as a C++ type-id string. suppressConst omits the
// trailing " const" qualifier even when the type is immutable — used
// for return types and for literal-construction targets per §4.4.
func (t *Transpiler) emitType(id types.TypeId, suppressConst bool) (string, *diag.Error) {
	ty := t.prog.Types.Get(id)

	var base string
	switch ty.Kind {
	case types.KindUnknown:
		return "", diag.TranspilerInternal(diag.Span{}, "unknown type reached emission")
	case types.KindPointer:
		inner, err := t.emitType(ty.Inner, true)
		if err != nil {
			return "", err
		}
		base = inner + "*"
	case types.KindArray:
		inner, err := t.emitType(ty.Inner, true)
		if err != nil {
			return "", err
		}
		base = fmt.Sprintf("std::array<%s, %d>", inner, ty.Size)
	case types.KindSlice:
		inner, err := t.emitType(ty.Inner, true)
		if err != nil {
			return "", err
		}
		base = fmt.Sprintf("std::span<%s>", inner)
	case types.KindRange:
		inner, err := t.emitType(ty.Inner, true)
		if err != nil {
			return "", err
		}
		inclusive := "false"
		if ty.Inclusive {
			inclusive = "true"
		}
		base = fmt.Sprintf("bo_range<%s, %s>", inner, inclusive)
	default:
		name, ok := scalarNames[ty.Kind]
		if !ok {
			return "", diag.TranspilerInternal(diag.Span{}, "unknown type reached emission")
		}
		base = name
	}

	if !suppressConst && ty.Mutable == false && ty.Kind != types.KindVoid {
		return base + " const", nil
	}
	return base, nil
}
