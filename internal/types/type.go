// Package types implements the interned type table, the flat variable
// and scope tables, the checked-AST mirror of the untyped AST, and the
// typechecker that produces a CheckedProgram from an untyped
// ast.Program.
package types

// Kind is the closed set of type shapes a Type can take.
type Kind int

const (
	KindUnknown Kind = iota
	KindVoid
	KindU8
	KindU16
	KindU32
	KindU64
	KindUsize
	KindI8
	KindI16
	KindI32
	KindI64
	KindIsize
	KindBool
	KindChar
	KindPointer
	KindArray
	KindSlice
	KindRange
)

// PointerKind distinguishes a weak (reseatable, no ownership
// assumptions) pointer from a strong one.
type PointerKind int

const (
	Weak PointerKind = iota
	Strong
)

// Type is one structurally-interned type value. Fields outside a
// Type's Kind are simply unused ("Inner" for a scalar, "Size" for
// anything but Array, and so on) rather than modeled as a tagged
// union of Go types, since every field is directly comparable and the
// interner relies on that for its `==` equality scan.
type Type struct {
	Kind        Kind
	Mutable     bool
	PointerKind PointerKind // meaningful when Kind == KindPointer
	Inner       TypeId      // meaningful for Pointer, Array, Slice, Range
	Size        uint64      // meaningful for Array
	Inclusive   bool        // meaningful for Range
}

// TypeId is a stable index into a TypeTable.
type TypeId int

// Builtin scalar ids, preallocated at fixed indices matching the order
// NewTypeTable populates them in.
const (
	Unknown TypeId = iota
	Void
	U8
	U16
	U32
	U64
	Usize
	I8
	I16
	I32
	I64
	Isize
	Bool
	Char
)

// TypeTable is an append-only, structurally-interned store of Types.
// find_or_add performs a linear scan; the pack of scalar builtins is
// preallocated so callers can refer to them by the constants above
// without a lookup.
type TypeTable struct {
	types []Type
}

// NewTypeTable creates a table with the immutable scalar builtins
// preallocated at the ids declared above.
func NewTypeTable() *TypeTable {
	t := &TypeTable{}
	for _, k := range []Kind{
		KindUnknown, KindVoid,
		KindU8, KindU16, KindU32, KindU64, KindUsize,
		KindI8, KindI16, KindI32, KindI64, KindIsize,
		KindBool, KindChar,
	} {
		t.types = append(t.types, Type{Kind: k})
	}
	return t
}

// FindOrAdd returns the id of an existing structurally-equal entry, or
// appends cand and returns its new id.
func (t *TypeTable) FindOrAdd(cand Type) TypeId {
	for id, existing := range t.types {
		if existing == cand {
			return TypeId(id)
		}
	}
	t.types = append(t.types, cand)
	return TypeId(len(t.types) - 1)
}

// Get returns the Type value stored at id.
func (t *TypeTable) Get(id TypeId) Type { return t.types[id] }

// WithMutable returns the id of the sibling of id differing only in
// the mutable bit, interning it if it doesn't exist yet.
func (t *TypeTable) WithMutable(id TypeId, mutable bool) TypeId {
	base := t.Get(id)
	if base.Mutable == mutable {
		return id
	}
	base.Mutable = mutable
	return t.FindOrAdd(base)
}

// Pointer interns Pointer{kind, inner, mutable}.
func (t *TypeTable) Pointer(kind PointerKind, inner TypeId, mutable bool) TypeId {
	return t.FindOrAdd(Type{Kind: KindPointer, PointerKind: kind, Inner: inner, Mutable: mutable})
}

// Array interns Array{size, inner, mutable}.
func (t *TypeTable) Array(size uint64, inner TypeId, mutable bool) TypeId {
	return t.FindOrAdd(Type{Kind: KindArray, Size: size, Inner: inner, Mutable: mutable})
}

// Slice interns Slice{inner, mutable}.
func (t *TypeTable) Slice(inner TypeId, mutable bool) TypeId {
	return t.FindOrAdd(Type{Kind: KindSlice, Inner: inner, Mutable: mutable})
}

// Range interns Range{element, inclusive}; ranges are never written in
// source and never carry a mutable bit.
func (t *TypeTable) Range(element TypeId, inclusive bool) TypeId {
	return t.FindOrAdd(Type{Kind: KindRange, Inner: element, Inclusive: inclusive})
}

func isIntegerKind(k Kind) bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64, KindUsize, KindI8, KindI16, KindI32, KindI64, KindIsize:
		return true
	default:
		return false
	}
}

func isSignedKind(k Kind) bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindIsize:
		return true
	default:
		return false
	}
}

func widthOfKind(k Kind) int {
	switch k {
	case KindU8, KindI8:
		return 8
	case KindU16, KindI16:
		return 16
	case KindU32, KindI32:
		return 32
	case KindU64, KindI64, KindUsize, KindIsize:
		return 64
	default:
		return 0
	}
}

// IsInteger reports whether id names one of the ten integer scalars.
func (t *TypeTable) IsInteger(id TypeId) bool { return isIntegerKind(t.Get(id).Kind) }

// IsSigned reports whether id names a signed integer scalar.
func (t *TypeTable) IsSigned(id TypeId) bool { return isSignedKind(t.Get(id).Kind) }

// Width returns the bit width of an integer scalar, or 0 for anything
// else.
func (t *TypeTable) Width(id TypeId) int { return widthOfKind(t.Get(id).Kind) }

// Equal reports whether a and b denote the same type shape, comparing
// structurally through Pointer/Array/Slice/Range inners rather than
// just the top-level Kind, and ignoring the mutable bit (mutability
// is a property of a storage location, not of the type it holds).
func (t *TypeTable) Equal(a, b TypeId) bool {
	at, bt := t.Get(a), t.Get(b)
	if at.Kind != bt.Kind {
		return false
	}
	switch at.Kind {
	case KindPointer:
		return at.PointerKind == bt.PointerKind && t.Equal(at.Inner, bt.Inner)
	case KindArray:
		return at.Size == bt.Size && t.Equal(at.Inner, bt.Inner)
	case KindSlice:
		return t.Equal(at.Inner, bt.Inner)
	case KindRange:
		return at.Inclusive == bt.Inclusive && t.Equal(at.Inner, bt.Inner)
	default:
		return true
	}
}

var builtinNames = map[Kind]string{
	KindUnknown: "unknown",
	KindVoid:    "void",
	KindU8:      "u8", KindU16: "u16", KindU32: "u32", KindU64: "u64", KindUsize: "usize",
	KindI8: "i8", KindI16: "i16", KindI32: "i32", KindI64: "i64", KindIsize: "isize",
	KindBool: "bool", KindChar: "char",
}

// Describe renders id as bo source-ish syntax for diagnostics and
// dumps: a plain builtin name, `*T`/`^T` for pointers, `[N]T` for
// arrays, `[]T` for slices, `range<T>` for ranges, with a trailing
// " const" when the type is not marked mutable (mirroring the
// transpiler's own const-qualification rule in reverse: immutable
// values are the ones that read as `const`).
func (t *TypeTable) Describe(id TypeId) string {
	ty := t.Get(id)
	base := t.describeBase(ty)
	if ty.Mutable || ty.Kind == KindVoid || ty.Kind == KindUnknown {
		return base
	}
	return base + " const"
}

func (t *TypeTable) describeBase(ty Type) string {
	switch ty.Kind {
	case KindPointer:
		sigil := "*"
		if ty.PointerKind == Strong {
			sigil = "^"
		}
		return sigil + t.Describe(ty.Inner)
	case KindArray:
		return "[" + itoa(ty.Size) + "]" + t.Describe(ty.Inner)
	case KindSlice:
		return "[]" + t.Describe(ty.Inner)
	case KindRange:
		return "range<" + t.Describe(ty.Inner) + ">"
	default:
		if name, ok := builtinNames[ty.Kind]; ok {
			return name
		}
		return "?"
	}
}

func itoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
