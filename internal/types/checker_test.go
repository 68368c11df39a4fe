package types_test

import (
	"strings"
	"testing"

	"github.com/boc-lang/boc/internal/parser"
	"github.com/boc-lang/boc/internal/types"
)

func checkSource(t *testing.T, src string) *types.CheckedProgram {
	t.Helper()

	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}
	return checked
}

func expectCheckError(t *testing.T, src, substr string) {
	t.Helper()

	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	_, cerr := types.Check(prog)
	if cerr == nil {
		t.Fatalf("expected a check error containing %q, got success", substr)
	}
	if !strings.Contains(cerr.Message, substr) {
		t.Fatalf("expected error containing %q, got %q", substr, cerr.Message)
	}
}

func TestCheckArithmeticPrecedence(t *testing.T) {
	// `*` binds tighter than `+`, and the unsuffixed literal default is i32.
	checked := checkSource(t, "fn main(): void { var x: i32 = 1 + 2 * 3; }")

	fn := checked.Functions.Get(0)
	decl := fn.Body.Stmts[0].(*types.VariableDeclStmt)
	v := checked.Variables.Get(decl.Variable)
	if checked.Types.Get(v.TypeID).Mutable {
		t.Fatalf("expected x to be declared immutable")
	}

	bin, ok := decl.Init.(*types.BinaryExpr)
	if !ok {
		t.Fatalf("expected initializer to be a BinaryExpr, got %T", decl.Init)
	}
	if _, ok := bin.RHS.(*types.BinaryExpr); !ok {
		t.Fatalf("expected rhs of outer '+' to itself be a BinaryExpr ('*'), got %T", bin.RHS)
	}
}

func TestCheckUnsuffixedLiteralWidthMismatch(t *testing.T) {
	// an unsuffixed integer literal defaults to i32, which is incompatible
	// with a declared u32 target.
	expectCheckError(t, "fn main(): void { var x: u32 = 1; }", "Variable type doesn't match expression type")
}

func TestCheckAssignToImmutable(t *testing.T) {
	expectCheckError(t, "fn main(): void { var x: i32 = 0; x = 1; }", "Cannot assign to immutable value")
	checkSource(t, "fn main(): void { mut x: i32 = 0; x = 1; }")
}

func TestCheckForInRange(t *testing.T) {
	checked := checkSource(t, "fn main(): void { for (i in 0..<10) { i; } }")

	fn := checked.Functions.Get(0)
	loop := fn.Body.Stmts[0].(*types.ForRangeStmt)
	v := checked.Variables.Get(loop.Variable)
	if got := checked.Types.Get(v.TypeID).Kind; got != types.KindI32 {
		t.Fatalf("expected loop variable of kind i32, got %v", got)
	}
	if got := checked.Types.Describe(loop.Body.Type()); got != "void" {
		t.Fatalf("expected body type void, got %s", got)
	}
}

func TestCheckCallWrongParameterName(t *testing.T) {
	// a non-anonymous parameter requires the call site to either name
	// the argument explicitly or pass a same-named identifier.
	src := `
fn add(anon a: i32, b: i32): i32 { a + b }
fn main(): void { add(1, 2); }
`
	expectCheckError(t, src, "Function call has wrong parameter name")
}

func TestCheckDuplicateFunctionRejected(t *testing.T) {
	src := `
fn f(): void {}
fn f(): void {}
`
	expectCheckError(t, src, "Function already declared")
}

func TestCheckEmptyArrayLiteralWithoutHintRejected(t *testing.T) {
	expectCheckError(t, "fn main(): void { var x = []; }", "empty array literal requires a type hint")
}

func TestCheckEqualityRequiresStructurallyEqualTypes(t *testing.T) {
	// two pointers of the same Kind but different pointee types must be
	// rejected even though both are KindPointer.
	src := `
fn main(): void {
	mut a: i32 = 0;
	mut b: u8 = 0_u8;
	var pa: *i32 = &a;
	var pb: *u8 = &b;
	pa == pb;
}
`
	expectCheckError(t, src, "incompatible types for equality comparison")

	// two arrays of the same Kind but different element type or size
	// must also be rejected.
	expectCheckError(t, "fn main(): void { var x: [3]i32 = [1,2,3]; var y: [3]u8 = [1_u8,2_u8,3_u8]; x == y; }",
		"incompatible types for equality comparison")
	expectCheckError(t, "fn main(): void { var x: [3]i32 = [1,2,3]; var y: [4]i32 = [1,2,3,4]; x == y; }",
		"incompatible types for equality comparison")
}

func TestCheckEqualityAcceptsSameStructuralType(t *testing.T) {
	checkSource(t, "fn main(): void { var x: [3]i32 = [1,2,3]; var y: [3]i32 = [4,5,6]; x == y; }")
	checkSource(t, "fn main(): void { mut a: i32 = 0; var pa: *i32 = &a; var pb: *i32 = &a; pa == pb; }")
	checkSource(t, "fn main(): void { true == false; }")
}
