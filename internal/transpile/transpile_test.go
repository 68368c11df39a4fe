package transpile_test

import (
	"strings"
	"testing"

	"github.com/boc-lang/boc/internal/parser"
	"github.com/boc-lang/boc/internal/transpile"
	"github.com/boc-lang/boc/internal/types"
)

func emit(t *testing.T, src string) string {
	t.Helper()

	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}
	cpp, terr := transpile.Emit(checked)
	if terr != nil {
		t.Fatalf("unexpected transpile error: %s", terr.Message)
	}
	return cpp
}

func TestEmitRenamesMainAndCallsIt(t *testing.T) {
	// main is renamed to bo_main and invoked from the prelude's int
	// main() shim, and a for-in loop over an exclusive range lowers to
	// a bo_range-based range-for with a builtin print call inside it.
	cpp := emit(t, "fn main(): void { for (i in 0..<3_i32) { print(i); } }")

	if !strings.Contains(cpp, "void bo_main()") {
		t.Fatalf("expected bo_main definition, got:\n%s", cpp)
	}
	if !strings.Contains(cpp, "int main() {\n    bo_main();") {
		t.Fatalf("expected prelude's int main() shim calling bo_main, got:\n%s", cpp)
	}
	if !strings.Contains(cpp, "print(i)") {
		t.Fatalf("expected print(i) call site, got:\n%s", cpp)
	}
	if !strings.Contains(cpp, "for (i32 i : bo_range<i32, false>{") {
		t.Fatalf("expected exclusive bo_range for-loop over i32, got:\n%s", cpp)
	}
}

func TestEmitLogicalAssignLowering(t *testing.T) {
	cpp := emit(t, "fn main(): void { mut a: bool = true; mut b: bool = false; a &&= b; }")

	if !strings.Contains(cpp, "(a) = (a) && (b)") {
		t.Fatalf("expected &&= lowered to (a) = (a) && (b), got:\n%s", cpp)
	}
}

func TestEmitBinaryExprStaticCastWrapped(t *testing.T) {
	cpp := emit(t, "fn main(): void { var x: i32 = 1 + 2; }")

	if !strings.Contains(cpp, "static_cast<i32>(") {
		t.Fatalf("expected static_cast wrapping of the binary expression, got:\n%s", cpp)
	}
}

func TestEmitRejectsNonVoidMain(t *testing.T) {
	prog, perr := parser.Parse("fn main(): i32 { 0 }")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}
	if _, terr := transpile.Emit(checked); terr == nil {
		t.Fatalf("expected transpile error for a non-void main")
	}
}
