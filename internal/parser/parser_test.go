package parser_test

import (
	"testing"

	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/parser"
)

func parseExprStmt(t *testing.T, src string) ast.Expr {
	t.Helper()

	full := "fn main(): void { " + src + "; }"
	prog, err := parser.Parse(full)
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %s", src, err.Message)
	}
	body := prog.Functions[0].Body
	stmt := body.Stmts[0].(*ast.ExpressionStmt)
	return stmt.Expr
}

func TestParsePrecedenceMulBindsTighterThanAdd(t *testing.T) {
	// invariant 5: `*` (prec 12) outranks `+` (prec 11), so `1 + 2 * 3`
	// must parse as `1 + (2 * 3)`, i.e. the outer node's rhs is itself a
	// BinaryExpr.
	expr := parseExprStmt(t, "1 + 2 * 3")

	bin, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected top-level BinaryExpr, got %T", expr)
	}
	if bin.Op != ast.Add {
		t.Fatalf("expected top-level op Add, got %v", bin.Op)
	}
	if _, ok := bin.RHS.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected rhs to be a nested BinaryExpr (the '*'), got %T", bin.RHS)
	}
	if _, ok := bin.LHS.(*ast.IntegerLiteral); !ok {
		t.Fatalf("expected lhs to be a bare IntegerLiteral, got %T", bin.LHS)
	}
}

func TestParsePrecedenceSameLevelLeftAssociative(t *testing.T) {
	// `1 - 2 - 3` at equal precedence must left-lean: `(1 - 2) - 3`.
	expr := parseExprStmt(t, "1 - 2 - 3")

	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.Sub {
		t.Fatalf("expected top-level Sub BinaryExpr, got %T", expr)
	}
	if _, ok := bin.LHS.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected lhs to be the nested '1 - 2', got %T", bin.LHS)
	}
	if _, ok := bin.RHS.(*ast.IntegerLiteral); !ok {
		t.Fatalf("expected rhs to be a bare IntegerLiteral, got %T", bin.RHS)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	expr := parseExprStmt(t, "a = b = 1")

	outer, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected top-level AssignExpr, got %T", expr)
	}
	if _, ok := outer.RHS.(*ast.AssignExpr); !ok {
		t.Fatalf("expected rhs to be the nested 'b = 1' assignment, got %T", outer.RHS)
	}
}

func TestParseFunctionDeclShape(t *testing.T) {
	prog, err := parser.Parse("fn add(anon a: i32, b: i32): i32 { a + b }")
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err.Message)
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name.Name != "add" {
		t.Fatalf("expected function name 'add', got %q", fn.Name.Name)
	}
	if len(fn.Parameters) != 2 || !fn.Parameters[0].Anonymous || fn.Parameters[1].Anonymous {
		t.Fatalf("expected params [anon a, b], got %+v", fn.Parameters)
	}
}

func TestParseErrorOnMissingColon(t *testing.T) {
	_, err := parser.Parse("fn main() void {}")
	if err == nil {
		t.Fatalf("expected a syntax error for a missing ':' before the return type")
	}
}

func TestParseForRangeShape(t *testing.T) {
	prog, err := parser.Parse("fn main(): void { for (i in 0..<10) { i; } }")
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err.Message)
	}
	stmt := prog.Functions[0].Body.Stmts[0]
	loop, ok := stmt.(*ast.ForRangeStmt)
	if !ok {
		t.Fatalf("expected ForRangeStmt, got %T", stmt)
	}
	if loop.LoopVar.Name != "i" {
		t.Fatalf("expected loop variable 'i', got %q", loop.LoopVar.Name)
	}
	rangeExpr, ok := loop.Iterable.(*ast.RangeExpr)
	if !ok || rangeExpr.Inclusive {
		t.Fatalf("expected an exclusive RangeExpr, got %+v", loop.Iterable)
	}
}
