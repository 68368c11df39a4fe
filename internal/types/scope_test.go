package types_test

import (
	"testing"

	"github.com/boc-lang/boc/internal/types"
)

func TestScopeIsDescendantWalksParentChain(t *testing.T) {
	// invariant 4: a name visible in an outer scope stays visible in
	// every scope pushed as its descendant.
	tbl := types.NewScopeTable()
	child := tbl.Push(types.RootScope)
	grandchild := tbl.Push(child)

	if !tbl.IsDescendant(grandchild, types.RootScope) {
		t.Fatalf("expected the grandchild scope to be a descendant of RootScope")
	}
	if !tbl.IsDescendant(grandchild, child) {
		t.Fatalf("expected the grandchild scope to be a descendant of its immediate parent")
	}
	if tbl.IsDescendant(types.RootScope, child) {
		t.Fatalf("expected RootScope to not be a descendant of a scope pushed below it")
	}
	if !tbl.IsDescendant(child, child) {
		t.Fatalf("expected a scope to be its own descendant")
	}
}

func TestScopeParentReportsRootHasNone(t *testing.T) {
	tbl := types.NewScopeTable()
	if _, ok := tbl.Parent(types.RootScope); ok {
		t.Fatalf("expected RootScope to report no parent")
	}

	child := tbl.Push(types.RootScope)
	parent, ok := tbl.Parent(child)
	if !ok || parent != types.RootScope {
		t.Fatalf("expected child's parent to be RootScope, got %d (ok=%v)", parent, ok)
	}
}

func TestVariableFindRespectsScopeVisibility(t *testing.T) {
	// if the inner block's `x` reference couldn't see the outer scope's
	// declaration, this would fail to check with a name-resolution
	// error instead of producing two distinct variable declarations.
	checked := checkSource(t, "fn f(): void { var x: i32 = 0; { var y: i32 = x; } }")

	fn := checked.Functions.Get(0)
	outer := fn.Body.Stmts[0].(*types.VariableDeclStmt)
	inner := fn.Body.Stmts[1].(*types.ExpressionStmt).Expr.(*types.BlockExpr).Stmts[0].(*types.VariableDeclStmt)

	if outer.Variable == inner.Variable {
		t.Fatalf("expected x and y to be distinct variables")
	}
	ref := inner.Init.(*types.Ident)
	if ref.Variable != outer.Variable {
		t.Fatalf("expected y's initializer to resolve to x's outer VariableId, got %d want %d", ref.Variable, outer.Variable)
	}
}
