package types

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

func (c *Checker) checkStatement(s ast.Stmt) (Stmt, *diag.Error) {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		return c.checkExpressionStmt(st)
	case *ast.VariableDeclStmt:
		return c.checkVariableDeclStmt(st)
	case *ast.ReturnStmt:
		return c.checkReturnStmt(st)
	case *ast.ForInfiniteStmt:
		return c.checkForInfiniteStmt(st)
	case *ast.ForConditionStmt:
		return c.checkForConditionStmt(st)
	case *ast.ForRangeStmt:
		return c.checkForRangeStmt(st)
	default:
		return nil, diag.Syntactic(s.Span(), "unsupported statement node")
	}
}

func (c *Checker) checkExpressionStmt(s *ast.ExpressionStmt) (Stmt, *diag.Error) {
	expr, err := c.checkExpr(s.Expr)
	if err != nil {
		return nil, err
	}
	typeID := Void
	if !s.Ends {
		typeID = expr.Type()
	}
	return &ExpressionStmt{base: base{span: s.Span(), typeID: typeID}, Expr: expr, Ends: s.Ends}, nil
}

func (c *Checker) checkVariableDeclStmt(s *ast.VariableDeclStmt) (Stmt, *diag.Error) {
	var declaredType TypeId
	hasDeclared := false
	if s.Type != nil {
		t, err := c.resolveTypeSyntax(s.Type)
		if err != nil {
			return nil, err
		}
		if c.prog.Types.Get(t).Kind == KindVoid {
			return nil, diag.Type(s.Type.Span(), "void is not a valid variable type")
		}
		declaredType, hasDeclared = t, true
	}

	var initExpr Expr
	if s.Init != nil {
		var hint *TypeId
		if hasDeclared {
			hint = &declaredType
		}
		ie, err := c.checkExprWithHint(s.Init, hint)
		if err != nil {
			return nil, err
		}
		initExpr = ie
		if hasDeclared {
			if !c.compatible(declaredType, ie.Type()) {
				return nil, diag.Type(s.Init.Span(), "Variable type doesn't match expression type")
			}
		} else {
			declaredType = ie.Type()
		}
	}

	finalType := c.prog.Types.WithMutable(declaredType, s.Mutable)
	if c.prog.Variables.DefinedInScope(s.Name.Name, c.scope) {
		return nil, diag.NameResolution(s.Name.Span(), "Variable already declared")
	}
	varID := c.prog.Variables.Define(finalType, s.Name.Name, s.Name.Span(), c.scope)
	return &VariableDeclStmt{base: base{span: s.Span(), typeID: Void}, Variable: varID, Init: initExpr}, nil
}

func (c *Checker) checkReturnStmt(s *ast.ReturnStmt) (Stmt, *diag.Error) {
	var value Expr
	valueType := Void
	if s.Value != nil {
		v, err := c.checkExpr(s.Value)
		if err != nil {
			return nil, err
		}
		value, valueType = v, v.Type()
	}
	if !c.compatible(c.expectedReturn, valueType) {
		return nil, diag.Type(s.Span(), "Incompatible return types")
	}
	return &ReturnStmt{base: base{span: s.Span(), typeID: Void}, Value: value}, nil
}

func (c *Checker) checkForInfiniteStmt(s *ast.ForInfiniteStmt) (Stmt, *diag.Error) {
	body, err := c.checkBlock(s.Body)
	if err != nil {
		return nil, err
	}
	return &ForInfiniteStmt{base: base{span: s.Span(), typeID: Void}, Body: body}, nil
}

func (c *Checker) checkForConditionStmt(s *ast.ForConditionStmt) (Stmt, *diag.Error) {
	childScope := c.prog.Scopes.Push(c.scope)
	saved := c.scope
	c.scope = childScope

	cond, err := c.checkExpr(s.Cond)
	if err != nil {
		c.scope = saved
		return nil, err
	}
	if c.prog.Types.Get(cond.Type()).Kind != KindBool {
		c.scope = saved
		return nil, diag.Type(s.Cond.Span(), "for-loop condition must be boolean")
	}

	body, err := c.checkBlock(s.Body)
	c.scope = saved
	if err != nil {
		return nil, err
	}
	return &ForConditionStmt{base: base{span: s.Span(), typeID: Void}, Cond: cond, Body: body}, nil
}

func (c *Checker) checkForRangeStmt(s *ast.ForRangeStmt) (Stmt, *diag.Error) {
	childScope := c.prog.Scopes.Push(c.scope)
	saved := c.scope
	c.scope = childScope

	iterable, err := c.checkExpr(s.Iterable)
	if err != nil {
		c.scope = saved
		return nil, err
	}
	elemType, ok := c.elementTypeOf(iterable.Type())
	if !ok {
		c.scope = saved
		return nil, diag.Type(s.Iterable.Span(), "for-in iterable must be a range, array, or slice")
	}

	loopVar := c.prog.Variables.Define(elemType, s.LoopVar.Name, s.LoopVar.Span(), childScope)
	body, err := c.checkBlock(s.Body)
	c.scope = saved
	if err != nil {
		return nil, err
	}
	return &ForRangeStmt{base: base{span: s.Span(), typeID: Void}, Variable: loopVar, Iterable: iterable, Body: body}, nil
}

// elementTypeOf returns the element type of a Range, Array, or Slice,
// per the for-in loop's typing rule.
func (c *Checker) elementTypeOf(id TypeId) (TypeId, bool) {
	ty := c.prog.Types.Get(id)
	switch ty.Kind {
	case KindRange, KindArray, KindSlice:
		return ty.Inner, true
	default:
		return 0, false
	}
}
