package types

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

// Checker consumes an untyped ast.Program and builds a CheckedProgram
// incrementally, maintaining a current-scope cursor and the expected
// return type of the function presently being checked.
type Checker struct {
	prog           *CheckedProgram
	scope          ScopeId
	expectedReturn TypeId
}

// Check runs the typechecker's top-level pass over program, returning
// a fully-annotated CheckedProgram or the first error encountered.
func Check(program *ast.Program) (*CheckedProgram, *diag.Error) {
	c := &Checker{prog: NewCheckedProgram(), scope: RootScope}
	for _, fn := range program.Functions {
		if err := c.checkFunctionDecl(fn); err != nil {
			return nil, err
		}
	}
	return c.prog, nil
}

// checkFunctionDecl implements the top-level pass of §4.3: reject
// duplicate names, resolve the return type, push a parameter scope,
// define parameters, check the body, and verify the return type.
// Functions only become visible to FindByName once appended, so a
// function may not call one declared later in source order.
func (c *Checker) checkFunctionDecl(fn *ast.FunctionDecl) *diag.Error {
	if _, exists := c.prog.Functions.FindByName(fn.Name.Name); exists {
		return diag.NameResolution(fn.Name.Span(), "Function already declared: %s", fn.Name.Name)
	}

	returnType, err := c.resolveTypeSyntax(fn.ReturnType)
	if err != nil {
		return err
	}

	paramScope := c.prog.Scopes.Push(RootScope)
	savedScope, savedReturn := c.scope, c.expectedReturn
	c.scope = paramScope
	c.expectedReturn = returnType

	var params []Parameter
	for _, p := range fn.Parameters {
		typeID, err := c.resolveTypeSyntax(p.Type)
		if err != nil {
			c.scope, c.expectedReturn = savedScope, savedReturn
			return err
		}
		if c.prog.Types.Get(typeID).Kind == KindVoid {
			c.scope, c.expectedReturn = savedScope, savedReturn
			return diag.Type(p.Type.Span(), "void is not a valid parameter type")
		}
		if c.prog.Variables.DefinedInScope(p.Name.Name, paramScope) {
			c.scope, c.expectedReturn = savedScope, savedReturn
			return diag.NameResolution(p.Name.Span(), "Variable already declared")
		}
		varID := c.prog.Variables.Define(typeID, p.Name.Name, p.Name.Span(), paramScope)
		params = append(params, Parameter{Variable: varID, Anonymous: p.Anonymous})
	}

	body, err := c.checkBlock(fn.Body)
	if err != nil {
		c.scope, c.expectedReturn = savedScope, savedReturn
		return err
	}

	if !c.compatible(returnType, body.Type()) && !body.ContainsReturn {
		c.scope, c.expectedReturn = savedScope, savedReturn
		return diag.Type(fn.Body.Span(), "Incompatible return types")
	}

	c.scope, c.expectedReturn = savedScope, savedReturn
	c.prog.Functions.Append(Function{Name: fn.Name.Name, Parameters: params, ReturnType: returnType, Body: body})
	return nil
}

// checkBlock enters a child scope, checks each statement in order, and
// derives the block's type from its last statement (invariant 4) and
// its contains_return_statement flag (§9).
func (c *Checker) checkBlock(block *ast.BlockExpr) (*BlockExpr, *diag.Error) {
	childScope := c.prog.Scopes.Push(c.scope)
	saved := c.scope
	c.scope = childScope

	var stmts []Stmt
	containsReturn := false
	for _, s := range block.Stmts {
		checked, err := c.checkStatement(s)
		if err != nil {
			c.scope = saved
			return nil, err
		}
		stmts = append(stmts, checked)
		containsReturn = containsReturn || stmtContainsReturn(checked)
	}
	c.scope = saved

	blockType := Void
	if len(stmts) > 0 {
		if es, ok := stmts[len(stmts)-1].(*ExpressionStmt); ok && !es.Ends {
			blockType = es.Type()
		}
	}

	return &BlockExpr{
		base:           base{span: block.Span(), typeID: blockType},
		Stmts:          stmts,
		Scope:          childScope,
		ContainsReturn: containsReturn,
	}, nil
}

func stmtContainsReturn(s Stmt) bool {
	switch st := s.(type) {
	case *ReturnStmt:
		return true
	case *ExpressionStmt:
		return exprContainsReturn(st.Expr)
	case *VariableDeclStmt:
		return exprContainsReturn(st.Init)
	case *ForInfiniteStmt:
		return st.Body.ContainsReturn
	case *ForConditionStmt:
		return st.Body.ContainsReturn
	case *ForRangeStmt:
		return st.Body.ContainsReturn
	default:
		return false
	}
}

func exprContainsReturn(e Expr) bool {
	switch ex := e.(type) {
	case nil:
		return false
	case *BlockExpr:
		return ex.ContainsReturn
	case *ParenExpr:
		return exprContainsReturn(ex.Inner)
	case *IfExpr:
		if ex.Then.ContainsReturn {
			return true
		}
		return exprContainsReturn(ex.Else)
	default:
		return false
	}
}
