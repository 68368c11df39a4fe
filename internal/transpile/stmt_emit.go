package transpile

import (
	"fmt"
	"strings"

	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/types"
)

// emitFunctionBody renders a function's block as `{ ... }`, rewriting
// the last statement (when it is a non-terminated expression
// statement yielding returnType) into a return, per §4.4.
func (t *Transpiler) emitFunctionBody(b *types.BlockExpr, returnType types.TypeId) (string, *diag.Error) {
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, s := range b.Stmts {
		last := i == len(b.Stmts)-1
		if es, ok := s.(*types.ExpressionStmt); ok && last && !es.Ends {
			value, err := t.emitExpr(es.Expr)
			if err != nil {
				return "", err
			}
			if t.prog.Types.Get(returnType).Kind == types.KindVoid {
				fmt.Fprintf(&sb, "  %s;\n", value)
			} else {
				fmt.Fprintf(&sb, "  return %s;\n", value)
			}
			continue
		}
		rendered, err := t.emitStatement(s)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "  %s\n", rendered)
	}
	sb.WriteString("}")
	return sb.String(), nil
}

// emitBlockAsStatement renders a block in statement position (an
// if/for body): `{ ... }` with no yielded value, each statement
// terminated.
func (t *Transpiler) emitBlockAsStatement(b *types.BlockExpr) (string, *diag.Error) {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, s := range b.Stmts {
		rendered, err := t.emitStatement(s)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
		sb.WriteString(" ")
	}
	sb.WriteString("}")
	return sb.String(), nil
}

func (t *Transpiler) emitStatement(s types.Stmt) (string, *diag.Error) {
	switch st := s.(type) {
	case *types.ExpressionStmt:
		value, err := t.emitExpr(st.Expr)
		if err != nil {
			return "", err
		}
		return value + ";", nil
	case *types.VariableDeclStmt:
		return t.emitVariableDeclStmt(st)
	case *types.ReturnStmt:
		if st.Value == nil {
			return "return;", nil
		}
		value, err := t.emitExpr(st.Value)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("return %s;", value), nil
	case *types.ForInfiniteStmt:
		body, err := t.emitBlockAsStatement(st.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("for (;;) %s", body), nil
	case *types.ForConditionStmt:
		cond, err := t.emitExpr(st.Cond)
		if err != nil {
			return "", err
		}
		body, err := t.emitBlockAsStatement(st.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("for (; %s; ) %s", cond, body), nil
	case *types.ForRangeStmt:
		return t.emitForRangeStmt(st)
	default:
		return "", diag.TranspilerInternal(s.Span(), "unsupported statement reached emission")
	}
}

func (t *Transpiler) emitVariableDeclStmt(s *types.VariableDeclStmt) (string, *diag.Error) {
	v := t.prog.Variables.Get(s.Variable)
	declType, err := t.emitType(v.TypeID, false)
	if err != nil {
		return "", err
	}
	if s.Init == nil {
		return fmt.Sprintf("%s %s;", declType, v.Name), nil
	}
	init, err := t.emitExpr(s.Init)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s = %s;", declType, v.Name, init), nil
}

func (t *Transpiler) emitForRangeStmt(s *types.ForRangeStmt) (string, *diag.Error) {
	v := t.prog.Variables.Get(s.Variable)
	elemType, err := t.emitType(v.TypeID, true)
	if err != nil {
		return "", err
	}
	iterable, err := t.emitExpr(s.Iterable)
	if err != nil {
		return "", err
	}
	body, err := t.emitBlockAsStatement(s.Body)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("for (%s %s : %s) %s", elemType, v.Name, iterable, body), nil
}
