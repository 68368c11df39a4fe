package astdump

import (
	"github.com/boc-lang/boc/internal/types"
)

// dumpType renders a TypeId per §6: a builtin name string, or an
// object {"name": "pointer"|"array"|"slice"|"range", ...} for the
// composite shapes.
func dumpType(tbl *types.TypeTable, id types.TypeId) any {
	ty := tbl.Get(id)
	switch ty.Kind {
	case types.KindPointer:
		kind := "weak"
		if ty.PointerKind == types.Strong {
			kind = "strong"
		}
		return map[string]any{
			"name":    "pointer",
			"kind":    kind,
			"mutable": ty.Mutable,
			"inner":   dumpType(tbl, ty.Inner),
		}
	case types.KindArray:
		return map[string]any{
			"name":    "array",
			"size":    ty.Size,
			"mutable": ty.Mutable,
			"inner":   dumpType(tbl, ty.Inner),
		}
	case types.KindSlice:
		return map[string]any{
			"name":    "slice",
			"mutable": ty.Mutable,
			"inner":   dumpType(tbl, ty.Inner),
		}
	case types.KindRange:
		return map[string]any{
			"name":      "range",
			"inclusive": ty.Inclusive,
			"inner":     dumpType(tbl, ty.Inner),
		}
	default:
		return tbl.Describe(id)
	}
}

// dumpVariable renders a variable reference per §6: {"name","type","declaration_span":[s,e]}.
func dumpVariable(prog *types.CheckedProgram, id types.VariableId) any {
	v := prog.Variables.Get(id)
	return map[string]any{
		"name":             v.Name,
		"type":             dumpType(prog.Types, v.TypeID),
		"declaration_span": span(v.DeclarationSpan),
	}
}

// DumpCheckedProgram walks a types.CheckedProgram and returns its JSON tree.
func DumpCheckedProgram(prog *types.CheckedProgram) any {
	fns := make([]any, prog.Functions.Count())
	for i := 0; i < prog.Functions.Count(); i++ {
		fns[i] = dumpCheckedFunction(prog, prog.Functions.Get(types.FunctionId(i)))
	}
	return map[string]any{
		"node":      "checked_program",
		"functions": fns,
	}
}

func dumpCheckedFunction(prog *types.CheckedProgram, fn types.Function) any {
	params := make([]any, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = map[string]any{
			"anonymous": p.Anonymous,
			"variable":  dumpVariable(prog, p.Variable),
		}
	}
	return map[string]any{
		"node":        "function",
		"name":        fn.Name,
		"parameters":  params,
		"return_type": dumpType(prog.Types, fn.ReturnType),
		"body":        dumpCheckedExpr(prog, fn.Body),
	}
}

func dumpCheckedStmt(prog *types.CheckedProgram, s types.Stmt) any {
	switch st := s.(type) {
	case *types.ExpressionStmt:
		return map[string]any{
			"node": "expression_stmt", "span": span(st.Span()),
			"ends": st.Ends, "expr": dumpCheckedExpr(prog, st.Expr),
		}
	case *types.VariableDeclStmt:
		m := map[string]any{
			"node": "variable_decl_stmt", "span": span(st.Span()),
			"variable": dumpVariable(prog, st.Variable),
		}
		if st.Init != nil {
			m["init"] = dumpCheckedExpr(prog, st.Init)
		}
		return m
	case *types.ReturnStmt:
		m := map[string]any{"node": "return_stmt", "span": span(st.Span())}
		if st.Value != nil {
			m["value"] = dumpCheckedExpr(prog, st.Value)
		}
		return m
	case *types.ForInfiniteStmt:
		return map[string]any{
			"node": "for_infinite_stmt", "span": span(st.Span()),
			"body": dumpCheckedExpr(prog, st.Body),
		}
	case *types.ForConditionStmt:
		return map[string]any{
			"node": "for_condition_stmt", "span": span(st.Span()),
			"cond": dumpCheckedExpr(prog, st.Cond), "body": dumpCheckedExpr(prog, st.Body),
		}
	case *types.ForRangeStmt:
		return map[string]any{
			"node": "for_range_stmt", "span": span(st.Span()),
			"variable": dumpVariable(prog, st.Variable),
			"iterable": dumpCheckedExpr(prog, st.Iterable),
			"body":     dumpCheckedExpr(prog, st.Body),
		}
	default:
		return map[string]any{"node": "unknown_stmt", "span": span(s.Span())}
	}
}

func dumpCheckedExpr(prog *types.CheckedProgram, e types.Expr) any {
	if e == nil {
		return nil
	}
	base := map[string]any{"span": span(e.Span()), "type": dumpType(prog.Types, e.Type())}

	switch ex := e.(type) {
	case *types.IntegerLiteral:
		base["node"] = "integer_literal"
		base["text"] = ex.Text
		base["suffix"] = ex.Suffix
	case *types.CharLiteral:
		base["node"] = "char_literal"
		base["raw"] = ex.Raw
	case *types.BoolLiteral:
		base["node"] = "bool_literal"
		base["value"] = ex.Value
	case *types.Ident:
		base["node"] = "ident"
		base["variable"] = dumpVariable(prog, ex.Variable)
	case *types.ParenExpr:
		base["node"] = "paren_expr"
		base["inner"] = dumpCheckedExpr(prog, ex.Inner)
	case *types.BinaryExpr:
		base["node"] = "binary_expr"
		base["op"] = int(ex.Op)
		base["lhs"] = dumpCheckedExpr(prog, ex.LHS)
		base["rhs"] = dumpCheckedExpr(prog, ex.RHS)
	case *types.UnaryExpr:
		base["node"] = "unary_expr"
		base["op"] = int(ex.Op)
		base["operand"] = dumpCheckedExpr(prog, ex.Operand)
	case *types.AssignExpr:
		base["node"] = "assign_expr"
		base["op"] = int(ex.Op)
		base["lhs"] = dumpCheckedExpr(prog, ex.LHS)
		base["rhs"] = dumpCheckedExpr(prog, ex.RHS)
	case *types.UpdateExpr:
		base["node"] = "update_expr"
		base["op"] = int(ex.Op)
		base["operand"] = dumpCheckedExpr(prog, ex.Operand)
		base["is_prefix"] = ex.IsPrefix
	case *types.DerefExpr:
		base["node"] = "deref_expr"
		base["operand"] = dumpCheckedExpr(prog, ex.Operand)
	case *types.AddrOfExpr:
		base["node"] = "addr_of_expr"
		base["operand"] = dumpCheckedExpr(prog, ex.Operand)
	case *types.RangeExpr:
		base["node"] = "range_expr"
		base["start"] = dumpCheckedExpr(prog, ex.Start)
		base["end"] = dumpCheckedExpr(prog, ex.End)
		base["inclusive"] = ex.Inclusive
	case *types.BlockExpr:
		stmts := make([]any, len(ex.Stmts))
		for i, s := range ex.Stmts {
			stmts[i] = dumpCheckedStmt(prog, s)
		}
		base["node"] = "block_expr"
		base["stmts"] = stmts
		base["contains_return"] = ex.ContainsReturn
	case *types.IfExpr:
		base["node"] = "if_expr"
		base["cond"] = dumpCheckedExpr(prog, ex.Cond)
		base["then"] = dumpCheckedExpr(prog, ex.Then)
		if ex.Else != nil {
			base["else"] = dumpCheckedExpr(prog, ex.Else)
		}
	case *types.CallExpr:
		name := ex.Builtin
		if name == "" {
			name = prog.Functions.Get(ex.Function).Name
		}
		args := make([]any, len(ex.Args))
		for i, a := range ex.Args {
			args[i] = dumpCheckedExpr(prog, a)
		}
		base["node"] = "call_expr"
		base["function"] = name
		base["args"] = args
	case *types.ArrayLiteral:
		elems := make([]any, len(ex.Elements))
		for i, el := range ex.Elements {
			elems[i] = dumpCheckedExpr(prog, el)
		}
		base["node"] = "array_literal"
		base["elements"] = elems
	case *types.IndexExpr:
		base["node"] = "index_expr"
		base["array"] = dumpCheckedExpr(prog, ex.Array)
		base["index"] = dumpCheckedExpr(prog, ex.Index)
	default:
		base["node"] = "unknown_expr"
	}
	return base
}
