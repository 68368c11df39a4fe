// Package astdump builds JSON-serializable Go values (map[string]any /
// []any) mirroring the untyped and checked AST trees, per §6's dump
// shape. It performs no formatting or I/O — a caller passes the
// returned value to encoding/json.MarshalIndent.
package astdump

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

func span(s diag.Span) []any { return []any{s.Start, s.End} }

// DumpProgram walks an untyped ast.Program and returns its JSON tree.
func DumpProgram(program *ast.Program) any {
	fns := make([]any, len(program.Functions))
	for i, fn := range program.Functions {
		fns[i] = dumpFunctionDecl(fn)
	}
	return map[string]any{
		"node":      "program",
		"functions": fns,
	}
}

func dumpFunctionDecl(fn *ast.FunctionDecl) any {
	params := make([]any, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = map[string]any{
			"anonymous": p.Anonymous,
			"name":      p.Name.Name,
			"type":      dumpTypeSyntax(p.Type),
		}
	}
	return map[string]any{
		"node":        "function_decl",
		"span":        span(fn.Span()),
		"name":        fn.Name.Name,
		"parameters":  params,
		"return_type": dumpTypeSyntax(fn.ReturnType),
		"body":        dumpExpr(fn.Body),
	}
}

func dumpTypeSyntax(ts *ast.TypeSyntax) any {
	base := map[string]any{
		"span":    span(ts.Span()),
		"mutable": ts.Mutable,
	}
	switch ts.Kind {
	case ast.NamedType:
		base["kind"] = "named"
		base["name"] = ts.Name.Name
	case ast.WeakPointerType:
		base["kind"] = "weak_pointer"
		base["inner"] = dumpTypeSyntax(ts.Inner)
	case ast.StrongPointerType:
		base["kind"] = "strong_pointer"
		base["inner"] = dumpTypeSyntax(ts.Inner)
	case ast.ArrayType:
		base["kind"] = "array"
		base["inner"] = dumpTypeSyntax(ts.Inner)
		base["size"] = ts.Size.Text
	case ast.SliceType:
		base["kind"] = "slice"
		base["inner"] = dumpTypeSyntax(ts.Inner)
	}
	return base
}

func dumpStmt(s ast.Stmt) any {
	switch st := s.(type) {
	case *ast.ExpressionStmt:
		return map[string]any{
			"node": "expression_stmt",
			"span": span(st.Span()),
			"ends": st.Ends,
			"expr": dumpExpr(st.Expr),
		}
	case *ast.VariableDeclStmt:
		m := map[string]any{
			"node":    "variable_decl_stmt",
			"span":    span(st.Span()),
			"mutable": st.Mutable,
			"name":    st.Name.Name,
		}
		if st.Type != nil {
			m["type"] = dumpTypeSyntax(st.Type)
		}
		if st.Init != nil {
			m["init"] = dumpExpr(st.Init)
		}
		return m
	case *ast.ReturnStmt:
		m := map[string]any{"node": "return_stmt", "span": span(st.Span())}
		if st.Value != nil {
			m["value"] = dumpExpr(st.Value)
		}
		return m
	case *ast.ForInfiniteStmt:
		return map[string]any{
			"node": "for_infinite_stmt",
			"span": span(st.Span()),
			"body": dumpExpr(st.Body),
		}
	case *ast.ForConditionStmt:
		return map[string]any{
			"node": "for_condition_stmt",
			"span": span(st.Span()),
			"cond": dumpExpr(st.Cond),
			"body": dumpExpr(st.Body),
		}
	case *ast.ForRangeStmt:
		return map[string]any{
			"node":     "for_range_stmt",
			"span":     span(st.Span()),
			"loop_var": st.LoopVar.Name,
			"iterable": dumpExpr(st.Iterable),
			"body":     dumpExpr(st.Body),
		}
	default:
		return map[string]any{"node": "unknown_stmt", "span": span(s.Span())}
	}
}

func dumpExpr(e ast.Expr) any {
	switch ex := e.(type) {
	case *ast.IntegerLiteral:
		return map[string]any{
			"node":   "integer_literal",
			"span":   span(ex.Span()),
			"text":   ex.Text,
			"radix":  int(ex.Radix),
			"suffix": ex.Suffix,
		}
	case *ast.CharLiteral:
		return map[string]any{"node": "char_literal", "span": span(ex.Span()), "raw": ex.Raw}
	case *ast.BoolLiteral:
		return map[string]any{"node": "bool_literal", "span": span(ex.Span()), "value": ex.Value}
	case *ast.Ident:
		return map[string]any{"node": "ident", "span": span(ex.Span()), "name": ex.Name}
	case *ast.ParenExpr:
		return map[string]any{"node": "paren_expr", "span": span(ex.Span()), "inner": dumpExpr(ex.Inner)}
	case *ast.BinaryExpr:
		return map[string]any{
			"node": "binary_expr", "span": span(ex.Span()),
			"op": int(ex.Op), "lhs": dumpExpr(ex.LHS), "rhs": dumpExpr(ex.RHS),
		}
	case *ast.UnaryExpr:
		return map[string]any{
			"node": "unary_expr", "span": span(ex.Span()),
			"op": int(ex.Op), "operand": dumpExpr(ex.Operand),
		}
	case *ast.AssignExpr:
		return map[string]any{
			"node": "assign_expr", "span": span(ex.Span()),
			"op": int(ex.Op), "lhs": dumpExpr(ex.LHS), "rhs": dumpExpr(ex.RHS),
		}
	case *ast.UpdateExpr:
		return map[string]any{
			"node": "update_expr", "span": span(ex.Span()),
			"op": int(ex.Op), "operand": dumpExpr(ex.Operand), "is_prefix": ex.IsPrefix,
		}
	case *ast.DerefExpr:
		return map[string]any{"node": "deref_expr", "span": span(ex.Span()), "operand": dumpExpr(ex.Operand)}
	case *ast.AddrOfExpr:
		return map[string]any{"node": "addr_of_expr", "span": span(ex.Span()), "operand": dumpExpr(ex.Operand)}
	case *ast.RangeExpr:
		return map[string]any{
			"node": "range_expr", "span": span(ex.Span()),
			"start": dumpExpr(ex.Start), "end": dumpExpr(ex.End), "inclusive": ex.Inclusive,
		}
	case *ast.BlockExpr:
		stmts := make([]any, len(ex.Stmts))
		for i, s := range ex.Stmts {
			stmts[i] = dumpStmt(s)
		}
		return map[string]any{"node": "block_expr", "span": span(ex.Span()), "stmts": stmts}
	case *ast.IfExpr:
		m := map[string]any{
			"node": "if_expr", "span": span(ex.Span()),
			"cond": dumpExpr(ex.Cond), "then": dumpExpr(ex.Then),
		}
		if ex.Else != nil {
			m["else"] = dumpExpr(ex.Else)
		}
		return m
	case *ast.CallExpr:
		args := make([]any, len(ex.Args))
		for i, a := range ex.Args {
			am := map[string]any{"value": dumpExpr(a.Value)}
			if a.Name != nil {
				am["name"] = a.Name.Name
			}
			args[i] = am
		}
		return map[string]any{
			"node": "call_expr", "span": span(ex.Span()),
			"callee": ex.Callee.Name, "args": args,
		}
	case *ast.ArrayLiteral:
		elems := make([]any, len(ex.Elements))
		for i, el := range ex.Elements {
			elems[i] = dumpExpr(el)
		}
		return map[string]any{"node": "array_literal", "span": span(ex.Span()), "elements": elems}
	case *ast.IndexExpr:
		return map[string]any{
			"node": "index_expr", "span": span(ex.Span()),
			"array": dumpExpr(ex.Array), "index": dumpExpr(ex.Index),
		}
	default:
		return map[string]any{"node": "unknown_expr", "span": span(e.Span())}
	}
}
