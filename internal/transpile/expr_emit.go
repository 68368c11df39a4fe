package transpile

import (
	"fmt"
	"strings"

	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/types"
)

var binaryOpSymbols = map[ast.BinaryOp]string{
	ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Mod: "%",
	ast.Shl: "<<", ast.Shr: ">>",
	ast.Lt: "<", ast.Gt: ">", ast.Le: "<=", ast.Ge: ">=",
	ast.Eq: "==", ast.Ne: "!=",
	ast.BitAnd: "&", ast.BitXor: "^", ast.BitOr: "|",
	ast.LogAnd: "&&", ast.LogOr: "||",
}

var unaryOpSymbols = map[ast.UnaryOp]string{
	ast.Pos: "+", ast.Neg: "-", ast.LogNot: "!", ast.BitNot: "~",
}

var assignOpSymbols = map[ast.AssignOp]string{
	ast.Assign: "=", ast.AddAssign: "+=", ast.SubAssign: "-=", ast.MulAssign: "*=",
	ast.DivAssign: "/=", ast.ModAssign: "%=", ast.ShlAssign: "<<=", ast.ShrAssign: ">>=",
	ast.AndAssign: "&=", ast.XorAssign: "^=", ast.OrAssign: "|=",
}

// emitExpr renders a checked expression as a C++ expression string.
// Every binary/unary/assignment/update expression is wrapped in
// static_cast<T>(...) per §4.4, so the target language's implicit
// conversions never reshape the value.
func (t *Transpiler) emitExpr(e types.Expr) (string, *diag.Error) {
	switch ex := e.(type) {
	case *types.IntegerLiteral:
		return t.emitIntegerLiteral(ex)
	case *types.CharLiteral:
		return ex.Raw, nil
	case *types.BoolLiteral:
		if ex.Value {
			return "true", nil
		}
		return "false", nil
	case *types.Ident:
		v := t.prog.Variables.Get(ex.Variable)
		return v.Name, nil
	case *types.ParenExpr:
		inner, err := t.emitExpr(ex.Inner)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	case *types.BinaryExpr:
		return t.emitBinaryExpr(ex)
	case *types.UnaryExpr:
		return t.emitUnaryExpr(ex)
	case *types.AssignExpr:
		return t.emitAssignExpr(ex)
	case *types.UpdateExpr:
		return t.emitUpdateExpr(ex)
	case *types.DerefExpr:
		operand, err := t.emitExpr(ex.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(*%s)", operand), nil
	case *types.AddrOfExpr:
		operand, err := t.emitExpr(ex.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(&%s)", operand), nil
	case *types.RangeExpr:
		return t.emitRangeExpr(ex)
	case *types.BlockExpr:
		return t.emitBlockAsExpr(ex)
	case *types.IfExpr:
		return t.emitIfExpr(ex)
	case *types.CallExpr:
		return t.emitCallExpr(ex)
	case *types.ArrayLiteral:
		return t.emitArrayLiteral(ex)
	case *types.IndexExpr:
		return t.emitIndexExpr(ex)
	default:
		return "", diag.TranspilerInternal(e.Span(), "unsupported expression reached emission")
	}
}

func (t *Transpiler) emitIntegerLiteral(ex *types.IntegerLiteral) (string, *diag.Error) {
	if ex.Suffix != "" {
		return fmt.Sprintf("%s_%s", ex.Text, ex.Suffix), nil
	}
	return fmt.Sprintf("static_cast<i32>(%s)", ex.Text), nil
}

func (t *Transpiler) emitBinaryExpr(ex *types.BinaryExpr) (string, *diag.Error) {
	lhs, err := t.emitExpr(ex.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := t.emitExpr(ex.RHS)
	if err != nil {
		return "", err
	}
	sym, ok := binaryOpSymbols[ex.Op]
	if !ok {
		return "", diag.TranspilerInternal(ex.Span(), "unsupported binary operator reached emission")
	}
	resultType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("static_cast<%s>((%s) %s (%s))", resultType, lhs, sym, rhs), nil
}

func (t *Transpiler) emitUnaryExpr(ex *types.UnaryExpr) (string, *diag.Error) {
	operand, err := t.emitExpr(ex.Operand)
	if err != nil {
		return "", err
	}
	sym, ok := unaryOpSymbols[ex.Op]
	if !ok {
		return "", diag.TranspilerInternal(ex.Span(), "unsupported unary operator reached emission")
	}
	resultType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("static_cast<%s>(%s(%s))", resultType, sym, operand), nil
}

// emitAssignExpr handles &&= and ||= via the documented lowering into
// `(lhs) = (lhs) && (rhs)` / `… || …`, preserving short-circuiting;
// every other operator maps directly onto its C++ compound form.
func (t *Transpiler) emitAssignExpr(ex *types.AssignExpr) (string, *diag.Error) {
	lhs, err := t.emitExpr(ex.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := t.emitExpr(ex.RHS)
	if err != nil {
		return "", err
	}
	resultType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}

	switch ex.Op {
	case ast.LogAndAssign:
		return fmt.Sprintf("static_cast<%s>((%s) = (%s) && (%s))", resultType, lhs, lhs, rhs), nil
	case ast.LogOrAssign:
		return fmt.Sprintf("static_cast<%s>((%s) = (%s) || (%s))", resultType, lhs, lhs, rhs), nil
	}

	sym, ok := assignOpSymbols[ex.Op]
	if !ok {
		return "", diag.TranspilerInternal(ex.Span(), "unsupported assignment operator reached emission")
	}
	return fmt.Sprintf("static_cast<%s>((%s) %s (%s))", resultType, lhs, sym, rhs), nil
}

func (t *Transpiler) emitUpdateExpr(ex *types.UpdateExpr) (string, *diag.Error) {
	operand, err := t.emitExpr(ex.Operand)
	if err != nil {
		return "", err
	}
	resultType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}
	sym := "++"
	if ex.Op == ast.Decrement {
		sym = "--"
	}
	if ex.IsPrefix {
		return fmt.Sprintf("static_cast<%s>(%s(%s))", resultType, sym, operand), nil
	}
	return fmt.Sprintf("static_cast<%s>((%s)%s)", resultType, operand, sym), nil
}

func (t *Transpiler) emitRangeExpr(ex *types.RangeExpr) (string, *diag.Error) {
	start, err := t.emitExpr(ex.Start)
	if err != nil {
		return "", err
	}
	end, err := t.emitExpr(ex.End)
	if err != nil {
		return "", err
	}
	rangeType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s{%s, %s}", rangeType, start, end), nil
}

// emitBlockAsExpr lowers a block used as an expression into the GCC
// statement-expression form; the last statement's value is the
// block's value.
func (t *Transpiler) emitBlockAsExpr(b *types.BlockExpr) (string, *diag.Error) {
	var sb strings.Builder
	sb.WriteString("({ ")
	for i, s := range b.Stmts {
		last := i == len(b.Stmts)-1
		rendered, err := t.emitStatementInExprBlock(s, last)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
		sb.WriteString(" ")
	}
	sb.WriteString("})")
	return sb.String(), nil
}

// emitStatementInExprBlock renders one statement inside a statement
// expression. When last is true and the statement is a non-terminated
// expression statement, its value becomes the enclosing ({ ... })'s
// value — GCC's statement-expression extension yields the value of
// the final expression statement.
func (t *Transpiler) emitStatementInExprBlock(s types.Stmt, last bool) (string, *diag.Error) {
	if es, ok := s.(*types.ExpressionStmt); ok && last && !es.Ends {
		value, err := t.emitExpr(es.Expr)
		if err != nil {
			return "", err
		}
		return value + ";", nil
	}
	return t.emitStatement(s)
}

// emitIfExpr lowers a non-void if into a statement expression that
// declares a fresh temporary, assigns it in each branch, and yields
// it; a void if is emitted as a plain statement-shaped if with no
// yielded value.
func (t *Transpiler) emitIfExpr(ex *types.IfExpr) (string, *diag.Error) {
	cond, err := t.emitExpr(ex.Cond)
	if err != nil {
		return "", err
	}

	if t.prog.Types.Get(ex.Type()).Kind == types.KindVoid {
		thenBlock, err := t.emitBlockAsStatement(ex.Then)
		if err != nil {
			return "", err
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "if (%s) %s", cond, thenBlock)
		if ex.Else != nil {
			elseRendered, err := t.emitElseBranch(ex.Else)
			if err != nil {
				return "", err
			}
			sb.WriteString(" else ")
			sb.WriteString(elseRendered)
		}
		return sb.String(), nil
	}

	temp := newTemp(t.tempNext)
	t.tempNext++
	resultType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}

	thenAssign, err := t.emitBranchAssigning(ex.Then, temp)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "({ %s %s; if (%s) %s", resultType, temp, cond, thenAssign)
	if ex.Else != nil {
		elseRendered, err := t.emitElseBranchAssigning(ex.Else, temp)
		if err != nil {
			return "", err
		}
		sb.WriteString(" else ")
		sb.WriteString(elseRendered)
	}
	fmt.Fprintf(&sb, " %s; })", temp)
	return sb.String(), nil
}

func (t *Transpiler) emitElseBranch(e types.Expr) (string, *diag.Error) {
	switch branch := e.(type) {
	case *types.BlockExpr:
		return t.emitBlockAsStatement(branch)
	case *types.IfExpr:
		return t.emitIfExpr(branch)
	default:
		return "", diag.TranspilerInternal(e.Span(), "unsupported else branch reached emission")
	}
}

func (t *Transpiler) emitElseBranchAssigning(e types.Expr, temp string) (string, *diag.Error) {
	switch branch := e.(type) {
	case *types.BlockExpr:
		return t.emitBranchAssigning(branch, temp)
	case *types.IfExpr:
		nested, err := t.emitIfExpr(branch)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{ %s = %s; }", temp, nested), nil
	default:
		return "", diag.TranspilerInternal(e.Span(), "unsupported else branch reached emission")
	}
}

// emitBranchAssigning renders a block whose last unterminated
// expression statement assigns into temp instead of yielding via
// statement-expression nesting.
func (t *Transpiler) emitBranchAssigning(b *types.BlockExpr, temp string) (string, *diag.Error) {
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, s := range b.Stmts {
		last := i == len(b.Stmts)-1
		if es, ok := s.(*types.ExpressionStmt); ok && last && !es.Ends {
			value, err := t.emitExpr(es.Expr)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s = %s;", temp, value)
			continue
		}
		rendered, err := t.emitStatement(s)
		if err != nil {
			return "", err
		}
		sb.WriteString(rendered)
		sb.WriteString(" ")
	}
	sb.WriteString(" }")
	return sb.String(), nil
}

func (t *Transpiler) emitCallExpr(ex *types.CallExpr) (string, *diag.Error) {
	name := ex.Builtin
	if name == "" {
		fn := t.prog.Functions.Get(ex.Function)
		name = fn.Name
		if name == "main" {
			name = "bo_main"
		}
	}
	args := make([]string, len(ex.Args))
	for i, a := range ex.Args {
		rendered, err := t.emitExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = rendered
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), nil
}

func (t *Transpiler) emitArrayLiteral(ex *types.ArrayLiteral) (string, *diag.Error) {
	elemType, err := t.emitType(ex.Type(), true)
	if err != nil {
		return "", err
	}
	elems := make([]string, len(ex.Elements))
	for i, el := range ex.Elements {
		rendered, err := t.emitExpr(el)
		if err != nil {
			return "", err
		}
		elems[i] = rendered
	}
	return fmt.Sprintf("%s{%s}", elemType, strings.Join(elems, ", ")), nil
}

func (t *Transpiler) emitIndexExpr(ex *types.IndexExpr) (string, *diag.Error) {
	arr, err := t.emitExpr(ex.Array)
	if err != nil {
		return "", err
	}
	idx, err := t.emitExpr(ex.Index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(%s)[%s]", arr, idx), nil
}
