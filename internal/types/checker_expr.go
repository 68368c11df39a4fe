package types

import (
	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/diag"
)

func (c *Checker) checkExpr(e ast.Expr) (Expr, *diag.Error) {
	return c.checkExprWithHint(e, nil)
}

// checkExprWithHint checks e, passing hint through only to an array
// literal, where it drives length/element-type inference (§4.3.4).
// Every other expression kind ignores the hint.
func (c *Checker) checkExprWithHint(e ast.Expr, hint *TypeId) (Expr, *diag.Error) {
	switch ex := e.(type) {
	case *ast.ParenExpr:
		inner, err := c.checkExprWithHint(ex.Inner, hint)
		if err != nil {
			return nil, err
		}
		return &ParenExpr{base: base{ex.Span(), inner.Type()}, Inner: inner}, nil
	case *ast.IntegerLiteral:
		return c.checkIntegerLiteral(ex)
	case *ast.CharLiteral:
		return &CharLiteral{base: base{ex.Span(), Char}, Raw: ex.Raw}, nil
	case *ast.BoolLiteral:
		return &BoolLiteral{base: base{ex.Span(), Bool}, Value: ex.Value}, nil
	case *ast.Ident:
		return c.checkIdent(ex)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(ex)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(ex)
	case *ast.AssignExpr:
		return c.checkAssignExpr(ex)
	case *ast.UpdateExpr:
		return c.checkUpdateExpr(ex)
	case *ast.DerefExpr:
		return c.checkDerefExpr(ex)
	case *ast.AddrOfExpr:
		return c.checkAddrOfExpr(ex)
	case *ast.RangeExpr:
		return c.checkRangeExpr(ex)
	case *ast.BlockExpr:
		block, err := c.checkBlock(ex)
		if err != nil {
			return nil, err
		}
		return block, nil
	case *ast.IfExpr:
		return c.checkIfExpr(ex)
	case *ast.CallExpr:
		return c.checkCallExpr(ex)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(ex, hint)
	case *ast.IndexExpr:
		return c.checkIndexExpr(ex)
	default:
		return nil, diag.Type(e.Span(), "unsupported expression node")
	}
}

func (c *Checker) checkIntegerLiteral(ex *ast.IntegerLiteral) (Expr, *diag.Error) {
	typeID := I32
	if ex.Suffix != "" {
		t, ok := suffixTypes[ex.Suffix]
		if !ok {
			return nil, diag.Type(ex.Span(), "bad integer literal suffix: %s", ex.Suffix)
		}
		typeID = t
	}
	return &IntegerLiteral{base: base{ex.Span(), typeID}, Text: ex.Text, Radix: ex.Radix, Suffix: ex.Suffix}, nil
}

func (c *Checker) checkIdent(ex *ast.Ident) (Expr, *diag.Error) {
	varID, ok := c.prog.Variables.Find(ex.Name, c.scope, c.prog.Scopes)
	if !ok {
		return nil, diag.NameResolution(ex.Span(), "Unknown identifier: %s", ex.Name)
	}
	v := c.prog.Variables.Get(varID)
	return &Ident{base: base{ex.Span(), v.TypeID}, Variable: varID}, nil
}

func (c *Checker) checkBinaryExpr(ex *ast.BinaryExpr) (Expr, *diag.Error) {
	lhs, err := c.checkExpr(ex.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := c.checkExpr(ex.RHS)
	if err != nil {
		return nil, err
	}

	var result TypeId
	switch ex.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod, ast.BitAnd, ast.BitXor, ast.BitOr:
		if !c.prog.Types.IsInteger(lhs.Type()) || !c.prog.Types.IsInteger(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "both operands of %s must be integers", binaryOpName(ex.Op))
		}
		if c.prog.Types.IsSigned(lhs.Type()) != c.prog.Types.IsSigned(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "operands must have the same signedness")
		}
		if c.prog.Types.Width(lhs.Type()) != c.prog.Types.Width(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "operands must have the same width")
		}
		result = lhs.Type()

	case ast.Shl, ast.Shr:
		if !c.prog.Types.IsInteger(lhs.Type()) || !c.prog.Types.IsInteger(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "both operands of a shift must be integers")
		}
		result = lhs.Type()

	case ast.Lt, ast.Gt, ast.Le, ast.Ge:
		bothInt := c.prog.Types.IsInteger(lhs.Type()) && c.prog.Types.IsInteger(rhs.Type()) &&
			c.prog.Types.IsSigned(lhs.Type()) == c.prog.Types.IsSigned(rhs.Type())
		bothChar := c.prog.Types.Get(lhs.Type()).Kind == KindChar && c.prog.Types.Get(rhs.Type()).Kind == KindChar
		if !bothInt && !bothChar {
			return nil, diag.Type(ex.Span(), "comparison between different signedness")
		}
		result = Bool

	case ast.Eq, ast.Ne:
		bothInt := c.prog.Types.IsInteger(lhs.Type()) && c.prog.Types.IsInteger(rhs.Type()) &&
			c.prog.Types.IsSigned(lhs.Type()) == c.prog.Types.IsSigned(rhs.Type())
		sameOtherType := !c.prog.Types.IsInteger(lhs.Type()) &&
			c.prog.Types.Equal(lhs.Type(), rhs.Type())
		if !bothInt && !sameOtherType {
			return nil, diag.Type(ex.Span(), "incompatible types for equality comparison")
		}
		result = Bool

	case ast.LogAnd, ast.LogOr:
		if c.prog.Types.Get(lhs.Type()).Kind != KindBool || c.prog.Types.Get(rhs.Type()).Kind != KindBool {
			return nil, diag.Type(ex.Span(), "logical operator requires boolean operands")
		}
		result = Bool

	default:
		return nil, diag.Type(ex.Span(), "unknown binary operator")
	}

	return &BinaryExpr{base: base{ex.Span(), result}, Op: ex.Op, LHS: lhs, RHS: rhs}, nil
}

func binaryOpName(op ast.BinaryOp) string {
	names := map[ast.BinaryOp]string{
		ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Mod: "%",
		ast.BitAnd: "&", ast.BitXor: "^", ast.BitOr: "|",
	}
	if n, ok := names[op]; ok {
		return n
	}
	return "binary operator"
}

func (c *Checker) checkUnaryExpr(ex *ast.UnaryExpr) (Expr, *diag.Error) {
	operand, err := c.checkExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case ast.Pos, ast.Neg, ast.BitNot:
		if !c.prog.Types.IsInteger(operand.Type()) {
			return nil, diag.Type(ex.Span(), "unary operator requires an integer operand")
		}
		return &UnaryExpr{base: base{ex.Span(), operand.Type()}, Op: ex.Op, Operand: operand}, nil
	case ast.LogNot:
		if c.prog.Types.Get(operand.Type()).Kind != KindBool {
			return nil, diag.Type(ex.Span(), "logical not requires a boolean operand")
		}
		return &UnaryExpr{base: base{ex.Span(), Bool}, Op: ex.Op, Operand: operand}, nil
	default:
		return nil, diag.Type(ex.Span(), "unknown unary operator")
	}
}

// isAssignableNode reports whether an untyped AST expression is one of
// the lvalue-shaped forms: a variable, a pointer dereference, or an
// array/slice index.
func isAssignableNode(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.DerefExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

func (c *Checker) checkAssignExpr(ex *ast.AssignExpr) (Expr, *diag.Error) {
	if !isAssignableNode(ex.LHS) {
		return nil, diag.Type(ex.LHS.Span(), "left-hand side of assignment is not assignable")
	}
	lhs, err := c.checkExpr(ex.LHS)
	if err != nil {
		return nil, err
	}
	if !c.prog.Types.Get(lhs.Type()).Mutable {
		return nil, diag.Type(ex.Span(), "Cannot assign to immutable value")
	}
	rhs, err := c.checkExpr(ex.RHS)
	if err != nil {
		return nil, err
	}

	var result TypeId
	switch ex.Op {
	case ast.Assign:
		if !c.compatible(lhs.Type(), rhs.Type()) {
			return nil, diag.Type(ex.Span(), "Incompatible types for assignment")
		}
		result = lhs.Type()
	case ast.AddAssign, ast.SubAssign, ast.MulAssign, ast.DivAssign, ast.ModAssign,
		ast.AndAssign, ast.XorAssign, ast.OrAssign:
		if !c.prog.Types.IsInteger(lhs.Type()) || !c.prog.Types.IsInteger(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "compound assignment requires integer operands")
		}
		if c.prog.Types.IsSigned(lhs.Type()) != c.prog.Types.IsSigned(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "operands must have the same signedness")
		}
		if c.prog.Types.Width(lhs.Type()) != c.prog.Types.Width(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "operands must have the same width")
		}
		result = lhs.Type()
	case ast.ShlAssign, ast.ShrAssign:
		if !c.prog.Types.IsInteger(lhs.Type()) || !c.prog.Types.IsInteger(rhs.Type()) {
			return nil, diag.Type(ex.Span(), "compound shift-assignment requires integer operands")
		}
		result = lhs.Type()
	case ast.LogAndAssign, ast.LogOrAssign:
		if c.prog.Types.Get(lhs.Type()).Kind != KindBool || c.prog.Types.Get(rhs.Type()).Kind != KindBool {
			return nil, diag.Type(ex.Span(), "logical operator requires boolean operands")
		}
		result = Bool
	default:
		return nil, diag.Type(ex.Span(), "unknown assignment operator")
	}

	return &AssignExpr{base: base{ex.Span(), result}, Op: ex.Op, LHS: lhs, RHS: rhs}, nil
}

func (c *Checker) checkUpdateExpr(ex *ast.UpdateExpr) (Expr, *diag.Error) {
	if !isAssignableNode(ex.Operand) {
		return nil, diag.Type(ex.Operand.Span(), "operand of ++/-- is not assignable")
	}
	operand, err := c.checkExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	if !c.prog.Types.IsInteger(operand.Type()) {
		return nil, diag.Type(ex.Span(), "++/-- requires an integer operand")
	}
	if !c.prog.Types.Get(operand.Type()).Mutable {
		return nil, diag.Type(ex.Span(), "Cannot assign to immutable value")
	}
	return &UpdateExpr{base: base{ex.Span(), operand.Type()}, Op: ex.Op, Operand: operand, IsPrefix: ex.IsPrefix}, nil
}

func (c *Checker) checkDerefExpr(ex *ast.DerefExpr) (Expr, *diag.Error) {
	operand, err := c.checkExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	ty := c.prog.Types.Get(operand.Type())
	if ty.Kind != KindPointer {
		return nil, diag.Type(ex.Span(), "cannot dereference a non-pointer value")
	}
	return &DerefExpr{base: base{ex.Span(), ty.Inner}, Operand: operand}, nil
}

func (c *Checker) checkAddrOfExpr(ex *ast.AddrOfExpr) (Expr, *diag.Error) {
	operand, err := c.checkExpr(ex.Operand)
	if err != nil {
		return nil, err
	}
	ptrType := c.prog.Types.Pointer(Strong, operand.Type(), false)
	return &AddrOfExpr{base: base{ex.Span(), ptrType}, Operand: operand}, nil
}

func (c *Checker) checkRangeExpr(ex *ast.RangeExpr) (Expr, *diag.Error) {
	start, err := c.checkExpr(ex.Start)
	if err != nil {
		return nil, err
	}
	end, err := c.checkExpr(ex.End)
	if err != nil {
		return nil, err
	}
	if !c.prog.Types.IsInteger(start.Type()) || !c.prog.Types.IsInteger(end.Type()) {
		return nil, diag.Type(ex.Span(), "range bounds must be integers")
	}
	rangeType := c.prog.Types.Range(start.Type(), ex.Inclusive)
	return &RangeExpr{base: base{ex.Span(), rangeType}, Start: start, End: end, Inclusive: ex.Inclusive}, nil
}

func (c *Checker) checkIfExpr(ex *ast.IfExpr) (Expr, *diag.Error) {
	cond, err := c.checkExpr(ex.Cond)
	if err != nil {
		return nil, err
	}
	if c.prog.Types.Get(cond.Type()).Kind != KindBool {
		return nil, diag.Type(ex.Cond.Span(), "if condition must be boolean")
	}
	then, err := c.checkBlock(ex.Then)
	if err != nil {
		return nil, err
	}

	var elseExpr Expr
	result := TypeId(Void)
	if ex.Else != nil {
		switch elseAst := ex.Else.(type) {
		case *ast.BlockExpr:
			eb, err := c.checkBlock(elseAst)
			if err != nil {
				return nil, err
			}
			elseExpr = eb
		case *ast.IfExpr:
			ei, err := c.checkIfExpr(elseAst)
			if err != nil {
				return nil, err
			}
			elseExpr = ei
		default:
			return nil, diag.Syntactic(ex.Else.Span(), "if-else must be a block or another if")
		}
		if then.Type() != elseExpr.Type() {
			return nil, diag.Type(ex.Span(), "If branches must have the same type")
		}
		result = then.Type()
	}

	return &IfExpr{base: base{ex.Span(), result}, Cond: cond, Then: then, Else: elseExpr}, nil
}

// builtinArity is the closed set of prelude-supplied functions the
// checker recognizes without a corresponding fn declaration, along
// with the argument count each accepts.
var builtinArity = map[string]int{
	"print": 1,
}

func (c *Checker) checkCallExpr(ex *ast.CallExpr) (Expr, *diag.Error) {
	if arity, ok := builtinArity[ex.Callee.Name]; ok {
		return c.checkBuiltinCallExpr(ex, arity)
	}

	fnID, ok := c.prog.Functions.FindByName(ex.Callee.Name)
	if !ok {
		return nil, diag.NameResolution(ex.Callee.Span(), "Unknown function: %s", ex.Callee.Name)
	}
	fn := c.prog.Functions.Get(fnID)
	if len(ex.Args) != len(fn.Parameters) {
		return nil, diag.Type(ex.Span(), "wrong number of arguments to %s", fn.Name)
	}

	args := make([]Expr, len(ex.Args))
	for i, arg := range ex.Args {
		param := fn.Parameters[i]
		paramVar := c.prog.Variables.Get(param.Variable)

		argExpr, err := c.checkExpr(arg.Value)
		if err != nil {
			return nil, err
		}
		if !c.compatible(paramVar.TypeID, argExpr.Type()) {
			return nil, diag.Type(arg.Value.Span(), "wrong parameter type")
		}
		if !param.Anonymous {
			argName, hasName := "", false
			if arg.Name != nil {
				argName, hasName = arg.Name.Name, true
			} else if ident, ok := arg.Value.(*ast.Ident); ok {
				argName, hasName = ident.Name, true
			}
			if !hasName || argName != paramVar.Name {
				return nil, diag.Type(arg.Value.Span(), "Function call has wrong parameter name")
			}
		}
		args[i] = argExpr
	}

	return &CallExpr{base: base{ex.Span(), fn.ReturnType}, Function: fnID, Args: args}, nil
}

// checkBuiltinCallExpr checks a call to a prelude-supplied function
// like print, which is generic over its argument's type in the
// emitted C++ and therefore has no single ReturnType/Parameter entry
// in the FunctionTable to check against.
func (c *Checker) checkBuiltinCallExpr(ex *ast.CallExpr, arity int) (Expr, *diag.Error) {
	if len(ex.Args) != arity {
		return nil, diag.Type(ex.Span(), "wrong number of arguments to %s", ex.Callee.Name)
	}
	args := make([]Expr, len(ex.Args))
	for i, arg := range ex.Args {
		if arg.Name != nil {
			return nil, diag.Type(arg.Value.Span(), "Function call has wrong parameter name")
		}
		argExpr, err := c.checkExpr(arg.Value)
		if err != nil {
			return nil, err
		}
		if c.prog.Types.Get(argExpr.Type()).Kind == KindVoid {
			return nil, diag.Type(arg.Value.Span(), "wrong parameter type")
		}
		args[i] = argExpr
	}
	return &CallExpr{base: base{ex.Span(), Void}, Builtin: ex.Callee.Name, Args: args}, nil
}

func (c *Checker) checkArrayLiteral(ex *ast.ArrayLiteral, hint *TypeId) (Expr, *diag.Error) {
	var hintElem *TypeId
	var hintLen uint64
	hasHint := false
	if hint != nil {
		hintTy := c.prog.Types.Get(*hint)
		if hintTy.Kind == KindArray {
			hasHint = true
			hintLen = hintTy.Size
			elem := hintTy.Inner
			hintElem = &elem
		}
	}

	if len(ex.Elements) == 0 {
		if !hasHint {
			return nil, diag.Type(ex.Span(), "empty array literal requires a type hint")
		}
		arrType := c.prog.Types.Array(hintLen, *hintElem, false)
		return &ArrayLiteral{base: base{ex.Span(), arrType}, Elements: nil}, nil
	}

	elems := make([]Expr, len(ex.Elements))
	var elemType TypeId
	for i, el := range ex.Elements {
		ce, err := c.checkExpr(el)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			elemType = ce.Type()
		} else if elemType != ce.Type() {
			return nil, diag.Type(el.Span(), "array elements differ")
		}
		elems[i] = ce
	}

	if hasHint {
		if uint64(len(elems)) != hintLen {
			return nil, diag.Type(ex.Span(), "size mismatch: array literal has %d elements, hint requires %d", len(elems), hintLen)
		}
		if *hintElem != elemType {
			return nil, diag.Type(ex.Span(), "array elements differ from the declared element type")
		}
	}

	arrType := c.prog.Types.Array(uint64(len(elems)), elemType, false)
	return &ArrayLiteral{base: base{ex.Span(), arrType}, Elements: elems}, nil
}

func (c *Checker) checkIndexExpr(ex *ast.IndexExpr) (Expr, *diag.Error) {
	arr, err := c.checkExpr(ex.Array)
	if err != nil {
		return nil, err
	}
	idx, err := c.checkExpr(ex.Index)
	if err != nil {
		return nil, err
	}
	if !c.prog.Types.IsInteger(idx.Type()) {
		return nil, diag.Type(ex.Index.Span(), "array index must be an integer")
	}
	ty := c.prog.Types.Get(arr.Type())
	if ty.Kind != KindArray && ty.Kind != KindSlice {
		return nil, diag.Type(ex.Array.Span(), "cannot index a non-array/slice value")
	}
	return &IndexExpr{base: base{ex.Span(), ty.Inner}, Array: arr, Index: idx}, nil
}
