// Package transpile walks a checked program and emits a single C++
// source string: the fixed prelude followed by the translated
// functions, per §4.4.
package transpile

import (
	"fmt"
	"strings"

	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/types"
)

// Transpiler holds the incremental emission state for one program.
// There is no C++-AST-builder library available, so rather than
// constructing an intermediate target-language AST node by node it
// appends C++ text fragments directly to a strings.Builder as it
// walks the checked program.
type Transpiler struct {
	prog     *types.CheckedProgram
	out      strings.Builder
	tempNext int
}

// Emit renders prog as a complete C++ translation unit.
func Emit(prog *types.CheckedProgram) (string, *diag.Error) {
	t := &Transpiler{prog: prog}
	t.out.WriteString(prelude)

	for id := types.FunctionId(0); int(id) < prog.Functions.Count(); id++ {
		fn := prog.Functions.Get(id)
		if fn.Name == "main" {
			if err := t.checkMainShape(fn); err != nil {
				return "", err
			}
		}
		if err := t.emitFunction(fn); err != nil {
			return "", err
		}
	}

	return t.out.String(), nil
}

func (t *Transpiler) checkMainShape(fn types.Function) *diag.Error {
	if len(fn.Parameters) != 0 {
		return diag.TranspilerInternal(fn.Body.Span(), "main must have no parameters")
	}
	if t.prog.Types.Get(fn.ReturnType).Kind != types.KindVoid {
		return diag.TranspilerInternal(fn.Body.Span(), "main must return void")
	}
	return nil
}

func (t *Transpiler) emitFunction(fn types.Function) *diag.Error {
	name := fn.Name
	if name == "main" {
		name = "bo_main"
	}

	retType, err := t.emitType(fn.ReturnType, true)
	if err != nil {
		return err
	}

	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		v := t.prog.Variables.Get(p.Variable)
		pt, err := t.emitType(v.TypeID, false)
		if err != nil {
			return err
		}
		params[i] = fmt.Sprintf("%s %s", pt, v.Name)
	}

	fmt.Fprintf(&t.out, "%s %s(%s) ", retType, name, strings.Join(params, ", "))

	body, err := t.emitFunctionBody(fn.Body, fn.ReturnType)
	if err != nil {
		return err
	}
	t.out.WriteString(body)
	t.out.WriteString("\n\n")
	return nil
}

func newTemp(n int) string {
	return fmt.Sprintf("__block_ret_%d", n)
}
