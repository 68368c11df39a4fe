package astdump_test

import (
	"reflect"
	"testing"

	"github.com/boc-lang/boc/internal/ast"
	"github.com/boc-lang/boc/internal/astdump"
	"github.com/boc-lang/boc/internal/parser"
	"github.com/boc-lang/boc/internal/types"
)

// stripSpans walks a dump value and removes every "span"/"declaration_span"
// key, so a golden literal doesn't need to pin down exact byte offsets.
func stripSpans(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			if k == "span" || k == "declaration_span" {
				continue
			}
			out[k] = stripSpans(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = stripSpans(vv)
		}
		return out
	default:
		return v
	}
}

func assertGoldenDump(t *testing.T, got, want any) {
	t.Helper()
	got = stripSpans(got)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("dump mismatch:\n got:  %#v\n want: %#v", got, want)
	}
}

func checkSource(t *testing.T, src string) *types.CheckedProgram {
	t.Helper()

	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}
	return checked
}

func TestDumpProgramShape(t *testing.T) {
	prog, perr := parser.Parse("fn main(): void { var x: i32 = 1 + 2 * 3; }")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}

	dump, ok := astdump.DumpProgram(prog).(map[string]any)
	if !ok {
		t.Fatalf("expected DumpProgram to return a map, got %T", astdump.DumpProgram(prog))
	}
	if dump["node"] != "program" {
		t.Fatalf(`expected node "program", got %v`, dump["node"])
	}

	fns, ok := dump["functions"].([]any)
	if !ok || len(fns) != 1 {
		t.Fatalf("expected exactly one function in the dump, got %v", dump["functions"])
	}
	fn := fns[0].(map[string]any)
	if fn["name"] != "main" {
		t.Fatalf(`expected function name "main", got %v`, fn["name"])
	}
}

func TestDumpCheckedProgramPointerType(t *testing.T) {
	prog, perr := parser.Parse("fn main(): void { mut x: i32 = 0; mut p: *i32 = &x; }")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}

	dump := astdump.DumpCheckedProgram(checked).(map[string]any)
	fn := dump["functions"].([]any)[0].(map[string]any)
	body := fn["body"].(map[string]any)
	stmts := body["stmts"].([]any)
	decl := stmts[1].(map[string]any)

	variable := decl["variable"].(map[string]any)
	ty := variable["type"].(map[string]any)
	if ty["name"] != "pointer" {
		t.Fatalf(`expected pointer type shape, got %v`, ty)
	}
	if ty["kind"] != "weak" {
		t.Fatalf(`expected p's declared "*i32" to be a weak pointer, got %v`, ty["kind"])
	}
}

func TestDumpCheckedProgramArrayType(t *testing.T) {
	prog, perr := parser.Parse("fn main(): void { var xs: [3]i32 = [1, 2, 3]; }")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}

	dump := astdump.DumpCheckedProgram(checked).(map[string]any)
	fn := dump["functions"].([]any)[0].(map[string]any)
	body := fn["body"].(map[string]any)
	stmts := body["stmts"].([]any)
	decl := stmts[0].(map[string]any)

	variable := decl["variable"].(map[string]any)
	ty := variable["type"].(map[string]any)
	if ty["name"] != "array" {
		t.Fatalf(`expected array type shape, got %v`, ty)
	}
	if ty["size"] != uint64(3) {
		t.Fatalf("expected array size 3, got %v", ty["size"])
	}
}

func TestDumpCheckedProgramBuiltinCall(t *testing.T) {
	prog, perr := parser.Parse("fn main(): void { print(1); }")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	checked, cerr := types.Check(prog)
	if cerr != nil {
		t.Fatalf("unexpected check error: %s", cerr.Message)
	}

	dump := astdump.DumpCheckedProgram(checked).(map[string]any)
	fn := dump["functions"].([]any)[0].(map[string]any)
	body := fn["body"].(map[string]any)
	stmts := body["stmts"].([]any)
	stmt := stmts[0].(map[string]any)
	call := stmt["expr"].(map[string]any)
	if call["function"] != "print" {
		t.Fatalf(`expected call to builtin "print", got %v`, call["function"])
	}
}

// TestGoldenArithmeticPrecedence round-trips `*` binding tighter than `+`
// through DumpCheckedProgram and compares the full resulting value.
func TestGoldenArithmeticPrecedence(t *testing.T) {
	checked := checkSource(t, "fn main(): void { var x: i32 = 1 + 2 * 3; }")

	want := map[string]any{
		"node": "checked_program",
		"functions": []any{
			map[string]any{
				"node":        "function",
				"name":        "main",
				"parameters":  []any{},
				"return_type": "void",
				"body": map[string]any{
					"type":            "void",
					"node":            "block_expr",
					"contains_return": false,
					"stmts": []any{
						map[string]any{
							"node": "variable_decl_stmt",
							"variable": map[string]any{
								"name": "x",
								"type": "i32 const",
							},
							"init": map[string]any{
								"type": "i32 const",
								"node": "binary_expr",
								"op":   int(ast.Add),
								"lhs": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "1", "suffix": "",
								},
								"rhs": map[string]any{
									"type": "i32 const", "node": "binary_expr", "op": int(ast.Mul),
									"lhs": map[string]any{
										"type": "i32 const", "node": "integer_literal", "text": "2", "suffix": "",
									},
									"rhs": map[string]any{
										"type": "i32 const", "node": "integer_literal", "text": "3", "suffix": "",
									},
								},
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpCheckedProgram(checked), want)
}

// TestGoldenUnsuffixedLiteralWidthMismatch is rejected by the typechecker
// before a CheckedProgram ever exists, so its golden value is the
// pre-check DumpProgram tree instead of DumpCheckedProgram's.
func TestGoldenUnsuffixedLiteralWidthMismatch(t *testing.T) {
	src := "fn main(): void { var x: u32 = 1; }"
	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	if _, cerr := types.Check(prog); cerr == nil {
		t.Fatalf("expected this source to be rejected by the typechecker")
	}

	want := map[string]any{
		"node": "program",
		"functions": []any{
			map[string]any{
				"node":        "function_decl",
				"name":        "main",
				"parameters":  []any{},
				"return_type": map[string]any{"kind": "named", "name": "void", "mutable": false},
				"body": map[string]any{
					"node": "block_expr",
					"stmts": []any{
						map[string]any{
							"node":    "variable_decl_stmt",
							"mutable": false,
							"name":    "x",
							"type":    map[string]any{"kind": "named", "name": "u32", "mutable": false},
							"init": map[string]any{
								"node": "integer_literal", "text": "1", "radix": int(ast.Decimal), "suffix": "",
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpProgram(prog), want)
}

// TestGoldenMutableAssignment round-trips a mutable declaration followed
// by a reassignment through DumpCheckedProgram.
func TestGoldenMutableAssignment(t *testing.T) {
	checked := checkSource(t, "fn main(): void { mut x: i32 = 0; x = 1; }")

	want := map[string]any{
		"node": "checked_program",
		"functions": []any{
			map[string]any{
				"node":        "function",
				"name":        "main",
				"parameters":  []any{},
				"return_type": "void",
				"body": map[string]any{
					"type":            "void",
					"node":            "block_expr",
					"contains_return": false,
					"stmts": []any{
						map[string]any{
							"node":     "variable_decl_stmt",
							"variable": map[string]any{"name": "x", "type": "i32"},
							"init": map[string]any{
								"type": "i32 const", "node": "integer_literal", "text": "0", "suffix": "",
							},
						},
						map[string]any{
							"node": "expression_stmt",
							"ends": true,
							"expr": map[string]any{
								"type": "i32", "node": "assign_expr", "op": int(ast.Assign),
								"lhs": map[string]any{
									"type": "i32", "node": "ident",
									"variable": map[string]any{"name": "x", "type": "i32"},
								},
								"rhs": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "1", "suffix": "",
								},
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpCheckedProgram(checked), want)
}

// TestGoldenForInRange round-trips a for-in loop over an exclusive range
// through DumpCheckedProgram.
func TestGoldenForInRange(t *testing.T) {
	checked := checkSource(t, "fn main(): void { for (i in 0..<10) { i; } }")

	rangeType := map[string]any{"name": "range", "inclusive": false, "inner": "i32 const"}
	want := map[string]any{
		"node": "checked_program",
		"functions": []any{
			map[string]any{
				"node":        "function",
				"name":        "main",
				"parameters":  []any{},
				"return_type": "void",
				"body": map[string]any{
					"type":            "void",
					"node":            "block_expr",
					"contains_return": false,
					"stmts": []any{
						map[string]any{
							"node":     "for_range_stmt",
							"variable": map[string]any{"name": "i", "type": "i32 const"},
							"iterable": map[string]any{
								"type": rangeType, "node": "range_expr", "inclusive": false,
								"start": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "0", "suffix": "",
								},
								"end": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "10", "suffix": "",
								},
							},
							"body": map[string]any{
								"type":            "void",
								"node":            "block_expr",
								"contains_return": false,
								"stmts": []any{
									map[string]any{
										"node": "expression_stmt",
										"ends": true,
										"expr": map[string]any{
											"type": "i32 const", "node": "ident",
											"variable": map[string]any{"name": "i", "type": "i32 const"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpCheckedProgram(checked), want)
}

// TestGoldenCallWrongParameterName is rejected by the typechecker before
// a CheckedProgram exists, so its golden value is the pre-check
// DumpProgram tree over both declared functions.
func TestGoldenCallWrongParameterName(t *testing.T) {
	src := "fn add(anon a: i32, b: i32): i32 { a + b }\nfn main(): void { add(1, 2); }\n"
	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr.Message)
	}
	if _, cerr := types.Check(prog); cerr == nil {
		t.Fatalf("expected this source to be rejected by the typechecker")
	}

	i32Type := map[string]any{"kind": "named", "name": "i32", "mutable": false}
	want := map[string]any{
		"node": "program",
		"functions": []any{
			map[string]any{
				"node": "function_decl",
				"name": "add",
				"parameters": []any{
					map[string]any{"anonymous": true, "name": "a", "type": i32Type},
					map[string]any{"anonymous": false, "name": "b", "type": i32Type},
				},
				"return_type": i32Type,
				"body": map[string]any{
					"node": "block_expr",
					"stmts": []any{
						map[string]any{
							"node": "expression_stmt",
							"ends": false,
							"expr": map[string]any{
								"node": "binary_expr", "op": int(ast.Add),
								"lhs": map[string]any{"node": "ident", "name": "a"},
								"rhs": map[string]any{"node": "ident", "name": "b"},
							},
						},
					},
				},
			},
			map[string]any{
				"node":        "function_decl",
				"name":        "main",
				"parameters":  []any{},
				"return_type": map[string]any{"kind": "named", "name": "void", "mutable": false},
				"body": map[string]any{
					"node": "block_expr",
					"stmts": []any{
						map[string]any{
							"node": "expression_stmt",
							"ends": true,
							"expr": map[string]any{
								"node": "call_expr", "callee": "add",
								"args": []any{
									map[string]any{
										"value": map[string]any{
											"node": "integer_literal", "text": "1", "radix": int(ast.Decimal), "suffix": "",
										},
									},
									map[string]any{
										"value": map[string]any{
											"node": "integer_literal", "text": "2", "radix": int(ast.Decimal), "suffix": "",
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpProgram(prog), want)
}

// TestGoldenEndToEndPrintLoop round-trips the builtin print call inside a
// for-in loop through DumpCheckedProgram.
func TestGoldenEndToEndPrintLoop(t *testing.T) {
	checked := checkSource(t, "fn main(): void { for (i in 0..<3_i32) { print(i); } }")

	rangeType := map[string]any{"name": "range", "inclusive": false, "inner": "i32 const"}
	want := map[string]any{
		"node": "checked_program",
		"functions": []any{
			map[string]any{
				"node":        "function",
				"name":        "main",
				"parameters":  []any{},
				"return_type": "void",
				"body": map[string]any{
					"type":            "void",
					"node":            "block_expr",
					"contains_return": false,
					"stmts": []any{
						map[string]any{
							"node":     "for_range_stmt",
							"variable": map[string]any{"name": "i", "type": "i32 const"},
							"iterable": map[string]any{
								"type": rangeType, "node": "range_expr", "inclusive": false,
								"start": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "0", "suffix": "",
								},
								"end": map[string]any{
									"type": "i32 const", "node": "integer_literal", "text": "3", "suffix": "i32",
								},
							},
							"body": map[string]any{
								"type":            "void",
								"node":            "block_expr",
								"contains_return": false,
								"stmts": []any{
									map[string]any{
										"node": "expression_stmt",
										"ends": true,
										"expr": map[string]any{
											"type": "void", "node": "call_expr", "function": "print",
											"args": []any{
												map[string]any{
													"type": "i32 const", "node": "ident",
													"variable": map[string]any{"name": "i", "type": "i32 const"},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	assertGoldenDump(t, astdump.DumpCheckedProgram(checked), want)
}
