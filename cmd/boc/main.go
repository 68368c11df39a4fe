// Command boc is the ahead-of-time compiler's driver: it reads one
// source file, runs it through the lexer/parser/typechecker/transpiler
// pipeline, and writes the resulting C++ to a file or stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/boc-lang/boc/internal/astdump"
	"github.com/boc-lang/boc/internal/diag"
	"github.com/boc-lang/boc/internal/parser"
	"github.com/boc-lang/boc/internal/transpile"
	"github.com/boc-lang/boc/internal/types"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: boc build <file.bo> [-o out.cpp] [-dump-ast] [-dump-checked] [-emit-cpp-only]\n")
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 || os.Args[1] != "build" {
		flag.Usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("o", "", "output file for the transpiled C++ (default: stdout)")
	dumpAST := fs.Bool("dump-ast", false, "write the untyped AST dump to stderr before transpiling")
	dumpChecked := fs.Bool("dump-checked", false, "write the checked-program dump to stderr before transpiling")
	emitCppOnly := fs.Bool("emit-cpp-only", false, "stop after transpilation even if -dump-ast/-dump-checked were given")
	fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := fs.Arg(0)
	// Flags may also follow the source path, as the usage line shows.
	fs.Parse(fs.Args()[1:])
	if fs.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(path, *out, *dumpAST, *dumpChecked, *emitCppOnly); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path, out string, dumpAST, dumpChecked, _ bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	source := string(src)

	program, perr := parser.Parse(source)
	if perr != nil {
		return reportPipelineError(source, perr)
	}
	if dumpAST {
		printDump(astdump.DumpProgram(program))
	}

	checked, cerr := types.Check(program)
	if cerr != nil {
		return reportPipelineError(source, cerr)
	}
	if dumpChecked {
		printDump(astdump.DumpCheckedProgram(checked))
	}

	cpp, terr := transpile.Emit(checked)
	if terr != nil {
		return reportPipelineError(source, terr)
	}

	if out == "" {
		fmt.Print(cpp)
		return nil
	}
	if err := os.WriteFile(out, []byte(cpp), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	fmt.Fprintf(os.Stderr, "# clang++ -std=c++20 %s -o a.out\n", out)
	return nil
}

// reportPipelineError formats a pipeline Error with source context and
// wraps it with github.com/pkg/errors so the caller's exit path prints
// a single coherent message without the core stages depending on I/O.
func reportPipelineError(source string, e *diag.Error) error {
	msg := diag.NewFormatter(source).Format(e)
	return errors.Wrap(e, msg)
}

func printDump(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "dump marshal error: %v\n", err)
		return
	}
	os.Stderr.Write(data)
	os.Stderr.Write([]byte("\n"))
}
