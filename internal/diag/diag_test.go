package diag_test

import (
	"strings"
	"testing"

	"github.com/boc-lang/boc/internal/diag"
)

func TestErrorImplementsErrorInterface(t *testing.T) {
	err := diag.Type(diag.NewSpan(3, 7), "bad type: %s", "i32")

	if err.Stage != diag.StageType {
		t.Fatalf("expected stage %q, got %q", diag.StageType, err.Stage)
	}
	if err.Message != "bad type: i32" {
		t.Fatalf("expected formatted message, got %q", err.Message)
	}
	if !strings.Contains(err.Error(), "bad type: i32") || !strings.Contains(err.Error(), "3..7") {
		t.Fatalf("expected Error() to mention message and span, got %q", err.Error())
	}
}

func TestSpanMergeTakesOutermostBounds(t *testing.T) {
	a := diag.Span{Start: 5, End: 10, Line: 1, Column: 5}
	b := diag.Span{Start: 2, End: 8}

	m := diag.Merge(a, b)
	if m.Start != 2 || m.End != 10 {
		t.Fatalf("expected merged span 2..10, got %d..%d", m.Start, m.End)
	}
}

func TestResultShortCircuits(t *testing.T) {
	ok := diag.Ok(42)
	if !ok.IsOk() {
		t.Fatalf("expected Ok result to report IsOk")
	}
	if v := ok.Must(); v != 42 {
		t.Fatalf("expected Must() to return 42, got %d", v)
	}

	failed := diag.Err[int](diag.Syntactic(diag.NewSpan(0, 1), "boom"))
	if failed.IsOk() {
		t.Fatalf("expected Err result to report !IsOk")
	}
	if _, err := failed.Unwrap(); err == nil {
		t.Fatalf("expected Unwrap to surface the error")
	}
}

func TestFormatterRendersSourceLine(t *testing.T) {
	src := "fn main(): void {\n  var x: u32 = 1;\n}\n"
	lineStart := strings.Index(src, "var")
	err := diag.Type(diag.NewSpan(lineStart, lineStart+3), "Variable type doesn't match expression type")

	out := diag.NewFormatter(src).Format(err)
	if !strings.Contains(out, "Variable type doesn't match expression type") {
		t.Fatalf("expected formatted output to contain the message, got %q", out)
	}
	if !strings.Contains(out, "var x: u32 = 1;") {
		t.Fatalf("expected formatted output to contain the offending source line, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected a caret underline, got %q", out)
	}
}
