package diag

import (
	"fmt"
	"strings"
)

// Formatter renders an Error against the source text it came from,
// printing the stage/message/span summary plus the offending line
// with a caret underline.
type Formatter struct {
	source string
}

// NewFormatter builds a Formatter over the full source text of the
// file an Error's spans index into.
func NewFormatter(source string) *Formatter {
	return &Formatter{source: source}
}

// Format renders err as a multi-line diagnostic string.
func (f *Formatter) Format(err *Error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s (%s)\n", err.Stage, err.Message, err.Span)

	line, col, text, ok := f.lineAt(err.Span.Start)
	if !ok {
		return b.String()
	}
	fmt.Fprintf(&b, "  --> line %d\n", line)
	fmt.Fprintf(&b, "   | %s\n", text)
	fmt.Fprintf(&b, "   | %s^\n", strings.Repeat(" ", col))
	return b.String()
}

// lineAt locates the source line containing byte offset, returning
// its 1-based line number, the 0-based column of offset within it,
// and the line's text.
func (f *Formatter) lineAt(offset int) (line, col int, text string, ok bool) {
	if offset < 0 || offset > len(f.source) {
		return 0, 0, "", false
	}
	lineStart := strings.LastIndexByte(f.source[:offset], '\n') + 1
	lineEnd := strings.IndexByte(f.source[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(f.source)
	} else {
		lineEnd += offset
	}
	line = strings.Count(f.source[:lineStart], "\n") + 1
	col = offset - lineStart
	return line, col, f.source[lineStart:lineEnd], true
}
