package diag

import "fmt"

// Error is the single diagnostic shape produced by every stage: a
// message paired with the span it applies to and the stage that
// raised it. It implements the standard error interface so it composes
// with errors.Is/errors.As and with github.com/pkg/errors.Wrap at the
// cmd/boc boundary.
type Error struct {
	Stage   Stage
	Message string
	Span    Span
}

// New builds an Error for the given stage.
func New(stage Stage, span Span, format string, args ...any) *Error {
	return &Error{Stage: stage, Message: fmt.Sprintf(format, args...), Span: span}
}

func Lexical(span Span, format string, args ...any) *Error {
	return New(StageLexical, span, format, args...)
}

func Syntactic(span Span, format string, args ...any) *Error {
	return New(StageSyntactic, span, format, args...)
}

func NameResolution(span Span, format string, args ...any) *Error {
	return New(StageNameResolution, span, format, args...)
}

func Type(span Span, format string, args ...any) *Error {
	return New(StageType, span, format, args...)
}

func TranspilerInternal(span Span, format string, args ...any) *Error {
	return New(StageTranspilerInternal, span, format, args...)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Span)
}
