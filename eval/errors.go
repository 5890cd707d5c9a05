package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/midbel/lox/env"
)

var (
	ErrLexical   = errors.New("lexical error")
	ErrSyntax    = errors.New("syntax error")
	ErrRuntime   = errors.New("runtime error")
	ErrType      = errors.New("type mismatch")
	ErrUndefined = env.ErrUndefined
	ErrInternal  = errors.New("internal error")
)

// Reporter receives every diagnostic produced while scanning, parsing and
// interpreting. where is empty, " at end" or " at 'lexeme'".
type Reporter interface {
	Report(line int, where, message string)
}

type writerReporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) Reporter {
	if w == nil {
		w = os.Stderr
	}
	return writerReporter{w: w}
}

func (r writerReporter) Report(line int, where, message string) {
	fmt.Fprintln(r.w, formatDiagnostic(line, where, message))
}

type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return formatDiagnostic(d.Line, d.Where, d.Message)
}

// Collector keeps diagnostics in memory.
type Collector struct {
	List []Diagnostic
}

func (c *Collector) Report(line int, where, message string) {
	c.List = append(c.List, Diagnostic{
		Line:    line,
		Where:   where,
		Message: message,
	})
}

func (c *Collector) Len() int {
	return len(c.List)
}

func (c *Collector) Reset() {
	c.List = c.List[:0]
}

func formatDiagnostic(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

type ParseError struct {
	Token
	Message string
}

func (e *ParseError) Error() string {
	return formatDiagnostic(e.Line, locate(e.Token), e.Message)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

func locate(tok Token) string {
	if tok.Type == EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

type RuntimeError struct {
	Token
	Message string
	Err     error
}

func runtimeError(tok Token, err error, msg string) *RuntimeError {
	return &RuntimeError{
		Token:   tok,
		Message: msg,
		Err:     err,
	}
}

func (e *RuntimeError) Error() string {
	return formatDiagnostic(e.Line, "", e.Message)
}

func (e *RuntimeError) Unwrap() []error {
	return []error{ErrRuntime, e.Err}
}
