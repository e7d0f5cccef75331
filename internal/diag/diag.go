// Package diag implements the error taxonomy of spec.md §7: a single
// *Diagnostic type carrying one of five kinds, a source location, a
// message, and an optional wrapped cause.
package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"mcc/internal/ast"
)

// Kind is one of the five error kinds named in spec.md §7. It labels the
// stage a diagnostic came from, not a Go type.
type Kind string

const (
	Input    Kind = "input error"
	Parser   Kind = "syntax error"
	Semantic Kind = "semantic error"
	Internal Kind = "internal error"
	None     Kind = ""
)

// Diagnostic is the one error shape the whole pipeline produces. Location
// is the zero value when a diagnostic has no useful source position (most
// input errors).
type Diagnostic struct {
	Kind     Kind
	Location ast.SourceLocation
	Message  string
	Source   string // the offending source line, if known
	Cause    error
}

func New(kind Kind, loc ast.SourceLocation, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Location: loc, Message: message}
}

// Wrap attaches an underlying I/O or system error to an input diagnostic,
// keeping a cause chain via github.com/pkg/errors rather than inventing a
// second error type for the boundary between the driver and the OS.
func Wrap(err error, message string) *Diagnostic {
	return &Diagnostic{Kind: Input, Message: message, Cause: errors.Wrap(err, message)}
}

func (d *Diagnostic) WithSource(line string) *Diagnostic {
	d.Source = line
	return d
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Location.Filename != "" {
		fmt.Fprintf(&b, "%s: ", d.Location)
	}
	if d.Kind != None {
		fmt.Fprintf(&b, "%s: ", d.Kind)
	}
	b.WriteString(d.Message)
	if d.Source != "" {
		b.WriteString("\n")
		b.WriteString(renderCaret(d.Source, d.Location.StartCol))
	}
	return b.String()
}

func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// renderCaret prints the offending source line followed by a caret under
// the reported column, colorized only when stderr is actually a terminal.
func renderCaret(line string, col int) string {
	caret := strings.Repeat(" ", max(col-1, 0)) + "^"
	if !colorize() {
		return line + "\n" + caret
	}
	return line + "\n" + "\x1b[31m" + caret + "\x1b[0m"
}

var colorizeOverride *bool

func colorize() bool {
	if colorizeOverride != nil {
		return *colorizeOverride
	}
	return isatty.IsTerminal(stderrFd())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
