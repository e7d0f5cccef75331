package diag

import (
	"errors"
	"strings"
	"testing"

	"mcc/internal/ast"
)

func TestErrorFormatsLocationKindAndMessage(t *testing.T) {
	loc := ast.SourceLocation{Filename: "t.src", StartLine: 3, StartCol: 5}
	d := New(Semantic, loc, "undeclared variable 'x'")
	msg := d.Error()
	if !strings.Contains(msg, "t.src:3:5") {
		t.Fatalf("expected location in message, got %q", msg)
	}
	if !strings.Contains(msg, "semantic error") {
		t.Fatalf("expected kind in message, got %q", msg)
	}
	if !strings.Contains(msg, "undeclared variable 'x'") {
		t.Fatalf("expected message text, got %q", msg)
	}
}

func TestWithSourceAddsCaretLine(t *testing.T) {
	SetColorOverride(false)
	defer ClearColorOverride()

	loc := ast.SourceLocation{Filename: "t.src", StartLine: 1, StartCol: 3}
	d := New(Semantic, loc, "boom").WithSource("x = 1;")
	msg := d.Error()
	lines := strings.Split(msg, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), msg)
	}
	if lines[2] != "  ^" {
		t.Fatalf("expected caret at column 3, got %q", lines[2])
	}
}

func TestWrapPreservesCauseChain(t *testing.T) {
	cause := errors.New("permission denied")
	d := Wrap(cause, "cannot read t.src")
	if errors.Unwrap(d) == nil {
		t.Fatalf("expected a non-nil unwrapped cause")
	}
	if !strings.Contains(d.Error(), "cannot read t.src") {
		t.Fatalf("expected wrapped message, got %q", d.Error())
	}
}

func TestListJoinsMultipleDiagnostics(t *testing.T) {
	l := List{
		New(Parser, ast.SourceLocation{Filename: "a.src", StartLine: 1}, "unexpected token"),
		New(Parser, ast.SourceLocation{Filename: "a.src", StartLine: 2}, "missing semicolon"),
	}
	if !l.HasErrors() {
		t.Fatalf("expected HasErrors true")
	}
	msg := l.Error()
	if !strings.Contains(msg, "unexpected token") || !strings.Contains(msg, "missing semicolon") {
		t.Fatalf("expected both messages joined, got %q", msg)
	}
}

func TestNoneKindOmitsKindPrefix(t *testing.T) {
	d := New(None, ast.SourceLocation{}, "plain message")
	msg := d.Error()
	if strings.Contains(msg, "error:") {
		t.Fatalf("expected no kind prefix for None, got %q", msg)
	}
}
