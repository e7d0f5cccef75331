package semantic

import (
	"strings"
	"testing"

	"mcc/internal/ast"
	"mcc/internal/parser"
)

func compile(t *testing.T, src string) error {
	t.Helper()
	res := parser.ParseFile("t.src", src)
	if res.Status != parser.StatusOK {
		t.Fatalf("unexpected parse errors: %v", res.Errs)
	}
	prog := ast.Canonicalize(res.Program)
	_, err := RunAll(prog)
	return err
}

func assertOK(t *testing.T, src string) {
	t.Helper()
	if err := compile(t, src); err != nil {
		t.Fatalf("expected no semantic error, got: %v", err)
	}
}

func assertFails(t *testing.T, src, wantSubstring string) {
	t.Helper()
	err := compile(t, src)
	if err == nil {
		t.Fatalf("expected a semantic error, got none")
	}
	if !strings.Contains(err.Error(), wantSubstring) {
		t.Fatalf("expected error containing %q, got: %v", wantSubstring, err)
	}
}

func TestValidProgramPasses(t *testing.T) {
	assertOK(t, `int add(int a, int b){ return a+b; } int main(){ print_int(add(1,2)); return 0; }`)
}

func TestNonvoidPathsMissingReturn(t *testing.T) {
	assertFails(t, `int f(){ int a; a = 1; } int main(){ return 0; }`, "does not return")
}

func TestMainMissing(t *testing.T) {
	assertFails(t, `int f(){ return 0; }`, "no function named")
}

func TestMainWrongShape(t *testing.T) {
	assertFails(t, `void main(){ return; }`, "must return int")
}

func TestUnknownFunctionCall(t *testing.T) {
	assertFails(t, `int main(){ foo(); return 0; }`, "undeclared function")
}

func TestDuplicateFunctionDefinition(t *testing.T) {
	assertFails(t, `int f(){ return 0; } int f(){ return 1; } int main(){ return 0; }`, "defined more than once")
}

func TestDuplicateVariableDeclaration(t *testing.T) {
	assertFails(t, `int main(){ int a; int a; return 0; }`, "already declared")
}

func TestUndeclaredVariableUse(t *testing.T) {
	assertFails(t, `int main(){ return a; }`, "undeclared variable")
}

func TestBuiltinShadowing(t *testing.T) {
	assertFails(t, `void print_nl(){ return; } int main(){ return 0; }`, "shadows a built-in")
}

func TestTypeMismatchAssignment(t *testing.T) {
	assertFails(t, `int main(){ int a; a = true; return 0; }`, "cannot assign")
}

func TestConditionMustBeBool(t *testing.T) {
	assertFails(t, `int main(){ if (1) { return 1; } return 0; }`, "condition must be bool")
}

func TestArithmeticRejectsBool(t *testing.T) {
	assertFails(t, `int main(){ bool a; a = true; bool b; b = true; int c; c = a + b; return 0; }`, "requires matching non-bool")
}

func TestCallArityMismatch(t *testing.T) {
	assertFails(t, `int add(int a, int b){ return a+b; } int main(){ return add(1); }`, "expected 2")
}

func TestCallArrayArgumentMismatch(t *testing.T) {
	assertFails(t, `int sum(int[5] xs){ return 0; } int main(){ int[4] ys; return sum(ys); }`, "expects int[5]")
}

func TestCallArrayArgumentOK(t *testing.T) {
	assertOK(t, `int sum(int[5] xs){ return 0; } int main(){ int[5] ys; return sum(ys); }`)
}
