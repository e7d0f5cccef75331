package llvmdump

import (
	"strings"
	"testing"

	"mcc/internal/ast"
	"mcc/internal/ir"
	"mcc/internal/parser"
	"mcc/internal/semantic"
)

func generate(t *testing.T, src string) *ir.Row {
	t.Helper()
	res := parser.ParseFile("t.src", src)
	if res.Status != parser.StatusOK {
		t.Fatalf("unexpected parse errors: %v", res.Errs)
	}
	prog := ast.Canonicalize(res.Program)
	table, err := semantic.RunAll(prog)
	if err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	ast.RemoveBuiltins(prog)
	return ir.Generate(prog, table)
}

func TestDumpEmitsDefineForEachFunction(t *testing.T) {
	head := generate(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	out := Dump(head)
	if !strings.Contains(out, "define") || !strings.Contains(out, "@add") {
		t.Fatalf("expected a define for add, got:\n%s", out)
	}
	if !strings.Contains(out, "@main") {
		t.Fatalf("expected a define for main, got:\n%s", out)
	}
}
