package printer

import (
	"strings"
	"testing"

	"mcc/internal/ast"
	"mcc/internal/cfg"
	"mcc/internal/ir"
	"mcc/internal/parser"
	"mcc/internal/semantic"
	"mcc/internal/symtab"
)

func build(t *testing.T, src string) (*ast.Program, *symtab.Table, *ir.Row, *cfg.Block) {
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
	head := ir.Generate(prog, table)
	ir.NumberRows(head)
	chain := cfg.Generate(head)
	return prog, table, head, chain
}

const src = `
int add(int a, int b) {
	return a + b;
}
int main() {
	int r;
	r = add(1, 2);
	return r;
}
`

func TestSymtabTextListsFunctionsAndVariables(t *testing.T) {
	_, table, _, _ := build(t, src)
	out := SymtabText(table)
	if !strings.Contains(out, "function add(int, int) -> int") {
		t.Fatalf("expected add's signature, got:\n%s", out)
	}
	if !strings.Contains(out, "variable r int") {
		t.Fatalf("expected r's declaration, got:\n%s", out)
	}
}

func TestSymtabDOTProducesValidGraphShape(t *testing.T) {
	_, table, _, _ := build(t, src)
	out := SymtabDOT(table)
	if !strings.HasPrefix(out, "digraph symtab {") {
		t.Fatalf("expected digraph header, got:\n%s", out)
	}
	if !strings.Contains(out, "<table") {
		t.Fatalf("expected an HTML-like table label, got:\n%s", out)
	}
}

func TestASTDOTEmitsOneNodePerFunction(t *testing.T) {
	prog, _, _, _ := build(t, src)
	out := ASTDOT(prog, "")
	if !strings.Contains(out, "int add(a, b)") {
		t.Fatalf("expected add's signature node, got:\n%s", out)
	}
	if !strings.Contains(out, "int main()") {
		t.Fatalf("expected main's signature node, got:\n%s", out)
	}
}

func TestASTDOTFiltersToOneFunction(t *testing.T) {
	prog, _, _, _ := build(t, src)
	out := ASTDOT(prog, "add")
	if strings.Contains(out, "int main()") {
		t.Fatalf("expected main to be excluded, got:\n%s", out)
	}
}

func TestIRTableHasHeaderAndRows(t *testing.T) {
	_, _, head, _ := build(t, src)
	out := IRTable(head, "")
	if !strings.Contains(out, "| line no. | instruction | arg1 | arg2 |") {
		t.Fatalf("expected a header row, got:\n%s", out)
	}
	if !strings.Contains(out, "CALL") {
		t.Fatalf("expected a CALL row, got:\n%s", out)
	}
}

func TestIRTableFiltersToOneFunction(t *testing.T) {
	_, _, head, _ := build(t, src)
	out := IRTable(head, "add")
	if strings.Contains(out, "CALL") {
		t.Fatalf("expected add's table to have no CALL row, got:\n%s", out)
	}
	if strings.Contains(out, "main") {
		// main's own FUNC_LABEL row should not appear once add's rows end.
		t.Fatalf("expected main's rows to be excluded, got:\n%s", out)
	}
}

func TestCFGDOTEmitsOneNodePerBlock(t *testing.T) {
	_, _, _, chain := build(t, src)
	out := CFGDOT(chain)
	if !strings.HasPrefix(out, "digraph cfg {") {
		t.Fatalf("expected digraph header, got:\n%s", out)
	}
	if !strings.Contains(out, "shape=record") {
		t.Fatalf("expected record-shaped nodes, got:\n%s", out)
	}
}

func TestDebugSummaryListsSignatures(t *testing.T) {
	prog, _, _, _ := build(t, src)
	out := DebugSummary(prog)
	if !strings.Contains(out, "add") || !strings.Contains(out, "main") {
		t.Fatalf("expected both function names, got:\n%s", out)
	}
}
