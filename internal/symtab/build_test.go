package symtab

import (
	"testing"

	"mcc/internal/ast"
	"mcc/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	res := parser.ParseFile("t.src", src)
	if res.Status != parser.StatusOK {
		t.Fatalf("unexpected parse errors: %v", res.Errs)
	}
	return res.Program
}

func TestBuildTopScopeHasFunctionRows(t *testing.T) {
	prog := mustParse(t, `int add(int a, int b){ return a+b; } int main(){ return add(1,2); }`)
	table := Build(prog)
	if len(table.Top.Rows) != 2 {
		t.Fatalf("expected 2 function rows, got %d", len(table.Top.Rows))
	}
	if table.Top.Rows[0].Kind != Function || table.Top.Rows[0].Name != "add" {
		t.Fatalf("expected first row to be function 'add', got %+v", table.Top.Rows[0])
	}
	if r := CheckForFunctionDeclaration(table, "add"); r == nil || len(r.ParamTypes) != 2 {
		t.Fatalf("expected add() to resolve with 2 params, got %+v", r)
	}
}

func TestBuildParamsInFunctionScope(t *testing.T) {
	prog := mustParse(t, `int add(int a, int b){ return a+b; }`)
	table := Build(prog)
	fnRow := table.Top.Rows[0]
	if fnRow.Child == nil || len(fnRow.Child.Rows) != 2 {
		t.Fatalf("expected 2 param rows in function scope, got %+v", fnRow.Child)
	}
	if got := CheckUpwardsForDeclaration(fnRow.Child, "a"); got == nil || got.Type != ast.Int {
		t.Fatalf("expected 'a' to resolve as int, got %+v", got)
	}
}

func TestNestedScopeAnchoredByPseudoRow(t *testing.T) {
	prog := mustParse(t, `int main(){ int a; a=1; { int b; b=2; } return a; }`)
	table := Build(prog)
	fnScope := table.Top.Rows[0].Child
	var pseudo *Row
	for _, r := range fnScope.Rows {
		if r.Kind == Pseudo {
			pseudo = r
		}
	}
	if pseudo == nil || pseudo.Child == nil {
		t.Fatalf("expected a pseudo row anchoring the nested block's scope")
	}
	if got := CheckUpwardsForDeclaration(pseudo.Child, "b"); got == nil {
		t.Fatalf("expected 'b' to resolve inside its own nested scope")
	}
	if got := CheckUpwardsForDeclaration(pseudo.Child, "a"); got == nil {
		t.Fatalf("expected 'a' to resolve by ascending into the function scope")
	}
}

func TestArrayDeclarationRow(t *testing.T) {
	prog := mustParse(t, `int main(){ int[10] xs; xs[0] = 1; return 0; }`)
	table := Build(prog)
	fnScope := table.Top.Rows[0].Child
	row := CheckUpwardsForDeclaration(fnScope, "xs")
	if row == nil || row.Kind != Array || row.ArraySize != 10 || row.Type != ast.Int {
		t.Fatalf("expected array row xs[10] of int, got %+v", row)
	}
}

func TestUpwardLookupMissReturnsNil(t *testing.T) {
	prog := mustParse(t, `int main(){ return 0; }`)
	table := Build(prog)
	if got := CheckUpwardsForDeclaration(table.Top.Rows[0].Child, "nope"); got != nil {
		t.Fatalf("expected nil for an undeclared name, got %+v", got)
	}
}
