package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkMainPresence is check 2: exactly one int main() with no parameters.
func checkMainPresence(prog *ast.Program, table *symtab.Table) error {
	count := 0
	var bad *symtab.Row
	for _, row := range table.Top.Rows {
		if row.Kind != symtab.Function || row.Name != "main" {
			continue
		}
		count++
		if row.Type != ast.Int || len(row.ParamTypes) != 0 {
			bad = row
		}
	}
	switch {
	case count == 0:
		return errorAt(prog.Loc(), "no function named \"main\" found")
	case count > 1:
		return errorAt(prog.Loc(), "more than one function named \"main\" found")
	case bad != nil:
		return errorAt(bad.Node.Loc(), "\"main\" must return int and take no parameters")
	}
	return nil
}
