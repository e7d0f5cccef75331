package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkDuplicateVariableDeclarations is check 5: within any one scope, all
// row names are unique. Function rows in the top scope were already ruled
// on by check 4, so this walk only needs to look at variable/array rows.
func checkDuplicateVariableDeclarations(_ *ast.Program, table *symtab.Table) error {
	return walkScopes(table.Top, func(s *symtab.Scope) error {
		seen := map[string]bool{}
		for _, row := range s.Rows {
			if row.Kind != symtab.Variable && row.Kind != symtab.Array {
				continue
			}
			if seen[row.Name] {
				return errorAt(row.Node.Loc(), "%q is already declared in this scope", row.Name)
			}
			seen[row.Name] = true
		}
		return nil
	})
}

// walkScopes runs visit over scope and every descendant scope reachable
// through child rows, depth-first, stopping at the first error.
func walkScopes(scope *symtab.Scope, visit func(*symtab.Scope) error) error {
	if err := visit(scope); err != nil {
		return err
	}
	for _, row := range scope.Rows {
		if row.Child != nil {
			if err := walkScopes(row.Child, visit); err != nil {
				return err
			}
		}
	}
	return nil
}
