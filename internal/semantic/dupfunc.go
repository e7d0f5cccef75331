package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkDuplicateFunctionDefs is check 4: no two top-level function
// definitions share a name. Built-in stubs are excluded here — a
// user function colliding with a built-in's name is check 7's concern,
// not a duplicate-definition error.
func checkDuplicateFunctionDefs(prog *ast.Program, _ *symtab.Table) error {
	seen := map[string]bool{}
	for _, fn := range prog.Functions {
		if fn.IsBuiltinStub {
			continue
		}
		if seen[fn.Name] {
			return errorAt(fn.Loc(), "function %q is defined more than once", fn.Name)
		}
		seen[fn.Name] = true
	}
	return nil
}
