package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkBuiltinShadowing is check 7: no user-defined function may carry a
// built-in's name.
func checkBuiltinShadowing(prog *ast.Program, _ *symtab.Table) error {
	for _, fn := range prog.Functions {
		if !fn.IsBuiltinStub && ast.IsBuiltinName(fn.Name) {
			return errorAt(fn.Loc(), "function %q shadows a built-in name", fn.Name)
		}
	}
	return nil
}
