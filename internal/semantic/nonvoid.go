package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkNonvoidPaths is check 1: every non-void function must end in a
// return on every execution path.
func checkNonvoidPaths(prog *ast.Program, _ *symtab.Table) error {
	for _, fn := range prog.Functions {
		if fn.ReturnType == ast.Void {
			continue
		}
		if !ast.EndsInReturn(fn.Body.Stmts) {
			return errorAt(fn.Loc(), "function %q does not return a value on every path", fn.Name)
		}
	}
	return nil
}
