package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkUnknownFunctionCall is check 3: every call identifier must resolve
// in the top scope (built-ins have already been injected by this point).
func checkUnknownFunctionCall(prog *ast.Program, table *symtab.Table) error {
	var found error
	forEachExpr(prog, func(_ *ast.CompoundStmt, e ast.Expr) {
		if found != nil {
			return
		}
		call, ok := e.(*ast.CallExpr)
		if !ok {
			return
		}
		if symtab.CheckForFunctionDeclaration(table, call.Name) == nil {
			found = errorAt(call.Loc(), "call to undeclared function %q", call.Name)
		}
	})
	return found
}
