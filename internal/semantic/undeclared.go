package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkUndeclaredVariable is check 6: every variable/array reference and
// every assignment target must resolve via upward lookup from its scope.
func checkUndeclaredVariable(prog *ast.Program, table *symtab.Table) error {
	scopes := symtab.BuildScopeMap(table, prog)
	var found error

	report := func(scope *symtab.Scope, name string, loc ast.SourceLocation) {
		if found != nil || scope == nil {
			return
		}
		if symtab.CheckUpwardsForDeclaration(scope, name) == nil {
			found = errorAt(loc, "use of undeclared variable %q", name)
		}
	}

	var walkAssignTargets func(c *ast.CompoundStmt)
	walkAssignTargets = func(c *ast.CompoundStmt) {
		scope := scopes[c]
		for _, stmt := range c.Stmts {
			switch s := stmt.(type) {
			case *ast.AssignStmt:
				switch a := s.Assign.(type) {
				case *ast.VariableAssign:
					report(scope, a.Name, a.Loc())
				case *ast.ArrayAssign:
					report(scope, a.Name, a.Loc())
				}
			case *ast.IfStmt:
				walkAssignTargets(s.Then)
			case *ast.IfElseStmt:
				walkAssignTargets(s.Then)
				walkAssignTargets(s.Else)
			case *ast.WhileStmt:
				walkAssignTargets(s.Body)
			case *ast.NestedCompoundStmt:
				walkAssignTargets(s.Body)
			}
		}
	}
	for _, fn := range prog.Functions {
		walkAssignTargets(fn.Body)
	}

	forEachExpr(prog, func(c *ast.CompoundStmt, e ast.Expr) {
		scope := scopes[c]
		switch ex := e.(type) {
		case *ast.VariableExpr:
			report(scope, ex.Name, ex.Loc())
		case *ast.ArrayElementExpr:
			report(scope, ex.Name, ex.Loc())
		}
	})

	return found
}
