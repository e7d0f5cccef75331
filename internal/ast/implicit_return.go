package ast

// insertImplicitReturns appends an empty return statement to the end of
// every void function whose body doesn't already end in a return on every
// path. Non-void functions missing a return are left alone; that's
// diagnosed by the nonvoid semantic check, not fixed up here.
func insertImplicitReturns(prog *Program) {
	for _, fn := range prog.Functions {
		if fn.ReturnType != Void {
			continue
		}
		if EndsInReturn(fn.Body.Stmts) {
			continue
		}
		loc := fn.Body.Loc()
		fn.Body.Stmts = append(fn.Body.Stmts, &ReturnStmt{Location: loc})
	}
}
