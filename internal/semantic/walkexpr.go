package semantic

import "mcc/internal/ast"

// exprVisit is called once per expression node encountered anywhere in the
// program, together with the compound statement it was found directly or
// indirectly inside (for scope resolution via scopeMap).
type exprVisit func(c *ast.CompoundStmt, e ast.Expr)

func forEachExpr(prog *ast.Program, visit exprVisit) {
	for _, fn := range prog.Functions {
		walkCompoundExprs(fn.Body, visit)
	}
}

func walkCompoundExprs(c *ast.CompoundStmt, visit exprVisit) {
	for _, stmt := range c.Stmts {
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			walkExprTree(c, s.Expr, visit)
		case *ast.AssignStmt:
			switch a := s.Assign.(type) {
			case *ast.VariableAssign:
				walkExprTree(c, a.Value, visit)
			case *ast.ArrayAssign:
				walkExprTree(c, a.Index, visit)
				walkExprTree(c, a.Value, visit)
			}
		case *ast.ReturnStmt:
			if s.Value != nil {
				walkExprTree(c, s.Value, visit)
			}
		case *ast.IfStmt:
			walkExprTree(c, s.Cond, visit)
			walkCompoundExprs(s.Then, visit)
		case *ast.IfElseStmt:
			walkExprTree(c, s.Cond, visit)
			walkCompoundExprs(s.Then, visit)
			walkCompoundExprs(s.Else, visit)
		case *ast.WhileStmt:
			walkExprTree(c, s.Cond, visit)
			walkCompoundExprs(s.Body, visit)
		case *ast.NestedCompoundStmt:
			walkCompoundExprs(s.Body, visit)
		}
	}
}

// walkExprTree visits e and, recursively, every expression nested inside it.
func walkExprTree(c *ast.CompoundStmt, e ast.Expr, visit exprVisit) {
	if e == nil {
		return
	}
	visit(c, e)
	switch ex := e.(type) {
	case *ast.BinaryExpr:
		walkExprTree(c, ex.Left, visit)
		walkExprTree(c, ex.Right, visit)
	case *ast.UnaryExpr:
		walkExprTree(c, ex.Operand, visit)
	case *ast.ParenExpr:
		walkExprTree(c, ex.Inner, visit)
	case *ast.CallExpr:
		for _, a := range ex.Args {
			walkExprTree(c, a, visit)
		}
	case *ast.ArrayElementExpr:
		walkExprTree(c, ex.Index, visit)
	}
}
