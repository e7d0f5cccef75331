package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkTypeConversions is check 8: the language performs no implicit type
// conversions. This walks every statement and expression, inferring types
// top-down and comparing them against the rules spec §4.3 item 8 lists.
func checkTypeConversions(prog *ast.Program, table *symtab.Table) error {
	tc := &typeChecker{table: table, scopes: symtab.BuildScopeMap(table, prog)}
	for _, fn := range prog.Functions {
		if err := tc.checkCompound(fn.Body, fn.ReturnType); err != nil {
			return err
		}
	}
	return nil
}

type typeChecker struct {
	table  *symtab.Table
	scopes symtab.ScopeMap
}

func (tc *typeChecker) checkCompound(c *ast.CompoundStmt, retType ast.Type) error {
	scope := tc.scopes[c]
	for _, stmt := range c.Stmts {
		if err := tc.checkStmt(scope, stmt, retType); err != nil {
			return err
		}
	}
	return nil
}

func (tc *typeChecker) checkStmt(scope *symtab.Scope, stmt ast.Stmt, retType ast.Type) error {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		return nil
	case *ast.AssignStmt:
		return tc.checkAssign(scope, s.Assign)
	case *ast.ExprStmt:
		_, err := tc.infer(scope, s.Expr)
		return err
	case *ast.ReturnStmt:
		if s.Value == nil {
			return nil
		}
		vt, err := tc.infer(scope, s.Value)
		if err != nil {
			return err
		}
		if vt != retType {
			return errorAt(s.Loc(), "return value type %s does not match declared return type %s", vt, retType)
		}
		return nil
	case *ast.IfStmt:
		if err := tc.requireBool(scope, s.Cond); err != nil {
			return err
		}
		return tc.checkCompound(s.Then, retType)
	case *ast.IfElseStmt:
		if err := tc.requireBool(scope, s.Cond); err != nil {
			return err
		}
		if err := tc.checkCompound(s.Then, retType); err != nil {
			return err
		}
		return tc.checkCompound(s.Else, retType)
	case *ast.WhileStmt:
		if err := tc.requireBool(scope, s.Cond); err != nil {
			return err
		}
		return tc.checkCompound(s.Body, retType)
	case *ast.NestedCompoundStmt:
		return tc.checkCompound(s.Body, retType)
	}
	return nil
}

func (tc *typeChecker) requireBool(scope *symtab.Scope, cond ast.Expr) error {
	t, err := tc.infer(scope, cond)
	if err != nil {
		return err
	}
	if t != ast.Bool {
		return errorAt(cond.Loc(), "condition must be bool, found %s", t)
	}
	return nil
}

func (tc *typeChecker) checkAssign(scope *symtab.Scope, a ast.Assignment) error {
	switch assign := a.(type) {
	case *ast.VariableAssign:
		row := symtab.CheckUpwardsForDeclaration(scope, assign.Name)
		if row == nil {
			return nil // check 6 already reports this
		}
		if row.Kind == symtab.Array {
			return errorAt(assign.Loc(), "array %q may not be assigned as a whole value", assign.Name)
		}
		vt, err := tc.infer(scope, assign.Value)
		if err != nil {
			return err
		}
		if vt != row.Type {
			return errorAt(assign.Loc(), "cannot assign %s to variable %q of type %s", vt, assign.Name, row.Type)
		}
		return nil
	case *ast.ArrayAssign:
		row := symtab.CheckUpwardsForDeclaration(scope, assign.Name)
		if row == nil {
			return nil
		}
		if row.Kind != symtab.Array {
			return errorAt(assign.Loc(), "%q is not an array", assign.Name)
		}
		it, err := tc.infer(scope, assign.Index)
		if err != nil {
			return err
		}
		if it != ast.Int {
			return errorAt(assign.Index.Loc(), "array index must be int, found %s", it)
		}
		vt, err := tc.infer(scope, assign.Value)
		if err != nil {
			return err
		}
		if vt != row.Type {
			return errorAt(assign.Loc(), "cannot assign %s to element of array %q of type %s", vt, assign.Name, row.Type)
		}
		return nil
	}
	return nil
}

// infer computes e's type, enforcing the no-implicit-conversion rules
// along the way. A bare reference to an array name is always rejected
// here; passing a whole array as a call argument is validated separately
// by checkArgExpr, never through infer.
func (tc *typeChecker) infer(scope *symtab.Scope, e ast.Expr) (ast.Type, error) {
	switch ex := e.(type) {
	case *ast.LiteralExpr:
		return ex.Literal.Type(), nil
	case *ast.ParenExpr:
		return tc.infer(scope, ex.Inner)
	case *ast.VariableExpr:
		row := symtab.CheckUpwardsForDeclaration(scope, ex.Name)
		if row == nil {
			return ast.Int, nil // check 6 already reports this
		}
		if row.Kind == symtab.Array {
			return 0, errorAt(ex.Loc(), "array %q used as a whole value", ex.Name)
		}
		return row.Type, nil
	case *ast.ArrayElementExpr:
		row := symtab.CheckUpwardsForDeclaration(scope, ex.Name)
		if row == nil {
			return ast.Int, nil
		}
		if row.Kind != symtab.Array {
			return 0, errorAt(ex.Loc(), "%q is not an array", ex.Name)
		}
		it, err := tc.infer(scope, ex.Index)
		if err != nil {
			return 0, err
		}
		if it != ast.Int {
			return 0, errorAt(ex.Index.Loc(), "array index must be int, found %s", it)
		}
		return row.Type, nil
	case *ast.UnaryExpr:
		ot, err := tc.infer(scope, ex.Operand)
		if err != nil {
			return 0, err
		}
		if ex.Op == ast.Neg && ot == ast.Bool {
			return 0, errorAt(ex.Loc(), "unary - does not accept bool")
		}
		if ex.Op == ast.Not && ot != ast.Bool {
			return 0, errorAt(ex.Loc(), "unary ! requires bool, found %s", ot)
		}
		return ot, nil
	case *ast.BinaryExpr:
		lt, err := tc.infer(scope, ex.Left)
		if err != nil {
			return 0, err
		}
		rt, err := tc.infer(scope, ex.Right)
		if err != nil {
			return 0, err
		}
		switch {
		case ex.Op.IsArithmetic():
			if lt != rt || lt == ast.Bool {
				return 0, errorAt(ex.Loc(), "operator %s requires matching non-bool operands, found %s and %s", ex.Op, lt, rt)
			}
			return lt, nil
		case ex.Op.IsComparison():
			if lt != rt || lt == ast.Bool {
				return 0, errorAt(ex.Loc(), "operator %s requires matching non-bool operands, found %s and %s", ex.Op, lt, rt)
			}
			return ast.Bool, nil
		case ex.Op.IsLogical():
			if lt != ast.Bool || rt != ast.Bool {
				return 0, errorAt(ex.Loc(), "operator %s requires bool operands, found %s and %s", ex.Op, lt, rt)
			}
			return ast.Bool, nil
		case ex.Op.IsEquality():
			if lt != rt {
				return 0, errorAt(ex.Loc(), "operator %s requires matching operand types, found %s and %s", ex.Op, lt, rt)
			}
			return ast.Bool, nil
		}
		return 0, errorAt(ex.Loc(), "unhandled binary operator %s", ex.Op)
	case *ast.CallExpr:
		row := symtab.CheckForFunctionDeclaration(tc.table, ex.Name)
		if row == nil {
			return ast.Int, nil // check 3 already reports this
		}
		for _, arg := range ex.Args {
			if err := tc.checkArgExpr(scope, arg); err != nil {
				return 0, err
			}
		}
		return row.Type, nil
	}
	return 0, errorAt(e.Loc(), "unhandled expression in type check")
}

// checkArgExpr type-checks one call argument expression. A bare array
// name is allowed here (shape and size are validated by check 9); every
// other expression form goes through the ordinary rules.
func (tc *typeChecker) checkArgExpr(scope *symtab.Scope, arg ast.Expr) error {
	if v, ok := arg.(*ast.VariableExpr); ok {
		if row := symtab.CheckUpwardsForDeclaration(scope, v.Name); row != nil && row.Kind == symtab.Array {
			return nil
		}
	}
	_, err := tc.infer(scope, arg)
	return err
}
