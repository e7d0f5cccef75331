package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// checkCallShape is check 9: arity matches the callee's parameter list,
// and each argument matches its positional parameter's shape — a scalar
// parameter needs a scalar argument of matching type; an array parameter
// needs an array argument of matching element type and declared size.
func checkCallShape(prog *ast.Program, table *symtab.Table) error {
	scopes := symtab.BuildScopeMap(table, prog)
	var found error
	forEachExpr(prog, func(c *ast.CompoundStmt, e ast.Expr) {
		if found != nil {
			return
		}
		call, ok := e.(*ast.CallExpr)
		if !ok {
			return
		}
		row := symtab.CheckForFunctionDeclaration(table, call.Name)
		if row == nil {
			return // check 3 already reports this
		}
		found = checkOneCall(table, scopes[c], row, call)
	})
	return found
}

func checkOneCall(table *symtab.Table, scope *symtab.Scope, row *symtab.Row, call *ast.CallExpr) error {
	if len(call.Args) != len(row.ParamTypes) {
		return errorAt(call.Loc(), "call to %q passes %d argument(s), expected %d", call.Name, len(call.Args), len(row.ParamTypes))
	}
	for i, arg := range call.Args {
		if err := checkOneArg(table, scope, row, i, arg); err != nil {
			return err
		}
	}
	return nil
}

func checkOneArg(table *symtab.Table, scope *symtab.Scope, row *symtab.Row, i int, arg ast.Expr) error {
	wantKind := row.ParamKinds[i]
	wantType := row.ParamTypes[i]

	if wantKind == symtab.Array {
		v, ok := arg.(*ast.VariableExpr)
		if !ok {
			return errorAt(arg.Loc(), "parameter %d expects an array argument", i+1)
		}
		argRow := symtab.CheckUpwardsForDeclaration(scope, v.Name)
		if argRow == nil || argRow.Kind != symtab.Array {
			return errorAt(arg.Loc(), "parameter %d expects an array argument", i+1)
		}
		if argRow.Type != wantType || argRow.ArraySize != row.ParamArraySizes[i] {
			return errorAt(arg.Loc(), "parameter %d expects %s[%d], found %s[%d]",
				i+1, wantType, row.ParamArraySizes[i], argRow.Type, argRow.ArraySize)
		}
		return nil
	}

	// Scalar parameter: a bare array-name argument is a shape mismatch
	// even though type inference alone would just call it "an array used
	// as a whole value"; report it in call-shape terms instead.
	if v, ok := arg.(*ast.VariableExpr); ok {
		if argRow := symtab.CheckUpwardsForDeclaration(scope, v.Name); argRow != nil && argRow.Kind == symtab.Array {
			return errorAt(arg.Loc(), "parameter %d expects a scalar %s, found array %q", i+1, wantType, v.Name)
		}
	}
	argType, err := (&typeChecker{table: table}).infer(scope, arg)
	if err != nil {
		return err
	}
	if argType != wantType {
		return errorAt(arg.Loc(), "parameter %d expects %s, found %s", i+1, wantType, argType)
	}
	return nil
}
