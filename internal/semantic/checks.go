// Package semantic runs the fixed bank of nine checks described in spec
// §4.3 over a canonicalized program and its symbol table, short-circuiting
// at the first failing check since later checks presuppose earlier ones.
package semantic

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

type check func(prog *ast.Program, table *symtab.Table) error

// order matters: each check may assume every earlier one already passed.
var checks = []check{
	checkNonvoidPaths,
	checkMainPresence,
	checkUnknownFunctionCall,
	checkDuplicateFunctionDefs,
	checkDuplicateVariableDeclarations,
	checkUndeclaredVariable,
	checkBuiltinShadowing,
	checkTypeConversions,
	checkCallShape,
}

// RunAll builds the symbol table and runs the check bank, returning the
// first diagnostic produced, or nil if the program passes every check.
func RunAll(prog *ast.Program) (*symtab.Table, error) {
	table := symtab.Build(prog)
	for _, c := range checks {
		if err := c(prog, table); err != nil {
			return table, err
		}
	}
	return table, nil
}
