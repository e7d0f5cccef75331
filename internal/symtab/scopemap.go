package symtab

import "mcc/internal/ast"

// ScopeMap resolves, for each compound statement, the scope whose rows are
// directly visible to that compound's own statements.
type ScopeMap map[*ast.CompoundStmt]*Scope

// BuildScopeMap walks prog in lockstep with table (already built by Build,
// over the same program) to recover which scope any given compound
// statement's direct declarations and expressions resolve in. Later passes
// (semantic checks, IR generation) use this instead of re-deriving scope
// from scratch.
func BuildScopeMap(table *Table, prog *ast.Program) ScopeMap {
	m := ScopeMap{}
	fnRows := map[*ast.FunctionDef]*Row{}
	for _, row := range table.Top.Rows {
		if fn, ok := row.Node.(*ast.FunctionDef); ok {
			if _, dup := fnRows[fn]; !dup {
				fnRows[fn] = row
			}
		}
	}
	for _, fn := range prog.Functions {
		row, ok := fnRows[fn]
		if !ok || row.Child == nil {
			continue
		}
		recurseCompound(row.Child, fn.Body, m)
	}
	return m
}

func recurseCompound(scope *Scope, c *ast.CompoundStmt, m ScopeMap) {
	m[c] = scope
	rowIdx := 0
	nextRow := func() *Row {
		if rowIdx >= len(scope.Rows) {
			return nil
		}
		r := scope.Rows[rowIdx]
		rowIdx++
		return r
	}
	for _, stmt := range c.Stmts {
		switch s := stmt.(type) {
		case *ast.DeclStmt:
			nextRow()
		case *ast.IfStmt:
			if a := nextRow(); a != nil && a.Child != nil {
				recurseCompound(a.Child, s.Then, m)
			}
		case *ast.IfElseStmt:
			if a := nextRow(); a != nil && a.Child != nil {
				recurseCompound(a.Child, s.Then, m)
			}
			if a := nextRow(); a != nil && a.Child != nil {
				recurseCompound(a.Child, s.Else, m)
			}
		case *ast.WhileStmt:
			if a := nextRow(); a != nil && a.Child != nil {
				recurseCompound(a.Child, s.Body, m)
			}
		case *ast.NestedCompoundStmt:
			if a := nextRow(); a != nil && a.Child != nil {
				recurseCompound(a.Child, s.Body, m)
			}
		}
	}
}
