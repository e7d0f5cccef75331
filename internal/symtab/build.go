package symtab

import "mcc/internal/ast"

// Build performs the depth-first traversal of spec §4.2 over a
// canonicalized program (built-ins already injected, shadows already
// renamed) and returns the resulting table.
func Build(prog *ast.Program) *Table {
	b := &builder{table: newTable()}
	for _, fn := range prog.Functions {
		b.buildFunction(fn)
	}
	return b.table
}

type builder struct {
	table       *Table
	pseudoCount int
}

func (b *builder) buildFunction(fn *ast.FunctionDef) {
	row := newRow(Function, fn.Name, fn)
	row.Type = fn.ReturnType
	for _, p := range fn.Params {
		switch d := p.Decl.(type) {
		case *ast.VariableDecl:
			row.ParamKinds = append(row.ParamKinds, Variable)
			row.ParamTypes = append(row.ParamTypes, d.Type)
			row.ParamArraySizes = append(row.ParamArraySizes, 0)
		case *ast.ArrayDecl:
			row.ParamKinds = append(row.ParamKinds, Array)
			row.ParamTypes = append(row.ParamTypes, d.ElemType)
			row.ParamArraySizes = append(row.ParamArraySizes, d.Size)
		}
	}
	b.table.Top.append(row)

	fnScope := b.table.Top.newChildOf(row)
	for _, p := range fn.Params {
		fnScope.append(b.declRowForParam(p))
	}
	b.buildCompoundInto(fnScope, fn.Body)
}

func (b *builder) declRowForParam(p *ast.Param) *Row {
	switch d := p.Decl.(type) {
	case *ast.VariableDecl:
		r := newRow(Variable, d.Name, d)
		r.Type = d.Type
		return r
	case *ast.ArrayDecl:
		r := newRow(Array, d.Name, d)
		r.Type = d.ElemType
		r.ArraySize = d.Size
		return r
	default:
		return newRow(Variable, p.Name(), p)
	}
}

// buildCompoundInto populates scope directly with the statements of c,
// without creating a further child scope for c itself. Used for a
// function's own body, whose anchor is the function row.
func (b *builder) buildCompoundInto(scope *Scope, c *ast.CompoundStmt) {
	for _, stmt := range c.Stmts {
		b.buildStmt(scope, stmt)
	}
}

func (b *builder) buildStmt(scope *Scope, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		scope.append(b.declRow(s.Decl))
	case *ast.AssignStmt, *ast.ExprStmt, *ast.ReturnStmt:
		// No declarations introduced.
	case *ast.IfStmt:
		b.nestedScope(scope, s, s.Then)
	case *ast.IfElseStmt:
		b.nestedScope(scope, s, s.Then)
		b.nestedScope(scope, s, s.Else)
	case *ast.WhileStmt:
		b.nestedScope(scope, s, s.Body)
	case *ast.NestedCompoundStmt:
		b.nestedScope(scope, s, s.Body)
	}
}

func (b *builder) declRow(d ast.Declaration) *Row {
	switch decl := d.(type) {
	case *ast.VariableDecl:
		r := newRow(Variable, decl.Name, decl)
		r.Type = decl.Type
		return r
	case *ast.ArrayDecl:
		r := newRow(Array, decl.Name, decl)
		r.Type = decl.ElemType
		r.ArraySize = decl.Size
		return r
	default:
		return newRow(Variable, d.DeclName(), d)
	}
}

// nestedScope appends a pseudo row anchoring a fresh child scope for one
// compound statement (an if/else branch, a while body, or a bare nested
// block), then recurses into it.
func (b *builder) nestedScope(scope *Scope, owner ast.Node, body *ast.CompoundStmt) {
	b.pseudoCount++
	anchor := newRow(Pseudo, pseudoName(b.pseudoCount), owner)
	scope.append(anchor)
	child := scope.newChildOf(anchor)
	b.buildCompoundInto(child, body)
}

func pseudoName(n int) string {
	digits := []byte{}
	if n == 0 {
		digits = append(digits, '0')
	}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return "$scope" + string(digits)
}
