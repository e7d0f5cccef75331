package ir

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// Generate lowers prog (built-ins already spliced back out by
// ast.RemoveBuiltins) into a single doubly-linked IR sequence, using table
// — built before built-in removal — to resolve declared types and callee
// signatures (built-in calls still appear as ordinary CALL rows).
func Generate(prog *ast.Program, table *symtab.Table) *Row {
	scopes := symtab.BuildScopeMap(table, prog)
	g := newGenerator(table, scopes)
	for _, fn := range prog.Functions {
		g.genFunction(fn)
	}
	NumberRows(g.head)
	return g.head
}

func (g *generator) genFunction(fn *ast.FunctionDef) {
	g.emit(&Row{Instr: FuncLabel, Type: Typeless, Arg1: &Arg{Kind: FuncLabelRef, Name: fn.Name}})

	scope := g.scopes[fn.Body]
	for _, p := range fn.Params {
		name := p.Name()
		rt := FromASTType(paramElemType(p))
		pop := g.emit(&Row{Instr: Pop, Type: rt})
		g.emit(&Row{
			Instr: Assign, Type: rt,
			Arg1: &Arg{Kind: Ident, Name: name},
			Arg2: &Arg{Kind: RowRef, Row: pop},
		})
	}
	g.genCompound(scope, fn.Body)
}

func paramElemType(p *ast.Param) ast.Type {
	switch d := p.Decl.(type) {
	case *ast.VariableDecl:
		return d.Type
	case *ast.ArrayDecl:
		return d.ElemType
	default:
		return ast.Int
	}
}
