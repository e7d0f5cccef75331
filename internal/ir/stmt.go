package ir

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

func (g *generator) genCompound(scope *symtab.Scope, c *ast.CompoundStmt) {
	for _, stmt := range c.Stmts {
		g.genStmt(scope, stmt)
	}
}

func (g *generator) genStmt(scope *symtab.Scope, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		g.genDecl(scope, s.Decl)
	case *ast.AssignStmt:
		g.genAssign(scope, s.Assign)
	case *ast.ExprStmt:
		g.lowerExpr(scope, s.Expr)
	case *ast.IfStmt:
		g.genIf(scope, s)
	case *ast.IfElseStmt:
		g.genIfElse(scope, s)
	case *ast.WhileStmt:
		g.genWhile(scope, s)
	case *ast.ReturnStmt:
		g.genReturn(scope, s)
	case *ast.NestedCompoundStmt:
		g.genCompound(g.scopes[s.Body], s.Body)
	}
}

func (g *generator) genDecl(scope *symtab.Scope, d ast.Declaration) {
	switch decl := d.(type) {
	case *ast.VariableDecl:
		if decl.Type == ast.Float {
			g.emit(&Row{
				Instr: Assign, Type: FloatT,
				Arg1: &Arg{Kind: Ident, Name: decl.Name},
				Arg2: &Arg{Kind: LitFloat, FloatVal: 0},
			})
		}
	case *ast.ArrayDecl:
		g.emit(&Row{
			Instr: Array, Type: FromASTType(decl.ElemType),
			Arg1: &Arg{Kind: Ident, Name: decl.Name},
			Arg2: &Arg{Kind: LitInt, IntVal: decl.Size},
		})
	}
}

func (g *generator) genAssign(scope *symtab.Scope, a ast.Assignment) {
	switch assign := a.(type) {
	case *ast.VariableAssign:
		rhs, rt := g.lowerExpr(scope, assign.Value)
		g.emit(&Row{
			Instr: Assign, Type: rt,
			Arg1: &Arg{Kind: Ident, Name: assign.Name},
			Arg2: rhs,
		})
	case *ast.ArrayAssign:
		idx, _ := g.lowerExpr(scope, assign.Index)
		rhs, rt := g.lowerExpr(scope, assign.Value)
		g.emit(&Row{
			Instr: Assign, Type: rt,
			Arg1: &Arg{Kind: ArrElem, Name: assign.Name, Index: idx},
			Arg2: rhs,
		})
	}
}

func (g *generator) genIf(scope *symtab.Scope, s *ast.IfStmt) {
	cond, _ := g.lowerExpr(scope, s.Cond)
	l := g.newLabel()
	g.emit(&Row{Instr: JumpFalse, Type: Typeless, Arg1: cond, Arg2: &Arg{Kind: LabelRef, LabelNum: l}})
	g.genCompound(g.scopes[s.Then], s.Then)
	g.emit(&Row{Instr: Label, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l}})
}

func (g *generator) genIfElse(scope *symtab.Scope, s *ast.IfElseStmt) {
	cond, _ := g.lowerExpr(scope, s.Cond)
	l1 := g.newLabel()
	g.emit(&Row{Instr: JumpFalse, Type: Typeless, Arg1: cond, Arg2: &Arg{Kind: LabelRef, LabelNum: l1}})
	g.genCompound(g.scopes[s.Then], s.Then)
	thenReturned := g.lastIsReturn()
	l2 := 0
	if !thenReturned {
		l2 = g.newLabel()
		g.emit(&Row{Instr: Jump, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l2}})
	}
	g.emit(&Row{Instr: Label, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l1}})
	g.genCompound(g.scopes[s.Else], s.Else)
	elseReturned := g.lastIsReturn()
	if !(thenReturned && elseReturned) {
		if l2 == 0 {
			l2 = g.newLabel()
		}
		g.emit(&Row{Instr: Label, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l2}})
	}
}

func (g *generator) genWhile(scope *symtab.Scope, s *ast.WhileStmt) {
	l0 := g.newLabel()
	g.emit(&Row{Instr: Label, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l0}})
	cond, _ := g.lowerExpr(scope, s.Cond)
	l1 := g.newLabel()
	g.emit(&Row{Instr: JumpFalse, Type: Typeless, Arg1: cond, Arg2: &Arg{Kind: LabelRef, LabelNum: l1}})
	g.genCompound(g.scopes[s.Body], s.Body)
	g.emit(&Row{Instr: Jump, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l0}})
	g.emit(&Row{Instr: Label, Type: Typeless, Arg1: &Arg{Kind: LabelRef, LabelNum: l1}})
}

func (g *generator) genReturn(scope *symtab.Scope, s *ast.ReturnStmt) {
	if g.lastIsReturn() {
		return
	}
	if s.Value == nil {
		g.emit(&Row{Instr: Return, Type: Typeless})
		return
	}
	val, rt := g.lowerExpr(scope, s.Value)
	g.emit(&Row{Instr: Return, Type: rt, Arg1: val})
}
