package ir

import (
	"mcc/internal/ast"
	"mcc/internal/symtab"
)

// lowerExpr lowers e to an operand argument plus its row type.
func (g *generator) lowerExpr(scope *symtab.Scope, e ast.Expr) (*Arg, RowType) {
	switch ex := e.(type) {
	case *ast.ParenExpr:
		return g.lowerExpr(scope, ex.Inner)
	case *ast.LiteralExpr:
		return g.lowerLiteral(ex.Literal)
	case *ast.VariableExpr:
		row := symtab.CheckUpwardsForDeclaration(scope, ex.Name)
		rt := Typeless
		if row != nil {
			rt = FromASTType(row.Type)
		}
		return &Arg{Kind: Ident, Name: ex.Name}, rt
	case *ast.ArrayElementExpr:
		idx, _ := g.lowerExpr(scope, ex.Index)
		row := symtab.CheckUpwardsForDeclaration(scope, ex.Name)
		rt := Typeless
		if row != nil {
			rt = FromASTType(row.Type)
		}
		return &Arg{Kind: ArrElem, Name: ex.Name, Index: idx}, rt
	case *ast.UnaryExpr:
		return g.lowerUnary(scope, ex)
	case *ast.BinaryExpr:
		return g.lowerBinary(scope, ex)
	case *ast.CallExpr:
		return g.lowerCall(scope, ex)
	}
	return &Arg{Kind: LitInt, IntVal: 0}, IntT
}

// lowerLiteral implements the literal-lowering rule: int/bool/string pass
// through as the argument directly; float literals are materialized to a
// named temporary so the x87 lowering can always address floats by name.
func (g *generator) lowerLiteral(lit ast.Literal) (*Arg, RowType) {
	switch l := lit.(type) {
	case *ast.IntLiteral:
		return &Arg{Kind: LitInt, IntVal: l.Value}, IntT
	case *ast.BoolLiteral:
		return &Arg{Kind: LitBool, BoolVal: l.Value}, BoolT
	case *ast.StringLiteral:
		return &Arg{Kind: LitString, StringVal: l.Value}, StringT
	case *ast.FloatLiteral:
		tmp := g.newTmp()
		g.emit(&Row{
			Instr: Assign, Type: FloatT,
			Arg1: &Arg{Kind: Ident, Name: tmp},
			Arg2: &Arg{Kind: LitFloat, FloatVal: l.Value},
		})
		return &Arg{Kind: Ident, Name: tmp}, FloatT
	}
	return &Arg{Kind: LitInt, IntVal: 0}, IntT
}

func (g *generator) lowerUnary(scope *symtab.Scope, ex *ast.UnaryExpr) (*Arg, RowType) {
	operand, rt := g.lowerExpr(scope, ex.Operand)
	instr := Neg
	if ex.Op == ast.Not {
		instr = Not
		rt = BoolT
	}
	row := g.emit(&Row{Instr: instr, Type: rt, Arg1: operand})
	return &Arg{Kind: RowRef, Row: row}, rt
}

// lowerBinary lowers a binary expression. The emitted row's Type records
// the OPERAND type, not always the result type: arithmetic's operand type
// is its result type, but a comparison between two floats still needs its
// row tagged FloatT so codegen knows to take the x87 path even though the
// comparison's own value is a bool (stack-frame sizing for comparisons
// ignores this field and always charges a bool-sized slot).
func (g *generator) lowerBinary(scope *symtab.Scope, ex *ast.BinaryExpr) (*Arg, RowType) {
	left, lt := g.lowerExpr(scope, ex.Left)
	right, _ := g.lowerExpr(scope, ex.Right)

	instr, rowType := binaryInstr(ex.Op, lt)
	row := g.emit(&Row{Instr: instr, Type: rowType, Arg1: left, Arg2: right})
	resultType := rowType
	if ex.Op.IsComparison() || ex.Op.IsEquality() {
		resultType = BoolT
	}
	return &Arg{Kind: RowRef, Row: row}, resultType
}

func binaryInstr(op ast.BinaryOp, operandType RowType) (Instr, RowType) {
	switch op {
	case ast.Add:
		return Plus, operandType
	case ast.Sub:
		return Minus, operandType
	case ast.Mul:
		return Multiply, operandType
	case ast.Div:
		return Divide, operandType
	case ast.Less:
		return Smaller, operandType
	case ast.Greater:
		return Greater, operandType
	case ast.LessEq:
		return SmallerEq, operandType
	case ast.GreaterEq:
		return GreaterEq, operandType
	case ast.Equal:
		return Equals, operandType
	case ast.NotEqual:
		return NotEquals, operandType
	case ast.And:
		return And, BoolT
	case ast.Or:
		return Or, BoolT
	}
	return Plus, operandType
}

// lowerCall lowers every argument in source order first, materializing
// string-literal and sub-expression arguments to named temporaries as it
// goes, then walks the already-materialized arguments in reverse emitting
// only PUSH rows. This keeps all of a call's pushes contiguous immediately
// before CALL (spec §4.4 "Arguments push ordering"): materialization must
// be finished before the first push is emitted, exactly as
// generate_ir_arguments in the original C compiler recurses to the end of
// the argument list before emitting the current argument's push.
func (g *generator) lowerCall(scope *symtab.Scope, ex *ast.CallExpr) (*Arg, RowType) {
	args := make([]*Arg, len(ex.Args))
	for i, a := range ex.Args {
		args[i] = g.lowerCallArg(scope, a)
	}
	for i := len(args) - 1; i >= 0; i-- {
		g.emit(&Row{Instr: Push, Type: Typeless, Arg1: args[i]})
	}
	row := g.emit(&Row{Instr: Call, Type: g.calleeReturnType(ex.Name), Arg1: &Arg{Kind: FuncLabelRef, Name: ex.Name}})
	return &Arg{Kind: RowRef, Row: row}, row.Type
}

func (g *generator) lowerCallArg(scope *symtab.Scope, e ast.Expr) *Arg {
	if lit, ok := e.(*ast.LiteralExpr); ok {
		if _, ok := lit.Literal.(*ast.StringLiteral); ok {
			arg, _ := g.lowerLiteralAsTemp(lit.Literal.(*ast.StringLiteral))
			return arg
		}
	}
	arg, _ := g.lowerExpr(scope, e)
	return arg
}

func (g *generator) lowerLiteralAsTemp(l *ast.StringLiteral) (*Arg, RowType) {
	tmp := g.newTmp()
	g.emit(&Row{
		Instr: Assign, Type: StringT,
		Arg1: &Arg{Kind: Ident, Name: tmp},
		Arg2: &Arg{Kind: LitString, StringVal: l.Value},
	})
	return &Arg{Kind: Ident, Name: tmp}, StringT
}

func (g *generator) calleeReturnType(name string) RowType {
	row := symtab.CheckForFunctionDeclaration(g.table, name)
	if row == nil {
		return Typeless
	}
	return FromASTType(row.Type)
}
