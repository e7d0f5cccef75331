package x86

import (
	"mcc/internal/ir"
	"mcc/internal/stackframe"
)

func (g *funcGen) genRow(a *stackframe.Annotated) {
	row := a.Row
	switch row.Instr {
	case ir.FuncLabel:
		// handled by generateFunction's prologue.
	case ir.Label:
		g.emitLabel(row.Arg1.LabelNum)
	case ir.Jump:
		g.emitJump(Jmp, row.Arg1.LabelNum)
	case ir.JumpFalse:
		g.genJumpFalse(a)
	case ir.Assign:
		g.genAssign(a)
	case ir.Plus, ir.Minus, ir.Multiply, ir.Divide:
		g.genArith(a)
	case ir.Equals, ir.NotEquals, ir.Smaller, ir.Greater, ir.SmallerEq, ir.GreaterEq:
		g.genCompare(a)
	case ir.And, ir.Or:
		g.genLogical(a)
	case ir.Not:
		g.genNot(a)
	case ir.Neg:
		g.genNeg(a)
	case ir.Push:
		g.genPush(a)
	case ir.Pop:
		// POP is a bookkeeping marker only: its stack position gives the
		// incoming argument's offset; the following ASSIGN reads it directly.
	case ir.Call:
		g.genCall(a)
	case ir.Return:
		g.genReturn(a)
	case ir.Array:
		// space is reserved by the stack-frame annotation alone.
	}
}

// jump/label lines reuse Line.Label for their target; First/Second stay nil.
func (g *funcGen) emitJump(op Opcode, label int) {
	g.lines = append(g.lines, &Line{Opcode: op, Label: label})
}

func (g *funcGen) genJumpFalse(a *stackframe.Annotated) {
	cond := g.resolveOperand(a, a.Row.Arg1)
	cond = g.materialize(cond, EAX)
	g.emit(Cmpl, &Operand{Kind: OpLiteral, Literal: 0}, cond)
	g.emitJump(Je, a.Row.Arg2.LabelNum)
}

func (g *funcGen) genAssign(a *stackframe.Annotated) {
	dest := g.resolveOperand(a, a.Row.Arg1)
	if a.Row.Type == ir.FloatT {
		src := g.resolveOperand(a, a.Row.Arg2)
		g.emit(Flds, src, nil)
		g.emit(Fstps, dest, nil)
		return
	}
	src := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Movl, src, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genArith(a *stackframe.Annotated) {
	dest := g.operandForRow(a.Row)
	if a.Row.Type == ir.FloatT {
		g.genFloatArith(a, dest)
		return
	}
	left := g.resolveOperand(a, a.Row.Arg1)
	right := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Movl, left, &Operand{Kind: OpRegister, Reg: EAX})
	switch a.Row.Instr {
	case ir.Plus:
		g.emit(Addl, right, &Operand{Kind: OpRegister, Reg: EAX})
	case ir.Minus:
		g.emit(Subl, right, &Operand{Kind: OpRegister, Reg: EAX})
	case ir.Multiply:
		right = g.materialize(right, ECX)
		g.emit(Imull, right, &Operand{Kind: OpRegister, Reg: EAX})
	case ir.Divide:
		right = g.materialize(right, ECX)
		g.emit(Cltd, nil, nil)
		g.emit(Idivl, right, nil)
	}
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genFloatArith(a *stackframe.Annotated, dest *Operand) {
	left := g.resolveOperand(a, a.Row.Arg1)
	right := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Flds, left, nil)
	g.emit(Flds, right, nil)
	switch a.Row.Instr {
	case ir.Plus:
		g.emit(Faddp, nil, nil)
	case ir.Minus:
		g.emit(Fsubp, nil, nil)
	case ir.Multiply:
		g.emit(Fmulp, nil, nil)
	case ir.Divide:
		g.emit(Fdivp, nil, nil)
	}
	g.emit(Fstps, dest, nil)
}

func (g *funcGen) genCompare(a *stackframe.Annotated) {
	dest := g.operandForRow(a.Row)
	if a.Row.Type == ir.FloatT {
		g.genFloatCompare(a, dest)
		return
	}
	left := g.resolveOperand(a, a.Row.Arg1)
	right := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Movl, left, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Cmpl, right, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(setOpcodeFor(a.Row.Instr), &Operand{Kind: OpRegister, Reg: DL}, nil)
	g.emit(Movzbl, &Operand{Kind: OpRegister, Reg: DL}, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genFloatCompare(a *stackframe.Annotated, dest *Operand) {
	left := g.resolveOperand(a, a.Row.Arg1)
	right := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Flds, right, nil)
	g.emit(Flds, left, nil)
	g.emit(Fcomip, nil, nil)
	g.emit(Fstp, &Operand{Kind: OpRegister, Reg: ST}, nil)
	g.emit(setOpcodeFor(a.Row.Instr), &Operand{Kind: OpRegister, Reg: DL}, nil)
	g.emit(Movzbl, &Operand{Kind: OpRegister, Reg: DL}, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func setOpcodeFor(instr ir.Instr) Opcode {
	switch instr {
	case ir.Equals:
		return Sete
	case ir.NotEquals:
		return Setne
	case ir.Smaller:
		return Setl
	case ir.Greater:
		return Setg
	case ir.SmallerEq:
		return Setle
	case ir.GreaterEq:
		return Setge
	}
	return Sete
}

func (g *funcGen) genLogical(a *stackframe.Annotated) {
	dest := g.operandForRow(a.Row)
	left := g.resolveOperand(a, a.Row.Arg1)
	right := g.resolveOperand(a, a.Row.Arg2)
	g.emit(Movl, left, &Operand{Kind: OpRegister, Reg: EAX})
	if a.Row.Instr == ir.And {
		g.emit(And, right, &Operand{Kind: OpRegister, Reg: EAX})
	} else {
		g.emit(Or, right, &Operand{Kind: OpRegister, Reg: EAX})
	}
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genNot(a *stackframe.Annotated) {
	dest := g.operandForRow(a.Row)
	operand := g.resolveOperand(a, a.Row.Arg1)
	g.emit(Movl, operand, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Xorl, &Operand{Kind: OpLiteral, Literal: 1}, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genNeg(a *stackframe.Annotated) {
	dest := g.operandForRow(a.Row)
	operand := g.resolveOperand(a, a.Row.Arg1)
	if a.Row.Type == ir.FloatT {
		g.emit(Flds, operand, nil)
		g.emit(Fchs, nil, nil)
		g.emit(Fstps, dest, nil)
		return
	}
	g.emit(Movl, operand, &Operand{Kind: OpRegister, Reg: EAX})
	g.emit(Negl, &Operand{Kind: OpRegister, Reg: EAX}, nil)
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genPush(a *stackframe.Annotated) {
	operand := g.resolveOperand(a, a.Row.Arg1)
	g.emit(Pushl, operand, nil)
}

// countPrecedingPushes counts the contiguous PUSH rows immediately before
// a CALL row, to know how many bytes the caller must reclaim afterward
// under the cdecl convention.
func countPrecedingPushes(a *stackframe.Annotated) int {
	n := 0
	for p := a.Prev; p != nil && p.Row.Instr == ir.Push; p = p.Prev {
		n++
	}
	return n
}

func (g *funcGen) genCall(a *stackframe.Annotated) {
	g.emit(Call, &Operand{Kind: OpFunction, Func: a.Row.Arg1.Name}, nil)
	if n := countPrecedingPushes(a); n > 0 {
		g.emit(Addl, &Operand{Kind: OpLiteral, Literal: n * 4}, &Operand{Kind: OpRegister, Reg: ESP})
	}
	if a.Row.Type == ir.Typeless {
		return
	}
	dest := g.operandForRow(a.Row)
	if a.Row.Type == ir.FloatT {
		g.emit(Fstps, dest, nil)
		return
	}
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: EAX}, dest)
}

func (g *funcGen) genReturn(a *stackframe.Annotated) {
	if a.Row.Arg1 != nil {
		val := g.resolveOperand(a, a.Row.Arg1)
		if a.Row.Type == ir.FloatT {
			g.emit(Flds, val, nil)
		} else {
			g.emit(Movl, val, &Operand{Kind: OpRegister, Reg: EAX})
		}
	}
	g.emit(Leave, nil, nil)
	g.emit(Ret, nil, nil)
}
