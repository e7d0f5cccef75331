package x86

import (
	"mcc/internal/ir"
	"mcc/internal/stackframe"
)

// resolveOperand maps an IR argument to its assembly operand, given the
// annotated row it appears on (for stack-position lookups) and the
// function's data-literal table. Array elements with a non-constant index
// are handed to indexedOperand, which emits a register load of the index
// before returning the computed-offset operand.
func (g *funcGen) resolveOperand(a *stackframe.Annotated, arg *ir.Arg) *Operand {
	switch arg.Kind {
	case ir.LitInt:
		return &Operand{Kind: OpLiteral, Literal: int(arg.IntVal)}
	case ir.LitBool:
		v := 0
		if arg.BoolVal {
			v = 1
		}
		return &Operand{Kind: OpLiteral, Literal: v}
	case ir.LitString:
		return &Operand{Kind: OpData, Data: g.data.stringLabel(arg.StringVal)}
	case ir.LitFloat:
		return &Operand{Kind: OpData, Data: g.data.floatLabel(arg.FloatVal)}
	case ir.Ident:
		return &Operand{Kind: OpOffset, Reg: EBP, Offset: stackframe.VarStackLoc(a, arg.Name)}
	case ir.ArrElem:
		if loc := stackframe.ArrayElementStackLoc(a, arg); loc != 0 || isZeroLiteralIndex(arg) {
			return &Operand{Kind: OpOffset, Reg: EBP, Offset: loc}
		}
		return g.indexedOperand(a, arg)
	case ir.RowRef:
		return g.operandForRow(arg.Row)
	default:
		return &Operand{Kind: OpLiteral, Literal: 0}
	}
}

func isZeroLiteralIndex(arg *ir.Arg) bool {
	return arg.Index != nil && arg.Index.Kind == ir.LitInt && arg.Index.IntVal == 0
}

// operandForRow resolves a reference to a previously emitted row's result,
// which always lives at that row's own stack slot.
func (g *funcGen) operandForRow(row *ir.Row) *Operand {
	a, ok := g.byRow[row]
	if !ok {
		return &Operand{Kind: OpLiteral, Literal: 0}
	}
	return &Operand{Kind: OpOffset, Reg: EBP, Offset: a.StackPosition}
}

// indexedOperand loads a runtime array index into %ebx and returns a
// scale-4 computed-offset operand addressing the indexed element; every
// row type here is one dword wide, so scale 4 is always correct.
func (g *funcGen) indexedOperand(a *stackframe.Annotated, arg *ir.Arg) *Operand {
	idx := g.resolveOperand(a, arg.Index)
	g.emit(Movl, idx, &Operand{Kind: OpRegister, Reg: EBX})
	base := stackframe.ArrayBaseStackLoc(a, arg)
	elemSize := stackframe.ArrayBaseSize(a, arg)
	if elemSize == 0 {
		elemSize = 4
	}
	return &Operand{Kind: OpComputedOffset, Base: EBP, Index: EBX, Scale: elemSize, Disp: base}
}

// materialize ensures op is addressable as a source for instructions (like
// idivl) that require a register or memory operand, never an immediate.
func (g *funcGen) materialize(op *Operand, scratch Register) *Operand {
	if op.Kind != OpLiteral {
		return op
	}
	g.emit(Movl, op, &Operand{Kind: OpRegister, Reg: scratch})
	return &Operand{Kind: OpRegister, Reg: scratch}
}
