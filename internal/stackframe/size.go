package stackframe

import "mcc/internal/ir"

// rowSize returns the size in bytes of the value a row instruction
// produces, from the row's declared type alone.
func rowSize(r *ir.Row) int {
	switch r.Type {
	case ir.BoolT:
		return SizeBool
	case ir.IntT:
		return SizeInt
	case ir.StringT:
		return SizeString
	case ir.FloatT:
		return SizeFloat
	default:
		return 0
	}
}

// argumentSize infers the size an operand occupies: literals know their own
// size outright; an identifier or array-element reference defers to the
// row that first declared it; a row reference just asks that row.
func argumentSize(arg *ir.Arg, context *ir.Row) int {
	switch arg.Kind {
	case ir.LitString:
		return SizeString
	case ir.LitInt:
		return SizeInt
	case ir.LitFloat:
		return SizeFloat
	case ir.LitBool:
		return SizeBool
	case ir.Ident:
		ref := findFirstOccurrence(arg.Name, context)
		if ref == nil || ref.Instr != ir.Assign {
			return 0
		}
		return argumentSize(ref.Arg2, context)
	case ir.ArrElem:
		ref := findFirstOccurrence(arg.Name, context)
		if ref == nil || ref.Instr != ir.Array {
			return 0
		}
		return rowSize(ref) * int(ref.Arg2.IntVal)
	case ir.RowRef:
		return rowSize(arg.Row)
	default:
		return 0
	}
}

// varSize infers how many bytes an ASSIGN row needs for its destination, by
// inspecting the size of its right-hand side — but only for a variable's
// first assignment in the function; later re-assignments to the same name
// reuse the slot and need no additional space.
func varSize(r *ir.Row) int {
	first := firstLineOfFunction(r)
	if !isFirstAssignmentRow(first, r) {
		return 0
	}
	return argumentSize(r.Arg2, r)
}

// stackFrameSize is the per-instruction stack footprint rule (spec §4.6):
// arithmetic and CALL take the size of their own result type, comparisons
// and logical/NOT results are always bool-sized, ARRAY takes element size
// times length, and control rows (labels, jumps, return, push, pop) take
// none of their own — POP's slot lives on the caller's frame, accounted
// for separately by its stack position rather than its size.
func stackFrameSize(r *ir.Row) int {
	switch r.Instr {
	case ir.Assign:
		return varSize(r)
	case ir.Plus, ir.Divide, ir.Minus, ir.Multiply, ir.Neg:
		return rowSize(r)
	case ir.And, ir.Or, ir.Equals, ir.NotEquals, ir.Greater, ir.GreaterEq,
		ir.Not, ir.Smaller, ir.SmallerEq:
		return SizeBool
	case ir.Call:
		return rowSize(r)
	case ir.Array:
		return rowSize(r) * int(r.Arg2.IntVal)
	default:
		return 0
	}
}

func firstLineOfFunction(r *ir.Row) *ir.Row {
	for r != nil {
		if r.Instr == ir.FuncLabel {
			return r
		}
		r = r.Prev
	}
	return nil
}

// isFirstAssignmentRow reports whether target is the first ASSIGN to its
// destination identifier within its function; array-element targets are
// always false since the backing array is sized at its ARRAY declaration.
func isFirstAssignmentRow(first *ir.Row, target *ir.Row) bool {
	if target.Arg1.Kind == ir.ArrElem {
		return false
	}
	name := target.Arg1.Name
	for r := first; r != target; r = r.Next {
		if r.Instr == ir.Assign && r.Arg1.Kind != ir.ArrElem && r.Arg1.Name == name {
			return false
		}
	}
	return true
}

// findFirstOccurrence finds the row that first declares identifier within
// the function containing context: its first ASSIGN (scalar) or ARRAY row.
func findFirstOccurrence(identifier string, context *ir.Row) *ir.Row {
	r := firstLineOfFunction(context)
	if r == nil {
		return nil
	}
	for r = r.Next; r != nil && r.Instr != ir.FuncLabel; r = r.Next {
		if (r.Instr == ir.Assign || r.Instr == ir.Array) && r.Arg1.Name == identifier {
			return r
		}
	}
	return nil
}
