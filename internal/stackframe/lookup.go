package stackframe

import "mcc/internal/ir"

// lookupVarLoc finds the stack position already assigned to a variable's
// first occurrence in its function, for reuse by every later re-assignment
// to the same name.
func lookupVarLoc(funcLabel *Annotated, name string) int {
	for a := funcLabel.Next; a != nil && a.Row.Instr != ir.FuncLabel; a = a.Next {
		if a.Row.Instr == ir.Assign && a.Row.Arg1.Kind != ir.ArrElem && a.Row.Arg1.Name == name {
			return a.StackPosition
		}
	}
	return 0
}

// VarStackLoc resolves name to its stack position, searching the function
// enclosing a. Used by codegen to address any bare identifier reference,
// not just assignment targets.
func VarStackLoc(a *Annotated, name string) int {
	return lookupVarLoc(FunctionLabel(a), name)
}

// ArrayBaseSize returns the per-element size of the array named by arg
// (an Ident or ArrElem argument), found by locating its declaring ARRAY
// row (or, for a by-reference array parameter, the POP row that receives
// it) within a's enclosing function.
func ArrayBaseSize(a *Annotated, arg *ir.Arg) int {
	funcLabel := FunctionLabel(a)
	for cur := funcLabel; cur != nil; cur = cur.Next {
		if cur.Row.Instr == ir.Array && cur.Row.Arg1.Name == arg.Name {
			return rowSize(cur.Row)
		}
		if cur.Row.Instr == ir.Assign && cur.Prev != nil && cur.Prev.Row.Instr == ir.Pop &&
			cur.Row.Arg1.Name == arg.Name {
			return rowSize(cur.Row)
		}
	}
	return 0
}

// ArrayBaseStackLoc returns the stack position of the first element of the
// array named by arg.
func ArrayBaseStackLoc(a *Annotated, arg *ir.Arg) int {
	funcLabel := FunctionLabel(a)
	for cur := funcLabel; cur != nil; cur = cur.Next {
		if cur.Row.Instr == ir.Array && cur.Row.Arg1.Name == arg.Name {
			return cur.StackPosition
		}
	}
	return 0
}

// ArrayElementStackLoc resolves the stack position of arg[index] when the
// index is a compile-time constant; a runtime-computed index (anything
// other than an int literal) returns 0, since its address must instead be
// computed at codegen time from the base location and a runtime offset.
func ArrayElementStackLoc(a *Annotated, arg *ir.Arg) int {
	if arg.Index == nil || arg.Index.Kind != ir.LitInt {
		return 0
	}
	funcLabel := FunctionLabel(a)
	for cur := funcLabel; cur != nil; cur = cur.Next {
		if cur.Row.Instr == ir.Array && cur.Row.Arg1.Name == arg.Name {
			return cur.StackPosition + int(arg.Index.IntVal)*rowSize(cur.Row)
		}
	}
	return 0
}
