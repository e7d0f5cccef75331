package x86

import (
	"mcc/internal/ir"
	"mcc/internal/stackframe"
)

// funcGen holds the per-function generation state: the shared data-literal
// table, a row lookup for resolving RowRef operands, and the line buffer
// being built.
type funcGen struct {
	data  *dataCollector
	byRow map[*ir.Row]*stackframe.Annotated
	lines []*Line
}

func (g *funcGen) emit(op Opcode, first, second *Operand) {
	g.lines = append(g.lines, &Line{Opcode: op, First: first, Second: second})
}

func (g *funcGen) emitLabel(n int) {
	g.lines = append(g.lines, &Line{Opcode: Label, Label: n})
}

// Generate lowers an entire program's annotated IR into assembly: one
// function per FUNC_LABEL block plus a shared data section collecting
// every string and float literal touched anywhere in the program.
func Generate(head *stackframe.Annotated) *Program {
	data := newDataCollector()
	data.scanLiterals(head)

	prog := &Program{Data: data.decls}
	for fn := head; fn != nil; {
		next := nextFuncLabel(fn)
		prog.Functions = append(prog.Functions, generateFunction(fn, next, data))
		fn = next
	}
	return prog
}

func nextFuncLabel(fn *stackframe.Annotated) *stackframe.Annotated {
	for a := fn.Next; a != nil; a = a.Next {
		if a.Row.Instr == ir.FuncLabel {
			return a
		}
	}
	return nil
}

// generateFunction lowers one function's body, from its FUNC_LABEL row
// fn up to (but excluding) the next one's (end), into a prologue, body
// and epilogue.
func generateFunction(fn, end *stackframe.Annotated, data *dataCollector) *Function {
	g := &funcGen{data: data, byRow: map[*ir.Row]*stackframe.Annotated{}}
	for a := fn; a != end; a = a.Next {
		g.byRow[a.Row] = a
	}

	g.emit(Pushl, &Operand{Kind: OpRegister, Reg: EBP}, nil)
	g.emit(Movl, &Operand{Kind: OpRegister, Reg: ESP}, &Operand{Kind: OpRegister, Reg: EBP})
	if fn.StackSize > 0 {
		g.emit(Subl, &Operand{Kind: OpLiteral, Literal: fn.StackSize}, &Operand{Kind: OpRegister, Reg: ESP})
	}

	for a := fn.Next; a != end; a = a.Next {
		g.genRow(a)
	}

	label := fn.Row.Arg1.Name
	return &Function{Label: label, IsMain: label == "main", Lines: g.lines}
}
