package printer

import (
	"fmt"
	"strconv"
	"strings"

	"mcc/internal/ir"
)

// IRTable renders head as the fixed-width table of §6: one row per line,
// columns "line no.", "instruction", "arg1", "arg2". function restricts
// the dump to the rows between one FUNC_LABEL and the next.
func IRTable(head *ir.Row, function string) string {
	rows := selectFunction(head, function)

	lineW, instrW, arg1W, arg2W := len("line no."), len("instruction"), len("arg1"), len("arg2")
	type cell struct{ line, instr, a1, a2 string }
	cells := make([]cell, 0, len(rows))
	for _, r := range rows {
		c := cell{
			line:  lineNoCell(r),
			instr: r.Instr.String(),
			a1:    argCell(r.Arg1),
			a2:    argCell(r.Arg2),
		}
		cells = append(cells, c)
		lineW = max(lineW, len(c.line))
		instrW = max(instrW, len(c.instr))
		arg1W = max(arg1W, len(c.a1))
		arg2W = max(arg2W, len(c.a2))
	}

	var b strings.Builder
	writeRow(&b, "line no.", "instruction", "arg1", "arg2", lineW, instrW, arg1W, arg2W)
	for _, c := range cells {
		writeRow(&b, c.line, c.instr, c.a1, c.a2, lineW, instrW, arg1W, arg2W)
	}
	return b.String()
}

func writeRow(b *strings.Builder, line, instr, a1, a2 string, lineW, instrW, arg1W, arg2W int) {
	fmt.Fprintf(b, "| %-*s | %-*s | %-*s | %-*s |\n", lineW, line, instrW, instr, arg1W, a1, arg2W, a2)
}

func selectFunction(head *ir.Row, function string) []*ir.Row {
	var rows []*ir.Row
	in := function == ""
	for r := head; r != nil; r = r.Next {
		if r.Instr == ir.FuncLabel {
			in = function == "" || r.Arg1.Name == function
		}
		if in {
			rows = append(rows, r)
		}
		if r.Instr == ir.FuncLabel && function != "" && !in && len(rows) > 0 {
			break
		}
	}
	return rows
}

func lineNoCell(r *ir.Row) string {
	if r.RowNo == 0 {
		return ""
	}
	return strconv.Itoa(r.RowNo)
}

func argCell(a *ir.Arg) string {
	if a == nil {
		return ""
	}
	switch a.Kind {
	case ir.LitInt:
		return strconv.FormatInt(a.IntVal, 10)
	case ir.LitFloat:
		return strconv.FormatFloat(a.FloatVal, 'f', -1, 64)
	case ir.LitBool:
		return strconv.FormatBool(a.BoolVal)
	case ir.LitString:
		return strconv.Quote(a.StringVal)
	case ir.RowRef:
		return "(" + strconv.Itoa(a.Row.RowNo) + ")"
	case ir.LabelRef:
		return "L" + strconv.Itoa(a.LabelNum)
	case ir.Ident:
		return a.Name
	case ir.ArrElem:
		return a.Name + "[" + argCell(a.Index) + "]"
	case ir.FuncLabelRef:
		return a.Name
	default:
		return ""
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
