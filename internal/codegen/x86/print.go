package x86

import "strings"

// Print renders prog as a complete AT&T-syntax assembly file.
func Print(prog *Program) string {
	var b strings.Builder
	if len(prog.Data) > 0 {
		b.WriteString(".data\n")
		for _, d := range prog.Data {
			printDecl(&b, d)
		}
		b.WriteString("\n")
	}
	b.WriteString(".text\n")
	for _, fn := range prog.Functions {
		printFunction(&b, fn)
	}
	return b.String()
}

func printDecl(b *strings.Builder, d *DataDecl) {
	switch d.Kind {
	case DataString:
		b.WriteString(d.Label)
		b.WriteString(":\n\t.string \"")
		b.WriteString(escapeString(d.Str))
		b.WriteString("\"\n")
	case DataFloat:
		b.WriteString(d.Label)
		b.WriteString(":\n\t.float ")
		b.WriteString(formatFloat(d.Float))
		b.WriteString("\n")
	}
}

func printFunction(b *strings.Builder, fn *Function) {
	if fn.IsMain {
		b.WriteString(".globl ")
		b.WriteString(fn.Label)
		b.WriteString("\n")
	}
	b.WriteString(fn.Label)
	b.WriteString(":\n")
	for _, l := range fn.Lines {
		printLine(b, fn.Label, l)
	}
	b.WriteString("\n")
}

func printLine(b *strings.Builder, funcLabel string, l *Line) {
	if l.Opcode == Label {
		b.WriteString(localLabel(funcLabel, l.Label))
		b.WriteString(":\n")
		return
	}
	if l.Opcode == Je || l.Opcode == Jne || l.Opcode == Jmp {
		b.WriteString("\t")
		b.WriteString(l.Opcode.String())
		b.WriteString(" ")
		b.WriteString(localLabel(funcLabel, l.Label))
		b.WriteString("\n")
		return
	}

	b.WriteString("\t")
	b.WriteString(l.Opcode.String())
	if l.First != nil || l.Second != nil {
		b.WriteString(" ")
	}
	if l.First != nil {
		b.WriteString(printOperand(l.First))
	}
	if l.First != nil && l.Second != nil {
		b.WriteString(", ")
	}
	if l.Second != nil {
		b.WriteString(printOperand(l.Second))
	}
	b.WriteString("\n")
}

func localLabel(funcLabel string, n int) string {
	return ".L" + funcLabel + "_" + itoa(n)
}

func printOperand(op *Operand) string {
	switch op.Kind {
	case OpRegister:
		return op.Reg.String()
	case OpOffset:
		return itoa(op.Offset) + "(" + op.Reg.String() + ")"
	case OpComputedOffset:
		return itoa(op.Disp) + "(" + op.Base.String() + "," + op.Index.String() + "," + itoa(op.Scale) + ")"
	case OpData:
		return op.Data
	case OpLiteral:
		return "$" + itoa(op.Literal)
	case OpFunction:
		return op.Func
	default:
		return ""
	}
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("\\\"")
		case '\\':
			b.WriteString("\\\\")
		case '\n':
			b.WriteString("\\n")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatFloat renders a float64 as a decimal literal without relying on
// strconv, matching the project's hand-rolled-formatting convention
// elsewhere; precision beyond what single-precision storage retains is
// not meaningful here, so a fixed number of fractional digits is enough.
func formatFloat(f float64) string {
	neg := f < 0
	if neg {
		f = -f
	}
	whole := int64(f)
	frac := f - float64(whole)
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(itoa(int(whole)))
	b.WriteString(".")
	for i := 0; i < 6; i++ {
		frac *= 10
		digit := int64(frac)
		b.WriteString(itoa(int(digit)))
		frac -= float64(digit)
	}
	return b.String()
}
