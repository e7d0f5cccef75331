package x86

import (
	"mcc/internal/ir"
	"mcc/internal/stackframe"
)

// dataCollector lifts every string and float literal touched during
// generation into a uniquely labeled data-section entry, keyed by value so
// identical literals share one declaration.
type dataCollector struct {
	decls   []*DataDecl
	strings map[string]string
	floats  map[float64]string
	counter int
}

func newDataCollector() *dataCollector {
	return &dataCollector{strings: map[string]string{}, floats: map[float64]string{}}
}

func (d *dataCollector) stringLabel(s string) string {
	if label, ok := d.strings[s]; ok {
		return label
	}
	label := d.newLabel()
	d.strings[s] = label
	d.decls = append(d.decls, &DataDecl{Label: label, Kind: DataString, Str: s})
	return label
}

func (d *dataCollector) floatLabel(f float64) string {
	if label, ok := d.floats[f]; ok {
		return label
	}
	label := d.newLabel()
	d.floats[f] = label
	d.decls = append(d.decls, &DataDecl{Label: label, Kind: DataFloat, Float: f})
	return label
}

func (d *dataCollector) newLabel() string {
	d.counter++
	return ".LC" + itoa(d.counter)
}

// scanLiterals walks the annotated IR once up front so every literal has a
// stable label before any function body is lowered, so forward references
// within the same function never need a second pass.
func (d *dataCollector) scanLiterals(head *stackframe.Annotated) {
	for a := head; a != nil; a = a.Next {
		d.scanArg(a.Row.Arg1)
		d.scanArg(a.Row.Arg2)
	}
}

func (d *dataCollector) scanArg(arg *ir.Arg) {
	if arg == nil {
		return
	}
	switch arg.Kind {
	case ir.LitString:
		d.stringLabel(arg.StringVal)
	case ir.LitFloat:
		d.floatLabel(arg.FloatVal)
	}
	if arg.Index != nil {
		d.scanArg(arg.Index)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
