package ir

import "mcc/internal/symtab"

// generator is the single generation-local state record spec §4.4 names:
// head row, current tail, a failure flag, a label counter and a
// temporary counter (used only to mint names for materialized float
// literals and string-literal call arguments; row numbering itself happens
// in a separate pass).
type generator struct {
	head         *Row
	current      *Row
	failed       bool
	labelCounter int
	tmpCounter   int
	table        *symtab.Table
	scopes       symtab.ScopeMap
}

func newGenerator(table *symtab.Table, scopes symtab.ScopeMap) *generator {
	return &generator{table: table, scopes: scopes}
}

func (g *generator) emit(r *Row) *Row {
	if g.head == nil {
		g.head = r
	} else {
		g.current.Next = r
		r.Prev = g.current
	}
	g.current = r
	return r
}

func (g *generator) newLabel() int {
	g.labelCounter++
	return g.labelCounter
}

func (g *generator) newTmp() string {
	g.tmpCounter++
	return "$tmp" + itoa(g.tmpCounter)
}

// lastIsReturn reports whether the tail of the sequence emitted so far is
// already a RETURN, used to suppress dead code emitted after an early
// return within the same lowering (spec §4.4 "Return").
func (g *generator) lastIsReturn() bool {
	return g.current != nil && g.current.Instr == Return
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
