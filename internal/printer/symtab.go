// Package printer implements the dump formats named in spec.md §6: a
// plain-text indented symbol table, a DOT symbol table (nested HTML
// tables), an AST DOT graph, a fixed-width IR table, and a CFG DOT graph.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"mcc/internal/symtab"
)

// SymtabText renders table as indented plain text, one row per line,
// nested scopes indented two spaces deeper than their anchor.
func SymtabText(table *symtab.Table) string {
	var b strings.Builder
	writeScopeText(&b, table.Top, 0)
	return b.String()
}

func writeScopeText(b *strings.Builder, s *symtab.Scope, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, row := range s.Rows {
		b.WriteString(indent)
		b.WriteString(rowSummary(row))
		b.WriteString("\n")
		if row.Child != nil {
			writeScopeText(b, row.Child, depth+1)
		}
	}
}

func rowSummary(row *symtab.Row) string {
	switch row.Kind {
	case symtab.Function:
		params := make([]string, len(row.ParamTypes))
		for i, t := range row.ParamTypes {
			kind := ""
			if row.ParamKinds[i] == symtab.Array {
				kind = "[]"
			}
			params[i] = t.String() + kind
		}
		return fmt.Sprintf("function %s(%s) -> %s", row.Name, strings.Join(params, ", "), row.Type)
	case symtab.Array:
		return fmt.Sprintf("array %s[%d] %s", row.Name, row.ArraySize, row.Type)
	case symtab.Pseudo:
		return "block"
	default:
		return fmt.Sprintf("variable %s %s", row.Name, row.Type)
	}
}

// SymtabDOT renders table as a Graphviz graph of nested HTML-like-label
// tables, one table per scope, rows listing each declaration; a scope's
// anchor row links to that scope's own table node.
func SymtabDOT(table *symtab.Table) string {
	var b strings.Builder
	b.WriteString("digraph symtab {\n")
	b.WriteString("  node [shape=plaintext];\n")
	ids := &idGen{}
	writeScopeDOT(&b, table.Top, ids, "top")
	b.WriteString("}\n")
	return b.String()
}

type idGen struct{ n int }

func (g *idGen) next() string {
	g.n++
	return "scope" + strconv.Itoa(g.n)
}

func writeScopeDOT(b *strings.Builder, s *symtab.Scope, ids *idGen, nodeID string) {
	fmt.Fprintf(b, "  %s [label=<\n", nodeID)
	b.WriteString("    <table border=\"1\" cellborder=\"0\" cellspacing=\"0\">\n")
	for _, row := range s.Rows {
		fmt.Fprintf(b, "      <tr><td>%s</td></tr>\n", rowSummary(row))
	}
	b.WriteString("    </table>>];\n")

	for _, row := range s.Rows {
		if row.Child == nil {
			continue
		}
		childID := ids.next()
		writeScopeDOT(b, row.Child, ids, childID)
		fmt.Fprintf(b, "  %s -> %s;\n", nodeID, childID)
	}
}
