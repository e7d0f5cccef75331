package printer

import (
	"fmt"
	"strings"

	"mcc/internal/cfg"
	"mcc/internal/ir"
)

// CFGDOT renders chain as a Graphviz graph: one record-shaped node per
// basic block listing its IR rows, edges to Left/Right successors.
func CFGDOT(chain *cfg.Block) string {
	var b strings.Builder
	b.WriteString("digraph cfg {\n")
	b.WriteString("  node [shape=record];\n")

	ids := map[*cfg.Block]string{}
	n := 0
	for blk := chain; blk != nil; blk = blk.Next {
		n++
		id := fmt.Sprintf("bb%d", n)
		ids[blk] = id
		fmt.Fprintf(&b, "  %s [label=\"%s\"];\n", id, blockLabel(blk))
	}
	for blk := chain; blk != nil; blk = blk.Next {
		id := ids[blk]
		if blk.Left != nil {
			fmt.Fprintf(&b, "  %s -> %s;\n", id, ids[blk.Left])
		}
		if blk.Right != nil {
			fmt.Fprintf(&b, "  %s -> %s;\n", id, ids[blk.Right])
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func blockLabel(blk *cfg.Block) string {
	var lines []string
	for r := blk.Leader; ; r = r.Next {
		lines = append(lines, rowLabel(r))
		if r == blk.End {
			break
		}
	}
	return strings.Join(lines, "\\l") + "\\l"
}

func rowLabel(r *ir.Row) string {
	return fmt.Sprintf("%s %s %s", r.Instr, argCell(r.Arg1), argCell(r.Arg2))
}
