// Package cfg builds the control-flow graph described in spec §4.5 from a
// linear IR sequence: basic blocks linked into an emission-order chain, each
// additionally carrying up to two successor edges.
package cfg

import "mcc/internal/ir"

// Block is one basic block: a leader row and the last row still inside the
// block, plus its successor edges. Left is the fallthrough/taken-condition
// edge, Right is the jump-target/not-taken edge; a RETURN block has both
// nil. Next threads every block built from the IR into a single chain in
// emission order, independent of the Left/Right graph structure, so the
// whole program can be visited exactly once regardless of loops.
type Block struct {
	Leader *ir.Row
	End    *ir.Row

	Left  *Block
	Right *Block
	Next  *Block
}

// isLeader reports whether a row starting with instruction current,
// immediately following a row with instruction previous, starts a new
// basic block (spec §4.5's four leader rules).
func isLeader(current, previous ir.Instr) bool {
	switch current {
	case ir.Label, ir.FuncLabel:
		return true
	}
	switch previous {
	case ir.Jump, ir.JumpFalse, ir.Return:
		return true
	}
	return false
}

// Generate builds the CFG for the whole IR sequence: every function's
// blocks are chained together and cross-linked exactly as the original
// per-function graphs would be, mirroring the teacher's "build once over
// the full IR, slice by function afterwards" approach.
func Generate(head *ir.Row) *Block {
	if head == nil {
		return nil
	}
	chain := buildChain(head)
	for b := chain; b != nil; b = b.Next {
		setChildren(b, chain)
	}
	return chain
}

// buildChain partitions the IR into blocks in emission order, without
// mutating the underlying IR rows or their Prev/Next links.
func buildChain(head *ir.Row) *Block {
	first := &Block{Leader: head}
	tail := first
	prevInstr := head.Instr
	for r := head.Next; r != nil; r = r.Next {
		if isLeader(r.Instr, prevInstr) {
			b := &Block{Leader: r}
			tail.Next = b
			tail = b
		}
		prevInstr = r.Instr
	}
	for b := first; b != nil; b = b.Next {
		b.End = lastRowOf(b)
	}
	return first
}

// lastRowOf scans forward from b's leader until the row preceding the next
// leader, or the end of the IR.
func lastRowOf(b *Block) *ir.Row {
	last := b.Leader
	prevInstr := last.Instr
	for r := last.Next; r != nil; r = r.Next {
		if isLeader(r.Instr, prevInstr) {
			break
		}
		last = r
		prevInstr = r.Instr
	}
	return last
}

func setChildren(b *Block, first *Block) {
	switch b.End.Instr {
	case ir.Jump:
		b.Left = nil
		b.Right = findLabelTarget(first, b.End.Arg1.LabelNum)
	case ir.JumpFalse:
		b.Left = b.Next
		b.Right = findLabelTarget(first, b.End.Arg2.LabelNum)
	case ir.Return:
		b.Left = nil
		b.Right = nil
	default:
		b.Left = nil
		b.Right = b.Next
	}
}

func findLabelTarget(first *Block, label int) *Block {
	for b := first; b != nil; b = b.Next {
		if b.Leader.Instr == ir.Label && b.Leader.Arg1.LabelNum == label {
			return b
		}
	}
	return nil
}

// LimitToFunction restricts chain to the blocks belonging to the single
// function named name: from that function's FUNC_LABEL block up to (but
// excluding) the next FUNC_LABEL block. Returns nil if no such function
// exists in chain. Cuts the chain's Next link at the boundary in place,
// mirroring the original's destructive restrict-then-discard-the-rest
// behavior (there is no remainder to free in Go, so the cut is all that's
// left of it).
func LimitToFunction(name string, chain *Block) *Block {
	for b := chain; b != nil; b = b.Next {
		if isFuncLabelFor(b, name) {
			cutBeforeNextFunction(b)
			return b
		}
	}
	return nil
}

func isFuncLabelFor(b *Block, name string) bool {
	return b.Leader.Instr == ir.FuncLabel && b.Leader.Arg1.Name == name
}

func cutBeforeNextFunction(start *Block) {
	last := start
	for last.Next != nil && last.Next.Leader.Instr != ir.FuncLabel {
		last = last.Next
	}
	last.Next = nil
}
