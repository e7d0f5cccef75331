package cfg

import (
	"testing"

	"mcc/internal/ast"
	"mcc/internal/ir"
	"mcc/internal/parser"
	"mcc/internal/semantic"
)

func generateIR(t *testing.T, src string) *ir.Row {
	t.Helper()
	res := parser.ParseFile("t.src", src)
	if res.Status != parser.StatusOK {
		t.Fatalf("unexpected parse errors: %v", res.Errs)
	}
	prog := ast.Canonicalize(res.Program)
	table, err := semantic.RunAll(prog)
	if err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	ast.RemoveBuiltins(prog)
	return ir.Generate(prog, table)
}

func countBlocks(head *Block) int {
	n := 0
	for b := head; b != nil; b = b.Next {
		n++
	}
	return n
}

func TestStraightLineProgramIsOneBlock(t *testing.T) {
	head := generateIR(t, `
		int main() {
			int x;
			x = 1 + 2;
			return x;
		}
	`)
	g := Generate(head)
	if countBlocks(g) != 1 {
		t.Fatalf("expected a single block for a straight-line function, got %d", countBlocks(g))
	}
	if g.Left != nil || g.Right != nil {
		t.Fatalf("expected a RETURN-terminated block to have no successors")
	}
}

func TestIfElseProducesBranchingBlocks(t *testing.T) {
	head := generateIR(t, `
		int main() {
			int x;
			if (true) {
				x = 1;
			} else {
				x = 2;
			}
			return x;
		}
	`)
	g := Generate(head)
	if countBlocks(g) < 4 {
		t.Fatalf("expected at least 4 blocks (entry, then, else, join), got %d", countBlocks(g))
	}
	// entry block ends in JUMPFALSE: left is fallthrough, right is the jump target.
	if g.Left == nil || g.Right == nil {
		t.Fatalf("expected the entry block to have both successor edges set")
	}
}

func TestWhileLoopProducesBackEdge(t *testing.T) {
	head := generateIR(t, `
		int main() {
			int i;
			i = 0;
			while (i < 10) {
				i = i + 1;
			}
			return 0;
		}
	`)
	g := Generate(head)
	seen := map[*Block]bool{}
	var foundBackEdge bool
	for b := g; b != nil; b = b.Next {
		seen[b] = true
		if b.Right != nil && seen[b.Right] {
			foundBackEdge = true
		}
	}
	if !foundBackEdge {
		t.Fatalf("expected the loop condition block to be revisited via a back edge")
	}
}

func TestLimitToFunctionIsolatesOneFunction(t *testing.T) {
	head := generateIR(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	full := Generate(head)
	mainOnly := LimitToFunction("main", full)
	if mainOnly == nil {
		t.Fatalf("expected to find main's blocks")
	}
	for b := mainOnly; b != nil; b = b.Next {
		if b.Leader.Instr == ir.FuncLabel && b.Leader.Arg1.Name != "main" && b != mainOnly {
			t.Fatalf("expected main's block slice to stop before the next function")
		}
	}

	full = Generate(head)
	addOnly := LimitToFunction("add", full)
	if addOnly == nil {
		t.Fatalf("expected to find add's blocks")
	}
	for b := addOnly; b != nil; b = b.Next {
		if b.Leader.Instr == ir.FuncLabel && b.Leader.Arg1.Name == "main" {
			t.Fatalf("expected add's block slice to be cut before main's FUNC_LABEL")
		}
	}
}
