package ir

import (
	"testing"

	"mcc/internal/ast"
	"mcc/internal/parser"
	"mcc/internal/semantic"
)

func generate(t *testing.T, src string) *Row {
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
	return Generate(prog, table)
}

func instrSeq(head *Row) []Instr {
	var seq []Instr
	for r := head; r != nil; r = r.Next {
		seq = append(seq, r.Instr)
	}
	return seq
}

func containsInstr(seq []Instr, want Instr) bool {
	for _, got := range seq {
		if got == want {
			return true
		}
	}
	return false
}

func TestSimpleAssignmentLowersToAssign(t *testing.T) {
	head := generate(t, `
		int main() {
			int x;
			x = 1 + 2;
			return 0;
		}
	`)
	seq := instrSeq(head)
	if !containsInstr(seq, Plus) {
		t.Fatalf("expected a PLUS row, got %v", seq)
	}
	if !containsInstr(seq, Assign) {
		t.Fatalf("expected an ASSIGN row, got %v", seq)
	}
}

func TestIfElseBothBranchesReturnEmitsNoTrailingJump(t *testing.T) {
	head := generate(t, `
		int main() {
			if (true) {
				return 1;
			} else {
				return 2;
			}
		}
	`)
	seq := instrSeq(head)
	jumps := 0
	for _, i := range seq {
		if i == Jump {
			jumps++
		}
	}
	if jumps != 0 {
		t.Fatalf("expected no unconditional JUMP when both branches return, got %v", seq)
	}
	if !containsInstr(seq, JumpFalse) {
		t.Fatalf("expected a JUMPFALSE row, got %v", seq)
	}
}

func TestIfElseOneBranchFallsThroughEmitsTrailingLabel(t *testing.T) {
	head := generate(t, `
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
	seq := instrSeq(head)
	labels := 0
	for _, i := range seq {
		if i == Label {
			labels++
		}
	}
	if labels != 2 {
		t.Fatalf("expected two LABEL rows (else-branch entry and join point), got %d: %v", labels, seq)
	}
}

func TestWhileLoopLowersToLabelsAndJump(t *testing.T) {
	head := generate(t, `
		int main() {
			int i;
			i = 0;
			while (i < 10) {
				i = i + 1;
			}
			return 0;
		}
	`)
	seq := instrSeq(head)
	if !containsInstr(seq, Smaller) {
		t.Fatalf("expected a SMALLER row for the condition, got %v", seq)
	}
	if !containsInstr(seq, JumpFalse) || !containsInstr(seq, Jump) {
		t.Fatalf("expected both JUMPFALSE and JUMP rows, got %v", seq)
	}
}

func TestArrayDeclarationEmitsArrayRow(t *testing.T) {
	head := generate(t, `
		int main() {
			int[10] arr;
			arr[0] = 5;
			return 0;
		}
	`)
	seq := instrSeq(head)
	if !containsInstr(seq, Array) {
		t.Fatalf("expected an ARRAY row, got %v", seq)
	}
}

func TestFunctionCallPushesArgumentsAndCalls(t *testing.T) {
	head := generate(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	seq := instrSeq(head)
	pushes := 0
	for _, i := range seq {
		if i == Push {
			pushes++
		}
	}
	if pushes != 2 {
		t.Fatalf("expected two PUSH rows for a two-argument call, got %d: %v", pushes, seq)
	}
	if !containsInstr(seq, Call) {
		t.Fatalf("expected a CALL row, got %v", seq)
	}
}

func TestFirstArgumentPushIsEmittedLastAdjacentToCall(t *testing.T) {
	head := generate(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	var pushRows []*Row
	for r := head; r != nil; r = r.Next {
		if r.Instr == Push {
			pushRows = append(pushRows, r)
		}
		if r.Instr == Call {
			break
		}
	}
	if len(pushRows) != 2 {
		t.Fatalf("expected exactly two PUSH rows before CALL, got %d", len(pushRows))
	}
	// The first source argument (1) must be pushed last, directly before CALL.
	last := pushRows[len(pushRows)-1]
	if last.Arg1.Kind != LitInt || last.Arg1.IntVal != 1 {
		t.Fatalf("expected the last push before CALL to be the first argument (1), got %+v", last.Arg1)
	}
}

func TestFloatLiteralIsMaterializedToTemp(t *testing.T) {
	head := generate(t, `
		int main() {
			float f;
			f = 1.5;
			return 0;
		}
	`)
	seq := instrSeq(head)
	assigns := 0
	for _, i := range seq {
		if i == Assign {
			assigns++
		}
	}
	// one ASSIGN to materialize the float literal into $tmp1, one to store it into f
	if assigns < 2 {
		t.Fatalf("expected at least two ASSIGN rows for a materialized float literal, got %d: %v", assigns, seq)
	}
}

func TestStringLiteralCallArgumentIsMaterialized(t *testing.T) {
	head := generate(t, `
		void greet(string s) {
			return;
		}
		int main() {
			greet("hi");
			return 0;
		}
	`)
	var sawIdentPush bool
	for r := head; r != nil; r = r.Next {
		if r.Instr == Push && r.Arg1.Kind == Ident {
			sawIdentPush = true
		}
	}
	if !sawIdentPush {
		t.Fatalf("expected the string literal argument to be pushed as a materialized identifier")
	}
}

func TestRowNumberingSkipsNonProducingRows(t *testing.T) {
	head := generate(t, `
		int main() {
			int x;
			x = 1 + 2;
			return x;
		}
	`)
	for r := head; r != nil; r = r.Next {
		if r.Instr == Assign && r.RowNo != 0 {
			t.Fatalf("ASSIGN rows must not receive a row number, got %d", r.RowNo)
		}
		if r.Instr == Plus && r.RowNo == 0 {
			t.Fatalf("PLUS rows must receive a row number")
		}
	}
}
