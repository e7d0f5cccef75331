package x86

import (
	"strings"
	"testing"

	"mcc/internal/ast"
	"mcc/internal/ir"
	"mcc/internal/parser"
	"mcc/internal/semantic"
	"mcc/internal/stackframe"
)

func compileToAsm(t *testing.T, src string) string {
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
	head := ir.Generate(prog, table)
	annotated := stackframe.Annotate(head)
	asm := Generate(annotated)
	return Print(asm)
}

func TestMinimalMainEmitsPrologueAndEpilogue(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			return 0;
		}
	`)
	if !strings.Contains(out, "main:") {
		t.Fatalf("expected a main label, got:\n%s", out)
	}
	if !strings.Contains(out, "pushl %ebp") || !strings.Contains(out, "movl %esp, %ebp") {
		t.Fatalf("expected a standard prologue, got:\n%s", out)
	}
	if !strings.Contains(out, "leave") || !strings.Contains(out, "ret") {
		t.Fatalf("expected a standard epilogue, got:\n%s", out)
	}
}

func TestArithmeticLowersToIntInstructions(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			int x;
			x = 1 + 2 * 3;
			return x;
		}
	`)
	if !strings.Contains(out, "addl") || !strings.Contains(out, "imull") {
		t.Fatalf("expected addl and imull in output, got:\n%s", out)
	}
}

func TestFunctionCallEmitsCallAndStackCleanup(t *testing.T) {
	out := compileToAsm(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	if !strings.Contains(out, "call add") {
		t.Fatalf("expected a call to add, got:\n%s", out)
	}
	if !strings.Contains(out, "addl $8, %esp") {
		t.Fatalf("expected the caller to reclaim 8 bytes of pushed arguments, got:\n%s", out)
	}
}

func TestFunctionCallWithMaterializedArgKeepsPushesContiguous(t *testing.T) {
	out := compileToAsm(t, `
		int scale(int a, int b, float f, float g) {
			return a + b;
		}
		int main() {
			int r;
			r = scale(1, 2, 0.5, 0.1);
			return r;
		}
	`)
	if !strings.Contains(out, "call scale") {
		t.Fatalf("expected a call to scale, got:\n%s", out)
	}
	if !strings.Contains(out, "addl $16, %esp") {
		t.Fatalf("expected the caller to reclaim all 16 bytes of pushed arguments, got:\n%s", out)
	}
}

func TestOnlyMainFunctionGetsGloblDirective(t *testing.T) {
	out := compileToAsm(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			int r;
			r = add(1, 2);
			return r;
		}
	`)
	if !strings.Contains(out, ".globl main") {
		t.Fatalf("expected .globl main, got:\n%s", out)
	}
	if strings.Contains(out, ".globl add") {
		t.Fatalf("helper function add must not be externally visible, got:\n%s", out)
	}
}

func TestStringLiteralIsLiftedToDataSection(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			print("hello");
			return 0;
		}
	`)
	if !strings.Contains(out, ".data") || !strings.Contains(out, ".string \"hello\"") {
		t.Fatalf("expected a data-section string declaration, got:\n%s", out)
	}
}

func TestFloatArithmeticUsesX87(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			float f;
			f = 1.5 + 2.5;
			return 0;
		}
	`)
	if !strings.Contains(out, "flds") || !strings.Contains(out, "faddp") {
		t.Fatalf("expected flds/faddp in float arithmetic output, got:\n%s", out)
	}
}

func TestComparisonEmitsSetInstruction(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			bool b;
			b = 1 < 2;
			return 0;
		}
	`)
	if !strings.Contains(out, "setl") {
		t.Fatalf("expected a setl instruction, got:\n%s", out)
	}
}

func TestArrayIndexingWithConstantIndex(t *testing.T) {
	out := compileToAsm(t, `
		int main() {
			int[5] arr;
			arr[2] = 7;
			return 0;
		}
	`)
	if !strings.Contains(out, "(%ebp)") {
		t.Fatalf("expected an %%ebp-relative operand for the array element, got:\n%s", out)
	}
}
