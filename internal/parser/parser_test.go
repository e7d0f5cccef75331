package parser

import "testing"

func assertParseOK(t *testing.T, src, description string) Result {
	t.Helper()
	res := ParseFile("t.src", src)
	if res.Status != StatusOK {
		t.Fatalf("%s: expected parse to succeed, got errors: %v", description, res.Errs)
	}
	return res
}

func assertParseFails(t *testing.T, src, description string) {
	t.Helper()
	res := ParseFile("t.src", src)
	if res.Status == StatusOK {
		t.Fatalf("%s: expected parse to fail, but it succeeded", description)
	}
}

func TestMinimalMain(t *testing.T) {
	res := assertParseOK(t, "int main(){return 42;}", "minimal main")
	if len(res.Program.Functions) != 1 || res.Program.Functions[0].Name != "main" {
		t.Fatalf("expected a single main function, got %+v", res.Program.Functions)
	}
}

func TestDeclarationsAndAssignment(t *testing.T) {
	assertParseOK(t, `int main(){int a; a = 1; return a;}`, "assignment and use")
}

func TestArrayDeclarationAndIndexing(t *testing.T) {
	res := assertParseOK(t, `int main(){int[42] a; a[0] = 9; a[2] = 9; a[41] = 9; return 0;}`, "array decl")
	body := res.Program.Functions[0].Body
	if len(body.Stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(body.Stmts))
	}
}

func TestWhileLoop(t *testing.T) {
	assertParseOK(t, `int main(){int a; a=1; int b; b=1; while(a<10){a=a+1; b=b-1;} return b;}`, "while countdown")
}

func TestNestedBlockShadowing(t *testing.T) {
	assertParseOK(t, `int main(){ int a; a=1; {int a; a=2;} return a;}`, "shadow rename source")
}

func TestIfElse(t *testing.T) {
	assertParseOK(t, `int f(){ if (true) { return 1; } else { return 0; } }`, "if/else both returning")
}

func TestBareIfNoElse(t *testing.T) {
	assertParseOK(t, `void f(){ if (true) { print_nl(); } }`, "bare if")
}

func TestFunctionCallArguments(t *testing.T) {
	assertParseOK(t, `void f(){ print_int(1+2*3); }`, "call with expression arg")
}

func TestFloatAndStringLiterals(t *testing.T) {
	assertParseOK(t, `void f(){ float x; x = 1.5; print("hi"); }`, "float and string literals")
}

func TestMultipleFunctions(t *testing.T) {
	res := assertParseOK(t, `int add(int a, int b){ return a+b; } int main(){ return add(1,2); }`, "two functions")
	if len(res.Program.Functions) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(res.Program.Functions))
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing semicolon", `int main(){ int a a = 1; return a; }`},
		{"unterminated string", `void f(){ print("hi); }`},
		{"missing closing paren", `int main({ return 0; }`},
		{"bad return type", `banana main(){ return 0; }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertParseFails(t, tt.src, tt.name)
		})
	}
}
