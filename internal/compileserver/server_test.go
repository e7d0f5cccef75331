package compileserver

import (
	"strings"
	"testing"
)

func TestCompileOneReturnsAssemblyForValidSource(t *testing.T) {
	resp := compileOne("req-1", Request{Source: `
		int add(int a, int b) { return a + b; }
		int main() { int r; r = add(1, 2); return r; }
	`})
	if resp.RequestID != "req-1" {
		t.Fatalf("got request id %q, want %q", resp.RequestID, "req-1")
	}
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if !strings.Contains(resp.Asm, "call add") {
		t.Fatalf("expected a call to add in the emitted assembly, got:\n%s", resp.Asm)
	}
}

func TestCompileOneReportsParseErrors(t *testing.T) {
	resp := compileOne("req-2", Request{Source: `int main( { return 0; }`})
	if resp.Error == "" {
		t.Fatalf("expected a parse error to be reported")
	}
	if resp.Asm != "" {
		t.Fatalf("expected no assembly on a failed compile, got:\n%s", resp.Asm)
	}
}

func TestCompileOneHonorsDebugFlag(t *testing.T) {
	resp := compileOne("req-3", Request{
		Source: `
			int add(int a, int b) { return a + b; }
			int main() { int r; r = add(1, 2); return r; }
		`,
		Debug: true,
	})
	if resp.Error != "" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if !strings.HasPrefix(resp.Asm, "# build ") {
		t.Fatalf("expected a debug header, got:\n%s", resp.Asm)
	}
}

func TestWriteAndRemoveTempSourceRoundTrips(t *testing.T) {
	path, err := writeTempSource("int main() { return 0; }")
	if err != nil {
		t.Fatalf("writeTempSource: %v", err)
	}
	if path == "" {
		t.Fatalf("expected a non-empty temp path")
	}
	removeTempSource(path)
}
