package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcc/internal/cache"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeTemp: %v", err)
	}
	return path
}

const sampleSrc = `
int add(int a, int b) {
	return a + b;
}
int main() {
	int r;
	r = add(1, 2);
	return r;
}
`

func TestBuildProducesAssemblyAndBuildID(t *testing.T) {
	path := writeTemp(t, "t.src", sampleSrc)
	res, err := Build([]string{path}, &CommonFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.BuildID == "" {
		t.Fatalf("expected a non-empty build ID")
	}
	if !strings.Contains(res.Asm, "call add") {
		t.Fatalf("expected a call to add in the emitted assembly, got:\n%s", res.Asm)
	}
}

func TestBuildConcatenatesMultipleFilesInOrder(t *testing.T) {
	a := writeTemp(t, "a.src", `int add(int a, int b) { return a + b; }`)
	b := writeTemp(t, "b.src", `int main() { int r; r = add(1, 2); return r; }`)
	res, err := Build([]string{a, b}, &CommonFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Asm, "call add") {
		t.Fatalf("expected the second file to resolve add from the first, got:\n%s", res.Asm)
	}
}

func TestBuildReportsParseErrorsWithoutPanicking(t *testing.T) {
	path := writeTemp(t, "bad.src", `int main( { return 0; }`)
	_, err := Build([]string{path}, &CommonFlags{})
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestBuildDebugFlagAddsBuildIDHeader(t *testing.T) {
	path := writeTemp(t, "t.src", sampleSrc)
	res, err := Build([]string{path}, &CommonFlags{Debug: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.Asm, "# build ") {
		t.Fatalf("expected a debug header, got:\n%s", res.Asm)
	}
	if !strings.Contains(res.Asm, "# frame main:") {
		t.Fatalf("expected a per-function frame-size line, got:\n%s", res.Asm)
	}
}

func TestBuildCacheReusesEntryAcrossBuilds(t *testing.T) {
	path := writeTemp(t, "t.src", sampleSrc)
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "cache.db")
	flags := &CommonFlags{Cache: dsn}

	first, err := Build([]string{path}, flags)
	if err != nil {
		t.Fatalf("first Build: %v", err)
	}
	second, err := Build([]string{path}, flags)
	if err != nil {
		t.Fatalf("second Build (expected cache hit): %v", err)
	}
	if second.Asm != first.Asm {
		t.Fatalf("expected a cache hit to return identical assembly")
	}

	c, err := cache.Open(dsn, "")
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	defer c.Close()
	count, _, err := c.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one cache entry after two identical builds, got %d", count)
	}
}

func TestDumpIRFiltersToOneFunction(t *testing.T) {
	path := writeTemp(t, "t.src", sampleSrc)
	out, err := DumpIR([]string{path}, &CommonFlags{Function: "add"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "CALL") {
		t.Fatalf("expected add's table to exclude main's CALL row, got:\n%s", out)
	}
}

func TestDumpSymtabTextAndDOT(t *testing.T) {
	path := writeTemp(t, "t.src", sampleSrc)
	text, err := DumpSymtab([]string{path}, &CommonFlags{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "function add") {
		t.Fatalf("expected add's row, got:\n%s", text)
	}
	dot, err := DumpSymtab([]string{path}, &CommonFlags{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(dot, "digraph symtab {") {
		t.Fatalf("expected a digraph header, got:\n%s", dot)
	}
}
