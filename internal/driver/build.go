package driver

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"mcc/internal/ast"
	"mcc/internal/cache"
	"mcc/internal/cfg"
	"mcc/internal/codegen/x86"
	"mcc/internal/ir"
	"mcc/internal/llvmdump"
	"mcc/internal/printer"
	"mcc/internal/stackframe"
)

// Result is what a successful Build produces: the emitted assembly text
// plus the build ID stamped on it for --debug output and cache/daemon
// request correlation.
type Result struct {
	BuildID string
	Asm     string
}

// Build runs the complete pipeline (§5): parse, canonicalize, semantic
// checks, IR generation, stack annotation, x86 emission. No CFG is built
// here; only the cfg sub-driver constructs one, and the assembler reads the
// annotated IR directly.
func Build(paths []string, flags *CommonFlags) (*Result, error) {
	var bc *cache.Cache
	var key string
	if flags.Cache != "" {
		c, err := cache.Open(flags.Cache, "mcc-cache.db")
		if err != nil {
			return nil, err
		}
		defer c.Close()
		bc = c

		raw, err := concatSources(paths)
		if err != nil {
			return nil, err
		}
		key = cache.Key(raw, cacheFlagSummary(flags))
		if asm, ok, err := bc.Get(key); err == nil && ok {
			return &Result{BuildID: uuid.NewString(), Asm: asm}, nil
		}
	}

	prog, table, err := frontend(paths)
	if err != nil {
		return nil, err
	}
	ast.RemoveBuiltins(prog)

	head := ir.Generate(prog, table)
	ir.NumberRows(head)
	annotated := stackframe.Annotate(head)
	asmProg := x86.Generate(annotated)
	asm := x86.Print(asmProg)

	res := &Result{BuildID: uuid.NewString(), Asm: asm}
	if bc != nil {
		if err := bc.Put(key, asm); err != nil {
			return nil, err
		}
	}
	if flags.Debug {
		res.Asm = debugHeader(res.BuildID, head, annotated) + res.Asm
	}
	return res, nil
}

// concatSources reads every input file's raw text in argument order, for
// hashing into a cache key; it deliberately reads independently of
// parseAll's concurrent read/parse pipeline since a cache lookup must
// happen before any parsing is worth doing.
func concatSources(paths []string) (string, error) {
	var b strings.Builder
	for _, p := range paths {
		s, err := readSource(p)
		if err != nil {
			return "", err
		}
		b.WriteString(s.name)
		b.WriteString("\x00")
		b.WriteString(s.text)
		b.WriteString("\x00")
	}
	return b.String(), nil
}

func cacheFlagSummary(flags *CommonFlags) string {
	return fmt.Sprintf("function=%s,debug=%t", flags.Function, flags.Debug)
}

// debugHeader renders the --debug preamble: build ID and per-function
// frame size in human-readable bytes, ahead of the emitted assembly.
func debugHeader(buildID string, head *ir.Row, annotated *stackframe.Annotated) string {
	var b []byte
	b = append(b, fmt.Sprintf("# build %s\n", buildID)...)
	for a := annotated; a != nil; a = a.Next {
		if a.Row.Instr == ir.FuncLabel {
			b = append(b, fmt.Sprintf("# frame %s: %s\n", a.Row.Arg1.Name, humanize.Bytes(uint64(a.StackSize)))...)
		}
	}
	return string(b)
}

// DumpAST renders the parsed-and-canonicalized program as a DOT graph.
func DumpAST(paths []string, flags *CommonFlags) (string, error) {
	prog, _, err := frontend(paths)
	if err != nil {
		return "", err
	}
	return printer.ASTDOT(prog, flags.Function), nil
}

// DumpSymtab renders the symbol table as indented text or DOT.
func DumpSymtab(paths []string, flags *CommonFlags, dot bool) (string, error) {
	_, table, err := frontend(paths)
	if err != nil {
		return "", err
	}
	if dot {
		return printer.SymtabDOT(table), nil
	}
	return printer.SymtabText(table), nil
}

// DumpIR renders the generated IR as the fixed-width table.
func DumpIR(paths []string, flags *CommonFlags) (string, error) {
	prog, table, err := frontend(paths)
	if err != nil {
		return "", err
	}
	ast.RemoveBuiltins(prog)
	head := ir.Generate(prog, table)
	ir.NumberRows(head)
	return printer.IRTable(head, flags.Function), nil
}

// DumpLLVM renders the generated IR as LLVM textual IR, the `mcc llvm`
// secondary developer view; it never takes the place of DumpIR/Build's own
// x86 backend.
func DumpLLVM(paths []string, flags *CommonFlags) (string, error) {
	prog, table, err := frontend(paths)
	if err != nil {
		return "", err
	}
	ast.RemoveBuiltins(prog)
	head := ir.Generate(prog, table)
	ir.NumberRows(head)
	return llvmdump.Dump(head), nil
}

// DumpCFG renders the control-flow graph as DOT, optionally limited to one
// function.
func DumpCFG(paths []string, flags *CommonFlags) (string, error) {
	prog, table, err := frontend(paths)
	if err != nil {
		return "", err
	}
	ast.RemoveBuiltins(prog)
	head := ir.Generate(prog, table)
	ir.NumberRows(head)
	chain := cfg.Generate(head)
	if flags.Function != "" {
		chain = cfg.LimitToFunction(flags.Function, chain)
	}
	return printer.CFGDOT(chain), nil
}
