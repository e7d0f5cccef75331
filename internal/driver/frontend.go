package driver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mcc/internal/ast"
	"mcc/internal/diag"
	"mcc/internal/parser"
	"mcc/internal/semantic"
	"mcc/internal/symtab"
)

// parseAll parses every input independently — one goroutine per file via
// errgroup, per spec §6 ("when multiple files are given, they are parsed
// independently") — then concatenates their function lists in argument
// order to form one program. Concurrency stops at this boundary; every
// later stage is single-threaded (spec §5).
func parseAll(paths []string) (*ast.Program, error) {
	srcs := make([]source, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			s, err := readSource(p)
			if err != nil {
				return err
			}
			srcs[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]parser.Result, len(srcs))
	g2, _ := errgroup.WithContext(context.Background())
	for i, s := range srcs {
		i, s := i, s
		g2.Go(func() error {
			results[i] = parser.ParseFile(s.name, s.text)
			return nil
		})
	}
	_ = g2.Wait() // parse errors are collected per-file below, not short-circuited

	var diags diag.List
	prog := &ast.Program{}
	for _, r := range results {
		if r.Status != parser.StatusOK {
			for _, e := range r.Errs {
				diags = append(diags, diag.New(diag.Parser, ast.SourceLocation{}, e.Error()))
			}
			continue
		}
		prog.Functions = append(prog.Functions, r.Program.Functions...)
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return prog, nil
}

// frontend runs every stage through semantic analysis and returns the
// canonicalized program plus its symbol table. The built-in stubs are still
// in the program's function list; callers that generate IR remove them with
// ast.RemoveBuiltins first.
func frontend(paths []string) (*ast.Program, *symtab.Table, error) {
	prog, err := parseAll(paths)
	if err != nil {
		return nil, nil, err
	}
	prog = ast.Canonicalize(prog)
	table, err := semantic.RunAll(prog)
	if err != nil {
		return nil, nil, diag.New(diag.Semantic, ast.SourceLocation{}, err.Error())
	}
	return prog, table, nil
}
