package printer

import (
	"github.com/kr/pretty"

	"mcc/internal/ast"
)

// DebugSummary renders prog's function signatures (name, params, return
// type) via kr/pretty, for the driver's --debug flag: a quick structural
// sanity check of what was parsed, without the verbosity of a full AST dump.
func DebugSummary(prog *ast.Program) string {
	type paramSig struct {
		Name string
		Type ast.Type
	}
	type funcSig struct {
		Name       string
		Params     []paramSig
		ReturnType ast.Type
	}

	sigs := make([]funcSig, 0, len(prog.Functions))
	for _, fn := range prog.Functions {
		params := make([]paramSig, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = paramSig{Name: p.Name(), Type: paramType(p)}
		}
		sigs = append(sigs, funcSig{Name: fn.Name, Params: params, ReturnType: fn.ReturnType})
	}
	return pretty.Sprint(sigs)
}

func paramType(p *ast.Param) ast.Type {
	switch d := p.Decl.(type) {
	case *ast.VariableDecl:
		return d.Type
	case *ast.ArrayDecl:
		return d.ElemType
	default:
		return ast.Void
	}
}
