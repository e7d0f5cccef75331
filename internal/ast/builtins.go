package ast

// Builtin describes one of the six fixed I/O built-ins injected into every
// program before semantic analysis and spliced back out before IR
// generation (§4.1, §4.3 checks 3 and 7).
type Builtin struct {
	Name       string
	ReturnType Type
	Params     []Type
}

// Builtins is the fixed set of built-in declarations, in injection order.
var Builtins = []Builtin{
	{Name: "print", ReturnType: Void, Params: []Type{String}},
	{Name: "print_nl", ReturnType: Void, Params: nil},
	{Name: "print_int", ReturnType: Void, Params: []Type{Int}},
	{Name: "print_float", ReturnType: Void, Params: []Type{Float}},
	{Name: "read_int", ReturnType: Int, Params: nil},
	{Name: "read_float", ReturnType: Float, Params: nil},
}

// IsBuiltinName reports whether name matches one of the fixed built-ins.
func IsBuiltinName(name string) bool {
	for _, b := range Builtins {
		if b.Name == name {
			return true
		}
	}
	return false
}

// injectBuiltins appends stub function definitions for the built-ins: empty
// bodies, with a zero-valued return for the non-void ones. This must run
// before any pass that resolves call identifiers.
func injectBuiltins(prog *Program) {
	loc := SourceLocation{Filename: prog.Filename}
	for _, b := range Builtins {
		params := make([]*Param, len(b.Params))
		for i, t := range b.Params {
			params[i] = &Param{
				Location: loc,
				Decl:     &VariableDecl{Location: loc, Type: t, Name: builtinParamName(i)},
			}
		}
		body := &CompoundStmt{Location: loc}
		if b.ReturnType != Void {
			body.Stmts = append(body.Stmts, &ReturnStmt{Location: loc, Value: zeroLiteralExpr(loc, b.ReturnType)})
		} else {
			body.Stmts = append(body.Stmts, &ReturnStmt{Location: loc})
		}
		prog.Functions = append(prog.Functions, &FunctionDef{
			Location:      loc,
			ReturnType:    b.ReturnType,
			Name:          b.Name,
			Params:        params,
			Body:          body,
			IsBuiltinStub: true,
		})
	}
}

// removeBuiltins splices built-in function definitions back out of the
// program; it is the symmetric counterpart of injectBuiltins, run
// immediately before IR generation.
func removeBuiltins(prog *Program) {
	kept := prog.Functions[:0]
	for _, fn := range prog.Functions {
		if !IsBuiltinName(fn.Name) {
			kept = append(kept, fn)
		}
	}
	prog.Functions = kept
}

func builtinParamName(i int) string {
	names := []string{"a", "b", "c"}
	if i < len(names) {
		return names[i]
	}
	return "arg"
}

func zeroLiteralExpr(loc SourceLocation, t Type) Expr {
	var lit Literal
	switch t {
	case Int:
		lit = &IntLiteral{Location: loc, Value: 0}
	case Float:
		lit = &FloatLiteral{Location: loc, Value: 0}
	case Bool:
		lit = &BoolLiteral{Location: loc, Value: false}
	case String:
		lit = &StringLiteral{Location: loc, Value: ""}
	default:
		return nil
	}
	return &LiteralExpr{Location: loc, Literal: lit}
}
