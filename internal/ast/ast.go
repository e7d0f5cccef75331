// Package ast defines the typed tree produced by the parser: programs,
// function definitions, statements, expressions, declarations and literals
// of the source language, plus the source locations attached to every node.
package ast

import "fmt"

// SourceLocation pins a node to a span in the original input. It is the
// only data the rest of the compiler uses to format diagnostics.
type SourceLocation struct {
	Filename  string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.StartLine, l.StartCol)
}

// Type is one of the four primitive types, plus Void for function return
// types. There is no pseudo type: symbol-table pseudo rows are marked by
// their row kind (symtab.Pseudo) and leave Type at its zero value.
type Type int

const (
	Int Type = iota
	Float
	Bool
	String
	Void
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Void:
		return "void"
	default:
		return "unknown"
	}
}

// BinaryOp enumerates the binary operators of the source language.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Less
	Greater
	LessEq
	GreaterEq
	And
	Or
	Equal
	NotEqual
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	default:
		return "?"
	}
}

// IsComparison reports whether op produces a bool from non-bool operands.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case Less, Greater, LessEq, GreaterEq:
		return true
	default:
		return false
	}
}

// IsLogical reports whether op requires bool operands and produces bool.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// IsEquality reports whether op is = or != (matching-type operands, bool result).
func (op BinaryOp) IsEquality() bool {
	return op == Equal || op == NotEqual
}

// IsArithmetic reports whether op requires matching non-bool operands and
// produces a value of that same type.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div:
		return true
	default:
		return false
	}
}

// UnaryOp enumerates the unary operators of the source language.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	if op == Neg {
		return "-"
	}
	return "!"
}

// Node is implemented by every AST node; it exposes the node's source
// location for diagnostics.
type Node interface {
	Loc() SourceLocation
}

// Program is the root node: an ordered list of function definitions.
type Program struct {
	Filename  string
	Functions []*FunctionDef
}

func (p *Program) Loc() SourceLocation {
	if len(p.Functions) > 0 {
		return p.Functions[0].Loc()
	}
	return SourceLocation{Filename: p.Filename}
}

// FunctionDef is a function definition: return type, name, parameters and body.
type FunctionDef struct {
	Location   SourceLocation
	ReturnType Type
	Name       string
	Params     []*Param
	Body       *CompoundStmt

	// IsBuiltinStub marks a definition injected by Canonicalize rather than
	// parsed from source (§4.1); semantic checks use it to tell a built-in
	// from a user function that happens to share its name.
	IsBuiltinStub bool
}

func (f *FunctionDef) Loc() SourceLocation { return f.Location }

// Param is a single function parameter, modeled as a declaration.
type Param struct {
	Location SourceLocation
	Decl     Declaration
}

func (p *Param) Loc() SourceLocation { return p.Location }

// Name returns the parameter's declared identifier.
func (p *Param) Name() string { return p.Decl.DeclName() }
