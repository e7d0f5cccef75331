// Package symtab builds the nested-scope symbol table described in spec
// §4.2: a depth-first walk of the canonicalized AST that produces a tree of
// scopes, each holding an ordered list of rows. Rows carry enough of the AST
// back-reference to answer later semantic and codegen questions without a
// second traversal.
package symtab

import "mcc/internal/ast"

// RowKind distinguishes what a row denotes. Pseudo rows exist only to anchor
// a child scope for a nested block (if/else/while bodies, bare `{}` blocks)
// that otherwise introduces no name of its own.
type RowKind int

const (
	Variable RowKind = iota
	Array
	Function
	Pseudo
)

func (k RowKind) String() string {
	switch k {
	case Variable:
		return "variable"
	case Array:
		return "array"
	case Function:
		return "function"
	case Pseudo:
		return "pseudo"
	default:
		return "unknown"
	}
}

// Row is one entry in a scope: a declared variable, array, function, or a
// pseudo row anchoring a nested block's own child scope.
type Row struct {
	Kind      RowKind
	Name      string
	Type      ast.Type
	ArraySize int64

	// Function rows only: one entry per declared parameter, in order.
	ParamKinds      []RowKind // Variable or Array
	ParamTypes      []ast.Type
	ParamArraySizes []int64

	Node ast.Node // back-pointer to the declaring AST node

	Owner *Scope // the scope this row lives in
	Child *Scope // child scope this row anchors, if any
}

func newRow(kind RowKind, name string, node ast.Node) *Row {
	return &Row{Kind: kind, Name: name, Node: node}
}
