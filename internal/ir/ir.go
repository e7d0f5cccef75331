// Package ir generates the three-address-code intermediate representation
// described in spec §4.4: a single doubly-linked sequence of rows, one
// instruction each, over a canonicalized program with built-ins already
// spliced back out.
package ir

import "mcc/internal/ast"

// Instr enumerates the IR's instruction set.
type Instr int

const (
	Assign Instr = iota
	Label
	FuncLabel
	Jump
	JumpFalse
	Call
	Push
	Pop
	Plus
	Minus
	Multiply
	Divide
	Equals
	NotEquals
	Smaller
	Greater
	SmallerEq
	GreaterEq
	And
	Or
	Not
	Neg
	Return
	Array
)

func (i Instr) String() string {
	names := [...]string{
		"ASSIGN", "LABEL", "FUNC_LABEL", "JUMP", "JUMPFALSE", "CALL", "PUSH", "POP",
		"PLUS", "MINUS", "MULTIPLY", "DIVIDE", "EQUALS", "NOTEQUALS", "SMALLER",
		"GREATER", "SMALLEREQ", "GREATEREQ", "AND", "OR", "NOT", "NEG", "RETURN", "ARRAY",
	}
	if int(i) < len(names) {
		return names[i]
	}
	return "UNKNOWN"
}

// RowType is the row-type attached to every row whose instruction produces
// a value, used by stack annotation and codegen to pick instruction widths.
type RowType int

const (
	IntT RowType = iota
	FloatT
	BoolT
	StringT
	Typeless
)

func (t RowType) String() string {
	switch t {
	case IntT:
		return "int"
	case FloatT:
		return "float"
	case BoolT:
		return "bool"
	case StringT:
		return "string"
	default:
		return "typeless"
	}
}

// FromASTType maps a source-language type to its row type.
func FromASTType(t ast.Type) RowType {
	switch t {
	case ast.Int:
		return IntT
	case ast.Float:
		return FloatT
	case ast.Bool:
		return BoolT
	case ast.String:
		return StringT
	default:
		return Typeless
	}
}

// ArgKind enumerates the shapes an IR argument can take.
type ArgKind int

const (
	LitInt ArgKind = iota
	LitFloat
	LitBool
	LitString
	RowRef
	LabelRef
	Ident
	ArrElem
	FuncLabelRef
)

// Arg is one operand of an IR row. Only the fields matching Kind are
// meaningful, mirroring the tagged union the original implementation used.
type Arg struct {
	Kind ArgKind

	IntVal    int64
	FloatVal  float64
	BoolVal   bool
	StringVal string
	Row       *Row
	LabelNum  int
	Name      string // Ident, FuncLabelRef, and the array name for ArrElem
	Index     *Arg   // ArrElem only
}

// Row is one instruction. RowNo is assigned by NumberRows after generation;
// rows that do not produce a named temporary keep RowNo 0.
type Row struct {
	RowNo int
	Instr Instr
	Type  RowType

	Arg1 *Arg
	Arg2 *Arg

	Prev *Row
	Next *Row
}

// producesTemp reports whether instr's row is referable by later rows
// (the arithmetic/comparison/logical/unary/CALL/POP family), matching the
// row-numbering rule in spec §4.4.
func producesTemp(instr Instr) bool {
	switch instr {
	case Plus, Minus, Multiply, Divide, Equals, NotEquals, Smaller, Greater,
		SmallerEq, GreaterEq, And, Or, Not, Neg, Call, Pop:
		return true
	default:
		return false
	}
}

// NumberRows assigns strictly increasing row numbers to every row that
// produces a named temporary, in sequence order; every other row keeps 0.
func NumberRows(head *Row) {
	n := 1
	for r := head; r != nil; r = r.Next {
		if producesTemp(r.Instr) {
			r.RowNo = n
			n++
		}
	}
}
