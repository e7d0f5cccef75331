package ast

// Literal is the {int, float, bool, string} sum type for literal values.
// String literals carry their bytes with surrounding quotes already stripped.
type Literal interface {
	Node
	Type() Type
	literal()
}

type IntLiteral struct {
	Location SourceLocation
	Value    int64
}

func (l *IntLiteral) Loc() SourceLocation { return l.Location }
func (l *IntLiteral) Type() Type          { return Int }
func (*IntLiteral) literal()              {}

type FloatLiteral struct {
	Location SourceLocation
	Value    float64
}

func (l *FloatLiteral) Loc() SourceLocation { return l.Location }
func (l *FloatLiteral) Type() Type          { return Float }
func (*FloatLiteral) literal()              {}

type BoolLiteral struct {
	Location SourceLocation
	Value    bool
}

func (l *BoolLiteral) Loc() SourceLocation { return l.Location }
func (l *BoolLiteral) Type() Type          { return Bool }
func (*BoolLiteral) literal()              {}

type StringLiteral struct {
	Location SourceLocation
	Value    string // quotes already stripped, escapes already resolved
}

func (l *StringLiteral) Loc() SourceLocation { return l.Location }
func (l *StringLiteral) Type() Type          { return String }
func (*StringLiteral) literal()              {}
