package symtab

// Table wraps the top scope. A program has exactly one: every function
// definition is a row in Top, and each function row's Child is the scope
// holding its parameters and top-level body declarations.
type Table struct {
	Top *Scope
}

func newTable() *Table {
	return &Table{Top: newScope(nil)}
}
