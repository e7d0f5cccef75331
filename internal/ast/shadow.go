package ast

// shadowScope is one frame of the renaming walk: the names declared
// directly in this compound scope, mapped to their (possibly renamed)
// storage identifier.
type shadowScope struct {
	parent *shadowScope
	names  map[string]string
}

func newShadowScope(parent *shadowScope) *shadowScope {
	return &shadowScope{parent: parent, names: make(map[string]string)}
}

// resolve looks up name starting at this scope and ascending through
// parents, returning the active storage identifier. If nothing binds name,
// it is returned unchanged (e.g. it refers to something shadow-renaming
// doesn't touch, such as a function identifier reached through the wrong
// path).
func (s *shadowScope) resolve(name string) string {
	for sc := s; sc != nil; sc = sc.parent {
		if renamed, ok := sc.names[name]; ok {
			return renamed
		}
	}
	return name
}

// resolvesInAncestor reports whether name is bound in any scope strictly
// enclosing s (not s itself) — the precondition for renaming a new
// declaration of name as a shadow.
func (s *shadowScope) resolvesInAncestor(name string) bool {
	for sc := s.parent; sc != nil; sc = sc.parent {
		if _, ok := sc.names[name]; ok {
			return true
		}
	}
	return false
}

type renamer struct {
	counter int
}

func (r *renamer) freshName() string {
	name := formatTemp("$r", r.counter)
	r.counter++
	return name
}

func formatTemp(prefix string, n int) string {
	// Mirrors the x86 emitter's own small-integer formatting needs without
	// pulling in strconv for a single call site per identifier mint.
	if n == 0 {
		return prefix + "0"
	}
	digits := make([]byte, 0, 4)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return prefix + string(digits)
}

// renameShadows walks fn's body, renaming any declaration that shadows a
// name already visible from an enclosing scope of the same function, and
// rewriting every use of that name within the remainder of the declaring
// scope (including nested scopes) to match.
func (r *renamer) renameShadows(fn *FunctionDef) {
	top := newShadowScope(nil)
	for _, p := range fn.Params {
		top.names[p.Name()] = p.Name()
	}
	r.renameCompound(fn.Body, top)
}

func (r *renamer) renameCompound(c *CompoundStmt, parent *shadowScope) {
	scope := newShadowScope(parent)
	for _, s := range c.Stmts {
		r.renameStmt(s, scope)
	}
}

func (r *renamer) renameStmt(s Stmt, scope *shadowScope) {
	switch st := s.(type) {
	case *DeclStmt:
		r.renameDecl(st.Decl, scope)
	case *AssignStmt:
		switch a := st.Assign.(type) {
		case *VariableAssign:
			a.Name = scope.resolve(a.Name)
			r.renameExpr(a.Value, scope)
		case *ArrayAssign:
			a.Name = scope.resolve(a.Name)
			r.renameExpr(a.Index, scope)
			r.renameExpr(a.Value, scope)
		}
	case *ExprStmt:
		r.renameExpr(st.Expr, scope)
	case *ReturnStmt:
		if st.Value != nil {
			r.renameExpr(st.Value, scope)
		}
	case *IfStmt:
		r.renameExpr(st.Cond, scope)
		r.renameCompound(st.Then, scope)
	case *IfElseStmt:
		r.renameExpr(st.Cond, scope)
		r.renameCompound(st.Then, scope)
		r.renameCompound(st.Else, scope)
	case *WhileStmt:
		r.renameExpr(st.Cond, scope)
		r.renameCompound(st.Body, scope)
	case *NestedCompoundStmt:
		r.renameCompound(st.Body, scope)
	}
}

func (r *renamer) renameDecl(d Declaration, scope *shadowScope) {
	name := d.DeclName()
	storage := name
	if scope.resolvesInAncestor(name) {
		storage = r.freshName()
	}
	scope.names[name] = storage
	switch decl := d.(type) {
	case *VariableDecl:
		decl.Name = storage
	case *ArrayDecl:
		decl.Name = storage
	}
}

func (r *renamer) renameExpr(e Expr, scope *shadowScope) {
	switch expr := e.(type) {
	case *VariableExpr:
		expr.Name = scope.resolve(expr.Name)
	case *ArrayElementExpr:
		expr.Name = scope.resolve(expr.Name)
		r.renameExpr(expr.Index, scope)
	case *BinaryExpr:
		r.renameExpr(expr.Left, scope)
		r.renameExpr(expr.Right, scope)
	case *UnaryExpr:
		r.renameExpr(expr.Operand, scope)
	case *ParenExpr:
		r.renameExpr(expr.Inner, scope)
	case *CallExpr:
		// The callee name is resolved in the top (function) scope by the
		// symbol table, never shadowed by local declarations.
		for _, a := range expr.Args {
			r.renameExpr(a, scope)
		}
	case *LiteralExpr:
		// nothing to rename
	}
}
