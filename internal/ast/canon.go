package ast

// Canonicalize applies the three post-parse transformations, in order:
// built-in injection, shadow renaming, then implicit void-return insertion.
// The result is the shape every later pipeline stage assumes.
func Canonicalize(prog *Program) *Program {
	injectBuiltins(prog)
	r := &renamer{}
	for _, fn := range prog.Functions {
		r.renameShadows(fn)
	}
	insertImplicitReturns(prog)
	return prog
}

// RemoveBuiltins splices built-in function definitions back out of prog.
// Symmetric with the injection performed by Canonicalize; run immediately
// before IR generation.
func RemoveBuiltins(prog *Program) {
	removeBuiltins(prog)
}
