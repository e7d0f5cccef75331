package printer

import (
	"fmt"
	"strconv"
	"strings"

	"mcc/internal/ast"
)

// ASTDOT renders prog as a Graphviz tree: one node per function, statement
// and expression, edges to children in source order. function restricts
// the dump to a single function by name when non-empty, matching the
// shared -f/--function driver flag.
func ASTDOT(prog *ast.Program, function string) string {
	var b strings.Builder
	b.WriteString("digraph ast {\n")
	b.WriteString("  node [shape=box];\n")
	ids := &idGen{}
	for _, fn := range prog.Functions {
		if function != "" && fn.Name != function {
			continue
		}
		writeFunctionDOT(&b, fn, ids)
	}
	b.WriteString("}\n")
	return b.String()
}

func writeFunctionDOT(b *strings.Builder, fn *ast.FunctionDef, ids *idGen) string {
	id := ids.next()
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Name()
	}
	fmt.Fprintf(b, "  %s [label=%q];\n", id, fmt.Sprintf("%s %s(%s)", fn.ReturnType, fn.Name, strings.Join(params, ", ")))
	bodyID := writeStmtDOT(b, fn.Body, ids)
	fmt.Fprintf(b, "  %s -> %s;\n", id, bodyID)
	return id
}

func writeStmtDOT(b *strings.Builder, s ast.Stmt, ids *idGen) string {
	id := ids.next()
	switch st := s.(type) {
	case *ast.CompoundStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "{ }")
		for _, inner := range st.Stmts {
			childID := writeStmtDOT(b, inner, ids)
			fmt.Fprintf(b, "  %s -> %s;\n", id, childID)
		}
	case *ast.NestedCompoundStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "{ }")
		childID := writeStmtDOT(b, st.Body, ids)
		fmt.Fprintf(b, "  %s -> %s;\n", id, childID)
	case *ast.IfStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "if")
		condID := writeExprDOT(b, st.Cond, ids)
		thenID := writeStmtDOT(b, st.Then, ids)
		fmt.Fprintf(b, "  %s -> %s;\n  %s -> %s;\n", id, condID, id, thenID)
	case *ast.IfElseStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "if-else")
		condID := writeExprDOT(b, st.Cond, ids)
		thenID := writeStmtDOT(b, st.Then, ids)
		elseID := writeStmtDOT(b, st.Else, ids)
		fmt.Fprintf(b, "  %s -> %s;\n  %s -> %s;\n  %s -> %s;\n", id, condID, id, thenID, id, elseID)
	case *ast.WhileStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "while")
		condID := writeExprDOT(b, st.Cond, ids)
		bodyID := writeStmtDOT(b, st.Body, ids)
		fmt.Fprintf(b, "  %s -> %s;\n  %s -> %s;\n", id, condID, id, bodyID)
	case *ast.ExprStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "expr")
		exprID := writeExprDOT(b, st.Expr, ids)
		fmt.Fprintf(b, "  %s -> %s;\n", id, exprID)
	case *ast.DeclStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "decl "+st.Decl.DeclName())
	case *ast.AssignStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "assign "+st.Assign.TargetName())
	case *ast.ReturnStmt:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "return")
		if st.Value != nil {
			valID := writeExprDOT(b, st.Value, ids)
			fmt.Fprintf(b, "  %s -> %s;\n", id, valID)
		}
	default:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "stmt")
	}
	return id
}

func writeExprDOT(b *strings.Builder, e ast.Expr, ids *idGen) string {
	id := ids.next()
	switch ex := e.(type) {
	case *ast.BinaryExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, ex.Op.String())
		leftID := writeExprDOT(b, ex.Left, ids)
		rightID := writeExprDOT(b, ex.Right, ids)
		fmt.Fprintf(b, "  %s -> %s;\n  %s -> %s;\n", id, leftID, id, rightID)
	case *ast.UnaryExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, ex.Op.String())
		operandID := writeExprDOT(b, ex.Operand, ids)
		fmt.Fprintf(b, "  %s -> %s;\n", id, operandID)
	case *ast.ParenExpr:
		return writeExprDOT(b, ex.Inner, ids)
	case *ast.VariableExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, ex.Name)
	case *ast.ArrayElementExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, ex.Name+"[]")
		idxID := writeExprDOT(b, ex.Index, ids)
		fmt.Fprintf(b, "  %s -> %s;\n", id, idxID)
	case *ast.CallExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, ex.Name+"()")
		for _, arg := range ex.Args {
			argID := writeExprDOT(b, arg, ids)
			fmt.Fprintf(b, "  %s -> %s;\n", id, argID)
		}
	case *ast.LiteralExpr:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, literalLabel(ex.Literal))
	default:
		fmt.Fprintf(b, "  %s [label=%q];\n", id, "expr")
	}
	return id
}

func literalLabel(lit ast.Literal) string {
	switch l := lit.(type) {
	case *ast.IntLiteral:
		return strconv.FormatInt(l.Value, 10)
	case *ast.BoolLiteral:
		return strconv.FormatBool(l.Value)
	case *ast.StringLiteral:
		return strconv.Quote(l.Value)
	case *ast.FloatLiteral:
		return strconv.FormatFloat(l.Value, 'f', -1, 64)
	default:
		return "?"
	}
}
