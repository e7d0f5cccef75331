// Package parser is the other half of the boundary collaborator named in
// spec §1: a recursive-descent parser that turns a lexer.Token stream into
// the internal/ast tree the rest of the pipeline consumes. Error reporting
// is textual (file:line:col: message), matching the external contract.
package parser

import (
	"fmt"

	"mcc/internal/ast"
	"mcc/internal/lexer"
)

// Status distinguishes a clean parse from one that produced diagnostics.
// Result fixes the single parser-result shape noted in SPEC_FULL.md's
// Open Question decisions, replacing the two conflicting shapes the
// original implementation carried across revisions.
type Status int

const (
	StatusOK Status = iota
	StatusError
)

// Result is the parser's sole entry-point return shape.
type Result struct {
	Status  Status
	Program *ast.Program
	Errs    []error
}

// ParseFile scans and parses one source file into a Program.
func ParseFile(filename, source string) Result {
	toks, lexErrs := lexer.NewScanner(filename, source).ScanTokens()
	p := &parser{filename: filename, tokens: toks}
	prog := p.parseProgram()
	errs := append(lexErrs, p.errs...)
	if len(errs) > 0 {
		return Result{Status: StatusError, Program: prog, Errs: errs}
	}
	return Result{Status: StatusOK, Program: prog}
}

type parser struct {
	filename string
	tokens   []lexer.Token
	pos      int
	errs     []error
}

func (p *parser) peek() lexer.Token { return p.tokens[p.pos] }
func (p *parser) prev() lexer.Token { return p.tokens[p.pos-1] }
func (p *parser) atEnd() bool       { return p.peek().Type == lexer.EOF }

func (p *parser) check(t lexer.TokenType) bool {
	return !p.atEnd() && p.peek().Type == t
}

func (p *parser) advance() lexer.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.prev()
}

func (p *parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(t lexer.TokenType, context string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	tok := p.peek()
	p.errorf(tok, "expected %s %s, found %q", t, context, tok.Lexeme)
	return tok
}

func (p *parser) errorf(tok lexer.Token, format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Errorf("%s:%d:%d: %s", p.filename, tok.Line, tok.Col, fmt.Sprintf(format, args...)))
}

func (p *parser) loc(tok lexer.Token) ast.SourceLocation {
	return ast.SourceLocation{Filename: p.filename, StartLine: tok.Line, StartCol: tok.Col, EndLine: tok.Line, EndCol: tok.Col + len(tok.Lexeme)}
}

// synchronize skips tokens until a likely statement/declaration boundary,
// so one syntax error doesn't cascade into a wall of follow-on errors.
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.prev().Type == lexer.Semicolon || p.prev().Type == lexer.RBrace {
			return
		}
		switch p.peek().Type {
		case lexer.KwInt, lexer.KwFloat, lexer.KwBool, lexer.KwString, lexer.KwVoid,
			lexer.KwIf, lexer.KwWhile, lexer.KwReturn, lexer.RBrace:
			return
		}
		p.advance()
	}
}

func (p *parser) parseProgram() *ast.Program {
	prog := &ast.Program{Filename: p.filename}
	for !p.atEnd() {
		fn := p.parseFunctionDef()
		if fn != nil {
			prog.Functions = append(prog.Functions, fn)
		} else {
			start := p.pos
			if start > 0 {
				p.synchronize()
			}
			if p.pos == start {
				p.advance()
			}
		}
	}
	return prog
}

func typeTokenToType(t lexer.TokenType) (ast.Type, bool) {
	switch t {
	case lexer.KwInt:
		return ast.Int, true
	case lexer.KwFloat:
		return ast.Float, true
	case lexer.KwBool:
		return ast.Bool, true
	case lexer.KwString:
		return ast.String, true
	case lexer.KwVoid:
		return ast.Void, true
	default:
		return 0, false
	}
}

func (p *parser) isTypeStart() bool {
	_, ok := typeTokenToType(p.peek().Type)
	return ok
}

func (p *parser) parseFunctionDef() *ast.FunctionDef {
	startTok := p.peek()
	retType, ok := typeTokenToType(p.peek().Type)
	if !ok {
		p.errorf(p.peek(), "expected a return type, found %q", p.peek().Lexeme)
		return nil
	}
	p.advance()
	nameTok := p.expect(lexer.Ident, "(function name)")
	p.expect(lexer.LParen, "after function name")
	var params []*ast.Param
	if !p.check(lexer.RParen) {
		for {
			params = append(params, p.parseParam())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.expect(lexer.RParen, "to close parameter list")
	body := p.parseCompoundStmt()
	return &ast.FunctionDef{
		Location:   p.loc(startTok),
		ReturnType: retType,
		Name:       nameTok.Lexeme,
		Params:     params,
		Body:       body,
	}
}

func (p *parser) parseParam() *ast.Param {
	tok := p.peek()
	decl := p.parseDeclTypeAndName()
	return &ast.Param{Location: p.loc(tok), Decl: decl}
}

// parseDeclTypeAndName parses `Type Ident` or `Type '[' IntLit ']' Ident`,
// shared by parameters and declaration statements.
func (p *parser) parseDeclTypeAndName() ast.Declaration {
	tok := p.peek()
	elemType, ok := typeTokenToType(p.peek().Type)
	if !ok {
		p.errorf(p.peek(), "expected a type")
		elemType = ast.Int
	} else {
		p.advance()
	}
	if p.match(lexer.LBracket) {
		sizeTok := p.expect(lexer.IntLit, "(array size)")
		size := parseIntLiteral(sizeTok.Lexeme)
		p.expect(lexer.RBracket, "to close array size")
		nameTok := p.expect(lexer.Ident, "(array name)")
		return &ast.ArrayDecl{Location: p.loc(tok), ElemType: elemType, Size: size, Name: nameTok.Lexeme}
	}
	nameTok := p.expect(lexer.Ident, "(variable name)")
	return &ast.VariableDecl{Location: p.loc(tok), Type: elemType, Name: nameTok.Lexeme}
}

func (p *parser) parseCompoundStmt() *ast.CompoundStmt {
	startTok := p.expect(lexer.LBrace, "to open a block")
	c := &ast.CompoundStmt{Location: p.loc(startTok)}
	for !p.check(lexer.RBrace) && !p.atEnd() {
		s := p.parseStmt()
		if s != nil {
			c.Stmts = append(c.Stmts, s)
		} else {
			p.synchronize()
		}
	}
	p.expect(lexer.RBrace, "to close a block")
	return c
}

func (p *parser) parseStmt() ast.Stmt {
	tok := p.peek()
	switch {
	case p.check(lexer.LBrace):
		body := p.parseCompoundStmt()
		return &ast.NestedCompoundStmt{Location: p.loc(tok), Body: body}
	case p.check(lexer.KwIf):
		return p.parseIfStmt()
	case p.check(lexer.KwWhile):
		return p.parseWhileStmt()
	case p.check(lexer.KwReturn):
		return p.parseReturnStmt()
	case p.isTypeStart():
		decl := p.parseDeclTypeAndName()
		p.expect(lexer.Semicolon, "after declaration")
		return &ast.DeclStmt{Location: p.loc(tok), Decl: decl}
	case p.check(lexer.Ident):
		return p.parseAssignOrExprStmt()
	default:
		p.errorf(tok, "unexpected token %q at start of statement", tok.Lexeme)
		return nil
	}
}

func (p *parser) parseIfStmt() ast.Stmt {
	tok := p.advance() // 'if'
	p.expect(lexer.LParen, "after if")
	cond := p.parseExpr()
	p.expect(lexer.RParen, "to close if condition")
	then := p.parseCompoundStmt()
	if p.match(lexer.KwElse) {
		els := p.parseCompoundStmt()
		return &ast.IfElseStmt{Location: p.loc(tok), Cond: cond, Then: then, Else: els}
	}
	return &ast.IfStmt{Location: p.loc(tok), Cond: cond, Then: then}
}

func (p *parser) parseWhileStmt() ast.Stmt {
	tok := p.advance() // 'while'
	p.expect(lexer.LParen, "after while")
	cond := p.parseExpr()
	p.expect(lexer.RParen, "to close while condition")
	body := p.parseCompoundStmt()
	return &ast.WhileStmt{Location: p.loc(tok), Cond: cond, Body: body}
}

func (p *parser) parseReturnStmt() ast.Stmt {
	tok := p.advance() // 'return'
	if p.match(lexer.Semicolon) {
		return &ast.ReturnStmt{Location: p.loc(tok)}
	}
	val := p.parseExpr()
	p.expect(lexer.Semicolon, "after return value")
	return &ast.ReturnStmt{Location: p.loc(tok), Value: val}
}

// parseAssignOrExprStmt disambiguates `ident = expr;`, `ident[expr] = expr;`
// and a bare expression statement (a call used for effect), all of which
// start with an identifier.
func (p *parser) parseAssignOrExprStmt() ast.Stmt {
	tok := p.peek()
	nameTok := p.advance() // identifier

	if p.check(lexer.LBracket) {
		p.advance()
		index := p.parseExpr()
		p.expect(lexer.RBracket, "to close array index")
		if p.check(lexer.Assign) {
			p.advance()
			val := p.parseExpr()
			p.expect(lexer.Semicolon, "after assignment")
			return &ast.AssignStmt{Location: p.loc(tok), Assign: &ast.ArrayAssign{
				Location: p.loc(tok), Name: nameTok.Lexeme, Index: index, Value: val,
			}}
		}
		// Array-element read used as a statement (e.g. a dropped call result).
		expr := p.finishPostfix(&ast.ArrayElementExpr{Location: p.loc(tok), Name: nameTok.Lexeme, Index: index})
		p.expect(lexer.Semicolon, "after expression")
		return &ast.ExprStmt{Location: p.loc(tok), Expr: expr}
	}

	if p.check(lexer.Assign) {
		p.advance()
		val := p.parseExpr()
		p.expect(lexer.Semicolon, "after assignment")
		return &ast.AssignStmt{Location: p.loc(tok), Assign: &ast.VariableAssign{
			Location: p.loc(tok), Name: nameTok.Lexeme, Value: val,
		}}
	}

	expr := p.finishIdentExpr(tok, nameTok)
	p.expect(lexer.Semicolon, "after expression")
	return &ast.ExprStmt{Location: p.loc(tok), Expr: expr}
}
