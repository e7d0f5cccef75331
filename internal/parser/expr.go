package parser

import (
	"mcc/internal/ast"
	"mcc/internal/lexer"
)

// parseExpr climbs precedence levels lowest-to-highest: ||, &&, equality,
// relational, additive, multiplicative, unary, primary.
func (p *parser) parseExpr() ast.Expr {
	return p.parseOr()
}

func (p *parser) parseOr() ast.Expr {
	left := p.parseAnd()
	for p.check(lexer.OrOr) {
		tok := p.advance()
		right := p.parseAnd()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: ast.Or, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(lexer.AndAnd) {
		tok := p.advance()
		right := p.parseEquality()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: ast.And, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.check(lexer.Equal) || p.check(lexer.NotEqual) {
		tok := p.advance()
		op := ast.Equal
		if tok.Type == lexer.NotEqual {
			op = ast.NotEqual
		}
		right := p.parseRelational()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for p.check(lexer.Less) || p.check(lexer.Greater) || p.check(lexer.LessEq) || p.check(lexer.GreaterEq) {
		tok := p.advance()
		var op ast.BinaryOp
		switch tok.Type {
		case lexer.Less:
			op = ast.Less
		case lexer.Greater:
			op = ast.Greater
		case lexer.LessEq:
			op = ast.LessEq
		case lexer.GreaterEq:
			op = ast.GreaterEq
		}
		right := p.parseAdditive()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(lexer.Plus) || p.check(lexer.Minus) {
		tok := p.advance()
		op := ast.Add
		if tok.Type == lexer.Minus {
			op = ast.Sub
		}
		right := p.parseMultiplicative()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.check(lexer.Star) || p.check(lexer.Slash) {
		tok := p.advance()
		op := ast.Mul
		if tok.Type == lexer.Slash {
			op = ast.Div
		}
		right := p.parseUnary()
		left = &ast.BinaryExpr{Location: p.loc(tok), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseUnary() ast.Expr {
	if p.check(lexer.Minus) || p.check(lexer.Bang) {
		tok := p.advance()
		op := ast.Neg
		if tok.Type == lexer.Bang {
			op = ast.Not
		}
		operand := p.parseUnary()
		return &ast.UnaryExpr{Location: p.loc(tok), Op: op, Operand: operand}
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch {
	case p.check(lexer.IntLit):
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.IntLiteral{Location: p.loc(tok), Value: parseIntLiteral(tok.Lexeme)}}
	case p.check(lexer.FloatLit):
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.FloatLiteral{Location: p.loc(tok), Value: parseFloatLiteral(tok.Lexeme)}}
	case p.check(lexer.StringLit):
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.StringLiteral{Location: p.loc(tok), Value: tok.Lexeme}}
	case p.check(lexer.KwTrue):
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.BoolLiteral{Location: p.loc(tok), Value: true}}
	case p.check(lexer.KwFalse):
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.BoolLiteral{Location: p.loc(tok), Value: false}}
	case p.check(lexer.LParen):
		p.advance()
		inner := p.parseExpr()
		p.expect(lexer.RParen, "to close a parenthesized expression")
		return &ast.ParenExpr{Location: p.loc(tok), Inner: inner}
	case p.check(lexer.Ident):
		nameTok := p.advance()
		return p.finishIdentExpr(tok, nameTok)
	default:
		p.errorf(tok, "expected an expression, found %q", tok.Lexeme)
		p.advance()
		return &ast.LiteralExpr{Location: p.loc(tok), Literal: &ast.IntLiteral{Location: p.loc(tok), Value: 0}}
	}
}

// finishIdentExpr parses what follows a bare identifier already consumed:
// a call `name(args)`, an array element `name[index]`, or a plain variable
// reference.
func (p *parser) finishIdentExpr(startTok, nameTok lexer.Token) ast.Expr {
	if p.match(lexer.LParen) {
		var args []ast.Expr
		if !p.check(lexer.RParen) {
			for {
				args = append(args, p.parseExpr())
				if !p.match(lexer.Comma) {
					break
				}
			}
		}
		p.expect(lexer.RParen, "to close call arguments")
		return &ast.CallExpr{Location: p.loc(startTok), Name: nameTok.Lexeme, Args: args}
	}
	if p.match(lexer.LBracket) {
		index := p.parseExpr()
		p.expect(lexer.RBracket, "to close array index")
		return p.finishPostfix(&ast.ArrayElementExpr{Location: p.loc(startTok), Name: nameTok.Lexeme, Index: index})
	}
	return &ast.VariableExpr{Location: p.loc(startTok), Name: nameTok.Lexeme}
}

// finishPostfix exists so an array-element expression parsed ahead of an
// assignment-vs-expression-statement decision can still be returned as a
// plain expression node unchanged; the grammar has no further postfix
// operators beyond indexing, so this is currently the identity function.
func (p *parser) finishPostfix(e ast.Expr) ast.Expr { return e }

func parseIntLiteral(s string) int64 {
	var v int64
	for i := 0; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
	}
	return v
}

func parseFloatLiteral(s string) float64 {
	var intPart int64
	i := 0
	for i < len(s) && s[i] != '.' {
		intPart = intPart*10 + int64(s[i]-'0')
		i++
	}
	v := float64(intPart)
	if i < len(s) && s[i] == '.' {
		i++
		frac := 0.0
		scale := 0.1
		for i < len(s) {
			frac += float64(s[i]-'0') * scale
			scale /= 10
			i++
		}
		v += frac
	}
	return v
}
