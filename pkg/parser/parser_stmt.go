package parser

import (
	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/token"
)

// parseBlock parses "{" statement* "}" and returns the statements.
func (p *Parser) parseBlock() []ast.Statement {
	p.expect(token.LBRACE)
	var stmts []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		before := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.next()
		}
	}
	p.expect(token.RBRACE)
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.check(token.RETURN):
		p.next()
		if p.check(token.RBRACE) || p.check(token.EOF) {
			return &ast.ReturnStmt{Expr: &ast.UnitLit{}}
		}
		return &ast.ReturnStmt{Expr: p.parseExpression()}

	case p.check(token.LOOP):
		p.next()
		if p.check(token.LBRACE) {
			return &ast.LoopStmt{Body: p.parseBlock()}
		}
		cond := p.parseExpression()
		return &ast.LoopStmt{Condition: cond, Body: p.parseBlock()}

	case p.check(token.BREAK):
		p.next()
		return &ast.BreakStmt{}

	case p.check(token.CONTINUE):
		p.next()
		return &ast.ContinueStmt{}

	case p.check(token.DEFER):
		p.next()
		inner := p.parseStatement()
		if inner == nil {
			inner = &ast.BadStmt{Kind: "empty defer"}
		}
		return &ast.DeferStmt{Statement: inner}

	case p.check(token.LBRACE):
		if p.isDestructuringImport() {
			return p.parseDestructuringImport()
		}
		return &ast.BlockStmt{Statements: p.parseBlock()}

	case p.check(token.IDENT) && p.checkPeek(token.DECLARE):
		name := p.expectIdent()
		p.next() // :=
		return &ast.VariableDecl{Name: name, Initializer: p.parseExpression()}

	case p.check(token.IDENT) && p.checkPeek(token.MUTDECL):
		name := p.expectIdent()
		p.next() // ::=
		return &ast.VariableDecl{Name: name, Initializer: p.parseExpression(), Mutable: true}
	}

	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if p.match(token.ASSIGN) {
		value := p.parseExpression()
		if id, ok := expr.(*ast.Identifier); ok {
			return &ast.Assignment{Name: id.Name, Value: value}
		}
		return &ast.PointerAssignment{Target: expr, Value: value}
	}
	return &ast.ExpressionStmt{Expr: expr}
}

// isDestructuringImport distinguishes "{ a, b } := expr" from a block
// statement by scanning ahead for the closing brace and ":=".
func (p *Parser) isDestructuringImport() bool {
	i := 1
	if p.peekAt(i).Type != token.IDENT {
		return false
	}
	i++
	for p.peekAt(i).Type == token.COMMA {
		i++
		if p.peekAt(i).Type != token.IDENT {
			return false
		}
		i++
	}
	return p.peekAt(i).Type == token.RBRACE && p.peekAt(i+1).Type == token.DECLARE
}

func (p *Parser) parseDestructuringImport() ast.Statement {
	p.expect(token.LBRACE)
	var names []string
	for p.check(token.IDENT) {
		names = append(names, p.expectIdent())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	p.expect(token.DECLARE)
	return &ast.DestructuringImport{Names: names, Source: p.parseExpression()}
}
