package parser

import (
	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/token"
)

// parseMatch parses a match tail: "? { pattern [if guard] => body, ... }".
// The scrutinee has already been parsed.
func (p *Parser) parseMatch(scrutinee ast.Expression) ast.Expression {
	p.expect(token.QUESTION)
	p.expect(token.LBRACE)

	m := &ast.MatchExpr{Scrutinee: scrutinee}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		arm := ast.MatchArm{Pattern: p.parsePattern()}
		if p.match(token.IF) {
			arm.Guard = p.parseExpression()
		}
		p.expect(token.FATARROW)
		arm.Body = p.parseExpression()
		m.Arms = append(m.Arms, arm)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return m
}

// parsePattern parses a pattern, folding "|"-separated alternatives into
// an OrPattern.
func (p *Parser) parsePattern() ast.Pattern {
	first := p.parseSinglePattern()
	if !p.check(token.PIPE) {
		return first
	}
	or := &ast.OrPattern{Alternatives: []ast.Pattern{first}}
	for p.match(token.PIPE) {
		or.Alternatives = append(or.Alternatives, p.parseSinglePattern())
	}
	return or
}

// typePatternNames are identifiers that match on runtime type rather than
// binding a name.
var typePatternNames = map[string]bool{
	"i8": true, "i16": true, "i32": true, "i64": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "usize": true,
	"f32": true, "f64": true,
	"bool": true, "String": true, "string": true,
}

func (p *Parser) parseSinglePattern() ast.Pattern {
	switch {
	case p.check(token.UNDER):
		p.next()
		return &ast.WildcardPattern{}

	case p.check(token.TRUE), p.check(token.FALSE):
		name := p.cur().Literal
		p.next()
		return &ast.TypePattern{Name: name}

	case p.check(token.NUMBER), p.check(token.MINUS):
		return p.parseNumberPattern()

	case p.check(token.STRING):
		lit := p.cur().Literal
		p.next()
		return &ast.LiteralPattern{Value: &ast.StringLit{Value: lit}}

	case p.check(token.NONE):
		p.next()
		return &ast.LiteralPattern{Value: &ast.NoneLit{}}

	case p.check(token.DOT):
		p.next()
		variant := p.expectIdent()
		pat := &ast.EnumLiteralPattern{Variant: variant}
		if p.match(token.LPAREN) {
			pat.Payload = p.parsePattern()
			p.expect(token.RPAREN)
		}
		return pat

	case p.check(token.IDENT):
		name := p.cur().Literal
		p.next()
		switch {
		case p.cat.isEnum(name) && p.check(token.DOT):
			p.next()
			return &ast.EnumVariantPattern{EnumName: name, Variant: p.expectIdent()}
		case typePatternNames[name]:
			return &ast.TypePattern{Name: name}
		}
		return &ast.IdentifierPattern{Name: name}
	}

	p.addError("unexpected token " + p.cur().Type.String() + " in pattern")
	kind := p.cur().Type.String()
	p.next()
	return &ast.BadPattern{Kind: kind}
}

// parseNumberPattern parses a numeric literal pattern, or a range pattern
// when followed by ".." or "..=".
func (p *Parser) parseNumberPattern() ast.Pattern {
	start := p.patternNumber()
	if p.check(token.DOTDOT) || p.check(token.DOTDOTEQ) {
		inclusive := p.check(token.DOTDOTEQ)
		p.next()
		end := p.patternNumber()
		return &ast.RangePattern{Start: start, End: end, Inclusive: inclusive}
	}
	return &ast.LiteralPattern{Value: start}
}

func (p *Parser) patternNumber() ast.Expression {
	negative := p.match(token.MINUS)
	if !p.check(token.NUMBER) {
		p.addError("expected number in pattern")
		return &ast.BadExpr{Kind: p.cur().Type.String()}
	}
	lit := p.cur().Literal
	p.next()
	return p.numberLiteral(lit, negative)
}
