package parser

import (
	"fmt"
	"strings"

	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/token"
)

// Binary operator tables, one per precedence level.
var (
	orOps     = map[token.TokenType]ast.BinaryOp{token.PIPEPIPE: ast.OpOr}
	andOps    = map[token.TokenType]ast.BinaryOp{token.AMPAMP: ast.OpAnd}
	bitOrOps  = map[token.TokenType]ast.BinaryOp{token.PIPE: ast.OpBitwiseOr}
	bitXorOps = map[token.TokenType]ast.BinaryOp{token.CARET: ast.OpBitwiseXor}
	bitAndOps = map[token.TokenType]ast.BinaryOp{token.AMP: ast.OpBitwiseAnd}
	eqOps     = map[token.TokenType]ast.BinaryOp{
		token.EQEQ: ast.OpEquals,
		token.NE:   ast.OpNotEquals,
	}
	cmpOps = map[token.TokenType]ast.BinaryOp{
		token.LT: ast.OpLessThan,
		token.GT: ast.OpGreaterThan,
		token.LE: ast.OpLessThanEquals,
		token.GE: ast.OpGreaterThanEquals,
	}
	shiftOps = map[token.TokenType]ast.BinaryOp{
		token.SHL: ast.OpShiftLeft,
		token.SHR: ast.OpShiftRight,
	}
	addOps = map[token.TokenType]ast.BinaryOp{
		token.PLUS:   ast.OpAdd,
		token.MINUS:  ast.OpSubtract,
		token.CONCAT: ast.OpStringConcat,
	}
	mulOps = map[token.TokenType]ast.BinaryOp{
		token.STAR:    ast.OpMultiply,
		token.SLASH:   ast.OpDivide,
		token.PERCENT: ast.OpModulo,
	}
)

// parseExpression parses a full expression, including a trailing pattern
// match (the lowest-precedence form).
func (p *Parser) parseExpression() ast.Expression {
	expr := p.parseBinary(levelOr)
	for p.check(token.QUESTION) {
		expr = p.parseMatch(expr)
	}
	return expr
}

// Precedence levels, loosest first.
var levels = []map[token.TokenType]ast.BinaryOp{
	orOps, andOps, bitOrOps, bitXorOps, bitAndOps, eqOps, cmpOps, shiftOps,
}

const levelOr = 0

// parseBinary climbs the precedence ladder down to ranges and arithmetic.
func (p *Parser) parseBinary(level int) ast.Expression {
	if level >= len(levels) {
		return p.parseRange()
	}
	left := p.parseBinary(level + 1)
	for {
		op, ok := levels[level][p.cur().Type]
		if !ok {
			return left
		}
		p.next()
		right := p.parseBinary(level + 1)
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseRange() ast.Expression {
	start := p.parseAdditive()
	if p.check(token.DOTDOT) || p.check(token.DOTDOTEQ) {
		inclusive := p.check(token.DOTDOTEQ)
		p.next()
		return &ast.RangeExpr{Start: start, End: p.parseAdditive(), Inclusive: inclusive}
	}
	return start
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMul()
	for {
		op, ok := addOps[p.cur().Type]
		if !ok {
			return left
		}
		p.next()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: p.parseMul()}
	}
}

func (p *Parser) parseMul() ast.Expression {
	left := p.parsePostfix()
	for {
		op, ok := mulOps[p.cur().Type]
		if !ok {
			return left
		}
		p.next()
		left = &ast.BinaryExpr{Left: left, Op: op, Right: p.parsePostfix()}
	}
}

// parsePostfix parses a primary expression and its postfix chain: member
// access, method calls, indexing, and calls.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.DOT):
			p.next()
			member := p.expectIdent()
			id, isIdent := expr.(*ast.Identifier)
			switch {
			case isIdent && p.cat.isEnum(id.Name):
				var payload ast.Expression
				if p.match(token.LPAREN) {
					payload = p.parseExpression()
					p.expect(token.RPAREN)
				}
				expr = &ast.EnumVariantExpr{EnumName: id.Name, Variant: member, Payload: payload}
			case p.check(token.LPAREN):
				expr = &ast.MethodCallExpr{Object: expr, Method: member, Args: p.parseCallArgs()}
			default:
				expr = &ast.MemberExpr{Object: expr, Member: member}
			}

		case p.check(token.LBRACKET):
			p.next()
			index := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.IndexExpr{Array: expr, Index: index}

		case p.check(token.LPAREN):
			id, isIdent := expr.(*ast.Identifier)
			if !isIdent {
				return expr
			}
			args := p.parseCallArgs()
			if id.Name == "Some" && len(args) == 1 {
				expr = &ast.SomeExpr{Value: args[0]}
			} else {
				expr = &ast.CallExpr{Name: id.Name, Args: args}
			}

		default:
			return expr
		}
	}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	p.expect(token.LPAREN)
	var args []ast.Expression
	for !p.check(token.RPAREN) && !p.check(token.EOF) {
		args = append(args, p.parseExpression())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	switch {
	case p.check(token.NUMBER):
		lit := p.cur().Literal
		p.next()
		return p.numberLiteral(lit, false)

	case p.check(token.MINUS) && p.checkPeek(token.NUMBER):
		p.next()
		lit := p.cur().Literal
		p.next()
		return p.numberLiteral(lit, true)

	case p.check(token.STRING):
		lit := p.cur().Literal
		p.next()
		return p.stringLiteral(lit)

	case p.check(token.TRUE), p.check(token.FALSE):
		value := p.check(token.TRUE)
		p.next()
		return &ast.BoolLit{Value: value}

	case p.check(token.NONE):
		p.next()
		return &ast.NoneLit{}

	case p.check(token.SELF):
		p.next()
		return &ast.SelfRef{}

	case p.check(token.AT):
		p.next()
		name := p.expectIdent()
		if name == "std" {
			return &ast.StdRef{}
		}
		p.addError("unknown reference @" + name)
		return &ast.BadExpr{Kind: "@" + name}

	case p.check(token.DOT):
		// Leading-dot enum literal: .Variant or .Variant(payload)
		p.next()
		variant := p.expectIdent()
		var payload ast.Expression
		if p.match(token.LPAREN) {
			payload = p.parseExpression()
			p.expect(token.RPAREN)
		}
		return &ast.EnumLit{Variant: variant, Payload: payload}

	case p.check(token.IDENT):
		name := p.cur().Literal
		p.next()
		if p.check(token.LBRACE) && p.cat.isStruct(name) {
			return p.parseStructLiteral(name)
		}
		return &ast.Identifier{Name: name}

	case p.check(token.LPAREN):
		return p.parseParenOrClosure()

	case p.check(token.LBRACKET):
		p.next()
		arr := &ast.ArrayLit{}
		for !p.check(token.RBRACKET) && !p.check(token.EOF) {
			arr.Elements = append(arr.Elements, p.parseExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RBRACKET)
		return arr

	case p.check(token.LBRACE):
		return &ast.BlockExpr{Statements: p.parseBlock()}

	case p.check(token.LOOP):
		p.next()
		return &ast.LoopExpr{Body: p.parseExpression()}

	case p.check(token.FOR):
		return p.parseCollectionLoop()

	case p.check(token.RETURN):
		p.next()
		return &ast.ReturnExpr{Expr: p.parseExpression()}

	case p.check(token.BREAK):
		p.next()
		return &ast.BreakExpr{}

	case p.check(token.CONTINUE):
		p.next()
		return &ast.ContinueExpr{}

	case p.check(token.RAISE):
		p.next()
		return &ast.RaiseExpr{Value: p.parseExpression()}

	case p.check(token.COMPTIME):
		p.next()
		return &ast.ComptimeExpr{Expr: p.parseExpression()}
	}

	p.addError(fmt.Sprintf("unexpected token %s in expression", p.cur().Type))
	kind := p.cur().Type.String()
	p.next()
	return &ast.BadExpr{Kind: kind}
}

// parseParenOrClosure disambiguates "(params) => body" from a parenthesized
// expression by scanning ahead for "=>" after the matching parenthesis.
func (p *Parser) parseParenOrClosure() ast.Expression {
	if p.isClosureAhead() {
		p.expect(token.LPAREN)
		var params []ast.Param
		for !p.check(token.RPAREN) && !p.check(token.EOF) {
			name := p.expectIdent()
			var ty ast.Type
			if p.match(token.COLON) {
				ty = p.parseType()
			}
			params = append(params, ast.Param{Name: name, Type: ty})
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
		p.expect(token.FATARROW)
		return &ast.ClosureExpr{Params: params, Body: p.parseExpression()}
	}

	p.expect(token.LPAREN)
	if p.match(token.RPAREN) {
		return &ast.UnitLit{}
	}
	expr := p.parseExpression()
	p.expect(token.RPAREN)
	return expr
}

// isClosureAhead reports whether the current "(" opens a closure parameter
// list, i.e. its matching ")" is immediately followed by "=>".
func (p *Parser) isClosureAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		switch p.peekAt(i).Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.peekAt(i+1).Type == token.FATARROW
			}
		case token.EOF:
			return false
		}
	}
}

func (p *Parser) parseCollectionLoop() ast.Expression {
	p.expect(token.FOR)
	p.expect(token.LPAREN)
	param := p.expectIdent()
	indexParam := ""
	if p.match(token.COMMA) {
		indexParam = p.expectIdent()
	}
	p.expect(token.IN)
	coll := p.parseExpression()
	p.expect(token.RPAREN)
	return &ast.CollectionLoop{
		Collection: coll,
		Param:      param,
		IndexParam: indexParam,
		Body:       p.parseExpression(),
	}
}

// parseStructLiteral parses "{ field: expr, ... }" for a known struct,
// reordering the initializers into declaration order so the constructor
// receives its arguments positionally.
func (p *Parser) parseStructLiteral(name string) ast.Expression {
	p.expect(token.LBRACE)
	var given []ast.FieldInit
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		fieldName := p.expectIdent()
		p.expect(token.COLON)
		given = append(given, ast.FieldInit{Name: fieldName, Value: p.parseExpression()})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)

	ordered := make([]ast.FieldInit, 0, len(given))
	seen := make(map[string]bool, len(given))
	for _, declared := range p.cat.fieldOrder(name) {
		for _, f := range given {
			if f.Name == declared {
				ordered = append(ordered, f)
				seen[f.Name] = true
				break
			}
		}
	}
	for _, f := range given {
		if !seen[f.Name] {
			ordered = append(ordered, f)
		}
	}
	return &ast.StructLit{Name: name, Fields: ordered}
}

// ---------- Literals ----------

var intSuffixes = map[string]struct {
	bits     int
	unsigned bool
}{
	"i8":  {8, false},
	"i16": {16, false},
	"i32": {32, false},
	"i64": {64, false},
	"u8":  {8, true},
	"u16": {16, true},
	"u32": {32, true},
	"u64": {64, true},
}

// numberLiteral splits a numeric token into digits and width suffix.
func (p *Parser) numberLiteral(lit string, negative bool) ast.Expression {
	digits := lit
	suffix := ""
	if i := strings.IndexAny(lit, "iuf"); i >= 0 {
		digits, suffix = lit[:i], lit[i:]
	}
	if negative {
		digits = "-" + digits
	}

	switch {
	case suffix == "f32":
		return &ast.FloatLit{Text: digits, Bits: 32}
	case suffix == "f64":
		return &ast.FloatLit{Text: digits, Bits: 64}
	case suffix == "":
		if strings.Contains(digits, ".") {
			return &ast.FloatLit{Text: digits, Bits: 64}
		}
		return &ast.IntLit{Digits: digits, Bits: 32}
	}
	if s, ok := intSuffixes[suffix]; ok {
		return &ast.IntLit{Digits: digits, Bits: s.bits, Unsigned: s.unsigned}
	}
	p.addError(fmt.Sprintf(ErrInvalidNumber, lit))
	return &ast.IntLit{Digits: digits, Bits: 32}
}

// stringLiteral splits "$(expr)" interpolations out of a string token.
func (p *Parser) stringLiteral(lit string) ast.Expression {
	if !strings.Contains(lit, "$(") {
		return &ast.StringLit{Value: lit}
	}

	interp := &ast.InterpLit{}
	rest := lit
	for {
		i := strings.Index(rest, "$(")
		if i < 0 {
			break
		}
		if i > 0 {
			interp.Parts = append(interp.Parts, &ast.TextPart{Text: rest[:i]})
		}
		inner, after, ok := splitInterpolation(rest[i+2:])
		if !ok {
			p.addError("unterminated interpolation in string literal")
			return &ast.StringLit{Value: lit}
		}
		interp.Parts = append(interp.Parts, &ast.ExprPart{Expr: p.subExpression(inner)})
		rest = after
	}
	if rest != "" {
		interp.Parts = append(interp.Parts, &ast.TextPart{Text: rest})
	}
	return interp
}

// splitInterpolation finds the balanced closing parenthesis of an
// interpolation and returns the inner source and the remainder.
func splitInterpolation(s string) (inner, after string, ok bool) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return "", "", false
}

// subExpression parses an embedded expression with a child parser sharing
// this parser's catalog.
func (p *Parser) subExpression(src string) ast.Expression {
	sub := NewParser(src)
	sub.cat = p.cat
	expr := sub.parseExpression()
	p.errors = append(p.errors, sub.errors...)
	return expr
}
