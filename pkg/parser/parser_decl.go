package parser

import (
	"fmt"

	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/token"
)

// parseDeclaration recognizes a top-level declaration by lookahead and
// parses it. It reports false when the tokens begin a statement instead.
func (p *Parser) parseDeclaration() (ast.Declaration, bool) {
	switch {
	case p.check(token.IMPL):
		return p.parseImplBlock(), true
	case p.check(token.EXPORT):
		return p.parseExport(), true
	case p.check(token.COMPTIME) && p.checkPeek(token.LBRACE):
		p.next()
		return &ast.ComptimeBlock{Body: p.parseBlock()}, true
	case p.check(token.IDENT) && p.checkPeek(token.DCOLON):
		return p.parseConstant(), true
	case p.check(token.IDENT) && p.checkPeek(token.ASSIGN):
		switch p.peekAt(2).Type {
		case token.STRUCT:
			return p.parseStruct(), true
		case token.ENUM:
			return p.parseEnum(), true
		case token.TYPEKW:
			return p.parseTypeAlias(), true
		case token.AT:
			return p.parseModuleImport(), true
		case token.LPAREN:
			return p.parseFunction(), true
		}
	}
	return nil, false
}

// parseFunction parses IDENT "=" "(" params ")" [type] block. Struct, enum
// and impl methods use the same form.
func (p *Parser) parseFunction() *ast.Function {
	name := p.expectIdent()
	p.expect(token.ASSIGN)
	p.expect(token.LPAREN)
	params := p.parseParams()
	p.expect(token.RPAREN)

	var ret ast.Type
	if !p.check(token.LBRACE) {
		ret = p.parseType()
	}

	return &ast.Function{
		Name:       name,
		Params:     params,
		ReturnType: ret,
		Body:       p.parseBlock(),
	}
}

func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	for !p.check(token.RPAREN) && !p.check(token.EOF) {
		if p.match(token.SELF) {
			params = append(params, ast.Param{Name: "self"})
		} else {
			name := p.expectIdent()
			var ty ast.Type
			if p.match(token.COLON) {
				ty = p.parseType()
			}
			params = append(params, ast.Param{Name: name, Type: ty})
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

func (p *Parser) parseStruct() *ast.StructDecl {
	name := p.expectIdent()
	p.expect(token.ASSIGN)
	p.expect(token.STRUCT)
	p.expect(token.LBRACE)

	decl := &ast.StructDecl{Name: name}
	// Register early so methods and defaults can refer to the struct.
	p.cat.addStruct(name, nil)

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.check(token.IDENT) && p.checkPeek(token.ASSIGN) {
			decl.Methods = append(decl.Methods, p.parseFunction())
			continue
		}
		fieldName := p.expectIdent()
		p.expect(token.COLON)
		ty := p.parseType()
		var def ast.Expression
		if p.match(token.ASSIGN) {
			def = p.parseExpression()
		}
		decl.Fields = append(decl.Fields, ast.Field{Name: fieldName, Type: ty, Default: def})
		p.match(token.COMMA)
	}
	p.expect(token.RBRACE)

	fields := make([]string, len(decl.Fields))
	for i, f := range decl.Fields {
		fields[i] = f.Name
	}
	p.cat.addStruct(name, fields)
	return decl
}

func (p *Parser) parseEnum() *ast.EnumDecl {
	name := p.expectIdent()
	p.expect(token.ASSIGN)
	p.expect(token.ENUM)
	p.expect(token.LBRACE)

	decl := &ast.EnumDecl{Name: name}
	p.cat.addEnum(name)

	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.check(token.IDENT) && p.checkPeek(token.ASSIGN) {
			decl.Methods = append(decl.Methods, p.parseFunction())
			continue
		}
		variant := p.expectIdent()
		var payload ast.Type
		if p.match(token.LPAREN) {
			payload = p.parseType()
			p.expect(token.RPAREN)
		}
		decl.Variants = append(decl.Variants, ast.EnumVariantDef{Name: variant, Payload: payload})
		p.match(token.COMMA)
	}
	p.expect(token.RBRACE)
	return decl
}

func (p *Parser) parseConstant() *ast.ConstantDecl {
	name := p.expectIdent()
	p.expect(token.DCOLON)
	return &ast.ConstantDecl{Name: name, Value: p.parseExpression()}
}

func (p *Parser) parseTypeAlias() *ast.TypeAlias {
	name := p.expectIdent()
	p.expect(token.ASSIGN)
	p.expect(token.TYPEKW)
	return &ast.TypeAlias{Name: name, Target: p.parseType()}
}

func (p *Parser) parseModuleImport() ast.Declaration {
	alias := p.expectIdent()
	p.expect(token.ASSIGN)
	p.expect(token.AT)
	directive := p.expectIdent()
	if directive != "import" {
		p.addError("unknown directive @" + directive)
		return &ast.BadDecl{Kind: "@" + directive}
	}
	p.expect(token.LPAREN)
	path := ""
	if p.check(token.STRING) {
		path = p.cur().Literal
		p.next()
	} else {
		p.addError("expected module path string")
	}
	p.expect(token.RPAREN)
	return &ast.ModuleImport{Alias: alias, ModulePath: path}
}

func (p *Parser) parseImplBlock() *ast.ImplBlock {
	p.expect(token.IMPL)
	decl := &ast.ImplBlock{TypeName: p.expectIdent()}
	p.expect(token.LBRACE)
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		decl.Methods = append(decl.Methods, p.parseFunction())
	}
	p.expect(token.RBRACE)
	return decl
}

func (p *Parser) parseExport() *ast.ExportDecl {
	p.expect(token.EXPORT)
	p.expect(token.LBRACE)
	decl := &ast.ExportDecl{}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		decl.Symbols = append(decl.Symbols, p.expectIdent())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return decl
}

// ---------- Types ----------

var primitiveKinds = map[string]ast.PrimKind{
	"i8":     ast.I8,
	"i16":    ast.I16,
	"i32":    ast.I32,
	"i64":    ast.I64,
	"u8":     ast.U8,
	"u16":    ast.U16,
	"u32":    ast.U32,
	"u64":    ast.U64,
	"usize":  ast.Usize,
	"f32":    ast.F32,
	"f64":    ast.F64,
	"bool":   ast.Bool,
	"string": ast.String,
	"void":   ast.Void,
}

func (p *Parser) parseType() ast.Type {
	switch {
	case p.match(token.AMP):
		return &ast.RefType{Elem: p.parseType()}

	case p.match(token.LBRACKET):
		if p.check(token.NUMBER) {
			size := 0
			for _, ch := range p.cur().Literal {
				if ch < '0' || ch > '9' {
					p.addError(fmt.Sprintf(ErrInvalidNumber, p.cur().Literal))
					break
				}
				size = size*10 + int(ch-'0')
			}
			p.next()
			p.expect(token.RBRACKET)
			return &ast.FixedArray{Elem: p.parseType(), Size: size}
		}
		p.expect(token.RBRACKET)
		return &ast.Slice{Elem: p.parseType()}

	case p.check(token.IDENT):
		name := p.cur().Literal
		p.next()
		if kind, ok := primitiveKinds[name]; ok {
			return &ast.Primitive{Kind: kind}
		}
		if p.match(token.LT) {
			gen := &ast.GenericType{Name: name}
			for !p.check(token.GT) && !p.check(token.EOF) {
				gen.Args = append(gen.Args, p.parseType())
				if !p.match(token.COMMA) {
					break
				}
			}
			p.expect(token.GT)
			return gen
		}
		return &ast.NamedType{Name: name}
	}

	p.addError("expected type")
	p.next()
	return &ast.NamedType{Name: "unknown"}
}
