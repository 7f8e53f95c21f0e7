// Package parser parses Zen source into the AST consumed by the emitter.
//
// # Usage
//
//	prog, err := parser.Parse(source)
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser implements a recursive descent parser for the Zen subset the
// emitter lowers:
//
//	program      → declaration* statement*
//	declaration  → function | struct | enum | constant | alias | impl
//	             | export | import | comptime
//	function     → IDENT "=" "(" params ")" [type] block
//	struct       → IDENT "=" "struct" "{" (field | function)* "}"
//	enum         → IDENT "=" "enum" "{" (variant | function)* "}"
//	constant     → IDENT "::" expr
//	alias        → IDENT "=" "type" type
//	impl         → "impl" IDENT "{" function* "}"
//	export       → "export" "{" IDENT ("," IDENT)* "}"
//	import       → IDENT "=" "@" "import" "(" STRING ")"
//	comptime     → "comptime" block
//	statement    → IDENT ":=" expr | IDENT "::=" expr | "return" expr
//	             | "loop" [expr] block | "break" | "continue" | "defer" stmt
//	             | "{" IDENT ("," IDENT)* "}" ":=" expr | block
//	             | expr ["=" expr]
//	match        → expr "?" "{" arm ("," arm)* "}"
//	arm          → pattern ("|" pattern)* ["if" expr] "=>" expr
//
// At top level, IDENT "=" "(" always begins a function declaration.
package parser

import (
	"fmt"

	"github.com/zen-lang/zenjs/pkg/ast"
	"github.com/zen-lang/zenjs/pkg/token"
)

// Parser parses Zen source into an AST.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []error
	cat    *catalog
}

// NewParser creates a parser over the fully tokenized input.
func NewParser(src string) *Parser {
	toks, lexErrs := NewLexer(src).Tokenize()
	return &Parser{
		tokens: toks,
		errors: lexErrs,
		cat:    newCatalog(),
	}
}

// Parse parses a Zen source file and returns the program AST, or the first
// error encountered.
func Parse(src string) (*ast.Program, error) {
	p := NewParser(src)
	prog := p.parseProgram()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return prog, nil
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.check(token.EOF) {
		before := p.pos
		if decl, ok := p.parseDeclaration(); ok {
			prog.Declarations = append(prog.Declarations, decl)
		} else if stmt := p.parseStatement(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		// Never stall on input we cannot make sense of.
		if p.pos == before {
			p.next()
		}
	}
	return prog
}

// ---------- Token helpers ----------

// cur returns the current token. The stream always ends with EOF.
func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peekAt returns the token n positions ahead without advancing.
func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.cur().Type == t
}

// checkPeek returns true if the next token is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peekAt(1).Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.cur().Type, t))
	return false
}

// expectIdent consumes and returns an identifier spelling.
func (p *Parser) expectIdent() string {
	if p.check(token.IDENT) {
		name := p.cur().Literal
		p.next()
		return name
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.cur().Type, token.IDENT))
	return ""
}

// addError adds a parse error at the current position.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.cur().Pos,
		Message: msg,
	})
}
