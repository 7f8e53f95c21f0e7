// Package token defines the lexical tokens of the Zen source language.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 42i64, 3.14f32
	STRING // "hello" (raw content, interpolation split by the parser)

	// Operators and delimiters
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	CONCAT   // ++
	EQEQ     // ==
	NE       // !=
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	AMPAMP   // &&
	PIPEPIPE // ||
	AMP      // &
	PIPE     // |
	CARET    // ^
	SHL      // <<
	SHR      // >>
	ASSIGN   // =
	DECLARE  // :=
	MUTDECL  // ::=
	DCOLON   // ::
	COLON    // :
	COMMA    // ,
	DOT      // .
	DOTDOT   // ..
	DOTDOTEQ // ..=
	QUESTION // ?
	FATARROW // =>
	AT       // @
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	UNDER    // _

	// Keywords
	STRUCT
	ENUM
	IMPL
	EXPORT
	COMPTIME
	TYPEKW
	LOOP
	FOR
	IN
	RETURN
	BREAK
	CONTINUE
	DEFER
	RAISE
	IF
	TRUE
	FALSE
	NONE
	SELF
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	CONCAT:   "++",
	EQEQ:     "==",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	AMPAMP:   "&&",
	PIPEPIPE: "||",
	AMP:      "&",
	PIPE:     "|",
	CARET:    "^",
	SHL:      "<<",
	SHR:      ">>",
	ASSIGN:   "=",
	DECLARE:  ":=",
	MUTDECL:  "::=",
	DCOLON:   "::",
	COLON:    ":",
	COMMA:    ",",
	DOT:      ".",
	DOTDOT:   "..",
	DOTDOTEQ: "..=",
	QUESTION: "?",
	FATARROW: "=>",
	AT:       "@",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	LBRACKET: "[",
	RBRACKET: "]",
	UNDER:    "_",

	STRUCT:   "struct",
	ENUM:     "enum",
	IMPL:     "impl",
	EXPORT:   "export",
	COMPTIME: "comptime",
	TYPEKW:   "type",
	LOOP:     "loop",
	FOR:      "for",
	IN:       "in",
	RETURN:   "return",
	BREAK:    "break",
	CONTINUE: "continue",
	DEFER:    "defer",
	RAISE:    "raise",
	IF:       "if",
	TRUE:     "true",
	FALSE:    "false",
	NONE:     "None",
	SELF:     "self",
}

// keywords maps identifier spellings to keyword token types.
var keywords = map[string]TokenType{
	"struct":   STRUCT,
	"enum":     ENUM,
	"impl":     IMPL,
	"export":   EXPORT,
	"comptime": COMPTIME,
	"type":     TYPEKW,
	"loop":     LOOP,
	"for":      FOR,
	"in":       IN,
	"return":   RETURN,
	"break":    BREAK,
	"continue": CONTINUE,
	"defer":    DEFER,
	"raise":    RAISE,
	"if":       IF,
	"true":     TRUE,
	"false":    FALSE,
	"None":     NONE,
	"self":     SELF,
}

// LookupIdent returns the keyword token type for an identifier spelling,
// or IDENT if it is not a keyword.
func LookupIdent(ident string) TokenType {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}

// Token represents a lexical token with its position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
