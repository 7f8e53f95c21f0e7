package parser

import (
	"fmt"

	"github.com/zen-lang/zenjs/pkg/token"
)

// Lexer tokenizes Zen input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	errors []error
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokenize consumes the whole input and returns the token stream, terminated
// by an EOF token. Lexical errors are reported alongside the tokens so the
// parser can surface the first one.
func (l *Lexer) Tokenize() ([]token.Token, []error) {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, l.errors
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Pos: pos}
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			return l.emit(token.CONCAT, "++", pos)
		}
		return l.emit(token.PLUS, "+", pos)
	case '-':
		return l.emit(token.MINUS, "-", pos)
	case '*':
		return l.emit(token.STAR, "*", pos)
	case '/':
		return l.emit(token.SLASH, "/", pos)
	case '%':
		return l.emit(token.PERCENT, "%", pos)
	case '^':
		return l.emit(token.CARET, "^", pos)
	case '=':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.EQEQ, "==", pos)
		case '>':
			l.readChar()
			return l.emit(token.FATARROW, "=>", pos)
		}
		return l.emit(token.ASSIGN, "=", pos)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.emit(token.NE, "!=", pos)
		}
		l.errorf(pos, ErrUnexpectedChar, "!")
		return l.emit(token.ILLEGAL, "!", pos)
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.LE, "<=", pos)
		case '<':
			l.readChar()
			return l.emit(token.SHL, "<<", pos)
		}
		return l.emit(token.LT, "<", pos)
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.GE, ">=", pos)
		case '>':
			l.readChar()
			return l.emit(token.SHR, ">>", pos)
		}
		return l.emit(token.GT, ">", pos)
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			return l.emit(token.AMPAMP, "&&", pos)
		}
		return l.emit(token.AMP, "&", pos)
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			return l.emit(token.PIPEPIPE, "||", pos)
		}
		return l.emit(token.PIPE, "|", pos)
	case ':':
		switch l.peekChar() {
		case '=':
			l.readChar()
			return l.emit(token.DECLARE, ":=", pos)
		case ':':
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.MUTDECL, "::=", pos)
			}
			return l.emit(token.DCOLON, "::", pos)
		}
		return l.emit(token.COLON, ":", pos)
	case '.':
		if l.peekChar() == '.' {
			l.readChar()
			if l.peekChar() == '=' {
				l.readChar()
				return l.emit(token.DOTDOTEQ, "..=", pos)
			}
			return l.emit(token.DOTDOT, "..", pos)
		}
		return l.emit(token.DOT, ".", pos)
	case '?':
		return l.emit(token.QUESTION, "?", pos)
	case '@':
		return l.emit(token.AT, "@", pos)
	case ',':
		return l.emit(token.COMMA, ",", pos)
	case '(':
		return l.emit(token.LPAREN, "(", pos)
	case ')':
		return l.emit(token.RPAREN, ")", pos)
	case '{':
		return l.emit(token.LBRACE, "{", pos)
	case '}':
		return l.emit(token.RBRACE, "}", pos)
	case '[':
		return l.emit(token.LBRACKET, "[", pos)
	case ']':
		return l.emit(token.RBRACKET, "]", pos)
	case '"':
		return l.readString(pos)
	}

	if isDigit(l.ch) {
		return l.readNumber(pos)
	}
	if isIdentStart(l.ch) {
		return l.readIdentifier(pos)
	}

	ch := string(l.ch)
	l.errorf(pos, ErrUnexpectedChar, ch)
	l.readChar()
	return token.Token{Type: token.ILLEGAL, Literal: ch, Pos: pos}
}

// emit consumes the current character(s) already matched and returns a token.
func (l *Lexer) emit(t token.TokenType, literal string, pos token.Position) token.Token {
	l.readChar()
	return token.Token{Type: t, Literal: literal, Pos: pos}
}

// readString reads a double-quoted string literal, resolving standard
// escapes. Interpolation markers ($( ... )) are kept verbatim; the parser
// splits them out.
func (l *Lexer) readString(pos token.Position) token.Token {
	var out []byte
	l.readChar() // consume opening quote
	for l.ch != '"' {
		if l.ch == 0 {
			l.errorf(pos, ErrUnterminatedString)
			return token.Token{Type: token.ILLEGAL, Literal: string(out), Pos: pos}
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				out = append(out, '\\', l.ch)
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Literal: string(out), Pos: pos}
}

// readNumber reads digits, an optional fraction, and an optional width
// suffix (i8..i64, u8..u64, f32, f64). The literal keeps the suffix; the
// parser splits it off.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	// A fraction needs a digit after the dot; ".." starts a range instead.
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.pos], Pos: pos}
}

func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.pos]
	if lit == "_" {
		return token.Token{Type: token.UNDER, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Pos: pos}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) {
	l.errors = append(l.errors, &LexError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
