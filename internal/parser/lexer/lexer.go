// Package lexer tokenizes a command-sequence string.
//
// The lexer is mode-aware: inside brackets it produces coordinate and
// keyword tokens, after a command name it produces raw parameter
// strings. A backslash escapes the character after it, which is how a
// parameter keeps a literal space.
package lexer

import (
	"fmt"

	"github.com/ceskyDJ/fit-izp-sps/internal/domain/errors"
)

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	IDENT  // command name or bracket keyword: set, min, max, find
	NUMBER // base-10 integer, possibly negative
	OPEN   // "_" or "-": open-ended coordinate
	STRING // raw parameter (escapes already resolved)

	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the input
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q)", t.Type, t.Literal)
}

type mode int

const (
	modeCommand mode = iota // expecting a command: name, '[' or ';'
	modeBracket             // inside a selection body
	modeParams              // reading space-separated parameters
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	mode         mode
	bracketArg   bool // next bracket token is a keyword argument string
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	switch l.mode {
	case modeBracket:
		return l.bracketToken()
	case modeParams:
		return l.paramToken()
	default:
		return l.commandToken()
	}
}

func (l *Lexer) commandToken() Token {
	for l.ch == ' ' {
		l.readChar()
	}

	tok := Token{Pos: l.position}

	switch {
	case l.ch == 0:
		tok.Type = EOF
	case l.ch == ';':
		tok.Type = SEMICOLON
		tok.Literal = ";"
		l.readChar()
	case l.ch == '[':
		tok.Type = LBRACKET
		tok.Literal = "["
		l.mode = modeBracket
		l.readChar()
	case isLetter(l.ch):
		tok.Type = IDENT
		tok.Literal = l.readIdentifier()
		if l.ch == ' ' {
			l.mode = modeParams
		}
	default:
		tok.Type = ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
	}

	return tok
}

func (l *Lexer) bracketToken() Token {
	tok := Token{Pos: l.position}

	if l.bracketArg {
		l.bracketArg = false
		return l.readBracketString()
	}

	switch {
	case l.ch == 0:
		tok.Type = EOF
	case l.ch == ']':
		tok.Type = RBRACKET
		tok.Literal = "]"
		l.mode = modeCommand
		l.readChar()
	case l.ch == ',':
		tok.Type = COMMA
		tok.Literal = ","
		l.readChar()
	case l.ch == '_':
		tok.Type = OPEN
		tok.Literal = "_"
		l.readChar()
	case l.ch == '-' && !isDigit(l.peekChar()):
		tok.Type = OPEN
		tok.Literal = "-"
		l.readChar()
	case isDigit(l.ch) || l.ch == '-':
		tok.Type = NUMBER
		tok.Literal = l.readNumber()
	case isLetter(l.ch):
		tok.Type = IDENT
		tok.Literal = l.readIdentifier()
		if l.ch == ' ' {
			// Keyword argument, e.g. [find NEEDLE]: the rest of the
			// body is one string.
			l.readChar()
			l.bracketArg = true
		}
	default:
		tok.Type = ILLEGAL
		tok.Literal = string(l.ch)
		l.readChar()
	}

	return tok
}

func (l *Lexer) readBracketString() Token {
	tok := Token{Type: STRING, Pos: l.position}

	var out []byte
	for l.ch != ']' {
		if l.ch == 0 {
			return Token{Type: ILLEGAL, Literal: "unterminated selection body", Pos: l.position}
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return Token{Type: ILLEGAL, Literal: "dangling backslash", Pos: l.position}
			}
		}
		out = append(out, l.ch)
		l.readChar()
	}
	tok.Literal = string(out)
	return tok
}

func (l *Lexer) paramToken() Token {
	for l.ch == ' ' {
		l.readChar()
	}

	tok := Token{Pos: l.position}

	switch l.ch {
	case 0:
		tok.Type = EOF
		l.mode = modeCommand
		return tok
	case ';':
		tok.Type = SEMICOLON
		tok.Literal = ";"
		l.mode = modeCommand
		l.readChar()
		return tok
	}

	var out []byte
	for l.ch != 0 && l.ch != ' ' && l.ch != ';' {
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				return Token{Type: ILLEGAL, Literal: "dangling backslash", Pos: l.position}
			}
		}
		out = append(out, l.ch)
		l.readChar()
	}
	if l.ch == ';' || l.ch == 0 {
		l.mode = modeCommand
	}
	tok.Type = STRING
	tok.Literal = string(out)
	return tok
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '-' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize runs the lexer over the whole input.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			break
		}
		if tok.Type == ILLEGAL {
			return nil, errors.NewMalformedInput("commands", tok.Pos,
				fmt.Sprintf("illegal token %q", tok.Literal))
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
