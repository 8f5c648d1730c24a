// Package javasrc scans Java source files into the declaration model. It is
// not a full Java parser: it understands just enough of the language to
// recover package, imports, type headers and public method signatures, with
// their attached doc comments.
package javasrc

import "github.com/aunkrig/antdoclet/decl"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWhitespace
	TokenComment     // block comment, including doc comments
	TokenLineComment // // comment
	TokenIdent       // identifiers and keywords
	TokenNumber
	TokenString
	TokenChar
	TokenPunct // single operator or separator character
)

type Token struct {
	Kind    TokenKind
	Literal string
	Pos     decl.Position
}

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) position() decl.Position {
	return decl.Position{File: l.file, Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// NextToken returns the next raw token, whitespace and comments included.
func (l *Lexer) NextToken() Token {
	start := l.position()
	startOffset := l.pos

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Pos: start}
	}

	ch := l.peek()

	if ch == '/' && l.peekN(1) == '/' {
		for l.peek() != 0 && l.peek() != '\n' {
			l.advance()
		}
		return Token{Kind: TokenLineComment, Literal: string(l.input[startOffset:l.pos]), Pos: start}
	}

	if ch == '/' && l.peekN(1) == '*' {
		l.advanceN(2)
		for l.peek() != 0 {
			if l.peek() == '*' && l.peekN(1) == '/' {
				l.advanceN(2)
				break
			}
			l.advance()
		}
		return Token{Kind: TokenComment, Literal: string(l.input[startOffset:l.pos]), Pos: start}
	}

	if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
		for {
			ch := l.peek()
			if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
				break
			}
			l.advance()
		}
		return Token{Kind: TokenWhitespace, Literal: string(l.input[startOffset:l.pos]), Pos: start}
	}

	if isJavaLetter(ch) {
		for isJavaLetter(l.peek()) || isDigit(l.peek()) {
			l.advance()
		}
		return Token{Kind: TokenIdent, Literal: string(l.input[startOffset:l.pos]), Pos: start}
	}

	if isDigit(ch) {
		for isDigit(l.peek()) || isJavaLetter(l.peek()) || l.peek() == '.' ||
			((l.peek() == '+' || l.peek() == '-') && (l.input[l.pos-1] == 'e' || l.input[l.pos-1] == 'E')) {
			l.advance()
		}
		return Token{Kind: TokenNumber, Literal: string(l.input[startOffset:l.pos]), Pos: start}
	}

	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(start, startOffset)
		}
		return l.scanQuoted('"', TokenString, start, startOffset)
	}

	if ch == '\'' {
		return l.scanQuoted('\'', TokenChar, start, startOffset)
	}

	l.advance()
	return Token{Kind: TokenPunct, Literal: string(l.input[startOffset:l.pos]), Pos: start}
}

func (l *Lexer) scanQuoted(quote byte, kind TokenKind, start decl.Position, startOffset int) Token {
	l.advance()
	for l.peek() != 0 {
		ch := l.advance()
		if ch == '\\' {
			l.advance()
			continue
		}
		if ch == quote {
			break
		}
	}
	return Token{Kind: kind, Literal: string(l.input[startOffset:l.pos]), Pos: start}
}

func (l *Lexer) scanTextBlock(start decl.Position, startOffset int) Token {
	l.advanceN(3)
	for l.peek() != 0 {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return Token{Kind: TokenString, Literal: string(l.input[startOffset:l.pos]), Pos: start}
}

func isJavaLetter(ch byte) bool {
	return ch == '_' || ch == '$' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
