package lexer

import (
	"strings"

	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
)

// lexIdentifier scans an identifier or keyword starting at the current
// position: a leading letter/underscore/'$'/non-ASCII character, extended by
// any run of alnum/non-ASCII characters and universal character names
// (\uHHHH, \UHHHHHHHH), per spec.md §4.C.
func (l *Lexer) lexIdentifier(startPos token.Position) token.Token {
	var sb strings.Builder

	for {
		ch := l.src.Peek()
		switch {
		case ch.IsAlnum():
			sb.WriteString(string(l.src.Get().Bytes()))
		case ch == '\\' && l.peekIsUCN():
			sb.WriteRune(rune(l.lexUCN(startPos)))
		default:
			lit := sb.String()
			return l.emit(token.Lookup(lit), lit, startPos)
		}
	}
}

// peekIsUCN reports whether the character at the current position begins a
// universal character name (\u or \U), without consuming anything.
func (l *Lexer) peekIsUCN() bool {
	backslash := l.src.Get()
	next := l.src.Peek()
	isUCN := next == 'u' || next == 'U'
	l.src.Unget(backslash)
	return isUCN
}

// lexUCN consumes a \uHHHH or \UHHHHHHHH escape and returns the codepoint it
// names. The backslash must still be unconsumed when this is called.
func (l *Lexer) lexUCN(startPos token.Position) uchar.Char {
	l.src.Get() // '\\'
	kind := l.src.Get() // 'u' or 'U'

	digits := 4
	if kind == 'U' {
		digits = 8
	}

	val := 0
	for i := 0; i < digits; i++ {
		ch := l.src.Peek()
		if !ch.IsHexDigit() {
			l.bag.Error(startPos, diag.Lexical, "incomplete universal character name")
		}
		val = val<<4 | ch.ToHex()
		l.src.Get()
	}
	return uchar.Char(val)
}
