// Package lexer converts a source.Stream into a sequence of tokens using
// greedy, longest-match rules (spec.md §4.C).
package lexer

import (
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/source"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
)

// Lexer scans one source.Stream into tokens. It holds no lookahead buffer of
// its own — that is TokenSource's job (spec.md §4.D); Lexer only knows how
// to produce the next token.
type Lexer struct {
	src      *source.Stream
	bag      *diag.Bag
	interner *uchar.Interner

	keepComments bool
}

// Option configures a Lexer at construction time, mirroring the teacher's
// functional-options LexerOption pattern.
type Option func(*Lexer)

// WithKeepComments records whether comments are to be kept. Next does not
// consult the setting: comments are always discarded and no COMMENT token
// is emitted.
func WithKeepComments(keep bool) Option {
	return func(l *Lexer) { l.keepComments = keep }
}

// New creates a Lexer over src, reporting through bag and interning
// string-literal content through interner.
func New(src *source.Stream, bag *diag.Bag, interner *uchar.Interner, opts ...Option) *Lexer {
	l := &Lexer{src: src, bag: bag, interner: interner}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next scans and returns the next token. Lexical errors (unterminated
// literal, unknown escape, unknown character) are fatal per spec.md §7 and
// unwind via diag.Bag.Error; callers at a parse entry point must have a
// deferred bag.Recover.
func (l *Lexer) Next() token.Token {
	for {
		mask := l.src.SkipSpace()
		_ = mask // whitespace, newlines and comments are dropped; no token is emitted for them.

		startPos := l.src.SourceLoc()
		ch := l.src.Peek()

		switch {
		case ch == uchar.Invalid:
			return l.emit(token.EOF, "", startPos)

		case ch.IsDigit():
			return l.lexNumber(startPos)

		case ch == '.':
			// Could be '.', '...', or the start of a pp-number like ".5".
			l.src.Get()
			if l.src.Peek().IsDigit() {
				return l.lexNumberFrom(startPos, ".")
			}
			if l.src.Want('.') {
				if l.src.Want('.') {
					return l.emit(token.ELLIPSIS, "...", startPos)
				}
				l.bag.Error(startPos, diag.Lexical, "unexpected character '.'")
			}
			return l.emit(token.DOT, ".", startPos)

		case ch.IsAlpha():
			if (ch == 'L' || ch == 'u' || ch == 'U') && l.peekIsQuoteAfterPrefix() {
				return l.lexPrefixedLiteral(startPos)
			}
			return l.lexIdentifier(startPos)

		case ch == '\'':
			return l.lexChar(startPos, "")

		case ch == '"':
			return l.lexString(startPos, "")

		default:
			return l.lexPunct(startPos)
		}
	}
}

func (l *Lexer) emit(typ token.Type, literal string, pos token.Position) token.Token {
	pos.Length = l.src.Pos() - pos.Offset
	return token.New(typ, literal, pos)
}

// peekIsQuoteAfterPrefix reports whether the current 'L'/'u'/'U' character
// is immediately followed by a quote, making it a wide/prefixed literal
// rather than an ordinary identifier starting with that letter.
func (l *Lexer) peekIsQuoteAfterPrefix() bool {
	// We can't look two characters ahead through Stream directly, so we
	// speculatively consume the prefix letter, check, and unget if it turns
	// out to be a plain identifier.
	prefix := l.src.Get()
	next := l.src.Peek()
	isLiteral := next == '\'' || next == '"'
	l.src.Unget(prefix)
	return isLiteral
}

func (l *Lexer) lexPrefixedLiteral(startPos token.Position) token.Token {
	prefix := l.src.Get()
	if l.src.Peek() == '\'' {
		return l.lexChar(startPos, string(rune(prefix)))
	}
	return l.lexString(startPos, string(rune(prefix)))
}
