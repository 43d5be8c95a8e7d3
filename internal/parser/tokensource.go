package parser

import "github.com/cwbudde/ccfront/pkg/token"

// tokenLexer is the minimal surface a Parser needs from the lexer, matching
// spec.md §4.D's TokenSource protocol: anything that yields tokens in
// source order is acceptable.
type tokenLexer interface {
	Next() token.Token
}

// tokenSource buffers tokens pulled from a tokenLexer so the parser can look
// one token ahead (the normal case) or two (the `primary ( abstract-declarator )`
// disambiguation spec.md §4.H calls out), and push a speculative read back
// if it turns out to be the wrong production.
type tokenSource struct {
	lex  tokenLexer
	buf  []token.Token
}

func newTokenSource(lex tokenLexer) *tokenSource {
	return &tokenSource{lex: lex}
}

func (ts *tokenSource) fill(n int) {
	for len(ts.buf) < n {
		ts.buf = append(ts.buf, ts.lex.Next())
	}
}

// Peek returns the token n positions ahead without consuming it (n=0 is the
// next token to be consumed).
func (ts *tokenSource) Peek(n int) token.Token {
	ts.fill(n + 1)
	return ts.buf[n]
}

// Next consumes and returns the next token.
func (ts *tokenSource) Next() token.Token {
	ts.fill(1)
	t := ts.buf[0]
	ts.buf = ts.buf[1:]
	return t
}

// PushBack reinserts a token at the front of the stream, for the two-token
// lookahead disambiguation case.
func (ts *tokenSource) PushBack(t token.Token) {
	ts.buf = append([]token.Token{t}, ts.buf...)
}
