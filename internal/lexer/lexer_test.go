package lexer

import (
	"testing"

	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/source"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag("t.c", src)
	l := New(source.New("t.c", src), bag, uchar.NewInterner())

	var toks []token.Token
	func() {
		defer bag.Recover()
		for {
			tok := l.Next()
			toks = append(toks, tok)
			if tok.Type == token.EOF {
				break
			}
		}
	}()
	return toks, bag
}

func TestLexIdentifiersAndKeywords(t *testing.T) {
	toks, bag := lexAll(t, "int foo_bar return2 _Bool")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.INT, "int"},
		{token.IDENT, "foo_bar"},
		{token.IDENT, "return2"},
		{token.BOOL, "_Bool"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Errorf("token %d = %s(%q), want %s(%q)", i, toks[i].Type, toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	toks, bag := lexAll(t, "123 0x1F 1.5 1e10 .5 1.")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []struct {
		typ     token.Type
		literal string
	}{
		{token.PP_NUMBER, "123"},
		{token.PP_NUMBER, "0x1F"},
		{token.PP_FLOAT, "1.5"},
		{token.PP_FLOAT, "1e10"},
		{token.PP_FLOAT, ".5"},
		{token.PP_FLOAT, "1."},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.typ || toks[i].Literal != w.literal {
			t.Errorf("token %d = %s(%q), want %s(%q)", i, toks[i].Type, toks[i].Literal, w.typ, w.literal)
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, bag := lexAll(t, `"a\tb\n" 'x' '\n'`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	if toks[0].Type != token.STRING || toks[0].Literal != "a\tb\n" {
		t.Errorf("string = %s(%q)", toks[0].Type, toks[0].Literal)
	}
	if toks[1].Type != token.CHAR || toks[1].Literal != "x" {
		t.Errorf("char = %s(%q)", toks[1].Type, toks[1].Literal)
	}
	if toks[2].Type != token.CHAR || toks[2].Literal != "\n" {
		t.Errorf("char = %s(%q)", toks[2].Type, toks[2].Literal)
	}
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	_, bag := lexAll(t, `"abc`)
	if !bag.HasErrors() {
		t.Fatal("expected an unterminated-string error")
	}
}

func TestLexDigraphsFoldToPunctuators(t *testing.T) {
	toks, bag := lexAll(t, "<: :> <% %> %: %:%:")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []token.Type{token.LBRACK, token.RBRACK, token.LBRACE, token.RBRACE, token.HASH, token.HHASH, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestLexOperatorsLongestMatch(t *testing.T) {
	toks, bag := lexAll(t, "<<= >>= -> ++ -- && || == != <= >=")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []token.Type{
		token.SHL_ASSIGN, token.SHR_ASSIGN, token.ARROW, token.INC, token.DEC,
		token.LAND, token.LOR, token.EQL, token.NEQ, token.LEQ, token.GEQ,
		token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestLexCommentsAreSkipped(t *testing.T) {
	toks, bag := lexAll(t, "int /* comment */ x; // trailing\ny;")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []token.Type{token.INT, token.IDENT, token.SEMICOLON, token.IDENT, token.SEMICOLON, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}

func TestLexWidePrefixedLiterals(t *testing.T) {
	toks, bag := lexAll(t, `L"wide" u'c' U"utf32"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []token.Type{token.STRING, token.CHAR, token.STRING, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}

func TestLexTrigraphFolding(t *testing.T) {
	// ??( folds to '[', ??) folds to ']', per C99 5.2.1.1.
	toks, bag := lexAll(t, "a??(0??)")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	want := []token.Type{token.IDENT, token.LBRACK, token.PP_NUMBER, token.RBRACK, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
}
