package ir_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/ir"
	"github.com/cwbudde/ccfront/internal/lexer"
	"github.com/cwbudde/ccfront/internal/parser"
	"github.com/cwbudde/ccfront/internal/source"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/gkampitakis/go-snaps/snaps"
)

func renderIR(t *testing.T, src string) string {
	t.Helper()
	bag := diag.NewBag("test.c", src)
	stream := source.New("test.c", src)
	lex := lexer.New(stream, bag, uchar.NewInterner())
	p := parser.New(lex, bag)
	prog, ok := p.Parse()
	if !ok || bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %+v", bag.Diagnostics)
	}
	var sb strings.Builder
	ir.NewPrinter(&sb).Print(prog)
	return sb.String()
}

func TestPrinterSimpleFunctionSnapshot(t *testing.T) {
	out := renderIR(t, `
int add(int a, int b) {
    int c = a + b;
    return c;
}
`)
	snaps.MatchSnapshot(t, "add_function", out)
}

func TestPrinterControlFlowSnapshot(t *testing.T) {
	out := renderIR(t, `
int classify(int n) {
    if (n < 0) {
        return -1;
    } else {
        return 1;
    }
}
`)
	snaps.MatchSnapshot(t, "classify_function", out)
}
