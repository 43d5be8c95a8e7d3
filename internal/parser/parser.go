// Package parser implements the recursive-descent, one-token-lookahead
// parser (two tokens only for the `primary ( abstract-declarator )`
// disambiguation) that turns a token stream into a typed ast.Program,
// applying C99's semantic construction rules as each node is built.
package parser

import (
	"github.com/cwbudde/ccfront/internal/arena"
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/intern"
	"github.com/cwbudde/ccfront/internal/scope"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// Parser holds everything one translation-unit parse needs: the buffered
// token source, the diagnostic sink, and the scope chain. It also creates a
// name interner and an arena, but no parsing step interns through the one
// or allocates from the other; nodes and types are ordinary Go values.
type Parser struct {
	toks *tokenSource
	bag  *diag.Bag
	intr *intern.Table
	mem  *arena.Arena

	cur  token.Token
	file *scope.Scope
	sc   *scope.Scope

	loopDepth   int
	switchDepth int
	labels      map[string]*ast.LabeledStmt
	gotos       []*ast.GotoStmt

	// curCases/curDefault accumulate the case/default labels seen while
	// parsing the body of the innermost switch statement; parseSwitchStmt
	// saves and restores these around nested switches.
	curCases   []*ast.CaseStmt
	curDefault *ast.DefaultStmt

	// discardCast is set around parsing an expression statement's
	// expression; the next cast constructed consumes it, marking a
	// void-destination cast like "(void)f();" as the discarded form
	// C99 6.5.4 permits instead of a dangling diagnostic.
	discardCast bool
}

// New creates a Parser reading tokens from lex and reporting diagnostics
// through bag.
func New(lex tokenLexer, bag *diag.Bag) *Parser {
	file := scope.New(scope.FileScope, nil)
	p := &Parser{
		toks:   newTokenSource(lex),
		bag:    bag,
		intr:   intern.New(),
		mem:    arena.New(),
		file:   file,
		sc:     file,
		labels: make(map[string]*ast.LabeledStmt),
	}
	p.advance()
	return p
}

func (p *Parser) advance() { p.cur = p.toks.Next() }

func (p *Parser) at(t token.Type) bool { return p.cur.Type == t }

func (p *Parser) accept(t token.Type) bool {
	if p.at(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(t token.Type) token.Token {
	if !p.at(t) {
		p.bag.Error(p.cur.Pos, diag.Syntactic, "expected %s, found %s", t, p.cur.Type)
	}
	tok := p.cur
	p.advance()
	return tok
}

// Parse parses a complete translation unit, recovering any fatal
// diagnostic (spec.md §9's throw/catch unwind discipline) at this single
// top-level entry point.
func (p *Parser) Parse() (prog *ast.Program, ok bool) {
	defer p.bag.Recover()
	prog = &ast.Program{}
	for !p.at(token.EOF) {
		d := p.parseExternalDecl()
		if d != nil {
			prog.Decls = append(prog.Decls, d)
		}
	}
	return prog, !p.bag.HasErrors()
}

func (p *Parser) openScope(typ scope.Type) *scope.Scope {
	s := scope.New(typ, p.sc)
	p.sc = s
	return s
}

func (p *Parser) closeScope() { p.sc = p.sc.Parent() }
