package parser

import (
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/consteval"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/scope"
	"github.com/cwbudde/ccfront/pkg/token"
)

// parseStatement parses any one of C99 6.8's statement forms.
func (p *Parser) parseStatement() ast.Statement {
	pos := p.cur.Pos
	switch p.cur.Type {
	case token.LBRACE:
		return p.parseCompoundStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.CASE:
		return p.parseCaseStmt()
	case token.DEFAULT:
		return p.parseDefaultStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoWhileStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.GOTO:
		p.advance()
		label := p.expect(token.IDENT)
		p.expect(token.SEMICOLON)
		g := ast.NewGotoStmt(pos, label.Literal)
		p.gotos = append(p.gotos, g)
		return g
	case token.CONTINUE:
		p.advance()
		p.expect(token.SEMICOLON)
		if p.loopDepth == 0 {
			p.bag.Error(pos, diag.Control, "'continue' statement not in a loop")
		}
		return ast.NewContinueStmt(pos)
	case token.BREAK:
		p.advance()
		p.expect(token.SEMICOLON)
		if p.loopDepth == 0 && p.switchDepth == 0 {
			p.bag.Error(pos, diag.Control, "'break' statement not in a loop or a switch")
		}
		return ast.NewBreakStmt(pos)
	case token.RETURN:
		p.advance()
		var val ast.Expression
		if !p.at(token.SEMICOLON) {
			val = p.ParseExpression()
		}
		p.expect(token.SEMICOLON)
		return ast.NewReturnStmt(pos, val)
	case token.SEMICOLON:
		p.advance()
		return ast.NewNullStmt(pos)
	case token.IDENT:
		if p.toks.Peek(0).Type == token.COLON {
			label := p.cur.Literal
			p.advance()
			p.advance()
			stmt := p.parseStatement()
			ls := ast.NewLabeledStmt(pos, label, stmt)
			p.labels[label] = ls
			return ls
		}
	}
	if p.startsDeclSpec() {
		return p.parseLocalDecl()
	}
	p.discardCast = true
	e := p.ParseExpression()
	p.discardCast = false
	p.expect(token.SEMICOLON)
	return ast.NewExprStmt(pos, e)
}

// parseCompoundStmt parses a brace-delimited block, opening its own block
// scope per C99 6.8.2.
func (p *Parser) parseCompoundStmt() *ast.CompoundStmt {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	p.openScope(scope.BlockScope)
	var stmts []ast.Statement
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.closeScope()
	p.expect(token.RBRACE)
	return ast.NewCompoundStmt(pos, stmts)
}

func (p *Parser) parseIfStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	then := p.parseStatement()
	var els ast.Statement
	if p.accept(token.ELSE) {
		els = p.parseStatement()
	}
	return ast.NewIfStmt(pos, cond, then, els)
}

func (p *Parser) parseSwitchStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.expect(token.LPAREN)
	tag := p.ParseExpression()
	p.expect(token.RPAREN)

	p.switchDepth++
	prevCases, prevDefault := p.curCases, p.curDefault
	p.curCases, p.curDefault = nil, nil
	body := p.parseStatement()
	cases, def := p.curCases, p.curDefault
	p.curCases, p.curDefault = prevCases, prevDefault
	p.switchDepth--

	return ast.NewSwitchStmt(pos, tag, body, cases, def)
}

func (p *Parser) parseCaseStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	e := p.parseConditional()
	p.expect(token.COLON)
	val := consteval.EvalLong(p.bag, e)
	stmt := p.parseStatement()
	cs := ast.NewCaseStmt(pos, val, stmt)
	if p.switchDepth == 0 {
		p.bag.Error(pos, diag.Control, "'case' statement not in a switch statement")
	} else {
		p.curCases = append(p.curCases, cs)
	}
	return cs
}

func (p *Parser) parseDefaultStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.expect(token.COLON)
	stmt := p.parseStatement()
	ds := ast.NewDefaultStmt(pos, stmt)
	if p.switchDepth == 0 {
		p.bag.Error(pos, diag.Control, "'default' statement not in a switch statement")
	} else {
		p.curDefault = ds
	}
	return ds
}

func (p *Parser) parseWhileStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	return ast.NewWhileStmt(pos, cond, body)
}

func (p *Parser) parseDoWhileStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	cond := p.ParseExpression()
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return ast.NewDoWhileStmt(pos, body, cond)
}

func (p *Parser) parseForStmt() ast.Statement {
	pos := p.cur.Pos
	p.advance()
	p.expect(token.LPAREN)
	p.openScope(scope.BlockScope)

	var init ast.Statement
	if !p.at(token.SEMICOLON) {
		if p.startsDeclSpec() {
			init = p.parseLocalDecl()
		} else {
			e := p.ParseExpression()
			init = ast.NewExprStmt(pos, e)
			p.expect(token.SEMICOLON)
		}
	} else {
		p.advance()
	}

	var cond ast.Expression
	if !p.at(token.SEMICOLON) {
		cond = p.ParseExpression()
	}
	p.expect(token.SEMICOLON)

	var post ast.Expression
	if !p.at(token.RPAREN) {
		post = p.ParseExpression()
	}
	p.expect(token.RPAREN)

	p.loopDepth++
	body := p.parseStatement()
	p.loopDepth--

	p.closeScope()
	return ast.NewForStmt(pos, init, cond, post, body)
}
