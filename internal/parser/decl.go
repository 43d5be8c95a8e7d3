package parser

import (
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/scope"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// parseExternalDecl parses one top-level external-declaration: a function
// definition, a declaration (possibly introducing several declarators off
// one specifier sequence), or a standalone struct/union/enum tag
// declaration ("struct point { int x, y; };" with no declarator at all).
func (p *Parser) parseExternalDecl() ast.Decl {
	pos := p.cur.Pos
	ds := p.parseDeclSpecifiers()

	if p.accept(token.SEMICOLON) {
		return ast.NewTagDecl(pos, ds.base.Type)
	}

	nameTok, build, _ := p.parseDeclaratorInner()
	ty := build(ds.base)

	if ds.sc == types.SCTypedef {
		return p.finishTypedefDecl(nameTok, ty, ds)
	}

	if ft, ok := ty.Type.(*types.FuncType); ok && p.at(token.LBRACE) {
		return p.parseFunctionDefinition(nameTok, ft, ds.sc)
	}

	decl := p.declareOneVarOrFunc(nameTok, ty, ds)
	for p.accept(token.COMMA) {
		n2, b2, _ := p.parseDeclaratorInner()
		ty2 := b2(ds.base)
		p.declareOneVarOrFunc(n2, ty2, ds)
	}
	p.expect(token.SEMICOLON)
	return decl
}

func (p *Parser) finishTypedefDecl(nameTok token.Token, ty types.QualType, ds declSpec) ast.Decl {
	td := ast.NewTypedefDecl(nameTok.Pos, nameTok.Literal, ty)
	p.sc.Declare(p.bag, nameTok.Pos, td)
	for p.accept(token.COMMA) {
		n2, b2, _ := p.parseDeclaratorInner()
		ty2 := b2(ds.base)
		td2 := ast.NewTypedefDecl(n2.Pos, n2.Literal, ty2)
		p.sc.Declare(p.bag, n2.Pos, td2)
	}
	p.expect(token.SEMICOLON)
	return td
}

func (p *Parser) declareOneVarOrFunc(nameTok token.Token, ty types.QualType, ds declSpec) ast.Decl {
	if ft, ok := ty.Type.(*types.FuncType); ok {
		fd := ast.NewFuncDecl(nameTok.Pos, nameTok.Literal, ft, nil, ds.sc, nil)
		p.sc.Declare(p.bag, nameTok.Pos, fd)
		return fd
	}
	var init ast.Expression
	if p.accept(token.ASSIGN) {
		init = p.parseInitializer()
		ty = applyInitializerBound(ty, init)
	}
	vd := ast.NewVarDecl(nameTok.Pos, nameTok.Literal, ty, ds.sc, init)
	p.sc.Declare(p.bag, nameTok.Pos, vd)
	return vd
}

// parseFunctionDefinition parses a function body, opening the
// function-body scope with file scope as its parent (not a prototype
// scope nested under it: C99 6.2.1p4 treats the parameters and the body's
// own identifiers as belonging to the same function scope).
func (p *Parser) parseFunctionDefinition(nameTok token.Token, ft *types.FuncType, sc types.StorageClass) *ast.FuncDecl {
	fd := ast.NewFuncDecl(nameTok.Pos, nameTok.Literal, ft, nil, sc, nil)
	p.sc.Declare(p.bag, nameTok.Pos, fd)

	fnScope := p.openScope(scope.FunctionScope)
	params := make([]*ast.ParamDecl, len(ft.Params))
	for i, prm := range ft.Params {
		pd := ast.NewParamDecl(nameTok.Pos, prm.Name, prm.Type)
		if prm.Name != "" {
			fnScope.Declare(p.bag, nameTok.Pos, pd)
		}
		params[i] = pd
	}
	fd.Params = params

	prevLabels, prevGotos := p.labels, p.gotos
	p.labels = make(map[string]*ast.LabeledStmt)
	p.gotos = nil

	body := p.parseFunctionBody()
	p.resolveGotos()

	p.labels, p.gotos = prevLabels, prevGotos
	p.closeScope()

	fd.Body = body
	return fd
}

// parseFunctionBody parses the braced statement list of a function
// definition directly into the already-open function scope (unlike an
// ordinary compound statement, it does not open a further nested block
// scope: parameters and the outermost block's locals share one scope).
func (p *Parser) parseFunctionBody() *ast.CompoundStmt {
	pos := p.cur.Pos
	p.expect(token.LBRACE)
	var stmts []ast.Statement
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return ast.NewCompoundStmt(pos, stmts)
}

func (p *Parser) resolveGotos() {
	for _, g := range p.gotos {
		if _, ok := p.labels[g.Label]; !ok {
			p.bag.Error(g.Pos(), diag.Control, "use of undeclared label %q", g.Label)
		}
	}
}

// parseLocalDecl parses a block-scope declaration (C99 6.8.2 allows
// declarations anywhere a statement may appear) and returns it as a
// Statement usable directly in a CompoundStmt's statement list. A
// specifier sequence shared by several declarators ("int a, b = 1;")
// yields a CompoundStmt grouping one DeclStmt per declarator, since
// DeclStmt itself carries only a single Decl.
func (p *Parser) parseLocalDecl() ast.Statement {
	pos := p.cur.Pos
	ds := p.parseDeclSpecifiers()

	if p.accept(token.SEMICOLON) {
		return ast.NewDeclStmt(pos, ast.NewTagDecl(pos, ds.base.Type))
	}

	var stmts []ast.Statement
	nameTok, build, _ := p.parseDeclaratorInner()
	ty := build(ds.base)
	stmts = append(stmts, ast.NewDeclStmt(nameTok.Pos, p.declareLocal(nameTok, ty, ds)))
	for p.accept(token.COMMA) {
		n2, b2, _ := p.parseDeclaratorInner()
		ty2 := b2(ds.base)
		stmts = append(stmts, ast.NewDeclStmt(n2.Pos, p.declareLocal(n2, ty2, ds)))
	}
	p.expect(token.SEMICOLON)

	if len(stmts) == 1 {
		return stmts[0]
	}
	return ast.NewCompoundStmt(pos, stmts)
}

func (p *Parser) declareLocal(nameTok token.Token, ty types.QualType, ds declSpec) ast.Decl {
	if ds.sc == types.SCTypedef {
		td := ast.NewTypedefDecl(nameTok.Pos, nameTok.Literal, ty)
		p.sc.Declare(p.bag, nameTok.Pos, td)
		return td
	}
	return p.declareOneVarOrFunc(nameTok, ty, ds)
}

// parseInitializer parses either a single assignment-expression or a
// brace-enclosed initializer list, per C99 6.7.8.
func (p *Parser) parseInitializer() ast.Expression {
	if !p.at(token.LBRACE) {
		return p.parseAssignment()
	}
	pos := p.cur.Pos
	p.advance()
	var elems []ast.Expression
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		elems = append(elems, p.parseInitializer())
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return ast.NewInitList(pos, elems, types.QualType{})
}

// applyInitializerBound implements C99 6.7.8p22's array-bound inference:
// an incomplete array declared with an initializer takes its length from
// that initializer (element count for a brace list, string length + 1 for
// a char array initialized from a string literal).
func applyInitializerBound(ty types.QualType, init ast.Expression) types.QualType {
	arr, ok := ty.Type.(*types.ArrayType)
	if !ok || arr.IsComplete() {
		return ty
	}
	switch v := init.(type) {
	case *ast.InitList:
		return types.QualType{Type: types.NewArrayType(arr.Elem, len(v.Elems)), Qual: ty.Qual}
	case *ast.StringLiteral:
		return types.QualType{Type: types.NewArrayType(arr.Elem, len(v.Value)+1), Qual: ty.Qual}
	default:
		return ty
	}
}
