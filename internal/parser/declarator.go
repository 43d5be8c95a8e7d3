package parser

import (
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/consteval"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// declSpec is the result of parsing a declaration-specifier sequence: the
// base type all of a declaration's declarators share, plus the storage
// class (which is declarator-independent, unlike qualifiers/specifiers
// which get folded into the base QualType directly).
type declSpec struct {
	base types.QualType
	sc   types.StorageClass
}

// isTypedefName reports whether ident resolves, in the current scope, to a
// typedef — the lookahead spec.md §4.H's "declaration vs expression" rule
// needs.
func (p *Parser) isTypedefName(ident string) (types.QualType, bool) {
	d := p.sc.Find(ident, true)
	if td, ok := d.(*ast.TypedefDecl); ok {
		return td.Ty, true
	}
	return types.QualType{}, false
}

// startsDeclSpec reports whether the current token can begin a
// declaration-specifier sequence.
func (p *Parser) startsDeclSpec() bool {
	if token.IsStorageClass(p.cur.Type) || token.IsTypeSpecifier(p.cur.Type) ||
		p.cur.Type == token.INLINE || p.cur.Type == token.CONST ||
		p.cur.Type == token.VOLATILE || p.cur.Type == token.RESTRICT {
		return true
	}
	if p.cur.Type == token.IDENT {
		_, ok := p.isTypedefName(p.cur.Literal)
		return ok
	}
	return false
}

// parseDeclSpecifiers parses storage-class specifiers, type qualifiers,
// and type specifiers in any order (C99 6.7 allows free intermixing) and
// folds them into a single base QualType.
func (p *Parser) parseDeclSpecifiers() declSpec {
	var spec types.Specifier
	var qual types.Qualifier
	var sc types.StorageClass
	var aggregate types.Type
	var sawTypeSpec bool

	for {
		pos := p.cur.Pos
		switch {
		case token.IsStorageClass(p.cur.Type):
			sc = types.AddStorageClass(p.bag, pos, sc, types.StorageClassFromKeyword(p.cur.Type))
			p.advance()
		case p.cur.Type == token.INLINE:
			sc = types.AddStorageClass(p.bag, pos, sc, types.SCInline)
			p.advance()
		case p.cur.Type == token.CONST || p.cur.Type == token.VOLATILE || p.cur.Type == token.RESTRICT:
			qual = types.AddQualifier(p.bag, pos, qual, types.QualifierFromKeyword(p.cur.Type))
			p.advance()
		case p.cur.Type == token.STRUCT || p.cur.Type == token.UNION:
			aggregate = p.parseStructOrUnionSpecifier()
			sawTypeSpec = true
		case p.cur.Type == token.ENUM:
			aggregate = p.parseEnumSpecifier()
			sawTypeSpec = true
		case token.IsTypeSpecifier(p.cur.Type):
			spec = types.AddSpecifier(p.bag, pos, spec, types.SpecifierFromKeyword(p.cur.Type))
			sawTypeSpec = true
			p.advance()
		case p.cur.Type == token.IDENT:
			if ty, ok := p.isTypedefName(p.cur.Literal); ok && !sawTypeSpec {
				aggregate = ty.Type
				qual |= ty.Qual
				sawTypeSpec = true
				p.advance()
			} else {
				goto done
			}
		default:
			goto done
		}
	}
done:
	if aggregate != nil {
		return declSpec{base: types.QualType{Type: aggregate, Qual: qual}, sc: sc}
	}
	if !sawTypeSpec {
		spec = types.SpecInt
	}
	return declSpec{base: types.QualType{Type: types.NumberTypeOf(spec), Qual: qual}, sc: sc}
}

func (p *Parser) parseStructOrUnionSpecifier() types.Type {
	isUnion := p.cur.Type == token.UNION
	p.advance()

	tag := ""
	if p.at(token.IDENT) {
		tag = p.cur.Literal
		p.advance()
	}

	if !p.at(token.LBRACE) {
		// Reference to a previously declared (or forward-declared) tag.
		if tag != "" {
			if d := p.sc.FindTag(tag, true); d != nil {
				if td, ok := d.(*ast.TagDecl); ok {
					return td.Ty
				}
			}
			st := types.NewStructType(tag, isUnion)
			p.sc.DeclareTag(p.bag, p.cur.Pos, tag, ast.NewTagDecl(p.cur.Pos, st))
			return st
		}
		p.bag.Error(p.cur.Pos, diag.Syntactic, "expected identifier or '{' in struct/union specifier")
		return types.NewStructType("", isUnion)
	}

	var st *types.StructType
	if tag != "" {
		if d := p.sc.FindTag(tag, false); d != nil {
			if td, ok := d.(*ast.TagDecl); ok {
				if existing, ok2 := td.Ty.(*types.StructType); ok2 && !existing.IsComplete() {
					st = existing
				}
			}
		}
	}
	if st == nil {
		st = types.NewStructType(tag, isUnion)
		if tag != "" {
			p.sc.DeclareTag(p.bag, p.cur.Pos, tag, ast.NewTagDecl(p.cur.Pos, st))
		}
	}

	p.expect(token.LBRACE)
	var members []types.StructMember
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		ds := p.parseDeclSpecifiers()
		for {
			name, build, _ := p.parseDeclaratorInner()
			ty := build(ds.base)
			members = append(members, types.StructMember{Name: name.Literal, Type: ty})
			if !p.accept(token.COMMA) {
				break
			}
		}
		p.expect(token.SEMICOLON)
	}
	p.expect(token.RBRACE)
	st.Complete(members)
	return st
}

func (p *Parser) parseEnumSpecifier() types.Type {
	p.advance() // 'enum'
	tag := ""
	if p.at(token.IDENT) {
		tag = p.cur.Literal
		p.advance()
	}

	if !p.at(token.LBRACE) {
		if tag != "" {
			if d := p.sc.FindTag(tag, true); d != nil {
				if td, ok := d.(*ast.TagDecl); ok {
					return td.Ty
				}
			}
		}
		et := types.NewEnumType(tag)
		if tag != "" {
			p.sc.DeclareTag(p.bag, p.cur.Pos, tag, ast.NewTagDecl(p.cur.Pos, et))
		}
		return et
	}

	et := types.NewEnumType(tag)
	if tag != "" {
		p.sc.DeclareTag(p.bag, p.cur.Pos, tag, ast.NewTagDecl(p.cur.Pos, et))
	}
	p.expect(token.LBRACE)
	var names []string
	next := int64(0)
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		nameTok := p.expect(token.IDENT)
		val := next
		if p.accept(token.ASSIGN) {
			e := p.parseConditional()
			val = consteval.EvalLong(p.bag, e)
		}
		qt := types.QualType{Type: et}
		p.sc.Declare(p.bag, nameTok.Pos, ast.NewVarDecl(nameTok.Pos, nameTok.Literal, qt, types.SCNone, ast.NewIntLiteral(nameTok.Pos, uint64(val), types.QualType{Type: types.NumberTypeOf(types.SpecInt)})))
		names = append(names, nameTok.Literal)
		next = val + 1
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	et.Complete(names)
	return et
}

// suffix is one array or function trailer of a direct-declarator.
type suffix struct {
	isArray bool
	bound   int // -1 for an incomplete array bound
	params  []types.FuncParam
	names   []string
	variadic   bool
	prototyped bool
}

// declBuilder composes a base type into the fully-derived type a
// declarator names, implementing spec.md §4.H's "declarator unification":
// innerBuild(suffixBuild(pointerWrap(base))), applied left to right as the
// declarator is walked outside-in.
type declBuilder func(base types.QualType) types.QualType

// parseDeclaratorInner parses one declarator (pointer* direct-declarator),
// returning the name token (zero Token if abstract), the type-builder
// function, and whether any pointer was seen (informational only).
func (p *Parser) parseDeclaratorInner() (token.Token, declBuilder, bool) {
	ptrWrap, hadPtr := p.parsePointerPrefix()
	name, innerBuild := p.parseDirectDeclaratorCore()
	suffixes := p.parseSuffixes()

	build := func(base types.QualType) types.QualType {
		t := ptrWrap(base)
		for i := len(suffixes) - 1; i >= 0; i-- {
			t = applySuffix(p.bag, name.Pos, suffixes[i], t)
		}
		return innerBuild(t)
	}
	return name, build, hadPtr
}

func (p *Parser) parsePointerPrefix() (declBuilder, bool) {
	if !p.at(token.STAR) {
		return func(base types.QualType) types.QualType { return base }, false
	}
	p.advance()
	var qual types.Qualifier
	for p.cur.Type == token.CONST || p.cur.Type == token.VOLATILE || p.cur.Type == token.RESTRICT {
		qual = types.AddQualifier(p.bag, p.cur.Pos, qual, types.QualifierFromKeyword(p.cur.Type))
		p.advance()
	}
	rest, _ := p.parsePointerPrefix()
	return func(base types.QualType) types.QualType {
		inner := rest(base)
		return types.QualType{Type: types.NewPointerType(inner), Qual: qual}
	}, true
}

func (p *Parser) parseDirectDeclaratorCore() (token.Token, declBuilder) {
	identity := func(t types.QualType) types.QualType { return t }
	switch {
	case p.at(token.IDENT):
		name := p.cur
		p.advance()
		return name, identity
	case p.at(token.LPAREN):
		p.advance()
		name, build, _ := p.parseDeclaratorInner()
		p.expect(token.RPAREN)
		return name, build
	default:
		return token.Token{}, identity
	}
}

func (p *Parser) parseSuffixes() []suffix {
	var out []suffix
	for {
		switch {
		case p.at(token.LBRACK):
			p.advance()
			bound := -1
			if !p.at(token.RBRACK) {
				e := p.parseConditional()
				bound = int(consteval.EvalLong(p.bag, e))
			}
			p.expect(token.RBRACK)
			out = append(out, suffix{isArray: true, bound: bound})
		case p.at(token.LPAREN):
			p.advance()
			s := suffix{prototyped: true}
			if p.at(token.VOID) && p.toks.Peek(0).Type == token.RPAREN {
				p.advance()
			} else if !p.at(token.RPAREN) {
				for {
					if p.accept(token.ELLIPSIS) {
						s.variadic = true
						break
					}
					ds := p.parseDeclSpecifiers()
					nameTok, build, _ := p.parseDeclaratorInner()
					ty := build(ds.base).Decay()
					s.params = append(s.params, types.FuncParam{Name: nameTok.Literal, Type: ty})
					s.names = append(s.names, nameTok.Literal)
					if !p.accept(token.COMMA) {
						break
					}
				}
			} else {
				s.prototyped = false
			}
			p.expect(token.RPAREN)
			out = append(out, s)
		default:
			return out
		}
	}
}

func applySuffix(bag *diag.Bag, pos token.Position, s suffix, base types.QualType) types.QualType {
	if s.isArray {
		if _, ok := base.Type.(*types.FuncType); ok {
			bag.Error(pos, diag.Declarator, "declaration of array of functions")
		}
		return types.QualType{Type: types.NewArrayType(base, s.bound)}
	}
	if _, ok := base.Type.(*types.FuncType); ok {
		bag.Error(pos, diag.Declarator, "declaration of function returning a function")
	}
	if _, ok := base.Type.(*types.ArrayType); ok {
		bag.Error(pos, diag.Declarator, "declaration of function returning an array")
	}
	return types.QualType{Type: types.NewFuncType(base, s.params, s.variadic, s.prototyped)}
}
