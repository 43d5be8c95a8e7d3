package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

// binaryPrec gives each binary operator's precedence per spec.md §4.H's
// table (higher binds tighter); operators absent from the map are not
// handled by the precedence climb (assignment and ternary are handled
// separately, as the spec calls for).
var binaryPrec = map[token.Type]int{
	token.STAR: 10, token.SLASH: 10, token.PERCENT: 10,
	token.PLUS: 9, token.MINUS: 9,
	token.SHL: 8, token.SHR: 8,
	token.LSS: 7, token.GTR: 7, token.LEQ: 7, token.GEQ: 7,
	token.EQL: 6, token.NEQ: 6,
	token.AMP: 5,
	token.XOR: 4,
	token.OR:  3,
	token.LAND: 2,
	token.LOR:  1,
}

// ParseExpression parses a full comma-expression, the top of the
// expression grammar.
func (p *Parser) ParseExpression() ast.Expression { return p.parseComma() }

func (p *Parser) parseComma() ast.Expression {
	e := p.parseAssignment()
	for p.accept(token.COMMA) {
		pos := e.Pos()
		rhs := p.parseAssignment()
		e = ast.NewCommaExpr(pos, e, rhs)
	}
	return e
}

var assignOps = map[token.Type]bool{
	token.ASSIGN: true, token.ADD_ASSIGN: true, token.SUB_ASSIGN: true,
	token.MUL_ASSIGN: true, token.DIV_ASSIGN: true, token.MOD_ASSIGN: true,
	token.AND_ASSIGN: true, token.OR_ASSIGN: true, token.XOR_ASSIGN: true,
	token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
}

func (p *Parser) parseAssignment() ast.Expression {
	lhs := p.parseConditional()
	if !assignOps[p.cur.Type] {
		return lhs
	}
	opTok := p.cur
	p.advance()
	rhs := p.parseAssignment()
	return ast.NewAssignExpr(p.bag, opTok.Pos, ast.BinaryOpFromToken(opTok.Type), lhs, rhs)
}

// parseConditional parses the ternary ?: level and everything below it.
func (p *Parser) parseConditional() ast.Expression {
	cond := p.parseBinary(1)
	if !p.accept(token.QUESTION) {
		return cond
	}
	then := p.ParseExpression()
	p.expect(token.COLON)
	els := p.parseConditional()
	return ast.NewTernaryExpr(p.bag, cond.Pos(), cond, then, els)
}

// parseBinary implements precedence climbing over spec.md §4.H's table.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	lhs := p.parseUnary()
	for {
		prec, ok := binaryPrec[p.cur.Type]
		if !ok || prec < minPrec {
			return lhs
		}
		opTok := p.cur
		p.advance()
		rhs := p.parseBinary(prec + 1)
		lhs = ast.NewBinaryExpr(p.bag, opTok.Pos, ast.BinaryOpFromToken(opTok.Type), lhs, rhs)
	}
}

func (p *Parser) parseUnary() ast.Expression {
	pos := p.cur.Pos
	switch p.cur.Type {
	case token.AMP:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpAddressOf, p.parseUnary())
	case token.STAR:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpDeref, p.parseUnary())
	case token.PLUS:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpPlus, p.parseUnary())
	case token.MINUS:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpNegate, p.parseUnary())
	case token.TILDE:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpBitNot, p.parseUnary())
	case token.NOT:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpNot, p.parseUnary())
	case token.INC:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpPrefixInc, p.parseUnary())
	case token.DEC:
		p.advance()
		return ast.NewUnaryExpr(p.bag, pos, ast.OpPrefixDec, p.parseUnary())
	case token.SIZEOF:
		return p.parseSizeof()
	case token.LPAREN:
		if p.looksLikeCast() {
			return p.parseCast()
		}
	}
	return p.parsePostfix()
}

// looksLikeCast performs the two-token lookahead spec.md §4.H calls out
// for `primary ( abstract-declarator )`: a '(' begins a cast only when the
// token following it starts a type-name.
func (p *Parser) looksLikeCast() bool {
	next := p.toks.Peek(0)
	if token.IsTypeSpecifier(next.Type) || token.IsStorageClass(next.Type) ||
		next.Type == token.CONST || next.Type == token.VOLATILE {
		return true
	}
	if next.Type == token.IDENT {
		_, ok := p.isTypedefName(next.Literal)
		return ok
	}
	return false
}

func (p *Parser) parseCast() ast.Expression {
	pos := p.cur.Pos
	p.expect(token.LPAREN)
	ds := p.parseDeclSpecifiers()
	_, build, _ := p.parseDeclaratorInner()
	ty := build(ds.base)
	p.expect(token.RPAREN)
	operand := p.parseUnary()
	discarded := p.discardCast
	p.discardCast = false
	return ast.NewCastExpr(p.bag, pos, ty, operand, discarded)
}

func (p *Parser) parseSizeof() ast.Expression {
	pos := p.cur.Pos
	p.advance()
	sizeTy := types.QualType{Type: types.NumberTypeOf(types.SpecUnsigned | types.SpecLong)}
	if p.at(token.LPAREN) && p.looksLikeCast() {
		p.advance()
		ds := p.parseDeclSpecifiers()
		_, build, _ := p.parseDeclaratorInner()
		ty := build(ds.base)
		p.expect(token.RPAREN)
		return ast.NewSizeofExpr(p.bag, pos, nil, ty, sizeTy)
	}
	operand := p.parseUnary()
	return ast.NewSizeofExpr(p.bag, pos, operand, types.QualType{}, sizeTy)
}

func (p *Parser) parsePostfix() ast.Expression {
	e := p.parsePrimary()
	for {
		pos := p.cur.Pos
		switch p.cur.Type {
		case token.LBRACK:
			p.advance()
			idx := p.ParseExpression()
			p.expect(token.RBRACK)
			e = ast.NewBinaryExpr(p.bag, pos, ast.OpSubscript, e, idx)
		case token.LPAREN:
			p.advance()
			var args []ast.Expression
			if !p.at(token.RPAREN) {
				for {
					args = append(args, p.parseAssignment())
					if !p.accept(token.COMMA) {
						break
					}
				}
			}
			p.expect(token.RPAREN)
			e = ast.NewCallExpr(p.bag, pos, e, args)
		case token.DOT:
			p.advance()
			field := p.expect(token.IDENT)
			e = ast.NewMemberExpr(p.bag, pos, e, field.Literal, false)
		case token.ARROW:
			p.advance()
			field := p.expect(token.IDENT)
			e = ast.NewMemberExpr(p.bag, pos, e, field.Literal, true)
		case token.INC:
			p.advance()
			e = ast.NewPostfixExpr(p.bag, pos, ast.OpPostfixInc, e)
		case token.DEC:
			p.advance()
			e = ast.NewPostfixExpr(p.bag, pos, ast.OpPostfixDec, e)
		default:
			return e
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur
	switch tok.Type {
	case token.IDENT:
		p.advance()
		d := p.sc.Find(tok.Literal, true)
		switch decl := d.(type) {
		case *ast.VarDecl:
			if decl.Ty.Type != nil {
				if _, isEnum := decl.Ty.Type.(*types.EnumType); isEnum {
					var value int64
					if lit, ok := decl.Init.(*ast.IntLiteral); ok {
						value = int64(lit.Value)
					}
					return ast.NewEnumeratorIdentifier(tok.Pos, tok.Literal, decl.Ty, value)
				}
			}
			return ast.NewIdentifier(tok.Pos, tok.Literal, decl.Ty, ast.IdentObject)
		case *ast.FuncDecl:
			return ast.NewIdentifier(tok.Pos, tok.Literal, types.QualType{Type: decl.Ty}, ast.IdentFunction)
		case *ast.ParamDecl:
			return ast.NewIdentifier(tok.Pos, tok.Literal, decl.Ty, ast.IdentObject)
		default:
			p.bag.Error(tok.Pos, diag.ScopeKind, "use of undeclared identifier %q", tok.Literal)
			return ast.NewIdentifier(tok.Pos, tok.Literal, types.QualType{Type: types.NumberTypeOf(types.SpecInt)}, ast.IdentObject)
		}
	case token.PP_NUMBER:
		p.advance()
		return parseIntLiteral(tok)
	case token.PP_FLOAT:
		p.advance()
		return parseFloatLiteral(tok)
	case token.CHAR:
		p.advance()
		r := []rune(tok.Literal)
		var v rune
		if len(r) > 0 {
			v = r[0]
		}
		return ast.NewCharLiteral(tok.Pos, v, types.QualType{Type: types.NumberTypeOf(types.SpecInt)})
	case token.STRING:
		p.advance()
		elem := types.QualType{Type: types.NumberTypeOf(types.SpecChar)}
		arr := types.NewArrayType(elem, len(tok.Literal)+1)
		return ast.NewStringLiteral(tok.Pos, tok.Literal, types.QualType{Type: arr})
	case token.LPAREN:
		p.advance()
		e := p.ParseExpression()
		p.expect(token.RPAREN)
		return e
	default:
		p.bag.Error(tok.Pos, diag.Syntactic, "unexpected token %s in expression", tok.Type)
		p.advance()
		return ast.NewIntLiteral(tok.Pos, 0, types.QualType{Type: types.NumberTypeOf(types.SpecInt)})
	}
}

// parseIntLiteral converts a PP_NUMBER token's spelling to an IntLiteral,
// per C99 6.4.4.1: decimal/octal/hexadecimal radix from the prefix, type
// chosen from the u/l/ll suffix (unsuffixed decimal constants are always
// typed int here, since the front end's size model never needs the
// first-that-fits promotion to long for a value under 2^31).
func parseIntLiteral(tok token.Token) *ast.IntLiteral {
	lit := tok.Literal
	suffixStart := len(lit)
	for suffixStart > 0 {
		c := lit[suffixStart-1]
		if c == 'u' || c == 'U' || c == 'l' || c == 'L' {
			suffixStart--
		} else {
			break
		}
	}
	digits, suffix := lit[:suffixStart], lit[suffixStart:]
	value, err := strconv.ParseUint(digits, 0, 64)
	if err != nil {
		value = 0
	}
	spec := types.SpecInt
	if strings.ContainsAny(suffix, "uU") {
		spec |= types.SpecUnsigned
	}
	if strings.Count(strings.ToLower(suffix), "l") >= 2 {
		spec |= types.SpecLLong
	} else if strings.ContainsAny(suffix, "lL") {
		spec |= types.SpecLong
	}
	return ast.NewIntLiteral(tok.Pos, value, types.QualType{Type: types.NumberTypeOf(spec)})
}

// parseFloatLiteral converts a PP_FLOAT token's spelling to a FloatLiteral;
// an 'f'/'F' suffix selects float, anything else double.
func parseFloatLiteral(tok token.Token) *ast.FloatLiteral {
	lit := tok.Literal
	spec := types.SpecDouble
	digits := lit
	if len(lit) > 0 {
		switch lit[len(lit)-1] {
		case 'f', 'F':
			spec = types.SpecFloat
			digits = lit[:len(lit)-1]
		case 'l', 'L':
			digits = lit[:len(lit)-1]
		}
	}
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		value = 0
	}
	return ast.NewFloatLiteral(tok.Pos, value, types.QualType{Type: types.NumberTypeOf(spec)})
}
