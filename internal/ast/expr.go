package ast

import (
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func (*Identifier) exprNode()      {}
func (*IntLiteral) exprNode()      {}
func (*FloatLiteral) exprNode()    {}
func (*CharLiteral) exprNode()     {}
func (*StringLiteral) exprNode()   {}
func (*SizeofExpr) exprNode()      {}
func (*UnaryExpr) exprNode()       {}
func (*BinaryExpr) exprNode()      {}
func (*AssignExpr) exprNode()      {}
func (*TernaryExpr) exprNode()     {}
func (*CastExpr) exprNode()        {}
func (*CallExpr) exprNode()        {}
func (*MemberExpr) exprNode()      {}
func (*CommaExpr) exprNode()       {}

// Identifier names an object, function, or enumerator; Ty and Kind are
// filled in from the declaration the scope lookup resolved it to.
type Identifier struct {
	base
	Name string
	Ty   types.QualType
	Kind IdentKind
	// Value holds the enumerator's constant value when Kind is
	// IdentEnumerator (an enumeration constant behaves as that value
	// wherever it appears, per C99 6.4.4.3); meaningless otherwise.
	Value int64
}

// IdentKind distinguishes the namespace an Identifier resolved in, since an
// ordinary-namespace object and an enumerator constant print and behave
// differently even though both are bare names.
type IdentKind int

const (
	IdentObject IdentKind = iota
	IdentFunction
	IdentEnumerator
)

func NewIdentifier(pos token.Position, name string, ty types.QualType, kind IdentKind) *Identifier {
	return &Identifier{base: base{pos}, Name: name, Ty: ty, Kind: kind}
}

// NewEnumeratorIdentifier builds a reference to an enumeration constant,
// carrying its value along so later constant-folding (array bounds, case
// labels) needs nothing beyond the Identifier node itself.
func NewEnumeratorIdentifier(pos token.Position, name string, ty types.QualType, value int64) *Identifier {
	return &Identifier{base: base{pos}, Name: name, Ty: ty, Kind: IdentEnumerator, Value: value}
}

func (i *Identifier) Type() types.QualType { return i.Ty }

// IsLValue follows C99 6.3.2.1p1: an object designator is an lvalue, and so
// is a function designator, even though the latter can't be assigned to.
func (i *Identifier) IsLValue() bool { return i.Kind == IdentObject || i.Kind == IdentFunction }
func (i *Identifier) String() string { return i.Name }

// IntLiteral is an integer constant; the parser picks Ty from the literal's
// u/l/ll suffix alone (int when unsuffixed). The magnitude of Value and the
// radix do not affect the type.
type IntLiteral struct {
	base
	Value uint64
	Ty    types.QualType
}

func NewIntLiteral(pos token.Position, value uint64, ty types.QualType) *IntLiteral {
	return &IntLiteral{base: base{pos}, Value: value, Ty: ty}
}

func (l *IntLiteral) Type() types.QualType { return l.Ty }
func (l *IntLiteral) IsLValue() bool       { return false }
func (l *IntLiteral) String() string       { return l.Ty.String() }

// FloatLiteral is a floating constant; Ty is float or double per its suffix.
type FloatLiteral struct {
	base
	Value float64
	Ty    types.QualType
}

func NewFloatLiteral(pos token.Position, value float64, ty types.QualType) *FloatLiteral {
	return &FloatLiteral{base: base{pos}, Value: value, Ty: ty}
}

func (l *FloatLiteral) Type() types.QualType { return l.Ty }
func (l *FloatLiteral) IsLValue() bool       { return false }
func (l *FloatLiteral) String() string       { return l.Ty.String() }

// CharLiteral is a character constant, typed int per C99 6.4.4.4p10 (unless
// wide, in which case it is typed wchar_t's canonical int representation).
type CharLiteral struct {
	base
	Value rune
	Ty    types.QualType
}

func NewCharLiteral(pos token.Position, value rune, ty types.QualType) *CharLiteral {
	return &CharLiteral{base: base{pos}, Value: value, Ty: ty}
}

func (l *CharLiteral) Type() types.QualType { return l.Ty }
func (l *CharLiteral) IsLValue() bool       { return false }
func (l *CharLiteral) String() string       { return "'" + string(l.Value) + "'" }

// StringLiteral is a string literal, typed "array of N char" per C99
// 6.4.5p6. Wide-prefixed literals get the same char array type, since the
// lexer does not pass the prefix on.
type StringLiteral struct {
	base
	Value string
	Ty    types.QualType
}

func NewStringLiteral(pos token.Position, value string, ty types.QualType) *StringLiteral {
	return &StringLiteral{base: base{pos}, Value: value, Ty: ty}
}

func (l *StringLiteral) Type() types.QualType { return l.Ty }

// IsLValue is true for a string literal: it designates the (unnamed)
// static array object backing it, per C99 6.5.1p4.
func (l *StringLiteral) IsLValue() bool { return true }
func (l *StringLiteral) String() string { return "\"" + l.Value + "\"" }

// SizeofExpr is "sizeof expr" or "sizeof(type-name)"; its result is always
// size_t (here represented as unsigned long), never the operand's type.
type SizeofExpr struct {
	base
	Operand   Expression // nil when OperandType is used
	OperandTy types.QualType
	Ty        types.QualType
}

func NewSizeofExpr(bag *diag.Bag, pos token.Position, operand Expression, operandTy, sizeTy types.QualType) *SizeofExpr {
	ty := operandTy
	if operand != nil {
		ty = operand.Type()
	}
	if !ty.IsNull() && !ty.Type.IsComplete() {
		bag.Error(pos, diag.SemanticExpr, "invalid application of 'sizeof' to incomplete type %q", ty.String())
	}
	return &SizeofExpr{base: base{pos}, Operand: operand, OperandTy: operandTy, Ty: sizeTy}
}

func (s *SizeofExpr) Type() types.QualType { return s.Ty }
func (s *SizeofExpr) IsLValue() bool       { return false }
func (s *SizeofExpr) String() string       { return "sizeof(...)" }

// UnaryExpr is a prefix unary operator: & * - + ~ ! ++ -- (prefix form).
type UnaryExpr struct {
	base
	Op      OpCode
	Operand Expression
	Ty      types.QualType
}

// NewUnaryExpr applies C99 6.5.3's unary-operator typing rules: & requires
// an lvalue and yields a pointer to the operand's type; * requires a
// pointer and yields its base type as an lvalue; arithmetic unary operators
// promote their operand; ! yields int.
func NewUnaryExpr(bag *diag.Bag, pos token.Position, op OpCode, operand Expression) *UnaryExpr {
	var ty types.QualType
	switch op {
	case OpAddressOf:
		if !operand.IsLValue() {
			bag.Error(pos, diag.SemanticExpr, "cannot take the address of an expression that is not an lvalue")
		}
		ty = types.QualType{Type: types.NewPointerType(operand.Type())}
	case OpDeref:
		base := operand.Type().Decay()
		ptr, ok := base.Type.(*types.PointerType)
		if !ok {
			bag.Error(pos, diag.SemanticExpr, "indirection requires pointer operand ('%s' invalid)", operand.Type().String())
			ty = operand.Type()
		} else {
			ty = ptr.Base
		}
	case OpNot:
		ty = types.QualType{Type: types.NumberTypeOf(types.SpecInt)}
	case OpBitNot, OpNegate, OpPlus:
		nt, ok := operand.Type().Type.(*types.NumberType)
		if !ok {
			bag.Error(pos, diag.SemanticExpr, "invalid argument type %q to unary expression", operand.Type().String())
			ty = operand.Type()
		} else {
			ty = types.QualType{Type: nt.Promote()}
		}
	case OpPrefixInc, OpPrefixDec:
		if !operand.IsLValue() {
			bag.Error(pos, diag.SemanticExpr, "expression is not assignable")
		}
		ty = operand.Type()
	default:
		ty = operand.Type()
	}
	return &UnaryExpr{base: base{pos}, Op: op, Operand: operand, Ty: ty}
}

func (u *UnaryExpr) Type() types.QualType { return u.Ty }
func (u *UnaryExpr) IsLValue() bool       { return u.Op == OpDeref }
func (u *UnaryExpr) String() string       { return u.Op.String() + u.Operand.String() }

// PostfixExpr is a postfix ++ or --.
type PostfixExpr struct {
	base
	Op      OpCode
	Operand Expression
}

func (*PostfixExpr) exprNode() {}

func NewPostfixExpr(bag *diag.Bag, pos token.Position, op OpCode, operand Expression) *PostfixExpr {
	if !operand.IsLValue() {
		bag.Error(pos, diag.SemanticExpr, "expression is not assignable")
	}
	return &PostfixExpr{base: base{pos}, Op: op, Operand: operand}
}

func (p *PostfixExpr) Type() types.QualType { return p.Operand.Type() }
func (p *PostfixExpr) IsLValue() bool       { return false }
func (p *PostfixExpr) String() string       { return p.Operand.String() + p.Op.String() }

// BinaryExpr is a non-assigning binary operator: arithmetic, relational,
// equality, bitwise, logical, or comma.
type BinaryExpr struct {
	base
	Op          OpCode
	Left, Right Expression
	Ty          types.QualType
}

// NewBinaryExpr applies C99 6.5's binary-operator typing: usual arithmetic
// conversions for arithmetic operators, int for relational/equality/logical
// results, and pointer arithmetic's special-cased rules. Pointer+integer and
// subscript (C99 6.5.2.1: "a[b]" is "*((a)+(b))") scale the integer operand
// by the pointee's size at construction time, so the multiply is explicit in
// the tree rather than applied later by codegen.
func NewBinaryExpr(bag *diag.Bag, pos token.Position, op OpCode, lhs, rhs Expression) *BinaryExpr {
	lt := lhs.Type().Decay()
	rt := rhs.Type().Decay()
	var ty types.QualType

	switch op {
	case OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpEqual, OpNotEqual, OpLogAnd, OpLogOr:
		ty = types.QualType{Type: types.NumberTypeOf(types.SpecInt)}
	case OpComma:
		ty = rt
	case OpSubscript:
		ptr, ok := lt.Type.(*types.PointerType)
		if !ok {
			bag.Error(pos, diag.SemanticExpr, "subscripted value of type %q is not an array or pointer", lhs.Type().String())
			ty = lt
			break
		}
		ty = ptr.Base
		rhs = scaleByElementSize(pos, rhs, ptr.Base)
	case OpAdd, OpSub:
		if lp, ok := lt.Type.(*types.PointerType); ok {
			if rp, ok2 := rt.Type.(*types.PointerType); ok2 && op == OpSub {
				_ = rp
				ty = types.QualType{Type: types.NumberTypeOf(types.SpecLong)}
				break
			}
			ty = types.QualType{Type: lp}
			rhs = scaleByElementSize(pos, rhs, lp.Base)
			break
		}
		if rp, ok := rt.Type.(*types.PointerType); ok && op == OpAdd {
			ty = types.QualType{Type: rp}
			lhs = scaleByElementSize(pos, lhs, rp.Base)
			break
		}
		ty = arithResult(bag, pos, lt, rt)
	default:
		ty = arithResult(bag, pos, lt, rt)
	}
	return &BinaryExpr{base: base{pos}, Op: op, Left: lhs, Right: rhs, Ty: ty}
}

// scaleByElementSize wraps idx in an explicit multiply by elemTy's size, the
// scaling C99 6.5.6p2 requires when an integer is added to or subtracted
// from a pointer to elemTy, matching the original compiler's make_binary.
func scaleByElementSize(pos token.Position, idx Expression, elemTy types.QualType) Expression {
	sizeTy := types.QualType{Type: types.NumberTypeOf(types.SpecLong)}
	size := NewIntLiteral(pos, uint64(elemTy.Type.Size()), sizeTy)
	return &BinaryExpr{base: base{pos}, Op: OpMul, Left: size, Right: idx, Ty: sizeTy}
}

func arithResult(bag *diag.Bag, pos token.Position, lt, rt types.QualType) types.QualType {
	ln, lok := lt.Type.(*types.NumberType)
	rn, rok := rt.Type.(*types.NumberType)
	if !lok || !rok {
		bag.Error(pos, diag.SemanticExpr, "invalid operands to binary expression (%q and %q)", lt.String(), rt.String())
		return lt
	}
	// C99 6.3.1.8: each operand undergoes integer promotion before the
	// usual arithmetic conversions are applied between them.
	return types.QualType{Type: types.UsualArithmeticConversions(ln.Promote(), rn.Promote())}
}

func (b *BinaryExpr) Type() types.QualType { return b.Ty }

// IsLValue holds only for subscript: "*((a)+(b))" designates an object, even
// though every other binary result (including pointer subtraction) is not
// an lvalue.
func (b *BinaryExpr) IsLValue() bool { return b.Op == OpSubscript }

func (b *BinaryExpr) String() string {
	if b.Op == OpSubscript {
		return b.Left.String() + "[" + b.Right.String() + "]"
	}
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}

// AssignExpr is a (possibly compound) assignment; its result type is the
// left operand's, and it is not an lvalue, per C99 6.5.16.
type AssignExpr struct {
	base
	Op          OpCode
	Left, Right Expression
}

func NewAssignExpr(bag *diag.Bag, pos token.Position, op OpCode, lhs, rhs Expression) *AssignExpr {
	if !lhs.IsLValue() {
		bag.Error(pos, diag.SemanticExpr, "expression is not assignable")
	}
	if lhs.Type().IsConst() {
		bag.Error(pos, diag.SemanticExpr, "cannot assign to variable with const-qualified type %q", lhs.Type().String())
	}
	return &AssignExpr{base: base{pos}, Op: op, Left: lhs, Right: rhs}
}

func (a *AssignExpr) Type() types.QualType { return a.Left.Type() }
func (a *AssignExpr) IsLValue() bool       { return false }
func (a *AssignExpr) String() string {
	return a.Left.String() + " " + a.Op.String() + " " + a.Right.String()
}

// TernaryExpr is "cond ? then : else"; its type is the usual arithmetic
// conversion of the two branches when both are arithmetic, else (per C99
// 6.5.15) the common pointer/compatible-aggregate type, approximated here
// as the then-branch's type when no arithmetic conversion applies.
type TernaryExpr struct {
	base
	Cond, Then, Else Expression
	Ty               types.QualType
}

func NewTernaryExpr(bag *diag.Bag, pos token.Position, cond, then, els Expression) *TernaryExpr {
	tt := then.Type()
	et := els.Type()
	ty := tt
	if tn, ok := tt.Type.(*types.NumberType); ok {
		if en, ok2 := et.Type.(*types.NumberType); ok2 {
			ty = types.QualType{Type: types.UsualArithmeticConversions(tn, en)}
		}
	}
	return &TernaryExpr{base: base{pos}, Cond: cond, Then: then, Else: els, Ty: ty}
}

func (t *TernaryExpr) Type() types.QualType { return t.Ty }
func (t *TernaryExpr) IsLValue() bool       { return false }
func (t *TernaryExpr) String() string {
	return t.Cond.String() + " ? " + t.Then.String() + " : " + t.Else.String()
}

// CastExpr is an explicit "(type-name) expr" conversion.
type CastExpr struct {
	base
	Target  types.QualType
	Operand Expression
}

// NewCastExpr applies C99 6.5.4's cast constraints: the destination shall
// be void or a (qualified) scalar type, and the operand shall have scalar
// type. A void destination is legal only when its result is discarded, the
// way "(void)f();" is as a whole expression statement.
func NewCastExpr(bag *diag.Bag, pos token.Position, target types.QualType, operand Expression, discarded bool) *CastExpr {
	if _, isVoid := target.Type.(*types.VoidType); isVoid {
		if !discarded {
			bag.Error(pos, diag.SemanticExpr, "cast to void type must be a discarded expression")
		}
	} else if !types.IsScalar(target.Type) {
		bag.Error(pos, diag.TypeKind, "the type casted to should be a scalar type, got %q", target.String())
	}
	if !types.IsScalar(operand.Type().Decay().Type) {
		bag.Error(pos, diag.SemanticExpr, "operand of a cast must have scalar type, got %q", operand.Type().String())
	}
	return &CastExpr{base: base{pos}, Target: target, Operand: operand}
}

func (c *CastExpr) Type() types.QualType { return c.Target }
func (c *CastExpr) IsLValue() bool       { return false }
func (c *CastExpr) String() string       { return "(" + c.Target.String() + ")" + c.Operand.String() }

// CallExpr is a function call. Ty is the callee's return type, after
// checking (where the callee is prototyped) that argument count and types
// line up per C99 6.5.2.2.
type CallExpr struct {
	base
	Callee Expression
	Args   []Expression
	Ty     types.QualType
}

func NewCallExpr(bag *diag.Bag, pos token.Position, callee Expression, args []Expression) *CallExpr {
	decayed := callee.Type().Decay()
	ft, ok := decayed.Type.(*types.FuncType)
	if !ok {
		if pt, ok2 := decayed.Type.(*types.PointerType); ok2 {
			ft, ok = pt.Base.Type.(*types.FuncType)
		}
	}
	if !ok {
		bag.Error(pos, diag.SemanticExpr, "called object is not a function or function pointer")
		return &CallExpr{base: base{pos}, Callee: callee, Args: args, Ty: types.QualType{Type: types.NumberTypeOf(types.SpecInt)}}
	}
	if ft.Prototyped && !ft.Variadic && len(args) != len(ft.Params) {
		bag.Error(pos, diag.SemanticExpr, "too %s arguments to function call, expected %d, have %d", tooWhich(len(args), len(ft.Params)), len(ft.Params), len(args))
	}
	return &CallExpr{base: base{pos}, Callee: callee, Args: args, Ty: ft.Ret}
}

func tooWhich(got, want int) string {
	if got < want {
		return "few"
	}
	return "many"
}

func (c *CallExpr) Type() types.QualType { return c.Ty }
func (c *CallExpr) IsLValue() bool       { return false }
func (c *CallExpr) String() string       { return c.Callee.String() + "(...)" }

// MemberExpr is "base.field" or "base->field".
type MemberExpr struct {
	base
	Object Expression
	Field  string
	Arrow  bool
	Ty     types.QualType
}

func NewMemberExpr(bag *diag.Bag, pos token.Position, object Expression, field string, arrow bool) *MemberExpr {
	ot := object.Type()
	if arrow {
		ptr, ok := ot.Type.(*types.PointerType)
		if !ok {
			bag.Error(pos, diag.SemanticExpr, "member reference type %q is not a pointer", ot.String())
			return &MemberExpr{base: base{pos}, Object: object, Field: field, Arrow: arrow}
		}
		ot = ptr.Base
	}
	st, ok := ot.Type.(*types.StructType)
	if !ok {
		bag.Error(pos, diag.SemanticExpr, "member reference base type %q is not a structure or union", ot.String())
		return &MemberExpr{base: base{pos}, Object: object, Field: field, Arrow: arrow}
	}
	for _, m := range st.Members {
		if m.Name == field {
			return &MemberExpr{base: base{pos}, Object: object, Field: field, Arrow: arrow, Ty: m.Type}
		}
	}
	bag.Error(pos, diag.SemanticExpr, "no member named %q in %q", field, st.String())
	return &MemberExpr{base: base{pos}, Object: object, Field: field, Arrow: arrow}
}

func (m *MemberExpr) Type() types.QualType { return m.Ty }
func (m *MemberExpr) IsLValue() bool       { return true }
func (m *MemberExpr) String() string {
	op := "."
	if m.Arrow {
		op = "->"
	}
	return m.Object.String() + op + m.Field
}

// CommaExpr is the comma operator, left-to-right-evaluated with the
// right operand's type and value.
type CommaExpr struct {
	base
	Left, Right Expression
}

func NewCommaExpr(pos token.Position, lhs, rhs Expression) *CommaExpr {
	return &CommaExpr{base: base{pos}, Left: lhs, Right: rhs}
}

func (c *CommaExpr) Type() types.QualType { return c.Right.Type() }
func (c *CommaExpr) IsLValue() bool       { return c.Right.IsLValue() }
func (c *CommaExpr) String() string       { return c.Left.String() + ", " + c.Right.String() }
