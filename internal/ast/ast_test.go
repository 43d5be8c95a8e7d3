package ast

import (
	"testing"

	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func testBag() *diag.Bag { return diag.NewBag("t.c", "") }
func testPos() token.Position { return token.Position{Line: 1, Column: 1} }

func intQT() types.QualType { return types.QualType{Type: types.NumberTypeOf(types.SpecInt)} }

func TestIdentifierLValueness(t *testing.T) {
	obj := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	if !obj.IsLValue() {
		t.Error("an object identifier must be an lvalue")
	}
	fn := NewIdentifier(testPos(), "f", intQT(), IdentFunction)
	if !fn.IsLValue() {
		t.Error("a function designator must be an lvalue")
	}
}

func TestUnaryAddressOfRequiresLValue(t *testing.T) {
	bag := testBag()
	lit := NewIntLiteral(testPos(), 1, intQT())
	func() { defer bag.Recover(); NewUnaryExpr(bag, testPos(), OpAddressOf, lit) }()
	if !bag.HasErrors() {
		t.Error("taking the address of a non-lvalue should be an error")
	}
}

func TestUnaryAddressOfYieldsPointer(t *testing.T) {
	bag := testBag()
	obj := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	u := NewUnaryExpr(bag, testPos(), OpAddressOf, obj)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	if _, ok := u.Type().Type.(*types.PointerType); !ok {
		t.Errorf("&x should have pointer type, got %s", u.Type())
	}
}

func TestUnaryDerefRequiresPointer(t *testing.T) {
	bag := testBag()
	obj := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	func() { defer bag.Recover(); NewUnaryExpr(bag, testPos(), OpDeref, obj) }()
	if !bag.HasErrors() {
		t.Error("dereferencing a non-pointer should be an error")
	}
}

func TestBinaryUsualArithmeticConversions(t *testing.T) {
	bag := testBag()
	lhs := NewIdentifier(testPos(), "a", intQT(), IdentObject)
	rhs := NewIdentifier(testPos(), "b", types.QualType{Type: types.NumberTypeOf(types.SpecDouble)}, IdentObject)
	b := NewBinaryExpr(bag, testPos(), OpAdd, lhs, rhs)
	if !b.Type().Type.(*types.NumberType).IsFraction() {
		t.Errorf("int+double should yield a floating type, got %s", b.Type())
	}
}

func TestAssignRequiresLValue(t *testing.T) {
	bag := testBag()
	lit := NewIntLiteral(testPos(), 1, intQT())
	rhs := NewIntLiteral(testPos(), 2, intQT())
	func() { defer bag.Recover(); NewAssignExpr(bag, testPos(), OpAssign, lit, rhs) }()
	if !bag.HasErrors() {
		t.Error("assigning to a non-lvalue should be an error")
	}
}

func TestAssignRejectsConstTarget(t *testing.T) {
	bag := testBag()
	constInt := types.QualType{Type: types.NumberTypeOf(types.SpecInt), Qual: types.Const}
	obj := NewIdentifier(testPos(), "x", constInt, IdentObject)
	rhs := NewIntLiteral(testPos(), 2, intQT())
	func() { defer bag.Recover(); NewAssignExpr(bag, testPos(), OpAssign, obj, rhs) }()
	if !bag.HasErrors() {
		t.Error("assigning to a const-qualified lvalue should be an error")
	}
}

func TestCallArgumentCountMismatch(t *testing.T) {
	bag := testBag()
	ft := types.NewFuncType(intQT(), []types.FuncParam{{Name: "a", Type: intQT()}}, false, true)
	callee := NewIdentifier(testPos(), "f", types.QualType{Type: ft}, IdentFunction)
	func() { defer bag.Recover(); NewCallExpr(bag, testPos(), callee, nil) }()
	if !bag.HasErrors() {
		t.Error("calling with too few arguments should be an error")
	}
}

func TestMemberExprResolvesField(t *testing.T) {
	bag := testBag()
	st := types.NewStructType("point", false)
	st.Complete([]types.StructMember{{Name: "x", Type: intQT()}})
	obj := NewIdentifier(testPos(), "p", types.QualType{Type: st}, IdentObject)
	m := NewMemberExpr(bag, testPos(), obj, "x", false)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	if m.Type().Type != intQT().Type {
		t.Errorf("p.x should have type int, got %s", m.Type())
	}
}

func TestMemberExprUnknownField(t *testing.T) {
	bag := testBag()
	st := types.NewStructType("point", false)
	st.Complete([]types.StructMember{{Name: "x", Type: intQT()}})
	obj := NewIdentifier(testPos(), "p", types.QualType{Type: st}, IdentObject)
	func() { defer bag.Recover(); NewMemberExpr(bag, testPos(), obj, "z", false) }()
	if !bag.HasErrors() {
		t.Error("referencing an unknown member should be an error")
	}
}

func TestSubscriptDecaysArray(t *testing.T) {
	bag := testBag()
	arr := types.NewArrayType(intQT(), 4)
	obj := NewIdentifier(testPos(), "a", types.QualType{Type: arr}, IdentObject)
	idx := NewIntLiteral(testPos(), 0, intQT())
	x := NewBinaryExpr(bag, testPos(), OpSubscript, obj, idx)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	if x.Type().Type != intQT().Type {
		t.Errorf("a[0] should have type int, got %s", x.Type())
	}
	if !x.IsLValue() {
		t.Error("a[0] must be an lvalue")
	}
}

func TestPointerAdditionScalesBySize(t *testing.T) {
	bag := testBag()
	pt := types.QualType{Type: types.NewPointerType(intQT())}
	p := NewIdentifier(testPos(), "p", pt, IdentObject)
	n := NewIdentifier(testPos(), "n", intQT(), IdentObject)
	b := NewBinaryExpr(bag, testPos(), OpAdd, p, n)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Diagnostics)
	}
	scaled, ok := b.Right.(*BinaryExpr)
	if !ok || scaled.Op != OpMul {
		t.Fatalf("p+n should scale n by the pointee's size, got %v", b.Right)
	}
	size, ok := scaled.Left.(*IntLiteral)
	if !ok || size.Value != uint64(intQT().Type.Size()) {
		t.Errorf("scaling factor should be sizeof(int), got %v", scaled.Left)
	}
}

func TestCastToScalarSucceeds(t *testing.T) {
	bag := testBag()
	operand := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	doubleQT := types.QualType{Type: types.NumberTypeOf(types.SpecDouble)}
	NewCastExpr(bag, testPos(), doubleQT, operand, false)
	if bag.HasErrors() {
		t.Fatalf("casting int to double should not error: %v", bag.Diagnostics)
	}
}

func TestCastToAggregateRejected(t *testing.T) {
	bag := testBag()
	st := types.NewStructType("point", false)
	st.Complete([]types.StructMember{{Name: "x", Type: intQT()}})
	operand := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	func() { defer bag.Recover(); NewCastExpr(bag, testPos(), types.QualType{Type: st}, operand, false) }()
	if !bag.HasErrors() {
		t.Error("casting to a non-scalar, non-void type should be an error")
	}
}

func TestCastToVoidRequiresDiscard(t *testing.T) {
	bag := testBag()
	operand := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	voidQT := types.QualType{Type: types.Void()}
	func() { defer bag.Recover(); NewCastExpr(bag, testPos(), voidQT, operand, false) }()
	if !bag.HasErrors() {
		t.Error("a non-discarded cast to void should be an error")
	}

	bag2 := testBag()
	NewCastExpr(bag2, testPos(), voidQT, operand, true)
	if bag2.HasErrors() {
		t.Errorf("a discarded cast to void should not error: %v", bag2.Diagnostics)
	}
}

func TestCastRequiresScalarOperand(t *testing.T) {
	bag := testBag()
	st := types.NewStructType("point", false)
	st.Complete([]types.StructMember{{Name: "x", Type: intQT()}})
	operand := NewIdentifier(testPos(), "p", types.QualType{Type: st}, IdentObject)
	func() { defer bag.Recover(); NewCastExpr(bag, testPos(), intQT(), operand, false) }()
	if !bag.HasErrors() {
		t.Error("casting a struct operand to a scalar type should be an error")
	}
}

func TestCommaExprTakesRightLValueness(t *testing.T) {
	lhs := NewIntLiteral(testPos(), 1, intQT())
	rhs := NewIdentifier(testPos(), "x", intQT(), IdentObject)
	c := NewCommaExpr(testPos(), lhs, rhs)
	if !c.IsLValue() {
		t.Error("(1, x) should be an lvalue since x is")
	}
}

func TestProgramString(t *testing.T) {
	p := &Program{}
	if p.String() != "" {
		t.Errorf("empty program String() = %q, want empty", p.String())
	}
}
