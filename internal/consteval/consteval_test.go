package consteval

import (
	"testing"

	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func testBag() *diag.Bag { return diag.NewBag("t.c", "") }
func testPos() token.Position { return token.Position{Line: 1, Column: 1} }

func intQT() types.QualType { return types.QualType{Type: types.NumberTypeOf(types.SpecInt)} }

func lit(v uint64) *ast.IntLiteral { return ast.NewIntLiteral(testPos(), v, intQT()) }

func TestEvalLongLiteral(t *testing.T) {
	if got := EvalLong(testBag(), lit(42)); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestEvalLongArithmetic(t *testing.T) {
	bag := testBag()
	add := ast.NewBinaryExpr(bag, testPos(), ast.OpAdd, lit(2), lit(3))
	mul := ast.NewBinaryExpr(bag, testPos(), ast.OpMul, add, lit(4))
	if got := EvalLong(bag, mul); got != 20 {
		t.Errorf("(2+3)*4 = %d, want 20", got)
	}
}

func TestEvalLongShift(t *testing.T) {
	bag := testBag()
	shl := ast.NewBinaryExpr(bag, testPos(), ast.OpShl, lit(1), lit(4))
	if got := EvalLong(bag, shl); got != 16 {
		t.Errorf("1<<4 = %d, want 16", got)
	}
}

func TestEvalLongTernary(t *testing.T) {
	bag := testBag()
	cond := ast.NewBinaryExpr(bag, testPos(), ast.OpLess, lit(1), lit(2))
	tern := ast.NewTernaryExpr(bag, testPos(), cond, lit(10), lit(20))
	if got := EvalLong(bag, tern); got != 10 {
		t.Errorf("1<2 ? 10 : 20 = %d, want 10", got)
	}
}

func TestEvalLongRejectsNonConstant(t *testing.T) {
	bag := testBag()
	ident := ast.NewIdentifier(testPos(), "x", intQT(), ast.IdentObject)
	func() { defer bag.Recover(); EvalLong(bag, ident) }()
	if !bag.HasErrors() {
		t.Error("a non-constant identifier should not fold")
	}
}

func TestIsConstant(t *testing.T) {
	if !IsConstant(lit(1)) {
		t.Error("an integer literal should be constant")
	}
	ident := ast.NewIdentifier(testPos(), "x", intQT(), ast.IdentObject)
	if IsConstant(ident) {
		t.Error("a plain object identifier should not be constant")
	}
}

func TestEvalLongDivisionByZeroIsNotConstant(t *testing.T) {
	bag := testBag()
	div := ast.NewBinaryExpr(bag, testPos(), ast.OpDiv, lit(1), lit(0))
	if IsConstant(div) {
		t.Error("division by a constant zero must not fold")
	}
}
