// Package consteval folds integer constant expressions (C99 6.6), the way
// the original compiler's ConstExpr::evalLong walks an expression tree and
// returns its value, used for array bounds, enumerator values, and case
// labels.
package consteval

import (
	"github.com/cwbudde/ccfront/internal/ast"
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/pkg/token"
)

// EvalLong folds e to an int64. If e is not an integer constant expression
// per C99 6.6, it reports a fatal diagnostic through bag.Error, which
// unwinds to the caller's deferred bag.Recover.
func EvalLong(bag *diag.Bag, e ast.Expression) int64 {
	v, ok := eval(e)
	if !ok {
		bag.Error(e.Pos(), diag.SemanticExpr, "expression is not an integer constant expression")
		return 0
	}
	return v
}

// IsConstant reports whether e can be folded to a compile-time integer
// value, without raising a diagnostic if it cannot.
func IsConstant(e ast.Expression) bool {
	_, ok := eval(e)
	return ok
}

func eval(e ast.Expression) (int64, bool) {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return int64(n.Value), true
	case *ast.CharLiteral:
		return int64(n.Value), true
	case *ast.UnaryExpr:
		return evalUnary(n)
	case *ast.BinaryExpr:
		return evalBinary(n)
	case *ast.TernaryExpr:
		return evalTernary(n)
	case *ast.CastExpr:
		return eval(n.Operand)
	case *ast.SizeofExpr:
		ty := n.OperandTy
		if n.Operand != nil {
			ty = n.Operand.Type()
		}
		if ty.IsNull() {
			return 0, false
		}
		return int64(ty.Type.Size()), true
	case *ast.Identifier:
		if n.Kind == ast.IdentEnumerator {
			return n.Value, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func evalUnary(n *ast.UnaryExpr) (int64, bool) {
	v, ok := eval(n.Operand)
	if !ok {
		return 0, false
	}
	switch n.Op {
	case ast.OpNegate:
		return -v, true
	case ast.OpPlus:
		return v, true
	case ast.OpBitNot:
		return ^v, true
	case ast.OpNot:
		if v == 0 {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func evalBinary(n *ast.BinaryExpr) (int64, bool) {
	l, lok := eval(n.Left)
	r, rok := eval(n.Right)
	if !lok || !rok {
		return 0, false
	}
	switch n.Op {
	case ast.OpAdd:
		return l + r, true
	case ast.OpSub:
		return l - r, true
	case ast.OpMul:
		return l * r, true
	case ast.OpDiv:
		if r == 0 {
			return 0, false
		}
		return l / r, true
	case ast.OpMod:
		if r == 0 {
			return 0, false
		}
		return l % r, true
	case ast.OpBitAnd:
		return l & r, true
	case ast.OpBitOr:
		return l | r, true
	case ast.OpBitXor:
		return l ^ r, true
	case ast.OpShl:
		return l << uint(r), true
	case ast.OpShr:
		return l >> uint(r), true
	case ast.OpLess:
		return boolToInt(l < r), true
	case ast.OpLessEqual:
		return boolToInt(l <= r), true
	case ast.OpGreater:
		return boolToInt(l > r), true
	case ast.OpGreaterEqual:
		return boolToInt(l >= r), true
	case ast.OpEqual:
		return boolToInt(l == r), true
	case ast.OpNotEqual:
		return boolToInt(l != r), true
	case ast.OpLogAnd:
		return boolToInt(l != 0 && r != 0), true
	case ast.OpLogOr:
		return boolToInt(l != 0 || r != 0), true
	default:
		return 0, false
	}
}

func evalTernary(n *ast.TernaryExpr) (int64, bool) {
	c, ok := eval(n.Cond)
	if !ok {
		return 0, false
	}
	if c != 0 {
		return eval(n.Then)
	}
	return eval(n.Else)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Pos re-exports token.Position so callers that only import consteval for
// diagnostics don't also need the token package.
type Pos = token.Position
