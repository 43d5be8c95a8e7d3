package ast

import "github.com/cwbudde/ccfront/pkg/token"

// OpCode names a unary, binary, or postfix operator independently of the
// token spelling that introduced it (prefix ++ and postfix ++ are distinct
// opcodes, for instance), mirroring the original compiler's OpCode enum.
type OpCode int

const (
	OpMember OpCode = iota
	OpMemberPtr
	OpDeref
	OpAddressOf
	OpSubscript
	OpComma
	OpNegate
	OpPlus
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitNot
	OpShl
	OpShr
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual
	OpLogAnd
	OpLogOr
	OpNot
	OpPrefixInc
	OpPostfixInc
	OpPrefixDec
	OpPostfixDec
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpBitAndAssign
	OpBitOrAssign
	OpBitXorAssign
	OpShlAssign
	OpShrAssign
)

var opNames = map[OpCode]string{
	OpMember: ".", OpMemberPtr: "->", OpDeref: "*", OpAddressOf: "&",
	OpSubscript: "[]", OpComma: ",", OpNegate: "-", OpPlus: "+",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^", OpBitNot: "~",
	OpShl: "<<", OpShr: ">>",
	OpLess: "<", OpLessEqual: "<=", OpGreater: ">", OpGreaterEqual: ">=",
	OpEqual: "==", OpNotEqual: "!=", OpLogAnd: "&&", OpLogOr: "||", OpNot: "!",
	OpPrefixInc: "++", OpPostfixInc: "++", OpPrefixDec: "--", OpPostfixDec: "--",
	OpAssign: "=", OpAddAssign: "+=", OpSubAssign: "-=", OpMulAssign: "*=",
	OpDivAssign: "/=", OpModAssign: "%=", OpBitAndAssign: "&=",
	OpBitOrAssign: "|=", OpBitXorAssign: "^=", OpShlAssign: "<<=", OpShrAssign: ">>=",
}

func (op OpCode) String() string { return opNames[op] }

// IsAssignment reports whether op is a (possibly compound) assignment.
func (op OpCode) IsAssignment() bool {
	switch op {
	case OpAssign, OpAddAssign, OpSubAssign, OpMulAssign, OpDivAssign, OpModAssign,
		OpBitAndAssign, OpBitOrAssign, OpBitXorAssign, OpShlAssign, OpShrAssign:
		return true
	}
	return false
}

// BinaryOpFromToken maps a binary-operator token to its OpCode, per the
// original compiler's toOpCode.
func BinaryOpFromToken(t token.Type) OpCode {
	switch t {
	case token.PLUS:
		return OpAdd
	case token.MINUS:
		return OpSub
	case token.STAR:
		return OpMul
	case token.SLASH:
		return OpDiv
	case token.PERCENT:
		return OpMod
	case token.AMP:
		return OpBitAnd
	case token.OR:
		return OpBitOr
	case token.XOR:
		return OpBitXor
	case token.SHL:
		return OpShl
	case token.SHR:
		return OpShr
	case token.LSS:
		return OpLess
	case token.LEQ:
		return OpLessEqual
	case token.GTR:
		return OpGreater
	case token.GEQ:
		return OpGreaterEqual
	case token.EQL:
		return OpEqual
	case token.NEQ:
		return OpNotEqual
	case token.LAND:
		return OpLogAnd
	case token.LOR:
		return OpLogOr
	case token.COMMA:
		return OpComma
	case token.ASSIGN:
		return OpAssign
	case token.ADD_ASSIGN:
		return OpAddAssign
	case token.SUB_ASSIGN:
		return OpSubAssign
	case token.MUL_ASSIGN:
		return OpMulAssign
	case token.DIV_ASSIGN:
		return OpDivAssign
	case token.MOD_ASSIGN:
		return OpModAssign
	case token.AND_ASSIGN:
		return OpBitAndAssign
	case token.OR_ASSIGN:
		return OpBitOrAssign
	case token.XOR_ASSIGN:
		return OpBitXorAssign
	case token.SHL_ASSIGN:
		return OpShlAssign
	case token.SHR_ASSIGN:
		return OpShrAssign
	default:
		return -1
	}
}
