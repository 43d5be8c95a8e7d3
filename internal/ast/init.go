package ast

import (
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func (*InitList) exprNode() {}

// InitList is a brace-enclosed initializer, "{ e1, e2, ... }", for an
// aggregate (array or struct/union) object per C99 6.7.8. Elems holds the
// elements in the order they are written. Designators (".member",
// "[index]") are not parsed, so a designated initializer is rejected as a
// syntax error.
type InitList struct {
	base
	Elems []Expression
	Ty    types.QualType
}

func NewInitList(pos token.Position, elems []Expression, ty types.QualType) *InitList {
	return &InitList{base: base{pos}, Elems: elems, Ty: ty}
}

func (l *InitList) Type() types.QualType { return l.Ty }
func (l *InitList) IsLValue() bool       { return false }
func (l *InitList) String() string {
	s := "{"
	for i, e := range l.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "}"
}
