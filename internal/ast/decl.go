package ast

import (
	"github.com/cwbudde/ccfront/internal/types"
	"github.com/cwbudde/ccfront/pkg/token"
)

func (*VarDecl) declNode()     {}
func (*FuncDecl) declNode()    {}
func (*TypedefDecl) declNode() {}
func (*TagDecl) declNode()     {}
func (*ParamDecl) declNode()   {}

// VarDecl declares an object (or, at file scope with no initializer, a
// tentative definition per C99 6.9.2).
type VarDecl struct {
	base
	Name string
	Ty   types.QualType
	SC   types.StorageClass
	Init Expression // nil when there is no initializer
}

func NewVarDecl(pos token.Position, name string, ty types.QualType, sc types.StorageClass, init Expression) *VarDecl {
	return &VarDecl{base: base{pos}, Name: name, Ty: ty, SC: sc, Init: init}
}

func (v *VarDecl) String() string {
	s := v.Ty.String() + " " + v.Name
	if v.Init != nil {
		s += " = " + v.Init.String()
	}
	return s + ";"
}

// ParamDecl is one parameter of a function declarator or definition.
type ParamDecl struct {
	base
	Name string
	Ty   types.QualType
}

func NewParamDecl(pos token.Position, name string, ty types.QualType) *ParamDecl {
	return &ParamDecl{base: base{pos}, Name: name, Ty: ty}
}

func (p *ParamDecl) String() string { return p.Ty.String() + " " + p.Name }

// FuncDecl is a function declaration or, when Body is non-nil, definition.
type FuncDecl struct {
	base
	Name   string
	Ty     *types.FuncType
	Params []*ParamDecl
	SC     types.StorageClass
	Body   *CompoundStmt // nil for a declaration without a body
}

func NewFuncDecl(pos token.Position, name string, ty *types.FuncType, params []*ParamDecl, sc types.StorageClass, body *CompoundStmt) *FuncDecl {
	return &FuncDecl{base: base{pos}, Name: name, Ty: ty, Params: params, SC: sc, Body: body}
}

func (f *FuncDecl) IsDefinition() bool { return f.Body != nil }

func (f *FuncDecl) String() string {
	s := f.Ty.Ret.String() + " " + f.Name + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	s += ")"
	if f.Body == nil {
		return s + ";"
	}
	return s + " " + f.Body.String()
}

// TypedefDecl introduces a new name for Ty, per C99 6.7.7.
type TypedefDecl struct {
	base
	Name string
	Ty   types.QualType
}

func NewTypedefDecl(pos token.Position, name string, ty types.QualType) *TypedefDecl {
	return &TypedefDecl{base: base{pos}, Name: name, Ty: ty}
}

func (t *TypedefDecl) String() string { return "typedef " + t.Ty.String() + " " + t.Name + ";" }

// TagDecl wraps a struct/union/enum specifier's introduction or completion
// as a standalone declaration (e.g. "struct point { int x, y; };").
type TagDecl struct {
	base
	Ty types.Type
}

func NewTagDecl(pos token.Position, ty types.Type) *TagDecl {
	return &TagDecl{base: base{pos}, Ty: ty}
}

func (t *TagDecl) String() string { return t.Ty.String() + ";" }
