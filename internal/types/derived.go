package types

import "strconv"

// PointerType is "pointer to T" for any base type T, including incomplete
// and function types.
type PointerType struct {
	Base QualType
}

func NewPointerType(base QualType) *PointerType { return &PointerType{Base: base} }

func (*PointerType) typeNode()        {}
func (*PointerType) IsComplete() bool { return true }
func (*PointerType) Size() int        { return 4 }
func (*PointerType) Align() int       { return 4 }
func (p *PointerType) String() string { return p.Base.String() + "*" }

func (p *PointerType) IsCompatible(o Type) bool {
	op, ok := o.(*PointerType)
	return ok && p.Base.IsCompatible(op.Base)
}

func (p *PointerType) IsVoidPtr() bool {
	_, ok := p.Base.Type.(*VoidType)
	return ok
}

// ArrayType is "array of T", with Bound == -1 meaning an incomplete array
// (no declared size yet, e.g. "extern int a[];" or a parameter "int a[]").
type ArrayType struct {
	Elem  QualType
	Bound int
}

func NewArrayType(elem QualType, bound int) *ArrayType {
	return &ArrayType{Elem: elem, Bound: bound}
}

func (*ArrayType) typeNode()   {}
func (a *ArrayType) IsComplete() bool { return a.Bound != -1 }

func (a *ArrayType) Size() int {
	if !a.IsComplete() || a.Elem.Type == nil {
		return 0
	}
	return a.Elem.Type.Size() * a.Bound
}

func (a *ArrayType) Align() int {
	if a.Elem.Type == nil {
		return 0
	}
	return a.Elem.Type.Align()
}

func (a *ArrayType) String() string {
	s := a.Elem.String() + "["
	if a.IsComplete() {
		s += strconv.Itoa(a.Bound)
	}
	return s + "]"
}

func (a *ArrayType) IsCompatible(o Type) bool {
	oa, ok := o.(*ArrayType)
	return ok && oa.Bound == a.Bound && a.Elem.IsCompatible(oa.Elem)
}

// StructMember is one named (or, for an anonymous member, unnamed) field of
// a struct or union type.
type StructMember struct {
	Name string
	Type QualType
}

// StructType is a struct or union type; IsUnion distinguishes the two
// (their member layout and initializer rules differ, but both share this
// representation, as in the original compiler's single StructType covering
// both via the parser's distinct construction sites).
type StructType struct {
	Tag      string
	Members  []StructMember
	IsUnion  bool
	complete bool
}

func NewStructType(tag string, isUnion bool) *StructType {
	return &StructType{Tag: tag, IsUnion: isUnion}
}

func (*StructType) typeNode() {}

// Complete marks the type as fully defined once its member list is known
// (i.e. once the closing '}' of the struct-or-union-specifier is parsed).
func (s *StructType) Complete(members []StructMember) {
	s.Members = members
	s.complete = true
}

func (s *StructType) IsComplete() bool { return s.complete }

func (s *StructType) Size() int {
	if !s.complete {
		return 0
	}
	if s.IsUnion {
		max := 0
		for _, m := range s.Members {
			if sz := m.Type.Type.Size(); sz > max {
				max = sz
			}
		}
		return max
	}
	total := 0
	for _, m := range s.Members {
		align := m.Type.Type.Align()
		if align > 0 {
			total = (total + align - 1) &^ (align - 1)
		}
		total += m.Type.Type.Size()
	}
	return total
}

func (s *StructType) Align() int {
	max := 1
	for _, m := range s.Members {
		if a := m.Type.Type.Align(); a > max {
			max = a
		}
	}
	return max
}

func (s *StructType) String() string {
	kw := "struct"
	if s.IsUnion {
		kw = "union"
	}
	if s.Tag != "" {
		return kw + " " + s.Tag
	}
	return kw + " <anonymous>"
}

// IsCompatible implements C99 6.2.7's structure/union compatibility rule:
// distinct struct/union specifiers always declare distinct types, so the
// only way two StructType values are compatible is pointer identity
// (produced by the tag-resolution scope returning the prior declaration's
// *StructType for a forward or repeated use of the same tag).
func (s *StructType) IsCompatible(o Type) bool { return s == o }

// EnumType is an enum type; it carries the same representation as its
// compatible integer type (C99 6.7.2.2: "each enumerated type shall be
// compatible with char, a signed integer type, or an unsigned integer
// type"); NewEnumType always picks int.
type EnumType struct {
	Tag        string
	Underlying *NumberType
	Enumerators []string
	complete   bool
}

func NewEnumType(tag string) *EnumType {
	return &EnumType{Tag: tag, Underlying: NumberTypeOf(SpecInt)}
}

func (*EnumType) typeNode() {}

func (e *EnumType) Complete(enumerators []string) {
	e.Enumerators = enumerators
	e.complete = true
}

func (e *EnumType) IsComplete() bool { return e.complete }
func (e *EnumType) Size() int        { return e.Underlying.Size() }
func (e *EnumType) Align() int       { return e.Underlying.Align() }

func (e *EnumType) String() string {
	if e.Tag != "" {
		return "enum " + e.Tag
	}
	return "enum <anonymous>"
}

func (e *EnumType) IsCompatible(o Type) bool { return e == o }

// FuncParam is one named or unnamed parameter of a function type.
type FuncParam struct {
	Name string
	Type QualType
}

// FuncType is "function (params...) returning Ret".
type FuncType struct {
	Ret      QualType
	Params   []FuncParam
	Variadic bool
	// Prototyped is false for an old-style "int f()" declarator (no
	// parameter-type-list seen yet), matching C99 6.7.5.3's distinction
	// between a function declarator with and without a prototype.
	Prototyped bool
}

func NewFuncType(ret QualType, params []FuncParam, variadic, prototyped bool) *FuncType {
	return &FuncType{Ret: ret, Params: params, Variadic: variadic, Prototyped: prototyped}
}

func (*FuncType) typeNode()        {}
func (*FuncType) IsComplete() bool { return true }
func (*FuncType) Size() int        { return 0 }
func (*FuncType) Align() int       { return 0 }

func (f *FuncType) String() string {
	s := f.Ret.String() + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Type.String()
	}
	if f.Variadic {
		if len(f.Params) > 0 {
			s += ", "
		}
		s += "..."
	}
	return s + ")"
}

// IsCompatible implements C99 6.7.5.3's function-type compatibility: same
// return type, same parameter count and types (when both sides are
// prototyped), and matching variadic-ness. A declaration without a
// prototype is only checked for return-type compatibility, matching the
// original compiler's lenient old-style-declaration handling.
func (f *FuncType) IsCompatible(o Type) bool {
	of, ok := o.(*FuncType)
	if !ok || !f.Ret.IsCompatible(of.Ret) {
		return false
	}
	if !f.Prototyped || !of.Prototyped {
		return true
	}
	if f.Variadic != of.Variadic || len(f.Params) != len(of.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Type.IsCompatible(of.Params[i].Type) {
			return false
		}
	}
	return true
}
