package types

// Type is the common interface implemented by every type-system node. It
// mirrors the original compiler's Type base class, replacing its
// to{Void,Number,Pointer,...}() dynamic-downcast-avoidance methods with a Go
// type switch at call sites (see Pointer, Array, Struct, Enum, Func below)
// and its virtual size()/align()/isComplete() with ordinary interface
// methods.
type Type interface {
	String() string
	IsComplete() bool
	Size() int
	Align() int
	// IsCompatible reports whether two types denote the same type for the
	// purposes of C99 6.2.7 (composite type formation, redeclaration, and
	// function-call argument checking).
	IsCompatible(Type) bool

	typeNode()
}

// QualType pairs a Type with a cv-qualifier set. The original compiler packs
// the qualifier bits into the low bits of a tagged Type pointer (QualType's
// m_ptr); Go gives pointers no such spare bits to steal, and a plain struct
// pair is clearer to read, so QualType here is just (Type, Qualifier) (see
// DESIGN.md, "QualType representation").
type QualType struct {
	Type Type
	Qual Qualifier
}

func NewQualType(t Type, q Qualifier) QualType { return QualType{Type: t, Qual: q} }

func (q QualType) IsConst() bool    { return q.Qual&Const != 0 }
func (q QualType) IsVolatile() bool { return q.Qual&Volatile != 0 }
func (q QualType) IsRestrict() bool { return q.Qual&Restrict != 0 }
func (q QualType) IsNull() bool     { return q.Type == nil }

func (q QualType) String() string {
	if q.Type == nil {
		return "<null type>"
	}
	return q.Qual.String() + q.Type.String()
}

func (q QualType) IsCompatible(o QualType) bool {
	if q.Type == nil || o.Type == nil {
		return q.Type == o.Type
	}
	return q.Type.IsCompatible(o.Type)
}

// Decay implements C99 6.3.2.1: an array-typed expression decays to a
// pointer to its element type, and a function-typed expression decays to a
// pointer to that function. Every other type is returned unchanged.
func (q QualType) Decay() QualType {
	switch t := q.Type.(type) {
	case *ArrayType:
		return QualType{Type: NewPointerType(t.Elem), Qual: 0}
	case *FuncType:
		return QualType{Type: NewPointerType(QualType{Type: t}), Qual: 0}
	default:
		return q
	}
}

// IsScalar reports whether the type is arithmetic or a pointer.
func IsScalar(t Type) bool {
	switch t.(type) {
	case *NumberType, *PointerType:
		return true
	}
	return false
}

// IsAggregate reports whether the type is a struct/union or an array.
func IsAggregate(t Type) bool {
	switch t.(type) {
	case *StructType, *ArrayType:
		return true
	}
	return false
}

// VoidType is C99's incomplete, valueless type.
type VoidType struct{}

var voidSingleton = &VoidType{}

// Void returns the single canonical void type.
func Void() *VoidType { return voidSingleton }

func (*VoidType) typeNode()             {}
func (*VoidType) String() string        { return "void" }
func (*VoidType) IsComplete() bool      { return false }
func (*VoidType) Size() int             { return 0 }
func (*VoidType) Align() int            { return 0 }
func (t *VoidType) IsCompatible(o Type) bool {
	_, ok := o.(*VoidType)
	return ok
}
