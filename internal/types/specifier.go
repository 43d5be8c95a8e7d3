// Package types implements the C99 type system: the arithmetic/pointer/
// array/struct/enum/function type lattice, its qualifiers and storage
// classes, and the conversion and compatibility rules the semantic layer
// consults while building a typed tree.
package types

import (
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/pkg/token"
)

// Specifier is a bitset of type-specifier keywords, mirroring the original
// compiler's Specifier enum bit-for-bit so that combinations (e.g.
// Unsigned|Long|Int for "unsigned long int") compose the same way.
type Specifier uint32

const (
	SpecVoid Specifier = 1 << iota
	SpecBool
	SpecChar
	SpecShort
	SpecInt
	SpecLong
	SpecLLong
	SpecFloat
	SpecDouble
	SpecComplex
	SpecUnsigned
	SpecSigned
)

const (
	SpecBase = SpecVoid | SpecBool | SpecChar | SpecShort | SpecInt | SpecLong |
		SpecLLong | SpecFloat | SpecDouble | SpecComplex | SpecSigned | SpecUnsigned
	SpecSign    = SpecSigned | SpecUnsigned
	SpecInteger = SpecBool | SpecChar | SpecShort | SpecInt | SpecLong | SpecLLong | SpecSigned | SpecUnsigned
	SpecFloating = SpecFloat | SpecDouble
)

// Qualifier is a bitset of cv-qualifiers (const/volatile/restrict).
type Qualifier uint32

const (
	Const Qualifier = 1 << iota
	Volatile
	Restrict

	QualAll = Const | Volatile | Restrict
)

func (q Qualifier) String() string {
	var out string
	if q&Const != 0 {
		out += "const "
	}
	if q&Volatile != 0 {
		out += "volatile "
	}
	if q&Restrict != 0 {
		out += "restrict "
	}
	return out
}

// StorageClass is a bitset of storage-class specifiers.
type StorageClass uint32

const (
	SCNone     StorageClass = 0 // "auto"; reserved keyword for type deduction, unused in C99
	SCTypedef  StorageClass = 1
	SCStatic   StorageClass = 1 << 1
	SCInline   StorageClass = 1 << 2
	SCRegister StorageClass = 1 << 3
	SCExtern   StorageClass = 1 << 4
)

// storageCompat gives, for each storage class bit, the mask of other bits it
// may legally combine with (index by bit position), ported from the
// original compiler's addStorageClass compatibility table: only
// static+inline may combine; everything else is exclusive.
var storageCompat = map[StorageClass]StorageClass{
	SCTypedef:  0,
	SCStatic:   SCInline,
	SCInline:   SCStatic,
	SCRegister: 0,
	SCExtern:   0,
}

// AddStorageClass folds rhs into lhs, reporting a diagnostic through bag if
// the combination is illegal or deprecated (bare "register").
func AddStorageClass(bag *diag.Bag, pos token.Position, lhs, rhs StorageClass) StorageClass {
	if lhs&^storageCompat[rhs] != 0 {
		bag.Error(pos, diag.Declarator, "cannot apply storage class specifier %q to previous declaration specifiers", storageClassName(rhs))
	} else if rhs == SCRegister {
		bag.Warning(pos, diag.Declarator, "deprecated storage class specifier 'register'; it has no effect")
	}
	return lhs | rhs
}

func storageClassName(sc StorageClass) string {
	switch sc {
	case SCTypedef:
		return "typedef"
	case SCStatic:
		return "static"
	case SCInline:
		return "inline"
	case SCRegister:
		return "register"
	case SCExtern:
		return "extern"
	default:
		return "none"
	}
}

// specCompat gives, for each specifier bit, the mask of other specifier bits
// it may legally combine with, ported directly from the original compiler's
// addSpecifier compatibility table (semantic/typeenum.cpp).
var specCompat = map[Specifier]Specifier{
	SpecVoid:     0,
	SpecBool:     0,
	SpecChar:     SpecSigned | SpecUnsigned,
	SpecShort:    SpecSigned | SpecUnsigned | SpecInt,
	SpecInt:      SpecSigned | SpecUnsigned | SpecShort | SpecLong | SpecLLong,
	SpecLong:     SpecSigned | SpecUnsigned | SpecInt,
	SpecLLong:    SpecSigned | SpecUnsigned | SpecInt,
	SpecFloat:    SpecComplex,
	SpecDouble:   SpecLong | SpecComplex,
	SpecComplex:  SpecFloat | SpecDouble | SpecLong,
	SpecUnsigned: SpecChar | SpecShort | SpecInt | SpecLong | SpecLLong,
	SpecSigned:   SpecChar | SpecShort | SpecInt | SpecLong | SpecLLong,
}

// AddSpecifier folds rhs into lhs, reporting an error through bag if the
// combination is illegal, and folding "long long" (two Long specifiers) into
// a single LLong bit the way the original compiler's addSpecifier does. The
// long+long case is checked before the general compatibility table, since
// that table's "long" entry (what long may follow) does not list long
// itself and would otherwise misreport "long long" as illegal.
func AddSpecifier(bag *diag.Bag, pos token.Position, lhs, rhs Specifier) Specifier {
	if lhs&SpecLong != 0 && rhs&SpecLong != 0 {
		lhs &^= SpecLong
		return lhs | SpecLLong
	}
	if lhs&^specCompat[rhs] != 0 {
		bag.Error(pos, diag.Declarator, "cannot apply specifier %q to specifier sequence %q", specifierName(rhs), SpecifierString(lhs))
	}
	return lhs | rhs
}

// AddQualifier folds rhs into lhs, warning through bag on a duplicate
// qualifier (legal per C99 6.7.3 but worth flagging).
func AddQualifier(bag *diag.Bag, pos token.Position, lhs, rhs Qualifier) Qualifier {
	if lhs&rhs != 0 {
		bag.Warning(pos, diag.Declarator, "duplicate qualifier %q", qualifierName(rhs))
	}
	return lhs | rhs
}

func specifierName(s Specifier) string {
	switch s {
	case SpecVoid:
		return "void"
	case SpecBool:
		return "_Bool"
	case SpecChar:
		return "char"
	case SpecShort:
		return "short"
	case SpecInt:
		return "int"
	case SpecLong:
		return "long"
	case SpecLLong:
		return "long long"
	case SpecFloat:
		return "float"
	case SpecDouble:
		return "double"
	case SpecComplex:
		return "_Complex"
	case SpecUnsigned:
		return "unsigned"
	case SpecSigned:
		return "signed"
	default:
		return "?"
	}
}

func qualifierName(q Qualifier) string {
	switch q {
	case Const:
		return "const"
	case Volatile:
		return "volatile"
	case Restrict:
		return "restrict"
	default:
		return "?"
	}
}

// SpecifierString renders a specifier bitset in keyword order, low bit
// first, matching the original compiler's specifierToString.
func SpecifierString(spec Specifier) string {
	var out string
	for mask := Specifier(1); spec != 0; mask <<= 1 {
		if spec&mask != 0 {
			spec &^= mask
			if out != "" {
				out += " "
			}
			out += specifierName(mask)
		}
	}
	return out
}

// SpecifierFromKeyword maps a single type-specifier keyword token to its
// Specifier bit.
func SpecifierFromKeyword(t token.Type) Specifier {
	switch t {
	case token.VOID:
		return SpecVoid
	case token.BOOL:
		return SpecBool
	case token.CHAR_KW:
		return SpecChar
	case token.SHORT:
		return SpecShort
	case token.INT:
		return SpecInt
	case token.LONG:
		return SpecLong
	case token.FLOAT_KW:
		return SpecFloat
	case token.DOUBLE:
		return SpecDouble
	case token.COMPLEX:
		return SpecComplex
	case token.UNSIGNED:
		return SpecUnsigned
	case token.SIGNED:
		return SpecSigned
	default:
		return 0
	}
}

// QualifierFromKeyword maps a qualifier keyword token to its Qualifier bit.
func QualifierFromKeyword(t token.Type) Qualifier {
	switch t {
	case token.CONST:
		return Const
	case token.VOLATILE:
		return Volatile
	case token.RESTRICT:
		return Restrict
	default:
		return 0
	}
}

// StorageClassFromKeyword maps a storage-class keyword token to its bit.
// Auto is the zero value (deduction marker, unused in C99 but kept for
// parity with the original compiler's enum).
func StorageClassFromKeyword(t token.Type) StorageClass {
	switch t {
	case token.TYPEDEF:
		return SCTypedef
	case token.STATIC:
		return SCStatic
	case token.INLINE:
		return SCInline
	case token.REGISTER:
		return SCRegister
	case token.EXTERN:
		return SCExtern
	default:
		return SCNone
	}
}
