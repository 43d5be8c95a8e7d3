package types

// NumberType is every arithmetic type: _Bool, the character types, the
// signed/unsigned integer types, and the floating types. It is represented,
// as in the original compiler, by a single Specifier bitset rather than a
// family of subclasses.
type NumberType struct {
	spec Specifier
}

func (*NumberType) typeNode()        {}
func (n *NumberType) IsComplete() bool { return true }

func (n *NumberType) String() string { return SpecifierString(n.spec) }

// Size reports the type's size in bytes, per the ILP32-ish sizes the
// original compiler's TypeSize enum assumes (4-byte long/pointer).
func (n *NumberType) Size() int {
	switch n.spec {
	case SpecBool:
		return 1
	case SpecChar, SpecSigned | SpecChar, SpecUnsigned | SpecChar:
		return 1
	case SpecShort, SpecSigned | SpecShort, SpecShort | SpecInt, SpecSigned | SpecShort | SpecInt,
		SpecUnsigned | SpecShort, SpecUnsigned | SpecShort | SpecInt:
		return 2
	case SpecInt, SpecSigned, SpecSigned | SpecInt, SpecUnsigned, SpecUnsigned | SpecInt:
		return 4
	case SpecLong, SpecSigned | SpecLong, SpecLong | SpecInt, SpecSigned | SpecLong | SpecInt,
		SpecUnsigned | SpecLong, SpecUnsigned | SpecLong | SpecInt:
		return 4
	case SpecLLong, SpecSigned | SpecLLong, SpecLLong | SpecInt, SpecSigned | SpecLLong | SpecInt,
		SpecUnsigned | SpecLLong, SpecUnsigned | SpecLLong | SpecInt:
		return 8
	case SpecFloat:
		return 4
	case SpecDouble:
		return 8
	case SpecLong | SpecDouble:
		return 8
	default:
		return 0
	}
}

func (n *NumberType) Align() int { return n.Size() }

func (n *NumberType) IsCompatible(o Type) bool {
	on, ok := o.(*NumberType)
	return ok && on.spec == n.spec
}

func (n *NumberType) IsSigned() bool   { return !n.IsUnsigned() }
func (n *NumberType) IsUnsigned() bool { return n.spec&SpecUnsigned != 0 }
func (n *NumberType) IsBool() bool     { return n.spec == SpecBool }
func (n *NumberType) IsChar() bool     { return n.spec&SpecChar != 0 }
func (n *NumberType) IsShort() bool    { return n.spec&SpecShort != 0 }
func (n *NumberType) IsInt() bool      { return n.spec&SpecInt != 0 }
func (n *NumberType) IsLong() bool     { return n.spec&SpecLong != 0 }
func (n *NumberType) IsLongLong() bool { return n.spec&SpecLLong != 0 }
func (n *NumberType) IsFloat() bool    { return n.spec == SpecFloat }
func (n *NumberType) IsDouble() bool   { return n.spec == SpecDouble }
func (n *NumberType) IsLongDouble() bool { return n.spec == SpecLong|SpecDouble }
func (n *NumberType) IsIntegral() bool { return n.spec&SpecInteger != 0 }
func (n *NumberType) IsFraction() bool { return n.spec&SpecFloating != 0 }

// Rank implements the integer conversion rank ordering of C99 6.3.1.1: the
// specifier bitset with the sign bits masked off, since sign never affects
// rank ordering between a type and its unsigned counterpart.
func (n *NumberType) Rank() uint32 { return uint32(n.spec &^ SpecSign) }

// Promote implements the integer promotions of C99 6.3.1.1: any type with
// rank at or below int promotes to int (or unsigned int if int cannot
// represent all its values); every other type is unchanged.
func (n *NumberType) Promote() *NumberType {
	target := NumberTypeOf(SpecInt)
	if n.Rank() > target.Rank() {
		return n
	}
	// int holds every value of each narrower type (char, short, _Bool);
	// only unsigned int itself, at int's rank, stays unsigned.
	if n.IsUnsigned() && n.Rank() == target.Rank() {
		return NumberTypeOf(SpecUnsigned | SpecInt)
	}
	return target
}

// numberSingletons caches the canonical NumberType for each of the 15
// normalized specifier combinations, matching the original compiler's
// makeNumberType placement-new singletons.
var numberSingletons = map[Specifier]*NumberType{}

func init() {
	for _, spec := range []Specifier{
		SpecBool,
		SpecChar, SpecSigned | SpecChar, SpecUnsigned | SpecChar,
		SpecShort, SpecUnsigned | SpecShort,
		SpecInt, SpecUnsigned | SpecInt,
		SpecLong, SpecUnsigned | SpecLong,
		SpecLLong, SpecUnsigned | SpecLLong,
		SpecFloat, SpecDouble, SpecLong | SpecDouble,
	} {
		numberSingletons[spec] = &NumberType{spec: spec}
	}
}

// normalizeSpec folds the equivalent spellings of a specifier combination
// (e.g. "signed int", "int", and bare "signed" all mean SpecInt) onto the
// canonical bitset makeNumberType switches on.
func normalizeSpec(spec Specifier) Specifier {
	switch {
	case spec == SpecBool:
		return SpecBool
	case spec == SpecChar:
		return SpecChar
	case spec == SpecSigned|SpecChar:
		return SpecSigned | SpecChar
	case spec == SpecUnsigned|SpecChar:
		return SpecUnsigned | SpecChar
	case spec&SpecShort != 0:
		if spec&SpecUnsigned != 0 {
			return SpecUnsigned | SpecShort
		}
		return SpecShort
	case spec&SpecLLong != 0:
		if spec&SpecUnsigned != 0 {
			return SpecUnsigned | SpecLLong
		}
		return SpecLLong
	case spec&SpecLong != 0 && spec&SpecFloating == 0:
		if spec&SpecUnsigned != 0 {
			return SpecUnsigned | SpecLong
		}
		return SpecLong
	case spec&SpecUnsigned != 0:
		return SpecUnsigned | SpecInt
	case spec == SpecFloat:
		return SpecFloat
	case spec == SpecDouble:
		return SpecDouble
	case spec == SpecLong|SpecDouble:
		return SpecLong | SpecDouble
	default:
		return SpecInt
	}
}

// NumberTypeOf returns the canonical NumberType for a (possibly
// non-normalized) specifier combination, e.g. both SpecInt and
// SpecSigned|SpecInt return the same *NumberType.
func NumberTypeOf(spec Specifier) *NumberType {
	norm := normalizeSpec(spec)
	if t, ok := numberSingletons[norm]; ok {
		return t
	}
	return numberSingletons[SpecInt]
}

// UsualArithmeticConversions implements C99 6.3.1.8: given the (already
// integer-promoted, where applicable) operand types of a binary arithmetic
// operator, returns the common type both operands convert to. Ported from
// the original compiler's greater() helper.
func UsualArithmeticConversions(lhs, rhs *NumberType) *NumberType {
	max := lhs
	if lhs.Rank() < rhs.Rank() {
		max = rhs
	}
	if max.IsFraction() {
		return max
	}
	spec := Specifier(max.Rank())
	if lhs.IsUnsigned() || rhs.IsUnsigned() {
		spec |= SpecUnsigned
	}
	return NumberTypeOf(spec)
}
