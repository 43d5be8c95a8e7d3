// Package uchar provides the UTF-8 character and string primitives the
// lexical core is built on: a rune wrapper with the classification
// predicates the lexer needs, and an interned string type used for
// string-literal content.
package uchar

import "unicode/utf8"

// Char is a single decoded Unicode codepoint together with the predicates
// the lexer consults while scanning. The teacher's source packs a codepoint
// into a 32-bit value with its leading UTF-8 byte in the high byte so that
// ASCII checks are a single comparison; Go's rune already gives us O(1)
// codepoint comparisons, so Char is a thin rune wrapper instead of
// reproducing that bit layout (see DESIGN.md).
type Char rune

// Invalid is the sentinel Char returned at end of input.
const Invalid Char = -1

// DecodeFirst decodes the first codepoint of s, returning it together with
// its width in bytes. Invalid UTF-8 decodes as utf8.RuneError, width 1.
func DecodeFirst(s string) (Char, int) {
	if len(s) == 0 {
		return Invalid, 0
	}
	r, size := utf8.DecodeRuneInString(s)
	return Char(r), size
}

// Bytes returns the UTF-8 encoding of c.
func (c Char) Bytes() []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, rune(c))
	return buf[:n]
}

// Len returns the number of bytes c occupies when encoded as UTF-8.
func (c Char) Len() int { return utf8.RuneLen(rune(c)) }

func (c Char) IsASCII() bool { return c >= 0 && c < 0x80 }

func (c Char) IsUTF8() bool { return c >= 0x80 }

func (c Char) IsNewline() bool { return c == '\n' || c == '\r' }

func (c Char) IsSpace() bool {
	switch c {
	case ' ', '\t', '\f', '\v', '\r':
		return true
	}
	return false
}

func (c Char) IsAlpha() bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$' || c.IsUTF8()
}

func (c Char) IsDigit() bool { return c >= '0' && c <= '9' }

func (c Char) IsAlnum() bool { return c.IsAlpha() || c.IsDigit() }

func (c Char) IsOctDigit() bool { return c >= '0' && c <= '7' }

func (c Char) IsHexDigit() bool {
	return c.IsDigit() || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ToOct returns the numeric value of c as an octal digit, or -1.
func (c Char) ToOct() int {
	if !c.IsOctDigit() {
		return -1
	}
	return int(c - '0')
}

// ToHex returns the numeric value of c as a hex digit, or -1.
func (c Char) ToHex() int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// ToDigit returns the numeric value of c as a decimal digit, or -1.
func (c Char) ToDigit() int {
	if !c.IsDigit() {
		return -1
	}
	return int(c - '0')
}
