package uchar

import "unicode/utf8"

// UString is an immutable, insertion-ordered run of UTF-8 text. Two UStrings
// with identical content compare equal by value; once produced through an
// Interner they additionally share storage, so pointer/key comparison is
// enough for the hot identifier-equality path.
type UString struct {
	s string
}

// FromString wraps a plain Go string as a UString without interning it.
func FromString(s string) UString { return UString{s: s} }

func (u UString) String() string { return u.s }

// ByteLen returns the length of u in bytes.
func (u UString) ByteLen() int { return len(u.s) }

// RuneLen returns the length of u in codepoints.
func (u UString) RuneLen() int { return utf8.RuneCountInString(u.s) }

func (u UString) Equal(o UString) bool { return u.s == o.s }

// Append returns a new UString with c appended.
func (u UString) Append(c Char) UString { return UString{s: u.s + string(rune(c))} }

// Builder accumulates Chars while a lexeme is being scanned; it is the
// "owned by the lexer buffer until frozen" half of the UString lifecycle.
// Freeze hands the content to an Interner, which is the "once frozen,
// interned" half.
type Builder struct {
	buf []byte
}

func (b *Builder) WriteChar(c Char) { b.buf = append(b.buf, c.Bytes()...) }

func (b *Builder) WriteByte(c byte) error { b.buf = append(b.buf, c); return nil }

func (b *Builder) WriteString(s string) { b.buf = append(b.buf, s...) }

func (b *Builder) String() string { return string(b.buf) }

func (b *Builder) Reset() { b.buf = b.buf[:0] }

func (b *Builder) Len() int { return len(b.buf) }

// Interner deduplicates UString content so identical contents share one
// underlying allocation. The lexer is handed one Interner at construction
// and interns string-literal content through it; identifiers are not
// interned.
type Interner struct {
	table map[string]UString
}

func NewInterner() *Interner {
	return &Interner{table: make(map[string]UString)}
}

// Intern returns the canonical UString for s, creating it on first sight.
func (in *Interner) Intern(s string) UString {
	if existing, ok := in.table[s]; ok {
		return existing
	}
	u := UString{s: s}
	in.table[s] = u
	return u
}

// Freeze interns the Builder's current content and resets the builder so it
// can be reused for the next lexeme.
func (in *Interner) Freeze(b *Builder) UString {
	u := in.Intern(b.String())
	b.Reset()
	return u
}
