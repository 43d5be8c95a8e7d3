package uchar

import "testing"

func TestUStringLengths(t *testing.T) {
	u := FromString("café")
	if got := u.ByteLen(); got != 5 {
		t.Errorf("ByteLen() = %d, want 5", got)
	}
	if got := u.RuneLen(); got != 4 {
		t.Errorf("RuneLen() = %d, want 4", got)
	}
}

func TestUStringEqual(t *testing.T) {
	a := FromString("foo")
	b := FromString("foo")
	c := FromString("bar")
	if !a.Equal(b) {
		t.Error("expected equal UStrings to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected different UStrings to compare unequal")
	}
}

func TestInternerSharesContent(t *testing.T) {
	in := NewInterner()
	a := in.Intern("identifier")
	b := in.Intern("identifier")
	if a.String() != b.String() {
		t.Fatalf("interned content mismatch: %q vs %q", a.String(), b.String())
	}
	if len(in.table) != 1 {
		t.Errorf("expected a single table entry, got %d", len(in.table))
	}
}

func TestBuilderFreeze(t *testing.T) {
	in := NewInterner()
	var b Builder
	b.WriteChar('a')
	b.WriteChar('b')
	b.WriteChar('c')
	u := in.Freeze(&b)
	if u.String() != "abc" {
		t.Errorf("Freeze() = %q, want %q", u.String(), "abc")
	}
	if b.Len() != 0 {
		t.Error("Freeze() should reset the builder")
	}
}
