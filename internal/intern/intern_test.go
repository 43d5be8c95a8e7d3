package intern

import "testing"

func TestInternDeduplicates(t *testing.T) {
	tb := New()
	a := tb.Intern("foo")
	b := tb.Intern("foo")
	if a != b {
		t.Errorf("interning the same spelling twice should yield equal strings, got %q and %q", a, b)
	}
	if tb.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tb.Len())
	}
}

func TestInternDistinctSpellings(t *testing.T) {
	tb := New()
	tb.Intern("foo")
	tb.Intern("bar")
	if tb.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tb.Len())
	}
}
