package uchar

import "testing"

func TestPredicates(t *testing.T) {
	tests := []struct {
		c                         Char
		ascii, alpha, digit, oct, hex, space, newline bool
	}{
		{'a', true, true, false, false, true, false, false},
		{'9', true, false, true, false, true, false, false},
		{'8', true, false, true, false, true, false, false},
		{'_', true, true, false, false, false, false, false},
		{' ', true, false, false, false, false, true, false},
		{'\n', true, false, false, false, false, false, true},
		{'Δ', false, true, false, false, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.c.IsASCII(); got != tt.ascii {
			t.Errorf("%q.IsASCII() = %v, want %v", rune(tt.c), got, tt.ascii)
		}
		if got := tt.c.IsAlpha(); got != tt.alpha {
			t.Errorf("%q.IsAlpha() = %v, want %v", rune(tt.c), got, tt.alpha)
		}
		if got := tt.c.IsDigit(); got != tt.digit {
			t.Errorf("%q.IsDigit() = %v, want %v", rune(tt.c), got, tt.digit)
		}
		if got := tt.c.IsOctDigit(); got != tt.oct {
			t.Errorf("%q.IsOctDigit() = %v, want %v", rune(tt.c), got, tt.oct)
		}
		if got := tt.c.IsHexDigit(); got != tt.hex {
			t.Errorf("%q.IsHexDigit() = %v, want %v", rune(tt.c), got, tt.hex)
		}
		if got := tt.c.IsSpace(); got != tt.space {
			t.Errorf("%q.IsSpace() = %v, want %v", rune(tt.c), got, tt.space)
		}
		if got := tt.c.IsNewline(); got != tt.newline {
			t.Errorf("%q.IsNewline() = %v, want %v", rune(tt.c), got, tt.newline)
		}
	}
}

func TestToOctToHex(t *testing.T) {
	if got := Char('7').ToOct(); got != 7 {
		t.Errorf("'7'.ToOct() = %d, want 7", got)
	}
	if got := Char('8').ToOct(); got != -1 {
		t.Errorf("'8'.ToOct() = %d, want -1", got)
	}
	if got := Char('f').ToHex(); got != 15 {
		t.Errorf("'f'.ToHex() = %d, want 15", got)
	}
	if got := Char('F').ToHex(); got != 15 {
		t.Errorf("'F'.ToHex() = %d, want 15", got)
	}
	if got := Char('g').ToHex(); got != -1 {
		t.Errorf("'g'.ToHex() = %d, want -1", got)
	}
}

func TestDecodeFirst(t *testing.T) {
	c, n := DecodeFirst("Δx")
	if c != 'Δ' || n != 2 {
		t.Errorf("DecodeFirst = (%q, %d), want ('Δ', 2)", rune(c), n)
	}
	c, n = DecodeFirst("")
	if c != Invalid || n != 0 {
		t.Errorf("DecodeFirst(\"\") = (%v, %d), want (Invalid, 0)", c, n)
	}
}
