package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"simple position", Position{Line: 1, Column: 5}, "1:5"},
		{"larger numbers", Position{Line: 123, Column: 456}, "123:456"},
		{"with offset", Position{Line: 10, Column: 20, Offset: 100}, "10:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"valid", Position{Line: 1, Column: 1}, true},
		{"zero line invalid", Position{Line: 0, Column: 1}, false},
		{"negative line invalid", Position{Line: -1, Column: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			"identifier",
			Token{Type: IDENT, Literal: "foo", Pos: Position{Line: 1, Column: 5}},
			`IDENT("foo") at 1:5`,
		},
		{
			"keyword",
			Token{Type: WHILE, Literal: "while", Pos: Position{Line: 2, Column: 1}},
			`while("while") at 2:1`,
		},
		{
			"eof",
			Token{Type: EOF, Pos: Position{Line: 10, Column: 20}},
			"EOF at 10:20",
		},
		{
			"truncated literal",
			Token{Type: STRING, Literal: "this is a very long string literal that gets truncated", Pos: Position{Line: 5, Column: 10}},
			`STRING("this is a very long "...) at 5:10`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Token.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if got := Lookup("while"); got != WHILE {
		t.Errorf("Lookup(while) = %v, want WHILE", got)
	}
	if got := Lookup("myVar"); got != IDENT {
		t.Errorf("Lookup(myVar) = %v, want IDENT", got)
	}
}

func TestIsTypeSpecifier(t *testing.T) {
	if !IsTypeSpecifier(INT) {
		t.Error("INT should be a type specifier")
	}
	if IsTypeSpecifier(WHILE) {
		t.Error("WHILE should not be a type specifier")
	}
}
