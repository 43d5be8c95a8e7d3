package lexer

import (
	"strings"

	"github.com/cwbudde/ccfront/pkg/token"
)

// lexNumber scans a preprocessing-number starting at a leading digit.
func (l *Lexer) lexNumber(startPos token.Position) token.Token {
	return l.lexNumberFrom(startPos, "")
}

// lexNumberFrom scans a preprocessing-number whose first characters
// (a leading digit, or "." followed by a digit) are already known, given as
// prefix. It implements the pp-number grammar of C99 6.4.8: a digit or
// "."digit, extended by any run of digits, identifier-nondigits, '.'
// characters and exponent markers ('e'/'E'/'p'/'P' each optionally followed
// by a sign). The token is classified PP_FLOAT if it contains a '.' or an
// exponent, PP_NUMBER otherwise; in a "0x"/"0X" number 'e'/'E' is a hex
// digit, and only 'p'/'P' marks an exponent.
func (l *Lexer) lexNumberFrom(startPos token.Position, prefix string) token.Token {
	var sb strings.Builder
	sb.WriteString(prefix)
	isFloat := strings.Contains(prefix, ".")

	for {
		ch := l.src.Peek()
		switch {
		case ch.IsDigit():
			sb.WriteString(string(l.src.Get().Bytes()))
		case ch == '.':
			isFloat = true
			sb.WriteString(string(l.src.Get().Bytes()))
		case ch.IsAlpha():
			// identifier-nondigit extension, including exponent markers;
			// a following sign is consumed only right after e/E/p/P.
			letter := l.src.Get()
			sb.WriteString(string(letter.Bytes()))
			if letter == 'e' || letter == 'E' || letter == 'p' || letter == 'P' {
				lit := sb.String()
				hex := len(lit) > 2 && lit[0] == '0' && (lit[1] == 'x' || lit[1] == 'X')
				if letter == 'p' || letter == 'P' || !hex {
					isFloat = true
				}
				if sign := l.src.Peek(); sign == '+' || sign == '-' {
					sb.WriteString(string(l.src.Get().Bytes()))
				}
			}
		default:
			lit := sb.String()
			if isFloat {
				return l.emit(token.PP_FLOAT, lit, startPos)
			}
			return l.emit(token.PP_NUMBER, lit, startPos)
		}
	}
}
