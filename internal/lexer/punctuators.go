package lexer

import (
	"github.com/cwbudde/ccfront/internal/diag"
	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
)

// lexPunct matches the longest legal punctuator starting at the current
// position, folding digraphs (<: :> <% %> %: %:%:) into the punctuator they
// stand for.
// position. Order within each case matters: longer spellings are tried
// before shorter prefixes of themselves.
func (l *Lexer) lexPunct(startPos token.Position) token.Token {
	ch := l.src.Get()

	switch ch {
	case '[':
		return l.emit(token.LBRACK, "[", startPos)
	case ']':
		return l.emit(token.RBRACK, "]", startPos)
	case '(':
		return l.emit(token.LPAREN, "(", startPos)
	case ')':
		return l.emit(token.RPAREN, ")", startPos)
	case '{':
		return l.emit(token.LBRACE, "{", startPos)
	case '}':
		return l.emit(token.RBRACE, "}", startPos)
	case ',':
		return l.emit(token.COMMA, ",", startPos)
	case '?':
		return l.emit(token.QUESTION, "?", startPos)
	case ';':
		return l.emit(token.SEMICOLON, ";", startPos)
	case '~':
		return l.emit(token.TILDE, "~", startPos)

	case ':':
		if l.src.Want('>') {
			return l.emit(token.RBRACK, ":>", startPos)
		}
		return l.emit(token.COLON, ":", startPos)

	case '<':
		if l.src.Want(':') {
			return l.emit(token.LBRACK, "<:", startPos)
		}
		if l.src.Want('%') {
			return l.emit(token.LBRACE, "<%", startPos)
		}
		if l.src.Want('<') {
			if l.src.Want('=') {
				return l.emit(token.SHL_ASSIGN, "<<=", startPos)
			}
			return l.emit(token.SHL, "<<", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.LEQ, "<=", startPos)
		}
		return l.emit(token.LSS, "<", startPos)

	case '%':
		if l.src.Want(':') {
			if l.src.Peek() == '%' {
				// need two chars lookahead for %:%: ; speculatively consume.
				mark := l.src.Get()
				if l.src.Want(':') {
					return l.emit(token.HHASH, "%:%:", startPos)
				}
				l.src.Unget(mark)
			}
			return l.emit(token.HASH, "%:", startPos)
		}
		if l.src.Want('>') {
			return l.emit(token.RBRACE, "%>", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.MOD_ASSIGN, "%=", startPos)
		}
		return l.emit(token.PERCENT, "%", startPos)

	case '>':
		if l.src.Want('>') {
			if l.src.Want('=') {
				return l.emit(token.SHR_ASSIGN, ">>=", startPos)
			}
			return l.emit(token.SHR, ">>", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.GEQ, ">=", startPos)
		}
		return l.emit(token.GTR, ">", startPos)

	case '.':
		// handled in Next for pp-number disambiguation; reaching here means
		// a bare '.' that is not part of "..." or a number.
		return l.emit(token.DOT, ".", startPos)

	case '-':
		if l.src.Want('>') {
			return l.emit(token.ARROW, "->", startPos)
		}
		if l.src.Want('-') {
			return l.emit(token.DEC, "--", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.SUB_ASSIGN, "-=", startPos)
		}
		return l.emit(token.MINUS, "-", startPos)

	case '+':
		if l.src.Want('+') {
			return l.emit(token.INC, "++", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.ADD_ASSIGN, "+=", startPos)
		}
		return l.emit(token.PLUS, "+", startPos)

	case '&':
		if l.src.Want('&') {
			return l.emit(token.LAND, "&&", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.AND_ASSIGN, "&=", startPos)
		}
		return l.emit(token.AMP, "&", startPos)

	case '|':
		if l.src.Want('|') {
			return l.emit(token.LOR, "||", startPos)
		}
		if l.src.Want('=') {
			return l.emit(token.OR_ASSIGN, "|=", startPos)
		}
		return l.emit(token.OR, "|", startPos)

	case '^':
		if l.src.Want('=') {
			return l.emit(token.XOR_ASSIGN, "^=", startPos)
		}
		return l.emit(token.XOR, "^", startPos)

	case '*':
		if l.src.Want('=') {
			return l.emit(token.MUL_ASSIGN, "*=", startPos)
		}
		return l.emit(token.STAR, "*", startPos)

	case '/':
		if l.src.Want('=') {
			return l.emit(token.DIV_ASSIGN, "/=", startPos)
		}
		return l.emit(token.SLASH, "/", startPos)

	case '=':
		if l.src.Want('=') {
			return l.emit(token.EQL, "==", startPos)
		}
		return l.emit(token.ASSIGN, "=", startPos)

	case '!':
		if l.src.Want('=') {
			return l.emit(token.NEQ, "!=", startPos)
		}
		return l.emit(token.NOT, "!", startPos)

	case '#':
		if l.src.Want('#') {
			return l.emit(token.HHASH, "##", startPos)
		}
		return l.emit(token.HASH, "#", startPos)

	case uchar.Invalid:
		return l.emit(token.EOF, "", startPos)

	default:
		l.bag.Error(startPos, diag.Lexical, "unknown character %q", rune(ch))
		return l.emit(token.ILLEGAL, string(rune(ch)), startPos)
	}
}
