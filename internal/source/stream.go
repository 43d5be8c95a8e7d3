// Package source implements the byte-level front door of the compiler: a
// UTF-8 text stream with trigraph folding, backslash-newline splicing, and
// position tracking, matching C99 5.1.1.2's translation phases 1-2.
package source

import (
	"strings"

	"github.com/cwbudde/ccfront/internal/uchar"
	"github.com/cwbudde/ccfront/pkg/token"
)

// trigraphs maps the third character of a "??x" sequence to its folded
// replacement, per C99 5.2.1.1.
var trigraphs = map[byte]byte{
	'=': '#', '(': '[', ')': ']', '/': '\\', '\'': '^',
	'<': '{', '>': '}', '!': '|', '-': '~',
}

// Stream is a single source file's character stream. It performs the two
// preprocessing transformations that must happen before the lexer sees
// anything: line splicing and trigraph folding (spec.md §4.A).
type Stream struct {
	path string
	src  string

	offset int // byte offset of the next unconsumed raw byte in src
	line   int
	column int // rune count from start of line
	lineBegin int // byte offset of the first byte of the current line

	havePeek bool
	peekVal  uchar.Char
	peekRaw  int // raw bytes this logical char consumes from offset
}

// New creates a Stream over already-decoded UTF-8 source text. Use Open to
// read a file with BOM detection.
func New(path, src string) *Stream {
	return &Stream{
		path:   path,
		src:    src,
		line:   1,
		column: 1,
	}
}

func (s *Stream) newline() {
	s.line++
	s.column = 1
}

// scanLogicalChar scans a single logical character starting at byte offset
// off, splicing backslash-newline and folding trigraphs as it goes. For each
// splice it consumes it advances the line and resets the column (those
// bytes never become part of any token), but it does not touch s.offset —
// committing the scan is Get's job.
func (s *Stream) scanLogicalChar(off int) (uchar.Char, int) {
	for {
		rest := s.src[off:]
		if len(rest) == 0 {
			return uchar.Invalid, 0
		}

		if rest[0] == '\\' {
			if strings.HasPrefix(rest[1:], "\r\n") {
				s.newline()
				off += 3
				continue
			}
			if strings.HasPrefix(rest[1:], "\n") {
				s.newline()
				off += 2
				continue
			}
		}

		if rest[0] == '?' && strings.HasPrefix(rest[1:], "?") && len(rest) >= 3 {
			if folded, ok := trigraphs[rest[2]]; ok {
				return uchar.Char(folded), 3
			}
		}

		c, n := uchar.DecodeFirst(rest)
		return c, n
	}
}

// Peek returns the next logical character without consuming it.
func (s *Stream) Peek() uchar.Char {
	if !s.havePeek {
		s.peekVal, s.peekRaw = s.scanLogicalChar(s.offset)
		s.havePeek = true
	}
	return s.peekVal
}

// Get consumes and returns the next logical character.
func (s *Stream) Get() uchar.Char {
	c := s.Peek()
	s.offset += s.peekRaw
	s.havePeek = false

	if c == uchar.Invalid {
		return c
	}

	s.column++
	if c == '\n' {
		s.lineBegin = s.offset
		s.newline()
	}
	return c
}

// Want consumes the next character if it equals ch, reporting whether it did.
func (s *Stream) Want(ch uchar.Char) bool {
	if s.Peek() == ch {
		s.Get()
		return true
	}
	return false
}

// Unget is exact: it rewinds by exactly one logical character, recomputing
// line/column by rescanning back to the previous newline when needed.
func (s *Stream) Unget(c uchar.Char) {
	if c == uchar.Invalid {
		return
	}
	n := c.Len()
	if c == '\n' {
		// Recompute line/column by scanning back to the newline that
		// terminates the previous line, if any.
		newlineIdx := s.lineBegin - n
		lineStart := 0
		if idx := strings.LastIndexByte(s.src[:newlineIdx], '\n'); idx >= 0 {
			lineStart = idx + 1
		}
		s.offset = newlineIdx
		s.line--
		s.lineBegin = lineStart
		s.column = runeCount(s.src[lineStart:s.offset]) + 1
	} else {
		s.offset -= n
		s.column--
	}
	s.havePeek = false
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Ignore consumes characters up to and including ch.
func (s *Stream) Ignore(ch uchar.Char) {
	for {
		c := s.Get()
		if c == uchar.Invalid || c == ch {
			return
		}
	}
}

// SkipSpaceResult bits, per spec.md §4.A skipSpace().
const (
	SkippedSpace   = 1 << 0
	SkippedNewline = 1 << 1
)

// SkipSpace consumes horizontal whitespace, newlines, and comments,
// returning a bitmask of what it consumed.
func (s *Stream) SkipSpace() int {
	ret := 0
	for {
		c := s.Peek()
		switch c {
		case ' ', '\f', '\t', '\v':
			s.Get()
			ret |= SkippedSpace
		case '\r':
			s.Get()
			ret |= SkippedNewline
		case '\n':
			s.Get()
			ret |= SkippedNewline
		case '/':
			s.Get()
			if s.Want('*') {
				s.skipBlockComment()
				ret |= SkippedSpace
			} else if s.Want('/') {
				s.Ignore('\n')
				ret |= SkippedNewline
			} else {
				s.Unget('/')
				return ret
			}
		case uchar.Invalid:
			return ret
		default:
			return ret
		}
	}
}

func (s *Stream) skipBlockComment() {
	for {
		c := s.Get()
		if c == uchar.Invalid {
			return
		}
		if c == '*' && s.Want('/') {
			return
		}
	}
}

// Pos returns the current byte offset.
func (s *Stream) Pos() int { return s.offset }

// Path returns the path this stream was opened from.
func (s *Stream) Path() string { return s.path }

// SourceLoc snapshots the current position as a token.Position with length 0
// (the caller fills in Length once a token's extent is known).
func (s *Stream) SourceLoc() token.Position {
	return token.Position{
		Path:      s.path,
		LineBegin: s.lineBegin,
		Line:      s.line,
		Column:    s.column,
		Offset:    s.offset,
	}
}

// Source returns the full decoded source text, used by diagnostics to
// extract a line for display.
func (s *Stream) Source() string { return s.src }
