// Package diag implements the two diagnostic sinks of spec.md §4.J/§7:
// accumulating warnings and fatal errors, each carrying a source location
// and a categorical Kind so tests can assert on error taxonomy rather than
// message text.
package diag

import (
	"fmt"

	"github.com/cwbudde/ccfront/pkg/token"
)

// Kind categorizes a diagnostic per spec.md §7.
type Kind int

const (
	Lexical Kind = iota
	Syntactic
	Declarator
	TypeKind
	SemanticExpr
	ScopeKind
	Control
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	case Declarator:
		return "declarator"
	case TypeKind:
		return "type"
	case SemanticExpr:
		return "semantic-expression"
	case ScopeKind:
		return "scope"
	case Control:
		return "control"
	default:
		return "unknown"
	}
}

// Severity distinguishes a warning (non-fatal, accumulates) from an error
// (fatal, unwinds).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single recorded warning or error.
type Diagnostic struct {
	Pos      token.Position
	Kind     Kind
	Severity Severity
	Message  string
}

// FatalError is the sentinel panicked by Bag.Error to unwind the parser back
// to its top-level entry point (spec.md §9 "Exceptions for fatal
// diagnostics"; §7 "errors ... unwind to the top-level parse entry via a
// throw/catch discipline"). It is never meant to cross package boundaries
// uncaught except through Bag.Recover.
type FatalError struct {
	Diagnostic Diagnostic
}

func (f FatalError) Error() string { return f.Diagnostic.Message }

// Bag is the diagnostic sink a Lexer/Parser/constructor writes to. One Bag
// is shared for the lifetime of a single compile.
type Bag struct {
	Diagnostics []Diagnostic
	Source      string
	File        string
}

func NewBag(file, source string) *Bag {
	return &Bag{File: file, Source: source}
}

// Warning records a non-fatal diagnostic; it never aborts the caller.
func (b *Bag) Warning(pos token.Position, kind Kind, format string, args ...any) {
	b.Diagnostics = append(b.Diagnostics, Diagnostic{
		Pos: pos, Kind: kind, Severity: SeverityWarning,
		Message: fmt.Sprintf(format, args...),
	})
}

// Error records a fatal diagnostic and panics a FatalError to unwind to the
// nearest Bag.Recover (normally the parser's top-level entry point).
func (b *Bag) Error(pos token.Position, kind Kind, format string, args ...any) {
	d := Diagnostic{
		Pos: pos, Kind: kind, Severity: SeverityError,
		Message: fmt.Sprintf(format, args...),
	}
	b.Diagnostics = append(b.Diagnostics, d)
	panic(FatalError{Diagnostic: d})
}

// HasErrors reports whether any fatal diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount reports how many fatal diagnostics were recorded.
func (b *Bag) ErrorCount() int {
	n := 0
	for _, d := range b.Diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Recover should be deferred at a parse entry point. It swallows a
// FatalError panic (the diagnostic is already recorded in b.Diagnostics) and
// re-panics anything else, including a non-FatalError panic that indicates a
// genuine bug rather than a semantic error.
func (b *Bag) Recover() {
	if r := recover(); r != nil {
		if _, ok := r.(FatalError); ok {
			return
		}
		panic(r)
	}
}
