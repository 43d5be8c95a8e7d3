package diag

import (
	"fmt"
	"strings"
)

// Render formats a single diagnostic in the shape spec.md §6 mandates:
//
//	In file <path>:<line>:<column>:
//	<source line, literal>
//	<caret + tilde run underlining the token>
//	<kind>: <message>
//
// This is grounded in the teacher's internal/errors.CompilerError.Format,
// adapted to the four-line shape the spec requires instead of the teacher's
// "Error in FILE:LINE:COL" header.
func (b *Bag) Render(d Diagnostic) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "In file %s:%d:%d:\n", d.Pos.Path, d.Pos.Line, d.Pos.Column)

	line := sourceLine(b.Source, d.Pos.Line)
	sb.WriteString(line)
	sb.WriteString("\n")

	underline := strings.Repeat(" ", max(d.Pos.Column-1, 0))
	underline += "^"
	if d.Pos.Length > 1 {
		underline += strings.Repeat("~", d.Pos.Length-1)
	}
	sb.WriteString(underline)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s: %s", d.Severity, d.Message)
	return sb.String()
}

// RenderAll renders every diagnostic in the bag, in recorded order.
func (b *Bag) RenderAll() string {
	var sb strings.Builder
	for i, d := range b.Diagnostics {
		sb.WriteString(b.Render(d))
		if i < len(b.Diagnostics)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
