package ast

import "fmt"

// Span identifies the source lines covered by a record or an error.
// Line numbers are 1-based; EndLine is never smaller than StartLine.
type Span struct {
	File      string // Path to the source file
	StartLine int    // First line (1-based)
	EndLine   int    // Last line (1-based, >= StartLine)
}

// String returns a human-readable representation of the span.
// Format: "file:line" or "file:start-end" for multi-line spans.
func (s Span) String() string {
	if s.File == "" {
		return "<unknown>"
	}
	if s.EndLine > s.StartLine {
		return fmt.Sprintf("%s:%d-%d", s.File, s.StartLine, s.EndLine)
	}
	return fmt.Sprintf("%s:%d", s.File, s.StartLine)
}

// IsValid returns true if the span has valid file and line information.
func (s Span) IsValid() bool {
	return s.File != "" && s.StartLine > 0
}
