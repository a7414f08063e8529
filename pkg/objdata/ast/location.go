package ast

import "fmt"

// Location represents the source location of a node in the original
// data file. It enables precise error reporting with file, line, and
// column information.
type Location struct {
	File   string // Path to the data file (or a caller-supplied name)
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Offset int    // Byte offset into the source buffer (0-based)
}

// String returns a human-readable representation of the location.
// Format: "file:line:column"
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("<input>:%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid returns true if the location has valid line information.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// Span is a half-open byte range [Start, End) into the source buffer.
// Every parse tree node and every reported error carries one.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the slice of src covered by the span. It returns an
// empty string when the span falls outside src.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return string(src[s.Start:s.End])
}
