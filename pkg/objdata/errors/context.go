package errors

import (
	"fmt"
	"strings"

	"lf2-hq/datafile/pkg/objdata/ast"
)

// ExtractContext extracts the surrounding lines around the given
// location from the in-memory source buffer for error context display.
// It returns a formatted string showing the error location with line
// numbers. The source is the buffer that was parsed; nothing is re-read
// from disk.
func ExtractContext(src []byte, location ast.Location, contextLines int) string {
	if !location.IsValid() || len(src) == 0 {
		return ""
	}

	lines := strings.Split(string(src), "\n")

	// Calculate context range
	errorLine := location.Line - 1 // Convert to 0-based index
	if errorLine >= len(lines) {
		errorLine = len(lines) - 1
	}
	startLine := errorLine - contextLines
	endLine := errorLine + contextLines

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}

		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, strings.TrimRight(lines[i], "\r")))

		// Add column indicator for error line
		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext enriches an error with context extracted from the source
// buffer. It returns the same error for chaining.
func WithContext(err *Error, src []byte, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(src, err.Location, contextLines)
	}
	return err
}

// AddContextToError adds the default two lines of surrounding context.
func AddContextToError(err *Error, src []byte) *Error {
	return WithContext(err, src, 2)
}
