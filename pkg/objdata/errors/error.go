package errors

import (
	"fmt"
	"strings"

	"lf2-hq/datafile/pkg/objdata/ast"
)

// ErrorType categorizes the type of error encountered while parsing.
type ErrorType string

const (
	// ErrorTypeStructural marks input that does not match the grammar:
	// a wrong or missing block literal, a malformed lexeme, or an
	// unexpected token where a specific keyword was required.
	ErrorTypeStructural ErrorType = "structural"
	// ErrorTypeNumericRange marks a lexically valid integer that
	// exceeds the target field's 32-bit width.
	ErrorTypeNumericRange ErrorType = "numeric_range"
	// ErrorTypeSemantic marks structurally valid but semantically
	// incomplete input, e.g. a sprite descriptor missing sub-tags.
	ErrorTypeSemantic ErrorType = "semantic"
	// ErrorTypeIO marks a failure to read or decode the source file
	// before the parser was ever invoked.
	ErrorTypeIO ErrorType = "io"
)

// Error represents a parse failure with location, context, and the set
// of inputs that would have been accepted.
type Error struct {
	Type       ErrorType    // Category of error
	Message    string       // Error message
	Rule       string       // Grammar rule being matched when the error occurred
	Field      string       // Field name for numeric/semantic errors
	Location   ast.Location // Source location (file, line, column, offset)
	Span       ast.Span     // Byte span of the offending text
	Expected   []string     // Keywords/lexical classes accepted at this position
	Context    string       // Surrounding source lines
	Suggestion string       // Suggested fix (optional)
}

// Error implements the error interface. It returns a formatted message
// with location, context, and the expected-token set.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Type, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if len(e.Expected) > 0 {
		sb.WriteString(fmt.Sprintf("  = expected one of: %s\n", strings.Join(e.Expected, ", ")))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// OneLine renders the error as a single line suitable for log output:
// "file:line:column: [type] message".
func (e *Error) OneLine() string {
	if e.Location.IsValid() {
		return fmt.Sprintf("%s: [%s] %s", e.Location.String(), e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// ErrorList aggregates errors across multiple files. A single parse
// returns exactly one *Error; batch tooling collects them here.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the list contains at least one error of
// the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}
