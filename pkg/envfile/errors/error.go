package errors

import (
	"fmt"

	"envguard-hq/envguard/pkg/envfile/ast"
)

// ErrorType categorizes the kind of failure encountered while loading a file.
type ErrorType string

const (
	ErrorTypeMissingSeparator  ErrorType = "missing_separator"  // Line has no unescaped "="
	ErrorTypeEmptyKey          ErrorType = "empty_key"          // Text before "=" trims to nothing
	ErrorTypeUnterminatedQuote ErrorType = "unterminated_quote" // Quoted value is never closed
	ErrorTypeInternal          ErrorType = "internal"           // Zero-progress parse step; a defect, not bad input
	ErrorTypeIO                ErrorType = "io"                 // File read failure
)

// Error is a load failure with its source span. Parsing aborts on the first
// Error; no partial record sequence is ever returned alongside one.
type Error struct {
	Type    ErrorType // Category of failure
	Message string    // Human-readable description
	Span    ast.Span  // Source location (file and line range)
	Err     error     // Underlying cause, if any (IO errors)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Span.IsValid() {
		return fmt.Sprintf("[%s] %s (%s)", e.Type, e.Message, e.Span)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewMissingSeparator reports a key/value line without an unescaped "=".
func NewMissingSeparator(file string, line int) *Error {
	return &Error{
		Type:    ErrorTypeMissingSeparator,
		Message: `line has no "=" separator`,
		Span:    ast.Span{File: file, StartLine: line, EndLine: line},
	}
}

// NewEmptyKey reports a line whose key trims to the empty string.
func NewEmptyKey(file string, line int) *Error {
	return &Error{
		Type:    ErrorTypeEmptyKey,
		Message: `key before "=" is empty`,
		Span:    ast.Span{File: file, StartLine: line, EndLine: line},
	}
}

// NewUnterminatedQuote reports a quoted value with no closing quote before
// end of file. endLine is the best-known end of the scan, usually the last
// line of the file.
func NewUnterminatedQuote(file string, startLine, endLine int) *Error {
	return &Error{
		Type:    ErrorTypeUnterminatedQuote,
		Message: fmt.Sprintf("quoted value opened on line %d is never closed", startLine),
		Span:    ast.Span{File: file, StartLine: startLine, EndLine: endLine},
	}
}

// NewInternal reports a parser step that consumed no input. This is a
// defect in the parser itself and never expected from user input, however
// malformed; it aborts the load loudly instead of looping forever.
func NewInternal(file string, line int, message string) *Error {
	return &Error{
		Type:    ErrorTypeInternal,
		Message: message,
		Span:    ast.Span{File: file, StartLine: line, EndLine: line},
	}
}

// NewIO wraps a file read failure.
func NewIO(file string, err error) *Error {
	return &Error{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("cannot read file: %v", err),
		Span:    ast.Span{File: file},
		Err:     err,
	}
}
