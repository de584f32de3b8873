// Package errors provides structured error types for the floorplan tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes map one to one onto the failure kinds of the tool:
//   - ARGUMENT_COUNT: wrong number of positional arguments
//   - FILE_OPEN: an input or output path cannot be opened
//   - INVALID_FORMAT / TRUNCATED_INPUT: the tree text is malformed
//   - MALFORMED_TREE: a cut is missing a child
//   - INVALID_CONFIG: the configuration file cannot be used
//
// Memory exhaustion has no code: the Go runtime terminates the process.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeArgumentCount, "accepts 4 arg(s), received %d", n)
//	if errors.Is(err, errors.ErrCodeArgumentCount) {
//	    // Print usage
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileOpen, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Invocation errors
	ErrCodeArgumentCount Code = "ARGUMENT_COUNT"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeUnsupported   Code = "UNSUPPORTED"

	// File errors
	ErrCodeFileOpen  Code = "FILE_OPEN"
	ErrCodeFileWrite Code = "FILE_WRITE"

	// Tree errors
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeTruncatedInput Code = "TRUNCATED_INPUT"
	ErrCodeMalformedTree  Code = "MALFORMED_TREE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ExitCode returns the process exit status for err: 0 for nil, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
