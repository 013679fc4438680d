// Package errors provides structured error types for layoutviz.
//
// Every fatal condition of a run maps to a [Code] so the CLI and tests can
// tell a missing file from a malformed dataset without matching on strings:
//
//   - FILE_NOT_FOUND: the input file does not exist
//   - PARSE_ERROR: the input is not valid layout JSON
//   - EMPTY_DATASET: the layout has no nodes
//   - INDEX_OUT_OF_RANGE: an edge references a node that does not exist
//   - IO_ERROR: the output image could not be written
//   - INVALID_CONFIG: the configuration file is unreadable or inconsistent
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyDataset, "no data: layout has no nodes")
//	if errors.Is(err, errors.ErrCodeEmptyDataset) {
//	    // Handle empty input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure kinds of a run.
const (
	// Input errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeParse        Code = "PARSE_ERROR"

	// Dataset errors
	ErrCodeEmptyDataset    Code = "EMPTY_DATASET"
	ErrCodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"

	// Output errors
	ErrCodeIO Code = "IO_ERROR"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IndexError describes an edge whose endpoint lies outside the node range.
// It is carried as the Cause of an INDEX_OUT_OF_RANGE error.
type IndexError struct {
	Edge   int    // position of the edge in the edge sequence
	Tuple  [3]int // source, target, type tag as read
	Index  int    // the offending endpoint
	Bounds int    // node count N; valid indices are [0, N)
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("edge %d %v: index %d out of range [0, %d)", e.Edge, e.Tuple, e.Index, e.Bounds)
}
