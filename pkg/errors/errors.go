// Package errors provides structured error types for scoresheet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the render pipeline
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Fatal codes abort a render before any output is written:
//   - EMPTY_SCORE: the document has no notes, so its extent is undefined
//   - LAYOUT: derived dimensions are nonsensical (zero bars, zero spacing)
//   - RENDER_IO: a canvas, encoder or output write failed
//
// UNKNOWN_NOTE_TYPE and INVALID_NOTE are reported, not fatal: the
// offending note is skipped and rendering continues.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyScore, "document has no notes")
//	if errors.Is(err, errors.ErrCodeEmptyScore) {
//	    // nothing to render
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderIO, origErr, "write %s", path)
//
//	// Print the full cause chain, one message per line
//	fmt.Fprint(os.Stderr, errors.Details(err))
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidNote     Code = "INVALID_NOTE"
	ErrCodeUnknownNoteType Code = "UNKNOWN_NOTE_TYPE"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Render errors
	ErrCodeEmptyScore Code = "EMPTY_SCORE"
	ErrCodeLayout     Code = "LAYOUT"
	ErrCodeRenderIO   Code = "RENDER_IO"

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
	for err != nil {
		if errors.As(err, &e) {
			if e.Code == code {
				return true
			}
			err = e.Cause
			continue
		}
		return false
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
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

// Details renders the cause chain of err one message per line, outermost
// first. Coded errors contribute their message only, so each line reads
// as a single step of the failure.
func Details(err error) string {
	var sb strings.Builder
	for err != nil {
		var e *Error
		if errors.As(err, &e) && e == err {
			sb.WriteString(e.Message)
			sb.WriteByte('\n')
			err = e.Cause
			continue
		}
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			msg = strings.TrimSuffix(msg, ": "+next.Error())
		}
		sb.WriteString(msg)
		sb.WriteByte('\n')
		err = next
	}
	return sb.String()
}
