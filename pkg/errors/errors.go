// Package errors provides coded errors for the tiling engine and its tools.
//
// Geometric outcomes such as a missing crossing or a failed pattern match are
// not errors and never use this package. It covers the recoverable failures
// around the engine: unknown configurations, malformed bounds or config files,
// an iteration cap being hit, catalogue failures and unwritable output.
//
//	err := errors.New(errors.ErrCodeInvalidPreset, "unknown configuration %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidPreset) {
//	    // list the valid names
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidPreset Code = "INVALID_PRESET"
	ErrCodeInvalidBounds Code = "INVALID_BOUNDS"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeNotConverged  Code = "NOT_CONVERGED"
	ErrCodeStore         Code = "STORE_ERROR"
	ErrCodeOutput        Code = "OUTPUT_ERROR"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

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

// New creates an Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether any error in err's chain carries code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// UserMessage returns the message without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
