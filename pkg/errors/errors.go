// Package errors provides the structured error type shared by every carrier
// provider.
//
// A provider classifies each failure into exactly one [Code] before it
// leaves the provider boundary. Callers switch on the code, never on the
// message or on library-specific error values:
//
//   - INVALID_INPUT: malformed tracking number, rejected before any I/O
//   - NOT_FOUND: the carrier denies the shipment or no events were found
//   - UPSTREAM: network failure, non-success status or automation timeout
//   - UNSUPPORTED: no adapter is registered for the carrier
//   - UNEXPECTED: anything else, including parse failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid tracking number %q", n)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // reject the request
//	}
//
//	// Keep the transport failure as the cause
//	err := errors.Wrap(errors.ErrCodeUpstream, origErr, "carrier request failed")
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes of the provider taxonomy.
const (
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeUpstream     Code = "UPSTREAM"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
	ErrCodeUnexpected   Code = "UNEXPECTED"
)

// Codes lists every code in the taxonomy.
var Codes = []Code{
	ErrCodeInvalidInput,
	ErrCodeNotFound,
	ErrCodeUpstream,
	ErrCodeUnsupported,
	ErrCodeUnexpected,
}

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

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	if e, ok := As(err); ok {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix or cause.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	if e, ok := As(err); ok {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the status code an HTTP consumer should answer
// with. Errors outside the taxonomy map to 500.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeUnsupported:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
