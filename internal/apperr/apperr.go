// Package apperr provides the structured error taxonomy returned by the
// engine's managers.
//
// Every expected failure is an *Error carrying a Kind (what family of failure)
// and a Code (which rule fired). Callers branch on Kind or Code; transports
// translate them with ToConnect.
package apperr

import (
	"errors"
	"fmt"
)

// Kind groups codes into the families callers branch on.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindState         Kind = "STATE"
	KindAuthorization Kind = "AUTHORIZATION"
	KindNotFound      Kind = "NOT_FOUND"
	KindInternal      Kind = "INTERNAL"
)

// Error is the domain error type.
type Error struct {
	Kind    Kind   // Failure family
	Code    Code   // Machine-readable rule identifier
	Message string // Human-readable detail
	Cause   error  // Wrapped underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error whose kind is derived from the code.
func New(code Code, message string) *Error {
	return &Error{Kind: code.Kind(), Code: code, Message: message}
}

// Newf is New with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a domain error around an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Kind: code.Kind(), Code: code, Message: message, Cause: cause}
}

// Internal wraps an unexpected failure (storage, encoding) that callers cannot act on.
func Internal(message string, cause error) *Error {
	return Wrap(CodeInternal, message, cause)
}

// KindOf extracts the kind from any error.
// Errors that are not domain errors are reported as KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf extracts the code from any error.
// Returns CodeUnknown if the error is not a domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// IsKind checks if the error belongs to the specified kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
