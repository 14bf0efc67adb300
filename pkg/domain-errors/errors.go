// Package domainerrors defines the error taxonomy shared by all modules.
// Domain rejections are NOT errors; this package covers transport-visible
// failures only (bad input, unknown records, internal faults).
package domainerrors

import (
	"errors"
	"net/http"
)

// Code is a stable, machine-readable error identifier. Codes double as the
// wire-level "error" field, so values are snake_case.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeInternal   Code = "internal_error"
)

// Error pairs a code with a human-readable message. The message is safe to
// return to clients except for internal errors, where httputil strips it.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap preserves an underlying cause while exposing a stable code upstream.
func Wrap(code Code, message string, cause error) *Error {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the domain code from err, defaulting to CodeInternal so
// unclassified failures never leak details.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
