package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for HTTP status mapping.
type Kind int

const (
	// Validation means the caller supplied missing or malformed input.
	Validation Kind = iota
	// NotFound means a referenced record does not exist.
	NotFound
	// Upstream means an external API failed (network or provider-reported error).
	Upstream
	// Auth means a token was invalid, expired, or missing.
	Auth
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Upstream:
		return "upstream"
	case Auth:
		return "auth"
	}
	return "unknown"
}

// Error is the typed failure surfaced by adapters and services.
// Failures are never swallowed; they propagate to the HTTP layer
// where Kind decides the status code.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a typed error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validationf builds a Validation error.
func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstreamf builds an Upstream error.
func Upstreamf(format string, args ...interface{}) *Error {
	return &Error{Kind: Upstream, Message: fmt.Sprintf(format, args...)}
}

// Authf builds an Auth error.
func Authf(format string, args ...interface{}) *Error {
	return &Error{Kind: Auth, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a typed error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
