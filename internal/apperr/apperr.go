// Package apperr defines the typed failures produced by domain logic.
// Handlers and stores return these; only the HTTP boundary turns them
// into status codes.
package apperr

import "errors"

// Kind classifies a failure for the transport boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicateKey
	KindTokenMissing
	KindTokenInvalid
	KindTokenExpired
	KindUserNotFound
	KindInvalidCredentials
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// Error carries a Kind alongside a caller-facing message and an
// optional wrapped cause. The cause is for server-side logs only and
// must never reach a response body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a typed error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a typed error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
