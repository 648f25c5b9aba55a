package trading

import (
	"errors"
	"fmt"
)

// Kind classifies a trading failure for the transport layer. State errors
// are the normal shape of the single-winner and dual-confirmation races and
// should read as "someone already acted", not as an internal fault.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindRateLimit     Kind = "rate_limit"
	KindAuthorization Kind = "authorization"
	KindState         Kind = "state"
	KindNotFound      Kind = "not_found"
)

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

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...any) *Error {
	return newError(KindValidation, format, args...)
}

func rateLimitError(format string, args ...any) *Error {
	return newError(KindRateLimit, format, args...)
}

func authorizationError(format string, args ...any) *Error {
	return newError(KindAuthorization, format, args...)
}

func stateError(format string, args ...any) *Error {
	return newError(KindState, format, args...)
}

func notFoundError(format string, args ...any) *Error {
	return newError(KindNotFound, format, args...)
}

// KindOf extracts the classification from err, or "" for plain errors.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
