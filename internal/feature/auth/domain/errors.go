// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Error kinds for authentication and account operations.
// Upper layers classify failures with errors.Is against these values.
var (
	// ErrUnauthorized indicates invalid credentials or a token whose subject
	// no longer resolves to a user. Callers never learn which one.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken indicates a bearer token that failed signature,
	// structure or expiry checks.
	ErrInvalidToken = errors.New("invalid token")

	// ErrValidation indicates malformed registration or login input.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateEmail is returned when registering an email that is already in use.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidIdentifier is returned when an operation requires a user ID and none was given.
	ErrInvalidIdentifier = errors.New("no valid id provided")

	// ErrNotFound is returned when no user matches the given ID.
	ErrNotFound = errors.New("no user found with that id")

	// ErrPersistence wraps an unexpected storage failure during a write.
	ErrPersistence = errors.New("persistence error")

	// ErrInformationRetrieval wraps an unexpected storage failure during a read.
	ErrInformationRetrieval = errors.New("error retrieving user information")
)

// Error is a domain error with a message that is safe to return to callers.
// It unwraps to one of the kinds above; the underlying cause is never attached.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError returns an Error of the given kind with a caller-safe message.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// IsClientError reports whether err was caused by caller input or
// caller-visible state, and so can be described to the caller.
func IsClientError(err error) bool {
	for _, kind := range []error{
		ErrValidation,
		ErrDuplicateEmail,
		ErrInvalidIdentifier,
		ErrNotFound,
		ErrPersistence,
		ErrInformationRetrieval,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
