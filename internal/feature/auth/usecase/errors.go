// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned by a UserRepository when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned by a UserRepository when the storage
	// unique constraint on email rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
