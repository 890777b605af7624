// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user. It is generated by storage
	// and never changes after creation.
	ID uint `json:"id"`

	// Name is the display name, 4 to 100 characters.
	Name string `json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized into a response.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is set together with CreatedAt at registration.
	UpdatedAt time.Time `json:"updated_at"`
}
