// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or handle.
	ErrUserNotFound = errors.New("user not found")

	// ErrIdentifierExists is returned when registering with an email or user_id
	// that is already taken. It is deliberately non-specific: the caller must not
	// learn which of the two collided.
	ErrIdentifierExists = errors.New("user ID or email already exists")

	// ErrMissingFields is returned when a registration request omits a required field.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password. The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
