// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business outcomes and are handled by upper layers.
var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that a user with the given username or email
	// already exists. Returned during registration on a unique-constraint hit.
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrInvalidCredentials indicates that the supplied username/password pair is
	// wrong. Wrong credentials are an expected outcome, not a fault, so login
	// failures surface as this sentinel rather than a generic error.
	ErrInvalidCredentials = errors.New("invalid username/password")
)
