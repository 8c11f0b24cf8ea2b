// Package common defines the sentinel errors shared by all tripvault
// services. Callers should use errors.Is to match these values; the HTTP
// layer maps each of them to a fixed status code in exactly one place.
package common

import "errors"

var (
	// ErrValidation marks malformed or missing input. User-correctable.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a uniqueness violation (duplicate email, username
	// or destination id).
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized marks a missing, malformed, forged or expired token.
	// The cases are deliberately not distinguished to the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden marks a valid identity with an insufficient role or
	// failed ownership check.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a backing-store I/O failure. Surfaced to clients as
	// a generic 500 without internal detail.
	ErrStorage = errors.New("storage error")
)
