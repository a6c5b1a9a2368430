// Package apperr defines the error kinds shared across the repository,
// service and handler layers. Callers match them with errors.Is; handlers
// map each kind to an HTTP status.
package apperr

import "errors"

var (
	// ErrAlreadyExists is returned when a unique record (user, vacancy
	// title) is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound is returned on a lookup miss.
	ErrNotFound = errors.New("not found")

	// Token errors, in the order the auth gate checks them.
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUpstreamUnavailable is returned when the vacancy search API
	// answers with a non-200 status or cannot be reached.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
