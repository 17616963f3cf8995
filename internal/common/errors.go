// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// ErrorEmailTaken reports a registration attempt for an email that is
	// already held by another principal.
	ErrorEmailTaken = errors.New("email already registered")

	// ErrorInvalidCredentials covers both unknown email and wrong password.
	// The two cases are intentionally indistinguishable so the login endpoint
	// cannot be used to enumerate registered emails.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors. Distinguishable internally; the HTTP layer
	// surfaces all three as one generic "invalid session" outcome.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// MissingFieldError reports the first empty required field of a request.
// Only one field is reported per call; checking stops at the first failure.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}
