// Package domain defines the error taxonomy shared by repositories,
// services and handlers. Sentinel values let higher layers distinguish
// failure classes without leaking storage errors: handlers translate
// them into 4xx responses, everything else surfaces as a generic 500.
package domain

import (
	"errors"
	"fmt"
)

// ErrEmailTaken is returned when registration targets an email that
// already belongs to a non-deleted user. Handlers should translate
// this into an HTTP 409 response.
var ErrEmailTaken = errors.New("email already exists")

// ErrDuplicateToken signals a refresh-token string collision. Tokens
// are random by construction, so this backstop should never fire.
var ErrDuplicateToken = errors.New("refresh token already exists")

// ErrInvalidCredentials covers every login failure: unknown email,
// inactive account or a password mismatch. Deliberately
// undifferentiated so responses do not reveal which factor failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRefreshToken covers every refresh failure: unknown,
// revoked or expired token. Same non-disclosure rule as above.
var ErrInvalidRefreshToken = errors.New("refresh token is invalid or expired")

// ErrUserNotFound is returned by profile operations addressing a
// nonexistent user id.
var ErrUserNotFound = errors.New("user not found")

// ValidationError reports a policy-violating input field. Validation
// is rejected before any persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
