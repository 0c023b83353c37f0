// Package error defines domain-specific errors for the Productivity Hub application.
package error

import "errors"

// Session domain errors.
var (
	// ErrMissingCredentials is returned when a login or signup field is empty.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrNotAuthenticated is returned when the session gate is anonymous.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrSessionMismatch is returned when a token belongs to a user other than the session owner.
	ErrSessionMismatch = errors.New("token does not belong to the current session")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeMissingFields AuthErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken     AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken     AuthErrorCode = "AUTH-030003"
	ErrCodeNotAuthenticated AuthErrorCode = "AUTH-030004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
