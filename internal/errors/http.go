package errors

import (
	"errors"
	"net/http"
)

// StatusCode maps a service error to its HTTP status. Unknown errors are
// treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountInactive),
		errors.Is(err, ErrInvalidRefreshToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTooManyLoginAttempts),
		errors.Is(err, ErrIPBlocked):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrTwoFactorNotSetup):
		return http.StatusNotFound
	case errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrInvalidTwoFactorCode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to send to the caller. Credential-class
// failures collapse to a single message so an unknown username, a wrong
// password and an inactive account are indistinguishable from outside.
func PublicMessage(err error) string {
	if errors.Is(err, ErrAccountInactive) {
		return ErrInvalidCredentials.Error()
	}
	if StatusCode(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
