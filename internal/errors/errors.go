package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAccountInactive      = errors.New("account inactive")
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrIPBlocked            = errors.New("ip address temporarily blocked")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrUsernameTaken        = errors.New("username already in use")
	ErrWeakPassword         = errors.New("password does not meet complexity requirements")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotFound             = errors.New("not found")
	ErrInsufficientStock    = errors.New("product not found or insufficient stock")
	ErrTwoFactorNotSetup    = errors.New("two-factor authentication not set up")
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")
)
