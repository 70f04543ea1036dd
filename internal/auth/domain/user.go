package domain

import "time"

type User struct {
	ID              string
	Username        string
	Email           string
	FullName        string
	Phone           string
	PasswordHash    string
	Role            string
	TwoFactorSecret string
	Is2FAEnabled    bool
	IsActive        bool

	// Single active refresh token per user; issuing a new one overwrites
	// the previous value.
	RefreshToken       string
	RefreshTokenExpiry *time.Time

	LastLogin *time.Time
	CreatedAt time.Time
}

// LoginAttempt is an append-only ledger entry written on every failed
// credential check.
type LoginAttempt struct {
	ID          string
	IPAddress   string
	Username    string
	AttemptTime time.Time
}

// IPBlock is honored only while BlockedUntil is in the future; expired rows
// are ignored by reads and swept lazily.
type IPBlock struct {
	ID           string
	IPAddress    string
	BlockedUntil time.Time
}
