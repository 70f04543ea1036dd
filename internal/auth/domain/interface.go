package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByRefreshToken(ctx context.Context, token string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	StoreRefreshToken(ctx context.Context, userID, token string, expiry time.Time) error
	// RotateRefreshToken swaps oldToken for newToken in one conditional
	// update. It reports false when oldToken no longer matches the stored
	// value, which is how a concurrent refresh loser is detected.
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string, expiry time.Time) (bool, error)
	ClearRefreshToken(ctx context.Context, userID string) error
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
	SetTwoFactorSecret(ctx context.Context, userID, secret string) error
	SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error
}

type GuardRepository interface {
	CountRecentFailedAttempts(ctx context.Context, ip, username string, since time.Time) (int, error)
	RecordLoginAttempt(ctx context.Context, ip, username string, at time.Time) error
	GetActiveBlock(ctx context.Context, ip string, now time.Time) (*IPBlock, error)
	InsertBlock(ctx context.Context, block *IPBlock) error
	DeleteExpiredBlocks(ctx context.Context, now time.Time) (int64, error)
}
