package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

// GuardRepository persists the login-attempt ledger and the IP block list.
type GuardRepository struct {
	db DB
}

func NewGuardRepository(db DB) *GuardRepository {
	return &GuardRepository{db: db}
}

func (r *GuardRepository) CountRecentFailedAttempts(ctx context.Context, ip, username string, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM login_attempts
		WHERE ip_address = $1 AND username = $2 AND attempt_time >= $3
	`, ip, username, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count login attempts: %w", err)
	}
	return count, nil
}

func (r *GuardRepository) RecordLoginAttempt(ctx context.Context, ip, username string, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_attempts (id, ip_address, username, attempt_time)
		VALUES (gen_random_uuid(), $1, $2, $3)
	`, ip, username, at)
	return err
}

func (r *GuardRepository) GetActiveBlock(ctx context.Context, ip string, now time.Time) (*domain.IPBlock, error) {
	var block domain.IPBlock
	err := r.db.QueryRow(ctx, `
		SELECT id, ip_address, blocked_until FROM ip_blocks
		WHERE ip_address = $1 AND blocked_until > $2
		ORDER BY blocked_until DESC
		LIMIT 1
	`, ip, now).Scan(&block.ID, &block.IPAddress, &block.BlockedUntil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ip block: %w", err)
	}
	return &block, nil
}

func (r *GuardRepository) InsertBlock(ctx context.Context, block *domain.IPBlock) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ip_blocks (id, ip_address, blocked_until)
		VALUES ($1, $2, $3)
	`, block.ID, block.IPAddress, block.BlockedUntil)
	return err
}

func (r *GuardRepository) DeleteExpiredBlocks(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ip_blocks WHERE blocked_until <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
