package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the slice of pgxpool.Pool the repositories use. pgxmock satisfies it
// in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, full_name, phone, password_hash, role,
	COALESCE(two_factor_secret, ''), is_2fa_enabled, is_active,
	COALESCE(refresh_token, ''), refresh_token_expiry, last_login, created_at`

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.Phone,
		&user.PasswordHash, &user.Role, &user.TwoFactorSecret,
		&user.Is2FAEnabled, &user.IsActive, &user.RefreshToken,
		&user.RefreshTokenExpiry, &user.LastLogin, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1) LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1 LIMIT 1`
	return r.scanUser(r.db.QueryRow(ctx, query, token))
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.FullName, &user.Phone,
			&user.PasswordHash, &user.Role, &user.TwoFactorSecret,
			&user.Is2FAEnabled, &user.IsActive, &user.RefreshToken,
			&user.RefreshTokenExpiry, &user.LastLogin, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, email, full_name, phone, password_hash, role, is_2fa_enabled, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, user.ID, user.Username, user.Email, user.FullName, user.Phone,
		user.PasswordHash, user.Role, user.Is2FAEnabled, user.IsActive, user.CreatedAt)
	if isUniqueViolation(err) {
		// The service's existence pre-check races with the unique username
		// index; a concurrent duplicate lands here.
		return autherror.ErrUsernameTaken
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET email = $2, full_name = $3, phone = $4, role = $5, is_active = $6
		WHERE id = $1
	`, user.ID, user.Email, user.FullName, user.Phone, user.Role, user.IsActive)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	return err
}

func (r *UserRepository) StoreRefreshToken(ctx context.Context, userID, token string, expiry time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $2, refresh_token_expiry = $3 WHERE id = $1
	`, userID, token, expiry)
	return err
}

// RotateRefreshToken only succeeds when the stored token still equals
// oldToken. Concurrent refreshes with the same token race on this update and
// exactly one of them matches.
func (r *UserRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string, expiry time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = $3, refresh_token_expiry = $4
		WHERE id = $1 AND refresh_token = $2
	`, userID, oldToken, newToken, expiry)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET refresh_token = NULL, refresh_token_expiry = NULL WHERE id = $1
	`, userID)
	return err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, userID, at)
	return err
}

func (r *UserRepository) SetTwoFactorSecret(ctx context.Context, userID, secret string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET two_factor_secret = NULLIF($2, '') WHERE id = $1`, userID, secret)
	return err
}

func (r *UserRepository) SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET is_2fa_enabled = $2 WHERE id = $1`, userID, enabled)
	return err
}
