package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	repo "github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/repository/postgres"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"id", "username", "email", "full_name", "phone", "password_hash", "role",
	"coalesce", "is_2fa_enabled", "is_active", "coalesce", "refresh_token_expiry",
	"last_login", "created_at",
}

func userRow(id, username string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(userColumns).AddRow(
		id, username, "a@example.com", "Alice A", "123", "hash", "admin",
		"", false, true, "", (*time.Time)(nil), (*time.Time)(nil), now,
	)
}

func TestGetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnRows(userRow("user-123", "alice"))

		user, err := r.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByUsername(ctx, "alice")
		assert.Error(t, err)
	})
}

// A concurrent duplicate slips past the service's existence pre-check and
// hits the unique username index; the violation must surface as the taken
// error, not a raw pg error.
func TestCreate_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	user := &domain.User{ID: "user-456", Username: "alice", CreatedAt: time.Now()}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.FullName, user.Phone,
			user.PasswordHash, user.Role, user.Is2FAEnabled, user.IsActive, user.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username_lower"})

	err = r.Create(context.Background(), user)
	assert.ErrorIs(t, err, autherror.ErrUsernameTaken)
}

func TestGetByRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)

	mock.ExpectQuery("SELECT id, username").
		WithArgs("token-abc").
		WillReturnRows(userRow("user-123", "alice"))

	user, err := r.GetByRefreshToken(context.Background(), "token-abc")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-123", user.ID)
}

func TestRotateRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	expiry := time.Now().Add(7 * 24 * time.Hour)

	t.Run("winner", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("user-123", "old", "new", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		rotated, err := r.RotateRefreshToken(ctx, "user-123", "old", "new", expiry)
		require.NoError(t, err)
		assert.True(t, rotated)
	})

	t.Run("loser sees zero rows", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET refresh_token").
			WithArgs("user-123", "old", "new2", expiry).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		rotated, err := r.RotateRefreshToken(ctx, "user-123", "old", "new2", expiry)
		require.NoError(t, err)
		assert.False(t, rotated)
	})
}

func TestStoreAndClearRefreshToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	expiry := time.Now().Add(7 * 24 * time.Hour)

	mock.ExpectExec("UPDATE users SET refresh_token").
		WithArgs("user-123", "token", expiry).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.StoreRefreshToken(ctx, "user-123", "token", expiry))

	mock.ExpectExec("UPDATE users SET refresh_token = NULL").
		WithArgs("user-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.ClearRefreshToken(ctx, "user-123"))
}

func TestCountRecentFailedAttempts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewGuardRepository(mock)
	since := time.Now().Add(-15 * time.Minute)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("10.0.0.1", "alice", since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := r.CountRecentFailedAttempts(context.Background(), "10.0.0.1", "alice", since)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestGetActiveBlock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewGuardRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("active block", func(t *testing.T) {
		until := now.Add(10 * time.Minute)
		mock.ExpectQuery("SELECT id, ip_address, blocked_until").
			WithArgs("10.0.0.1", now).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ip_address", "blocked_until"}).
				AddRow("block-1", "10.0.0.1", until))

		block, err := r.GetActiveBlock(ctx, "10.0.0.1", now)
		require.NoError(t, err)
		require.NotNil(t, block)
		assert.Equal(t, "10.0.0.1", block.IPAddress)
	})

	t.Run("no block", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, ip_address, blocked_until").
			WithArgs("10.0.0.2", now).
			WillReturnError(pgx.ErrNoRows)

		block, err := r.GetActiveBlock(ctx, "10.0.0.2", now)
		require.NoError(t, err)
		assert.Nil(t, block)
	})
}

func TestDeleteExpiredBlocks(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewGuardRepository(mock)
	now := time.Now()

	mock.ExpectExec("DELETE FROM ip_blocks").
		WithArgs(now).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	removed, err := r.DeleteExpiredBlocks(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
