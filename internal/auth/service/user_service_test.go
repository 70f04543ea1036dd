package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/mocks"
	authconstant "github.com/Mustafa1998-tech/ERPCompanySystem/pkg/constant"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type serviceFixture struct {
	repo   *mocks.MockUserRepository
	guard  *mocks.MockLoginGuard
	tokens *mocks.MockTokenGenerator
	svc    *service.UserService
}

func newFixture(t *testing.T) (*serviceFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &serviceFixture{
		repo:   mocks.NewMockUserRepository(ctrl),
		guard:  mocks.NewMockLoginGuard(ctrl),
		tokens: mocks.NewMockTokenGenerator(ctrl),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = service.NewUserService(f.repo, f.guard, f.tokens, logger)
	return f, ctrl
}

func activeUser(password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           "user-123",
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         authconstant.RoleAdmin,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	user := activeUser("Str0ng!Passw0rd")
	input := dto.LoginInput{Username: "Alice", Password: "Str0ng!Passw0rd", IPAddress: "10.0.0.1"}

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(nil)
	f.guard.EXPECT().CheckRate(gomock.Any(), "10.0.0.1", "alice").Return(nil)
	f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	f.tokens.EXPECT().Generate(user).Return("access-token", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().NewRefreshToken().Return("refresh-token", nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(7 * 24 * time.Hour)
	f.repo.EXPECT().StoreRefreshToken(gomock.Any(), user.ID, "refresh-token", gomock.Any()).Return(nil)
	f.repo.EXPECT().TouchLastLogin(gomock.Any(), user.ID, gomock.Any()).Return(nil)

	resp, err := f.svc.Login(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.Equal(t, authconstant.DefaultTokenType, resp.TokenType)
}

// Unknown users and wrong passwords must be indistinguishable to the caller.
func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.guard.EXPECT().CheckIP(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.guard.EXPECT().CheckRate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.guard.EXPECT().RegisterFailure(gomock.Any(), gomock.Any(), gomock.Any()).Return(false).Times(2)

	f.repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, errUnknown := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "ghost", Password: "whatever", IPAddress: "10.0.0.1"})

	f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(activeUser("correct-pass"), nil)
	_, errWrongPass := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "wrong-pass", IPAddress: "10.0.0.1"})

	assert.ErrorIs(t, errUnknown, autherror.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, autherror.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestLogin_InactiveAccountCountsAsFailure(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	user := activeUser("Str0ng!Passw0rd")
	user.IsActive = false

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(nil)
	f.guard.EXPECT().CheckRate(gomock.Any(), "10.0.0.1", "alice").Return(nil)
	f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
	f.guard.EXPECT().RegisterFailure(gomock.Any(), "10.0.0.1", "alice").Return(false)

	_, err := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "Str0ng!Passw0rd", IPAddress: "10.0.0.1"})

	assert.ErrorIs(t, err, autherror.ErrAccountInactive)
	// The wire layer collapses this to the generic credential message.
	assert.Equal(t, "invalid credentials", autherror.PublicMessage(err))
}

func TestLogin_BlockedIPShortCircuits(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(autherror.ErrIPBlocked)

	_, err := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "x", IPAddress: "10.0.0.1"})

	assert.ErrorIs(t, err, autherror.ErrIPBlocked)
}

func TestLogin_RateLimitedBeforeCredentialCheck(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(nil)
	f.guard.EXPECT().CheckRate(gomock.Any(), "10.0.0.1", "alice").
		Return(autherror.ErrTooManyLoginAttempts)
	// No GetByUsername expectation: credentials are never consulted.

	_, err := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "x", IPAddress: "10.0.0.1"})

	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
}

func TestLogin_FailureTrippingThresholdReturnsRateError(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(nil)
	f.guard.EXPECT().CheckRate(gomock.Any(), "10.0.0.1", "alice").Return(nil)
	f.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(activeUser("right"), nil)
	f.guard.EXPECT().RegisterFailure(gomock.Any(), "10.0.0.1", "alice").Return(true)

	_, err := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "wrong", IPAddress: "10.0.0.1"})

	assert.ErrorIs(t, err, autherror.ErrTooManyLoginAttempts)
}

func TestRefresh_Success(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(24 * time.Hour)
	user := activeUser("pass")
	user.RefreshToken = "old-token"
	user.RefreshTokenExpiry = &expiry

	f.repo.EXPECT().GetByRefreshToken(gomock.Any(), "old-token").Return(user, nil)
	f.tokens.EXPECT().Generate(user).Return("new-access", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().NewRefreshToken().Return("new-refresh", nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(7 * 24 * time.Hour)
	f.repo.EXPECT().RotateRefreshToken(gomock.Any(), user.ID, "old-token", "new-refresh", gomock.Any()).
		Return(true, nil)

	resp, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "old-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.Token)
	assert.Equal(t, "new-refresh", resp.RefreshToken)
}

// The loser of a concurrent rotation race gets the invalid-token error.
func TestRefresh_RotationRaceLoser(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(24 * time.Hour)
	user := activeUser("pass")
	user.RefreshToken = "old-token"
	user.RefreshTokenExpiry = &expiry

	f.repo.EXPECT().GetByRefreshToken(gomock.Any(), "old-token").Return(user, nil)
	f.tokens.EXPECT().Generate(user).Return("new-access", time.Now().Add(time.Hour), nil)
	f.tokens.EXPECT().NewRefreshToken().Return("new-refresh", nil)
	f.tokens.EXPECT().GetRefreshTokenExpiry().Return(7 * 24 * time.Hour)
	f.repo.EXPECT().RotateRefreshToken(gomock.Any(), user.ID, "old-token", "new-refresh", gomock.Any()).
		Return(false, nil)

	_, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "old-token"})

	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestRefresh_UnknownToken(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByRefreshToken(gomock.Any(), "bogus").Return(nil, nil)

	_, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "bogus"})

	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(-time.Hour)
	user := activeUser("pass")
	user.RefreshToken = "old-token"
	user.RefreshTokenExpiry = &expiry

	f.repo.EXPECT().GetByRefreshToken(gomock.Any(), "old-token").Return(user, nil)

	_, err := f.svc.Refresh(context.Background(), dto.RefreshInput{RefreshToken: "old-token"})

	assert.ErrorIs(t, err, autherror.ErrInvalidRefreshToken)
}

func TestLogout(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().ClearRefreshToken(gomock.Any(), "user-123").Return(nil)

	assert.NoError(t, f.svc.Logout(context.Background(), "user-123"))
}

func TestCreateUser_Success(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	input := dto.CreateUserInput{
		Username: "Bob",
		Email:    "bob@example.com",
		Password: "Va1id!Passphrase",
	}

	f.repo.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			assert.Equal(t, "bob", user.Username)
			assert.Equal(t, authconstant.DefaultUserRole, user.Role)
			assert.True(t, user.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(user.PasswordHash), []byte(input.Password)))
			return nil
		})

	out, err := f.svc.CreateUser(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "bob", out.Username)
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&domain.User{ID: "x"}, nil)

	_, err := f.svc.CreateUser(context.Background(), dto.CreateUserInput{
		Username: "bob",
		Password: "Va1id!Passphrase",
	})

	assert.ErrorIs(t, err, autherror.ErrUsernameTaken)
}

func TestCreateUser_PasswordPolicy(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	testCases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!xyz"},
		{"no digit", "Abcdef!ghij"},
		{"no upper", "abcdef1!ghij"},
		{"no special", "Abcdef1ghij"},
		{"common word", "Password1!extra"},
		{"contains username", "X1!bobX1!bob"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateUser(context.Background(), dto.CreateUserInput{
				Username: "bob",
				Password: tc.password,
			})
			assert.ErrorIs(t, err, autherror.ErrWeakPassword)
		})
	}
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByID(gomock.Any(), "user-123").Return(activeUser("real-password"), nil)

	err := f.svc.ChangePassword(context.Background(), "user-123", dto.ChangePasswordInput{
		CurrentPassword: "guess",
		NewPassword:     "Va1id!Passphrase",
	})

	assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
}

func TestChangePassword_Success(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByID(gomock.Any(), "user-123").Return(activeUser("Old!Passw0rd"), nil)
	f.repo.EXPECT().UpdatePassword(gomock.Any(), "user-123", gomock.Any()).Return(nil)

	err := f.svc.ChangePassword(context.Background(), "user-123", dto.ChangePasswordInput{
		CurrentPassword: "Old!Passw0rd",
		NewPassword:     "N3w!Passphrase",
	})

	assert.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

	_, err := f.svc.UpdateUser(context.Background(), "ghost", dto.UpdateUserInput{})

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}

// A partial update touches only the fields present in the body; everything
// else keeps its stored value.
func TestUpdateUser_PartialBodyPreservesOmittedFields(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	stored := &domain.User{
		ID:       "user-123",
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		Phone:    "555-0100",
		Role:     authconstant.RoleUser,
		IsActive: true,
	}
	f.repo.EXPECT().GetByID(gomock.Any(), "user-123").Return(stored, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			assert.Equal(t, authconstant.RoleManager, user.Role)
			assert.True(t, user.IsActive)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, "Alice Smith", user.FullName)
			assert.Equal(t, "555-0100", user.Phone)
			return nil
		})

	role := authconstant.RoleManager
	out, err := f.svc.UpdateUser(context.Background(), "user-123", dto.UpdateUserInput{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, authconstant.RoleManager, out.Role)
	assert.True(t, out.IsActive)
}

func TestUpdateUser_ExplicitDeactivation(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	stored := &domain.User{ID: "user-123", Username: "alice", IsActive: true}
	f.repo.EXPECT().GetByID(gomock.Any(), "user-123").Return(stored, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User) error {
			assert.False(t, user.IsActive)
			return nil
		})

	inactive := false
	out, err := f.svc.UpdateUser(context.Background(), "user-123", dto.UpdateUserInput{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, out.IsActive)
}

func TestListUsers(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: "1", Username: "alice"},
		{ID: "2", Username: "bob"},
	}, nil)

	users, err := f.svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
}

func TestLogin_GuardRepoErrorPropagates(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.guard.EXPECT().CheckIP(gomock.Any(), "10.0.0.1").Return(errors.New("failed to read ip block list"))

	_, err := f.svc.Login(context.Background(),
		dto.LoginInput{Username: "alice", Password: "x", IPAddress: "10.0.0.1"})

	assert.Error(t, err)
}
