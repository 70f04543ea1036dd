package service

//go:generate mockgen -destination=../../mocks/mock_login_guard.go -package=mocks github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service LoginGuard

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/Mustafa1998-tech/ERPCompanySystem/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LoginGuard is the brute-force protection surface the login flow depends on.
type LoginGuard interface {
	CheckIP(ctx context.Context, ip string) error
	CheckRate(ctx context.Context, ip, username string) error
	RegisterFailure(ctx context.Context, ip, username string) bool
}

type UserService struct {
	repo   domain.UserRepository
	guard  LoginGuard
	tokens TokenGenerator
	logger *slog.Logger
}

func NewUserService(repo domain.UserRepository, guard LoginGuard, tokens TokenGenerator, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		guard:  guard,
		tokens: tokens,
		logger: logger,
	}
}

// dummyHash is compared against when the username does not exist, so lookups
// for unknown and known users cost the same bcrypt round.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Login verifies credentials and issues a token pair. Checks run in a fixed
// order: IP block first, then the attempt-rate threshold, then credentials.
// Unknown usernames, wrong passwords and inactive accounts all surface as
// ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))

	if err := s.guard.CheckIP(ctx, input.IPAddress); err != nil {
		return nil, err
	}
	if err := s.guard.CheckRate(ctx, input.IPAddress, username); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
		return nil, s.failLogin(ctx, input.IPAddress, username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, s.failLogin(ctx, input.IPAddress, username)
	}

	if !user.IsActive {
		s.guard.RegisterFailure(ctx, input.IPAddress, username)
		return nil, autherror.ErrAccountInactive
	}

	return s.issueTokens(ctx, user)
}

// failLogin records the failed attempt and reports the outcome the caller
// should see, either the generic credential error or the rate-limit error
// when this failure tripped the threshold.
func (s *UserService) failLogin(ctx context.Context, ip, username string) error {
	if blocked := s.guard.RegisterFailure(ctx, ip, username); blocked {
		return autherror.ErrTooManyLoginAttempts
	}
	return autherror.ErrInvalidCredentials
}

func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, accessExpiry, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	refreshExpiry := time.Now().Add(s.tokens.GetRefreshTokenExpiry())
	if err := s.repo.StoreRefreshToken(ctx, user.ID, refreshToken, refreshExpiry); err != nil {
		return nil, err
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to update last login", "userID", user.ID, "error", err)
	}

	return &dto.TokenResponse{
		Token:               accessToken,
		RefreshToken:        refreshToken,
		TokenType:           constant.DefaultTokenType,
		TokenExpires:        accessExpiry,
		RefreshTokenExpires: refreshExpiry,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair. Rotation is a
// compare-and-swap on the stored token, so two concurrent calls with the same
// token produce exactly one winner.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidRefreshToken
	}
	if user.RefreshTokenExpiry == nil || user.RefreshTokenExpiry.Before(time.Now()) {
		return nil, autherror.ErrInvalidRefreshToken
	}
	if !user.IsActive {
		return nil, autherror.ErrInvalidRefreshToken
	}

	accessToken, accessExpiry, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.tokens.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	refreshExpiry := time.Now().Add(s.tokens.GetRefreshTokenExpiry())
	rotated, err := s.repo.RotateRefreshToken(ctx, user.ID, input.RefreshToken, newRefreshToken, refreshExpiry)
	if err != nil {
		return nil, err
	}
	if !rotated {
		// Lost the race; the presented token was already consumed.
		return nil, autherror.ErrInvalidRefreshToken
	}

	return &dto.TokenResponse{
		Token:               accessToken,
		RefreshToken:        newRefreshToken,
		TokenType:           constant.DefaultTokenType,
		TokenExpires:        accessExpiry,
		RefreshTokenExpires: refreshExpiry,
	}, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.repo.ClearRefreshToken(ctx, userID)
}

func (s *UserService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.UserOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))

	if err := validatePassword(input.Password, username); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constant.DefaultUserRole
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserOutput(user), nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return toUserOutput(user), nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, *toUserOutput(&users[i]))
	}
	return out, nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, input dto.UpdateUserInput) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil && *input.Role != "" {
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserOutput(user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return autherror.ErrInvalidCredentials
	}

	if err := validatePassword(input.NewPassword, user.Username); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

// commonPasswordWords are substrings that disqualify a password outright.
var commonPasswordWords = []string{"password", "123456", "qwerty", "admin", "letmein", "welcome"}

func validatePassword(password, username string) error {
	if len(password) < 8 || len(password) > 128 {
		return autherror.ErrWeakPassword
	}

	lowered := strings.ToLower(password)
	if username != "" && strings.Contains(lowered, strings.ToLower(username)) {
		return autherror.ErrWeakPassword
	}
	for _, word := range commonPasswordWords {
		if strings.Contains(lowered, word) {
			return autherror.ErrWeakPassword
		}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return autherror.ErrWeakPassword
	}

	return nil
}

func toUserOutput(user *domain.User) *dto.UserOutput {
	return &dto.UserOutput{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		Phone:        user.Phone,
		Role:         user.Role,
		Is2FAEnabled: user.Is2FAEnabled,
		IsActive:     user.IsActive,
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
	}
}
