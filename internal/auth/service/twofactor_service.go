package service

import (
	"context"
	"fmt"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/dto"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/pquerna/otp/totp"
)

type TwoFactorService struct {
	repo   domain.UserRepository
	issuer string
}

func NewTwoFactorService(repo domain.UserRepository, issuer string) *TwoFactorService {
	return &TwoFactorService{repo: repo, issuer: issuer}
}

// Setup generates a fresh TOTP secret and stores it on the user. The secret
// stays dormant until Enable confirms the user can produce valid codes.
func (s *TwoFactorService) Setup(ctx context.Context, userID string) (*dto.TwoFactorSetupOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: user.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	if err := s.repo.SetTwoFactorSecret(ctx, user.ID, key.Secret()); err != nil {
		return nil, err
	}

	return &dto.TwoFactorSetupOutput{
		Secret:       key.Secret(),
		QRCodeURL:    key.URL(),
		Instructions: "Scan this QR code with your authenticator app",
	}, nil
}

func (s *TwoFactorService) Verify(ctx context.Context, userID, code string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.TwoFactorSecret == "" {
		return autherror.ErrTwoFactorNotSetup
	}
	if !totp.Validate(code, user.TwoFactorSecret) {
		return autherror.ErrInvalidTwoFactorCode
	}
	return nil
}

func (s *TwoFactorService) Enable(ctx context.Context, userID, code string) error {
	if err := s.Verify(ctx, userID, code); err != nil {
		return err
	}
	return s.repo.SetTwoFactorEnabled(ctx, userID, true)
}

func (s *TwoFactorService) Disable(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if err := s.repo.SetTwoFactorSecret(ctx, userID, ""); err != nil {
		return err
	}
	return s.repo.SetTwoFactorEnabled(ctx, userID, false)
}
