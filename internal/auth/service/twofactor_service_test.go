package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/domain"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/auth/service"
	autherror "github.com/Mustafa1998-tech/ERPCompanySystem/internal/errors"
	"github.com/Mustafa1998-tech/ERPCompanySystem/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoFactorSetup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTwoFactorService(mockRepo, "erp-test")

	user := &domain.User{ID: "user-123", Username: "alice"}
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	mockRepo.EXPECT().SetTwoFactorSecret(gomock.Any(), "user-123", gomock.Any()).Return(nil)

	out, err := svc.Setup(context.Background(), "user-123")

	require.NoError(t, err)
	assert.NotEmpty(t, out.Secret)
	assert.Contains(t, out.QRCodeURL, "otpauth://totp/")
	assert.Contains(t, out.QRCodeURL, "alice")
}

func TestTwoFactorSetup_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTwoFactorService(mockRepo, "erp-test")

	mockRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

	_, err := svc.Setup(context.Background(), "ghost")

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}

func TestTwoFactorVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTwoFactorService(mockRepo, "erp-test")

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "erp-test", AccountName: "alice"})
	require.NoError(t, err)

	user := &domain.User{ID: "user-123", Username: "alice", TwoFactorSecret: key.Secret()}

	t.Run("valid code", func(t *testing.T) {
		code, err := totp.GenerateCode(key.Secret(), time.Now())
		require.NoError(t, err)

		mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
		assert.NoError(t, svc.Verify(context.Background(), "user-123", code))
	})

	t.Run("invalid code", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
		err := svc.Verify(context.Background(), "user-123", "000000")
		assert.ErrorIs(t, err, autherror.ErrInvalidTwoFactorCode)
	})

	t.Run("not set up", func(t *testing.T) {
		bare := &domain.User{ID: "user-123", Username: "alice"}
		mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(bare, nil)
		err := svc.Verify(context.Background(), "user-123", "123456")
		assert.ErrorIs(t, err, autherror.ErrTwoFactorNotSetup)
	})
}

func TestTwoFactorEnable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTwoFactorService(mockRepo, "erp-test")

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "erp-test", AccountName: "alice"})
	require.NoError(t, err)
	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	user := &domain.User{ID: "user-123", Username: "alice", TwoFactorSecret: key.Secret()}
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	mockRepo.EXPECT().SetTwoFactorEnabled(gomock.Any(), "user-123", true).Return(nil)

	assert.NoError(t, svc.Enable(context.Background(), "user-123", code))
}

func TestTwoFactorDisable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	svc := service.NewTwoFactorService(mockRepo, "erp-test")

	user := &domain.User{ID: "user-123", Username: "alice", TwoFactorSecret: "SECRET", Is2FAEnabled: true}
	mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
	mockRepo.EXPECT().SetTwoFactorSecret(gomock.Any(), "user-123", "").Return(nil)
	mockRepo.EXPECT().SetTwoFactorEnabled(gomock.Any(), "user-123", false).Return(nil)

	assert.NoError(t, svc.Disable(context.Background(), "user-123"))
}
