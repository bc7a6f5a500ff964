package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fare-validator/internal/core/ports/mocks"
	"fare-validator/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (*AuthServiceImpl, *mocks.MockHashService, *mocks.MockTokenService, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService([]OperatorCredential{
		{Username: "alice", PasswordHash: "$argon2id$alice"},
	}, hashSvc, tokenSvc)
	return svc, hashSvc, tokenSvc, ctrl
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	expiry := time.Now().Add(8 * time.Hour)
	hashSvc.EXPECT().Verify("secret", "$argon2id$alice").Return(true, nil)
	tokenSvc.EXPECT().Generate("alice").Return("jwt-token", expiry, nil)

	token, exp, err := svc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_Login_UnknownOperator(t *testing.T) {
	svc, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	_, _, err := svc.Login(context.Background(), "mallory", "secret")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	hashSvc.EXPECT().Verify("wrong", "$argon2id$alice").Return(false, nil)

	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_CorruptHash(t *testing.T) {
	svc, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	hashSvc.EXPECT().Verify("secret", "$argon2id$alice").Return(false, errors.New("invalid hash format"))

	_, _, err := svc.Login(context.Background(), "alice", "secret")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	svc, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	hashSvc.EXPECT().Verify("secret", "$argon2id$alice").Return(true, nil)
	tokenSvc.EXPECT().Generate("alice").Return("", time.Time{}, errors.New("signing failed"))

	_, _, err := svc.Login(context.Background(), "alice", "secret")
	assert.Error(t, err)
}
