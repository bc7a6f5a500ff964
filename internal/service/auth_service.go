package service

import (
	"context"
	"fmt"
	"time"

	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"
)

// OperatorCredential is a back-office account loaded from configuration.
type OperatorCredential struct {
	Username     string
	PasswordHash string // Argon2id PHC string
}

// AuthServiceImpl implements ports.AuthService against a static operator list.
type AuthServiceImpl struct {
	operators map[string]string
	hashSvc   ports.HashService
	tokenSvc  ports.TokenService
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(operators []OperatorCredential, hashSvc ports.HashService, tokenSvc ports.TokenService) *AuthServiceImpl {
	m := make(map[string]string, len(operators))
	for _, op := range operators {
		m[op.Username] = op.PasswordHash
	}
	return &AuthServiceImpl{operators: m, hashSvc: hashSvc, tokenSvc: tokenSvc}
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	hash, ok := s.operators[username]
	if !ok {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, hash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
