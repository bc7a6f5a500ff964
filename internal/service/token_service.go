package service

import (
	"errors"
	"fmt"
	"time"

	"fare-validator/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// operatorScope is the only scope issued today; card writes require it.
const operatorScope = "cards:write"

var errWrongScope = errors.New("token lacks operator scope")

type operatorClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 session tokens for back-office operators.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTTokenService(secret string, expiry time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

func (s *JWTTokenService) Generate(operator string) (string, time.Time, error) {
	issued := s.now()
	expires := issued.Add(s.expiry)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, operatorClaims{
		Scope: operatorScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   operator,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing operator token: %w", err)
	}
	return signed, expires, nil
}

func (s *JWTTokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	var claims operatorClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing operator token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("operator token has no subject")
	}
	if claims.Scope != operatorScope {
		return nil, errWrongScope
	}
	return &ports.TokenClaims{Operator: claims.Subject}, nil
}
