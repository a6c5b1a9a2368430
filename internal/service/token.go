// Package service contains the business logic of the vacancy service.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobvault/vacancy-service/internal/apperr"
)

// Claims represents the JWT claims carried by an access token. The subject
// is the username; validity is determined by signature and expiry alone,
// with revocation layered on top by the session store.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines access-token operations.
type TokenService interface {
	Generate(username string) (string, error)
	Parse(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a TokenService signing with the given shared
// secret. Tokens expire after the given duration; a zero duration produces
// tokens that are already expired on the next check.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *tokenService) Generate(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies the token's signature and expiry. It returns
// apperr.ErrTokenExpired for a well-signed but stale token and
// apperr.ErrTokenInvalid for everything else.
func (s *tokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperr.ErrTokenInvalid
	}
	return claims, nil
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}
