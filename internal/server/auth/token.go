// Package auth implements the token service: issuing and verifying signed,
// time-limited identity tokens bound to a user's email.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripvault/internal/common"
)

// TokenService mints and checks HS256-signed tokens. It is stateless: a
// token is valid iff its signature checks out and it has not expired, so
// there is no revocation list. The secret and validity are injected at
// construction; there is no process-wide state.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue produces a signed token binding the identity (the user's email) with
// issue and expiry timestamps.
func (s *TokenService) Issue(identity string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   identity,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
	})

	return token.SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the bound
// identity. Every failure mode (bad signature, malformed token, expired,
// wrong algorithm) collapses into common.ErrUnauthorized: callers must not
// be able to tell a forged token from an expired one.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrUnauthorized
	}

	return claims.Subject, nil
}
