// Package jwtmw issues and verifies session tokens and attaches the verified
// principal to incoming requests.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"restaurant_backend/internal/shared/identity"
)

// ErrInvalidToken is returned by Verify for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: subject is the identity's email.
type Claims struct {
	Role identity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 tokens valid for a fixed window after issuance.
type TokenService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

// NewTokenService creates a TokenService with the provided secret and validity window.
func NewTokenService(secret string, expiration time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

// Issue creates a signed token for email carrying role.
func (s *TokenService) Issue(email string, role identity.Role) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of tokenStr and returns the embedded principal.
func (s *TokenService) Verify(tokenStr string) (identity.Principal, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		// Only HMAC is accepted; this also rejects "none".
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return identity.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return identity.Principal{}, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}
	return identity.Principal{Email: claims.Subject, Role: claims.Role}, nil
}
