// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"restaurant_backend/internal/feature/client/domain/entity"
	clientusecase "restaurant_backend/internal/feature/client/usecase"
	"restaurant_backend/internal/platform/metrics"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/identity"
)

// UserRepository abstracts the credential store. Identities are clients.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new identity. A taken email returns apperror.ErrDuplicateEmail.
	Create(ctx context.Context, c *entity.Client) error
	// FindByEmail returns clientusecase.ErrClientNotFound when no identity has email.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify must cost the same for an empty digest as for a real one.
	Verify(plaintext, digest string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(email string, role identity.Role) (string, error)
}

// LoginRecorder counts login outcomes.
type LoginRecorder interface {
	RecordLogin(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordLogin(string) {}

// authUsecase implements registration and login.
type authUsecase struct {
	users    UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	recorder LoginRecorder
	newID    func() string
}

// NewAuthUsecase creates an authUsecase. recorder may be nil.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer, recorder LoginRecorder) *authUsecase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &authUsecase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		recorder: recorder,
		newID:    uuid.NewString,
	}
}

// Register stores c with a hashed password under a fresh id. No token is issued.
func (u *authUsecase) Register(ctx context.Context, c *entity.Client) error {
	c.Email = clientusecase.NormalizeEmail(c.Email)
	if !c.Role.Valid() {
		c.Role = identity.RoleClient
	}

	_, err := u.users.FindByEmail(ctx, c.Email)
	switch {
	case err == nil:
		return apperror.ErrDuplicateEmail
	case !errors.Is(err, clientusecase.ErrClientNotFound):
		return err
	}

	hashed, err := u.hasher.Hash(c.Password)
	if err != nil {
		return err
	}
	c.Password = hashed
	c.ID = u.newID()

	return u.users.Create(ctx, c)
}

// Login verifies the credentials and returns a signed token.
// An unknown email and a wrong password fail identically, and the password is
// verified in both cases.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, clientusecase.NormalizeEmail(email))
	if err != nil && !errors.Is(err, clientusecase.ErrClientNotFound) {
		return "", err
	}

	digest := ""
	if user != nil {
		digest = user.Password
	}
	if !u.hasher.Verify(password, digest) || user == nil {
		u.recorder.RecordLogin(metrics.LoginFailure)
		return "", apperror.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	u.recorder.RecordLogin(metrics.LoginSuccess)
	return token, nil
}
