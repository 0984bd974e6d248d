// Package usecase implements the business logic for the client feature.
package usecase

import (
	"context"
	"errors"
	"strings"

	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/crud"
)

// ResourceName is used in not-found messages.
const ResourceName = "Client"

// ClientRepository abstracts the persistence layer for clients.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ClientRepository interface {
	crud.Repository[entity.Client]
	// FindByEmail returns ErrClientNotFound when no client has email.
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
}

// PasswordHasher hashes plaintext passwords before they are stored.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// ClientUsecase is the CRUD contract over clients. Every write hashes the
// supplied password and keeps email unique.
type ClientUsecase struct {
	*crud.Service[entity.Client, *entity.Client]
	repo   ClientRepository
	hasher PasswordHasher
}

// NewClientUsecase creates a ClientUsecase.
func NewClientUsecase(repo ClientRepository, hasher PasswordHasher) *ClientUsecase {
	u := &ClientUsecase{repo: repo, hasher: hasher}
	u.Service = crud.NewService[entity.Client](ResourceName, repo).WithBeforeSave(u.beforeSave)
	return u
}

func (u *ClientUsecase) beforeSave(ctx context.Context, c *entity.Client) error {
	c.Email = NormalizeEmail(c.Email)

	existing, err := u.repo.FindByEmail(ctx, c.Email)
	switch {
	case err == nil && existing.ID != c.ID:
		return apperror.ErrDuplicateEmail
	case err != nil && !errors.Is(err, ErrClientNotFound):
		return err
	}

	hashed, err := u.hasher.Hash(c.Password)
	if err != nil {
		return err
	}
	c.Password = hashed
	return nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
