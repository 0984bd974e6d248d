// Package adapters provides the repository implementation for the client feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/feature/client/usecase"
	"restaurant_backend/internal/platform/db"
	"restaurant_backend/internal/shared/apperror"
)

// clientGorm is the gorm implementation of usecase.ClientRepository.
type clientGorm struct {
	*db.Repository[entity.Client]
}

var _ usecase.ClientRepository = (*clientGorm)(nil)

// NewClientGorm creates a clientGorm over gdb.
func NewClientGorm(gdb *gorm.DB) *clientGorm {
	return &clientGorm{Repository: db.NewRepository[entity.Client](gdb)}
}

// Create inserts c. A unique violation on email returns apperror.ErrDuplicateEmail.
func (r *clientGorm) Create(ctx context.Context, c *entity.Client) error {
	return mapDuplicate(r.Repository.Create(ctx, c))
}

// Update overwrites c. A unique violation on email returns apperror.ErrDuplicateEmail.
func (r *clientGorm) Update(ctx context.Context, c *entity.Client) error {
	return mapDuplicate(r.Repository.Update(ctx, c))
}

// FindByEmail returns usecase.ErrClientNotFound when no client has email.
func (r *clientGorm) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	var c entity.Client
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func mapDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrDuplicateEmail
	}
	return err
}
