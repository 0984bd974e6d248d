// Package adapters provides the repository implementation for the plat feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"restaurant_backend/internal/feature/plat/domain/entity"
	"restaurant_backend/internal/feature/plat/usecase"
	"restaurant_backend/internal/platform/db"
)

// platGorm is the gorm implementation of usecase.PlatRepository.
type platGorm struct {
	*db.Repository[entity.Plat]
}

var _ usecase.PlatRepository = (*platGorm)(nil)

// NewPlatGorm creates a platGorm over gdb.
func NewPlatGorm(gdb *gorm.DB) *platGorm {
	return &platGorm{Repository: db.NewRepository[entity.Plat](gdb)}
}

// FindByIDs returns the stored dishes among ids.
func (r *platGorm) FindByIDs(ctx context.Context, ids []string) ([]entity.Plat, error) {
	out := []entity.Plat{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
