// Package adapters provides the repository implementation for the menu feature.
package adapters

import (
	"gorm.io/gorm"

	"restaurant_backend/internal/feature/menu/domain/entity"
	"restaurant_backend/internal/feature/menu/usecase"
	"restaurant_backend/internal/platform/db"
)

var _ usecase.MenuRepository = (*db.Repository[entity.Menu])(nil)

// NewMenuGorm creates the gorm menu repository.
func NewMenuGorm(gdb *gorm.DB) *db.Repository[entity.Menu] {
	return db.NewRepository[entity.Menu](gdb)
}
