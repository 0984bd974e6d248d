// Package adapters provides the repository implementation for the commande feature.
package adapters

import (
	"gorm.io/gorm"

	"restaurant_backend/internal/feature/commande/domain/entity"
	"restaurant_backend/internal/feature/commande/usecase"
	"restaurant_backend/internal/platform/db"
)

var _ usecase.CommandeRepository = (*db.Repository[entity.Commande])(nil)

// NewCommandeGorm creates the gorm order repository.
func NewCommandeGorm(gdb *gorm.DB) *db.Repository[entity.Commande] {
	return db.NewRepository[entity.Commande](gdb)
}
