// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cliententity "restaurant_backend/internal/feature/client/domain/entity"
	commandeentity "restaurant_backend/internal/feature/commande/domain/entity"
	menuentity "restaurant_backend/internal/feature/menu/domain/entity"
	platadapters "restaurant_backend/internal/feature/plat/adapters"
	platentity "restaurant_backend/internal/feature/plat/domain/entity"
	platusecase "restaurant_backend/internal/feature/plat/usecase"
	"restaurant_backend/internal/platform/cache"
)

// Models lists the persisted entities migrated at startup.
func Models() []any {
	return []any{
		&cliententity.Client{},
		&platentity.Plat{},
		&menuentity.Menu{},
		&commandeentity.Commande{},
	}
}

// NewPlatRepository creates a PlatRepository implementation.
// If Redis is available, the relational store is wrapped with a read-through cache.
// Otherwise, it reads the relational store directly.
func NewPlatRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) platusecase.PlatRepository {
	repo := platadapters.NewPlatGorm(db)
	if rdb != nil {
		return cache.NewCachingPlatRepository(rdb, ttl, repo, "plats")
	}
	return repo
}
