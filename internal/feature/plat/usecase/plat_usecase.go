// Package usecase implements the business logic for the plat feature.
package usecase

import (
	"context"

	"restaurant_backend/internal/feature/plat/domain/entity"
	"restaurant_backend/internal/shared/crud"
)

// ResourceName is used in not-found messages.
const ResourceName = "Plat"

// PlatRepository abstracts the persistence layer for dishes.
type PlatRepository interface {
	crud.Repository[entity.Plat]
	// FindByIDs returns the stored dishes among ids, in no particular order.
	// Unknown ids are not an error.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Plat, error)
}

// PlatUsecase is the CRUD contract over dishes plus the availability filter.
type PlatUsecase struct {
	*crud.Service[entity.Plat, *entity.Plat]
}

// NewPlatUsecase creates a PlatUsecase.
func NewPlatUsecase(repo PlatRepository) *PlatUsecase {
	return &PlatUsecase{Service: crud.NewService[entity.Plat](ResourceName, repo)}
}

// ListAvailable returns the dishes currently flagged disponible.
func (u *PlatUsecase) ListAvailable(ctx context.Context) ([]entity.Plat, error) {
	all, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Plat, 0, len(all))
	for _, p := range all {
		if p.Disponible {
			out = append(out, p)
		}
	}
	return out, nil
}
