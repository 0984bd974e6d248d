// Package usecase implements the business logic for the menu feature.
package usecase

import (
	"context"
	"strings"

	"restaurant_backend/internal/feature/menu/domain/entity"
	platusecase "restaurant_backend/internal/feature/plat/usecase"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/crud"
)

// ResourceName is used in not-found messages.
const ResourceName = "Menu"

// MenuRepository abstracts the persistence layer for menus.
type MenuRepository interface {
	crud.Repository[entity.Menu]
}

// MenuUsecase is the CRUD contract over menus. Writes reject unknown dish ids;
// reads fill Plats from PlatIDs.
type MenuUsecase struct {
	svc    *crud.Service[entity.Menu, *entity.Menu]
	dishes platusecase.DishLookup
}

// NewMenuUsecase creates a MenuUsecase.
func NewMenuUsecase(repo MenuRepository, dishes platusecase.DishLookup) *MenuUsecase {
	u := &MenuUsecase{dishes: dishes}
	u.svc = crud.NewService[entity.Menu](ResourceName, repo).WithBeforeSave(u.checkDishes)
	return u
}

// List returns every menu with its dishes.
func (u *MenuUsecase) List(ctx context.Context) ([]entity.Menu, error) {
	menus, err := u.svc.List(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, m := range menus {
		ids = append(ids, m.PlatIDs...)
	}
	index, err := platusecase.Index(ctx, u.dishes, ids)
	if err != nil {
		return nil, err
	}
	for i := range menus {
		menus[i].Plats, _ = platusecase.Pick(index, menus[i].PlatIDs)
	}
	return menus, nil
}

// Get returns one menu with its dishes.
func (u *MenuUsecase) Get(ctx context.Context, id string) (*entity.Menu, error) {
	m, err := u.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, m)
}

// Create stores m under a fresh id.
func (u *MenuUsecase) Create(ctx context.Context, m *entity.Menu) (*entity.Menu, error) {
	created, err := u.svc.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, created)
}

// Update replaces the menu stored under id.
func (u *MenuUsecase) Update(ctx context.Context, id string, m *entity.Menu) (*entity.Menu, error) {
	updated, err := u.svc.Update(ctx, id, m)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, updated)
}

// Delete removes the menu. Its dishes are untouched.
func (u *MenuUsecase) Delete(ctx context.Context, id string) error {
	return u.svc.Delete(ctx, id)
}

func (u *MenuUsecase) checkDishes(ctx context.Context, m *entity.Menu) error {
	if m.PlatIDs == nil {
		m.PlatIDs = []string{}
	}
	_, missing, err := platusecase.Resolve(ctx, u.dishes, m.PlatIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return apperror.FieldInvalid("platIds", "unknown dish ids: "+strings.Join(missing, ", "))
	}
	return nil
}

// resolve fills m.Plats. Dishes deleted since the menu was written are skipped.
func (u *MenuUsecase) resolve(ctx context.Context, m *entity.Menu) (*entity.Menu, error) {
	var err error
	m.Plats, _, err = platusecase.Resolve(ctx, u.dishes, m.PlatIDs)
	if err != nil {
		return nil, err
	}
	return m, nil
}
