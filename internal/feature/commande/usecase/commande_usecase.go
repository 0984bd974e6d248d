// Package usecase implements the business logic for the commande feature.
package usecase

import (
	"context"
	"strings"
	"time"

	"restaurant_backend/internal/feature/commande/domain/entity"
	platusecase "restaurant_backend/internal/feature/plat/usecase"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/crud"
)

// ResourceName is used in not-found messages.
const ResourceName = "Commande"

// CommandeRepository abstracts the persistence layer for orders.
type CommandeRepository interface {
	crud.Repository[entity.Commande]
}

// ClientLookup checks that an order's owner exists.
type ClientLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// CommandeUsecase is the CRUD contract over orders. Writes check the dish and
// client references; reads fill Plats from PlatIDs.
type CommandeUsecase struct {
	svc     *crud.Service[entity.Commande, *entity.Commande]
	dishes  platusecase.DishLookup
	clients ClientLookup
	now     func() time.Time
}

// NewCommandeUsecase creates a CommandeUsecase.
func NewCommandeUsecase(repo CommandeRepository, dishes platusecase.DishLookup, clients ClientLookup) *CommandeUsecase {
	u := &CommandeUsecase{dishes: dishes, clients: clients, now: time.Now}
	u.svc = crud.NewService[entity.Commande](ResourceName, repo).WithBeforeSave(u.prepare)
	return u
}

// List returns every order with its dishes.
func (u *CommandeUsecase) List(ctx context.Context) ([]entity.Commande, error) {
	orders, err := u.svc.List(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, o := range orders {
		ids = append(ids, o.PlatIDs...)
	}
	index, err := platusecase.Index(ctx, u.dishes, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Plats, _ = platusecase.Pick(index, orders[i].PlatIDs)
	}
	return orders, nil
}

// Get returns one order with its dishes.
func (u *CommandeUsecase) Get(ctx context.Context, id string) (*entity.Commande, error) {
	o, err := u.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, o)
}

// Create stores o under a fresh id.
func (u *CommandeUsecase) Create(ctx context.Context, o *entity.Commande) (*entity.Commande, error) {
	created, err := u.svc.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, created)
}

// Update replaces the order stored under id.
func (u *CommandeUsecase) Update(ctx context.Context, id string, o *entity.Commande) (*entity.Commande, error) {
	updated, err := u.svc.Update(ctx, id, o)
	if err != nil {
		return nil, err
	}
	return u.resolve(ctx, updated)
}

// Delete removes the order.
func (u *CommandeUsecase) Delete(ctx context.Context, id string) error {
	return u.svc.Delete(ctx, id)
}

// prepare fills defaults and validates references.
func (u *CommandeUsecase) prepare(ctx context.Context, o *entity.Commande) error {
	if o.PlatIDs == nil {
		o.PlatIDs = []string{}
	}
	if o.Statut == "" {
		o.Statut = entity.StatutPending
	}
	if o.Date.IsZero() {
		o.Date = u.now().UTC()
	}
	if o.ClientID != nil && strings.TrimSpace(*o.ClientID) == "" {
		o.ClientID = nil
	}

	details := map[string]string{}

	if !o.Statut.Valid() {
		details["statut"] = "must be one of PENDING, IN_PREPARATION, READY, DELIVERED"
	}

	_, missing, err := platusecase.Resolve(ctx, u.dishes, o.PlatIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		details["platIds"] = "unknown dish ids: " + strings.Join(missing, ", ")
	}

	if o.ClientID != nil {
		ok, err := u.clients.Exists(ctx, *o.ClientID)
		if err != nil {
			return err
		}
		if !ok {
			details["clientId"] = "unknown client id: " + *o.ClientID
		}
	}

	if len(details) > 0 {
		return apperror.Validation(details)
	}
	return nil
}

func (u *CommandeUsecase) resolve(ctx context.Context, o *entity.Commande) (*entity.Commande, error) {
	var err error
	o.Plats, _, err = platusecase.Resolve(ctx, u.dishes, o.PlatIDs)
	if err != nil {
		return nil, err
	}
	return o, nil
}
