// Package crud implements the validated list/get/create/update/delete contract
// shared by every resource controller.
package crud

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"restaurant_backend/internal/shared/apperror"
)

// ErrRecordNotFound is returned by repositories when no row has the requested id.
var ErrRecordNotFound = errors.New("record not found")

// Entity is implemented by the pointer type of every persisted resource.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(id string)
}

// Repository abstracts the persistence collaborator for one resource.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	// FindByID returns ErrRecordNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (*T, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, e *T) error
	// Update overwrites every column of the row identified by e's id.
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id string) error
}

// BeforeSaveFunc runs after the id is fixed and before every Create/Update write.
// Returning an error aborts the write.
type BeforeSaveFunc[T any] func(ctx context.Context, e *T) error

// Service implements the CRUD contract over a Repository.
type Service[T any, P Entity[T]] struct {
	resource   string
	repo       Repository[T]
	newID      func() string
	beforeSave BeforeSaveFunc[T]
}

// NewService creates a Service. resource names the entity in not-found messages.
func NewService[T any, P Entity[T]](resource string, repo Repository[T]) *Service[T, P] {
	return &Service[T, P]{
		resource: resource,
		repo:     repo,
		newID:    uuid.NewString,
	}
}

// WithBeforeSave installs a hook run before every write.
func (s *Service[T, P]) WithBeforeSave(fn BeforeSaveFunc[T]) *Service[T, P] {
	s.beforeSave = fn
	return s
}

// List returns every stored entity.
func (s *Service[T, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Get returns the entity with the given id.
func (s *Service[T, P]) Get(ctx context.Context, id string) (*T, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return e, nil
}

// Create assigns a fresh id (any id already on e is discarded), persists e and
// returns the stored entity.
func (s *Service[T, P]) Create(ctx context.Context, e *T) (*T, error) {
	id := s.newID()
	P(e).SetID(id)

	if err := s.runBeforeSave(ctx, e); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Update replaces the entity stored under id with e. The id in e is forced to id.
// Nothing is written when id does not exist.
func (s *Service[T, P]) Update(ctx context.Context, id string, e *T) (*T, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	P(e).SetID(id)

	if err := s.runBeforeSave(ctx, e); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, s.mapNotFound(err, id)
	}
	return s.Get(ctx, id)
}

// Delete removes the entity stored under id.
func (s *Service[T, P]) Delete(ctx context.Context, id string) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapNotFound(err, id)
	}
	return nil
}

func (s *Service[T, P]) ensureExists(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NotFound(s.resource, "id", id)
	}
	return nil
}

func (s *Service[T, P]) runBeforeSave(ctx context.Context, e *T) error {
	if s.beforeSave == nil {
		return nil
	}
	return s.beforeSave(ctx, e)
}

func (s *Service[T, P]) mapNotFound(err error, id string) error {
	if errors.Is(err, ErrRecordNotFound) {
		return apperror.NotFound(s.resource, "id", id)
	}
	return err
}
