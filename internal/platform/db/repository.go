package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"restaurant_backend/internal/shared/crud"
)

// Repository is the gorm implementation of crud.Repository shared by every
// resource table. Feature adapters embed it and add their own lookups.
type Repository[T any] struct {
	DB *gorm.DB
}

// NewRepository creates a Repository over db.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{DB: db}
}

// List returns every row in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.DB.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID returns crud.ErrRecordNotFound when no row has id.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var e T
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrRecordNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Exists reports whether a row with id is stored.
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts e.
func (r *Repository[T]) Create(ctx context.Context, e *T) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// Update overwrites every column of the row identified by e's primary key,
// zero values included. created_at is left untouched.
func (r *Repository[T]) Update(ctx context.Context, e *T) error {
	res := r.DB.WithContext(ctx).Model(e).Select("*").Omit("created_at").Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crud.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row with id.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return crud.ErrRecordNotFound
	}
	return nil
}
