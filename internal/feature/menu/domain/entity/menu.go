// Package entity defines the domain entities for the menu feature.
package entity

import (
	"time"

	platentity "restaurant_backend/internal/feature/plat/domain/entity"
)

// Menu is a named set of dishes sold at a fixed price.
type Menu struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Nom         string  `gorm:"size:255;not null" json:"nom"`
	Description string  `json:"description"`
	Prix        float64 `gorm:"not null" json:"prix"`

	// PlatIDs are weak references to dishes, kept in the order given.
	PlatIDs []string `gorm:"column:plat_ids;serializer:json" json:"platIds"`
	// Plats is resolved from PlatIDs on read and never stored.
	Plats []platentity.Plat `gorm:"-" json:"plats"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName pins the table name used by gorm.
func (Menu) TableName() string { return "menus" }

func (m *Menu) GetID() string   { return m.ID }
func (m *Menu) SetID(id string) { m.ID = id }
