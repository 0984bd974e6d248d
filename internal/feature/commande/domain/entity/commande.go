// Package entity defines the domain entities for the commande feature.
package entity

import (
	"time"

	platentity "restaurant_backend/internal/feature/plat/domain/entity"
)

// Statut is the lifecycle state of an order. Any state may follow any other.
type Statut string

const (
	StatutPending       Statut = "PENDING"
	StatutInPreparation Statut = "IN_PREPARATION"
	StatutReady         Statut = "READY"
	StatutDelivered     Statut = "DELIVERED"
)

// Valid reports whether s is one of the enumerated states.
func (s Statut) Valid() bool {
	switch s {
	case StatutPending, StatutInPreparation, StatutReady, StatutDelivered:
		return true
	}
	return false
}

// Commande is a customer order.
type Commande struct {
	ID   string    `gorm:"primaryKey;size:36" json:"id"`
	Date time.Time `gorm:"not null" json:"date"`

	// PlatIDs are weak references to dishes, kept in the order given, repeats included.
	PlatIDs []string `gorm:"column:plat_ids;serializer:json" json:"platIds"`
	// Plats is resolved from PlatIDs on read and never stored.
	Plats []platentity.Plat `gorm:"-" json:"plats"`

	Statut    Statut  `gorm:"size:20;not null" json:"statut"`
	ClientID  *string `gorm:"size:36;index" json:"clientId"`
	PrixTotal float64 `gorm:"not null" json:"prixTotal"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName pins the table name used by gorm.
func (Commande) TableName() string { return "commandes" }

func (c *Commande) GetID() string   { return c.ID }
func (c *Commande) SetID(id string) { c.ID = id }
