// Package entity defines the domain entities for the plat feature.
package entity

import "time"

// Plat is a dish on the restaurant's card.
type Plat struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	Nom         string   `gorm:"size:255;not null" json:"nom"`
	Prix        float64  `gorm:"not null" json:"prix"`
	Description string   `json:"description"`
	Categorie   string   `gorm:"size:100" json:"categorie"`
	Allergenes  []string `gorm:"serializer:json" json:"allergenes"`
	Disponible  bool     `gorm:"not null" json:"disponible"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName pins the table name used by gorm.
func (Plat) TableName() string { return "plats" }

func (p *Plat) GetID() string   { return p.ID }
func (p *Plat) SetID(id string) { p.ID = id }
