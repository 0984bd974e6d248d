// Package entity defines the domain entities for the client feature.
package entity

import (
	"time"

	"restaurant_backend/internal/shared/identity"
)

// Client is a registered identity: a customer or an administrator.
type Client struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Nom   string `gorm:"size:255;not null" json:"nom"`
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt digest. It is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	Role    identity.Role `gorm:"size:20;not null" json:"role"`
	Adresse string        `json:"adresse"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName pins the table name used by gorm.
func (Client) TableName() string { return "clients" }

func (c *Client) GetID() string   { return c.ID }
func (c *Client) SetID(id string) { c.ID = id }
