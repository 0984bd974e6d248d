// Package dto defines data transfer objects for the commande feature's HTTP transport layer.
package dto

import (
	"time"

	"restaurant_backend/internal/feature/commande/domain/entity"
)

// CommandeReq is the body of POST/PUT /api/commandes. Any id in the body is ignored.
type CommandeReq struct {
	// Date is RFC 3339. It defaults to the time of the write.
	Date      *time.Time `json:"date"`
	PlatIDs   []string   `json:"platIds" binding:"dive,required"`
	Statut    string     `json:"statut" binding:"omitempty,oneof=PENDING IN_PREPARATION READY DELIVERED"`
	ClientID  *string    `json:"clientId"`
	PrixTotal *float64   `json:"prixTotal" binding:"omitempty,gte=0"`
}

// ToEntity converts the request into a Commande.
func (r *CommandeReq) ToEntity() (*entity.Commande, error) {
	c := &entity.Commande{
		PlatIDs:  r.PlatIDs,
		Statut:   entity.Statut(r.Statut),
		ClientID: r.ClientID,
	}
	if r.PrixTotal != nil {
		c.PrixTotal = *r.PrixTotal
	}
	if r.Date != nil {
		c.Date = r.Date.UTC()
	}
	return c, nil
}
