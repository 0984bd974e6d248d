// Package dto defines data transfer objects for the menu feature's HTTP transport layer.
package dto

import (
	"strings"

	"restaurant_backend/internal/feature/menu/domain/entity"
)

// MenuReq is the body of POST/PUT /api/menus. Dishes are referenced by id.
type MenuReq struct {
	Nom         string   `json:"nom" binding:"required,max=255"`
	Description string   `json:"description"`
	Prix        *float64 `json:"prix" binding:"required,gte=0"`
	PlatIDs     []string `json:"platIds" binding:"dive,required"`
}

// ToEntity converts the request into a Menu.
func (r *MenuReq) ToEntity() (*entity.Menu, error) {
	ids := r.PlatIDs
	if ids == nil {
		ids = []string{}
	}
	return &entity.Menu{
		Nom:         strings.TrimSpace(r.Nom),
		Description: r.Description,
		Prix:        *r.Prix,
		PlatIDs:     ids,
	}, nil
}
