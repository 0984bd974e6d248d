// Package dto defines data transfer objects for the plat feature's HTTP transport layer.
package dto

import (
	"strings"

	"restaurant_backend/internal/feature/plat/domain/entity"
)

// PlatReq is the body of POST/PUT /api/plats. Any id in the body is ignored.
type PlatReq struct {
	Nom         string   `json:"nom" binding:"required,max=255"`
	Prix        *float64 `json:"prix" binding:"required,gte=0"`
	Description string   `json:"description"`
	Categorie   string   `json:"categorie" binding:"max=100"`
	Allergenes  []string `json:"allergenes" binding:"dive,required"`
	Disponible  bool     `json:"disponible"`
}

// ToEntity converts the request into a Plat. Allergens are trimmed and de-duplicated.
func (r *PlatReq) ToEntity() (*entity.Plat, error) {
	return &entity.Plat{
		Nom:         strings.TrimSpace(r.Nom),
		Prix:        *r.Prix,
		Description: r.Description,
		Categorie:   r.Categorie,
		Allergenes:  normalizeAllergenes(r.Allergenes),
		Disponible:  r.Disponible,
	}, nil
}

func normalizeAllergenes(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
