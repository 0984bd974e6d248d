// Package dto defines data transfer objects for the client feature's HTTP transport layer.
package dto

import (
	"strings"

	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/identity"
)

// ClientReq is the body of POST/PUT /api/clients. The full client is replaced
// on update, so the password is always required.
type ClientReq struct {
	Nom      string `json:"nom" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"`
	Adresse  string `json:"adresse"`
}

// ToEntity converts the request into a Client. A missing role defaults to CLIENT.
func (r *ClientReq) ToEntity() (*entity.Client, error) {
	role := identity.RoleClient
	if strings.TrimSpace(r.Role) != "" {
		parsed, err := identity.ParseRole(r.Role)
		if err != nil {
			return nil, apperror.FieldInvalid("role", "must be one of ADMIN, CLIENT")
		}
		role = parsed
	}

	return &entity.Client{
		Nom:      strings.TrimSpace(r.Nom),
		Email:    r.Email,
		Password: r.Password,
		Role:     role,
		Adresse:  r.Adresse,
	}, nil
}
