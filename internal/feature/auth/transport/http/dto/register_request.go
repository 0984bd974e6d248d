package dto

import (
	"strings"

	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/shared/apperror"
	"restaurant_backend/internal/shared/identity"
)

// RegisterReq is the request body of /api/auth/register.
// It uses Gin's binding tags for validation (required, email format, password length).
type RegisterReq struct {
	Nom      string `json:"nom" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Adresse  string `json:"adresse"`
	Role     string `json:"role"`
}

// ToEntity builds the identity to register. The password is still plaintext.
// A missing role defaults to CLIENT.
func (r *RegisterReq) ToEntity() (*entity.Client, error) {
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

// MessageRes is the confirmation returned by /api/auth/register.
type MessageRes struct {
	Message string `json:"message"`
}
