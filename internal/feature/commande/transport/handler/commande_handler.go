// Package handler provides the HTTP handlers for the commande feature.
package handler

import (
	"restaurant_backend/internal/feature/commande/domain/entity"
	"restaurant_backend/internal/feature/commande/transport/http/dto"
	"restaurant_backend/internal/shared/crud"
)

// CommandeHandler serves /api/commandes.
type CommandeHandler = crud.Handler[entity.Commande, dto.CommandeReq, *dto.CommandeReq]

// NewCommandeHandler creates a CommandeHandler.
func NewCommandeHandler(uc crud.Usecase[entity.Commande]) *CommandeHandler {
	return crud.NewHandler[entity.Commande, dto.CommandeReq](uc)
}
