// Package handler provides the HTTP handlers for the client feature.
package handler

import (
	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/feature/client/transport/http/dto"
	"restaurant_backend/internal/shared/crud"
)

// ClientHandler serves /api/clients.
type ClientHandler = crud.Handler[entity.Client, dto.ClientReq, *dto.ClientReq]

// NewClientHandler creates a ClientHandler.
func NewClientHandler(uc crud.Usecase[entity.Client]) *ClientHandler {
	return crud.NewHandler[entity.Client, dto.ClientReq](uc)
}
