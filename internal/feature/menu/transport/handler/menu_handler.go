// Package handler provides the HTTP handlers for the menu feature.
package handler

import (
	"restaurant_backend/internal/feature/menu/domain/entity"
	"restaurant_backend/internal/feature/menu/transport/http/dto"
	"restaurant_backend/internal/shared/crud"
)

// MenuHandler serves /api/menus.
type MenuHandler = crud.Handler[entity.Menu, dto.MenuReq, *dto.MenuReq]

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(uc crud.Usecase[entity.Menu]) *MenuHandler {
	return crud.NewHandler[entity.Menu, dto.MenuReq](uc)
}
