// Package handler provides the HTTP handlers for the plat feature.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"restaurant_backend/internal/feature/plat/domain/entity"
	"restaurant_backend/internal/feature/plat/transport/http/dto"
	"restaurant_backend/internal/shared/crud"
)

// PlatUsecase is the dish surface the handler drives.
type PlatUsecase interface {
	crud.Usecase[entity.Plat]
	ListAvailable(ctx context.Context) ([]entity.Plat, error)
}

// PlatHandler serves /api/plats.
type PlatHandler struct {
	*crud.Handler[entity.Plat, dto.PlatReq, *dto.PlatReq]
	uc PlatUsecase
}

// NewPlatHandler creates a PlatHandler.
func NewPlatHandler(uc PlatUsecase) *PlatHandler {
	return &PlatHandler{
		Handler: crud.NewHandler[entity.Plat, dto.PlatReq](uc),
		uc:      uc,
	}
}

// Register mounts the CRUD routes plus GET /disponibles on rg.
func (h *PlatHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/disponibles", h.Available)
	h.Handler.Register(rg)
}

// Available returns 200 with the available dishes, or 204 when there are none.
func (h *PlatHandler) Available(c *gin.Context) {
	items, err := h.uc.ListAvailable(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	crud.RespondList(c, items)
}
