package crud

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_backend/internal/shared/apperror"
)

// Usecase is the CRUD surface a Handler drives.
type Usecase[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, e *T) (*T, error)
	Update(ctx context.Context, id string, e *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Request is implemented by the pointer type of a request DTO. ToEntity may
// return an *apperror.Error for checks the binding tags cannot express.
type Request[T any, R any] interface {
	*R
	ToEntity() (*T, error)
}

// Handler exposes a Usecase over HTTP. Failures are pushed with c.Error and
// rendered by apperror.Handler.
type Handler[T any, R any, PR Request[T, R]] struct {
	uc Usecase[T]
}

// NewHandler creates a Handler for uc.
func NewHandler[T any, R any, PR Request[T, R]](uc Usecase[T]) *Handler[T, R, PR] {
	apperror.UseJSONFieldNames()
	return &Handler[T, R, PR]{uc: uc}
}

// Register mounts the five CRUD routes on rg.
func (h *Handler[T, R, PR]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns 200 with every entity, or 204 when there are none.
func (h *Handler[T, R, PR]) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	RespondList(c, items)
}

// Get returns 200 with the entity, or 404.
func (h *Handler[T, R, PR]) Get(c *gin.Context) {
	e, err := h.uc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Create validates the body and returns 201 with the stored entity.
func (h *Handler[T, R, PR]) Create(c *gin.Context) {
	e, ok := h.bind(c)
	if !ok {
		return
	}
	created, err := h.uc.Create(c.Request.Context(), e)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update validates the body and returns 200 with the replaced entity, or 404.
func (h *Handler[T, R, PR]) Update(c *gin.Context) {
	e, ok := h.bind(c)
	if !ok {
		return
	}
	updated, err := h.uc.Update(c.Request.Context(), c.Param("id"), e)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete returns 204, or 404.
func (h *Handler[T, R, PR]) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler[T, R, PR]) bind(c *gin.Context) (*T, bool) {
	req := PR(new(R))
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(apperror.FromBinding(err))
		return nil, false
	}
	e, err := req.ToEntity()
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return e, true
}

// RespondList writes 204 for an empty slice and 200 with the items otherwise.
func RespondList[T any](c *gin.Context, items []T) {
	if len(items) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, items)
}
