// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_backend/internal/feature/auth/transport/http/dto"
	"restaurant_backend/internal/feature/client/domain/entity"
	"restaurant_backend/internal/shared/apperror"
)

// AuthUsecase defines the authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register stores a new identity with a hashed password.
	Register(ctx context.Context, c *entity.Client) error
	// Login authenticates the credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	apperror.UseJSONFieldNames()
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - 400 on validation errors or a taken email
// - 200 with a confirmation message on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(apperror.FromBinding(err))
		return
	}
	client, err := req.ToEntity()
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.auth.Register(c.Request.Context(), client); err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(err)
		return
	}
	slog.Info("user registered", "email", client.Email, "role", client.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: "User registered successfully"})
}

// Login handles POST /api/auth/login.
// - 400 on validation errors
// - 401 when authentication fails
// - 200 with the JWT on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(apperror.FromBinding(err))
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		_ = c.Error(err)
		return
	}
	slog.Info("user login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{JWT: token})
}
