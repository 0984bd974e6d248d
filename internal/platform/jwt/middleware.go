package jwtmw

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant_backend/internal/shared/identity"
)

const bearerPrefix = "Bearer "

// Verifier checks a raw token and returns the principal it carries.
type Verifier interface {
	Verify(token string) (identity.Principal, error)
}

// Authenticate returns a Gin middleware that attaches the verified principal to
// the request context. It never rejects: a missing or invalid token leaves the
// request anonymous and the authorization policy decides what that means.
func Authenticate(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(auth, bearerPrefix)

		// 2. Verify signature and expiry
		p, err := v.Verify(tokenStr)
		if err != nil {
			slog.Debug("bearer token rejected", "error", err, "remote_addr", c.ClientIP())
			c.Next()
			return
		}

		// 3. Thread the principal through the request context
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
