package apperror

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx response.
type Response struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details"`
}

// now is swapped in tests.
var now = time.Now

// ToResponse classifies err and builds its envelope.
// Anything that is not an *Error is reported as Unexpected with its raw text in details.error.
func ToResponse(err error) Response {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Unexpected(err)
	}

	resp := Response{
		Timestamp: now(),
		Status:    appErr.Kind.Status(),
		Message:   appErr.Message,
		Details:   appErr.Details,
	}
	if appErr.Kind == KindUnexpected {
		cause := err.Error()
		if appErr.Err != nil {
			cause = appErr.Err.Error()
		}
		resp.Details = map[string]string{"error": cause}
	}
	return resp
}

// Render writes the envelope for err and aborts the chain.
func Render(c *gin.Context, err error) {
	resp := ToResponse(err)
	if resp.Status >= 500 {
		slog.Error("request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

// Handler is the single boundary normalizer. Handlers and middleware report
// failures with c.Error and return; Handler renders the last one once the chain unwinds.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		Render(c, c.Errors.Last().Err)
	}
}

// Recovery turns a panic into the 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		Render(c, Unexpected(fmt.Errorf("panic: %v", recovered)))
	})
}
