package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/reqctx"
	"resume-builder/internal/shared/telemetry"
)

// Error logs the failure and aborts with a short plain-text body.
// Internal details stay in the log line, never in the response.
func Error(c *gin.Context, status int, message string, err error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": reqctx.RequestID(c),
	}
	if userID := reqctx.UserID(c); userID != "" {
		fields["user_id"] = userID
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	telemetry.Error("http.error", fields)

	c.Abort()
	c.String(status, message)
}

// Internal aborts with a generic 500 response.
func Internal(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
}
