package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/shekharkalshetti/interview-pal-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failed request. Clients only see
// the message; the machine-readable code goes to the log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends the standardized error envelope and logs the failure.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
