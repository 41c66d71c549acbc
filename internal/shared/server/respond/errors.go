package respond

import (
	"github.com/gin-gonic/gin"

	"mentor-backend/internal/shared/telemetry"
)

// Error sends a flat error response: {"error": kind, "message": message} plus
// any kind-specific extra fields (missingAspects, duplicateAspects, detail, ...).
func Error(c *gin.Context, status int, kind, message string, extra map[string]any) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"error":      kind,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	payload := gin.H{
		"error":   kind,
		"message": message,
	}
	for k, v := range extra {
		payload[k] = v
	}
	c.AbortWithStatusJSON(status, payload)
}
