package middleware

import (
	"labor_cost_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID makes sure every request has an id, reusing the caller's one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(utils.RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id stored by RequestID, or "" when the middleware did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(utils.RequestIDKey)
}
