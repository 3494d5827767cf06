package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tasksync/internal/shared/constants"
)

// RequestID attaches a request id to every request, honoring the one
// supplied by the caller when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
