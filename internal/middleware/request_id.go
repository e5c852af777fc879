package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-worklog/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or mints one, and binds it
// to the request context for logging.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
