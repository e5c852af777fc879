package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voice-worklog/internal/model"
	"voice-worklog/pkg/log"
	"voice-worklog/pkg/response"
)

const (
	HeaderUserID = "X-User-ID"
	scopeKey     = "scope"
)

// Auth requires the X-User-ID header and stores the caller scope. Identity
// is asserted by the gateway in front of this service.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			mw.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		SetScope(c, model.Scope{
			UserID:    userID,
			RequestID: log.RequestID(c.Request.Context()),
		})
		c.Next()
	}
}

func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
