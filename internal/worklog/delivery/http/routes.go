package http

import (
	"github.com/gin-gonic/gin"

	"voice-worklog/internal/middleware"
)

// RegisterRoutes maps the worklog endpoints. Every route requires a caller
// scope and is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)
	rg.POST("/tickets/search", mw.Auth(), mw.RateLimit(), h.SearchTickets)
	rg.POST("", mw.Auth(), mw.RateLimit(), h.LogWork)
	rg.DELETE("/:ticket_key/:worklog_id", mw.Auth(), mw.RateLimit(), h.DeleteWorklog)
}
