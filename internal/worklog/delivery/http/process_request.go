package http

import (
	"github.com/gin-gonic/gin"

	"voice-worklog/internal/middleware"
	"voice-worklog/internal/model"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	return middleware.GetScope(c)
}

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSearchTicketsReq(c *gin.Context) (searchTicketsReq, error) {
	var req searchTicketsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processLogWorkReq(c *gin.Context) (logWorkReq, error) {
	var req logWorkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processDeleteWorklogReq binds the URI params.
func (h *handler) processDeleteWorklogReq(c *gin.Context) (deleteWorklogReq, error) {
	var req deleteWorklogReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, nil
}
