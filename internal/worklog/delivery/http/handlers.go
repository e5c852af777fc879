package http

import (
	"github.com/gin-gonic/gin"

	"voice-worklog/pkg/response"
)

// Parse godoc
// @Summary     Parse a voice utterance
// @Description Extracts time range, project and description from a Portuguese utterance and ranks ticket candidates.
// @Tags        Worklogs
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Caller user id"
// @Param       body      body   parseReq true "Utterance"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/worklogs/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// SearchTickets godoc
// @Summary     Search tickets of a project
// @Description Lists open tickets of a configured project ranked by keyword matches (top 10).
// @Tags        Worklogs
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string           true "Caller user id"
// @Param       body      body   searchTicketsReq true "Search"
// @Success     200 {object} searchTicketsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Project not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/worklogs/tickets/search [POST]
func (h *handler) SearchTickets(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processSearchTicketsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SearchTickets(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchTickets: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchTicketsResp(output))
}

// LogWork godoc
// @Summary     Log work on a ticket
// @Description Files a Jira worklog. Without a start time the entry starts at noon of the given date.
// @Tags        Worklogs
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Caller user id"
// @Param       body      body   logWorkReq true "Worklog"
// @Success     200 {object} logWorkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/worklogs [POST]
func (h *handler) LogWork(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processLogWorkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.LogWork(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogWork: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLogWorkResp(output))
}

// DeleteWorklog godoc
// @Summary     Delete a worklog
// @Tags        Worklogs
// @Produce     json
// @Param       X-User-ID  header string true "Caller user id"
// @Param       ticket_key path   string true "Ticket key"
// @Param       worklog_id path   string true "Worklog id"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/worklogs/{ticket_key}/{worklog_id} [DELETE]
func (h *handler) DeleteWorklog(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processDeleteWorklogReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteWorklog(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.DeleteWorklog: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
