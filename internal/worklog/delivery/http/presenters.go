package http

import (
	"time"

	"voice-worklog/internal/parser"
	"voice-worklog/internal/worklog"
	"voice-worklog/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r parseReq) toInput() worklog.ParseInput {
	return worklog.ParseInput{Text: r.Text}
}

// ---

type searchTicketsReq struct {
	Project  string `json:"project"  binding:"required,max=100"`
	Keywords string `json:"keywords" binding:"max=500"`
}

func (r searchTicketsReq) toInput() worklog.SearchTicketsInput {
	return worklog.SearchTicketsInput{Project: r.Project, Keywords: r.Keywords}
}

// ---

type logWorkReq struct {
	TicketKey        string        `json:"ticket_key"      binding:"required"`
	TicketSummary    string        `json:"ticket_summary"`
	DurationMinutes  *int          `json:"duration_minutes"`
	StartTime        *parser.Clock `json:"start_time"`
	Date             response.Date `json:"date"`
	Description      string        `json:"description"     binding:"max=5000"`
	UseTicketSummary bool          `json:"use_ticket_summary"`
}

func (r logWorkReq) toInput() worklog.LogWorkInput {
	return worklog.LogWorkInput{
		Ticket:           worklog.TicketRef{Key: r.TicketKey, Summary: r.TicketSummary},
		DurationMinutes:  r.DurationMinutes,
		StartTime:        r.StartTime,
		Date:             time.Time(r.Date),
		Description:      r.Description,
		UseTicketSummary: r.UseTicketSummary,
	}
}

// ---

type deleteWorklogReq struct {
	TicketKey string `uri:"ticket_key" binding:"required"`
	WorklogID string `uri:"worklog_id" binding:"required"`
}

func (r deleteWorklogReq) toInput() worklog.DeleteWorklogInput {
	return worklog.DeleteWorklogInput{TicketKey: r.TicketKey, WorklogID: r.WorklogID}
}

// --- Response DTOs ---

type ticketResp struct {
	Key          string   `json:"key"`
	Summary      string   `json:"summary"`
	Status       string   `json:"status"`
	Assignee     string   `json:"assignee"`
	Score        int      `json:"score,omitempty"`
	MatchedWords []string `json:"matched_words,omitempty"`
}

func newTicketResp(t worklog.TicketRef) ticketResp {
	return ticketResp{
		Key:          t.Key,
		Summary:      t.Summary,
		Status:       t.Status,
		Assignee:     t.Assignee,
		Score:        t.Score,
		MatchedWords: t.MatchedWords,
	}
}

func newTicketRespPtr(t *worklog.TicketRef) *ticketResp {
	if t == nil {
		return nil
	}
	r := newTicketResp(*t)
	return &r
}

func newTicketsResp(ts []worklog.TicketRef) []ticketResp {
	out := make([]ticketResp, len(ts))
	for i, t := range ts {
		out[i] = newTicketResp(t)
	}
	return out
}

type timeRangeResp struct {
	Family          string       `json:"family"`
	Kind            parser.Kind  `json:"kind"`
	Start           parser.Clock `json:"start"`
	End             parser.Clock `json:"end"`
	Text            string       `json:"text"`
	DurationMinutes int          `json:"duration_minutes"`
	Wrapped         bool         `json:"wrapped"`
}

type parseResp struct {
	OriginalText              string                            `json:"original_text"`
	Range                     *timeRangeResp                    `json:"range,omitempty"`
	StartTime                 *parser.Clock                     `json:"start_time"`
	DurationMinutes           *int                              `json:"duration_minutes"`
	HoursLabel                *string                           `json:"hours_label"`
	MinutesLabel              *string                           `json:"minutes_label"`
	TimeSpent                 string                            `json:"time_spent,omitempty"`
	Project                   *string                           `json:"project"`
	ProjectKey                string                            `json:"project_key,omitempty"`
	SearchKeywords            string                            `json:"search_keywords"`
	Description               string                            `json:"description"`
	Date                      *response.Date                    `json:"date,omitempty"`
	UserProjects              map[string]worklog.ProjectMapping `json:"user_projects"`
	SuggestedTickets          []ticketResp                      `json:"suggested_tickets"`
	FavoriteTickets           []ticketResp                      `json:"favorite_tickets"`
	AutoSelectedFromSearch    *ticketResp                       `json:"auto_selected_from_search,omitempty"`
	AutoSelectedFromFavorites *ticketResp                       `json:"auto_selected_from_favorites,omitempty"`
	AutoSelectedTicket        *ticketResp                       `json:"auto_selected_ticket"`
	Conditions                []worklog.Condition               `json:"conditions"`
}

func (h *handler) newParseResp(out worklog.ParsedUtterance) parseResp {
	resp := parseResp{
		OriginalText:              out.OriginalText,
		StartTime:                 out.StartTime,
		DurationMinutes:           out.DurationMinutes,
		HoursLabel:                out.HoursLabel,
		MinutesLabel:              out.MinutesLabel,
		TimeSpent:                 out.TimeSpent,
		Project:                   out.Project,
		ProjectKey:                out.ProjectKey,
		SearchKeywords:            out.SearchKeywords,
		Description:               out.Description,
		UserProjects:              out.UserProjects,
		SuggestedTickets:          newTicketsResp(out.SuggestedTickets),
		FavoriteTickets:           newTicketsResp(out.FavoriteTickets),
		AutoSelectedFromSearch:    newTicketRespPtr(out.AutoSelectedFromSearch),
		AutoSelectedFromFavorites: newTicketRespPtr(out.AutoSelectedFromFavorites),
		AutoSelectedTicket:        newTicketRespPtr(out.AutoSelectedTicket),
		Conditions:                out.Conditions,
	}
	if r := out.Range; r != nil {
		resp.Range = &timeRangeResp{
			Family:          r.Family,
			Kind:            r.Kind,
			Start:           r.Start,
			End:             r.End,
			Text:            r.Text,
			DurationMinutes: r.DurationMinutes,
			Wrapped:         r.Wrapped,
		}
	}
	if out.Date != nil {
		d := response.Date(*out.Date)
		resp.Date = &d
	}
	return resp
}

type searchTicketsResp struct {
	ProjectKey   string       `json:"project_key"`
	Tickets      []ticketResp `json:"tickets"`
	AutoSelected *ticketResp  `json:"auto_selected"`
}

func (h *handler) newSearchTicketsResp(out worklog.SearchTicketsOutput) searchTicketsResp {
	return searchTicketsResp{
		ProjectKey:   out.ProjectKey,
		Tickets:      newTicketsResp(out.Tickets),
		AutoSelected: newTicketRespPtr(out.AutoSelected),
	}
}

type logWorkResp struct {
	WorklogID string            `json:"worklog_id"`
	TicketKey string            `json:"ticket_key"`
	TimeSpent string            `json:"time_spent"`
	Started   response.DateTime `json:"started"`
	Comment   string            `json:"comment"`
}

func (h *handler) newLogWorkResp(out worklog.LogWorkOutput) logWorkResp {
	return logWorkResp{
		WorklogID: out.WorklogID,
		TicketKey: out.TicketKey,
		TimeSpent: out.TimeSpent,
		Started:   response.DateTime(out.Started),
		Comment:   out.Comment,
	}
}
