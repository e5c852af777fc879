package worklog

import (
	"time"

	"voice-worklog/internal/parser"
)

// TicketRef is an issue candidate. Score and MatchedWords are filled by
// keyword ranking.
type TicketRef struct {
	Key          string   `json:"key"`
	Summary      string   `json:"summary"`
	Status       string   `json:"status"`
	Assignee     string   `json:"assignee"`
	Description  string   `json:"description"`
	Score        int      `json:"score,omitempty"`
	MatchedWords []string `json:"matched_words,omitempty"`
}

// ProjectMapping links a spoken project code to a Jira project.
type ProjectMapping struct {
	DisplayName    string `json:"display_name"`
	JiraProjectKey string `json:"jira_project_key"`
	SearchProject  string `json:"search_project,omitempty"`
}

// Condition is a non-fatal gap in a parse the caller may need to resolve.
type Condition string

const (
	ConditionNoTimeExpression        Condition = "no_time_expression"
	ConditionNoProject               Condition = "no_project"
	ConditionNoKeywords              Condition = "no_keywords"
	ConditionProjectNotConfigured    Condition = "project_not_configured"
	ConditionAmbiguousTicketMatch    Condition = "ambiguous_ticket_match"
	ConditionCollaboratorUnavailable Condition = "collaborator_unavailable"
)

// ParsedUtterance is the work-record candidate built from one utterance.
type ParsedUtterance struct {
	OriginalText    string            `json:"original_text"`
	Range           *parser.TimeRange `json:"range,omitempty"`
	StartTime       *parser.Clock     `json:"start_time"`
	DurationMinutes *int              `json:"duration_minutes"`
	HoursLabel      *string           `json:"hours_label"`
	MinutesLabel    *string           `json:"minutes_label"`
	TimeSpent       string            `json:"time_spent,omitempty"`
	Project         *string           `json:"project"`
	ProjectKey      string            `json:"project_key,omitempty"`
	SearchKeywords  string            `json:"search_keywords"`
	Description     string            `json:"description"`
	Date            *time.Time        `json:"date,omitempty"`

	UserProjects              map[string]ProjectMapping `json:"user_projects"`
	SuggestedTickets          []TicketRef               `json:"suggested_tickets"`
	FavoriteTickets           []TicketRef               `json:"favorite_tickets"`
	AutoSelectedFromSearch    *TicketRef                `json:"auto_selected_from_search,omitempty"`
	AutoSelectedFromFavorites *TicketRef                `json:"auto_selected_from_favorites,omitempty"`
	AutoSelectedTicket        *TicketRef                `json:"auto_selected_ticket"`
	SelectedTicket            *TicketRef                `json:"selected_ticket"`

	Conditions []Condition `json:"conditions"`
}

// CommittedTicket returns the manual selection when present, otherwise the
// auto-selected ticket.
func (p ParsedUtterance) CommittedTicket() *TicketRef {
	if p.SelectedTicket != nil {
		return p.SelectedTicket
	}
	return p.AutoSelectedTicket
}

// Has reports whether c was raised during the parse.
func (p ParsedUtterance) Has(c Condition) bool {
	for _, got := range p.Conditions {
		if got == c {
			return true
		}
	}
	return false
}

// LogWorkInput builds the worklog request for the committed ticket.
func (p ParsedUtterance) LogWorkInput(date time.Time, useTicketSummary bool) (LogWorkInput, error) {
	t := p.CommittedTicket()
	if t == nil {
		return LogWorkInput{}, ErrTicketRequired
	}
	return LogWorkInput{
		Ticket:           *t,
		DurationMinutes:  p.DurationMinutes,
		StartTime:        p.StartTime,
		Date:             date,
		Description:      p.Description,
		UseTicketSummary: useTicketSummary,
	}, nil
}

// --- UseCase inputs/outputs ---

type ParseInput struct {
	Text string
}

type SearchTicketsInput struct {
	Project  string
	Keywords string
}

type SearchTicketsOutput struct {
	ProjectKey   string
	Tickets      []TicketRef
	AutoSelected *TicketRef
}

type LogWorkInput struct {
	Ticket          TicketRef
	DurationMinutes *int
	StartTime       *parser.Clock
	// Date is the calendar day; zero means today
	Date        time.Time
	Description string
	// UseTicketSummary allows the ticket summary as the comment when
	// Description is empty
	UseTicketSummary bool
}

type LogWorkOutput struct {
	WorklogID string
	TicketKey string
	TimeSpent string
	Started   time.Time
	Comment   string
}

type DeleteWorklogInput struct {
	TicketKey string
	WorklogID string
}
