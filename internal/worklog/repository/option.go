package repository

import "time"

// GetFavoritesOptions filters favorites by owner and Jira project.
type GetFavoritesOptions struct {
	UserID     string
	ProjectKey string
}

// SearchTicketsOptions scopes a ticket search to one Jira project.
// Keywords are passed through for implementations that pre-filter.
type SearchTicketsOptions struct {
	ProjectKey string
	Keywords   string
}

// SubmitWorklogOptions holds the fields of a new worklog.
type SubmitWorklogOptions struct {
	TicketKey       string
	DurationMinutes int
	Started         time.Time
	Comment         string
}

// DeleteWorklogOptions identifies a worklog to remove.
type DeleteWorklogOptions struct {
	TicketKey string
	WorklogID string
}
