package worklog

import (
	"context"

	"voice-worklog/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse turns an utterance into a ParsedUtterance with ticket candidates.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParsedUtterance, error)
	// SearchTickets lists ranked tickets of a user project.
	SearchTickets(ctx context.Context, sc model.Scope, input SearchTicketsInput) (SearchTicketsOutput, error)
	// LogWork files a worklog against the committed ticket.
	LogWork(ctx context.Context, sc model.Scope, input LogWorkInput) (LogWorkOutput, error)
	DeleteWorklog(ctx context.Context, sc model.Scope, input DeleteWorklogInput) error
}
