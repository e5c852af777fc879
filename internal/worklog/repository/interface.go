package repository

import (
	"context"

	"voice-worklog/internal/worklog"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	ProjectDirectory
	FavoritesStore
}

// ProjectDirectory lists the project mappings configured by a user, keyed
// by spoken project code.
type ProjectDirectory interface {
	GetUserProjects(ctx context.Context, userID string) (map[string]worklog.ProjectMapping, error)
}

// FavoritesStore lists a user's favorite tickets of one project.
type FavoritesStore interface {
	GetFavoritesByProject(ctx context.Context, opt GetFavoritesOptions) ([]worklog.TicketRef, error)
}

// TicketSearch returns the open tickets of a project, newest updated first.
type TicketSearch interface {
	SearchByProjectAndKeywords(ctx context.Context, opt SearchTicketsOptions) ([]worklog.TicketRef, error)
}

// WorklogSubmitter files and removes worklogs in the issue tracker.
type WorklogSubmitter interface {
	SubmitWorklog(ctx context.Context, opt SubmitWorklogOptions) (string, error)
	DeleteWorklog(ctx context.Context, opt DeleteWorklogOptions) error
}
