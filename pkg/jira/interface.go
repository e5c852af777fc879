package jira

import (
	"context"
)

// IJira defines the Jira Cloud operations used by the worklog flow.
// Implementations are safe for concurrent use.
type IJira interface {
	SearchJQL(ctx context.Context, req SearchRequest) (SearchResponse, error)
	AddWorklog(ctx context.Context, issueKey string, req WorklogRequest) (WorklogResponse, error)
	DeleteWorklog(ctx context.Context, issueKey, worklogID string) error
}
