package postgre

import (
	"context"
	"fmt"
	"strings"

	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

const queryUserProjects = `
	SELECT project_name, display_name, jira_project_key, search_project
	FROM user_projects
	WHERE username = $1
	ORDER BY project_name`

// GetUserProjects returns the user's mappings keyed by project_name.
func (r *implRepository) GetUserProjects(ctx context.Context, userID string) (map[string]worklog.ProjectMapping, error) {
	rows, err := r.db.Query(ctx, queryUserProjects, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUserProjects"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	out := make(map[string]worklog.ProjectMapping)
	for rows.Next() {
		var name string
		var m worklog.ProjectMapping
		if err := rows.Scan(&name, &m.DisplayName, &m.JiraProjectKey, &m.SearchProject); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("GetUserProjects"), err)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
		}
		if m.DisplayName == "" {
			m.DisplayName = name
		}
		out[strings.TrimSpace(name)] = m
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("GetUserProjects"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, nil
}
