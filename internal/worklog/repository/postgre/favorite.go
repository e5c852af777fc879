package postgre

import (
	"context"
	"fmt"

	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

const queryFavoritesByProject = `
	SELECT ticket_key, summary, status, assignee
	FROM user_favorites
	WHERE username = $1 AND project_key = $2
	ORDER BY date_added DESC`

// GetFavoritesByProject returns favorites newest first.
func (r *implRepository) GetFavoritesByProject(ctx context.Context, opt repository.GetFavoritesOptions) ([]worklog.TicketRef, error) {
	rows, err := r.db.Query(ctx, queryFavoritesByProject, opt.UserID, opt.ProjectKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetFavoritesByProject"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	var out []worklog.TicketRef
	for rows.Next() {
		var t worklog.TicketRef
		if err := rows.Scan(&t.Key, &t.Summary, &t.Status, &t.Assignee); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("GetFavoritesByProject"), err)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("GetFavoritesByProject"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return out, nil
}
