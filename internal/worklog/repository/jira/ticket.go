package jira

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
	pkgJira "voice-worklog/pkg/jira"
)

var searchFields = []string{"summary", "status", "assignee", "description"}

// SearchByProjectAndKeywords lists open issues of the project, most recently
// updated first. Keyword filtering is left to the caller.
func (r *implRepository) SearchByProjectAndKeywords(ctx context.Context, opt repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
	key := strings.TrimSpace(opt.ProjectKey)
	if key == "" {
		return nil, fmt.Errorf("%w: project key is empty", repository.ErrFailedToSearch)
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			return slices.Clone(cached), nil
		}
	}

	resp, err := r.client.SearchJQL(ctx, pkgJira.SearchRequest{
		JQL:        r.buildJQL(key),
		MaxResults: r.cfg.MaxResults,
		Fields:     searchFields,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchByProjectAndKeywords"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToSearch, err)
	}

	tickets := make([]worklog.TicketRef, 0, len(resp.Issues))
	for _, is := range resp.Issues {
		tickets = append(tickets, toTicketRef(is))
	}

	if r.cache != nil {
		r.cache.Add(key, slices.Clone(tickets))
	}
	return tickets, nil
}

func (r *implRepository) buildJQL(projectKey string) string {
	return fmt.Sprintf(`project = "%s" AND status != "%s" ORDER BY updated DESC`,
		escapeJQL(projectKey), escapeJQL(r.cfg.ClosedStatus))
}

func escapeJQL(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`)
}

func toTicketRef(is pkgJira.Issue) worklog.TicketRef {
	assignee := DefaultUnassigned
	if is.Fields.Assignee != nil && is.Fields.Assignee.DisplayName != "" {
		assignee = is.Fields.Assignee.DisplayName
	}
	return worklog.TicketRef{
		Key:         is.Key,
		Summary:     is.Fields.Summary,
		Status:      is.Fields.Status.Name,
		Assignee:    assignee,
		Description: pkgJira.ADFToText(is.Fields.Description),
	}
}
