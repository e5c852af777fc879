package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-worklog/internal/model"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

// SearchTickets ranks the open tickets of a user project against keywords.
// Empty keywords list the tickets in source order.
func (uc *implUseCase) SearchTickets(ctx context.Context, sc model.Scope, input worklog.SearchTicketsInput) (worklog.SearchTicketsOutput, error) {
	project := strings.TrimSpace(input.Project)
	if project == "" {
		return worklog.SearchTicketsOutput{}, worklog.ErrProjectRequired
	}

	projects, err := uc.repo.GetUserProjects(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "SearchTickets: failed to load projects for user=%s: %v", sc.UserID, err)
		return worklog.SearchTicketsOutput{}, fmt.Errorf("failed to load projects: %w", err)
	}
	mapping, ok := resolveProject(projects, project)
	if !ok {
		return worklog.SearchTicketsOutput{}, worklog.ErrProjectNotFound
	}

	found, err := uc.tickets.SearchByProjectAndKeywords(ctx, repository.SearchTicketsOptions{
		ProjectKey: searchProjectKey(mapping),
		Keywords:   input.Keywords,
	})
	if err != nil {
		uc.l.Errorf(ctx, "SearchTickets: search failed for project=%s: %v", mapping.JiraProjectKey, err)
		return worklog.SearchTicketsOutput{}, fmt.Errorf("failed to search: %w", err)
	}

	// no keywords lists the open backlog unscored
	r := ranking{Tickets: found}
	if strings.TrimSpace(input.Keywords) != "" {
		r = rankCandidates(found, input.Keywords)
	}
	uc.l.Infof(ctx, "SearchTickets: project=%s found=%d ranked=%d", mapping.JiraProjectKey, len(found), len(r.Tickets))

	return worklog.SearchTicketsOutput{
		ProjectKey:   mapping.JiraProjectKey,
		Tickets:      limitTickets(r.Tickets, uc.searchLimit),
		AutoSelected: r.AutoSelected,
	}, nil
}
