package usecase

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"voice-worklog/internal/model"
	"voice-worklog/internal/parser"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

// Parse turns an utterance into a work-record candidate. Gaps in the text
// and collaborator failures surface as conditions, never as errors.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input worklog.ParseInput) (worklog.ParsedUtterance, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return worklog.ParsedUtterance{}, worklog.ErrEmptyUtterance
	}

	out := fromResult(uc.parser.Parse(text))
	uc.l.Debugf(ctx, "Parse: user=%s text=%q", sc.UserID, text)

	if out.Range != nil && out.Range.Wrapped {
		uc.l.Warnf(ctx, "Parse: range %q crosses midnight, duration=%dmin", out.Range.Text, out.Range.DurationMinutes)
	}
	if out.StartTime == nil {
		addCondition(&out, worklog.ConditionNoTimeExpression)
	}
	if out.Project == nil {
		addCondition(&out, worklog.ConditionNoProject)
	}
	if out.SearchKeywords == "" && out.Description == "" {
		addCondition(&out, worklog.ConditionNoKeywords)
	}

	projects, err := uc.repo.GetUserProjects(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "Parse: project directory unavailable: %v", err)
		addCondition(&out, worklog.ConditionCollaboratorUnavailable)
		return out, nil
	}
	if projects != nil {
		out.UserProjects = projects
	}

	if out.Project == nil {
		return out, nil
	}
	mapping, ok := resolveProject(projects, *out.Project)
	if !ok {
		uc.l.Infof(ctx, "Parse: project %q not configured for user=%s", *out.Project, sc.UserID)
		addCondition(&out, worklog.ConditionProjectNotConfigured)
		return out, nil
	}
	out.ProjectKey = mapping.JiraProjectKey

	if len(keywordTokens(out.SearchKeywords)) == 0 {
		uc.l.Debugf(ctx, "Parse: no usable search tokens in %q", out.SearchKeywords)
		return out, nil
	}
	uc.findCandidates(ctx, sc, &out, mapping)
	return out, nil
}

// findCandidates queries favorites and the ticket search concurrently.
// Each source fails on its own without cancelling the other.
func (uc *implUseCase) findCandidates(ctx context.Context, sc model.Scope, out *worklog.ParsedUtterance, mapping worklog.ProjectMapping) {
	var (
		g                 errgroup.Group
		favorites, found  []worklog.TicketRef
		favErr, searchErr error
	)
	g.Go(func() error {
		favorites, favErr = uc.repo.GetFavoritesByProject(ctx, repository.GetFavoritesOptions{
			UserID:     sc.UserID,
			ProjectKey: mapping.JiraProjectKey,
		})
		return nil
	})
	g.Go(func() error {
		found, searchErr = uc.tickets.SearchByProjectAndKeywords(ctx, repository.SearchTicketsOptions{
			ProjectKey: searchProjectKey(mapping),
			Keywords:   out.SearchKeywords,
		})
		return nil
	})
	_ = g.Wait()

	if favErr != nil {
		uc.l.Warnf(ctx, "Parse: favorites unavailable: %v", favErr)
		addCondition(out, worklog.ConditionCollaboratorUnavailable)
	} else {
		r := rankCandidates(favorites, out.SearchKeywords)
		out.FavoriteTickets = r.Tickets
		out.AutoSelectedFromFavorites = r.AutoSelected
	}

	if searchErr != nil {
		uc.l.Warnf(ctx, "Parse: ticket search unavailable: %v", searchErr)
		addCondition(out, worklog.ConditionCollaboratorUnavailable)
	} else {
		r := rankCandidates(found, out.SearchKeywords)
		out.SuggestedTickets = limitTickets(r.Tickets, uc.searchLimit)
		out.AutoSelectedFromSearch = r.AutoSelected
	}

	switch {
	case out.AutoSelectedFromFavorites != nil:
		out.AutoSelectedTicket = out.AutoSelectedFromFavorites
	case out.AutoSelectedFromSearch != nil:
		out.AutoSelectedTicket = out.AutoSelectedFromSearch
	case len(out.FavoriteTickets)+len(out.SuggestedTickets) > 0:
		addCondition(out, worklog.ConditionAmbiguousTicketMatch)
	}
}

func fromResult(res parser.Result) worklog.ParsedUtterance {
	return worklog.ParsedUtterance{
		OriginalText:     res.OriginalText,
		Range:            res.Range,
		StartTime:        res.StartTime,
		DurationMinutes:  res.DurationMinutes,
		HoursLabel:       res.HoursLabel,
		MinutesLabel:     res.MinutesLabel,
		TimeSpent:        res.TimeSpent,
		Project:          res.Project,
		SearchKeywords:   res.SearchKeywords,
		Description:      res.Description,
		Date:             res.Date,
		UserProjects:     map[string]worklog.ProjectMapping{},
		SuggestedTickets: []worklog.TicketRef{},
		FavoriteTickets:  []worklog.TicketRef{},
		Conditions:       []worklog.Condition{},
	}
}

func addCondition(out *worklog.ParsedUtterance, c worklog.Condition) {
	if !out.Has(c) {
		out.Conditions = append(out.Conditions, c)
	}
}

func searchProjectKey(m worklog.ProjectMapping) string {
	if m.SearchProject != "" {
		return m.SearchProject
	}
	return m.JiraProjectKey
}
