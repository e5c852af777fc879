package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"voice-worklog/internal/model"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

func TestParse(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "ana"}

	t.Run("Empty Utterance Error", func(t *testing.T) {
		uc := newUseCase(&fakeRepo{}, &fakeTickets{}, &fakeWorklogs{}, 0)
		_, err := uc.Parse(ctx, sc, worklog.ParseInput{Text: "   "})
		if !errors.Is(err, worklog.ErrEmptyUtterance) {
			t.Errorf("expected ErrEmptyUtterance, got %v", err)
		}
	})

	t.Run("Full Flow Prefers Favorites", func(t *testing.T) {
		repo := &fakeRepo{
			projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil },
			favoritesFunc: func(repository.GetFavoritesOptions) ([]worklog.TicketRef, error) {
				return []worklog.TicketRef{
					{Key: "TJ-7", Summary: "Relatório mensal"},
					{Key: "TJ-5", Summary: "Bug no login do portal"},
				}, nil
			},
		}
		tickets := &fakeTickets{searchFunc: func(repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
			return []worklog.TicketRef{
				{Key: "TJ-1", Summary: "Tela de login"},
				{Key: "TJ-2", Summary: "Bug de login social"},
				{Key: "TJ-3", Summary: "Deploy"},
			}, nil
		}}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)

		out, err := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h30 corrigindo bug de login no projeto TJRJ"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Conditions) != 0 {
			t.Errorf("expected no conditions, got %v", out.Conditions)
		}
		if out.DurationMinutes == nil || *out.DurationMinutes != 90 {
			t.Errorf("duration = %v", out.DurationMinutes)
		}
		if out.SearchKeywords != "bug de login" || out.ProjectKey != "TJ" {
			t.Errorf("keywords=%q projectKey=%q", out.SearchKeywords, out.ProjectKey)
		}
		if len(repo.favoritesOpts) != 1 || repo.favoritesOpts[0] != (repository.GetFavoritesOptions{UserID: "ana", ProjectKey: "TJ"}) {
			t.Errorf("favorites options = %+v", repo.favoritesOpts)
		}
		if len(tickets.calls) != 1 || tickets.calls[0].ProjectKey != "TJ" {
			t.Errorf("search options = %+v", tickets.calls)
		}

		if len(out.FavoriteTickets) != 1 || out.FavoriteTickets[0].Key != "TJ-5" || out.FavoriteTickets[0].Score != 2 {
			t.Errorf("favorites = %+v", out.FavoriteTickets)
		}
		if len(out.SuggestedTickets) != 2 || out.SuggestedTickets[0].Key != "TJ-2" || out.SuggestedTickets[1].Key != "TJ-1" {
			t.Errorf("suggested = %+v", out.SuggestedTickets)
		}
		if out.AutoSelectedFromSearch == nil || out.AutoSelectedFromSearch.Key != "TJ-2" {
			t.Errorf("search winner = %+v", out.AutoSelectedFromSearch)
		}
		if out.AutoSelectedTicket == nil || out.AutoSelectedTicket.Key != "TJ-5" {
			t.Errorf("favorites must win, got %+v", out.AutoSelectedTicket)
		}
		if c := out.CommittedTicket(); c == nil || c.Key != "TJ-5" {
			t.Errorf("committed = %+v", c)
		}
	})

	t.Run("No Project", func(t *testing.T) {
		tickets := &fakeTickets{}
		uc := newUseCase(&fakeRepo{}, tickets, &fakeWorklogs{}, 0)
		out, err := uc.Parse(ctx, sc, worklog.ParseInput{Text: "reunião de alinhamento"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []worklog.Condition{worklog.ConditionNoTimeExpression, worklog.ConditionNoProject}
		if !reflect.DeepEqual(out.Conditions, want) {
			t.Errorf("conditions = %v, want %v", out.Conditions, want)
		}
		if len(tickets.calls) != 0 {
			t.Error("search must be skipped without a project")
		}
	})

	t.Run("No Keywords", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil }}
		tickets := &fakeTickets{}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)
		out, _ := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h no projeto TJRJ"})
		if !out.Has(worklog.ConditionNoKeywords) || out.ProjectKey != "TJ" {
			t.Errorf("conditions=%v projectKey=%q", out.Conditions, out.ProjectKey)
		}
		if len(tickets.calls) != 0 {
			t.Error("search must be skipped without keywords")
		}
	})

	t.Run("Keywords Too Short To Score", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil }}
		tickets := &fakeTickets{searchFunc: func(repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
			return []worklog.TicketRef{
				{Key: "TJ-1", Summary: "Tela de login"},
				{Key: "TJ-2", Summary: "Deploy"},
				{Key: "TJ-3", Summary: "Ajuste rápido"},
			}, nil
		}}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)
		out, err := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h ui no projeto TJRJ"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SearchKeywords != "ui" {
			t.Fatalf("keywords = %q", out.SearchKeywords)
		}
		if len(out.SuggestedTickets) != 0 || len(out.FavoriteTickets) != 0 || out.AutoSelectedTicket != nil {
			t.Errorf("unscored tickets must not be suggested: suggested=%+v favorites=%+v", out.SuggestedTickets, out.FavoriteTickets)
		}
		if out.Has(worklog.ConditionAmbiguousTicketMatch) {
			t.Errorf("conditions = %v", out.Conditions)
		}
	})

	t.Run("Project Not Configured", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil }}
		uc := newUseCase(repo, &fakeTickets{}, &fakeWorklogs{}, 0)
		out, _ := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h corrigindo bug no projeto ALPHA"})
		if !out.Has(worklog.ConditionProjectNotConfigured) {
			t.Errorf("conditions = %v", out.Conditions)
		}
		if out.Project == nil || *out.Project != "ALPHA" {
			t.Errorf("project = %v", out.Project)
		}
		if len(out.UserProjects) != 1 {
			t.Errorf("user projects should be returned, got %v", out.UserProjects)
		}
	})

	t.Run("Project Directory Unavailable", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) {
			return nil, errors.New("db down")
		}}
		uc := newUseCase(repo, &fakeTickets{}, &fakeWorklogs{}, 0)
		out, err := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h bug no projeto TJRJ"})
		if err != nil {
			t.Fatalf("collaborator failure must not be an error: %v", err)
		}
		if !out.Has(worklog.ConditionCollaboratorUnavailable) || out.DurationMinutes == nil {
			t.Errorf("conditions=%v duration=%v", out.Conditions, out.DurationMinutes)
		}
	})

	t.Run("Favorites Failure Keeps Search", func(t *testing.T) {
		repo := &fakeRepo{
			projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil },
			favoritesFunc: func(repository.GetFavoritesOptions) ([]worklog.TicketRef, error) {
				return nil, errors.New("db down")
			},
		}
		tickets := &fakeTickets{searchFunc: func(repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
			return []worklog.TicketRef{{Key: "TJ-2", Summary: "Bug de login"}}, nil
		}}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)
		out, _ := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h corrigindo bug de login no projeto TJRJ"})
		if !out.Has(worklog.ConditionCollaboratorUnavailable) {
			t.Errorf("conditions = %v", out.Conditions)
		}
		if out.AutoSelectedTicket == nil || out.AutoSelectedTicket.Key != "TJ-2" {
			t.Errorf("search winner should be used, got %+v", out.AutoSelectedTicket)
		}
	})

	t.Run("Ambiguous Match", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil }}
		tickets := &fakeTickets{searchFunc: func(repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
			return []worklog.TicketRef{
				{Key: "TJ-1", Summary: "Tela de login"},
				{Key: "TJ-2", Summary: "Bug na importação"},
			}, nil
		}}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)
		out, _ := uc.Parse(ctx, sc, worklog.ParseInput{Text: "das 9h às 10h corrigindo bug de login no projeto TJRJ"})
		if out.AutoSelectedTicket != nil {
			t.Errorf("expected no selection, got %+v", out.AutoSelectedTicket)
		}
		if !out.Has(worklog.ConditionAmbiguousTicketMatch) || len(out.SuggestedTickets) != 2 {
			t.Errorf("conditions=%v suggested=%d", out.Conditions, len(out.SuggestedTickets))
		}
		if _, err := out.LogWorkInput(fixedNow, false); !errors.Is(err, worklog.ErrTicketRequired) {
			t.Errorf("expected ErrTicketRequired, got %v", err)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo := &fakeRepo{projectsFunc: func(string) (map[string]worklog.ProjectMapping, error) { return tjProject, nil }}
		tickets := &fakeTickets{searchFunc: func(repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
			return []worklog.TicketRef{{Key: "TJ-1", Summary: "Deploy da API"}}, nil
		}}
		uc := newUseCase(repo, tickets, &fakeWorklogs{}, 0)
		in := worklog.ParseInput{Text: "das nove às dez e meia deploy da API no projeto tj rj"}
		a, _ := uc.Parse(ctx, sc, in)
		b, _ := uc.Parse(ctx, sc, in)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("parse is not idempotent:\n%+v\n%+v", a, b)
		}
	})
}
