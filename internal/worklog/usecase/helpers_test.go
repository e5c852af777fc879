package usecase_test

import (
	"context"
	"sync"
	"time"

	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
	"voice-worklog/internal/worklog/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeRepo struct {
	projectsFunc  func(userID string) (map[string]worklog.ProjectMapping, error)
	favoritesFunc func(opt repository.GetFavoritesOptions) ([]worklog.TicketRef, error)

	mu            sync.Mutex
	favoritesOpts []repository.GetFavoritesOptions
}

func (f *fakeRepo) GetUserProjects(ctx context.Context, userID string) (map[string]worklog.ProjectMapping, error) {
	if f.projectsFunc != nil {
		return f.projectsFunc(userID)
	}
	return map[string]worklog.ProjectMapping{}, nil
}

func (f *fakeRepo) GetFavoritesByProject(ctx context.Context, opt repository.GetFavoritesOptions) ([]worklog.TicketRef, error) {
	f.mu.Lock()
	f.favoritesOpts = append(f.favoritesOpts, opt)
	f.mu.Unlock()
	if f.favoritesFunc != nil {
		return f.favoritesFunc(opt)
	}
	return nil, nil
}

type fakeTickets struct {
	searchFunc func(opt repository.SearchTicketsOptions) ([]worklog.TicketRef, error)

	mu    sync.Mutex
	calls []repository.SearchTicketsOptions
}

func (f *fakeTickets) SearchByProjectAndKeywords(ctx context.Context, opt repository.SearchTicketsOptions) ([]worklog.TicketRef, error) {
	f.mu.Lock()
	f.calls = append(f.calls, opt)
	f.mu.Unlock()
	if f.searchFunc != nil {
		return f.searchFunc(opt)
	}
	return nil, nil
}

type fakeWorklogs struct {
	submitFunc func(opt repository.SubmitWorklogOptions) (string, error)
	deleteFunc func(opt repository.DeleteWorklogOptions) error
	submitted  []repository.SubmitWorklogOptions
	deleted    []repository.DeleteWorklogOptions
}

func (f *fakeWorklogs) SubmitWorklog(ctx context.Context, opt repository.SubmitWorklogOptions) (string, error) {
	f.submitted = append(f.submitted, opt)
	if f.submitFunc != nil {
		return f.submitFunc(opt)
	}
	return "10001", nil
}

func (f *fakeWorklogs) DeleteWorklog(ctx context.Context, opt repository.DeleteWorklogOptions) error {
	f.deleted = append(f.deleted, opt)
	if f.deleteFunc != nil {
		return f.deleteFunc(opt)
	}
	return nil
}

var (
	brt       = time.FixedZone("BRT", -3*3600)
	fixedNow  = time.Date(2024, 5, 15, 18, 0, 0, 0, brt)
	tjProject = map[string]worklog.ProjectMapping{
		"TJRJ": {DisplayName: "Tribunal RJ", JiraProjectKey: "TJ"},
	}
)

func newUseCase(repo *fakeRepo, tickets *fakeTickets, worklogs *fakeWorklogs, limit int) worklog.UseCase {
	return usecase.New(&mockLogger{}, nil, repo, tickets, worklogs, usecase.Config{
		Location:    brt,
		SearchLimit: limit,
		Now:         func() time.Time { return fixedNow },
	})
}

func intPtr(v int) *int { return &v }
