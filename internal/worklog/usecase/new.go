package usecase

import (
	"time"

	"voice-worklog/internal/parser"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
	pkgLog "voice-worklog/pkg/log"
)

const defaultSearchLimit = 10

// Config holds usecase tunables. A nil Location means America/Sao_Paulo,
// falling back to UTC when tzdata is missing.
type Config struct {
	Location    *time.Location
	SearchLimit int
	Now         func() time.Time
}

type implUseCase struct {
	l           pkgLog.Logger
	parser      *parser.Parser
	repo        repository.Repository
	tickets     repository.TicketSearch
	worklogs    repository.WorklogSubmitter
	loc         *time.Location
	searchLimit int
	now         func() time.Time
}

var _ worklog.UseCase = (*implUseCase)(nil)

// New creates a new worklog UseCase instance.
func New(
	l pkgLog.Logger,
	p *parser.Parser,
	repo repository.Repository,
	tickets repository.TicketSearch,
	worklogs repository.WorklogSubmitter,
	cfg Config,
) *implUseCase {
	if p == nil {
		p = parser.New(nil)
	}
	loc := cfg.Location
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation("America/Sao_Paulo"); err != nil {
			loc = time.UTC
		}
	}
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:           l,
		parser:      p,
		repo:        repo,
		tickets:     tickets,
		worklogs:    worklogs,
		loc:         loc,
		searchLimit: limit,
		now:         now,
	}
}
