package jira

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
	pkgJira "voice-worklog/pkg/jira"
	pkgLog "voice-worklog/pkg/log"
)

const (
	DefaultMaxResults   = 50
	DefaultClosedStatus = "Concluído"
	DefaultUnassigned   = "Não atribuído"
)

// Config tunes the Jira-backed ticket search.
type Config struct {
	MaxResults   int
	ClosedStatus string
	// CacheTTL of zero disables the search cache.
	CacheTTL  time.Duration
	CacheSize int
}

type implRepository struct {
	client pkgJira.IJira
	cfg    Config
	cache  *expirable.LRU[string, []worklog.TicketRef]
	l      pkgLog.Logger
}

var (
	_ repository.TicketSearch     = (*implRepository)(nil)
	_ repository.WorklogSubmitter = (*implRepository)(nil)
)

// New creates the Jira repository for ticket search and worklog submission.
func New(client pkgJira.IJira, cfg Config, l pkgLog.Logger) *implRepository {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	if cfg.ClosedStatus == "" {
		cfg.ClosedStatus = DefaultClosedStatus
	}
	r := &implRepository{client: client, cfg: cfg, l: l}
	if cfg.CacheTTL > 0 {
		size := cfg.CacheSize
		if size <= 0 {
			size = 256
		}
		r.cache = expirable.NewLRU[string, []worklog.TicketRef](size, nil, cfg.CacheTTL)
	}
	return r
}

func (r *implRepository) dsn(method string) string {
	return "worklog.repository.jira." + method
}
