package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"voice-worklog/internal/worklog/repository"
	pkgLog "voice-worklog/pkg/log"
)

// Schema creates the per-user project mapping and favorites tables.
const Schema = `
CREATE TABLE IF NOT EXISTS user_projects (
    id               SERIAL PRIMARY KEY,
    username         TEXT NOT NULL,
    project_name     TEXT NOT NULL,
    display_name     TEXT NOT NULL DEFAULT '',
    jira_project_key TEXT NOT NULL,
    search_project   TEXT NOT NULL DEFAULT '',
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (username, project_name)
);
CREATE TABLE IF NOT EXISTS user_favorites (
    id          SERIAL PRIMARY KEY,
    username    TEXT NOT NULL,
    ticket_key  TEXT NOT NULL,
    summary     TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT '',
    assignee    TEXT NOT NULL DEFAULT '',
    project_key TEXT NOT NULL,
    date_added  TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (username, ticket_key)
);
CREATE INDEX IF NOT EXISTS idx_user_favorites_project ON user_favorites(username, project_key);
`

// DB is satisfied by *pgxpool.Pool and *pgx.Conn.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type implRepository struct {
	db DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a Postgres-backed user data repository.
func New(db DB, l pkgLog.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}

// Migrate applies Schema.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return fmt.Errorf("postgre: migrate: %w", err)
	}
	return nil
}

func (r *implRepository) dsn(method string) string {
	return "worklog.repository.postgre." + method
}
