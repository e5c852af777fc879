package http

import (
	"voice-worklog/internal/worklog"
	"voice-worklog/pkg/log"
)

type handler struct {
	l  log.Logger
	uc worklog.UseCase
}

// New creates a new HTTP handler for the worklog domain.
func New(l log.Logger, uc worklog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
