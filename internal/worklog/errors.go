package worklog

import "errors"

var (
	ErrEmptyUtterance      = errors.New("utterance text is empty")
	ErrProjectRequired     = errors.New("project is required")
	ErrProjectNotFound     = errors.New("project not configured for user")
	ErrTicketRequired      = errors.New("ticket not selected")
	ErrDurationRequired    = errors.New("duration not specified")
	ErrDescriptionRequired = errors.New("description required for worklog")
	ErrWorklogRefRequired  = errors.New("ticket key and worklog id are required")
)
