package jira

import (
	"context"
	"fmt"

	"voice-worklog/internal/worklog/repository"
	pkgJira "voice-worklog/pkg/jira"
)

// SubmitWorklog files the worklog and returns its Jira id.
func (r *implRepository) SubmitWorklog(ctx context.Context, opt repository.SubmitWorklogOptions) (string, error) {
	resp, err := r.client.AddWorklog(ctx, opt.TicketKey, pkgJira.WorklogRequest{
		TimeSpent: pkgJira.FormatDuration(opt.DurationMinutes),
		Started:   opt.Started.Format(pkgJira.StartedLayout),
		Comment:   pkgJira.TextToADF(opt.Comment),
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: ticket=%s: %v", r.dsn("SubmitWorklog"), opt.TicketKey, err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToSubmit, err)
	}
	return resp.ID, nil
}

func (r *implRepository) DeleteWorklog(ctx context.Context, opt repository.DeleteWorklogOptions) error {
	if err := r.client.DeleteWorklog(ctx, opt.TicketKey, opt.WorklogID); err != nil {
		r.l.Errorf(ctx, "%s: ticket=%s worklog=%s: %v", r.dsn("DeleteWorklog"), opt.TicketKey, opt.WorklogID, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
