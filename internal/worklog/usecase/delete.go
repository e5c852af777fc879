package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-worklog/internal/model"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
)

// DeleteWorklog removes a previously filed worklog.
func (uc *implUseCase) DeleteWorklog(ctx context.Context, sc model.Scope, input worklog.DeleteWorklogInput) error {
	key, id := strings.TrimSpace(input.TicketKey), strings.TrimSpace(input.WorklogID)
	if key == "" || id == "" {
		return worklog.ErrWorklogRefRequired
	}
	if err := uc.worklogs.DeleteWorklog(ctx, repository.DeleteWorklogOptions{TicketKey: key, WorklogID: id}); err != nil {
		uc.l.Errorf(ctx, "DeleteWorklog: user=%s ticket=%s worklog=%s: %v", sc.UserID, key, id, err)
		return fmt.Errorf("failed to delete worklog: %w", err)
	}
	uc.l.Infof(ctx, "DeleteWorklog: user=%s ticket=%s worklog=%s", sc.UserID, key, id)
	return nil
}
