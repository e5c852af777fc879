package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"voice-worklog/internal/model"
	"voice-worklog/internal/parser"
	"voice-worklog/internal/worklog"
	"voice-worklog/internal/worklog/repository"
	pkgJira "voice-worklog/pkg/jira"
)

// noonHour is used when no start time was spoken.
const noonHour = 12

// LogWork files a worklog for the committed ticket.
func (uc *implUseCase) LogWork(ctx context.Context, sc model.Scope, input worklog.LogWorkInput) (worklog.LogWorkOutput, error) {
	key := strings.TrimSpace(input.Ticket.Key)
	if key == "" {
		return worklog.LogWorkOutput{}, worklog.ErrTicketRequired
	}
	if input.DurationMinutes == nil || *input.DurationMinutes <= 0 {
		return worklog.LogWorkOutput{}, worklog.ErrDurationRequired
	}

	comment, err := worklogComment(input)
	if err != nil {
		return worklog.LogWorkOutput{}, err
	}

	started := uc.startedAt(input.Date, input.StartTime)
	id, err := uc.worklogs.SubmitWorklog(ctx, repository.SubmitWorklogOptions{
		TicketKey:       key,
		DurationMinutes: *input.DurationMinutes,
		Started:         started,
		Comment:         comment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "LogWork: submit failed user=%s ticket=%s: %v", sc.UserID, key, err)
		return worklog.LogWorkOutput{}, fmt.Errorf("failed to log work: %w", err)
	}

	uc.l.Infof(ctx, "LogWork: user=%s ticket=%s worklog=%s minutes=%d", sc.UserID, key, id, *input.DurationMinutes)
	return worklog.LogWorkOutput{
		WorklogID: id,
		TicketKey: key,
		TimeSpent: pkgJira.FormatDuration(*input.DurationMinutes),
		Started:   started,
		Comment:   comment,
	}, nil
}

func worklogComment(input worklog.LogWorkInput) (string, error) {
	if d := strings.TrimSpace(input.Description); d != "" {
		return d, nil
	}
	if input.UseTicketSummary {
		if s := strings.TrimSpace(input.Ticket.Summary); s != "" {
			return s, nil
		}
	}
	return "", worklog.ErrDescriptionRequired
}

// startedAt places the start clock on the calendar day of date, in the
// usecase location. The day is read from date as given so a UTC-midnight
// date does not slip to the previous day. Noon is used without a clock.
func (uc *implUseCase) startedAt(date time.Time, start *parser.Clock) time.Time {
	if date.IsZero() {
		date = uc.now().In(uc.loc)
	}
	y, m, d := date.Date()
	hour, minute := noonHour, 0
	if start != nil {
		hour, minute = start.Hour, start.Minute
	}
	return time.Date(y, m, d, hour, minute, 0, 0, uc.loc)
}
