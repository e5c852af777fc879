package parser

import (
	"fmt"
	"time"

	"voice-worklog/pkg/datemath"
)

// TimeRange is a resolved range with its elapsed minutes.
type TimeRange struct {
	Span
	DurationMinutes int  `json:"duration_minutes"`
	Wrapped         bool `json:"wrapped"`
}

// Result is the structured reading of one utterance. Absent fields are nil
// or empty; nothing in a Result is an error.
type Result struct {
	OriginalText    string
	Range           *TimeRange
	StartTime       *Clock
	DurationMinutes *int
	HoursLabel      *string
	MinutesLabel    *string
	// TimeSpent is DurationMinutes as HH:MM, empty without a range
	TimeSpent      string
	Project        *string
	SearchKeywords string
	Description    string
	// Date is only set in legacy date mode
	Date *time.Time
}

// Parser extracts worklog fields from Brazilian Portuguese utterances.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	dict  *Dictionary
	dates *datemath.Parser
	now   func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithLegacyDates enables date phrases ("ontem", "segunda passada",
// "dia 10/05") resolved against now. Off by default: the date normally
// comes from the caller.
func WithLegacyDates(dates *datemath.Parser, now func() time.Time) Option {
	return func(p *Parser) {
		p.dates = dates
		p.now = now
		if p.now == nil {
			p.now = time.Now
		}
	}
}

// New returns a Parser over dict, or over the default dictionary when dict
// is nil.
func New(dict *Dictionary, opts ...Option) *Parser {
	if dict == nil {
		dict = DefaultDictionary()
	}
	p := &Parser{dict: dict}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the extraction stages over text.
func (p *Parser) Parse(text string) Result {
	res := Result{OriginalText: text}

	// phrase is text minus the clock expression, so description anchors
	// never swallow "das 9h às 11h"
	phrase := text
	if span, loc, ok := extractRange(text); ok {
		p.applyRange(&res, span)
		phrase = text[:loc[0]] + " " + text[loc[1]:]
	} else if c, ok := extractStartTime(text); ok {
		res.StartTime = &c
	}

	if code, ok := p.dict.extractProject(text); ok {
		res.Project = &code
	}

	res.SearchKeywords, res.Description = p.dict.extractDescription(phrase)

	if p.dates != nil {
		if d, err := p.dates.Extract(text, p.now()); err == nil {
			res.Date = &d.AbsoluteTime
		}
	}

	return res
}

func (p *Parser) applyRange(res *Result, span Span) {
	minutes, wrapped := span.Duration()
	res.Range = &TimeRange{Span: span, DurationMinutes: minutes, Wrapped: wrapped}

	start := span.Start
	res.StartTime = &start
	res.DurationMinutes = &minutes
	res.TimeSpent = fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	res.HoursLabel, res.MinutesLabel = DurationLabels(minutes)
}

// DurationLabels splits minutes into "Nh" and "Nmin" labels, leaving a
// zero component nil.
func DurationLabels(minutes int) (hours, mins *string) {
	if h := minutes / 60; h > 0 {
		s := fmt.Sprintf("%dh", h)
		hours = &s
	}
	if m := minutes % 60; m > 0 {
		s := fmt.Sprintf("%dmin", m)
		mins = &s
	}
	return hours, mins
}
