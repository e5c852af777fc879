package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves Brazilian Portuguese date phrases ("ontem", "segunda
// passada", "dia 10/05") to calendar days in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Sao_Paulo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

const boundary = `(?:^|[^\p{L}\p{N}_])`
const boundaryEnd = `(?:$|[^\p{L}\p{N}_])`

type relativeDay struct {
	re     *regexp.Regexp
	offset int
}

// Checked in order; "ontem" never matches inside "anteontem" thanks to the
// letter boundary.
var relativeDays = []relativeDay{
	{re: regexp.MustCompile(`(?i)` + boundary + `(hoje)` + boundaryEnd), offset: 0},
	{re: regexp.MustCompile(`(?i)` + boundary + `(ontem)` + boundaryEnd), offset: -1},
	{re: regexp.MustCompile(`(?i)` + boundary + `(anteontem)` + boundaryEnd), offset: -2},
	{re: regexp.MustCompile(`(?i)` + boundary + `(amanhã|amanha)` + boundaryEnd), offset: 1},
}

type pastWeekday struct {
	re      *regexp.Regexp
	weekday time.Weekday
}

var pastWeekdays = []pastWeekday{
	{re: regexp.MustCompile(`(?i)((?:segunda[- ]feira|segunda)\s+passada?)`), weekday: time.Monday},
	{re: regexp.MustCompile(`(?i)((?:terça[- ]feira|terça|terca[- ]feira|terca)\s+passada?)`), weekday: time.Tuesday},
	{re: regexp.MustCompile(`(?i)((?:quarta[- ]feira|quarta)\s+passada?)`), weekday: time.Wednesday},
	{re: regexp.MustCompile(`(?i)((?:quinta[- ]feira|quinta)\s+passada?)`), weekday: time.Thursday},
	{re: regexp.MustCompile(`(?i)((?:sexta[- ]feira|sexta)\s+passada?)`), weekday: time.Friday},
	{re: regexp.MustCompile(`(?i)((?:sábado|sabado)\s+passado?)`), weekday: time.Saturday},
	{re: regexp.MustCompile(`(?i)(domingo\s+passado?)`), weekday: time.Sunday},
}

var (
	reFullDate = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	reDayMonth = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)
)

// Extract scans text for the first supported date phrase. When none is
// found the result falls back to the start of baseTime's day with Found
// false. Numeric dates with an impossible day or month are an error.
func (p *Parser) Extract(text string, baseTime time.Time) (ParseResult, error) {
	for _, rd := range relativeDays {
		if m := rd.re.FindStringSubmatch(text); m != nil {
			return p.found(baseTime.AddDate(0, 0, rd.offset), m[1]), nil
		}
	}

	for _, wd := range pastWeekdays {
		if m := wd.re.FindStringSubmatch(text); m != nil {
			return p.found(p.previousWeekday(wd.weekday, baseTime), m[1]), nil
		}
	}

	if m := reFullDate.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[3])
		return p.numericDate(m[0], m[1], m[2], year)
	}

	if loc := reDayMonth.FindStringSubmatchIndex(text); loc != nil {
		// skip DD/MM that is the head of a DD/MM/YY fragment
		if rest := text[loc[1]:]; !strings.HasPrefix(rest, "/") && !strings.HasPrefix(rest, "-") {
			m := reDayMonth.FindStringSubmatch(text[loc[0]:loc[1]])
			return p.numericDate(m[0], m[1], m[2], baseTime.In(p.location).Year())
		}
	}

	return ParseResult{AbsoluteTime: p.startOfDay(baseTime)}, nil
}

// previousWeekday returns the most recent target weekday strictly before
// baseTime's day.
func (p *Parser) previousWeekday(target time.Weekday, baseTime time.Time) time.Time {
	today := baseTime.In(p.location).Weekday()
	daysBack := int(today - target)
	if daysBack <= 0 {
		daysBack += 7
	}
	return baseTime.AddDate(0, 0, -daysBack)
}

func (p *Parser) numericDate(phrase, dayStr, monthStr string, year int) (ParseResult, error) {
	day, _ := strconv.Atoi(dayStr)
	month, _ := strconv.Atoi(monthStr)
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return ParseResult{}, fmt.Errorf("invalid date %q", phrase)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	return ParseResult{AbsoluteTime: t, Phrase: phrase, Found: true}, nil
}

func (p *Parser) found(t time.Time, phrase string) ParseResult {
	return ParseResult{AbsoluteTime: p.startOfDay(t), Phrase: phrase, Found: true}
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
