package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"voice-worklog/internal/parser"
	"voice-worklog/pkg/datemath"
)

// parseOutput is the JSON shape printed for each utterance.
type parseOutput struct {
	OriginalText    string            `json:"original_text"`
	Range           *parser.TimeRange `json:"range,omitempty"`
	StartTime       *parser.Clock     `json:"start_time,omitempty"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
	HoursLabel      *string           `json:"hours_label,omitempty"`
	MinutesLabel    *string           `json:"minutes_label,omitempty"`
	TimeSpent       string            `json:"time_spent,omitempty"`
	Project         *string           `json:"project,omitempty"`
	SearchKeywords  string            `json:"search_keywords"`
	Description     string            `json:"description"`
	Date            string            `json:"date,omitempty"`
}

func newParseOutput(r parser.Result) parseOutput {
	out := parseOutput{
		OriginalText:    r.OriginalText,
		Range:           r.Range,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		HoursLabel:      r.HoursLabel,
		MinutesLabel:    r.MinutesLabel,
		TimeSpent:       r.TimeSpent,
		Project:         r.Project,
		SearchKeywords:  r.SearchKeywords,
		Description:     r.Description,
	}
	if r.Date != nil {
		out.Date = r.Date.Format(time.DateOnly)
	}
	return out
}

// newCLIApp creates the offline parser CLI. Utterances come from the
// positional args, or one per line from stdin when no args are given.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:      "voice-worklog-parse",
		Usage:     "Parse spoken worklog utterances without touching Jira",
		Version:   Version,
		ArgsUsage: "[utterance]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dictionary", Aliases: []string{"d"}, Usage: "YAML dictionary replacing the built-in one"},
			&cli.BoolFlag{Name: "legacy-dates", Usage: "Resolve date phrases such as \"ontem\""},
			&cli.StringFlag{Name: "timezone", Aliases: []string{"tz"}, Value: "America/Sao_Paulo", Usage: "Timezone for legacy dates"},
		},
		Action: runParse,
	}
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func runParse(c *cli.Context) error {
	p, err := buildParser(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := c.App.Writer
	if c.NArg() > 0 {
		return outputJSON(w, newParseOutput(p.Parse(strings.Join(c.Args().Slice(), " "))))
	}

	r := c.App.Reader
	if r == nil {
		r = os.Stdin
	}
	return parseLines(w, r, p)
}

func buildParser(c *cli.Context) (*parser.Parser, error) {
	var dict *parser.Dictionary
	if path := c.String("dictionary"); path != "" {
		d, err := parser.LoadDictionary(path)
		if err != nil {
			return nil, err
		}
		dict = d
	}

	var opts []parser.Option
	if c.Bool("legacy-dates") {
		dates, err := datemath.NewParser(c.String("timezone"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, parser.WithLegacyDates(dates, nil))
	}
	return parser.New(dict, opts...), nil
}

// parseLines parses every non-blank line of r.
func parseLines(w io.Writer, r io.Reader, p *parser.Parser) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := outputJSON(w, newParseOutput(p.Parse(line))); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return cli.Exit(fmt.Sprintf("read stdin: %v", err), 1)
	}
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
