package parser

import "regexp"

type startPattern struct {
	re *regexp.Regexp
	// capture group indexes; minute 0 means the pattern carries no minutes
	hour, minute int
}

const startMarker = `(?i)a\s+partir\s+(?:das?|de)\s+`

// startPatterns are tried in order; minute-bearing forms come first so the
// hour-only form never sees "8h55".
var startPatterns = []startPattern{
	{re: regexp.MustCompile(startMarker + `(\d{1,2})h(\d{1,2})`), hour: 1, minute: 2},
	{re: regexp.MustCompile(startMarker + `(\d{1,2}):(\d{2})`), hour: 1, minute: 2},
	{re: regexp.MustCompile(startMarker + `(` + rangeNumber + `)\s*(?:horas?|h)` + wordEnd), hour: 1},
}

// extractStartTime finds a lone "a partir das ..." start time.
func extractStartTime(text string) (Clock, bool) {
	for _, p := range startPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		c := Clock{Hour: numberOrZero(m[p.hour])}
		if p.minute > 0 {
			c.Minute = numberOrZero(m[p.minute])
		}
		return c, true
	}
	return Clock{}, false
}
