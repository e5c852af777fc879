package parser

import (
	"regexp"
	"strings"
)

// Kind tags the phrasing a time range was recognised in.
type Kind string

const (
	KindCompact  Kind = "compact"  // 9h30
	KindHybrid   Kind = "hybrid"   // 14 horas às 17:42
	KindExtended Kind = "extended" // nove horas e trinta minutos
	KindColon    Kind = "colon"    // 09:00
	KindComma    Kind = "comma"    // 8,50 or 8.50 (":" misheard)
)

// Span is the typed result of a matched time-range family.
type Span struct {
	Family string `json:"family"`
	Kind   Kind   `json:"kind"`
	Start  Clock  `json:"start"`
	End    Clock  `json:"end"`
	// Text is the matched phrase
	Text string `json:"text"`
}

// Duration returns the elapsed minutes from Start to End. Ranges that end
// at or before they start are taken to cross midnight.
func (s Span) Duration() (minutes int, wrapped bool) {
	minutes = s.End.Minutes() - s.Start.Minutes()
	if minutes <= 0 {
		return minutes + 24*60, true
	}
	return minutes, false
}

var rangeNumber = `\d{1,2}|` + numberWordAlternation()

const (
	rangeFrom = `(?i)` + wordStart + `(?:das?|de)\s+`
	// longest connectors first: "até às" must not stop at "até"
	rangeTo = `\s+(?:até\s+(?:às|as|a)\s+|até\s+|às\s+|as\s+|a\s+)`

	// compactEnd stops at a word end so "11h300" is not read as 11h30
	compactClock = `(\d{1,2})h(\d{1,2})?`
	compactEnd   = compactClock + `(?:\s*min(?:utos?)?)?` + wordEnd
	colonClock   = `(\d{1,2}):(\d{2})`
)

var (
	spokenHour        = `(` + rangeNumber + `)\s*horas?`
	spokenMinutes     = `\s+e\s+(` + rangeNumber + `|zero)\s*minutos?`
	spokenClock       = spokenHour + `(?:` + spokenMinutes + `)?`
	spokenClockFull   = spokenHour + spokenMinutes
	// spokenEnd may drop "horas" ("até às doze") but never stops before ":" or ","
	spokenEnd         = `(` + rangeNumber + `)(?:\s*horas?)?(?:` + spokenMinutes + `)?(?:$|[^\p{L}\p{N}_:,])`
	numeralHour       = `(\d{1,2})\s*horas?`
	numeralHourMinute = numeralHour + `\s+e\s+(\d{1,2})\s*minutos?`
)

// rangeFamily pairs a matcher with the capture groups holding start hour,
// start minute, end hour and end minute. Group 0 stands for an implied zero.
type rangeFamily struct {
	name   string
	kind   Kind
	re     *regexp.Regexp
	groups [4]int
}

func family(name string, kind Kind, start, end string, groups [4]int) rangeFamily {
	return rangeFamily{
		name:   name,
		kind:   kind,
		re:     regexp.MustCompile(rangeFrom + start + rangeTo + end),
		groups: groups,
	}
}

// rangeFamilies is evaluated top to bottom and the first match wins.
// Compact forms lead because the looser spoken forms would otherwise latch
// onto part of "9h30"; the order is a behaviour, keep FamilyOrder in sync.
var rangeFamilies = []rangeFamily{
	family("compact-minute-words", KindCompact, `(\d{1,2})h(\d{1,2})\s*minutos?`, compactEnd, [4]int{1, 2, 3, 4}),
	family("compact", KindCompact, compactClock, compactEnd, [4]int{1, 2, 3, 4}),
	family("compact-colon", KindCompact, compactClock, colonClock, [4]int{1, 2, 3, 4}),
	family("compact-spoken", KindCompact, compactClock, spokenClock, [4]int{1, 2, 3, 4}),
	family("hybrid-hours-minutes", KindHybrid, numeralHour, numeralHourMinute, [4]int{1, 0, 2, 3}),
	family("hybrid-words-colon", KindHybrid, spokenClockFull, colonClock, [4]int{1, 2, 3, 4}),
	family("hybrid-hours-colon", KindHybrid, spokenHour, colonClock, [4]int{1, 0, 2, 3}),
	family("hybrid-colon-hours", KindHybrid, colonClock, spokenClock, [4]int{1, 2, 3, 4}),
	family("hybrid-hours-and", KindHybrid, numeralHour, `(\d{1,2})\s+e\s+(\d{1,2})(?:\s*minutos?)?`+wordEnd, [4]int{1, 0, 2, 3}),
	family("extended", KindExtended, spokenClock, spokenEnd, [4]int{1, 2, 3, 4}),
	family("colon", KindColon, colonClock, colonClock, [4]int{1, 2, 3, 4}),
	family("comma", KindComma, `(\d{1,2})[,.](\d{1,2})`, `(\d{1,2})(?:[,.:](\d{1,2}))?`+wordEnd, [4]int{1, 2, 3, 4}),
}

// FamilyOrder returns the family names in evaluation order.
func FamilyOrder() []string {
	names := make([]string, len(rangeFamilies))
	for i, f := range rangeFamilies {
		names[i] = f.name
	}
	return names
}

// extractRange returns the span of the first family matching text, along
// with the byte offsets of the matched phrase.
func extractRange(text string) (Span, [2]int, bool) {
	for _, f := range rangeFamilies {
		loc := f.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		group := func(i int) string {
			if i == 0 || loc[2*i] < 0 {
				return ""
			}
			return text[loc[2*i]:loc[2*i+1]]
		}
		s := Span{
			Family: f.name,
			Kind:   f.kind,
			Start:  Clock{Hour: numberOrZero(group(f.groups[0])), Minute: numberOrZero(group(f.groups[1]))},
			End:    Clock{Hour: numberOrZero(group(f.groups[2])), Minute: numberOrZero(group(f.groups[3]))},
		}
		// skip the boundary rune wordStart may have consumed
		start := loc[0] + strings.IndexAny(text[loc[0]:loc[1]], "dD")
		s.Text = collapseSpaces(text[start:loc[1]])
		return s, [2]int{loc[0], loc[1]}, true
	}
	return Span{}, [2]int{}, false
}
