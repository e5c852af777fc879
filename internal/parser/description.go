package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// phraseStops end an anchored phrase: a sentence mark, a project marker,
// a start-time marker or the end of text.
const phraseStops = `\s*[.!?]|\s+(?:no|do|na)\s+projeto(?:\s|$)|\s+a\s+partir(?:\s|$)|$`

// phraseCapture lazily captures the anchored phrase up to the first stop.
const phraseCapture = `([^.!?]+?)(?:` + phraseStops + `)`

const descriptionMarker = `com\s+a\s+descri[çc][ãa]o`

var (
	reSearchAnchor      = regexp.MustCompile(`(?i)` + wordStart + `em\s+([^.!?]+?)(?:\s+` + descriptionMarker + `|` + phraseStops + `)`)
	reDescriptionAnchor = regexp.MustCompile(`(?i)` + wordStart + descriptionMarker + `\s+` + phraseCapture)
	rePrepositionAnchor = regexp.MustCompile(`(?i)` + wordStart + `(com|sobre|para)\s+` + phraseCapture)
	reLocativeAnchor    = regexp.MustCompile(`(?i)` + wordStart + `n[oa]\s+` + phraseCapture)
	reReservedMarker    = regexp.MustCompile(`(?i)^a\s+descri[çc][ãa]o(?:\s|$)`)
)

// extractDescription derives the search keywords and the worklog
// description from text. Each stage runs only while both are still empty,
// except the explicit description marker which always overrides.
func (d *Dictionary) extractDescription(text string) (keywords, description string) {
	if m := reSearchAnchor.FindStringSubmatch(text); m != nil {
		keywords = collapseSpaces(m[1])
	}

	if m := reDescriptionAnchor.FindStringSubmatch(text); m != nil {
		description = collapseSpaces(m[1])
	} else {
		description = keywords
	}

	if keywords != "" || description != "" {
		return keywords, description
	}

	if phrase := d.anchoredPhrase(text); phrase != "" {
		return phrase, phrase
	}

	if found := d.technicalKeywords(text); found != "" {
		return found, found
	}

	return "", ""
}

// anchoredPhrase returns the first usable phrase after an activity verb,
// then after com/sobre/para, then after a bare no/na.
func (d *Dictionary) anchoredPhrase(text string) string {
	for _, m := range d.verbRe.FindAllStringSubmatch(text, -1) {
		if p := collapseSpaces(m[1]); usablePhrase(p) {
			return p
		}
	}

	for _, m := range rePrepositionAnchor.FindAllStringSubmatch(text, -1) {
		if strings.EqualFold(m[1], "com") && reReservedMarker.MatchString(m[2]) {
			continue
		}
		if p := collapseSpaces(m[2]); usablePhrase(p) {
			return p
		}
	}

	for _, m := range reLocativeAnchor.FindAllStringSubmatch(text, -1) {
		p := collapseSpaces(m[1])
		if strings.HasPrefix(strings.ToLower(p), "projeto") {
			continue
		}
		if usablePhrase(p) {
			return p
		}
	}

	return ""
}

// usablePhrase rejects fragments too short to search with and leftovers of
// a clock expression.
func usablePhrase(p string) bool {
	if utf8.RuneCountInString(p) <= 2 {
		return false
	}
	lower := strings.ToLower(p)
	return !strings.Contains(lower, "das ") &&
		!strings.Contains(lower, "às ") &&
		!strings.Contains(lower, "horas")
}

// technicalKeywords joins the distinct dictionary keywords found in text,
// lowercased, in order of appearance.
func (d *Dictionary) technicalKeywords(text string) string {
	seen := make(map[string]bool)
	var found []string
	for _, kw := range findWholeWords(d.keywordRe, strings.ToLower(text)) {
		kw = collapseSpaces(kw)
		if seen[kw] {
			continue
		}
		seen[kw] = true
		found = append(found, kw)
	}
	return strings.Join(found, ", ")
}
