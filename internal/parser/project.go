package parser

import (
	"regexp"
	"strings"
)

// reProjectToken is the fallback for projects missing from the alias table.
var reProjectToken = regexp.MustCompile(`(?i)` + wordStart + `(?:(?:do|no|na|da)\s+)?projeto\s+([a-z]{2,15})` + wordEnd)

// extractProject returns the canonical code of the first project reference
// in text.
func (d *Dictionary) extractProject(text string) (string, bool) {
	for _, a := range d.projects {
		if a.re.MatchString(text) {
			return a.code, true
		}
	}

	m := reProjectToken.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return d.normalizeProject(m[1]), true
}

// normalizeProject maps a bare token onto a known alias code, or uppercases
// it verbatim.
func (d *Dictionary) normalizeProject(token string) string {
	for _, a := range d.projects {
		if a.token.MatchString(token) {
			return a.code
		}
	}
	return strings.ToUpper(token)
}
