package usecase

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"voice-worklog/internal/worklog"
)

const (
	fuzzyProjectThreshold = 0.9
	phoneticProjectFloor  = 0.8
)

// resolveProject finds the mapping for a spoken project code. Lookup is
// exact, then by normalized key or Jira key, then fuzzy over keys so speech
// recognition slips ("DELIVERI") still resolve.
func resolveProject(projects map[string]worklog.ProjectMapping, code string) (worklog.ProjectMapping, bool) {
	if m, ok := projects[code]; ok {
		return m, true
	}

	keys := make([]string, 0, len(projects))
	for k := range projects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	want := normalizeCode(code)
	if want == "" {
		return worklog.ProjectMapping{}, false
	}
	for _, k := range keys {
		if normalizeCode(k) == want || normalizeCode(projects[k].JiraProjectKey) == want {
			return projects[k], true
		}
	}

	wantPrimary, _ := matchr.DoubleMetaphone(want)
	best, bestScore := "", 0.0
	for _, k := range keys {
		nk := normalizeCode(k)
		score := matchr.JaroWinkler(want, nk, false)
		accepted := score >= fuzzyProjectThreshold
		if !accepted && score >= phoneticProjectFloor {
			primary, _ := matchr.DoubleMetaphone(nk)
			accepted = primary != "" && primary == wantPrimary
		}
		if accepted && score > bestScore {
			best, bestScore = k, score
		}
	}
	if best == "" {
		return worklog.ProjectMapping{}, false
	}
	return projects[best], true
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
