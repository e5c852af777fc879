package usecase

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-worklog/internal/parser"
	"voice-worklog/internal/worklog"
)

type ranking struct {
	Tickets      []worklog.TicketRef
	AutoSelected *worklog.TicketRef
}

// keywordTokens lowercases keywords and keeps distinct tokens longer than
// two runes, trimmed of punctuation.
func keywordTokens(keywords string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range strings.Fields(strings.ToLower(keywords)) {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if utf8.RuneCountInString(tok) <= 2 || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// rankCandidates scores each candidate by the tokens found as whole words in
// its summary or description, drops zero scores and sorts by score desc,
// keeping source order on ties. Without usable tokens every candidate
// scores zero, so the ranking is empty.
func rankCandidates(candidates []worklog.TicketRef, keywords string) ranking {
	tokens := keywordTokens(keywords)
	if len(tokens) == 0 {
		return ranking{Tickets: []worklog.TicketRef{}}
	}

	scored := make([]worklog.TicketRef, 0, len(candidates))
	for _, c := range candidates {
		hay := c.Summary + " " + c.Description
		var matched []string
		for _, tok := range tokens {
			if parser.ContainsWord(hay, tok) {
				matched = append(matched, tok)
			}
		}
		if len(matched) == 0 {
			continue
		}
		c.Score = len(matched)
		c.MatchedWords = matched
		scored = append(scored, c)
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	return ranking{Tickets: scored, AutoSelected: autoSelect(scored, len(tokens))}
}

// autoSelect picks the only ranked ticket, or the single strong match when
// several remain.
func autoSelect(ranked []worklog.TicketRef, total int) *worklog.TicketRef {
	if len(ranked) == 1 {
		t := ranked[0]
		return &t
	}
	var winner *worklog.TicketRef
	strong := 0
	for i := range ranked {
		if strongMatch(ranked[i].Score, total) {
			strong++
			winner = &ranked[i]
		}
	}
	if strong != 1 {
		return nil
	}
	t := *winner
	return &t
}

// strongMatch: at least 80% of the tokens, or two of them.
func strongMatch(score, total int) bool {
	return score >= 2 || score*5 >= total*4
}

func limitTickets(tickets []worklog.TicketRef, n int) []worklog.TicketRef {
	if n > 0 && len(tickets) > n {
		return tickets[:n]
	}
	return tickets
}
