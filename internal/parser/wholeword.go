package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Regexp fragments that treat any Unicode letter or digit as part of a
// word. RE2's \b only knows ASCII, so "\bapi\b" would see a boundary
// inside "rápido".
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundedAt reports whether s[start:end] is delimited by non-word runes.
func boundedAt(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// ContainsWord reports whether word occurs in text as a whole word,
// ignoring case.
func ContainsWord(text, word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	text = strings.ToLower(text)
	for offset := 0; offset <= len(text); {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		if boundedAt(text, start, start+len(word)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// findWholeWords returns, in text order, every match of re in s that is
// delimited by non-word runes. A rejected candidate resumes the scan one
// rune later so overlapping valid matches are not lost.
func findWholeWords(re *regexp.Regexp, s string) []string {
	var out []string
	for offset := 0; offset < len(s); {
		loc := re.FindStringIndex(s[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[0], offset+loc[1]
		if end > start && boundedAt(s, start, end) {
			out = append(out, s[start:end])
			offset = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		if size == 0 {
			size = 1
		}
		offset = start + size
	}
	return out
}

// collapseSpaces trims s and folds whitespace runs into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
