package jira

import (
	"fmt"
	"strings"
)

// FormatDuration renders minutes in Jira's time-spent notation, e.g. "1h 30m".
// Zero or negative input yields "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	return strings.Join(parts, " ")
}
