package datemath

import "time"

// ParseResult holds the outcome of scanning a sentence for a date phrase.
type ParseResult struct {
	AbsoluteTime time.Time
	Phrase       string
	Found        bool
}
