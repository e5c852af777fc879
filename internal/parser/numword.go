package parser

import (
	"sort"
	"strconv"
	"strings"
)

// numberWords is the closed cardinal vocabulary heard in spoken clock times.
var numberWords = map[string]int{
	"um": 1, "uma": 1,
	"dois": 2, "duas": 2,
	"três": 3, "tres": 3,
	"quatro":    4,
	"cinco":     5,
	"seis":      6,
	"sete":      7,
	"oito":      8,
	"nove":      9,
	"dez":       10,
	"onze":      11,
	"doze":      12,
	"treze":     13,
	"quatorze":  14,
	"catorze":   14,
	"quinze":    15,
	"dezesseis": 16,
	"dezessete": 17,
	"dezoito":   18,
	"dezenove":  19,
	"vinte":     20,
	"trinta":    30,
	"quarenta":  40,
	"cinquenta": 50,
}

// ResolveNumber maps a Portuguese number word or a numeral string to its
// value. Matching is case-insensitive.
func ResolveNumber(token string) (int, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return 0, false
}

// numberOrZero resolves token and treats anything unknown ("zero", empty
// optional groups) as 0.
func numberOrZero(token string) int {
	n, _ := ResolveNumber(token)
	return n
}

// numberWordAlternation returns the vocabulary as a regexp alternation,
// longest words first so "dezesseis" is never cut to "dez".
func numberWordAlternation() string {
	words := make([]string, 0, len(numberWords))
	for w := range numberWords {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return strings.Join(words, "|")
}
