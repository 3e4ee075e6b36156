package parse

import (
	"strings"

	"github.com/agext/levenshtein"
)

// FuzzyMatch scores how alike two strings are, 0.0 (nothing in common) to
// 1.0 (identical). Comparison is case-insensitive and ignores surrounding
// whitespace; it is locale-independent and does not go through dispatch.
func FuzzyMatch(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	return levenshtein.Similarity(a, b, nil)
}

// MatchOne picks the choice most similar to query and returns it with its
// score. An empty choice list returns ("", 0).
func MatchOne(query string, choices []string) (string, float64) {
	if len(choices) == 0 {
		return "", 0
	}
	best, bestScore := choices[0], FuzzyMatch(query, choices[0])
	for _, choice := range choices[1:] {
		if score := FuzzyMatch(query, choice); score > bestScore {
			best, bestScore = choice, score
		}
	}
	return best, bestScore
}
