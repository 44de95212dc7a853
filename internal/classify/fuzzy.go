package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Similarity is the normalized Levenshtein similarity over runes:
// (maxLen - distance) / maxLen. Two empty strings are identical.
func Similarity(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 1
	}
	d := levenshtein.Distance(a, b, nil)
	return float64(n-d) / float64(n)
}

// ContainsSimilar reports whether any whitespace-separated token of text is at
// least threshold-similar to term. Both sides are compared uppercased.
func ContainsSimilar(text, term string, threshold float64) bool {
	term = strings.ToUpper(term)
	for _, tok := range strings.Fields(strings.ToUpper(text)) {
		if Similarity(tok, term) >= threshold {
			return true
		}
	}
	return false
}
