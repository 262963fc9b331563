package dedupe

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// TitleSimilarity returns a 0-100 similarity ratio between two titles based
// on normalized edit distance. Case and whitespace differences are ignored.
func TitleSimilarity(a, b string) float64 {
	na := normalizeTitle(a)
	nb := normalizeTitle(b)

	if na == nb {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}

	dist := levenshtein.ComputeDistance(na, nb)
	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}

	return 100 * (1 - float64(dist)/float64(longest))
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
