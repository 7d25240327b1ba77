// Package match ranks note titles against a search fragment using
// bigram-overlap (Dice) similarity.
package match

import "strings"

// bigrams returns the ordered adjacent 2-character substrings of s,
// lower-cased, with any bigram containing a space discarded.
func bigrams(s string) []string {
	runes := []rune(strings.ToLower(s))
	var out []string
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == ' ' || runes[i+1] == ' ' {
			continue
		}
		out = append(out, string(runes[i:i+2]))
	}
	return out
}

// Similarity computes the Dice coefficient between two strings:
// 2*|intersection| / (|bigrams(a)| + |bigrams(b)|). The intersection is
// a multiset intersection, so a bigram repeated in both strings matches
// up to the smaller multiplicity.
func Similarity(a, b string) float64 {
	ga, gb := bigrams(a), bigrams(b)
	total := len(ga) + len(gb)
	if total == 0 {
		return 0
	}
	remaining := make(map[string]int, len(gb))
	for _, g := range gb {
		remaining[g]++
	}
	shared := 0
	for _, g := range ga {
		if remaining[g] > 0 {
			remaining[g]--
			shared++
		}
	}
	return 2 * float64(shared) / float64(total)
}

// BestIndex returns the index of the highest-scoring candidate, or -1
// when there are no candidates or every score is zero. Ties go to the
// earliest candidate.
func BestIndex(query string, candidates []string) int {
	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		score := Similarity(query, c)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// BestMatch returns the single best-matching candidate. ok is false
// when nothing scored above zero.
func BestMatch(query string, candidates []string) (string, bool) {
	i := BestIndex(query, candidates)
	if i < 0 {
		return "", false
	}
	return candidates[i], true
}
