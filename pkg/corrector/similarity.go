package corrector

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum similarity a dictionary word needs to replace
// an unknown word.
const DefaultCutoff = 0.7

// closestWord returns the candidate with the highest Ratcliff/Obershelp
// ratio against word, provided it reaches cutoff. Ties keep the earliest
// candidate.
func closestWord(word string, candidates []string, cutoff float64) (string, bool) {
	m := difflib.NewMatcher(nil, runeSeq(word))
	best, bestScore := "", -1.0
	for _, c := range candidates {
		m.SetSeq1(runeSeq(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score >= cutoff && score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

// similarity is the ratio used by closestWord, exposed for tests.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(runeSeq(a), runeSeq(b)).Ratio()
}

// runeSeq splits s into one element per rune so accented letters compare as
// single symbols.
func runeSeq(s string) []string {
	return strings.Split(s, "")
}
