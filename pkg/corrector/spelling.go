package corrector

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/hazyhaar/corrector-es/pkg/lexicon"
)

var wordToken = regexp.MustCompile(`[\p{L}\p{M}\p{Nd}_]+`)

// spellingStage applies the known misspellings, then fuzzy-matches the
// remaining unknown lowercase words against the dictionary. Every special
// case present in the text is logged, identity entries (Golfo -> Golfo)
// included.
func spellingStage(specials []lexicon.SpecialCase, dict *lexicon.Dictionary, cutoff float64) stage {
	return stage{
		name:      "spelling",
		aggregate: CategorySpellingOverview,
		rules: []rule{
			{name: "special-cases", apply: func(text string, log *ChangeLog) string {
				for _, sc := range specials {
					var n int
					text, n = replaceWord(text, sc.Wrong, sc.Right)
					if n > 0 {
						log.add(CategorySpecialCase, sc.Wrong, sc.Right)
					}
				}
				return text
			}},
			{name: "fuzzy", apply: func(text string, log *ChangeLog) string {
				return fuzzyCorrect(text, dict, cutoff, log)
			}},
		},
	}
}

// fuzzyCorrect logs one Orthography record per occurrence of a corrected
// word. Matches are computed once per distinct word.
func fuzzyCorrect(text string, dict *lexicon.Dictionary, cutoff float64, log *ChangeLog) string {
	matches := make(map[string]string)
	for _, word := range wordToken.FindAllString(text, -1) {
		replacement, done := matches[word]
		if !done {
			replacement = correction(word, dict, cutoff)
			matches[word] = replacement
		}
		if replacement == "" {
			continue
		}
		log.add(CategoryOrthography, word, replacement)
		text, _ = replaceWord(text, word, replacement)
	}
	return text
}

// correction returns the recased dictionary match for word, or "" when the
// word stays as it is.
func correction(word string, dict *lexicon.Dictionary, cutoff float64) string {
	if !needsCorrection(word, dict) {
		return ""
	}
	match, ok := closestWord(dict.Normalize(word), dict.Words(), cutoff)
	if !ok {
		return ""
	}
	if replacement := recase(word, match); replacement != word {
		return replacement
	}
	return ""
}

// needsCorrection filters out short words, known words and anything that
// starts with a capital letter.
func needsCorrection(word string, dict *lexicon.Dictionary) bool {
	if utf8.RuneCountInString(word) <= 2 {
		return false
	}
	if dict.Contains(word) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	return !unicode.IsUpper(first) && !unicode.IsTitle(first)
}
