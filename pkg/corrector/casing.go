package corrector

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseShape reports whether s has cased letters that are all lower or all
// upper. Strings without cased letters are neither.
func caseShape(s string) (lower, upper bool) {
	var hasLower, hasUpper bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r), unicode.IsTitle(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	return hasLower && !hasUpper, hasUpper && !hasLower
}

// recase gives match the casing pattern of original: all lower, all upper,
// or initial capital. Any other pattern returns match as is.
// cases.Caser values keep state, so each call builds its own.
func recase(original, match string) string {
	lower, upper := caseShape(original)
	switch {
	case lower:
		return match
	case upper:
		return cases.Upper(language.Spanish).String(match)
	}
	if first, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(first) || unicode.IsTitle(first) {
		return cases.Title(language.Spanish).String(match)
	}
	return match
}
