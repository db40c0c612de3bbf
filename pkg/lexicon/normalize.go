// CLAUDE:SUMMARY Text normalization strategies (lowercase, lowercase+strip-accents, none, NFC composition) for dictionary membership and input cleanup.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a word before a dictionary membership test.
type Normalizer func(string) string

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLowercaseUTF8 lowercases and keeps accents, so "pais" and "país"
// stay distinct words.
func NormalizeLowercaseUTF8(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// NormalizeLowercaseASCII lowercases and strips accents (País -> pais).
func NormalizeLowercaseASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// NormalizeNone returns the word unchanged.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for a lexicon's normalize mode.
// Default is lowercase_utf8.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "lowercase_ascii":
		return NormalizeLowercaseASCII
	case "none":
		return NormalizeNone
	default:
		return NormalizeLowercaseUTF8
	}
}

// ComposeNFC returns s in Unicode normalization form C: a vowel followed by a
// combining acute accent becomes the single precomposed letter.
func ComposeNFC(s string) string {
	return norm.NFC.String(s)
}
