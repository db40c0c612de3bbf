package corrector

import (
	"regexp"

	"github.com/hazyhaar/corrector-es/pkg/numeral"
)

var (
	fourDigits = regexp.MustCompile(`\d{4}`)
	romanToken = regexp.MustCompile(`[IVXLCDM]+`)
	digitRun   = regexp.MustCompile(`\d+`)
	// dateShape covers date-like spans the date stage refused; their digits
	// are never read as numbers.
	dateShape = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}`)
)

// numberStage converts 4-digit years, Roman numerals and bare integers, in
// that order. Tokens the converter cannot spell stay as they are.
func numberStage(num *numeral.Converter) stage {
	return stage{
		name:      "numbers",
		aggregate: CategoryNumbers,
		rules: []rule{
			{name: "years", apply: func(text string, log *ChangeLog) string {
				return convertDigits(text, fourDigits, log, func(digits string) (string, bool) {
					year, _ := atoiDigits(digits)
					w := num.YearWords(year)
					return w, w != ""
				})
			}},
			{name: "roman", apply: func(text string, log *ChangeLog) string {
				return rewriteStandalone(text, romanToken, func(_ int, g []string) (string, bool) {
					w, ok := num.RomanWords(g[0])
					if ok {
						log.add(CategoryNumber, g[0], w)
					}
					return w, ok
				})
			}},
			{name: "integers", apply: func(text string, log *ChangeLog) string {
				return convertDigits(text, digitRun, log, num.IntegerWords)
			}},
		},
	}
}

// convertDigits rewrites standalone digit tokens matched by re, skipping the
// digits of date-shaped spans and of decimals such as 3.5 or 1,5.
func convertDigits(text string, re *regexp.Regexp, log *ChangeLog, spell func(string) (string, bool)) string {
	dates := spansOf(dateShape, text)
	return rewriteStandalone(text, re, func(start int, g []string) (string, bool) {
		end := start + len(g[0])
		if insideAny(dates, start, end) || decimalPart(text, start, end) {
			return "", false
		}
		w, ok := spell(g[0])
		if ok {
			log.add(CategoryNumber, g[0], w)
		}
		return w, ok
	})
}

func decimalPart(s string, start, end int) bool {
	if start >= 2 && isSeparator(s[start-1]) && isDigit(s[start-2]) {
		return true
	}
	return end+1 < len(s) && isSeparator(s[end]) && isDigit(s[end+1])
}

func isSeparator(c byte) bool { return c == '.' || c == ',' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func atoiDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, s != ""
}
