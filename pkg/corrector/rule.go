// CLAUDE:SUMMARY Ordered rule/stage tables and Unicode word-boundary matching helpers shared by every pipeline stage.
package corrector

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule is one named rewrite inside a stage. Rules run in table order, each
// over the output of the previous one.
type rule struct {
	name  string
	apply func(text string, log *ChangeLog) string
}

// stage is an ordered rule table. When aggregate is set and the stage changed
// the text, one whole-text record is appended after the rules ran.
type stage struct {
	name      string
	aggregate Category
	rules     []rule
}

func (s stage) run(text string, log *ChangeLog) string {
	out := text
	for _, r := range s.rules {
		out = r.apply(out, log)
	}
	if s.aggregate != "" && out != text {
		log.add(s.aggregate, text, out)
	}
	return out
}

// isWordRune mirrors a Unicode-aware \w: letters, combining marks, decimal
// digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// wordBefore reports whether the rune ending at byte offset i is a word rune.
func wordBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

// wordAfter reports whether the rune starting at byte offset i is a word rune.
func wordAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func nextRune(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

// standalone reports whether s[start:end] is not glued to a word rune on
// either side.
func standalone(s string, start, end int) bool {
	return !wordBefore(s, start) && !wordAfter(s, end)
}

// replaceWord substitutes every standalone occurrence of old, left to right
// without overlap, and returns the count.
func replaceWord(s, old, repl string) (string, int) {
	if old == "" {
		return s, 0
	}
	var b strings.Builder
	n, last, i := 0, 0, 0
	for {
		j := strings.Index(s[i:], old)
		if j < 0 {
			break
		}
		j += i
		end := j + len(old)
		if standalone(s, j, end) {
			b.WriteString(s[last:j])
			b.WriteString(repl)
			last, i = end, end
			n++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[j:])
		i = j + size
	}
	if n == 0 {
		return s, 0
	}
	b.WriteString(s[last:])
	return b.String(), n
}

// replacer decides the substitution for one standalone match. start is the
// byte offset of the match and groups holds the whole match followed by its
// submatches. Returning false keeps the match verbatim.
type replacer func(start int, groups []string) (string, bool)

// rewriteStandalone runs re over s and hands every standalone match to fn.
// A match glued to a word rune is retried one rune further on, so the scan
// behaves like a pattern wrapped in (?<!\w) ... (?!\w).
func rewriteStandalone(s string, re *regexp.Regexp, fn replacer) string {
	var b strings.Builder
	changed := false
	last, pos := 0, 0
	for pos < len(s) {
		loc := re.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && standalone(s, start, end) {
			groups := make([]string, len(loc)/2)
			for i := range groups {
				if loc[2*i] >= 0 {
					groups[i] = s[pos+loc[2*i] : pos+loc[2*i+1]]
				}
			}
			if repl, ok := fn(start, groups); ok {
				b.WriteString(s[last:start])
				b.WriteString(repl)
				last = end
				changed = true
			}
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		if size == 0 {
			size = 1
		}
		pos = start + size
	}
	if !changed {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// span is a half-open byte range.
type span struct{ start, end int }

func spansOf(re *regexp.Regexp, s string) []span {
	locs := re.FindAllStringIndex(s, -1)
	out := make([]span, len(locs))
	for i, l := range locs {
		out[i] = span{l[0], l[1]}
	}
	return out
}

func insideAny(spans []span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.end && end > sp.start {
			return true
		}
	}
	return false
}
