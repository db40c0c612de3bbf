package corrector

import (
	"strings"
	"unicode"

	"github.com/hazyhaar/corrector-es/pkg/lexicon"
)

// allowedExtra lists the non-alphanumeric runes that survive sanitizing.
const allowedExtra = "áéíóúÁÉÍÓÚüÜñÑ.,;:¿?¡!()[]-_\"' \n"

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(allowedExtra, r)
}

func sanitizeStage() stage {
	return stage{
		name: "sanitize",
		rules: []rule{
			{name: "compose", apply: func(text string, _ *ChangeLog) string {
				return lexicon.ComposeNFC(text)
			}},
			{name: "whitespace", apply: collapseSpaces},
			{name: "charset", apply: filterChars},
		},
	}
}

// collapseSpaces turns every whitespace run, newlines included, into one space.
func collapseSpaces(text string, log *ChangeLog) string {
	var b strings.Builder
	b.Grow(len(text))
	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	out := b.String()
	if out != text {
		log.add(CategoryMultipleSpaces, text, out)
	}
	return out
}

func filterChars(text string, log *ChangeLog) string {
	out := strings.Map(func(r rune) rune {
		if allowedRune(r) {
			return r
		}
		return -1
	}, text)
	if out != text {
		log.add(CategorySpecialChars, text, out)
	}
	return out
}
