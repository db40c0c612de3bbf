package corrector

import (
	"strings"

	"github.com/hazyhaar/corrector-es/pkg/lexicon"
)

// abbreviationStage expands acronyms first, one key at a time, then every
// other key in a single left-to-right scan.
func abbreviationStage(abbrs []lexicon.Abbreviation) stage {
	var acronyms, general []lexicon.Abbreviation
	for _, a := range abbrs {
		if a.IsAcronym() {
			acronyms = append(acronyms, a)
		} else {
			general = append(general, a)
		}
	}
	return stage{
		name:      "abbreviations",
		aggregate: CategoryAbbreviations,
		rules: []rule{
			{name: "acronyms", apply: func(text string, log *ChangeLog) string {
				return expandAcronyms(text, acronyms, log)
			}},
			{name: "general", apply: func(text string, log *ChangeLog) string {
				return expandGeneral(text, general, log)
			}},
		},
	}
}

func expandAcronyms(text string, acronyms []lexicon.Abbreviation, log *ChangeLog) string {
	for _, a := range acronyms {
		var n int
		text, n = replaceWord(text, a.Key, a.Expansion)
		if n > 0 {
			log.add(CategoryAcronym, a.Key, a.Expansion)
		}
	}
	return text
}

// expandGeneral tries the keys in lexicon order at every position that does
// not follow a word rune. The first key that matches and is not followed by a
// word rune wins; its expansion is not rescanned.
func expandGeneral(text string, keys []lexicon.Abbreviation, log *ChangeLog) string {
	if len(keys) == 0 {
		return text
	}
	var b strings.Builder
	changed := false
	last := 0
	for i := 0; i < len(text); {
		if wordBefore(text, i) {
			i = nextRune(text, i)
			continue
		}
		var hit *lexicon.Abbreviation
		for k := range keys {
			key := keys[k].Key
			if strings.HasPrefix(text[i:], key) && !wordAfter(text, i+len(key)) {
				hit = &keys[k]
				break
			}
		}
		if hit == nil {
			i = nextRune(text, i)
			continue
		}
		b.WriteString(text[last:i])
		b.WriteString(hit.Expansion)
		log.add(CategoryAbbreviation, hit.Key, hit.Expansion)
		i += len(hit.Key)
		last = i
		changed = true
	}
	if !changed {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}
