package lexicon

import "strings"

// Dictionary is the ordered set of known word-forms. Words keeps first
// occurrence order so nearest-word scans are reproducible.
type Dictionary struct {
	words     []string
	index     map[string]struct{}
	normalize Normalizer
}

func newDictionary(groups []WordGroup, normalize Normalizer) *Dictionary {
	d := &Dictionary{
		index:     make(map[string]struct{}),
		normalize: normalize,
	}
	for _, g := range groups {
		for _, w := range g.Words {
			key := normalize(strings.TrimSpace(w))
			if key == "" {
				continue
			}
			if _, dup := d.index[key]; dup {
				continue
			}
			d.index[key] = struct{}{}
			d.words = append(d.words, key)
		}
	}
	return d
}

// Contains reports whether word is known, after normalization.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[d.normalize(word)]
	return ok
}

// Words returns the normalized words in lexicon order. The slice is shared
// and must not be modified.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Normalize applies the dictionary's normalizer to a word.
func (d *Dictionary) Normalize(word string) string {
	return d.normalize(word)
}
