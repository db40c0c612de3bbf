// CLAUDE:SUMMARY Lexicon YAML schema (numerals, ordered abbreviations, special cases, dictionary groups), embedded default, loading and validation.
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

//go:embed lexicon_es.yaml
var defaultLexicon []byte

// ErrEmptyLexicon is returned when a lexicon file has no dictionary words.
var ErrEmptyLexicon = errors.New("lexicon has no dictionary words")

// Abbreviation maps a literal token or short phrase to its expansion.
type Abbreviation struct {
	Key       string `yaml:"key" json:"key"`
	Expansion string `yaml:"expansion" json:"expansion"`
}

// IsAcronym reports whether the key is an acronym: more than one rune, at
// least one letter, and every letter uppercase.
func (a Abbreviation) IsAcronym() bool {
	if utf8.RuneCountInString(a.Key) < 2 {
		return false
	}
	letters := 0
	for _, r := range a.Key {
		if strings.ToUpper(string(r)) != strings.ToLower(string(r)) {
			letters++
			if strings.ToUpper(string(r)) != string(r) {
				return false
			}
		}
	}
	return letters > 0
}

// SpecialCase is a known misspelling and its canonical correction.
type SpecialCase struct {
	Wrong string `yaml:"wrong" json:"wrong"`
	Right string `yaml:"right" json:"right"`
}

// WordGroup is a named block of dictionary words.
type WordGroup struct {
	Group string   `yaml:"group" json:"group"`
	Words []string `yaml:"words" json:"-"`
}

// Lexicon is the immutable word data a corrector is built from. Order in
// Abbreviations, SpecialCases and the dictionary groups is significant.
type Lexicon struct {
	ID            string            `yaml:"id"`
	Version       string            `yaml:"version"`
	Language      string            `yaml:"language"`
	Normalize     string            `yaml:"normalize"`
	Numerals      map[string]string `yaml:"numerals"`
	Abbreviations []Abbreviation    `yaml:"abbreviations"`
	SpecialCases  []SpecialCase     `yaml:"special_cases"`
	Groups        []WordGroup       `yaml:"dictionary"`

	dict        *Dictionary
	fingerprint uint64
}

// Default returns the built-in Spanish lexicon.
func Default() *Lexicon {
	lex, err := Parse(defaultLexicon)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon: %v", err))
	}
	return lex
}

// Load reads and parses a lexicon YAML file.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// LoadOrDefault loads path, or returns the built-in lexicon when path is empty.
func LoadOrDefault(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates lexicon YAML and builds its dictionary.
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if err := lex.Validate(); err != nil {
		return nil, err
	}
	lex.dict = newDictionary(lex.Groups, GetNormalizer(lex.Normalize))
	lex.fingerprint = xxhash.Sum64(data)
	return &lex, nil
}

// Validate checks the structural rules a corrector depends on.
func (l *Lexicon) Validate() error {
	if l.ID == "" {
		return errors.New("lexicon: missing id")
	}
	if len(l.Numerals) == 0 {
		return fmt.Errorf("lexicon %s: no numerals", l.ID)
	}
	seen := make(map[string]bool, len(l.Abbreviations))
	for i, a := range l.Abbreviations {
		if a.Key == "" {
			return fmt.Errorf("lexicon %s: abbreviation %d has an empty key", l.ID, i)
		}
		if seen[a.Key] {
			return fmt.Errorf("lexicon %s: duplicate abbreviation %q", l.ID, a.Key)
		}
		seen[a.Key] = true
	}
	wrong := make(map[string]bool, len(l.SpecialCases))
	for i, sc := range l.SpecialCases {
		if sc.Wrong == "" || sc.Right == "" {
			return fmt.Errorf("lexicon %s: special case %d is incomplete", l.ID, i)
		}
		if wrong[sc.Wrong] {
			return fmt.Errorf("lexicon %s: duplicate special case %q", l.ID, sc.Wrong)
		}
		wrong[sc.Wrong] = true
	}
	for _, g := range l.Groups {
		for _, w := range g.Words {
			if strings.TrimSpace(w) != "" {
				return nil
			}
		}
	}
	return fmt.Errorf("lexicon %s: %w", l.ID, ErrEmptyLexicon)
}

// Dictionary returns the known-word set.
func (l *Lexicon) Dictionary() *Dictionary {
	return l.dict
}

// Fingerprint identifies the lexicon content; two lexicons parsed from the
// same bytes share it.
func (l *Lexicon) Fingerprint() string {
	return fmt.Sprintf("%016x", l.fingerprint)
}

// Info is the public summary of a loaded lexicon.
type Info struct {
	ID            string      `json:"id"`
	Version       string      `json:"version"`
	Language      string      `json:"language"`
	Fingerprint   string      `json:"fingerprint"`
	Numerals      int         `json:"numerals"`
	Abbreviations int         `json:"abbreviations"`
	Acronyms      int         `json:"acronyms"`
	SpecialCases  int         `json:"special_cases"`
	Words         int         `json:"words"`
	Groups        []WordGroup `json:"groups"`
}

// Info summarises the lexicon.
func (l *Lexicon) Info() Info {
	acronyms := 0
	for _, a := range l.Abbreviations {
		if a.IsAcronym() {
			acronyms++
		}
	}
	return Info{
		ID:            l.ID,
		Version:       l.Version,
		Language:      l.Language,
		Fingerprint:   l.Fingerprint(),
		Numerals:      len(l.Numerals),
		Abbreviations: len(l.Abbreviations),
		Acronyms:      acronyms,
		SpecialCases:  len(l.SpecialCases),
		Words:         l.dict.Len(),
		Groups:        l.Groups,
	}
}
