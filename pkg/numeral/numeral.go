// CLAUDE:SUMMARY Spanish numeral-to-words conversion: lexicon lookups, tens/ones composition, years (full and date form), days, Roman numerals, bare integers.
package numeral

import (
	"fmt"
	"strconv"
	"strings"
)

// Months holds the Spanish month names, indexed by month-1.
var Months = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// centuries maps year/100 to its phrase for years below 2000.
var centuries = map[int]string{
	10: "mil",
	11: "mil cien",
	12: "mil doscientos",
	13: "mil trescientos",
	14: "mil cuatrocientos",
	15: "mil quinientos",
	16: "mil seiscientos",
	17: "mil setecientos",
	18: "mil ochocientos",
	19: "mil novecientos",
	20: "dos mil",
}

// irregularHundreds are the multiples of 100 that do not follow <digit>cientos.
var irregularHundreds = map[int]string{
	5: "quinientos",
	7: "setecientos",
	9: "novecientos",
}

// requiredKeys lists the lexicon entries every algorithm relies on.
var requiredKeys = func() []int {
	keys := make([]int, 0, 31)
	for n := 0; n <= 20; n++ {
		keys = append(keys, n)
	}
	for n := 30; n <= 90; n += 10 {
		keys = append(keys, n)
	}
	return append(keys, 100, 1000)
}()

// Converter turns integers into Spanish words using a fixed numeral lexicon.
// It is immutable after construction and safe for concurrent use.
type Converter struct {
	words map[int]string
}

// NewConverter builds a Converter from a lexicon keyed by decimal digit strings
// ("0".."20", "30".."90", "100", "1000").
func NewConverter(lexicon map[string]string) (*Converter, error) {
	words := make(map[int]string, len(lexicon))
	for k, v := range lexicon {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 || strconv.Itoa(n) != k {
			return nil, fmt.Errorf("numeral key %q is not a canonical decimal", k)
		}
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("numeral %q has an empty word", k)
		}
		words[n] = v
	}
	for _, n := range requiredKeys {
		if _, ok := words[n]; !ok {
			return nil, fmt.Errorf("numeral lexicon is missing %d", n)
		}
	}
	return &Converter{words: words}, nil
}

// Word returns the lexicon word for n, if any.
func (c *Converter) Word(n int) (string, bool) {
	w, ok := c.words[n]
	return w, ok
}

// TensOnes spells 1–99: direct lookup up to 20, "veinti" + ones for 21–29,
// "<tens>" or "<tens> y <ones>" from 30 on. Out of range yields "".
// The veinti- forms carry no written accent (veintidos); restoring it is
// left to the spelling stage.
func (c *Converter) TensOnes(n int) string {
	switch {
	case n <= 0 || n > 99:
		return ""
	case n <= 20:
		return c.words[n]
	case n < 30:
		return "veinti" + c.words[n-20]
	}
	tens, ones := (n/10)*10, n%10
	if ones == 0 {
		return c.words[tens]
	}
	return c.words[tens] + " y " + c.words[ones]
}

// yearHundreds is the hundreds term inside a year: 1 is always "cien".
func (c *Converter) yearHundreds(d int) string {
	if d == 1 {
		return "cien"
	}
	if w, ok := irregularHundreds[d]; ok {
		return w
	}
	return c.words[d] + "cientos"
}

// century spells a year below 2000 from the century table plus its remainder.
// Centuries outside the table contribute nothing.
func (c *Converter) century(year int) string {
	return joinWords(centuries[year/100], c.TensOnes(year%100))
}

// YearWords is the full, hundreds-aware year conversion used for bare
// 4-digit tokens.
//
//	1810 -> mil ochocientos diez
//	2100 -> dos mil cien
func (c *Converter) YearWords(year int) string {
	if year < 0 {
		return ""
	}
	if year < 2000 {
		return c.century(year)
	}
	millennium, ok := c.words[year/1000]
	if !ok {
		return ""
	}
	rem := year % 1000
	parts := []string{millennium, "mil"}
	if h := rem / 100; h > 0 {
		parts = append(parts, c.yearHundreds(h))
	}
	parts = append(parts, c.TensOnes(rem%100))
	return joinWords(parts...)
}

// DateYearWords is the simplified year form used inside calendar dates. Years
// from 2000 on are always "dos mil" plus a remainder; remainders of 100 or more
// are kept as digits.
func (c *Converter) DateYearWords(year int) string {
	if year < 2000 {
		return c.century(year)
	}
	rem := year - 2000
	switch {
	case rem == 0:
		return "dos mil"
	case rem < 100:
		return "dos mil " + c.TensOnes(rem)
	default:
		return "dos mil " + strconv.Itoa(rem)
	}
}

// DayWords spells a day of month (1–31).
func (c *Converter) DayWords(day int) (string, bool) {
	switch {
	case day < 1 || day > 31:
		return "", false
	case day == 31:
		return "treinta y uno", true
	}
	return c.TensOnes(day), true
}

// IntegerWords spells a bare decimal token. Magnitudes outside 0–2099 are
// reported as not convertible.
func (c *Converter) IntegerWords(digits string) (string, bool) {
	if digits == "" || len(digits) > 9 {
		return "", false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return "", false
	}
	switch {
	case n == 0:
		return c.words[0], true
	case n < 100:
		return c.TensOnes(n), true
	case n < 1000:
		return c.hundreds(n), true
	case n <= 2099:
		w := c.YearWords(n)
		return w, w != ""
	}
	return "", false
}

// hundreds spells 100–999 ("cien" alone, "ciento" when followed by more).
func (c *Converter) hundreds(n int) string {
	h, rem := n/100, n%100
	var head string
	switch {
	case h == 1 && rem == 0:
		return "cien"
	case h == 1:
		head = "ciento"
	default:
		head = c.yearHundreds(h)
	}
	return joinWords(head, c.TensOnes(rem))
}

var romanValues = map[rune]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000}

// RomanValue decodes an uppercase Roman numeral with subtractive notation.
func RomanValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	total, prev := 0, 0
	for i, r := range s {
		v, ok := romanValues[r]
		if !ok {
			return 0, false
		}
		if i > 0 && v > prev {
			total += v - 2*prev
		} else {
			total += v
		}
		prev = v
	}
	return total, true
}

// RomanWords spells Roman numerals worth up to 99; larger values are left
// to the caller. Above 20 the tens word is always joined with "y", so
// XXI reads "veinte y uno".
func (c *Converter) RomanWords(s string) (string, bool) {
	v, ok := RomanValue(s)
	if !ok || v >= 100 {
		return "", false
	}
	if v <= 20 {
		return c.words[v], true
	}
	tens, ones := (v/10)*10, v%10
	if ones == 0 {
		return c.words[tens], true
	}
	return c.words[tens] + " y " + c.words[ones], true
}

func joinWords(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
