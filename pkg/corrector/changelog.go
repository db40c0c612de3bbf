package corrector

// Category names the kind of transformation a Change records.
type Category string

const (
	CategoryMultipleSpaces   Category = "Multiple spaces"
	CategorySpecialChars     Category = "Special characters"
	CategoryAcronym          Category = "Acronym"
	CategoryAbbreviation     Category = "Abbreviation"
	CategoryAbbreviations    Category = "Abbreviation expansion"
	CategoryDate             Category = "Date expansion"
	CategoryDates            Category = "Dates expansion"
	CategoryNumber           Category = "Number to text"
	CategoryNumbers          Category = "Number conversion"
	CategorySpecialCase      Category = "Special case"
	CategoryOrthography      Category = "Orthography"
	CategorySpellingOverview Category = "Spelling correction"
)

// Change is one before/after record. Depending on the category it covers a
// single token or the whole text.
type Change struct {
	Category Category `json:"category"`
	Before   string   `json:"before"`
	After    string   `json:"after"`
}

// ChangeLog is the append-only record of one correction run.
type ChangeLog struct {
	changes []Change
}

func newChangeLog() *ChangeLog {
	return &ChangeLog{changes: make([]Change, 0, 16)}
}

func (l *ChangeLog) add(cat Category, before, after string) {
	l.changes = append(l.changes, Change{Category: cat, Before: before, After: after})
}

// Len returns the number of records.
func (l *ChangeLog) Len() int {
	return len(l.changes)
}

// Changes returns the records in the order they were produced.
func (l *ChangeLog) Changes() []Change {
	return l.changes
}

// Result is the outcome of one CorrectText call.
type Result struct {
	Original  string   `json:"original"`
	Corrected string   `json:"corrected"`
	Changes   []Change `json:"changes"`
}

// Count returns how many records carry the category.
func (r Result) Count(cat Category) int {
	n := 0
	for _, c := range r.Changes {
		if c.Category == cat {
			n++
		}
	}
	return n
}

// Changed reports whether the corrected text differs from the original.
func (r Result) Changed() bool {
	return r.Original != r.Corrected
}
