package corrector

import (
	"regexp"
	"strconv"
	"time"

	"github.com/hazyhaar/corrector-es/pkg/numeral"
)

var (
	slashDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	dashDate  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
	yearRef   = regexp.MustCompile(`año (\d{3,4})`)
)

// dateStage spells out calendar dates, then "año NNN" references. The year
// inside a reference goes through the numeral stage, which logs its own
// records.
func dateStage(num *numeral.Converter, numbers stage) stage {
	expand := func(re *regexp.Regexp) func(string, *ChangeLog) string {
		return func(text string, log *ChangeLog) string {
			return rewriteStandalone(text, re, func(_ int, g []string) (string, bool) {
				out, ok := spellDate(num, g[1], g[2], g[3])
				if ok {
					log.add(CategoryDate, g[0], out)
				}
				return out, ok
			})
		}
	}
	return stage{
		name:      "dates",
		aggregate: CategoryDates,
		rules: []rule{
			{name: "slash", apply: expand(slashDate)},
			{name: "dash", apply: expand(dashDate)},
			{name: "year-reference", apply: func(text string, log *ChangeLog) string {
				return rewriteStandalone(text, yearRef, func(_ int, g []string) (string, bool) {
					return "año " + numbers.run(g[1], log), true
				})
			}},
		},
	}
}

// spellDate renders "<day> de <month> de <year>" for a real calendar date.
// Impossible dates and years the converter cannot spell are refused.
func spellDate(num *numeral.Converter, dd, mm, yyyy string) (string, bool) {
	day, _ := strconv.Atoi(dd)
	month, _ := strconv.Atoi(mm)
	year, _ := strconv.Atoi(yyyy)
	if !validDate(year, month, day) {
		return "", false
	}
	dayWords, ok := num.DayWords(day)
	if !ok {
		return "", false
	}
	yearWords := num.DateYearWords(year)
	if yearWords == "" {
		return "", false
	}
	return dayWords + " de " + numeral.Months[month-1] + " de " + yearWords, true
}

func validDate(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
