// CLAUDE:SUMMARY Console change report: original and corrected blocks, change table, per-line differences and a unified diff.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
	"github.com/pmezard/go-difflib/difflib"
)

const ruleWidth = 80

// Cells longer than maxCell runes are cut to cutCell runes plus "...".
const (
	maxCell = 28
	cutCell = 25
)

// Write prints the full report for one correction result.
func Write(w io.Writer, title string, res corrector.Result) error {
	pw := &printer{w: w}
	if title != "" {
		pw.printf("\n===== %s =====\n", title)
	}
	pw.block("Original text", res.Original)
	pw.block("Corrected text", res.Corrected)
	if len(res.Changes) > 0 {
		pw.table(res.Changes)
	}
	pw.lineDiffs(res.Original, res.Corrected)
	pw.unified(res.Original, res.Corrected)
	return pw.err
}

// Truncate shortens a table cell to fit the change table.
func Truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= maxCell {
		return s
	}
	runes := []rune(s)
	return string(runes[:cutCell]) + "..."
}

// printer keeps the first write error so the report code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) rule() {
	p.printf("%s\n", strings.Repeat("-", ruleWidth))
}

func (p *printer) block(label, text string) {
	p.printf("\n%s:\n", label)
	p.rule()
	p.printf("%s\n", text)
	p.rule()
}

func (p *printer) table(changes []corrector.Change) {
	p.printf("\nChanges:\n")
	p.rule()
	p.printf("%-20s %-30s %-30s\n", "CATEGORY", "BEFORE", "AFTER")
	p.rule()
	for _, c := range changes {
		p.printf("%-20s %-30s %-30s\n", c.Category, Truncate(c.Before), Truncate(c.After))
	}
}

func (p *printer) lineDiffs(original, corrected string) {
	p.printf("\nLine differences:\n")
	p.rule()
	a := strings.Split(original, "\n")
	b := strings.Split(corrected, "\n")
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		p.printf("Line %d:\n", i+1)
		p.printf("  Original:  %s\n", a[i])
		p.printf("  Corrected: %s\n\n", b[i])
	}
}

func (p *printer) unified(original, corrected string) {
	if original == corrected || p.err != nil {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(corrected),
		FromFile: "original",
		ToFile:   "corrected",
		Context:  1,
	})
	if err != nil {
		p.err = fmt.Errorf("unified diff: %w", err)
		return
	}
	p.printf("\nUnified diff:\n")
	p.rule()
	p.printf("%s", diff)
}
