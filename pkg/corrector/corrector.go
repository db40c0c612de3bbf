// CLAUDE:SUMMARY Corrector: builds the five-stage pipeline (sanitize, abbreviations, dates, numbers, spelling) from a lexicon and runs it with a per-call change log.
package corrector

import (
	"fmt"
	"log/slog"

	"github.com/hazyhaar/corrector-es/pkg/lexicon"
	"github.com/hazyhaar/corrector-es/pkg/numeral"
)

// Corrector normalizes Spanish prose. It holds only immutable lexicon data
// and is safe for concurrent use.
type Corrector struct {
	lex    *lexicon.Lexicon
	stages []stage
	cutoff float64
	logger *slog.Logger
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithLogger sets the logger used for per-stage debug lines.
func WithLogger(l *slog.Logger) Option {
	return func(c *Corrector) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCutoff sets the minimum similarity for fuzzy corrections.
func WithCutoff(cutoff float64) Option {
	return func(c *Corrector) {
		c.cutoff = cutoff
	}
}

// New builds a Corrector over lex.
func New(lex *lexicon.Lexicon, opts ...Option) (*Corrector, error) {
	if lex == nil || lex.Dictionary() == nil {
		return nil, fmt.Errorf("corrector: lexicon not loaded")
	}
	num, err := numeral.NewConverter(lex.Numerals)
	if err != nil {
		return nil, fmt.Errorf("corrector: lexicon %s: %w", lex.ID, err)
	}
	c := &Corrector{
		lex:    lex,
		cutoff: DefaultCutoff,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cutoff <= 0 || c.cutoff > 1 {
		return nil, fmt.Errorf("corrector: cutoff %v out of range (0, 1]", c.cutoff)
	}

	numbers := numberStage(num)
	c.stages = []stage{
		sanitizeStage(),
		abbreviationStage(lex.Abbreviations),
		dateStage(num, numbers),
		numbers,
		spellingStage(lex.SpecialCases, lex.Dictionary(), c.cutoff),
	}
	return c, nil
}

// CorrectText runs every stage in order and returns the original text, the
// corrected text and the records of this call.
func (c *Corrector) CorrectText(text string) Result {
	log := newChangeLog()
	out := text
	for _, st := range c.stages {
		before := log.Len()
		out = st.run(out, log)
		c.logger.Debug("stage done", "stage", st.name, "changes", log.Len()-before)
	}
	return Result{Original: text, Corrected: out, Changes: log.Changes()}
}

// Stages returns the pipeline stage names in execution order.
func (c *Corrector) Stages() []string {
	names := make([]string, len(c.stages))
	for i, st := range c.stages {
		names[i] = st.name
	}
	return names
}

// Lexicon returns the lexicon the corrector was built from.
func (c *Corrector) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// Cutoff returns the fuzzy-match threshold in use.
func (c *Corrector) Cutoff() float64 {
	return c.cutoff
}
