// CLAUDE:SUMMARY CLI entry point: sample mode (no args), file mode (<in> <out>), and the serve / mcp / history subcommands.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
	"github.com/hazyhaar/corrector-es/pkg/history"
	"github.com/hazyhaar/corrector-es/pkg/kit"
	"github.com/hazyhaar/corrector-es/pkg/lexicon"
	"github.com/hazyhaar/corrector-es/pkg/report"
	"github.com/hazyhaar/corrector-es/pkg/textio"
)

const defaultConfigPath = "config.yaml"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		exitOn(runDefault(func(a *app) error { return runSamples(a, os.Stdout) }))
		return
	}

	switch args[0] {
	case "serve":
		cmdServe(args[1:])
	case "mcp":
		cmdMCP(args[1:])
	case "history":
		cmdHistory(args[1:])
	case "help", "-h", "--help":
		usage()
	default:
		if len(args) != 2 {
			usage()
			os.Exit(2)
		}
		exitOn(runDefault(func(a *app) error {
			correctFile(context.Background(), a, args[0], args[1], os.Stdout, os.Stderr)
			return nil
		}))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: corrector [command]

Without arguments the two built-in sample texts are corrected and reported.

Commands:
  <input> <output>   Correct a text file, print the report, write the result
  serve              Start the HTTP server
  mcp                Serve the MCP tools on stdio
  history            List journaled correction runs
`)
}

func exitOn(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles what every mode needs.
type app struct {
	cfg     config
	logger  *slog.Logger
	corr    *corrector.Corrector
	history *history.DB
}

// newApp builds the corrector from cfg. The history journal is optional: a
// failure to open it is logged and the app runs without it.
func newApp(cfg config, logger *slog.Logger) (*app, error) {
	lex, err := lexicon.LoadOrDefault(cfg.Lexicon)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	corr, err := corrector.New(lex, corrector.WithLogger(logger), corrector.WithCutoff(cfg.Cutoff))
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, corr: corr}
	if cfg.HistoryDB != "" {
		h, err := history.Open(cfg.HistoryDB)
		if err != nil {
			logger.Warn("history disabled", "path", cfg.HistoryDB, "error", err)
		} else {
			a.history = h
		}
	}
	logger.Debug("lexicon loaded", "id", lex.ID, "version", lex.Version, "fingerprint", lex.Fingerprint(),
		"words", lex.Dictionary().Len())
	return a, nil
}

func (a *app) Close() {
	if a.history != nil {
		a.history.Close()
	}
}

// runDefault loads config.yaml when present and runs fn. Unless the config
// sets log_level, only warnings reach stderr.
func runDefault(fn func(*app) error) error {
	logger := newLogger("warn")
	cfg, err := loadConfig(defaultConfigPath, logger)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		logger = newLogger(cfg.LogLevel)
	}
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func runSamples(a *app, w io.Writer) error {
	fmt.Fprintln(w, "\n===== TEXT CORRECTOR =====")
	fmt.Fprintln(w, "Processing sample texts...")
	for _, s := range samples {
		res := a.corr.CorrectText(s.text)
		a.journal(context.Background(), "sample:"+s.title, res)
		if err := report.Write(w, s.title, res); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "\n=== USING YOUR OWN FILES ===")
	fmt.Fprintln(w, "To correct a file, run:")
	fmt.Fprintln(w, "corrector input.txt output.txt")
	return nil
}

// runFile reads in, prints the report and writes the corrected text to out.
// Nothing is written when the input cannot be read.
func runFile(ctx context.Context, a *app, in, out string, w io.Writer) error {
	if err := textio.CheckPaths(in, out); err != nil {
		return err
	}
	text, err := textio.ReadFile(in, a.cfg.InputEncoding)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nProcessing file: %s\n", in)

	res := a.corr.CorrectText(text)
	a.journal(kit.WithTransport(ctx, "cli"), in, res)
	if err := report.Write(w, "", res); err != nil {
		return err
	}
	if err := textio.WriteFile(out, res.Corrected); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nCorrected text saved to: %s\n", out)
	return nil
}

// correctFile runs file mode the way the CLI does: a file that cannot be read
// or written is reported on errw and the program still exits normally.
func correctFile(ctx context.Context, a *app, in, out string, w, errw io.Writer) {
	if err := runFile(ctx, a, in, out, w); err != nil {
		fmt.Fprintf(errw, "Error processing file: %v\n", err)
	}
}

func (a *app) journal(ctx context.Context, source string, res corrector.Result) {
	if a.history == nil {
		return
	}
	id, err := a.history.Record(ctx, source, res)
	if err != nil {
		a.logger.Warn("history record failed", "source", source, "error", err)
		return
	}
	a.logger.Debug("run journaled", "id", id, "source", source, "changes", len(res.Changes))
}
