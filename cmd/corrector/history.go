package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hazyhaar/corrector-es/pkg/history"
	"github.com/hazyhaar/corrector-es/pkg/report"
)

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	cfgPath := fs.String("config", defaultConfigPath, "path to config file")
	limit := fs.Int("limit", 20, "number of runs to list")
	run := fs.String("run", "", "show the changes of one run")
	fs.Parse(args)

	logger := newLogger("warn")
	cfg, err := loadConfig(*cfgPath, logger)
	exitOn(err)
	if cfg.HistoryDB == "" {
		exitOn(errors.New("no history_db configured"))
	}

	h, err := history.Open(cfg.HistoryDB)
	exitOn(err)
	defer h.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if *run != "" {
		exitOn(printRunChanges(ctx, h, *run, os.Stdout))
		return
	}
	exitOn(printRuns(ctx, h, *limit, os.Stdout, time.Now()))
}

func printRuns(ctx context.Context, h *history.DB, limit int, w io.Writer, now time.Time) error {
	runs, err := h.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	fmt.Fprintf(w, "%-36s  %-16s  %7s  %8s  %s\n", "ID", "WHEN", "CHANGES", "SIZE", "SOURCE")
	for _, r := range runs {
		fmt.Fprintf(w, "%-36s  %-16s  %7d  %8s  %s\n",
			r.ID, humanize.RelTime(r.CreatedAt, now, "ago", "from now"), r.ChangeCount,
			humanize.Bytes(uint64(len(r.Original))), report.Truncate(r.Source))
	}
	return nil
}

func printRunChanges(ctx context.Context, h *history.DB, runID string, w io.Writer) error {
	changes, err := h.Changes(ctx, runID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-20s %-30s %-30s\n", "CATEGORY", "BEFORE", "AFTER")
	for _, c := range changes {
		fmt.Fprintf(w, "%-20s %-30s %-30s\n", c.Category, report.Truncate(c.Before), report.Truncate(c.After))
	}
	return nil
}
