// CLAUDE:SUMMARY SQLite journal of correction runs (runs + changes tables) used by the CLI and the HTTP API.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/corrector-es/pkg/corrector"
)

// ErrRunNotFound is returned by Changes for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// Run is one journaled correction.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	Original    string    `json:"original"`
	Corrected   string    `json:"corrected"`
	ChangeCount int       `json:"change_count"`
}

// DB manages the runs and changes tables.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite journal at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	source       TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	original     TEXT NOT NULL,
	corrected    TEXT NOT NULL,
	change_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
CREATE TABLE IF NOT EXISTS changes (
	run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq      INTEGER NOT NULL,
	category TEXT NOT NULL,
	before   TEXT NOT NULL,
	after    TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history tables: %w", err)
	}

	return &DB{db: db, now: time.Now}, nil
}

// Close ferme la connexion SQLite.
func (h *DB) Close() error {
	return h.db.Close()
}

// Record stores a run and its change records in one transaction and
// returns the new run ID.
func (h *DB) Record(ctx context.Context, source string, res corrector.Result) (string, error) {
	id := uuid.NewString()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, created_at, original, corrected, change_count) VALUES (?, ?, ?, ?, ?, ?)`,
		id, source, h.now().UnixMilli(), res.Original, res.Corrected, len(res.Changes),
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO changes (run_id, seq, category, before, after) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare changes: %w", err)
	}
	defer stmt.Close()
	for i, c := range res.Changes {
		if _, err := stmt.ExecContext(ctx, id, i, string(c.Category), c.Before, c.After); err != nil {
			return "", fmt.Errorf("insert change %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit record: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. limit <= 0 means 20.
func (h *DB) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx, `SELECT id, source, created_at, original, corrected, change_count
		FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var r Run
		var created int64
		if err := rows.Scan(&r.ID, &r.Source, &created, &r.Original, &r.Corrected, &r.ChangeCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.UnixMilli(created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Changes returns the change records of a run in their original order.
func (h *DB) Changes(ctx context.Context, runID string) ([]corrector.Change, error) {
	var n int
	if err := h.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM runs WHERE id = ?`, runID).Scan(&n); err != nil {
		return nil, fmt.Errorf("lookup run %s: %w", runID, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := h.db.QueryContext(ctx,
		`SELECT category, before, after FROM changes WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("list changes for %s: %w", runID, err)
	}
	defer rows.Close()

	changes := []corrector.Change{}
	for rows.Next() {
		var c corrector.Change
		var cat string
		if err := rows.Scan(&cat, &c.Before, &c.After); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		c.Category = corrector.Category(cat)
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
