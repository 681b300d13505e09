// Package history persists resolved rounds to SQLite for later inspection.
//
// This is an audit trail for tooling, not a save file: the engine never
// reads it back and a run cannot be resumed from it.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS round_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	round_id      TEXT NOT NULL UNIQUE,
	start_code    TEXT NOT NULL,
	goal_code     TEXT NOT NULL,
	outcome       TEXT NOT NULL,
	moves         INTEGER NOT NULL,
	optimal       INTEGER,
	hints_used    INTEGER NOT NULL DEFAULT 0,
	gained        INTEGER NOT NULL DEFAULT 0,
	balance_after INTEGER NOT NULL DEFAULT 0,
	streak        INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_round_log_run ON round_log(run_id);
`

// #endregion schema

// #region types

// RoundRecord is one row of the round log. Optimal is nil when the static
// optimal distance was unknown at resolution.
type RoundRecord struct {
	RunID        string
	RoundID      string
	StartCode    string
	GoalCode     string
	Outcome      string
	Moves        int
	Optimal      *int
	HintsUsed    int
	Gained       int
	BalanceAfter int
	Streak       int
	CreatedAt    time.Time
}

// Recorder appends resolved rounds to the round_log table.
type Recorder struct {
	db *sql.DB
}

// #endregion types

// #region constructors

// Open opens (or creates) a history database at dbPath.
func Open(dbPath string) (*Recorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	return attach(db)
}

// NewRecorder creates the round_log table on an existing connection.
func NewRecorder(db *sql.DB) (*Recorder, error) {
	return attach(db)
}

func attach(db *sql.DB) (*Recorder, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Close closes the underlying database connection.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// #endregion constructors

// #region record

// Record appends one resolved round. A zero CreatedAt defaults to now.
func (r *Recorder) Record(rec RoundRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	var optimal interface{}
	if rec.Optimal != nil {
		optimal = *rec.Optimal
	}
	_, err := r.db.Exec(
		`INSERT INTO round_log (run_id, round_id, start_code, goal_code, outcome, moves, optimal, hints_used, gained, balance_after, streak, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.RoundID, rec.StartCode, rec.GoalCode, rec.Outcome,
		rec.Moves, optimal, rec.HintsUsed, rec.Gained, rec.BalanceAfter,
		rec.Streak, rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	return nil
}

// #endregion record

// #region queries

// Recent returns the most recent rounds, newest first.
func (r *Recorder) Recent(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(
		`SELECT run_id, round_id, start_code, goal_code, outcome, moves, optimal, hints_used, gained, balance_after, streak, created_at
		 FROM round_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent rounds: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

// ForRun returns every logged round of one run, oldest first.
func (r *Recorder) ForRun(runID string) ([]RoundRecord, error) {
	rows, err := r.db.Query(
		`SELECT run_id, round_id, start_code, goal_code, outcome, moves, optimal, hints_used, gained, balance_after, streak, created_at
		 FROM round_log WHERE run_id = ? ORDER BY id ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("rounds for run: %w", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]RoundRecord, error) {
	var out []RoundRecord
	for rows.Next() {
		var rec RoundRecord
		var optimal sql.NullInt64
		var createdAt string
		if err := rows.Scan(&rec.RunID, &rec.RoundID, &rec.StartCode, &rec.GoalCode,
			&rec.Outcome, &rec.Moves, &optimal, &rec.HintsUsed, &rec.Gained,
			&rec.BalanceAfter, &rec.Streak, &createdAt); err != nil {
			return nil, err
		}
		if optimal.Valid {
			v := int(optimal.Int64)
			rec.Optimal = &v
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion queries
