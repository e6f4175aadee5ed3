// Package storage keeps a ledger of finished runs in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
// Nothing is written to disk: the ledger lives as long as the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records finished runs for the current session.
type Ledger struct {
	db  *sql.DB
	now func() time.Time
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Score      int
	Coins      int
	Distance   int
	Frames     int
	Seed       int64
	FinishedAt time.Time
}

// Stats aggregates every run in the ledger.
type Stats struct {
	Runs            int
	BestScore       int
	AvgScore        float64
	TotalCoins      int
	LongestDistance int
	TotalFrames     int64
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db, now: time.Now}

	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			finished_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, id ASC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection and discards all runs.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// FinishedAt defaults to the current time when zero.
func (l *Ledger) SaveRun(r RunRecord) (int64, error) {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = l.now()
	}

	result, err := l.db.Exec(
		`INSERT INTO runs (score, coins, distance, frames, seed, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, r.Coins, r.Distance, r.Frames, r.Seed, r.FinishedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the best runs, highest score first. Ties keep the order
// in which the runs finished.
func (l *Ledger) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return l.queryRuns(
		`SELECT id, score, coins, distance, frames, seed, finished_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns returns the latest runs, newest first.
func (l *Ledger) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return l.queryRuns(
		`SELECT id, score, coins, distance, frames, seed, finished_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (l *Ledger) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var finishedAt int64
		if err := rows.Scan(&r.ID, &r.Score, &r.Coins, &r.Distance, &r.Frames, &r.Seed, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinishedAt = time.UnixMilli(finishedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest recorded score, or 0 when the ledger is empty.
func (l *Ledger) BestScore() (int, error) {
	var score sql.NullInt64
	err := l.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates all recorded runs.
func (l *Ledger) Stats() (Stats, error) {
	var s Stats
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(coins), 0), COALESCE(MAX(distance), 0), COALESCE(SUM(frames), 0)
		 FROM runs`,
	).Scan(&s.Runs, &s.BestScore, &s.AvgScore, &s.TotalCoins, &s.LongestDistance, &s.TotalFrames)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return s, nil
}

// Clear deletes every run.
func (l *Ledger) Clear() error {
	if _, err := l.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
