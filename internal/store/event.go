package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own table, so per-table IDs
// can't order submissions against telemetry or LLM calls. The counter gives
// every event a single increasing sequence regardless of type.
//
// It uses raw SQL outside ent because ent has no database-level counter.
// The statements are limited to what SQLite, PostgreSQL and MySQL share:
// the increment and the read run in one transaction, which holds the row
// lock between them on the server databases.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY,
		next_val BIGINT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM global_sequence WHERE id = 1`).Scan(&n); err != nil {
		return nil, fmt.Errorf("read sequence: %w", err)
	}
	if n == 0 {
		if _, err := db.Exec(`INSERT INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
			return nil, fmt.Errorf("seed sequence: %w", err)
		}
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1`); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT next_val - 1 FROM global_sequence WHERE id = 1`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
