package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists cycle outcomes to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better read concurrency while the advisor writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS cycle_runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at     INTEGER NOT NULL,
		duration_ms    INTEGER,
		ticker_count   INTEGER,
		failed_tickers TEXT,
		headline_count INTEGER,
		short_circuit  INTEGER,
		email_sent     INTEGER,
		error          TEXT
	)`)
	return err
}

// RecordCycle inserts one cycle outcome row.
func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO cycle_runs
			(started_at, duration_ms, ticker_count, failed_tickers, headline_count, short_circuit, email_sent, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Unix(),
		rec.Duration.Milliseconds(),
		rec.TickerCount,
		strings.Join(rec.FailedTickers, ","),
		rec.HeadlineCount,
		boolToInt(rec.ShortCircuit),
		boolToInt(rec.EmailSent),
		rec.Err,
	)
	if err != nil {
		return fmt.Errorf("insert cycle run: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
