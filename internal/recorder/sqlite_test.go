package recorder

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRecorder_RecordCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	rec := &CycleRecord{
		StartedAt:     time.Now(),
		Duration:      3 * time.Second,
		TickerCount:   3,
		FailedTickers: []string{"MSFT"},
		HeadlineCount: 12,
		EmailSent:     true,
	}
	if err := r.RecordCycle(rec); err != nil {
		t.Fatalf("record cycle: %v", err)
	}

	var count int
	var failed string
	row := r.db.QueryRow("SELECT COUNT(*), MAX(failed_tickers) FROM cycle_runs")
	if err := row.Scan(&count, &failed); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
	if failed != "MSFT" {
		t.Errorf("failed_tickers = %q, want MSFT", failed)
	}
}
