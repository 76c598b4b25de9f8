package recorder

import "time"

// CycleRecord captures the outcome of one report cycle. Metadata only; the
// report text itself lives in the chat history.
type CycleRecord struct {
	StartedAt     time.Time
	Duration      time.Duration
	TickerCount   int
	FailedTickers []string
	HeadlineCount int
	ShortCircuit  bool
	EmailSent     bool
	Err           string
}

// Recorder persists cycle outcomes for diagnostics.
type Recorder interface {
	RecordCycle(rec *CycleRecord) error
	Close() error
}
