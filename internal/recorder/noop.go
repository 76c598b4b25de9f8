package recorder

// NoopRecorder discards all records. Used when no database is configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that does nothing.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (*NoopRecorder) RecordCycle(*CycleRecord) error { return nil }

func (*NoopRecorder) Close() error { return nil }
