package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"StockAdvisor/internal/model"
)

// Window is a bounded, file-backed conversational history. At rest it never
// holds more than Max messages; older entries are dropped from the front.
// Save fully replaces the persisted state with the current sequence.
type Window struct {
	path     string
	max      int
	messages []model.ChatMessage
}

// NewWindow creates a Window persisted at path, bounded to max messages.
func NewWindow(path string, max int) *Window {
	if max <= 0 {
		max = 1
	}
	return &Window{path: path, max: max}
}

// Load reads the persisted history, replacing the in-memory sequence.
// A missing or unreadable file loads as an empty history.
func (w *Window) Load() []model.ChatMessage {
	w.messages = nil
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read chat history: %v, starting fresh", err)
		}
		return nil
	}
	if err := json.Unmarshal(data, &w.messages); err != nil {
		log.Printf("[WARN] parse chat history: %v, starting fresh", err)
		w.messages = nil
	}
	return w.Messages()
}

// Append adds one message to the in-memory sequence.
func (w *Window) Append(msg model.ChatMessage) {
	w.messages = append(w.messages, msg)
}

// Trim drops the oldest messages until at most max remain.
func (w *Window) Trim() {
	if len(w.messages) > w.max {
		w.messages = w.messages[len(w.messages)-w.max:]
	}
}

// Messages returns a copy of the current in-memory sequence.
func (w *Window) Messages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(w.messages))
	copy(out, w.messages)
	return out
}

// Save trims and persists the sequence, fully replacing the previous file.
// The data is written to a temp file and renamed into place, so a failure
// mid-save never leaves a partial history behind.
func (w *Window) Save() error {
	w.Trim()
	data, err := json.MarshalIndent(w.messages, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal chat history: %w", err)
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".chat_history-*.json")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write chat history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp history file: %w", err)
	}
	if err := os.Rename(tmp.Name(), w.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace chat history: %w", err)
	}
	return nil
}
