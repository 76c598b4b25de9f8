package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Favorites persists the ordered favorite-ticker list as a JSON file.
// The report pipeline only reads it; the web form reads and writes it.
type Favorites struct {
	path string
}

// NewFavorites creates a favorites store at path.
func NewFavorites(path string) *Favorites {
	return &Favorites{path: path}
}

// Load returns the stored ticker list. A missing or unreadable file is an
// empty list.
func (s *Favorites) Load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read favorites: %v, treating as empty", err)
		}
		return nil
	}
	var tickers []string
	if err := json.Unmarshal(data, &tickers); err != nil {
		log.Printf("[WARN] parse favorites: %v, treating as empty", err)
		return nil
	}
	return tickers
}

// Save replaces the stored list. The write goes through a temp file and
// rename so readers never observe a partial list.
func (s *Favorites) Save(tickers []string) error {
	data, err := json.Marshal(tickers)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("create temp favorites file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp favorites file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace favorites: %w", err)
	}
	return nil
}
