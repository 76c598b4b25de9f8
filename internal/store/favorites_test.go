package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_MissingFile(t *testing.T) {
	s := NewFavorites(filepath.Join(t.TempDir(), "favorite_stocks.json"))
	if got := s.Load(); len(got) != 0 {
		t.Errorf("expected empty list for missing file, got %v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := NewFavorites(filepath.Join(t.TempDir(), "favorite_stocks.json"))
	want := []string{"AAPL", "MSFT", "TSLA"}

	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Load(); !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v (order preserved)", got, want)
	}
}

func TestSave_ReplacesList(t *testing.T) {
	s := NewFavorites(filepath.Join(t.TempDir(), "favorite_stocks.json"))
	if err := s.Save([]string{"AAPL", "MSFT"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save([]string{"NVDA"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Load(); !reflect.DeepEqual(got, []string{"NVDA"}) {
		t.Errorf("Load = %v, want [NVDA]", got)
	}
}
