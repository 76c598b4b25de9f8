package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"StockAdvisor/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Favorites) {
	t.Helper()
	s := store.NewFavorites(filepath.Join(t.TempDir(), "favorite_stocks.json"))
	return NewServer(s), s
}

func TestParseTickers(t *testing.T) {
	got := ParseTickers("aapl\nMSFT\n\ntsla ")
	want := []string{"AAPL", "MSFT", "TSLA"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTickers = %v, want %v", got, want)
	}
}

func TestParseTickers_AllBlank(t *testing.T) {
	if got := ParseTickers("\n  \n\t\n"); len(got) != 0 {
		t.Errorf("ParseTickers = %v, want empty", got)
	}
}

func TestForm_RoundTrip(t *testing.T) {
	srv, favorites := newTestServer(t)

	form := url.Values{"stocks": {"aapl\nMSFT\n\ntsla "}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d", rec.Code)
	}
	want := []string{"AAPL", "MSFT", "TSLA"}
	if got := favorites.Load(); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted favorites = %v, want %v", got, want)
	}

	// A subsequent GET renders exactly those lines in the textarea.
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), ">AAPL\nMSFT\nTSLA</textarea>") {
		t.Errorf("GET body missing rendered list:\n%s", body)
	}
}

func TestForm_GetEmptyStore(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Result().Body)
	if !strings.Contains(string(body), "<textarea") {
		t.Errorf("GET body missing form:\n%s", body)
	}
}
