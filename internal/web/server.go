package web

import (
	"html/template"
	"log"
	"net/http"
	"strings"
)

// Store persists the favorite-ticker list edited through the form.
type Store interface {
	Load() []string
	Save(tickers []string) error
}

const pageHTML = `<!DOCTYPE html>
<html>
<head><title>Favorite Stocks</title></head>
<body>
    <h2>Favorite Stocks</h2>
    <form method="POST">
        <textarea name="stocks" rows="10" cols="30">{{.}}</textarea><br>
        <button type="submit">Update</button>
    </form>
</body>
</html>
`

// Server serves the favorites edit form.
type Server struct {
	store Store
	tmpl  *template.Template
}

// NewServer creates the form handler backed by the given store.
func NewServer(store Store) *Server {
	return &Server{
		store: store,
		tmpl:  template.Must(template.New("favorites").Parse(pageHTML)),
	}
}

// ServeHTTP handles GET (render the current list) and POST (replace the
// stored list with the normalized submitted lines, order preserved).
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		tickers := ParseTickers(r.FormValue("stocks"))
		if err := s.store.Save(tickers); err != nil {
			log.Printf("[ERROR] save favorites: %v", err)
			http.Error(w, "failed to save favorites", http.StatusInternalServerError)
			return
		}
		log.Printf("[INFO] favorites updated: %d tickers", len(tickers))
	}
	current := s.store.Load()
	if err := s.tmpl.Execute(w, strings.Join(current, "\n")); err != nil {
		log.Printf("[ERROR] render favorites form: %v", err)
	}
}

// ParseTickers normalizes submitted textarea content: one ticker per line,
// trimmed, uppercased, blank lines dropped, order preserved.
func ParseTickers(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		t := strings.ToUpper(strings.TrimSpace(line))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
