package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/propsbot/props/internal/ledger"
)

//go:embed templates/*
var templatesFS embed.FS

// Handler renders the props leaderboard pages
type Handler struct {
	store     *ledger.Store
	templates *template.Template
}

// NewHandler creates a new web handler
func NewHandler(store *ledger.Store) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{
		store:     store,
		templates: tmpl,
	}, nil
}

// RegisterRoutes registers the leaderboard routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/props", h.handleLeaderboard).Methods("GET")
	r.HandleFunc("/props/{target}", h.handleTarget).Methods("GET")
}

// handleLeaderboard renders the leaderboard page
func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Entries []ledger.Entry
	}{
		Entries: h.store.Leaderboard(),
	}

	if err := h.templates.ExecuteTemplate(w, "leaderboard.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTarget renders a single target's props and recent history
func (h *Handler) handleTarget(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	props := h.store.Props(target)
	total := 0
	for _, value := range props {
		total += value
	}

	data := struct {
		Target  string
		Props   map[string]int
		Total   int
		History []ledger.Event
	}{
		Target:  target,
		Props:   props,
		Total:   total,
		History: h.store.History(target),
	}

	if err := h.templates.ExecuteTemplate(w, "target.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
