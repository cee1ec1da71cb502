package bot

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

type leaderboardEntry struct {
	Target string         `json:"target"`
	Props  map[string]int `json:"props"`
	Total  int            `json:"total"`
}

// HandleListProps serves the full leaderboard as JSON.
func (h *Handler) HandleListProps(w http.ResponseWriter, r *http.Request) {
	entries := h.store.Leaderboard()

	out := make([]leaderboardEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, leaderboardEntry{
			Target: entry.Target,
			Props:  entry.Props,
			Total:  entry.Total,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("Failed to encode leaderboard: %v", err)
	}
}

// HandleGetProps serves a single target's props as JSON. Targets never
// mutated read as an empty prop set with total 0.
func (h *Handler) HandleGetProps(w http.ResponseWriter, r *http.Request) {
	target := mux.Vars(r)["target"]

	props := h.store.Props(target)
	total := 0
	for _, value := range props {
		total += value
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(leaderboardEntry{
		Target: target,
		Props:  props,
		Total:  total,
	}); err != nil {
		log.Printf("Failed to encode props for %s: %v", target, err)
	}
}
