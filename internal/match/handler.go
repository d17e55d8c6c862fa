package match

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{
		service: s,
	}
}

// State serves the latest snapshot of the running match.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("matchId"); id != "" && id != h.service.ID {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.service.Snapshot()); err != nil {
		log.Printf("Failed to encode match state: %v", err)
	}
}
