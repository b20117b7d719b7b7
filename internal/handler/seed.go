package handler

import (
	"fmt"
	"net/http"
)

// seedRequest carries the static authorization secret for POST /seed.
type seedRequest struct {
	Secret string `json:"secret"`
}

// handleSeed handles POST /seed: bulk-insert of the fixed sample catalog.
// A wrong or missing secret gets 401 with zero writes; per-item failures
// (typically already-seeded slugs) are reported in the results.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	var req seedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, seeded, err := s.catalog.Seed(r.Context(), req.Secret)
	if err != nil {
		respondServiceError(w, r, err, "seed")
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("seeded %d destinations", seeded),
		Data:    results,
	})
}
