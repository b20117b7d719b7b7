package handler

import (
	"net/http"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/service"
)

// handleSubmitCustomRequest handles POST /custom-requests (public).
// Validation failures return 400 with no side effects; otherwise the
// degrade policy in respondSubmission decides the response.
func (s *Server) handleSubmitCustomRequest(w http.ResponseWriter, r *http.Request) {
	var in service.CustomRequestInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, result, err := s.submissions.SubmitCustomRequest(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err, "custom request")
		return
	}

	var data any
	if result.StoreErr == nil {
		data = lead
	}
	respondSubmission(w, data, result,
		"request submitted successfully; check your email for confirmation")
}

// handleListCustomRequests handles GET /custom-requests (admin).
func (s *Server) handleListCustomRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.leads.ListCustomRequests(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "custom requests")
		return
	}
	respondData(w, http.StatusOK, requests)
}

// statusRequest is the PATCH .../status body.
type statusRequest struct {
	Status domain.Status `json:"status"`
}

// handleCustomRequestStatus handles PATCH /custom-requests/{id}/status (admin).
// Values outside {new, in_progress, closed} get 400 and leave the record
// untouched.
func (s *Server) handleCustomRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.leads.SetCustomRequestStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, r, err, "custom request")
		return
	}
	respondMessage(w, http.StatusOK, "status updated")
}
