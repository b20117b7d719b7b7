package handler

import (
	"net/http"

	"github.com/jayxvj/k2k-world/internal/service"
)

// handleSubmitContact handles POST /contacts (public).
// Same submission state machine as custom requests.
func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contact, result, err := s.submissions.SubmitContact(r.Context(), in)
	if err != nil {
		respondServiceError(w, r, err, "contact")
		return
	}

	var data any
	if result.StoreErr == nil {
		data = contact
	}
	respondSubmission(w, data, result,
		"message sent successfully; we will get back to you soon")
}

// handleListContacts handles GET /contacts (admin).
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.leads.ListContacts(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "contacts")
		return
	}
	respondData(w, http.StatusOK, contacts)
}

// handleContactStatus handles PATCH /contacts/{id}/status (admin).
func (s *Server) handleContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.leads.SetContactStatus(r.Context(), id, req.Status); err != nil {
		respondServiceError(w, r, err, "contact")
		return
	}
	respondMessage(w, http.StatusOK, "status updated")
}
