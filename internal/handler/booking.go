package handler

import (
	"net/http"

	"github.com/jayxvj/k2k-world/internal/service"
)

// handleSubmitBooking handles POST /bookings (public).
// Bookings only trigger the internal notification email; nothing is stored,
// so a failed send is a failed submission (no degrade policy to fall back on).
func (s *Server) handleSubmitBooking(w http.ResponseWriter, r *http.Request) {
	var in service.BookingInput
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.bookings.Submit(r.Context(), in); err != nil {
		respondServiceError(w, r, err, "booking")
		return
	}
	respondMessage(w, http.StatusCreated,
		"booking request received; our team will contact you within 24 hours")
}
