// Package handler implements the HTTP layer of the travel API: chi routes,
// request decoding, and the response envelope shared by every endpoint.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jayxvj/k2k-world/internal/domain"
)

// envelope is the uniform response body:
// {success, data?, error?, message?, warnings?, details?}.
type envelope struct {
	Success  bool              `json:"success"`
	Data     any               `json:"data,omitempty"`
	Error    string            `json:"error,omitempty"`
	Message  string            `json:"message,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Error: message})
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Internal detail never reaches the client: unexpected errors get a generic
// message and a logged detail, per the propagation policy.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, fallback+" not found")
	case errors.Is(err, domain.ErrConflict):
		respondError(w, http.StatusConflict, "slug is already in use")
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrAuthNotConfigured):
		respondError(w, http.StatusServiceUnavailable,
			"admin sign-in is not configured; set ADMIN_EMAIL, ADMIN_PASSWORD_HASH, and JWT_SECRET")
	case errors.Is(err, domain.ErrMailNotConfigured):
		slog.ErrorContext(r.Context(), "mail transport not configured", "error", err)
		respondError(w, http.StatusInternalServerError,
			"email service is not configured; please contact us directly")
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to "+fallbackVerb(fallback))
	}
}

// fallbackVerb turns the resource noun passed to respondServiceError into a
// short generic action for the 500 message, e.g. "process destination".
func fallbackVerb(noun string) string {
	return "process " + noun
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "service.SubmissionService.SubmitContact: validation error: name is required"
// → "name is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return "invalid request"
}

// decodeJSON reads the request body into dst, rejecting unknown garbage with
// a plain error the caller maps to 400. Body size is already capped by the
// max-body-size middleware.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("malformed JSON body")
	}
	return nil
}
