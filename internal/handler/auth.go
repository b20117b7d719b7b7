package handler

import (
	"net/http"

	"github.com/jayxvj/k2k-world/internal/middleware"
)

// loginRequest is the POST /auth/login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin handles POST /auth/login (public).
// Bad credentials get 401; a missing admin configuration gets 503 with an
// operator-facing message — the two must never be conflated, since one needs
// a password retry and the other an environment fix.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err, "sign-in")
		return
	}
	respondData(w, http.StatusOK, map[string]string{"token": token})
}

// handleLogout handles POST /auth/logout (admin).
// Sessions are stateless bearer tokens, so logout is a client-side discard;
// the endpoint exists so the admin shell has something to call.
func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	respondMessage(w, http.StatusOK, "signed out")
}

// handleMe handles GET /auth/me (admin): the admin shell uses it to restore
// its session state on mount.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, map[string]string{
		"email": middleware.AdminEmail(r.Context()),
	})
}
