package handler

import (
	"net/http"

	"github.com/jayxvj/k2k-world/spec"
)

// handleHealth handles GET /healthz.
// It returns HTTP 200 with {"success":true,"message":"ok"} when the server is running.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondMessage(w, http.StatusOK, "ok")
}

// handleOpenAPI serves the embedded OpenAPI document so the contract and the
// running code always ship together.
func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
