package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"stencil/internal/gateway/repository/exportcopy"
	"stencil/internal/gateway/repository/history"
	"stencil/internal/gateway/repository/project"
	"stencil/internal/registry"
)

// Handler serves the gateway HTTP API. Copies is optional; when nil the
// export path skips the object-storage mirror.
type Handler struct {
	projects project.Repository
	history  history.Store
	copies   *exportcopy.S3Store
	reg      *registry.Registry
}

func New(projects project.Repository, hist history.Store, copies *exportcopy.S3Store) *Handler {
	return &Handler{
		projects: projects,
		history:  hist,
		copies:   copies,
		reg:      registry.Default(),
	}
}

func (h *Handler) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handler: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"code": code, "message": message})
}

// decodeBody decodes a JSON request body into v, reporting a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}
