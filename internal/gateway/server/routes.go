package server

import (
	"net/http"

	"stencil/internal/gateway/handler"
	"stencil/internal/gateway/middleware"
)

func NewMux(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/compatibility/check", h.HandleCompatibilityCheck)
	mux.HandleFunc("POST /v1/compatibility/report", h.HandleCompatibilityReport)
	mux.HandleFunc("GET /v1/projects", h.HandleListProjects)
	mux.HandleFunc("PUT /v1/projects/{id}", h.HandleUpsertProject)
	mux.HandleFunc("POST /v1/projects/{id}/export", h.HandleExport)
	mux.HandleFunc("GET /v1/projects/{id}/exports", h.HandleExportHistory)
	mux.HandleFunc("POST /v1/fidelity/score", h.HandleFidelityScore)
	mux.HandleFunc("POST /v1/fidelity/report", h.HandleFidelityReport)
	mux.HandleFunc("GET /healthz", h.HandleHealthz)

	return middleware.CORS(mux)
}
