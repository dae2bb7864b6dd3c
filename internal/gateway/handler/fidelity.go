package handler

import (
	"net/http"
	"strings"

	"stencil/internal/fidelity"
)

type fidelityRequest struct {
	Config fidelity.Config `json:"config"`
	Root   string          `json:"root"`
}

// HandleFidelityScore compares a generated project tree on disk against its
// configuration and returns per-axis scores.
func (h *Handler) HandleFidelityScore(w http.ResponseWriter, r *http.Request) {
	var req fidelityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Root) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "root directory is required")
		return
	}
	writeJSON(w, http.StatusOK, fidelity.Evaluate(req.Config, req.Root, h.reg))
}

// HandleFidelityReport renders the same evaluation as markdown.
func (h *Handler) HandleFidelityReport(w http.ResponseWriter, r *http.Request) {
	var req fidelityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Root) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "root directory is required")
		return
	}
	score := fidelity.Evaluate(req.Config, req.Root, h.reg)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(fidelity.MarkdownReport(score)))
}
