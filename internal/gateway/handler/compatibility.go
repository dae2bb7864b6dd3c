package handler

import (
	"net/http"

	"stencil/internal/registry"
	"stencil/internal/resolver"
)

type compatibilityRequest struct {
	Selection registry.Selection `json:"selection"`
}

// HandleCompatibilityCheck resolves a selection into conflicts, warnings and
// suggestions. A malformed selection (duplicate category, non-object) is a
// validation error, not a conflict.
func (h *Handler) HandleCompatibilityCheck(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := resolver.Resolve(h.reg, req.Selection)
	writeJSON(w, http.StatusOK, struct {
		resolver.Result
		EnvVars []string `json:"envVars"`
	}{
		Result:  res,
		EnvVars: resolver.EnvVars(h.reg, req.Selection),
	})
}

// HandleCompatibilityReport renders the same resolution as markdown.
func (h *Handler) HandleCompatibilityReport(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := resolver.Resolve(h.reg, req.Selection)
	envVars := resolver.EnvVars(h.reg, req.Selection)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(resolver.MarkdownReport(res, envVars)))
}
