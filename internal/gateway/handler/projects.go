package handler

import (
	"net/http"
	"strings"
	"time"

	"stencil/internal/gateway/entity"
	"stencil/internal/gateway/repository/project"
	"stencil/internal/registry"
)

type upsertProjectRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Template    string             `json:"template"`
	Selection   registry.Selection `json:"selection"`
	Pages       []project.Page     `json:"pages"`
	Vision      string             `json:"vision"`
}

// HandleUpsertProject creates or replaces a project owned by the caller.
func (h *Handler) HandleUpsertProject(w http.ResponseWriter, r *http.Request) {
	userID := entity.NormalizeUserID(r.Header.Get("X-User-Id"))
	if userID.IsZero() {
		writeError(w, http.StatusUnauthorized, "unauthorized", "X-User-Id header is required")
		return
	}
	projectID := strings.TrimSpace(r.PathValue("id"))
	if projectID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "project id is required")
		return
	}

	var req upsertProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "project name is required")
		return
	}

	existing, err := h.projects.Get(r.Context(), projectID)
	if err == nil && existing.OwnerID != userID {
		writeError(w, http.StatusNotFound, "not_found", "project not found")
		return
	}
	createdAt := existing.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	rec := project.Record{
		ID:          projectID,
		OwnerID:     userID,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Template:    strings.ToLower(strings.TrimSpace(req.Template)),
		Selection:   req.Selection,
		Pages:       req.Pages,
		Vision:      req.Vision,
		CreatedAt:   createdAt,
	}
	if err := h.projects.Put(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "store project failed")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// HandleListProjects lists the caller's projects.
func (h *Handler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	userID := entity.NormalizeUserID(r.Header.Get("X-User-Id"))
	if userID.IsZero() {
		writeError(w, http.StatusUnauthorized, "unauthorized", "X-User-Id header is required")
		return
	}
	records, err := h.projects.ListByOwner(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "list projects failed")
		return
	}
	if records == nil {
		records = []project.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"projects": records})
}
