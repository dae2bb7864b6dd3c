package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"stencil/internal/assembler"
	"stencil/internal/gateway/entity"
	"stencil/internal/gateway/repository/history"
	"stencil/internal/gateway/repository/project"
)

type exportRequest struct {
	IncludeEnvExample *bool `json:"includeEnvExample"`
	IncludeDocs       *bool `json:"includeDocs"`
}

// HandleExport assembles a project into a zip archive and streams it back.
// The caller must own the project; a mismatch looks the same as a missing id.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
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

	req := exportRequest{}
	if r.ContentLength != 0 {
		if !decodeBody(w, r, &req) {
			return
		}
	}

	rec, err := h.projects.Get(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "project not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", "load project failed")
		return
	}
	if rec.OwnerID != userID {
		writeError(w, http.StatusNotFound, "not_found", "project not found")
		return
	}

	opts := assembler.Options{
		IncludeEnvExample: true,
		IncludeDocs:       true,
		RequestedBy:       userID.String(),
		Now:               time.Now().UTC(),
	}
	if req.IncludeEnvExample != nil {
		opts.IncludeEnvExample = *req.IncludeEnvExample
	}
	if req.IncludeDocs != nil {
		opts.IncludeDocs = *req.IncludeDocs
	}

	// The audit record is written before assembly runs, so a failed build
	// still leaves a trace that the export was attempted. The file count is
	// filled in once the archive exists.
	var historyID int64
	if h.history != nil {
		id, histErr := h.history.Append(r.Context(), history.Record{
			ProjectID: rec.ID,
			UserID:    userID,
			Filename:  assembler.Slugify(rec.Name) + ".zip",
			CreatedAt: opts.Now,
		})
		if histErr != nil {
			log.Printf("export: history append for %s: %v", rec.ID, histErr)
		} else {
			historyID = id
		}
	}

	arch, err := assembler.Assemble(toAssemblerProject(rec), opts, h.reg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "assemble project failed")
		return
	}

	if h.history != nil && historyID != 0 {
		if histErr := h.history.UpdateFiles(r.Context(), historyID, arch.FileCount); histErr != nil {
			log.Printf("export: history update for %s: %v", rec.ID, histErr)
		}
	}

	if h.copies != nil {
		if copyErr := h.copies.Put(r.Context(), rec.ID, arch.Filename, arch.Data); copyErr != nil {
			log.Printf("export: s3 copy for %s: %v", rec.ID, copyErr)
		}
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", arch.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(arch.Data)
}

// HandleExportHistory lists past exports of a project the caller owns.
func (h *Handler) HandleExportHistory(w http.ResponseWriter, r *http.Request) {
	userID := entity.NormalizeUserID(r.Header.Get("X-User-Id"))
	if userID.IsZero() {
		writeError(w, http.StatusUnauthorized, "unauthorized", "X-User-Id header is required")
		return
	}

	projectID := strings.TrimSpace(r.PathValue("id"))
	rec, err := h.projects.Get(r.Context(), projectID)
	if err != nil || rec.OwnerID != userID {
		writeError(w, http.StatusNotFound, "not_found", "project not found")
		return
	}

	var records []history.Record
	if h.history != nil {
		records, err = h.history.List(r.Context(), projectID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "list history failed")
			return
		}
	}
	if records == nil {
		records = []history.Record{}
	}

	out := map[string]any{"exports": records}
	if links, ok := h.listCopies(r.Context(), projectID); ok {
		out["copies"] = links
	}
	writeJSON(w, http.StatusOK, out)
}

type copyLink struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
}

// listCopies resolves the archives mirrored to object storage, each with a
// presigned download link. Best-effort: lookup failures are logged, and the
// section is simply absent when no copy store is configured.
func (h *Handler) listCopies(ctx context.Context, projectID string) ([]copyLink, bool) {
	if h.copies == nil {
		return nil, false
	}
	names, err := h.copies.List(ctx, projectID)
	if err != nil {
		log.Printf("export history: list copies for %s: %v", projectID, err)
		return nil, false
	}
	links := make([]copyLink, 0, len(names))
	for _, name := range names {
		link := copyLink{Filename: name}
		if u, urlErr := h.copies.GetURL(ctx, projectID, name); urlErr == nil {
			link.URL = u
		} else {
			log.Printf("export history: presign %s/%s: %v", projectID, name, urlErr)
		}
		links = append(links, link)
	}
	return links, true
}

func toAssemblerProject(rec project.Record) assembler.Project {
	pages := make([]assembler.Page, 0, len(rec.Pages))
	for _, pg := range rec.Pages {
		pages = append(pages, assembler.Page{Name: pg.Name, Path: pg.Path, Protected: pg.Protected})
	}
	return assembler.Project{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Template:    rec.Template,
		Selection:   rec.Selection,
		Pages:       pages,
		Vision:      rec.Vision,
	}
}
