package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stencil/internal/gateway/entity"
	"stencil/internal/gateway/handler"
	"stencil/internal/gateway/repository/history"
	"stencil/internal/gateway/repository/project"
	"stencil/internal/gateway/server"
	"stencil/internal/registry"
)

func newTestServer(t *testing.T) (*httptest.Server, *project.Store, *history.MemoryStore) {
	t.Helper()
	projects := project.New(filepath.Join(t.TempDir(), "projects.json"))
	hist := history.NewMemory()
	srv := httptest.NewServer(server.NewMux(handler.New(projects, hist, nil)))
	t.Cleanup(srv.Close)
	return srv, projects, hist
}

func seedProject(t *testing.T, projects *project.Store, owner string) project.Record {
	t.Helper()
	rec := project.Record{
		ID:        "proj-1",
		OwnerID:   entity.NormalizeUserID(owner),
		Name:      "Seeded App",
		Template:  "saas",
		Selection: registry.NewSelection("auth", "supabase", "payments", "stripe"),
		Pages:     []project.Page{{Name: "Dashboard", Path: "/dashboard", Protected: true}},
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}
	if err := projects.Put(context.Background(), rec); err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return rec
}

func doJSON(t *testing.T, method, url, userID string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCompatibilityCheck(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/v1/compatibility/check", "", map[string]any{
		"selection": map[string]string{"auth": "supabase", "database": "supabase"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Compatible bool     `json:"compatible"`
		EnvVars    []string `json:"envVars"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Compatible {
		t.Fatal("selection should be compatible")
	}
	if len(out.EnvVars) == 0 {
		t.Fatal("expected env vars in response")
	}
}

func TestCompatibilityCheckDuplicateCategory(t *testing.T) {
	srv, _, _ := newTestServer(t)
	req, err := http.NewRequest("POST", srv.URL+"/v1/compatibility/check",
		strings.NewReader(`{"selection":{"auth":"supabase","auth":"clerk"}}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCompatibilityReportIsMarkdown(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/v1/compatibility/report", "", map[string]any{
		"selection": map[string]string{"auth": "supabase", "database": "planetscale"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestExportRequiresUser(t *testing.T) {
	srv, projects, _ := newTestServer(t)
	seedProject(t, projects, "alice")
	resp := doJSON(t, "POST", srv.URL+"/v1/projects/proj-1/export", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestExportUnknownProject(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/v1/projects/missing/export", "alice", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestExportWrongOwnerLooksMissing(t *testing.T) {
	srv, projects, _ := newTestServer(t)
	seedProject(t, projects, "alice")
	resp := doJSON(t, "POST", srv.URL+"/v1/projects/proj-1/export", "mallory", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestExportStreamsArchive(t *testing.T) {
	srv, projects, hist := newTestServer(t)
	seedProject(t, projects, "alice")

	resp := doJSON(t, "POST", srv.URL+"/v1/projects/proj-1/export", "alice", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type = %q", ct)
	}
	cd := resp.Header.Get("Content-Disposition")
	if !strings.Contains(cd, `filename="seeded-app.zip"`) {
		t.Fatalf("content disposition = %q", cd)
	}

	records, err := hist.List(context.Background(), "proj-1")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d history records, want 1", len(records))
	}
	if records[0].Filename != "seeded-app.zip" || records[0].Files == 0 {
		t.Fatalf("history record = %+v", records[0])
	}
}

func TestExportFailedAssemblyLeavesTrace(t *testing.T) {
	srv, projects, hist := newTestServer(t)
	// A nameless record makes the assembler refuse to build.
	rec := project.Record{
		ID:       "p-bad",
		OwnerID:  entity.NormalizeUserID("alice"),
		Template: "saas",
	}
	if err := projects.Put(context.Background(), rec); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	resp := doJSON(t, "POST", srv.URL+"/v1/projects/p-bad/export", "alice", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	records, err := hist.List(context.Background(), "p-bad")
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d history records, want 1 trace of the attempt", len(records))
	}
	if records[0].Files != 0 {
		t.Fatalf("failed build recorded %d files", records[0].Files)
	}
	if records[0].Filename != "project.zip" {
		t.Fatalf("filename = %q", records[0].Filename)
	}
}

func TestExportHistoryListing(t *testing.T) {
	srv, projects, _ := newTestServer(t)
	seedProject(t, projects, "alice")

	if resp := doJSON(t, "POST", srv.URL+"/v1/projects/proj-1/export", "alice", nil); resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}

	resp := doJSON(t, "GET", srv.URL+"/v1/projects/proj-1/exports", "alice", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Exports []history.Record `json:"exports"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Exports) != 1 {
		t.Fatalf("got %d exports, want 1", len(out.Exports))
	}
}

func TestUpsertAndListProjects(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp := doJSON(t, "PUT", srv.URL+"/v1/projects/proj-9", "bob", map[string]any{
		"name":      "Bob App",
		"template":  "landing",
		"selection": map[string]string{"email": "resend"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upsert status = %d", resp.StatusCode)
	}

	resp = doJSON(t, "GET", srv.URL+"/v1/projects", "bob", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var out struct {
		Projects []project.Record `json:"projects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Projects) != 1 || out.Projects[0].Name != "Bob App" {
		t.Fatalf("projects = %+v", out.Projects)
	}

	// Another user's listing stays empty.
	resp = doJSON(t, "GET", srv.URL+"/v1/projects", "eve", nil)
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Projects) != 0 {
		t.Fatalf("eve sees %d projects", len(out.Projects))
	}
}

func TestFidelityScoreRequiresRoot(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/v1/fidelity/score", "", map[string]any{
		"config": map[string]any{"template": "saas"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestFidelityScoreMissingDirZeroes(t *testing.T) {
	srv, _, _ := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/v1/fidelity/score", "", map[string]any{
		"config": map[string]any{"template": "saas"},
		"root":   filepath.Join(t.TempDir(), "absent"),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Overall int `json:"overall"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Overall != 0 {
		t.Fatalf("overall = %d, want 0", out.Overall)
	}
}
