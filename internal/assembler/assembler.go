// Package assembler turns a resolved project record into a downloadable
// archive: synthesized files (manifest, pages, env template, docs, package
// manifest) plus the static template files named by the file manifest.
package assembler

import (
	"archive/zip"
	"bytes"
	"fmt"
	"log"
	"time"

	"stencil/internal/manifest"
	"stencil/internal/registry"
)

// Page is one declared route of the project.
type Page struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Protected bool   `json:"protected"`
}

// Project is the metadata the assembler consumes. Loading and ownership
// checks happen before it is constructed.
type Project struct {
	ID          string
	Name        string
	Description string
	Template    string
	Selection   registry.Selection
	Pages       []Page
	Vision      string
}

// Options tune one assembly run.
type Options struct {
	IncludeEnvExample bool
	IncludeDocs       bool
	// RequestedBy is recorded in the export manifest for the audit trail.
	RequestedBy string
	// Now overrides the export timestamp; zero means time.Now().
	Now time.Time
}

// File is one entry of the archive under construction.
type File struct {
	Path string
	Body []byte
}

// Archive is the finished in-memory export. It is built entirely within one
// request and discarded after the response stream completes.
type Archive struct {
	Data      []byte
	Filename  string
	FileCount int
}

type buildContext struct {
	project Project
	opts    Options
	reg     *registry.Registry
	now     time.Time
}

type section struct {
	name  string
	build func(*buildContext) ([]File, error)
}

// Assemble produces the archive. Synthesis sections are independent and
// best-effort: a failing section is logged and omitted, never escalated.
// Generated files win path collisions against static template files.
func Assemble(p Project, opts Options, reg *registry.Registry) (*Archive, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("assembler: project name is required")
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	bc := &buildContext{project: p, opts: opts, reg: reg, now: now}

	sections := []section{
		{name: "manifest", build: buildExportManifest},
		{name: "vision", build: buildVision},
		{name: "pages", build: buildPages},
		{name: "env", build: buildEnvExample},
		{name: "docs", build: buildReadme},
		{name: "package", build: buildPackageManifest},
	}

	written := make(map[string]struct{})
	var files []File
	add := func(f File) {
		if _, dup := written[f.Path]; dup {
			return
		}
		written[f.Path] = struct{}{}
		files = append(files, f)
	}

	for _, s := range sections {
		out, err := s.build(bc)
		if err != nil {
			log.Printf("assembler: section %s skipped: %v", s.name, err)
			continue
		}
		for _, f := range out {
			add(f)
		}
	}

	m := manifest.Build(p.Template, p.Selection)
	for _, path := range append(m.BaseFiles, m.IntegrationFiles...) {
		if _, dup := written[path]; dup {
			continue
		}
		body, ok := staticContent(p.Template, path)
		if !ok {
			log.Printf("assembler: no static content for %s (template %s), skipped", path, p.Template)
			continue
		}
		add(File{Path: path, Body: body})
	}

	data, err := writeZip(files)
	if err != nil {
		return nil, fmt.Errorf("assembler: write archive: %w", err)
	}
	return &Archive{
		Data:      data,
		Filename:  Slugify(p.Name) + ".zip",
		FileCount: len(files),
	}, nil
}

func writeZip(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Path)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.Body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
