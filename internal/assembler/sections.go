package assembler

import (
	"encoding/json"
	"strings"
	"time"

	"stencil/internal/registry"
)

const (
	manifestPath   = ".stencil/manifest.json"
	pagesIndexPath = ".stencil/pages.json"
	visionPath     = "VISION.md"
	envPath        = ".env.example"
	readmePath     = "README.md"
	packagePath    = "package.json"
)

type exportManifest struct {
	Template     string             `json:"template"`
	Integrations registry.Selection `json:"integrations"`
	ExportedAt   time.Time          `json:"exported_at"`
	ExportedBy   string             `json:"exported_by,omitempty"`
}

func buildExportManifest(bc *buildContext) ([]File, error) {
	body, err := json.MarshalIndent(exportManifest{
		Template:     bc.project.Template,
		Integrations: bc.project.Selection,
		ExportedAt:   bc.now,
		ExportedBy:   bc.opts.RequestedBy,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []File{{Path: manifestPath, Body: append(body, '\n')}}, nil
}

func buildVision(bc *buildContext) ([]File, error) {
	vision := strings.TrimSpace(bc.project.Vision)
	if vision == "" {
		return nil, nil
	}
	return []File{{Path: visionPath, Body: []byte(vision + "\n")}}, nil
}

// buildEnvExample writes one NAME= line per required variable, grouped by
// integration with a leading category comment. Values are never embedded.
func buildEnvExample(bc *buildContext) ([]File, error) {
	if !bc.opts.IncludeEnvExample {
		return nil, nil
	}
	var b strings.Builder
	seen := make(map[string]struct{})
	for _, k := range bc.project.Selection.Keys() {
		vars := bc.reg.EnvVars(k)
		if len(vars) == 0 {
			continue
		}
		wrote := false
		for _, name := range vars {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			if !wrote {
				if b.Len() > 0 {
					b.WriteString("\n")
				}
				b.WriteString("# " + k.String() + "\n")
				wrote = true
			}
			b.WriteString(name + "=\n")
		}
	}
	if b.Len() == 0 {
		return nil, nil
	}
	return []File{{Path: envPath, Body: []byte(b.String())}}, nil
}

func buildReadme(bc *buildContext) ([]File, error) {
	if !bc.opts.IncludeDocs {
		return nil, nil
	}
	p := bc.project

	var b strings.Builder
	b.WriteString("# " + p.Name + "\n")
	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString("\n" + desc + "\n")
	}

	if len(p.Pages) > 0 {
		b.WriteString("\n## Pages\n\n")
		for _, pg := range p.Pages {
			line := "- `" + pg.Path + "`: " + pg.Name
			if pg.Protected {
				line += " (protected)"
			}
			b.WriteString(line + "\n")
		}
	}

	if keys := p.Selection.Keys(); len(keys) > 0 {
		b.WriteString("\n## Integrations\n\n")
		for _, k := range keys {
			b.WriteString("- " + k.Category + ": " + k.Provider + "\n")
		}
	}

	b.WriteString("\n## Quick start\n\n```\nnpm install\ncp .env.example .env.local\nnpm run dev\n```\n")
	return []File{{Path: readmePath, Body: []byte(b.String())}}, nil
}

// buildPackageManifest unions the fixed framework dependencies with one
// package per selected integration.
func buildPackageManifest(bc *buildContext) ([]File, error) {
	deps := map[string]string{
		"next":      "^14.1.0",
		"react":     "^18.2.0",
		"react-dom": "^18.2.0",
	}
	for _, k := range bc.project.Selection.Keys() {
		if pkg, ok := bc.reg.Package(k); ok {
			deps[pkg.Name] = pkg.Version
		}
	}

	body, err := json.MarshalIndent(struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Private      bool              `json:"private"`
		Scripts      map[string]string `json:"scripts"`
		Dependencies map[string]string `json:"dependencies"`
	}{
		Name:    Slugify(bc.project.Name),
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
		},
		Dependencies: deps,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return []File{{Path: packagePath, Body: append(body, '\n')}}, nil
}
