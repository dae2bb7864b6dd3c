// Package manifest resolves which source files compose a project for a given
// template and integration selection.
package manifest

import "stencil/internal/registry"

// Manifest is the ordered, deduplicated file plan for one project.
type Manifest struct {
	BaseFiles        []string `json:"baseFiles"`
	IntegrationFiles []string `json:"integrationFiles"`
	Total            int      `json:"total"`
}

// Build derives the manifest for template + selection. An unknown template
// yields an empty base list (full customization, no scaffold), not an error.
// Integration files are appended in selection order; paths are full relative
// paths already rooted per integration, so no path inference happens here.
func Build(template string, sel registry.Selection) Manifest {
	m := Manifest{
		BaseFiles:        dedup(TemplateFiles(template)),
		IntegrationFiles: []string{},
	}

	seenKeys := make(map[registry.Key]struct{})
	seenPaths := make(map[string]struct{})
	for _, k := range sel.Keys() {
		// One provider per category; a repeated key would double-count files.
		if _, dup := seenKeys[k]; dup {
			continue
		}
		seenKeys[k] = struct{}{}
		for _, path := range IntegrationFiles(template, k) {
			if _, dup := seenPaths[path]; dup {
				continue
			}
			seenPaths[path] = struct{}{}
			m.IntegrationFiles = append(m.IntegrationFiles, path)
		}
	}

	m.Total = len(m.BaseFiles) + len(m.IntegrationFiles)
	return m
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
