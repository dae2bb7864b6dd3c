package assembler

import "embed"

// templateFS holds the static scaffold sources: per-template trees plus a
// shared tree for integration files referenced by multiple templates.
//
//go:embed all:templates
var templateFS embed.FS

// staticContent resolves a manifest path to embedded bytes, trying the
// template-specific tree first, then the shared tree. A miss means the
// manifest names a file this build does not ship; callers skip it.
func staticContent(template, path string) ([]byte, bool) {
	if b, err := templateFS.ReadFile("templates/" + template + "/" + path); err == nil {
		return b, true
	}
	if b, err := templateFS.ReadFile("templates/shared/" + path); err == nil {
		return b, true
	}
	return nil, false
}
