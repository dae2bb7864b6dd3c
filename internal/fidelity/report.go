package fidelity

import (
	"fmt"
	"strings"
)

// MarkdownReport renders a Score as a human-readable audit report.
func MarkdownReport(s Score) string {
	var b strings.Builder

	b.WriteString("# Fidelity Report\n\n")
	fmt.Fprintf(&b, "**Overall:** %d/100\n\n", s.Overall)

	b.WriteString("| Axis | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Colors | %d |\n", s.ColorMatch)
	fmt.Fprintf(&b, "| Components | %d |\n", s.ComponentMatch)
	fmt.Fprintf(&b, "| Routes | %d |\n", s.LayoutMatch)
	fmt.Fprintf(&b, "| Environment | %d |\n", s.ContentMatch)

	writeMissing(&b, "Missing components", s.Details.Components.Missing)
	writeMissing(&b, "Missing routes", s.Details.Routes.Missing)
	writeMissing(&b, "Missing environment variables", s.Details.EnvVars.Missing)
	writeMissing(&b, "Missing style tokens", s.Details.Colors.Missing)

	return b.String()
}

func writeMissing(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n## " + title + "\n\n")
	for _, item := range items {
		b.WriteString("- `" + item + "`\n")
	}
}
