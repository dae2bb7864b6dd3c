package resolver

import "strings"

// MarkdownReport renders a Result as a human-readable markdown report:
// status line, conflicts, warnings, suggestions, and a fenced block listing
// the required environment variables as NAME= lines.
func MarkdownReport(res Result, envVars []string) string {
	var b strings.Builder

	b.WriteString("# Compatibility Report\n\n")
	if res.Compatible {
		b.WriteString("**Status:** compatible\n")
	} else {
		b.WriteString("**Status:** incompatible\n")
	}

	if len(res.Conflicts) > 0 {
		b.WriteString("\n## Conflicts\n\n")
		for _, c := range res.Conflicts {
			b.WriteString("- **" + strings.Join(c.Integrations, " + ") + "**: " + c.Reason)
			if c.Solution != "" {
				b.WriteString(" _Fix: " + c.Solution + "_")
			}
			b.WriteString("\n")
		}
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range res.Warnings {
			b.WriteString("- **" + strings.Join(w.Integrations, " + ") + "**: " + w.Message + "\n")
		}
	}

	if len(res.Suggestions) > 0 {
		b.WriteString("\n## Suggestions\n\n")
		for _, s := range res.Suggestions {
			b.WriteString("- " + s + "\n")
		}
	}

	if len(envVars) > 0 {
		b.WriteString("\n## Required environment variables\n\n```\n")
		for _, v := range envVars {
			b.WriteString(v + "=\n")
		}
		b.WriteString("```\n")
	}

	return b.String()
}
