package assembler

import (
	"encoding/json"
	"strings"
	"unicode"
)

// authGuard redirects unauthenticated visitors before the page body renders.
const authGuard = `  const session = await getSession()
  if (!session) {
    redirect("/login")
  }
`

type pageIndexEntry struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Protected bool   `json:"protected"`
	File      string `json:"file"`
}

func buildPages(bc *buildContext) ([]File, error) {
	pages := bc.project.Pages
	if len(pages) == 0 {
		return nil, nil
	}

	index := make([]pageIndexEntry, 0, len(pages))
	files := make([]File, 0, len(pages)+1)
	for _, pg := range pages {
		file := PageFilePath(pg.Path)
		index = append(index, pageIndexEntry{
			Name:      pg.Name,
			Path:      pg.Path,
			Protected: pg.Protected,
			File:      file,
		})
		files = append(files, File{Path: file, Body: []byte(renderPage(pg))})
	}

	body, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, err
	}
	out := []File{{Path: pagesIndexPath, Body: append(body, '\n')}}
	return append(out, files...), nil
}

// PageFilePath translates a route path into its generated file: the root path
// maps to the base page file, any other path nests the same filename under a
// directory equal to the path.
func PageFilePath(route string) string {
	route = strings.Trim(strings.TrimSpace(route), "/")
	if route == "" {
		return "app/page.tsx"
	}
	return "app/" + route + "/page.tsx"
}

func renderPage(pg Page) string {
	name := componentName(pg.Name)

	var b strings.Builder
	if pg.Protected {
		b.WriteString("import { redirect } from \"next/navigation\"\n")
		b.WriteString("import { getSession } from \"@/lib/auth\"\n\n")
		b.WriteString("export default async function " + name + "Page() {\n")
		b.WriteString(authGuard)
	} else {
		b.WriteString("export default function " + name + "Page() {\n")
	}
	b.WriteString("  return (\n")
	b.WriteString("    <main className=\"p-8\">\n")
	b.WriteString("      <h1 className=\"text-2xl font-semibold\">" + pg.Name + "</h1>\n")
	b.WriteString("      {/* " + pg.Path + " */}\n")
	b.WriteString("    </main>\n")
	b.WriteString("  )\n")
	b.WriteString("}\n")
	return b.String()
}

// componentName squeezes a page name into a PascalCase identifier.
func componentName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "Generated"
	}
	return b.String()
}
