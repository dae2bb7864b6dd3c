package fidelity

import (
	"os"
	"path/filepath"
	"strings"
)

// excludedDirs are dependency/build directories the component search never
// descends into, bounding the traversal.
var excludedDirs = map[string]struct{}{
	"node_modules": {},
	".next":        {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"vendor":       {},
}

// componentIndex maps what the traversal saw: lowercased file basenames
// (extension stripped) and lowercased directory names that contain an index
// file.
type componentIndex struct {
	baseNames map[string]struct{}
	indexDirs map[string]struct{}
}

// has reports whether name matches any accepted convention: a file named
// after the component (any case), or an index file nested under a directory
// named after it.
func (idx componentIndex) has(name string) bool {
	lc := strings.ToLower(name)
	if _, ok := idx.baseNames[lc]; ok {
		return true
	}
	_, ok := idx.indexDirs[lc]
	return ok
}

// indexComponentDir walks root with an explicit work list and a visited-path
// guard, so symlinked directories cannot loop the traversal.
func indexComponentDir(root string) componentIndex {
	idx := componentIndex{
		baseNames: make(map[string]struct{}),
		indexDirs: make(map[string]struct{}),
	}

	visited := make(map[string]struct{})
	work := []string{root}
	for len(work) > 0 {
		dir := work[len(work)-1]
		work = work[:len(work)-1]

		resolved, err := filepath.EvalSymlinks(dir)
		if err != nil {
			continue
		}
		if _, seen := visited[resolved]; seen {
			continue
		}
		visited[resolved] = struct{}{}

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() {
				if _, skip := excludedDirs[name]; skip {
					continue
				}
				work = append(work, filepath.Join(dir, name))
				continue
			}
			base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
			idx.baseNames[base] = struct{}{}
			if base == "index" {
				idx.indexDirs[strings.ToLower(filepath.Base(dir))] = struct{}{}
			}
		}
	}
	return idx
}
