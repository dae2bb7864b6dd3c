// Package registry is the static knowledge base behind configuration
// resolution: which integrations exist, what they require from the
// environment, which other integrations they depend on, and how pairs of
// integrations get along. Lookups for unknown keys return "no entry", never
// an error, so integrations added to the selection API ahead of the registry
// degrade to "assumed compatible".
package registry

// CompatEntry describes how an ordered pair of integrations interacts.
type CompatEntry struct {
	Compatible bool   `json:"compatible"`
	Note       string `json:"note,omitempty"`
	Solution   string `json:"solution,omitempty"`
}

// Package is the npm dependency an integration pulls into generated projects.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type pair struct {
	a, b Key
}

// Registry is a read-only lookup table, loaded once and never mutated.
type Registry struct {
	compat   map[pair]CompatEntry
	deps     map[Key][]Key
	envVars  map[Key][]string
	packages map[Key]Package
}

// Compatibility returns the entry for the ordered pair (a, b). The table is
// sparse and asymmetrically populated; callers that want effective symmetry
// must also try (b, a).
func (r *Registry) Compatibility(a, b Key) (CompatEntry, bool) {
	if r == nil {
		return CompatEntry{}, false
	}
	e, ok := r.compat[pair{a, b}]
	return e, ok
}

// Dependencies returns the integrations k requires present in a selection.
func (r *Registry) Dependencies(k Key) []Key {
	if r == nil {
		return nil
	}
	deps := r.deps[k]
	if len(deps) == 0 {
		return nil
	}
	out := make([]Key, len(deps))
	copy(out, deps)
	return out
}

// EnvVars returns the environment variable names k requires.
func (r *Registry) EnvVars(k Key) []string {
	if r == nil {
		return nil
	}
	vars := r.envVars[k]
	if len(vars) == 0 {
		return nil
	}
	out := make([]string, len(vars))
	copy(out, vars)
	return out
}

// Package returns the npm package for k, if one is registered.
func (r *Registry) Package(k Key) (Package, bool) {
	if r == nil {
		return Package{}, false
	}
	p, ok := r.packages[k]
	return p, ok
}
