// Package resolver validates an integration selection against the registry
// and derives the environment variables the assembled project will need.
package resolver

import (
	"sort"

	"stencil/internal/registry"
)

// Severity classifies a conflict. Only "error" blocks a selection.
type Severity string

const SeverityError Severity = "error"

// Conflict is a pair of integrations the registry marks incompatible.
type Conflict struct {
	Integrations []string `json:"integrations"`
	Reason       string   `json:"reason"`
	Severity     Severity `json:"severity"`
	Solution     string   `json:"solution,omitempty"`
}

// Warning is advisory: a compatible-but-noteworthy pair, or a missing
// dependency. It never blocks a selection.
type Warning struct {
	Integrations []string `json:"integrations"`
	Message      string   `json:"message"`
}

// Result is the outcome of a compatibility check.
type Result struct {
	Compatible  bool       `json:"compatible"`
	Conflicts   []Conflict `json:"conflicts"`
	Warnings    []Warning  `json:"warnings"`
	Suggestions []string   `json:"suggestions"`
}

// Resolve checks every selected pair and every dependency edge. The pair scan
// follows the selection's category insertion order so conflict and warning
// ordering is reproducible for a given selection.
func Resolve(reg *registry.Registry, sel registry.Selection) Result {
	res := Result{
		Conflicts:   []Conflict{},
		Warnings:    []Warning{},
		Suggestions: []string{},
	}

	keys := sel.Keys()
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			entry, ok := lookupEither(reg, keys[i], keys[j])
			if !ok {
				continue // unknown pair: no constraint
			}
			names := []string{keys[i].String(), keys[j].String()}
			if !entry.Compatible {
				res.Conflicts = append(res.Conflicts, Conflict{
					Integrations: names,
					Reason:       entry.Note,
					Severity:     SeverityError,
					Solution:     entry.Solution,
				})
				continue
			}
			if entry.Note != "" {
				res.Warnings = append(res.Warnings, Warning{
					Integrations: names,
					Message:      entry.Note,
				})
			}
		}
	}

	// Dependency edges are advisory only: report the gap, never auto-inject.
	for _, k := range keys {
		for _, dep := range reg.Dependencies(k) {
			if sel.Provider(dep.Category) == dep.Provider {
				continue
			}
			res.Warnings = append(res.Warnings, Warning{
				Integrations: []string{k.String(), dep.String()},
				Message:      k.String() + " works best with " + dep.String() + ", which is not selected.",
			})
		}
	}

	res.Suggestions = suggestions(sel)
	res.Compatible = !hasError(res.Conflicts)
	return res
}

func lookupEither(reg *registry.Registry, a, b registry.Key) (registry.CompatEntry, bool) {
	if e, ok := reg.Compatibility(a, b); ok {
		return e, true
	}
	return reg.Compatibility(b, a)
}

func hasError(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

func suggestions(sel registry.Selection) []string {
	out := []string{}
	if sel.Selected("auth") && !sel.Selected("analytics") {
		out = append(out, "Add an analytics integration to understand how signed-in users behave.")
	}
	if sel.Selected("payments") && !sel.Selected("email") {
		out = append(out, "Add an email integration to send receipts and payment-failure notices.")
	}
	if sel.Selected("database") && !sel.Selected("auth") {
		out = append(out, "Add an auth integration to protect database-backed pages.")
	}
	return out
}

// EnvVars returns the deduplicated, lexicographically sorted environment
// variable names required by the selection. Sorting keeps the output stable
// regardless of selection order; downstream generation embeds it verbatim.
func EnvVars(reg *registry.Registry, sel registry.Selection) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, k := range sel.Keys() {
		for _, name := range reg.EnvVars(k) {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
