// Package fidelity audits a materialized export against the configuration
// that promised it. All checks are pure file/text comparisons; a missing
// artifact path is never an error, just a zero on that axis.
package fidelity

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"stencil/internal/registry"
	"stencil/internal/resolver"
)

// Config is the original intent the artifact is audited against.
type Config struct {
	Template   string             `json:"template"`
	Selection  registry.Selection `json:"selection"`
	BrandColor string             `json:"brandColor,omitempty"`
}

// AxisDetail records the expected/found/missing sets behind one sub-score.
type AxisDetail struct {
	Expected []string `json:"expected"`
	Found    []string `json:"found"`
	Missing  []string `json:"missing"`
}

// Details carries per-axis evidence plus the converted brand triplet.
type Details struct {
	Colors     AxisDetail `json:"colors"`
	Components AxisDetail `json:"components"`
	Routes     AxisDetail `json:"routes"`
	EnvVars    AxisDetail `json:"envVars"`
	BrandHSL   string     `json:"brandHsl,omitempty"`
}

// Score is the audit result. Sub-scores and overall are in [0, 100].
type Score struct {
	ColorMatch     int     `json:"colorMatch"`
	ComponentMatch int     `json:"componentMatch"`
	LayoutMatch    int     `json:"layoutMatch"`
	ContentMatch   int     `json:"contentMatch"`
	Overall        int     `json:"overall"`
	Details        Details `json:"details"`
}

// Axis weights: components and routes dominate, colors and env flank.
const (
	weightColor     = 0.15
	weightComponent = 0.35
	weightLayout    = 0.35
	weightContent   = 0.15
)

// expectedStyleTokens is the fixed set of style-token names the global
// stylesheet is expected to define.
var expectedStyleTokens = []string{
	"--background",
	"--foreground",
	"--primary",
	"--primary-foreground",
	"--secondary",
	"--muted",
	"--accent",
	"--border",
	"--ring",
}

// coreComponents are expected regardless of the selection.
var coreComponents = []string{"Button", "Card", "Input", "Badge"}

// categoryComponents maps an active integration category to the component
// names it is expected to contribute.
var categoryComponents = map[string][]string{
	"auth":      {"LoginForm", "SignupForm", "UserMenu"},
	"payments":  {"PricingCard", "CheckoutButton"},
	"analytics": {"AnalyticsProvider"},
	"email":     {"ContactForm"},
	"storage":   {"FileUpload"},
	"ai":        {"ChatBox"},
}

// Evaluate re-derives the expected file/variable/token sets from cfg and
// compares them against what actually exists under root.
func Evaluate(cfg Config, root string, reg *registry.Registry) Score {
	var s Score
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		// Entirely absent artifact: zero on every axis.
		s.Details = Details{
			Colors:     AxisDetail{Expected: []string{}, Found: []string{}, Missing: []string{}},
			Components: AxisDetail{Expected: []string{}, Found: []string{}, Missing: []string{}},
			Routes:     AxisDetail{Expected: []string{}, Found: []string{}, Missing: []string{}},
			EnvVars:    AxisDetail{Expected: []string{}, Found: []string{}, Missing: []string{}},
		}
		return s
	}

	s.ColorMatch, s.Details.Colors, s.Details.BrandHSL = scoreColors(cfg, root)
	s.ComponentMatch, s.Details.Components = scoreComponents(cfg, root)
	s.LayoutMatch, s.Details.Routes = scoreRoutes(cfg, root)
	s.ContentMatch, s.Details.EnvVars = scoreEnvVars(cfg, root, reg)

	s.Overall = int(math.Round(
		weightColor*float64(s.ColorMatch) +
			weightComponent*float64(s.ComponentMatch) +
			weightLayout*float64(s.LayoutMatch) +
			weightContent*float64(s.ContentMatch)))
	return s
}

func scoreColors(cfg Config, root string) (int, AxisDetail, string) {
	expected := append([]string{}, expectedStyleTokens...)
	brandHSL := ""
	if cfg.BrandColor != "" {
		if hsl, ok := HexToHSL(cfg.BrandColor); ok {
			brandHSL = hsl
			expected = append(expected, hsl)
		}
	}

	detail := AxisDetail{Expected: expected, Found: []string{}, Missing: []string{}}
	data, err := os.ReadFile(filepath.Join(root, "app", "globals.css"))
	if err != nil {
		// Missing stylesheet scores zero regardless of expected-set size.
		detail.Missing = append(detail.Missing, expected...)
		return 0, detail, brandHSL
	}

	css := string(data)
	for _, token := range expected {
		if strings.Contains(css, token) {
			detail.Found = append(detail.Found, token)
		} else {
			detail.Missing = append(detail.Missing, token)
		}
	}
	return ratio(len(detail.Found), len(expected)), detail, brandHSL
}

func scoreComponents(cfg Config, root string) (int, AxisDetail) {
	expected := append([]string{}, coreComponents...)
	for _, k := range cfg.Selection.Keys() {
		expected = append(expected, categoryComponents[k.Category]...)
	}

	detail := AxisDetail{Expected: expected, Found: []string{}, Missing: []string{}}
	if len(expected) == 0 {
		return 100, detail
	}

	idx := indexComponentDir(filepath.Join(root, "components"))
	for _, name := range expected {
		if idx.has(name) {
			detail.Found = append(detail.Found, name)
		} else {
			detail.Missing = append(detail.Missing, name)
		}
	}
	return ratio(len(detail.Found), len(expected)), detail
}

func scoreRoutes(cfg Config, root string) (int, AxisDetail) {
	expected := expectedRoutes(cfg)
	detail := AxisDetail{Expected: expected, Found: []string{}, Missing: []string{}}
	if len(expected) == 0 {
		return 100, detail
	}
	for _, route := range expected {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(route))); err == nil {
			detail.Found = append(detail.Found, route)
		} else {
			detail.Missing = append(detail.Missing, route)
		}
	}
	return ratio(len(detail.Found), len(expected)), detail
}

func scoreEnvVars(cfg Config, root string, reg *registry.Registry) (int, AxisDetail) {
	expected := resolver.EnvVars(reg, cfg.Selection)
	detail := AxisDetail{Expected: expected, Found: []string{}, Missing: []string{}}
	if len(expected) == 0 {
		return 100, detail
	}

	data, err := os.ReadFile(filepath.Join(root, ".env.example"))
	if err != nil {
		detail.Missing = append(detail.Missing, expected...)
		return 0, detail
	}

	content := string(data)
	for _, name := range expected {
		if strings.Contains(content, name) {
			detail.Found = append(detail.Found, name)
		} else {
			detail.Missing = append(detail.Missing, name)
		}
	}
	return ratio(len(detail.Found), len(expected)), detail
}

// ratio treats an empty expected set as vacuously satisfied.
func ratio(found, expected int) int {
	if expected == 0 {
		return 100
	}
	return int(math.Round(100 * float64(found) / float64(expected)))
}
