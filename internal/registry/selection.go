package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Selection maps a category to the chosen provider, at most one per category.
// Category order is the caller's insertion order (JSON object key order on
// decode); downstream pair scans depend on it being stable.
type Selection struct {
	categories []string
	providers  map[string]string
}

// NewSelection builds a selection from alternating category, provider pairs.
func NewSelection(pairs ...string) Selection {
	var s Selection
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// Set chooses provider for category, replacing any previous choice. An empty
// provider keeps the category slot but marks it unselected.
func (s *Selection) Set(category, provider string) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return
	}
	if s.providers == nil {
		s.providers = make(map[string]string)
	}
	if _, exists := s.providers[category]; !exists {
		s.categories = append(s.categories, category)
	}
	s.providers[category] = strings.ToLower(strings.TrimSpace(provider))
}

// Provider returns the chosen provider for category ("" when unselected).
func (s Selection) Provider(category string) string {
	return s.providers[strings.ToLower(strings.TrimSpace(category))]
}

// Selected reports whether a provider is chosen for category.
func (s Selection) Selected(category string) bool {
	return s.Provider(category) != ""
}

// Keys flattens the selection into keys in insertion order, skipping
// unselected categories.
func (s Selection) Keys() []Key {
	keys := make([]Key, 0, len(s.categories))
	for _, c := range s.categories {
		p := s.providers[c]
		if p == "" {
			continue
		}
		keys = append(keys, Key{Category: c, Provider: p})
	}
	return keys
}

// Len returns the number of selected categories.
func (s Selection) Len() int {
	return len(s.Keys())
}

// UnmarshalJSON decodes a {category: provider} object while preserving the
// object's key order. A duplicate category is a validation error, per the
// one-provider-per-category invariant.
func (s *Selection) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("selection: expected JSON object, got %v", tok)
	}

	out := Selection{providers: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("selection: non-string category %v", keyTok)
		}
		category = strings.ToLower(strings.TrimSpace(category))
		if category == "" {
			return fmt.Errorf("selection: empty category")
		}
		if _, dup := out.providers[category]; dup {
			return fmt.Errorf("selection: duplicate category %q", category)
		}

		var provider string
		if err := dec.Decode(&provider); err != nil {
			return fmt.Errorf("selection: provider for %q: %w", category, err)
		}
		out.categories = append(out.categories, category)
		out.providers[category] = strings.ToLower(strings.TrimSpace(provider))
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}

	*s = out
	return nil
}

// MarshalJSON writes the selection back as an object in insertion order.
func (s Selection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.providers[c])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
