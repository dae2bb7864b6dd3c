package registry

import "strings"

// Key identifies one third-party capability choice, e.g. payments:stripe.
type Key struct {
	Category string
	Provider string
}

// NewKey builds a normalized key. Both parts are trimmed and lowercased.
func NewKey(category, provider string) Key {
	return Key{
		Category: strings.ToLower(strings.TrimSpace(category)),
		Provider: strings.ToLower(strings.TrimSpace(provider)),
	}
}

// ParseKey parses the "category:provider" wire form.
func ParseKey(s string) (Key, bool) {
	category, provider, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Key{}, false
	}
	k := NewKey(category, provider)
	if k.IsZero() {
		return Key{}, false
	}
	return k, true
}

func (k Key) String() string {
	return k.Category + ":" + k.Provider
}

func (k Key) IsZero() bool {
	return k.Category == "" || k.Provider == ""
}
