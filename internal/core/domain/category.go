package domain

import "strings"

// Category groups entries by the problem they solve.
type Category struct {
	// ID is the stable identifier stored on entries (e.g. "database").
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Icon is a short glyph for terminal output.
	Icon string `json:"icon,omitempty"`
}

// CategorySummary pairs a category with the number of entries in it.
type CategorySummary struct {
	Category
	Count int `json:"count"`
}

// InCategory reports whether an entry category matches the wanted one.
// Category IDs compare case-insensitively; an empty want matches all.
func InCategory(category, want string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(strings.TrimSpace(category), want)
}
