package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Metrics holds the popularity signals of an entry.
type Metrics struct {
	// Downloads is the install or download count. Never negative.
	Downloads int64 `json:"downloads"`

	// Rating is the average rating in [0, 5].
	Rating float64 `json:"rating"`

	// Stars is the repository star count (remote indexes only).
	Stars int `json:"stars,omitempty"`

	// Rank is the 1-based position in a remote leaderboard. Zero means unranked.
	Rank int `json:"rank,omitempty"`
}

// Popularity returns downloads × rating.
// The product is not normalised: a high download count can outweigh a
// better rating.
func (m Metrics) Popularity() float64 {
	return float64(m.Downloads) * m.Rating
}

// CatalogEntry describes one installable capability as published by one source.
// Entries are immutable once constructed.
type CatalogEntry struct {
	// Name is unique within its source.
	Name string `json:"name"`

	// FullName is the package or repository identifier.
	FullName string `json:"full_name,omitempty"`

	// Keywords are lowercase tokens without duplicates.
	Keywords []string `json:"keywords,omitempty"`

	// Description is free text.
	Description string `json:"description,omitempty"`

	// Category is the catalog category ID (e.g. "database").
	Category string `json:"category,omitempty"`

	// Source is the provenance catalog.
	Source Source `json:"source"`

	// Publisher is the repository or collection the entry ships in.
	Publisher string `json:"publisher,omitempty"`

	// Metrics holds downloads, rating and remote index signals.
	Metrics Metrics `json:"metrics"`

	// Features are short labels, in catalog order.
	Features []string `json:"features,omitempty"`

	// UseCases are tags describing where the entry applies.
	UseCases []string `json:"use_cases,omitempty"`

	// Pros and Cons are short notes used in comparison narratives.
	Pros []string `json:"pros,omitempty"`
	Cons []string `json:"cons,omitempty"`

	// InstallRef is opaque to the engine and meaningful only to an installer.
	InstallRef string `json:"install_ref,omitempty"`

	// URL is the homepage or repository link.
	URL string `json:"url,omitempty"`

	// Language is the implementation language, if known.
	Language string `json:"language,omitempty"`

	// LastUpdated is when the entry was last published.
	LastUpdated time.Time `json:"last_updated,omitzero"`
}

// NewCatalogEntry returns a copy of e with keywords normalised
// to lowercase, trimmed and de-duplicated tokens.
func NewCatalogEntry(e CatalogEntry) CatalogEntry {
	e.Name = strings.TrimSpace(e.Name)
	e.Keywords = NormalizeKeywords(e.Keywords)
	return e
}

// CanonicalName is the identity used to deduplicate entries across sources.
func (e CatalogEntry) CanonicalName() string {
	return strings.ToLower(strings.TrimSpace(e.Name))
}

// Validate checks the entry invariants.
func (e CatalogEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidEntry)
	}
	if e.Metrics.Rating < 0 || e.Metrics.Rating > MaxRating {
		return fmt.Errorf("%w: %s: rating %.2f outside [0,5]", ErrInvalidEntry, e.Name, e.Metrics.Rating)
	}
	if e.Metrics.Downloads < 0 {
		return fmt.Errorf("%w: %s: negative downloads", ErrInvalidEntry, e.Name)
	}
	return nil
}

// NormalizeKeywords lowercases and trims keywords, dropping empties and
// duplicates while keeping first-seen order.
func NormalizeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

// NameTokens returns the lowercase name followed by its parts split on
// hyphens, underscores and spaces, without duplicates.
// "skill-creator" yields [skill-creator skill creator].
func NameTokens(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return NormalizeKeywords(append([]string{name}, parts...))
}

// PlaceholderEntry is the zero-metric stand-in for a name that resolved to nothing.
func PlaceholderEntry(name string) CatalogEntry {
	return CatalogEntry{
		Name:   name,
		Source: SourceUnknown,
	}
}

// InstallRequest is what the caller hands to an installer for one entry.
type InstallRequest struct {
	// Name is the entry name, for display.
	Name string

	// Ref is the entry's opaque install reference.
	Ref string

	// Source is the provenance of the entry.
	Source Source

	// URL is the entry homepage, used when Ref is empty.
	URL string
}

// InstallRequestFor builds the install request for an entry.
func InstallRequestFor(e CatalogEntry) InstallRequest {
	return InstallRequest{
		Name:   e.Name,
		Ref:    e.InstallRef,
		Source: e.Source,
		URL:    e.URL,
	}
}
