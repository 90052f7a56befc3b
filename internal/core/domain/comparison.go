package domain

import (
	"fmt"
	"strings"
)

// Criterion is one comparison dimension.
type Criterion string

// Available comparison criteria.
const (
	// CriterionDownloads ranks by raw download count.
	CriterionDownloads Criterion = "downloads"

	// CriterionFeatures ranks by number of feature labels.
	CriterionFeatures Criterion = "features"

	// CriterionRatings ranks by average rating.
	CriterionRatings Criterion = "ratings"

	// CriterionPopularity ranks by downloads × rating.
	CriterionPopularity Criterion = "popularity"
)

// AllCriteria returns every criterion in canonical order.
func AllCriteria() []Criterion {
	return []Criterion{CriterionDownloads, CriterionFeatures, CriterionRatings, CriterionPopularity}
}

// DefaultCriteria is used when a comparison names no criteria.
func DefaultCriteria() []Criterion {
	return []Criterion{CriterionDownloads, CriterionFeatures, CriterionRatings}
}

// IsValid returns true if the criterion is recognised.
func (c Criterion) IsValid() bool {
	switch c {
	case CriterionDownloads, CriterionFeatures, CriterionRatings, CriterionPopularity:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Criterion) String() string {
	return string(c)
}

// Value extracts the criterion's metric from an entry.
func (c Criterion) Value(e CatalogEntry) float64 {
	switch c {
	case CriterionDownloads:
		return float64(e.Metrics.Downloads)
	case CriterionFeatures:
		return float64(len(e.Features))
	case CriterionRatings:
		return e.Metrics.Rating
	case CriterionPopularity:
		return e.Metrics.Popularity()
	default:
		return 0
	}
}

// ParseCriteria converts names to criteria, dropping duplicates.
// An empty list yields DefaultCriteria.
func ParseCriteria(names []string) ([]Criterion, error) {
	var out []Criterion
	seen := make(map[Criterion]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			c := Criterion(part)
			if !c.IsValid() {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, part)
			}
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	if len(out) == 0 {
		return DefaultCriteria(), nil
	}
	return out, nil
}

// ComparedEntry is one input name and the entry it resolved to.
type ComparedEntry struct {
	// Input is the name as given by the caller.
	Input string `json:"input"`

	// Entry is the resolved entry, or a zero-metric placeholder.
	Entry CatalogEntry `json:"entry"`

	// Unknown is true when Entry is a placeholder.
	Unknown bool `json:"unknown"`

	// Suggestions lists close catalog names for unknown inputs.
	Suggestions []string `json:"suggestions,omitempty"`
}

// RankedValue is one entry's value for a criterion.
type RankedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// FeatureSupport lists the compared entries offering one feature.
type FeatureSupport struct {
	Feature string   `json:"feature"`
	Entries []string `json:"entries"`
}

// ComparisonSummary condenses the per-criterion rankings.
type ComparisonSummary struct {
	// TotalEntries is the number of compared entries, placeholders included.
	TotalEntries int `json:"total_entries"`

	// BestByCriterion maps each requested criterion to its winner.
	BestByCriterion map[Criterion]RankedValue `json:"best_by_criterion"`

	// BestOverall is the entry with the highest downloads × rating,
	// regardless of which criteria were requested.
	BestOverall string `json:"best_overall"`

	// FeatureComparison lists every feature in first-seen order.
	FeatureComparison []FeatureSupport `json:"feature_comparison"`

	// UseCaseOverlap is the intersection of use cases across all entries.
	UseCaseOverlap []string `json:"use_case_overlap"`
}

// ComparisonReport is the outcome of comparing two or more entries.
type ComparisonReport struct {
	// Entries are in the order the names were given.
	Entries []ComparedEntry `json:"entries"`

	// Criteria are the requested criteria.
	Criteria []Criterion `json:"criteria"`

	// Rankings maps each criterion to entries ordered best first.
	Rankings map[Criterion][]RankedValue `json:"rankings"`

	// Summary condenses the rankings.
	Summary ComparisonSummary `json:"summary"`

	// Recommendation is a deterministic narrative derived from the above.
	Recommendation string `json:"recommendation"`
}

// Winner returns the winner for a criterion, or "" if it was not requested.
func (r *ComparisonReport) Winner(c Criterion) string {
	ranked := r.Rankings[c]
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0].Name
}

// UnknownNames returns the inputs that resolved to placeholders.
func (r *ComparisonReport) UnknownNames() []string {
	var names []string
	for _, e := range r.Entries {
		if e.Unknown {
			names = append(names, e.Input)
		}
	}
	return names
}
