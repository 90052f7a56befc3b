package domain

import (
	"fmt"
	"strings"
)

// Default result limits.
const (
	// DefaultSearchLimit is used when a query does not set a limit.
	DefaultSearchLimit = 10

	// DefaultRecommendLimit is used when a recommendation does not set a limit.
	DefaultRecommendLimit = 5
)

// Query is a search request.
type Query struct {
	// Text is the free-text query. May be empty, in which case every
	// entry matches on name and description.
	Text string `json:"text"`

	// Category restricts results to one category ID. Empty means any.
	Category string `json:"category,omitempty"`

	// Sources restricts results to a subset of sources. Empty means
	// every enabled source.
	Sources []Source `json:"sources,omitempty"`

	// Limit caps the number of results. Zero or negative means the default.
	Limit int `json:"limit"`
}

// Normalized returns a copy with lowercase trimmed text, sorted unique
// sources and a positive limit.
func (q Query) Normalized() Query {
	out := Query{
		Text:     strings.ToLower(strings.TrimSpace(q.Text)),
		Category: strings.ToLower(strings.TrimSpace(q.Category)),
		Limit:    q.Limit,
	}
	if out.Limit <= 0 {
		out.Limit = DefaultSearchLimit
	}
	if len(q.Sources) > 0 {
		seen := make(map[Source]bool, len(q.Sources))
		for _, s := range q.Sources {
			if !seen[s] {
				seen[s] = true
				out.Sources = append(out.Sources, s)
			}
		}
		SortSources(out.Sources)
	}
	return out
}

// Tokens returns the unique whitespace separated tokens of the lowercase
// text, in first-seen order.
func (q Query) Tokens() []string {
	return Tokenize(q.Text)
}

// CacheKey returns a deterministic key for the normalised query.
// op distinguishes operations sharing the cache (search, recommend).
func (q Query) CacheKey(op string) string {
	n := q.Normalized()
	sources := make([]string, len(n.Sources))
	for i, s := range n.Sources {
		sources[i] = string(s)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%d", op, n.Text, n.Category, strings.Join(sources, ","), n.Limit)
}

// Includes reports whether the query's source filter admits s.
func (q Query) Includes(s Source) bool {
	if len(q.Sources) == 0 {
		return true
	}
	for _, want := range q.Sources {
		if want == s {
			return true
		}
	}
	return false
}

// Tokenize lowercases text and splits it on whitespace, dropping duplicates.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// ScoreBreakdown records the weighted contribution of each scoring component.
type ScoreBreakdown struct {
	Name        float64 `json:"name"`
	Keywords    float64 `json:"keywords"`
	Description float64 `json:"description"`
	Features    float64 `json:"features"`

	// Signals is the sum of remote index signals (stars, rank).
	Signals float64 `json:"signals,omitempty"`
}

// Total returns the sum of all components clamped to [0, 1].
func (b ScoreBreakdown) Total() float64 {
	t := b.Name + b.Keywords + b.Description + b.Features + b.Signals
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// ScoredResult is a catalog entry ranked against a query.
type ScoredResult struct {
	// Entry is the matched catalog entry.
	Entry CatalogEntry `json:"entry"`

	// Score is the relevance in [0, 1].
	Score float64 `json:"score"`

	// Source is the source the entry was found under.
	Source Source `json:"source"`

	// Breakdown explains the score.
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// SearchResponse is the result of a search or recommendation.
type SearchResponse struct {
	// RequestID identifies this response in logs and annotations.
	RequestID string `json:"request_id"`

	// Query is the normalised query that was executed.
	Query Query `json:"query"`

	// Keywords is the keyword expansion used by recommendations.
	Keywords []string `json:"keywords,omitempty"`

	// Results are ordered by descending score.
	Results []ScoredResult `json:"results"`

	// SourceErrors lists sources that failed and were skipped.
	SourceErrors []*SourceError `json:"warnings,omitempty"`

	// Cached is true when the results were served from the result cache.
	Cached bool `json:"cached"`
}

// Degraded returns true if any source failed.
func (r *SearchResponse) Degraded() bool {
	return len(r.SourceErrors) > 0
}

// TopOptions selects entries by a raw metric instead of relevance.
type TopOptions struct {
	// By is the metric to order by: CriterionRatings or CriterionDownloads.
	By Criterion

	// Category restricts results to one category. Empty means any.
	Category string

	// Limit caps the number of results. Zero means DefaultSearchLimit.
	Limit int
}
