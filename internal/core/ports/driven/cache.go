package driven

import "github.com/custodia-labs/capseek/internal/core/domain"

// ResultCache holds search results for a bounded lifetime.
// Results are immutable once stored, so implementations only need
// a simple read/write guard.
type ResultCache interface {
	// Get returns the results stored under key, if present and not expired.
	Get(key string) ([]domain.ScoredResult, bool)

	// Put stores results under key.
	Put(key string, results []domain.ScoredResult)

	// Invalidate drops every cached result. Called whenever catalog data changes.
	Invalidate()
}
