package driving

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// SearchService ranks catalog entries against free text.
type SearchService interface {
	// Search scores every entry of the selected sources against the query,
	// merges duplicates across sources and returns at most query.Limit results.
	// Failing sources are skipped and reported in SearchResponse.SourceErrors.
	Search(ctx context.Context, query domain.Query) (*domain.SearchResponse, error)

	// Recommend expands a task description into keywords, searches each
	// keyword and merges the results. A limit <= 0 uses the configured default.
	Recommend(ctx context.Context, task string, limit int) (*domain.SearchResponse, error)

	// Lookup resolves a name to a single entry by exact then substring match.
	// Returns domain.ErrUnknownEntry if nothing matches.
	Lookup(ctx context.Context, name string) (*domain.CatalogEntry, error)

	// Categories lists categories with their entry counts.
	Categories(ctx context.Context) ([]domain.CategorySummary, error)

	// Top lists entries ordered by a raw metric (ratings or downloads).
	Top(ctx context.Context, opts domain.TopOptions) ([]domain.CatalogEntry, error)

	// Refresh drops cached results after catalog data changed.
	Refresh()
}
