package driven

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// CatalogProvider supplies the entries of one source.
// Implementations may be backed by a bundled dataset, a loaded document,
// a persisted snapshot, a directory scan or a remote index.
type CatalogProvider interface {
	// Source returns the source this provider serves.
	Source() domain.Source

	// ListEntries returns the source's entries in catalog order.
	// A non-empty category restricts the result to that category.
	// Implementations should honour ctx cancellation; callers stop
	// waiting on a provider once ctx is done regardless.
	ListEntries(ctx context.Context, category string) ([]domain.CatalogEntry, error)
}

// CategoryProvider supplies the category table shown to users.
type CategoryProvider interface {
	// Categories returns categories in display order.
	Categories(ctx context.Context) ([]domain.Category, error)
}
