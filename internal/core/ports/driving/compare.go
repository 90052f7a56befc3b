package driving

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// CompareService compares a handful of entries across criteria.
type CompareService interface {
	// Compare resolves names against the enabled catalogs and ranks them.
	// Unresolved names become flagged placeholders. Fewer than two names
	// returns domain.ErrInsufficientEntries. Empty criteria use the defaults.
	Compare(ctx context.Context, names []string, criteria []domain.Criterion) (*domain.ComparisonReport, error)
}
