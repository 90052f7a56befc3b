package driven

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// SnapshotStore persists catalog entries between runs.
// Snapshot entries back their sources in preference to bundled data.
type SnapshotStore interface {
	// Replace atomically swaps the stored entries of one source.
	Replace(ctx context.Context, source domain.Source, entries []domain.CatalogEntry) error

	// Entries returns the stored entries of one source in insertion order.
	Entries(ctx context.Context, source domain.Source) ([]domain.CatalogEntry, error)

	// Status summarises every source that has stored entries.
	Status(ctx context.Context) ([]domain.SnapshotInfo, error)

	// Close releases the underlying storage.
	Close() error
}
