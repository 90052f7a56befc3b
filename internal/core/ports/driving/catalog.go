package driving

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// CatalogService manages the persisted catalog snapshot.
type CatalogService interface {
	// Import loads a catalog document and stores its entries in the snapshot,
	// replacing each source it contains. Returns the number of entries stored.
	Import(ctx context.Context, path string) (int, error)

	// Sync pulls the live remote index into the snapshot.
	// Returns the number of entries stored.
	Sync(ctx context.Context) (int, error)

	// Status summarises the snapshot.
	Status(ctx context.Context) ([]domain.SnapshotInfo, error)
}
