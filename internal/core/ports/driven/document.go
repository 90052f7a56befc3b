package driven

import (
	"context"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// DocumentLoader reads a catalog document from disk.
type DocumentLoader interface {
	// Load parses the document at path. Missing or malformed documents
	// return an error wrapping domain.ErrConfigLoad.
	Load(ctx context.Context, path string) (*CatalogDocument, error)
}

// CatalogDocument is the parsed content of a catalog document.
type CatalogDocument struct {
	Entries    []domain.CatalogEntry
	Categories []domain.Category
}
