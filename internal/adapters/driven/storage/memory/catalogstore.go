package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interfaces.
var (
	_ driven.SnapshotStore    = (*CatalogStore)(nil)
	_ driven.CategoryProvider = (*CatalogStore)(nil)
)

// CatalogStore is an in-memory implementation of driven.SnapshotStore.
// It also serves the working catalog: each source's entries are exposed
// through ProviderFor, so a later Replace is seen by every provider.
type CatalogStore struct {
	mu         sync.RWMutex
	entries    map[domain.Source][]domain.CatalogEntry
	updated    map[domain.Source]time.Time
	categories []domain.Category
}

// NewCatalogStore creates a new in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		entries: make(map[domain.Source][]domain.CatalogEntry),
		updated: make(map[domain.Source]time.Time),
	}
}

// Replace swaps the entries of one source.
func (s *CatalogStore) Replace(_ context.Context, source domain.Source, entries []domain.CatalogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[source] = slices.Clone(entries)
	s.updated[source] = time.Now().UTC()
	return nil
}

// Entries returns a copy of one source's entries.
func (s *CatalogStore) Entries(_ context.Context, source domain.Source) ([]domain.CatalogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries[source]), nil
}

// Status reports every source holding entries, in priority order.
func (s *CatalogStore) Status(_ context.Context) ([]domain.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sources := make([]domain.Source, 0, len(s.entries))
	for src := range s.entries {
		sources = append(sources, src)
	}
	domain.SortSources(sources)

	result := make([]domain.SnapshotInfo, 0, len(sources))
	for _, src := range sources {
		result = append(result, domain.SnapshotInfo{
			Source:    src,
			Entries:   len(s.entries[src]),
			UpdatedAt: s.updated[src],
		})
	}
	return result, nil
}

// Close is a no-op.
func (s *CatalogStore) Close() error {
	return nil
}

// SetCategories replaces the category table.
func (s *CatalogStore) SetCategories(categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = slices.Clone(categories)
}

// MergeCategories adds categories whose IDs are not yet known,
// keeping the existing display order.
func (s *CatalogStore) MergeCategories(categories []domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range categories {
		known := slices.ContainsFunc(s.categories, func(existing domain.Category) bool {
			return existing.ID == c.ID
		})
		if !known {
			s.categories = append(s.categories, c)
		}
	}
}

// Categories returns the category table in display order.
func (s *CatalogStore) Categories(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories), nil
}

// ProviderFor returns a provider reading the current entries of source.
func (s *CatalogStore) ProviderFor(source domain.Source) driven.CatalogProvider {
	return &storeProvider{store: s, source: source}
}

// storeProvider serves one source of a CatalogStore.
type storeProvider struct {
	store  *CatalogStore
	source domain.Source
}

func (p *storeProvider) Source() domain.Source {
	return p.source
}

func (p *storeProvider) ListEntries(ctx context.Context, category string) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := p.store.Entries(ctx, p.source)
	if err != nil || category == "" {
		return entries, err
	}
	filtered := entries[:0]
	for _, e := range entries {
		if domain.InCategory(e.Category, category) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
