package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// ErrSnapshotDisabled is returned when no snapshot store is configured.
var ErrSnapshotDisabled = errors.New("catalog snapshot not configured")

// ChangeFunc is called after a source's snapshot entries were replaced.
type ChangeFunc func(source domain.Source, entries []domain.CatalogEntry)

// CatalogService imports documents and live indexes into the snapshot.
type CatalogService struct {
	snapshot driven.SnapshotStore
	loader   driven.DocumentLoader
	live     driven.CatalogProvider
	onChange ChangeFunc
}

// NewCatalogService creates a new catalog service.
// The live provider is optional; without it Sync is unavailable.
func NewCatalogService(snapshot driven.SnapshotStore, loader driven.DocumentLoader, live driven.CatalogProvider) *CatalogService {
	return &CatalogService{
		snapshot: snapshot,
		loader:   loader,
		live:     live,
	}
}

// SetOnChange registers a callback run after every successful replace.
func (s *CatalogService) SetOnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Import loads the document at path and replaces the snapshot of every
// source it contains. Invalid entries are skipped with a warning.
func (s *CatalogService) Import(ctx context.Context, path string) (int, error) {
	if s.snapshot == nil {
		return 0, ErrSnapshotDisabled
	}
	if s.loader == nil {
		return 0, fmt.Errorf("import: %w", domain.ErrNotImplemented)
	}

	doc, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}

	grouped := make(map[domain.Source][]domain.CatalogEntry)
	var order []domain.Source
	for _, e := range doc.Entries {
		if err := e.Validate(); err != nil {
			logger.Warn("import: skipping entry: %v", err)
			continue
		}
		if !e.Source.IsValid() {
			logger.Warn("import: skipping %s: %v %q", e.Name, domain.ErrUnknownSource, e.Source)
			continue
		}
		if _, ok := grouped[e.Source]; !ok {
			order = append(order, e.Source)
		}
		grouped[e.Source] = append(grouped[e.Source], domain.NewCatalogEntry(e))
	}

	total := 0
	for _, src := range order {
		if err := s.replace(ctx, src, grouped[src]); err != nil {
			return total, fmt.Errorf("import %s: %w", path, err)
		}
		total += len(grouped[src])
	}
	logger.Info("imported %d entries from %s across %d source(s)", total, path, len(order))
	return total, nil
}

// Sync pulls the live remote index into the snapshot.
func (s *CatalogService) Sync(ctx context.Context) (int, error) {
	if s.snapshot == nil {
		return 0, ErrSnapshotDisabled
	}
	if s.live == nil {
		return 0, fmt.Errorf("sync: %w", domain.ErrNotImplemented)
	}

	src := s.live.Source()
	entries, err := s.live.ListEntries(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("sync: %w", domain.NewSourceError(src, err))
	}
	if err := s.replace(ctx, src, entries); err != nil {
		return 0, fmt.Errorf("sync: %w", err)
	}
	logger.Info("synced %d entries from %s", len(entries), src)
	return len(entries), nil
}

// Status summarises the snapshot.
func (s *CatalogService) Status(ctx context.Context) ([]domain.SnapshotInfo, error) {
	if s.snapshot == nil {
		return nil, ErrSnapshotDisabled
	}
	return s.snapshot.Status(ctx)
}

func (s *CatalogService) replace(ctx context.Context, src domain.Source, entries []domain.CatalogEntry) error {
	if err := s.snapshot.Replace(ctx, src, entries); err != nil {
		return fmt.Errorf("replace %s: %w", src, err)
	}
	if s.onChange != nil {
		s.onChange(src, entries)
	}
	return nil
}
