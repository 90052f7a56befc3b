package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
)

// unionCatalog lists every provider and flattens the result, keeping the
// first occurrence of each canonical name. Providers are expected in
// priority order, so a local entry shadows a remote one of the same name.
// Failed sources are reported and skipped.
func unionCatalog(ctx context.Context, agg *Aggregator, category string, providers []driven.CatalogProvider) ([]domain.CatalogEntry, []*domain.SourceError) {
	listings := agg.List(ctx, category, providers)

	var entries []domain.CatalogEntry
	var errs []*domain.SourceError
	seen := make(map[string]bool)
	for _, l := range listings {
		if l.Err != nil {
			errs = append(errs, l.Err)
			continue
		}
		for _, e := range l.Entries {
			if !domain.InCategory(e.Category, category) {
				continue
			}
			key := e.CanonicalName()
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, e)
		}
	}
	return entries, errs
}

// resolveName finds the entry for name: an exact case-insensitive match
// first, then the first entry whose name contains name or is contained
// in it.
func resolveName(name string, entries []domain.CatalogEntry) (domain.CatalogEntry, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return domain.CatalogEntry{}, false
	}

	for _, e := range entries {
		if e.CanonicalName() == want {
			return e, true
		}
	}
	for _, e := range entries {
		canonical := e.CanonicalName()
		if canonical == "" {
			continue
		}
		if strings.Contains(canonical, want) || strings.Contains(want, canonical) {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}
