package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
	"github.com/custodia-labs/capseek/internal/i18n"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure CompareService implements the interface.
var _ driving.CompareService = (*CompareService)(nil)

// maxSuggestions caps the "did you mean" list for unknown names.
const maxSuggestions = 3

// CompareService ranks a handful of entries across comparison criteria.
type CompareService struct {
	providers  []driven.CatalogProvider
	aggregator *Aggregator
	localizer  *i18n.Localizer
}

// NewCompareService creates a new compare service.
// A nil localizer produces English narratives.
func NewCompareService(providers []driven.CatalogProvider, aggregator *Aggregator, localizer *i18n.Localizer) *CompareService {
	if localizer == nil {
		localizer = i18n.Default()
	}
	return &CompareService{
		providers:  providers,
		aggregator: aggregator,
		localizer:  localizer,
	}
}

// Compare resolves names and ranks them on each criterion.
func (s *CompareService) Compare(ctx context.Context, names []string, criteria []domain.Criterion) (*domain.ComparisonReport, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("compare: %w (got %d)", domain.ErrInsufficientEntries, len(names))
	}
	if len(criteria) == 0 {
		criteria = domain.DefaultCriteria()
	}
	for _, c := range criteria {
		if !c.IsValid() {
			return nil, fmt.Errorf("compare: %w: %q", domain.ErrUnknownCriterion, c)
		}
	}

	logger.Section("Compare")

	catalog, errs := unionCatalog(ctx, s.aggregator, "", s.providers)
	for _, err := range errs {
		logger.Warn("compare: %v", err)
	}
	logger.Debug("resolving %d name(s) against %d entries", len(names), len(catalog))

	report := &domain.ComparisonReport{
		Entries:  resolveAll(names, catalog),
		Criteria: criteria,
		Rankings: make(map[domain.Criterion][]domain.RankedValue, len(criteria)),
	}
	for _, c := range criteria {
		report.Rankings[c] = rankBy(report.Entries, c)
	}
	report.Summary = summarize(report.Entries, report.Rankings, criteria)
	report.Recommendation = renderNarrative(s.localizer, report)

	return report, nil
}

func resolveAll(names []string, catalog []domain.CatalogEntry) []domain.ComparedEntry {
	candidates := make([]string, len(catalog))
	for i, e := range catalog {
		candidates[i] = e.Name
	}

	out := make([]domain.ComparedEntry, len(names))
	for i, name := range names {
		if entry, ok := resolveName(name, catalog); ok {
			out[i] = domain.ComparedEntry{Input: name, Entry: entry}
			continue
		}
		logger.Debug("compare: %v: %s", domain.ErrUnknownEntry, name)
		out[i] = domain.ComparedEntry{
			Input:       name,
			Entry:       domain.PlaceholderEntry(name),
			Unknown:     true,
			Suggestions: suggest(name, candidates),
		}
	}
	return out
}

// suggest returns up to maxSuggestions catalog names fuzzily matching name.
func suggest(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	var out []string
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// rankBy orders entries by the criterion, highest first; ties keep input order.
func rankBy(entries []domain.ComparedEntry, c domain.Criterion) []domain.RankedValue {
	ranked := make([]domain.RankedValue, len(entries))
	for i, e := range entries {
		ranked[i] = domain.RankedValue{Name: e.Entry.Name, Value: c.Value(e.Entry)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	return ranked
}

func summarize(entries []domain.ComparedEntry, rankings map[domain.Criterion][]domain.RankedValue, criteria []domain.Criterion) domain.ComparisonSummary {
	summary := domain.ComparisonSummary{
		TotalEntries:    len(entries),
		BestByCriterion: make(map[domain.Criterion]domain.RankedValue, len(criteria)),
	}
	for _, c := range criteria {
		if ranked := rankings[c]; len(ranked) > 0 {
			summary.BestByCriterion[c] = ranked[0]
		}
	}

	best := 0
	for i := 1; i < len(entries); i++ {
		if entries[i].Entry.Metrics.Popularity() > entries[best].Entry.Metrics.Popularity() {
			best = i
		}
	}
	if len(entries) > 0 {
		summary.BestOverall = entries[best].Entry.Name
	}

	summary.FeatureComparison = compareFeatures(entries)
	summary.UseCaseOverlap = intersectUseCases(entries)
	return summary
}

// compareFeatures lists, for every feature in first-seen order, the
// entries offering it.
func compareFeatures(entries []domain.ComparedEntry) []domain.FeatureSupport {
	var out []domain.FeatureSupport
	index := make(map[string]int)
	for _, e := range entries {
		counted := make(map[string]bool)
		for _, f := range e.Entry.Features {
			if counted[f] {
				continue
			}
			counted[f] = true
			i, ok := index[f]
			if !ok {
				i = len(out)
				index[f] = i
				out = append(out, domain.FeatureSupport{Feature: f})
			}
			out[i].Entries = append(out[i].Entries, e.Entry.Name)
		}
	}
	return out
}

// intersectUseCases returns the use cases shared by every entry, in the
// order of the first entry. Empty if any entry has none.
func intersectUseCases(entries []domain.ComparedEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	shared := make(map[string]int)
	for _, e := range entries {
		if len(e.Entry.UseCases) == 0 {
			return nil
		}
		seen := make(map[string]bool)
		for _, uc := range e.Entry.UseCases {
			if !seen[uc] {
				seen[uc] = true
				shared[uc]++
			}
		}
	}

	var out []string
	emitted := make(map[string]bool)
	for _, uc := range entries[0].Entry.UseCases {
		if shared[uc] == len(entries) && !emitted[uc] {
			emitted[uc] = true
			out = append(out, uc)
		}
	}
	return out
}
