package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Cache key operations.
const (
	opSearch    = "search"
	opRecommend = "recommend"
)

// SearchService ranks entries from every enabled source.
type SearchService struct {
	providers      []driven.CatalogProvider
	aggregator     *Aggregator
	expander       *KeywordExpander
	cache          driven.ResultCache
	categories     driven.CategoryProvider
	defaultLimit   int
	recommendLimit int
}

// NewSearchService creates a new search service.
// Providers should be given in source priority order.
// The cache is optional and may be nil.
func NewSearchService(
	providers []driven.CatalogProvider,
	aggregator *Aggregator,
	cache driven.ResultCache,
) *SearchService {
	return &SearchService{
		providers:      providers,
		aggregator:     aggregator,
		expander:       NewKeywordExpander(),
		cache:          cache,
		defaultLimit:   domain.DefaultSearchLimit,
		recommendLimit: domain.DefaultRecommendLimit,
	}
}

// SetCategoryProvider sets the category table used by Categories.
func (s *SearchService) SetCategoryProvider(categories driven.CategoryProvider) {
	s.categories = categories
}

// SetLimits overrides the default search and recommendation limits.
func (s *SearchService) SetLimits(search, recommend int) {
	if search > 0 {
		s.defaultLimit = search
	}
	if recommend > 0 {
		s.recommendLimit = recommend
	}
}

// Search scores every entry of the selected sources and merges the results.
func (s *SearchService) Search(ctx context.Context, query domain.Query) (*domain.SearchResponse, error) {
	if err := validateSources(query.Sources); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if query.Limit <= 0 {
		query.Limit = s.defaultLimit
	}
	query = query.Normalized()

	logger.Section("Search")
	logger.Debug("query=%q category=%q sources=%v limit=%d", query.Text, query.Category, query.Sources, query.Limit)

	resp := &domain.SearchResponse{
		RequestID: uuid.NewString(),
		Query:     query,
	}

	key := query.CacheKey(opSearch)
	if cached, ok := s.cacheGet(key); ok {
		logger.Debug("cache hit for %q", key)
		resp.Results = cached
		resp.Cached = true
		return resp, nil
	}

	batches := s.aggregator.Collect(ctx, query, s.selectProviders(query))
	for _, b := range batches {
		if b.Err != nil {
			resp.SourceErrors = append(resp.SourceErrors, b.Err)
			continue
		}
		logger.Debug("source %s: %d candidate(s)", b.Source, len(b.Results))
	}
	resp.Results = MergeBatches(batches, query.Limit)

	logger.Info("search %s: %d result(s), %d failed source(s)", resp.RequestID, len(resp.Results), len(resp.SourceErrors))

	if !resp.Degraded() {
		s.cachePut(key, resp.Results)
	}
	return resp, nil
}

// Recommend expands the task into keywords, scores each keyword against
// every source and merges all candidates.
func (s *SearchService) Recommend(ctx context.Context, task string, limit int) (*domain.SearchResponse, error) {
	if limit <= 0 {
		limit = s.recommendLimit
	}
	keywords := s.expander.Expand(task)
	query := domain.Query{Text: task, Limit: limit}.Normalized()

	logger.Section("Recommend")
	logger.Debug("task=%q keywords=%v limit=%d", task, keywords, limit)

	resp := &domain.SearchResponse{
		RequestID: uuid.NewString(),
		Query:     query,
		Keywords:  keywords,
	}

	key := query.CacheKey(opRecommend)
	if cached, ok := s.cacheGet(key); ok {
		resp.Results = cached
		resp.Cached = true
		return resp, nil
	}

	listings := s.aggregator.List(ctx, "", s.providers)

	var lists [][]domain.ScoredResult
	for _, l := range listings {
		if l.Err != nil {
			resp.SourceErrors = append(resp.SourceErrors, l.Err)
			continue
		}
		for _, kw := range keywords {
			lists = append(lists, s.aggregator.Rank(l.Source, l.Entries, domain.Query{Text: kw, Limit: limit}))
		}
	}
	resp.Results = Merge(lists, limit)

	if !resp.Degraded() {
		s.cachePut(key, resp.Results)
	}
	return resp, nil
}

// Lookup resolves a name across every enabled source.
func (s *SearchService) Lookup(ctx context.Context, name string) (*domain.CatalogEntry, error) {
	entries, errs := unionCatalog(ctx, s.aggregator, "", s.providers)
	for _, err := range errs {
		logger.Debug("lookup: %v", err)
	}

	entry, ok := resolveName(name, entries)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEntry, name)
	}
	return &entry, nil
}

// Categories lists the category table with entry counts across every
// enabled source. Categories used by entries but missing from the table
// are appended in first-seen order.
func (s *SearchService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	var table []domain.Category
	if s.categories != nil {
		cats, err := s.categories.Categories(ctx)
		if err != nil {
			return nil, fmt.Errorf("categories: %w", err)
		}
		table = cats
	}

	entries, _ := unionCatalog(ctx, s.aggregator, "", s.providers)

	counts := make(map[string]int)
	var extra []string
	known := make(map[string]bool, len(table))
	for _, c := range table {
		known[c.ID] = true
	}
	for _, e := range entries {
		if e.Category == "" {
			continue
		}
		if !known[e.Category] {
			known[e.Category] = true
			extra = append(extra, e.Category)
		}
		counts[e.Category]++
	}

	summaries := make([]domain.CategorySummary, 0, len(table)+len(extra))
	for _, c := range table {
		summaries = append(summaries, domain.CategorySummary{Category: c, Count: counts[c.ID]})
	}
	for _, id := range extra {
		summaries = append(summaries, domain.CategorySummary{
			Category: domain.Category{ID: id, Name: id},
			Count:    counts[id],
		})
	}
	return summaries, nil
}

// Top lists entries ordered by a raw metric, highest first.
func (s *SearchService) Top(ctx context.Context, opts domain.TopOptions) ([]domain.CatalogEntry, error) {
	if opts.By == "" {
		opts.By = domain.CriterionRatings
	}
	if !opts.By.IsValid() {
		return nil, fmt.Errorf("top: %w: %q", domain.ErrUnknownCriterion, opts.By)
	}
	if opts.Limit <= 0 {
		opts.Limit = s.defaultLimit
	}

	entries, _ := unionCatalog(ctx, s.aggregator, strings.TrimSpace(opts.Category), s.providers)
	sort.SliceStable(entries, func(i, j int) bool {
		return opts.By.Value(entries[i]) > opts.By.Value(entries[j])
	})
	if len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}

// Refresh drops cached results.
func (s *SearchService) Refresh() {
	if s.cache != nil {
		s.cache.Invalidate()
		logger.Debug("result cache invalidated")
	}
}

func (s *SearchService) selectProviders(query domain.Query) []driven.CatalogProvider {
	if len(query.Sources) == 0 {
		return s.providers
	}
	var out []driven.CatalogProvider
	for _, p := range s.providers {
		if query.Includes(p.Source()) {
			out = append(out, p)
		}
	}
	return out
}

func (s *SearchService) cacheGet(key string) ([]domain.ScoredResult, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *SearchService) cachePut(key string, results []domain.ScoredResult) {
	if s.cache != nil {
		s.cache.Put(key, results)
	}
}

func validateSources(sources []domain.Source) error {
	for _, src := range sources {
		if !src.IsValid() {
			return fmt.Errorf("%w: %q", domain.ErrUnknownSource, src)
		}
	}
	return nil
}
