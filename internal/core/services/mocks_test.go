package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockProvider implements driven.CatalogProvider for testing.
type mockProvider struct {
	source  domain.Source
	entries []domain.CatalogEntry
	err     error
	delay   time.Duration
	panics  bool

	calls atomic.Int32

	// active and peak track concurrent ListEntries calls across providers.
	active *atomic.Int32
	peak   *atomic.Int32
}

func (m *mockProvider) Source() domain.Source {
	return m.source
}

func (m *mockProvider) ListEntries(ctx context.Context, category string) ([]domain.CatalogEntry, error) {
	m.calls.Add(1)
	if m.active != nil {
		n := m.active.Add(1)
		defer m.active.Add(-1)
		for {
			p := m.peak.Load()
			if n <= p || m.peak.CompareAndSwap(p, n) {
				break
			}
		}
	}
	if m.panics {
		panic("provider exploded")
	}
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	if category == "" {
		return m.entries, nil
	}
	var out []domain.CatalogEntry
	for _, e := range m.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

// mockCategories implements driven.CategoryProvider for testing.
type mockCategories struct {
	categories []domain.Category
	err        error
}

func (m *mockCategories) Categories(_ context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

// mockCache implements driven.ResultCache for testing.
type mockCache struct {
	mu          sync.Mutex
	entries     map[string][]domain.ScoredResult
	puts        int
	invalidated int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]domain.ScoredResult)}
}

func (m *mockCache) Get(key string) ([]domain.ScoredResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.entries[key]
	return r, ok
}

func (m *mockCache) Put(key string, results []domain.ScoredResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	m.entries[key] = results
}

func (m *mockCache) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated++
	m.entries = make(map[string][]domain.ScoredResult)
}

// mockSnapshot implements driven.SnapshotStore for testing.
type mockSnapshot struct {
	mu         sync.Mutex
	data       map[domain.Source][]domain.CatalogEntry
	replaceErr error
}

func newMockSnapshot() *mockSnapshot {
	return &mockSnapshot{data: make(map[domain.Source][]domain.CatalogEntry)}
}

func (m *mockSnapshot) Replace(_ context.Context, source domain.Source, entries []domain.CatalogEntry) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[source] = entries
	return nil
}

func (m *mockSnapshot) Entries(_ context.Context, source domain.Source) ([]domain.CatalogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[source], nil
}

func (m *mockSnapshot) Status(_ context.Context) ([]domain.SnapshotInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.SnapshotInfo
	for _, src := range domain.AllSources() {
		if entries, ok := m.data[src]; ok {
			out = append(out, domain.SnapshotInfo{Source: src, Entries: len(entries)})
		}
	}
	return out, nil
}

func (m *mockSnapshot) Close() error {
	return nil
}

// mockLoader implements driven.DocumentLoader for testing.
type mockLoader struct {
	doc *driven.CatalogDocument
	err error
}

func (m *mockLoader) Load(_ context.Context, _ string) (*driven.CatalogDocument, error) {
	return m.doc, m.err
}

// --- Fixtures ---

var errProviderDown = errors.New("connection refused")

// alpha and beta are the two-entry catalog used across scoring and
// comparison tests.
func alpha() domain.CatalogEntry {
	return domain.NewCatalogEntry(domain.CatalogEntry{
		Name:     "alpha",
		Keywords: []string{"x", "y"},
		Source:   domain.SourceOfficial,
		Metrics:  domain.Metrics{Downloads: 100, Rating: 4.0},
		Features: []string{"queries", "schemas"},
		UseCases: []string{"analytics", "reporting"},
		Pros:     []string{"mature", "fast", "documented", "popular"},
	})
}

func beta() domain.CatalogEntry {
	return domain.NewCatalogEntry(domain.CatalogEntry{
		Name:     "beta",
		Keywords: []string{"y", "z"},
		Source:   domain.SourceOfficial,
		Metrics:  domain.Metrics{Downloads: 50, Rating: 4.8},
		Features: []string{"queries", "streaming"},
		UseCases: []string{"reporting", "etl"},
		Pros:     []string{"highly rated"},
	})
}

func entry(name string, source domain.Source, keywords ...string) domain.CatalogEntry {
	return domain.NewCatalogEntry(domain.CatalogEntry{
		Name:     name,
		Keywords: keywords,
		Source:   source,
	})
}

func providerOf(source domain.Source, entries ...domain.CatalogEntry) *mockProvider {
	return &mockProvider{source: source, entries: entries}
}

func testAggregator(minScore float64) *Aggregator {
	return NewAggregator(NewScorer(SignalWeights{Stars: 0.1, Rank: 0.1}), AggregatorConfig{
		MinScore:      minScore,
		SourceTimeout: time.Second,
	})
}
