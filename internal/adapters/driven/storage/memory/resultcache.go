package memory

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
)

// Ensure ResultCache implements the interface.
var _ driven.ResultCache = (*ResultCache)(nil)

// Defaults used when no positive value is configured.
const (
	DefaultCacheTTL        = domain.DefaultCacheTTL
	DefaultCacheMaxEntries = domain.DefaultCacheMaxEntries
)

// ResultCache is an in-memory implementation of driven.ResultCache.
// Entries expire after a fixed TTL, and once maxEntries queries are held
// the least recently used one is evicted.
type ResultCache struct {
	ttl        time.Duration
	maxEntries int
	lru        *expirable.LRU[string, []domain.ScoredResult]
}

// NewResultCache creates a cache holding up to maxEntries queries for ttl each.
func NewResultCache(ttl time.Duration, maxEntries int) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &ResultCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		lru:        expirable.NewLRU[string, []domain.ScoredResult](maxEntries, nil, ttl),
	}
}

// Get returns a copy of the results under key if they have not expired.
func (c *ResultCache) Get(key string) ([]domain.ScoredResult, bool) {
	results, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return slices.Clone(results), true
}

// Put stores a copy of results under key.
func (c *ResultCache) Put(key string, results []domain.ScoredResult) {
	c.lru.Add(key, slices.Clone(results))
}

// Invalidate drops every cached result.
func (c *ResultCache) Invalidate() {
	c.lru.Purge()
}

// Len returns the number of stored keys.
func (c *ResultCache) Len() int {
	return c.lru.Len()
}
