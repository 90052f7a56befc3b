package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/logger"
)

// SourceListing is the raw entry list returned by one provider.
type SourceListing struct {
	Source  domain.Source
	Entries []domain.CatalogEntry
	Err     *domain.SourceError
}

// SourceBatch is the scored candidate list of one source.
type SourceBatch struct {
	Source  domain.Source
	Results []domain.ScoredResult
	Err     *domain.SourceError
}

// AggregatorConfig holds aggregation tunables.
type AggregatorConfig struct {
	// MinScore drops candidates scoring below it.
	MinScore float64

	// SourceTimeout bounds each provider call. Zero disables the bound.
	SourceTimeout time.Duration

	// MaxWorkers caps the worker pool. Zero means domain.DefaultMaxWorkers.
	MaxWorkers int
}

// Aggregator queries every provider independently on a bounded worker pool.
// A failing, panicking or slow provider degrades to an empty listing with
// an annotated error and never blocks its siblings.
type Aggregator struct {
	scorer *Scorer
	config AggregatorConfig
}

// NewAggregator creates an aggregator.
func NewAggregator(scorer *Scorer, config AggregatorConfig) *Aggregator {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = domain.DefaultMaxWorkers
	}
	return &Aggregator{scorer: scorer, config: config}
}

// Collect lists and scores every provider for the query. Batches are
// returned in provider order, each capped to query.Limit.
func (a *Aggregator) Collect(ctx context.Context, query domain.Query, providers []driven.CatalogProvider) []SourceBatch {
	query = query.Normalized()
	listings := a.List(ctx, query.Category, providers)

	batches := make([]SourceBatch, len(listings))
	for i, l := range listings {
		batches[i] = SourceBatch{Source: l.Source, Err: l.Err}
		if l.Err == nil {
			batches[i].Results = a.Rank(l.Source, l.Entries, query)
		}
	}
	return batches
}

// List fetches every provider's entries concurrently. This is the
// synchronisation barrier: it returns once every provider has answered,
// failed or timed out.
func (a *Aggregator) List(ctx context.Context, category string, providers []driven.CatalogProvider) []SourceListing {
	listings := make([]SourceListing, len(providers))
	if len(providers) == 0 {
		return listings
	}

	workers := min(len(providers), a.config.MaxWorkers)
	jobs := make(chan int)
	var wg sync.WaitGroup

	logger.Debug("aggregating %d source(s) on %d worker(s)", len(providers), workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				listings[i] = a.fetch(ctx, providers[i], category)
			}
		}()
	}
	for i := range providers {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return listings
}

// Rank scores entries against the query, keeps those at or above the
// threshold, sorts them by descending score and caps them to query.Limit.
// Ties keep catalog order.
func (a *Aggregator) Rank(source domain.Source, entries []domain.CatalogEntry, query domain.Query) []domain.ScoredResult {
	query = query.Normalized()

	var results []domain.ScoredResult
	for _, e := range entries {
		if !domain.InCategory(e.Category, query.Category) {
			continue
		}
		b := a.scorer.Score(e, query.Text)
		score := b.Total()
		if score < a.config.MinScore {
			continue
		}
		results = append(results, domain.ScoredResult{
			Entry:     e,
			Score:     score,
			Source:    source,
			Breakdown: b,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > query.Limit {
		results = results[:query.Limit]
	}
	return results
}

type fetchResult struct {
	entries []domain.CatalogEntry
	err     error
}

func (a *Aggregator) fetch(ctx context.Context, p driven.CatalogProvider, category string) SourceListing {
	source := p.Source()
	start := time.Now()

	if a.config.SourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.SourceTimeout)
		defer cancel()
	}

	done := make(chan fetchResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fetchResult{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		entries, err := p.ListEntries(ctx, category)
		done <- fetchResult{entries: entries, err: err}
	}()

	var res fetchResult
	select {
	case res = <-done:
	case <-ctx.Done():
		res = fetchResult{err: ctx.Err()}
	}

	if res.err != nil {
		logger.Warn("source %s unavailable: %v", source, res.err)
		return SourceListing{Source: source, Err: domain.NewSourceError(source, res.err)}
	}

	logger.Debug("source %s: %d entries in %s", source, len(res.entries), time.Since(start).Round(time.Millisecond))
	return SourceListing{Source: source, Entries: res.entries}
}
