package services

import (
	"sort"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Merge combines per-source candidate lists into one ranked list of at
// most limit results.
//
// Entries are identified by their canonical (lowercase) name. When a name
// appears more than once, the strictly higher score wins; equal scores go
// to the higher priority source (local, official, community, remote).
// The surviving entry keeps the position where the name was first seen,
// so the final stable sort by descending score is deterministic.
func Merge(lists [][]domain.ScoredResult, limit int) []domain.ScoredResult {
	index := make(map[string]int)
	var merged []domain.ScoredResult

	for _, list := range lists {
		for _, r := range list {
			key := r.Entry.CanonicalName()
			i, seen := index[key]
			if !seen {
				index[key] = len(merged)
				merged = append(merged, r)
				continue
			}
			if preferred(r, merged[i]) {
				merged[i] = r
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// MergeBatches merges the results of every healthy batch.
func MergeBatches(batches []SourceBatch, limit int) []domain.ScoredResult {
	lists := make([][]domain.ScoredResult, 0, len(batches))
	for _, b := range batches {
		if b.Err == nil {
			lists = append(lists, b.Results)
		}
	}
	return Merge(lists, limit)
}

func preferred(candidate, current domain.ScoredResult) bool {
	if candidate.Score != current.Score {
		return candidate.Score > current.Score
	}
	return candidate.Source.Priority() < current.Source.Priority()
}
