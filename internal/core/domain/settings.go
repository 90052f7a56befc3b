package domain

import "time"

// Default tunables.
const (
	// DefaultMinScore is the relevance threshold below which entries are dropped.
	DefaultMinScore = 0.3

	// DefaultSourceTimeout bounds how long aggregation waits on one source.
	DefaultSourceTimeout = 5 * time.Second

	// DefaultMaxWorkers caps the aggregation worker pool.
	DefaultMaxWorkers = 8

	// DefaultCacheTTL is the lifetime of cached search results.
	DefaultCacheTTL = time.Hour

	// DefaultCacheMaxEntries caps the number of cached queries.
	DefaultCacheMaxEntries = 512

	// DefaultScanDepth bounds the local skills directory walk.
	DefaultScanDepth = 3

	// DefaultGitHubTopic is the repository topic queried by the live GitHub index.
	DefaultGitHubTopic = "mcp-server"

	// DefaultSignalWeight is the default weight of each remote index signal.
	DefaultSignalWeight = 0.10
)

// SourceSettings controls which sources take part in aggregation.
type SourceSettings struct {
	// Enabled maps each source to whether it is searched.
	Enabled map[Source]bool

	// LocalPath is the directory scanned for installed skills.
	// Empty means <config dir>/skills.
	LocalPath string

	// LocalMaxDepth bounds the local directory walk.
	LocalMaxDepth int

	// GitHubLive queries the GitHub API instead of the bundled index.
	GitHubLive bool

	// GitHubTopic is the repository topic searched when GitHubLive is set.
	GitHubTopic string
}

// IsEnabled reports whether s is enabled. Unlisted sources are enabled.
func (s SourceSettings) IsEnabled(src Source) bool {
	enabled, ok := s.Enabled[src]
	return !ok || enabled
}

// SearchSettings holds ranking and aggregation tunables.
type SearchSettings struct {
	// DefaultLimit is used by search when no limit is given.
	DefaultLimit int

	// RecommendLimit is used by recommend when no limit is given.
	RecommendLimit int

	// MinScore drops entries scoring below it.
	MinScore float64

	// SourceTimeout bounds each source query.
	SourceTimeout time.Duration

	// MaxWorkers caps the aggregation worker pool.
	MaxWorkers int
}

// ScoringSettings weights the remote index signals.
type ScoringSettings struct {
	// StarsWeight scales min(stars/10000, 1).
	StarsWeight float64

	// RankWeight scales (11 - rank) / 10 for ranks 1..10.
	RankWeight float64
}

// CacheSettings controls the result cache.
type CacheSettings struct {
	Enabled bool
	TTL     time.Duration

	// MaxEntries caps the number of cached queries; the least recently
	// used query is evicted first.
	MaxEntries int
}

// CatalogSettings points at optional catalog documents.
type CatalogSettings struct {
	// Document is a JSON catalog replacing the built-in dataset.
	Document string
}

// UISettings holds presentation preferences.
type UISettings struct {
	// Locale selects the narrative language (e.g. "en", "zh").
	// Empty means detect from the environment.
	Locale string
}

// Settings holds all application settings.
type Settings struct {
	Sources SourceSettings
	Search  SearchSettings
	Scoring ScoringSettings
	Cache   CacheSettings
	Catalog CatalogSettings
	UI      UISettings
}

// DefaultSettings returns settings with sensible defaults.
// Every source is enabled; the GitHub index is served from bundled data
// until live mode is switched on.
func DefaultSettings() Settings {
	enabled := make(map[Source]bool)
	for _, s := range AllSources() {
		enabled[s] = true
	}
	return Settings{
		Sources: SourceSettings{
			Enabled:       enabled,
			LocalMaxDepth: DefaultScanDepth,
			GitHubTopic:   DefaultGitHubTopic,
		},
		Search: SearchSettings{
			DefaultLimit:   DefaultSearchLimit,
			RecommendLimit: DefaultRecommendLimit,
			MinScore:       DefaultMinScore,
			SourceTimeout:  DefaultSourceTimeout,
			MaxWorkers:     DefaultMaxWorkers,
		},
		Scoring: ScoringSettings{
			StarsWeight: DefaultSignalWeight,
			RankWeight:  DefaultSignalWeight,
		},
		Cache: CacheSettings{
			Enabled:    true,
			TTL:        DefaultCacheTTL,
			MaxEntries: DefaultCacheMaxEntries,
		},
	}
}

// EnabledSources returns the enabled sources in priority order.
func (s Settings) EnabledSources() []Source {
	var out []Source
	for _, src := range AllSources() {
		if s.Sources.IsEnabled(src) {
			out = append(out, src)
		}
	}
	return out
}
