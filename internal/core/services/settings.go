package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
	"github.com/custodia-labs/capseek/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLocalPath      = "sources.local.path"
	keyLocalMaxDepth  = "sources.local.max_depth"
	keyGitHubLive     = "sources.github.live"
	keyGitHubTopic    = "sources.github.topic"
	keyDocument       = "catalog.document"
	keyDefaultLimit   = "search.default_limit"
	keyRecommendLimit = "search.recommend_limit"
	keyMinScore       = "search.min_score"
	keySourceTimeout  = "search.source_timeout"
	keyMaxWorkers     = "search.max_workers"
	keyStarsWeight    = "scoring.stars_weight"
	keyRankWeight     = "scoring.rank_weight"
	keyCacheEnabled   = "cache.enabled"
	keyCacheTTL       = "cache.ttl"
	keyCacheMax       = "cache.max_entries"
	keyLocale         = "ui.locale"
)

// sourceEnabledKey returns the config key toggling a source.
func sourceEnabledKey(s domain.Source) string {
	return "sources." + string(s) + ".enabled"
}

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindInt
	kindFloat
)

// settableKeys lists every key accepted by Set with its value kind.
var settableKeys = map[string]valueKind{
	keyLocalPath:      kindString,
	keyLocalMaxDepth:  kindInt,
	keyGitHubLive:     kindBool,
	keyGitHubTopic:    kindString,
	keyDocument:       kindString,
	keyDefaultLimit:   kindInt,
	keyRecommendLimit: kindInt,
	keyMinScore:       kindFloat,
	keySourceTimeout:  kindInt,
	keyMaxWorkers:     kindInt,
	keyStarsWeight:    kindFloat,
	keyRankWeight:     kindFloat,
	keyCacheEnabled:   kindBool,
	keyCacheTTL:       kindInt,
	keyCacheMax:       kindInt,
	keyLocale:         kindString,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Values of the wrong type
// or outside their valid range are reported and replaced by defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := LoadSettings(s.configStore)
	return &settings, nil
}

// LoadSettings reads settings from store, falling back to defaults for
// missing or malformed values. A nil store yields the defaults.
func LoadSettings(store driven.ConfigStore) domain.Settings {
	settings := domain.DefaultSettings()
	if store == nil {
		return settings
	}
	r := settingsReader{store: store}

	for _, src := range domain.AllSources() {
		settings.Sources.Enabled[src] = r.bool(sourceEnabledKey(src), true)
	}
	settings.Sources.LocalPath = r.string(keyLocalPath, "")
	settings.Sources.LocalMaxDepth = r.positiveInt(keyLocalMaxDepth, settings.Sources.LocalMaxDepth)
	settings.Sources.GitHubLive = r.bool(keyGitHubLive, false)
	settings.Sources.GitHubTopic = r.string(keyGitHubTopic, settings.Sources.GitHubTopic)

	settings.Catalog.Document = r.string(keyDocument, "")

	settings.Search.DefaultLimit = r.positiveInt(keyDefaultLimit, settings.Search.DefaultLimit)
	settings.Search.RecommendLimit = r.positiveInt(keyRecommendLimit, settings.Search.RecommendLimit)
	settings.Search.MinScore = r.unitFloat(keyMinScore, settings.Search.MinScore)
	settings.Search.SourceTimeout = time.Duration(r.positiveInt(keySourceTimeout, int(settings.Search.SourceTimeout/time.Second))) * time.Second
	settings.Search.MaxWorkers = r.positiveInt(keyMaxWorkers, settings.Search.MaxWorkers)

	settings.Scoring.StarsWeight = r.unitFloat(keyStarsWeight, settings.Scoring.StarsWeight)
	settings.Scoring.RankWeight = r.unitFloat(keyRankWeight, settings.Scoring.RankWeight)

	settings.Cache.Enabled = r.bool(keyCacheEnabled, settings.Cache.Enabled)
	settings.Cache.TTL = time.Duration(r.positiveInt(keyCacheTTL, int(settings.Cache.TTL/time.Second))) * time.Second
	settings.Cache.MaxEntries = r.positiveInt(keyCacheMax, settings.Cache.MaxEntries)

	settings.UI.Locale = r.string(keyLocale, "")

	return settings
}

// Set updates one setting by its dotted key.
func (s *SettingsService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if src, ok := parseSourceEnabledKey(key); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		return s.SetSourceEnabled(src, enabled)
	}

	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s expects a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("%w: %s expects a number between 0 and 1", domain.ErrInvalidInput, key)
		}
		parsed = f
	default:
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// SetSourceEnabled enables or disables a source.
func (s *SettingsService) SetSourceEnabled(source domain.Source, enabled bool) error {
	if !source.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSource, source)
	}
	if err := s.configStore.Set(sourceEnabledKey(source), enabled); err != nil {
		return fmt.Errorf("save %s: %w", sourceEnabledKey(source), err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func parseSourceEnabledKey(key string) (domain.Source, bool) {
	rest, ok := strings.CutPrefix(key, "sources.")
	if !ok {
		return "", false
	}
	name, ok := strings.CutSuffix(rest, ".enabled")
	if !ok {
		return "", false
	}
	src, err := domain.ParseSource(name)
	if err != nil {
		return "", false
	}
	return src, true
}

// settingsReader reads typed values, reporting malformed ones as
// configuration load failures before falling back to the default.
type settingsReader struct {
	store driven.ConfigStore
}

func (r settingsReader) malformed(key string, val any, want string) {
	logger.Warn("%v: %s = %v is not %s, using default", domain.ErrConfigLoad, key, val, want)
}

func (r settingsReader) string(key, def string) string {
	val, ok := r.store.Get(key)
	if !ok {
		return def
	}
	s, ok := val.(string)
	if !ok {
		r.malformed(key, val, "a string")
		return def
	}
	return s
}

func (r settingsReader) bool(key string, def bool) bool {
	val, ok := r.store.Get(key)
	if !ok {
		return def
	}
	b, ok := val.(bool)
	if !ok {
		r.malformed(key, val, "a boolean")
		return def
	}
	return b
}

func (r settingsReader) positiveInt(key string, def int) int {
	val, ok := r.store.Get(key)
	if !ok {
		return def
	}
	var n int
	switch v := val.(type) {
	case int64:
		n = int(v)
	case int:
		n = v
	default:
		r.malformed(key, val, "an integer")
		return def
	}
	if n <= 0 {
		r.malformed(key, val, "positive")
		return def
	}
	return n
}

func (r settingsReader) unitFloat(key string, def float64) float64 {
	val, ok := r.store.Get(key)
	if !ok {
		return def
	}
	var f float64
	switch v := val.(type) {
	case float64:
		f = v
	case int64:
		f = float64(v)
	case int:
		f = float64(v)
	default:
		r.malformed(key, val, "a number")
		return def
	}
	if f < 0 || f > 1 {
		r.malformed(key, val, "between 0 and 1")
		return def
	}
	return f
}
