// Command capseek searches, ranks and compares MCP servers and agent skills.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jeandeaual/go-locale"

	"github.com/custodia-labs/capseek/internal/adapters/driven/catalog/builtin"
	"github.com/custodia-labs/capseek/internal/adapters/driven/catalog/document"
	"github.com/custodia-labs/capseek/internal/adapters/driven/catalog/skilldir"
	"github.com/custodia-labs/capseek/internal/adapters/driven/config/file"
	"github.com/custodia-labs/capseek/internal/adapters/driven/installer"
	"github.com/custodia-labs/capseek/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/capseek/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/capseek/internal/adapters/driven/watcher"
	"github.com/custodia-labs/capseek/internal/adapters/driving/cli"
	"github.com/custodia-labs/capseek/internal/connectors/github"
	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/core/services"
	"github.com/custodia-labs/capseek/internal/i18n"
	"github.com/custodia-labs/capseek/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dir, err := file.DefaultDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	configStore := openConfig(dir)
	settings := services.LoadSettings(configStore)
	localizer := i18n.New(detectLocale(settings.UI.Locale))

	// Bundled data first, then the configured document, then snapshots.
	catalog := memory.NewCatalogStore()
	catalog.SetCategories(builtin.Categories())
	for _, src := range domain.AllSources() {
		if err := catalog.Replace(ctx, src, builtin.EntriesFor(src)); err != nil {
			return err
		}
	}

	loader := document.NewLoader(domain.SourceCommunity)
	if path := settings.Catalog.Document; path != "" {
		loadDocument(ctx, loader, catalog, path)
	}

	var snapshot driven.SnapshotStore
	store, err := sqlite.NewStore(dir)
	if err != nil {
		logger.Warn("snapshot store unavailable: %v", err)
	} else {
		defer func() { _ = store.Close() }()
		snapshot = store.SnapshotStore()
		overlaySnapshot(ctx, snapshot, catalog)
	}

	skillsDir := settings.Sources.LocalPath
	if skillsDir == "" {
		skillsDir = filepath.Join(dir, "skills")
	}

	var live driven.CatalogProvider
	providers := make([]driven.CatalogProvider, 0, len(domain.AllSources()))
	for _, src := range settings.EnabledSources() {
		switch {
		case src == domain.SourceLocal:
			providers = append(providers, skilldir.NewProvider(skillsDir, settings.Sources.LocalMaxDepth))
		case src == domain.SourceGitHub && settings.Sources.GitHubLive:
			cfg := github.NewConfig(settings.Sources.GitHubTopic, categoryIDs(builtin.Categories()))
			p := github.NewProvider(github.NewClient(ctx, cfg.Token), cfg)
			live = p
			providers = append(providers, p)
		default:
			providers = append(providers, catalog.ProviderFor(src))
		}
	}
	if live == nil && settings.Sources.IsEnabled(domain.SourceGitHub) {
		cfg := github.NewConfig(settings.Sources.GitHubTopic, categoryIDs(builtin.Categories()))
		live = github.NewProvider(github.NewClient(ctx, cfg.Token), cfg)
	}

	aggregator := services.NewAggregator(
		services.NewScorerFromSettings(settings.Scoring),
		services.AggregatorConfig{
			MinScore:      settings.Search.MinScore,
			SourceTimeout: settings.Search.SourceTimeout,
			MaxWorkers:    settings.Search.MaxWorkers,
		},
	)

	var cache driven.ResultCache
	if settings.Cache.Enabled {
		cache = memory.NewResultCache(settings.Cache.TTL, settings.Cache.MaxEntries)
	}

	searchService := services.NewSearchService(providers, aggregator, cache)
	searchService.SetCategoryProvider(catalog)
	searchService.SetLimits(settings.Search.DefaultLimit, settings.Search.RecommendLimit)

	catalogService := services.NewCatalogService(snapshot, loader, live)
	catalogService.SetOnChange(func(src domain.Source, entries []domain.CatalogEntry) {
		if err := catalog.Replace(context.Background(), src, entries); err != nil {
			logger.Warn("updating %s catalog: %v", src, err)
		}
		searchService.Refresh()
	})

	w := startWatcher(skillsDir, settings.Catalog.Document, func(path string) {
		if doc := settings.Catalog.Document; doc != "" && sameFile(path, doc) {
			loadDocument(context.Background(), loader, catalog, doc)
		}
		searchService.Refresh()
	})
	if w != nil {
		defer func() { _ = w.Stop() }()
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Search:    searchService,
		Compare:   services.NewCompareService(providers, aggregator, localizer),
		Catalog:   catalogService,
		Settings:  services.NewSettingsService(configStore),
		Installer: installer.NewPrinter(os.Stdout, skillsDir),
	})

	return cli.Execute(ctx)
}

// openConfig opens the TOML config, falling back to defaults held in
// memory when the file cannot be parsed.
func openConfig(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("%v; using defaults", err)
		return memory.NewConfigStore()
	}
	return store
}

// detectLocale returns configured, or the system locale when configured
// is empty or "auto".
func detectLocale(configured string) string {
	if configured != "" && configured != "auto" {
		return configured
	}
	userLocale, err := locale.GetLocale()
	if err != nil || userLocale == "" {
		return "en-US"
	}
	return userLocale
}

// loadDocument replaces the sources named in the document at path.
// On failure the previous data stays in place.
func loadDocument(ctx context.Context, loader *document.Loader, catalog *memory.CatalogStore, path string) {
	doc, err := loader.Load(ctx, path)
	if err != nil {
		logger.Warn("%v; keeping bundled catalog", err)
		return
	}

	bySource := make(map[domain.Source][]domain.CatalogEntry)
	for _, e := range doc.Entries {
		bySource[e.Source] = append(bySource[e.Source], e)
	}
	for src, entries := range bySource {
		if err := catalog.Replace(ctx, src, entries); err != nil {
			logger.Warn("loading %s entries: %v", src, err)
		}
	}
	catalog.MergeCategories(doc.Categories)
	logger.Debug("loaded %d entries from %s", len(doc.Entries), path)
}

func overlaySnapshot(ctx context.Context, snapshot driven.SnapshotStore, catalog *memory.CatalogStore) {
	for _, src := range domain.AllSources() {
		entries, err := snapshot.Entries(ctx, src)
		if err != nil {
			logger.Warn("reading %s snapshot: %v", src, err)
			continue
		}
		if len(entries) == 0 {
			continue
		}
		if err := catalog.Replace(ctx, src, entries); err != nil {
			logger.Warn("restoring %s snapshot: %v", src, err)
		}
	}
}

// startWatcher watches the skills directory and the catalog document.
// It returns nil when file watching is unavailable.
func startWatcher(skillsDir, documentPath string, onChange func(path string)) *watcher.Watcher {
	w, err := watcher.New(watcher.DefaultDebounce)
	if err != nil {
		logger.Debug("file watching disabled: %v", err)
		return nil
	}
	if err := w.AddDir(skillsDir); err != nil {
		logger.Debug("not watching %s: %v", skillsDir, err)
	}
	if documentPath != "" {
		if err := w.AddFile(documentPath); err != nil {
			logger.Debug("not watching %s: %v", documentPath, err)
		}
	}
	if err := w.Watch(onChange); err != nil {
		logger.Debug("watcher: %v", err)
		_ = w.Stop()
		return nil
	}
	return w
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func categoryIDs(categories []domain.Category) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}
