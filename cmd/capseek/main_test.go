package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/adapters/driven/catalog/document"
	"github.com/custodia-labs/capseek/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

const testDocument = `{
  "entries": [
    {"name": "pg", "source": "official", "category": "database", "metrics": {"downloads": 10, "rating": 4}},
    {"name": "lite", "metrics": {"downloads": 5, "rating": 3}}
  ],
  "categories": [{"id": "queues", "name": "Queues", "icon": "📨"}]
}`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDetectLocale_Configured(t *testing.T) {
	assert.Equal(t, "zh", detectLocale("zh"))
	assert.Equal(t, "en-GB", detectLocale("en-GB"))
}

func TestDetectLocale_Auto(t *testing.T) {
	assert.NotEmpty(t, detectLocale("auto"))
	assert.NotEmpty(t, detectLocale(""))
}

func TestCategoryIDs(t *testing.T) {
	ids := categoryIDs([]domain.Category{{ID: "database"}, {ID: "web"}})

	assert.Equal(t, []string{"database", "web"}, ids)
	assert.Empty(t, categoryIDs(nil))
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	assert.True(t, sameFile(path, filepath.Join(dir, ".", "catalog.json")))
	assert.False(t, sameFile(path, filepath.Join(dir, "other.json")))
}

func TestLoadDocument(t *testing.T) {
	ctx := context.Background()
	catalog := memory.NewCatalogStore()
	require.NoError(t, catalog.Replace(ctx, domain.SourceOfficial, []domain.CatalogEntry{{Name: "bundled", Source: domain.SourceOfficial}}))

	loadDocument(ctx, document.NewLoader(domain.SourceCommunity), catalog, writeFile(t, testDocument))

	official, err := catalog.Entries(ctx, domain.SourceOfficial)
	require.NoError(t, err)
	require.Len(t, official, 1)
	assert.Equal(t, "pg", official[0].Name)

	community, err := catalog.Entries(ctx, domain.SourceCommunity)
	require.NoError(t, err)
	require.Len(t, community, 1)
	assert.Equal(t, "lite", community[0].Name)

	cats, err := catalog.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "queues", cats[0].ID)
}

func TestLoadDocument_InvalidKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	catalog := memory.NewCatalogStore()
	bundled := []domain.CatalogEntry{{Name: "bundled", Source: domain.SourceOfficial}}
	require.NoError(t, catalog.Replace(ctx, domain.SourceOfficial, bundled))

	loadDocument(ctx, document.NewLoader(domain.SourceCommunity), catalog, writeFile(t, "{not json"))
	loadDocument(ctx, document.NewLoader(domain.SourceCommunity), catalog, filepath.Join(t.TempDir(), "missing.json"))

	official, err := catalog.Entries(ctx, domain.SourceOfficial)
	require.NoError(t, err)
	require.Len(t, official, 1)
	assert.Equal(t, "bundled", official[0].Name)
}

func TestOverlaySnapshot(t *testing.T) {
	ctx := context.Background()
	catalog := memory.NewCatalogStore()
	require.NoError(t, catalog.Replace(ctx, domain.SourceOfficial, []domain.CatalogEntry{{Name: "bundled", Source: domain.SourceOfficial}}))
	require.NoError(t, catalog.Replace(ctx, domain.SourceCommunity, []domain.CatalogEntry{{Name: "kept", Source: domain.SourceCommunity}}))

	snapshot := memory.NewCatalogStore()
	require.NoError(t, snapshot.Replace(ctx, domain.SourceOfficial, []domain.CatalogEntry{{Name: "synced", Source: domain.SourceOfficial}}))

	overlaySnapshot(ctx, snapshot, catalog)

	official, err := catalog.Entries(ctx, domain.SourceOfficial)
	require.NoError(t, err)
	require.Len(t, official, 1)
	assert.Equal(t, "synced", official[0].Name)

	community, err := catalog.Entries(ctx, domain.SourceCommunity)
	require.NoError(t, err)
	require.Len(t, community, 1)
	assert.Equal(t, "kept", community[0].Name)
}
