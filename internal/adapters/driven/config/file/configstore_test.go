package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".capseek", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	nestedPath := filepath.Join(t.TempDir(), "nested", "deep")

	store, err := NewConfigStore(nestedPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nestedPath, "config.toml"), store.Path())

	info, err := os.Stat(nestedPath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.ErrorIs(t, err, domain.ErrConfigLoad)
	assert.Nil(t, store)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("ui.locale", "zh"))
	require.NoError(t, store.Set("search.default_limit", 20))
	require.NoError(t, store.Set("search.min_score", 0.4))
	require.NoError(t, store.Set("cache.enabled", true))
	require.NoError(t, store.Set("sources.order", []string{"local", "official"}))

	assert.Equal(t, "zh", store.GetString("ui.locale"))
	assert.Equal(t, "", store.GetString("search.default_limit"))
	assert.Equal(t, 20, store.GetInt("search.default_limit"))
	assert.Equal(t, 0, store.GetInt("ui.locale"))
	assert.InDelta(t, 0.4, store.GetFloat("search.min_score"), 1e-9)
	assert.InDelta(t, 20.0, store.GetFloat("search.default_limit"), 1e-9)
	assert.Equal(t, 0.0, store.GetFloat("ui.locale"))
	assert.True(t, store.GetBool("cache.enabled"))
	assert.False(t, store.GetBool("missing"))
	assert.Equal(t, []string{"local", "official"}, store.GetStringSlice("sources.order"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_Persistence_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("search.min_score", 0.5))
	require.NoError(t, store.Set("search.max_workers", 4))
	require.NoError(t, store.Set("sources.github.live", true))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[search]")
	assert.Contains(t, content, "min_score = 0.5")
	assert.NotContains(t, content, "'search.min_score'")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, reloaded.GetFloat("search.min_score"), 1e-9)
	assert.Equal(t, 4, reloaded.GetInt("search.max_workers"))
	assert.True(t, reloaded.GetBool("sources.github.live"))

	// TOML integers come back as int64
	raw, ok := reloaded.Get("search.max_workers")
	require.True(t, ok)
	assert.IsType(t, int64(0), raw)
}

func TestConfigStore_HandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[sources.local]
path = "/opt/skills"
max_depth = 2

[scoring]
stars_weight = 0
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/skills", store.GetString("sources.local.path"))
	assert.Equal(t, 2, store.GetInt("sources.local.max_depth"))
	assert.Equal(t, 0.0, store.GetFloat("scoring.stars_weight"))
	_, ok := store.Get("scoring.stars_weight")
	assert.True(t, ok)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("ui.locale", "en"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Load_NonExistent(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Load_CommentOnly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# Just a comment\n\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("ui.locale", "en"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("ui.locale", "zh"))
}

func TestConfigStore_Set_ConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.document", "/tmp/catalog.json"))
	assert.Error(t, store.Set("catalog", "flat"))
}

func TestConfigStore_Set_UnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			_ = store.Set("search.default_limit", n+1)
			_ = store.GetInt("search.default_limit")
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Positive(t, store.GetInt("search.default_limit"))
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"search":  map[string]any{"min_score": 0.3},
		"sources": map[string]any{"github": map[string]any{"live": true}},
		"top":     "level",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"search.min_score":    0.3,
		"sources.github.live": true,
		"top":                 "level",
	}, flat)

	back, err := nestMap(flat)
	require.NoError(t, err)
	assert.Equal(t, nested, back)
}
