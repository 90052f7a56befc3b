package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

func TestSettingsShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.settings.Sources.Enabled[domain.SourceGitHub] = false

	out, _, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Sources]")
	assert.Contains(t, out, "github        disabled")
	assert.Contains(t, out, "official      enabled")
	assert.Contains(t, out, "Local path: (default) (depth 3)")
	assert.Contains(t, out, "GitHub: bundled index")
	assert.Contains(t, out, "Default limit: 10")
	assert.Contains(t, out, "Min score: 0.30")
	assert.Contains(t, out, "Source timeout: 5s")
	assert.Contains(t, out, "TTL: 1h0m0s")
	assert.Contains(t, out, "Document: (built-in)")
	assert.Contains(t, out, "Locale: (auto)")
	assert.Contains(t, out, "Config file: /tmp/capseek/config.toml")
}

func TestSettingsShow_IsDefault(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsShow_LiveGitHub(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.settings.Sources.GitHubLive = true
	mocks.settings.settings.UI.Locale = "zh"

	out, _, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, `GitHub: live, topic "mcp-server"`)
	assert.Contains(t, out, "Locale: zh")
}

func TestSettingsSet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "settings", "set", "search.min_score", "0.5")

	require.NoError(t, err)
	assert.Equal(t, "search.min_score", mocks.settings.setKey)
	assert.Equal(t, "0.5", mocks.settings.setValue)
	assert.Contains(t, out, "search.min_score = 0.5")
}

func TestSettingsSet_Error(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mocks.settings.setErr = errors.New("unknown key")

	_, _, err := execute(t, "settings", "set", "nope", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set nope: unknown key")
}

func TestSettingsEnableDisable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, _, err := execute(t, "settings", "disable", "GitHub")
	require.NoError(t, err)
	assert.Contains(t, out, "Source github disabled.")
	assert.False(t, mocks.settings.settings.Sources.IsEnabled(domain.SourceGitHub))

	out, _, err = execute(t, "settings", "enable", "github")
	require.NoError(t, err)
	assert.Contains(t, out, "Source github enabled.")
	assert.True(t, mocks.settings.settings.Sources.IsEnabled(domain.SourceGitHub))
}

func TestSettingsEnable_UnknownSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute(t, "settings", "enable", "gitlab")

	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestSettings_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, _, err := execute(t, "settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
