package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

func TestDefaultTheme_EverySourceHasABadgeColour(t *testing.T) {
	theme := DefaultTheme()

	seen := make(map[lipgloss.Color]domain.Source)
	for _, src := range domain.AllSources() {
		c, ok := theme.Sources[src]
		require.True(t, ok, "no badge colour for %s", src)
		if other, dup := seen[c]; dup {
			t.Errorf("%s and %s share badge colour %s", src, other, c)
		}
		seen[c] = src
	}
}

func TestTheme_SourceColor(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, theme.Sources[domain.SourceGitHub], theme.SourceColor(domain.SourceGitHub))
	assert.Equal(t, theme.Muted, theme.SourceColor(domain.SourceUnknown))
	assert.Equal(t, theme.Muted, theme.SourceColor("nope"))
}

func TestTheme_MatchColor(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		score float64
		want  lipgloss.Color
	}{
		{1, theme.StrongMatch},
		{0.7, theme.StrongMatch},
		{0.69, theme.FairMatch},
		{0.4, theme.FairMatch},
		{0.39, theme.WeakMatch},
		{0, theme.WeakMatch},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, theme.MatchColor(tt.score), "score %v", tt.score)
	}
}

func TestNewStyles(t *testing.T) {
	theme := DefaultTheme()

	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Same(t, theme, s.Theme())
	assert.NotNil(t, NewStyles(nil).Theme())
	assert.NotNil(t, DefaultStyles().Theme())
}

func TestStyles_SourceBadge(t *testing.T) {
	s := DefaultStyles()

	for _, src := range domain.AllSources() {
		badge := s.SourceBadge(src)
		assert.Contains(t, badge, src.Icon())
		assert.Contains(t, badge, string(src))
	}
}

func TestStyles_CategoryTag(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.CategoryTag("database"), "#database")
	assert.Empty(t, s.CategoryTag(""))
}

func TestStyles_ScoreBar(t *testing.T) {
	s := DefaultStyles()

	tests := []struct {
		name         string
		score        float64
		width        int
		filled, void int
	}{
		{"full", 1, 10, 10, 0},
		{"empty", 0, 10, 0, 10},
		{"partial", 0.46, 10, 4, 6},
		{"over one clamps", 1.5, 4, 4, 0},
		{"negative clamps", -0.2, 4, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := s.ScoreBar(tt.score, tt.width)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, tt.void, strings.Count(bar, "░"))
		})
	}

	assert.Empty(t, s.ScoreBar(0.5, 0))
}
