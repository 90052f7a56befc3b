package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogEntry_NormalizesKeywords(t *testing.T) {
	e := NewCatalogEntry(CatalogEntry{
		Name:     "  PostgreSQL ",
		Keywords: []string{"Postgres", "SQL", "postgres", " ", "db"},
	})

	assert.Equal(t, "PostgreSQL", e.Name)
	assert.Equal(t, []string{"postgres", "sql", "db"}, e.Keywords)
}

func TestNormalizeKeywords_Empty(t *testing.T) {
	assert.Nil(t, NormalizeKeywords(nil))
	assert.Empty(t, NormalizeKeywords([]string{"", "  "}))
}

func TestCatalogEntry_CanonicalName(t *testing.T) {
	e := CatalogEntry{Name: " Brave Search "}
	assert.Equal(t, "brave search", e.CanonicalName())
}

func TestCatalogEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   CatalogEntry
		wantErr bool
	}{
		{"valid", CatalogEntry{Name: "git", Metrics: Metrics{Downloads: 10, Rating: 4.5}}, false},
		{"zero metrics", CatalogEntry{Name: "git"}, false},
		{"max rating", CatalogEntry{Name: "git", Metrics: Metrics{Rating: 5}}, false},
		{"empty name", CatalogEntry{Name: "  "}, true},
		{"rating too high", CatalogEntry{Name: "git", Metrics: Metrics{Rating: 5.1}}, true},
		{"negative rating", CatalogEntry{Name: "git", Metrics: Metrics{Rating: -1}}, true},
		{"negative downloads", CatalogEntry{Name: "git", Metrics: Metrics{Downloads: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidEntry))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMetrics_Popularity(t *testing.T) {
	assert.InDelta(t, 400.0, Metrics{Downloads: 100, Rating: 4.0}.Popularity(), 1e-9)
	assert.InDelta(t, 240.0, Metrics{Downloads: 50, Rating: 4.8}.Popularity(), 1e-9)
	assert.Zero(t, Metrics{}.Popularity())
}

func TestPlaceholderEntry(t *testing.T) {
	e := PlaceholderEntry("ghost")

	assert.Equal(t, "ghost", e.Name)
	assert.Equal(t, SourceUnknown, e.Source)
	assert.Zero(t, e.Metrics.Downloads)
	assert.Zero(t, e.Metrics.Rating)
	assert.Empty(t, e.Features)
}

func TestInstallRequestFor(t *testing.T) {
	e := CatalogEntry{
		Name:       "Git",
		InstallRef: "npx @anthropic-ai/mcp-server-git",
		Source:     SourceOfficial,
		URL:        "https://github.com/modelcontextprotocol/servers",
	}

	req := InstallRequestFor(e)

	assert.Equal(t, "Git", req.Name)
	assert.Equal(t, e.InstallRef, req.Ref)
	assert.Equal(t, SourceOfficial, req.Source)
	assert.Equal(t, e.URL, req.URL)
}

func TestNameTokens(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"skill-creator", []string{"skill-creator", "skill", "creator"}},
		{"Skill_Seekers", []string{"skill_seekers", "skill", "seekers"}},
		{"docx", []string{"docx"}},
		{"Brave Search", []string{"brave search", "brave", "search"}},
		{"  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameTokens(tt.name))
		})
	}
}
