package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Normalized(t *testing.T) {
	q := Query{
		Text:     "  PostgreSQL Database ",
		Category: " Database ",
		Sources:  []Source{SourceCommunity, SourceOfficial, SourceCommunity},
	}

	n := q.Normalized()

	assert.Equal(t, "postgresql database", n.Text)
	assert.Equal(t, "database", n.Category)
	assert.Equal(t, []Source{SourceOfficial, SourceCommunity}, n.Sources)
	assert.Equal(t, DefaultSearchLimit, n.Limit)
}

func TestQuery_CacheKey_CategoryCase(t *testing.T) {
	a := Query{Text: "sql", Category: "Database"}
	b := Query{Text: "sql", Category: "database"}

	assert.Equal(t, a.CacheKey("search"), b.CacheKey("search"))
}

func TestQuery_Normalized_KeepsPositiveLimit(t *testing.T) {
	assert.Equal(t, 3, Query{Limit: 3}.Normalized().Limit)
	assert.Equal(t, DefaultSearchLimit, Query{Limit: -4}.Normalized().Limit)
}

func TestQuery_Tokens(t *testing.T) {
	q := Query{Text: "X y  x\tZ"}
	assert.Equal(t, []string{"x", "y", "z"}, q.Tokens())
	assert.Nil(t, Query{Text: "   "}.Tokens())
}

func TestQuery_CacheKey(t *testing.T) {
	a := Query{Text: "Git ", Sources: []Source{SourceLocal, SourceOfficial}}
	b := Query{Text: "git", Sources: []Source{SourceOfficial, SourceLocal}, Limit: 10}

	assert.Equal(t, a.CacheKey("search"), b.CacheKey("search"))
	assert.NotEqual(t, a.CacheKey("search"), a.CacheKey("recommend"))
	assert.NotEqual(t, a.CacheKey("search"), Query{Text: "git", Limit: 5}.CacheKey("search"))
}

func TestQuery_Includes(t *testing.T) {
	assert.True(t, Query{}.Includes(SourceGitHub))

	q := Query{Sources: []Source{SourceLocal}}
	assert.True(t, q.Includes(SourceLocal))
	assert.False(t, q.Includes(SourceGitHub))
}

func TestScoreBreakdown_Total(t *testing.T) {
	b := ScoreBreakdown{Name: 0.35, Keywords: 0.25, Description: 0.2, Features: 0.2}
	assert.InDelta(t, 1.0, b.Total(), 1e-9)

	b.Signals = 0.2
	assert.Equal(t, 1.0, b.Total(), "clamped")

	assert.Zero(t, ScoreBreakdown{}.Total())
}

func TestSearchResponse_Degraded(t *testing.T) {
	r := &SearchResponse{}
	assert.False(t, r.Degraded())

	r.SourceErrors = append(r.SourceErrors, NewSourceError(SourceGitHub, ErrNotFound))
	assert.True(t, r.Degraded())
}
