package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	searchFunc func(ctx context.Context, query domain.Query) (*domain.SearchResponse, error)
	queries    []domain.Query
}

func (m *mockSearchService) Search(ctx context.Context, query domain.Query) (*domain.SearchResponse, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return &domain.SearchResponse{RequestID: "req-1", Query: query, Results: testResults()}, nil
}

func (m *mockSearchService) Recommend(context.Context, string, int) (*domain.SearchResponse, error) {
	return &domain.SearchResponse{}, nil
}

func (m *mockSearchService) Lookup(context.Context, string) (*domain.CatalogEntry, error) {
	return nil, domain.ErrUnknownEntry
}

func (m *mockSearchService) Categories(context.Context) ([]domain.CategorySummary, error) {
	return nil, nil
}

func (m *mockSearchService) Top(context.Context, domain.TopOptions) ([]domain.CatalogEntry, error) {
	return nil, nil
}

func (m *mockSearchService) Refresh() {}

func (m *mockSearchService) last() domain.Query {
	if len(m.queries) == 0 {
		return domain.Query{}
	}
	return m.queries[len(m.queries)-1]
}

func testResults() []domain.ScoredResult {
	return []domain.ScoredResult{
		{
			Entry:  domain.CatalogEntry{Name: "postgres", Description: "PostgreSQL access", Source: domain.SourceOfficial},
			Score:  0.95,
			Source: domain.SourceOfficial,
		},
		{
			Entry:  domain.CatalogEntry{Name: "sqlite", Description: "SQLite access", Source: domain.SourceCommunity},
			Score:  0.85,
			Source: domain.SourceCommunity,
		},
	}
}

func newTestView(svc *mockSearchService) *View {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), svc)
	v.SetDimensions(100, 30)
	return v
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// submit presses enter and feeds the search result back into the view.
func submit(t *testing.T, v *View) {
	t.Helper()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, domain.Source(""), v.Scope())
	assert.Len(t, v.scopes, len(domain.AllSources())+1)
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil, nil)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("k"), 1)

	assert.Equal(t, v, v.WithContext(ctx))
	assert.Equal(t, ctx, v.ctx)
}

func TestView_Init(t *testing.T) {
	assert.NotNil(t, NewView(nil, nil, nil).Init())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil)
	assert.Equal(t, "Initialising...", v.View())

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 40, v.Height())
}

func TestView_Submit(t *testing.T) {
	svc := &mockSearchService{}
	v := newTestView(svc)

	typeText(v, "postgres")
	assert.Equal(t, "postgres", v.Query())
	submit(t, v)

	assert.Equal(t, "postgres", svc.last().Text)
	assert.Nil(t, svc.last().Sources)
	assert.Empty(t, svc.last().Category)
	assert.False(t, v.InputFocused())
	assert.Len(t, v.Results(), 2)
	assert.Equal(t, "req-1", v.RequestID())

	out := v.View()
	assert.Contains(t, out, "capseek")
	assert.Contains(t, out, "postgres")
	assert.Contains(t, out, "2 results")
}

func TestView_Submit_EmptyQuery(t *testing.T) {
	v := newTestView(&mockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.True(t, v.InputFocused())
}

func TestView_Submit_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)
	typeText(v, "x")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.ErrorIs(t, v.Err(), ErrNoSearchService)
	assert.Contains(t, v.View(), "search service is required")
}

func TestView_SearchError(t *testing.T) {
	svc := &mockSearchService{
		searchFunc: func(context.Context, domain.Query) (*domain.SearchResponse, error) {
			return nil, errors.New("all sources failed")
		},
	}
	v := newTestView(svc)
	typeText(v, "db")
	submit(t, v)

	assert.EqualError(t, v.Err(), "all sources failed")
	assert.Empty(t, v.Results())

	v.ClearError()
	assert.NoError(t, v.Err())
}

func TestView_SkippedSources(t *testing.T) {
	svc := &mockSearchService{
		searchFunc: func(_ context.Context, q domain.Query) (*domain.SearchResponse, error) {
			return &domain.SearchResponse{
				Query:   q,
				Results: testResults(),
				SourceErrors: []*domain.SourceError{
					domain.NewSourceError(domain.SourceGitHub, errors.New("rate limited")),
				},
			}, nil
		},
	}
	v := newTestView(svc)
	v.SetDimensions(160, 30)
	typeText(v, "db")
	submit(t, v)

	assert.Contains(t, v.View(), "skipped: github")
}

func TestView_TabCyclesScope(t *testing.T) {
	svc := &mockSearchService{}
	v := newTestView(svc)

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.SourceLocal, v.Scope())
	assert.Contains(t, v.View(), "local")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.SourceOfficial, v.Scope())

	typeText(v, "db")
	submit(t, v)
	assert.Equal(t, []domain.Source{domain.SourceOfficial}, svc.last().Sources)

	// In results mode tab re-runs the search in the next scope.
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	v.Update(cmd())
	assert.Equal(t, []domain.Source{domain.SourceCommunity}, svc.last().Sources)
	assert.Equal(t, "db", svc.last().Text)

	// Wraps back to all sources.
	for range len(domain.AllSources()) - 2 {
		v.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, domain.Source(""), v.Scope())
}

func TestView_NavigateAndSelect(t *testing.T) {
	v := newTestView(&mockSearchService{})
	typeText(v, "db")
	submit(t, v)

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.SelectedIndex())
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.SelectedIndex())
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	require.NotNil(t, v.SelectedResult())
	assert.Equal(t, "sqlite", v.SelectedResult().Entry.Name)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.ResultSelected)
	require.True(t, ok)
	assert.Equal(t, "sqlite", selected.Result.Entry.Name)
}

func TestView_NewSearch(t *testing.T) {
	v := newTestView(&mockSearchService{})
	typeText(v, "db")
	submit(t, v)
	require.False(t, v.InputFocused())

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
}

func TestView_EscGoesToMenu(t *testing.T) {
	v := newTestView(&mockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_BrowseCategory(t *testing.T) {
	svc := &mockSearchService{}
	v := newTestView(svc)

	cmd := v.BrowseCategory("database")
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Equal(t, "database", v.Category())
	assert.Equal(t, "database", svc.last().Category)
	assert.Empty(t, svc.last().Text)
	assert.Contains(t, v.View(), "#database")

	// Starting a new search leaves the category.
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Empty(t, v.Category())
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newTestView(&mockSearchService{})

	v.Update(messages.ErrorOccurred{Err: errors.New("broken")})

	assert.EqualError(t, v.Err(), "broken")
}

func TestView_Reset(t *testing.T) {
	v := newTestView(&mockSearchService{})
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(v, "db")
	submit(t, v)

	v.Reset()

	assert.True(t, v.InputFocused())
	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.Equal(t, domain.Source(""), v.Scope())
	assert.NoError(t, v.Err())
}

func TestView_SetQuery(t *testing.T) {
	v := newTestView(&mockSearchService{})

	v.SetQuery("fetch")

	assert.Equal(t, "fetch", v.Query())
}
