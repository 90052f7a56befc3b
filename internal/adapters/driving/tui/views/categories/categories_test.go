package categories

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

type mockSearchService struct {
	categories []domain.CategorySummary
	err        error
	calls      int
}

func (m *mockSearchService) Search(context.Context, domain.Query) (*domain.SearchResponse, error) {
	return &domain.SearchResponse{}, nil
}

func (m *mockSearchService) Recommend(context.Context, string, int) (*domain.SearchResponse, error) {
	return &domain.SearchResponse{}, nil
}

func (m *mockSearchService) Lookup(context.Context, string) (*domain.CatalogEntry, error) {
	return nil, domain.ErrUnknownEntry
}

func (m *mockSearchService) Categories(context.Context) ([]domain.CategorySummary, error) {
	m.calls++
	return m.categories, m.err
}

func (m *mockSearchService) Top(context.Context, domain.TopOptions) ([]domain.CatalogEntry, error) {
	return nil, nil
}

func (m *mockSearchService) Refresh() {}

func testCategories() []domain.CategorySummary {
	return []domain.CategorySummary{
		{Category: domain.Category{ID: "database", Name: "Database", Icon: "🗄️"}, Count: 4},
		{Category: domain.Category{ID: "web", Name: "Web"}, Count: 2},
	}
}

// load runs Init and feeds the result back.
func load(t *testing.T, v *View) {
	t.Helper()
	cmd := v.Init()
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.Empty(t, v.Categories())
}

func TestView_Load(t *testing.T) {
	svc := &mockSearchService{categories: testCategories()}
	v := NewView(nil, svc)
	v.SetDimensions(80, 24)

	cmd := v.Init()
	assert.Contains(t, v.View(), "Loading categories")
	v.Update(cmd())

	assert.Len(t, v.Categories(), 2)
	out := v.View()
	assert.Contains(t, out, "🗄️ Database (4)")
	assert.Contains(t, out, "• Web (2)")
	assert.Contains(t, out, "> ")
}

func TestView_LoadError(t *testing.T) {
	v := NewView(nil, &mockSearchService{err: errors.New("offline")})
	load(t, v)

	assert.EqualError(t, v.Err(), "offline")
	assert.Contains(t, v.View(), "Error: offline")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil)
	load(t, v)

	assert.Error(t, v.Err())
}

func TestView_Empty(t *testing.T) {
	v := NewView(nil, &mockSearchService{})
	load(t, v)

	assert.Contains(t, v.View(), "No categories")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestView_NavigateAndSelect(t *testing.T) {
	v := NewView(nil, &mockSearchService{categories: testCategories()})
	load(t, v)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.CategorySelected{ID: "web"}, cmd())

	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, v.Selected())
}

func TestView_Reload(t *testing.T) {
	svc := &mockSearchService{categories: testCategories()}
	v := NewView(nil, svc)
	load(t, v)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	v.Update(cmd())

	assert.Equal(t, 2, svc.calls)
}

func TestView_Esc(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil)
	ctx := context.Background()

	assert.Equal(t, v, v.WithContext(ctx))
}
