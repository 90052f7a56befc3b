package detail

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

func testResult() domain.ScoredResult {
	return domain.ScoredResult{
		Entry: domain.CatalogEntry{
			Name:        "postgres",
			FullName:    "modelcontextprotocol/servers/postgres",
			Description: "Read-only access to PostgreSQL databases with schema inspection",
			Category:    "database",
			Source:      domain.SourceOfficial,
			Publisher:   "modelcontextprotocol",
			Metrics:     domain.Metrics{Downloads: 52000, Rating: 4.7, Stars: 1200, Rank: 3},
			Features:    []string{"schema inspection", "read-only queries"},
			UseCases:    []string{"analytics"},
			Pros:        []string{"official"},
			Cons:        []string{"read-only"},
			InstallRef:  "npx -y @modelcontextprotocol/server-postgres",
			LastUpdated: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Score:  0.92,
		Source: domain.SourceOfficial,
	}
}

func TestNewView(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.False(t, view.ready)
	assert.Nil(t, view.Result())
	assert.Nil(t, view.Init())
}

func TestView_SetResult(t *testing.T) {
	view := NewView(nil)
	view.scrollOffset = 4
	view.err = errors.New("stale")

	view.SetResult(testResult())

	require.NotNil(t, view.Result())
	assert.Equal(t, "postgres", view.Result().Entry.Name)
	assert.Equal(t, 0, view.ScrollOffset())
	assert.NoError(t, view.Err())
}

func TestView_View_Content(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(100, 60)
	view.SetResult(testResult())

	output := view.View()

	assert.Contains(t, output, "Entry Details")
	assert.Contains(t, output, "postgres")
	assert.Contains(t, output, "92.0%")
	assert.Contains(t, output, "4.7/5")
	assert.Contains(t, output, "52000")
	assert.Contains(t, output, "#3")
	assert.Contains(t, output, "2026-03-01")
	assert.Contains(t, output, "npx -y @modelcontextprotocol/server-postgres")
	assert.Contains(t, output, "schema inspection")
	assert.Contains(t, output, "Use cases:")
	assert.Contains(t, output, "read-only")
}

func TestView_View_MissingInstall(t *testing.T) {
	r := testResult()
	r.Entry.InstallRef = ""

	view := NewView(nil)
	view.SetDimensions(100, 60)
	view.SetResult(r)

	assert.Contains(t, view.View(), "N/A")
}

func TestView_View_Empty(t *testing.T) {
	view := NewView(nil)

	assert.Contains(t, view.View(), "No entry selected")
}

func TestView_View_Error(t *testing.T) {
	view := NewView(nil)
	view.Update(messages.ErrorOccurred{Err: errors.New("lookup failed")})

	assert.Contains(t, view.View(), "lookup failed")
}

func TestView_Scroll(t *testing.T) {
	view := NewView(nil)
	view.SetDimensions(80, 10)
	view.SetResult(testResult())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.ScrollOffset())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.ScrollOffset())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, view.ScrollOffset())

	for range 100 {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, view.maxScrollOffset(), view.ScrollOffset())
	assert.Contains(t, view.View(), "[Line")
}

func TestView_Esc(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestView_WindowSize(t *testing.T) {
	view := NewView(nil)

	_, cmd := view.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 120, view.width)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Empty(t, wrap("", 10))
}
