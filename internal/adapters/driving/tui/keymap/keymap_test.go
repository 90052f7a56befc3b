package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"tab cycles the source", tea.KeyMsg{Type: tea.KeyTab}, km.NextSource},
		{"slash starts a new search", runeKey('/'), km.NewSearch},
		{"n starts a new search", runeKey('n'), km.NewSearch},
		{"c browses categories", runeKey('c'), km.Browse},
		{"r reloads counts", runeKey('r'), km.Reload},
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, km.Submit},
		{"enter opens", tea.KeyMsg{Type: tea.KeyEnter}, km.Open},
		{"k moves up", runeKey('k'), km.Up},
		{"j moves down", runeKey('j'), km.Down},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, km.Back},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}

	assert.False(t, key.Matches(runeKey('x'), km.NewSearch))
}

func TestKeyMap_Hints(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		mode Mode
		want []key.Binding
	}{
		{ModeMenu, []key.Binding{km.Open, km.NewSearch, km.Browse, km.Quit}},
		{ModeQuery, []key.Binding{km.Submit, km.NextSource, km.Back}},
		{ModeResults, []key.Binding{km.Open, km.NewSearch, km.NextSource, km.Back}},
		{ModeCategories, []key.Binding{km.Open, km.Reload, km.Back}},
		{ModeDetail, []key.Binding{km.Up, km.Down, km.Back}},
	}
	for _, tt := range tests {
		got := km.Hints(tt.mode)
		require.Len(t, got, len(tt.want), "mode %d", tt.mode)
		for i := range got {
			assert.Equal(t, tt.want[i].Help(), got[i].Help(), "mode %d hint %d", tt.mode, i)
		}
	}

	assert.Len(t, km.Hints(Mode(99)), 1)
}

func TestKeyMap_Sections(t *testing.T) {
	sections := DefaultKeyMap().Sections()

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
		for _, b := range s.Bindings {
			assert.NotEmpty(t, b.Help().Key, "%s has a binding without help", s.Title)
			assert.NotEmpty(t, b.Help().Desc, "%s has a binding without help", s.Title)
		}
	}
	assert.Equal(t, []string{"Menu", "Search", "Results", "Categories"}, titles)
}
