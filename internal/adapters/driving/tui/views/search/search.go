// Package search provides the main search view for the TUI.
package search

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
)

// View represents the search view with input, results list, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	searchService driving.SearchService
	ctx           context.Context

	// scopes cycles through "all" and each single source; scope indexes it.
	scopes   []domain.Source
	scope    int
	category string
	lastID   string

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = results mode (navigating)
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.SearchService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		statusbar:     status.NewBar(s, km),
		searchService: searchService,
		ctx:           context.Background(),
		scopes:        append([]domain.Source{""}, domain.AllSources()...),
		width:         80,
		height:        24,
		ready:         false,
		focusInput:    true,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.ShowError(msg.Err)
		return v, nil
	}

	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input. While the input has focus every
// key except submit, back and the source filter goes to the query.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case key.Matches(msg, v.keymap.NextSource):
		v.nextScope()
		if v.focusInput || v.list.IsEmpty() {
			return v, nil
		}
		v.statusbar.Searching()
		return v, v.performSearch(v.input.Value())

	case v.focusInput && key.Matches(msg, v.keymap.Submit):
		query := v.input.Value()
		if query == "" && v.category == "" {
			return v, nil
		}
		v.statusbar.Searching()
		v.focusInput = false
		v.input.Blur()
		return v, v.performSearch(query)

	case v.focusInput:
		v.input, _ = v.input.Update(msg)
		return v, nil

	case key.Matches(msg, v.keymap.Open):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		selected := *result
		return v, func() tea.Msg {
			return messages.ResultSelected{Result: selected}
		}

	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()

	case key.Matches(msg, v.keymap.NewSearch):
		v.category = ""
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.updateScopeLabel()
	}

	return v, nil
}

// nextScope advances the source filter and updates the input label.
func (v *View) nextScope() {
	v.scope = (v.scope + 1) % len(v.scopes)
	v.updateScopeLabel()
}

func (v *View) updateScopeLabel() {
	v.input.SetScope(v.scopes[v.scope], v.category)
}

// performSearch executes a search and returns results.
func (v *View) performSearch(text string) tea.Cmd {
	query := domain.Query{Text: text, Category: v.category}
	if src := v.scopes[v.scope]; src != "" {
		query.Sources = []domain.Source{src}
	}

	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}

		resp, err := v.searchService.Search(v.ctx, query)
		if err != nil {
			return messages.SearchCompleted{Response: nil, Err: err}
		}
		return messages.SearchCompleted{Response: resp, Err: nil}
	}
}

// handleSearchCompleted processes search results.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.ShowError(msg.Err)
		return
	}
	if msg.Response == nil {
		return
	}

	v.err = nil
	v.lastID = msg.Response.RequestID
	v.list.SetResults(msg.Response.Results)
	v.statusbar.ShowResponse(msg.Response)

	v.focusInput = false
	v.input.Blur()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)

	header := v.styles.Title.Render("capseek")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	sections = append(sections, v.list.View())

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search query.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Scope returns the source the search is narrowed to, or "" for all.
func (v *View) Scope() domain.Source {
	return v.scopes[v.scope]
}

// Category returns the category being browsed, if any.
func (v *View) Category() string {
	return v.category
}

// BrowseCategory lists every entry in the category and returns the
// command that runs the search.
func (v *View) BrowseCategory(id string) tea.Cmd {
	v.category = id
	v.input.SetValue("")
	v.updateScopeLabel()
	v.focusInput = false
	v.input.Blur()
	v.statusbar.Searching()
	return v.performSearch("")
}

// RequestID returns the ID of the last completed search.
func (v *View) RequestID() string {
	return v.lastID
}

// Results returns the current search results.
func (v *View) Results() []domain.ScoredResult {
	return v.list.Results()
}

// SelectedIndex returns the index of the selected result.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.ScoredResult {
	return v.list.SelectedResult()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.Clear()
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.category = ""
	v.scope = 0
	v.updateScopeLabel()
	v.list.SetResults(nil)
	v.err = nil
	v.statusbar.Clear()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
