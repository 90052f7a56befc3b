// Package input provides the query input for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

const (
	placeholder = "Search MCP servers and skills..."

	// queryLimit caps the characters accepted in a query.
	queryLimit = 256

	minInputWidth = 20
)

// SearchInput is the query box. It shows the source and category the
// search is narrowed to next to the text field.
type SearchInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	source   domain.Source
	category string
}

// NewSearchInput creates a focused, empty query box.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "
	ti.CharLimit = queryLimit
	ti.Focus()

	in := &SearchInput{textinput: ti, styles: s}
	in.SetWidth(80)
	return in
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards msg to the text field.
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the query box followed by the scope, if any.
func (s *SearchInput) View() string {
	box := s.styles.InputField.Render(s.textinput.View())
	if scope := s.scopeView(); scope != "" {
		//nolint:misspell // lipgloss.Center is the correct constant from the library
		return lipgloss.JoinHorizontal(lipgloss.Center, box, " ", scope)
	}
	return box
}

func (s *SearchInput) scopeView() string {
	parts := make([]string, 0, 2)
	if s.source != "" {
		parts = append(parts, s.styles.SourceBadge(s.source))
	}
	if tag := s.styles.CategoryTag(s.category); tag != "" {
		parts = append(parts, tag)
	}
	return strings.Join(parts, " ")
}

// SetScope narrows the displayed scope to src and category. Empty values
// mean all sources and all categories.
func (s *SearchInput) SetScope(src domain.Source, category string) {
	s.source = src
	s.category = category
	s.SetWidth(s.width)
}

// Scope returns the displayed source and category.
func (s *SearchInput) Scope() (domain.Source, string) {
	return s.source, s.category
}

// Value returns the query text.
func (s *SearchInput) Value() string {
	return s.textinput.Value()
}

// SetValue replaces the query text.
func (s *SearchInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus gives the text field the cursor.
func (s *SearchInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes the cursor.
func (s *SearchInput) Blur() {
	s.textinput.Blur()
}

// Focused reports whether the text field has the cursor.
func (s *SearchInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sizes the text field to fill width next to the scope.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	// Border, padding, prompt and the gap before the scope.
	chrome := 4 + lipgloss.Width(s.textinput.Prompt) + 1
	s.textinput.Width = max(width-chrome-lipgloss.Width(s.scopeView()), minInputWidth)
}

// Width returns the width the input was sized to.
func (s *SearchInput) Width() int {
	return s.width
}

// FieldWidth returns the width left for typing.
func (s *SearchInput) FieldWidth() int {
	return s.textinput.Width
}
