// Package status provides the search status bar for the TUI.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Phase is where the current search is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseResults
	PhaseFailed
)

// Bar summarises the last search on the left and shows key hints on
// the right. Sources that failed during the search are listed as a
// warning so a short result list is not mistaken for a complete one.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	phase   Phase
	count   int
	cached  bool
	skipped []domain.Source
	err     error
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, width: 80}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the bar is driven by the search view.
func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) {
	return s, nil
}

// Searching marks a search as in flight.
func (s *Bar) Searching() {
	s.phase = PhaseSearching
	s.err = nil
}

// ShowResponse summarises a completed search.
func (s *Bar) ShowResponse(resp *domain.SearchResponse) {
	s.phase = PhaseResults
	s.err = nil
	s.count = len(resp.Results)
	s.cached = resp.Cached
	s.skipped = s.skipped[:0]
	for _, e := range resp.SourceErrors {
		s.skipped = append(s.skipped, e.Source)
	}
}

// ShowError reports a failed search.
func (s *Bar) ShowError(err error) {
	s.phase = PhaseFailed
	s.err = err
}

// Clear returns the bar to idle.
func (s *Bar) Clear() {
	s.phase = PhaseIdle
	s.count = 0
	s.cached = false
	s.skipped = nil
	s.err = nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.summary()
	right := s.hints()

	// The bar style pads one cell on each side.
	gap := max(s.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return s.styles.StatusBar.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (s *Bar) summary() string {
	switch s.phase {
	case PhaseSearching:
		return s.styles.Muted.Render("Searching...")
	case PhaseFailed:
		if s.err == nil {
			return s.styles.Error.Render("Search failed")
		}
		return s.styles.Error.Render("Search failed: " + s.err.Error())
	case PhaseResults:
		noun := "results"
		if s.count == 1 {
			noun = "result"
		}
		out := s.styles.Normal.Render(fmt.Sprintf("%d %s", s.count, noun))
		if s.cached {
			out += s.styles.Muted.Render(" (cached)")
		}
		if len(s.skipped) > 0 {
			names := make([]string, len(s.skipped))
			for i, src := range s.skipped {
				names[i] = string(src)
			}
			out += s.styles.Warning.Render(" skipped: " + strings.Join(names, ", "))
		}
		return out
	}
	return s.styles.Muted.Render("Type a query")
}

func (s *Bar) hints() string {
	mode := keymap.ModeQuery
	if s.phase == PhaseResults && s.count > 0 {
		mode = keymap.ModeResults
	}

	bindings := s.keymap.Hints(mode)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return s.styles.Help.Render(strings.Join(parts, " | "))
}

// Phase returns where the current search is.
func (s *Bar) Phase() Phase {
	return s.phase
}

// Count returns the number of results in the last response.
func (s *Bar) Count() int {
	return s.count
}

// Skipped returns the sources that failed during the last search.
func (s *Bar) Skipped() []domain.Source {
	return s.skipped
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
