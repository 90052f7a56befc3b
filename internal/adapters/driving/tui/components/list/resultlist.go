// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

// scoreWidth is the number of cells in a result's score bar.
const scoreWidth = 10

// linesPerResult is the height of one rendered result.
const linesPerResult = 2

// ResultList displays ranked results in a navigable list.
type ResultList struct {
	results  []domain.ScoredResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)*linesPerResult+2)

	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "")

	visibleCount := (r.height - 4) / linesPerResult
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.results))

	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// renderResult formats one result as a title line and a description line.
func (r *ResultList) renderResult(index int, result *domain.ScoredResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	maxNameLen := max(r.width-scoreWidth-16, 10)
	name := truncate(result.Entry.Name, maxNameLen)

	label := fmt.Sprintf("%s%-*s", indicator, maxNameLen, name)
	bar := r.styles.ScoreBar(result.Score, scoreWidth)
	pct := fmt.Sprintf(" %3.0f%%", result.Score*100)

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(label) + " " + bar + r.styles.Normal.Render(pct)
	} else {
		titleLine = r.styles.Normal.Render(label) + " " + bar + r.styles.Muted.Render(pct)
	}

	// The second line carries where the entry came from, its category
	// and as much of the description as fits.
	meta := r.styles.SourceBadge(result.Source)
	if tag := r.styles.CategoryTag(result.Entry.Category); tag != "" {
		meta += " " + tag
	}
	room := max(r.width-lipgloss.Width(meta)-8, 20)
	previewLine := "    " + meta + " " + r.styles.Muted.Render(truncate(result.Entry.Description, room))

	return titleLine + "\n" + previewLine
}

// truncate shortens s to n runes with a trailing ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.ScoredResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.ScoredResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.ScoredResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
