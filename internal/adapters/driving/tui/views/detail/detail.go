// Package detail provides the catalog entry detail view for the TUI.
package detail

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

// scoreWidth is the number of cells in the match bar.
const scoreWidth = 20

// View shows every field of one scored result.
type View struct {
	styles *styles.Styles

	result       *domain.ScoredResult
	scrollOffset int
	width        int
	height       int
	ready        bool
	err          error
}

// NewView creates a new detail view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetResult sets the result to display.
func (v *View) SetResult(result domain.ScoredResult) {
	v.result = &result
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Title, separator, help and padding.
	return max(v.height-6, 1)
}

func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.result == nil {
		return nil
	}
	e := v.result.Entry

	lines := []string{
		v.formatField("Name", e.Name),
		v.formatField("Source", v.styles.SourceBadge(v.result.Source)),
		v.formatField("Match", fmt.Sprintf("%s %.1f%%", v.styles.ScoreBar(v.result.Score, scoreWidth), v.result.Score*100)),
	}

	optional := []struct{ label, value string }{
		{"Full name", e.FullName},
		{"Category", e.Category},
		{"Publisher", e.Publisher},
		{"Language", e.Language},
		{"URL", e.URL},
	}
	for _, f := range optional {
		if f.value != "" && f.value != e.Name {
			lines = append(lines, v.formatField(f.label, f.value))
		}
	}

	lines = append(lines,
		v.formatField("Rating", fmt.Sprintf("%.1f/5", e.Metrics.Rating)),
		v.formatField("Downloads", fmt.Sprintf("%d", e.Metrics.Downloads)))
	if e.Metrics.Stars > 0 {
		lines = append(lines, v.formatField("Stars", fmt.Sprintf("%d", e.Metrics.Stars)))
	}
	if e.Metrics.Rank > 0 {
		lines = append(lines, v.formatField("Rank", fmt.Sprintf("#%d", e.Metrics.Rank)))
	}
	if !e.LastUpdated.IsZero() {
		lines = append(lines, v.formatField("Updated", e.LastUpdated.Format(time.DateOnly)))
	}

	install := e.InstallRef
	if install == "" {
		install = "N/A"
	}
	lines = append(lines, v.formatField("Install", install))

	if e.Description != "" {
		lines = append(lines, "", "Description:")
		for _, l := range wrap(e.Description, max(v.width-4, 20)) {
			lines = append(lines, "  "+l)
		}
	}

	lines = appendList(lines, "Keywords:", e.Keywords)
	lines = appendList(lines, "Features:", e.Features)
	lines = appendList(lines, "Use cases:", e.UseCases)
	lines = appendList(lines, "Pros:", e.Pros)
	lines = appendList(lines, "Cons:", e.Cons)

	return lines
}

func appendList(lines []string, heading string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, "", heading)
	for _, item := range items {
		lines = append(lines, "  • "+item)
	}
	return lines
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var current []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(current) > 0 && len(current)+1+len(w) > width {
			lines = append(lines, string(current))
			current = nil
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-12s %s", label+":", value)
}

// View renders the detail view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Entry Details"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(v.width-4, 60)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.result == nil {
		b.WriteString(v.styles.Muted.Render("No entry selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	for i := v.scrollOffset; i < len(lines) && i < v.scrollOffset+visible; i++ {
		b.WriteString(v.renderLine(lines[i]))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1,
			min(v.scrollOffset+visible, len(lines)),
			len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderLine styles headings, list items and label/value fields.
func (v *View) renderLine(line string) string {
	switch {
	case line == "":
		return ""
	case strings.HasPrefix(line, "  "):
		return v.styles.Normal.Render(line)
	case strings.HasSuffix(line, ":"):
		return v.styles.Subtitle.Render(line)
	}

	label, value, ok := strings.Cut(line, ":")
	if !ok {
		return v.styles.Normal.Render(line)
	}
	return v.styles.Muted.Render(label+":") + v.styles.Normal.Render(value)
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Result returns the displayed result, or nil.
func (v *View) Result() *domain.ScoredResult {
	return v.result
}

// ScrollOffset returns the first visible content line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
