// Package styles provides the colour palette and lipgloss styles for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/capseek/internal/core/domain"
)

// Score thresholds for the match colours of a score bar.
const (
	strongMatch = 0.7
	fairMatch   = 0.4
)

// Theme is the palette the TUI draws with.
type Theme struct {
	// Accent colours titles and the selection bar.
	Accent lipgloss.Color

	// Secondary colours headings and category tags.
	Secondary lipgloss.Color

	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// Frame colours the input border and the empty cells of a score bar.
	Frame lipgloss.Color

	// StatusBackground fills the status bar.
	StatusBackground lipgloss.Color

	// StrongMatch, FairMatch and WeakMatch fill a score bar by relevance.
	StrongMatch lipgloss.Color
	FairMatch   lipgloss.Color
	WeakMatch   lipgloss.Color

	// Sources gives every catalog source its own badge colour, so a merged
	// result list shows at a glance where each entry came from.
	Sources map[domain.Source]lipgloss.Color
}

// DefaultTheme returns the default palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:           lipgloss.Color("#7C3AED"),
		Secondary:        lipgloss.Color("#06B6D4"),
		Text:             lipgloss.Color("#CDD6F4"),
		Muted:            lipgloss.Color("#6C7086"),
		Warning:          lipgloss.Color("#F9E2AF"),
		Error:            lipgloss.Color("#F38BA8"),
		Frame:            lipgloss.Color("#45475A"),
		StatusBackground: lipgloss.Color("#181825"),
		StrongMatch:      lipgloss.Color("#A6E3A1"),
		FairMatch:        lipgloss.Color("#F9E2AF"),
		WeakMatch:        lipgloss.Color("#FAB387"),
		Sources: map[domain.Source]lipgloss.Color{
			domain.SourceLocal:       lipgloss.Color("#94E2D5"),
			domain.SourceOfficial:    lipgloss.Color("#A6E3A1"),
			domain.SourceCommunity:   lipgloss.Color("#89B4FA"),
			domain.SourceGitHub:      lipgloss.Color("#CBA6F7"),
			domain.SourceSkillsIndex: lipgloss.Color("#F5C2E7"),
		},
	}
}

// SourceColor returns the badge colour of src, or Muted for sources
// the palette does not know.
func (t *Theme) SourceColor(src domain.Source) lipgloss.Color {
	if c, ok := t.Sources[src]; ok {
		return c
	}
	return t.Muted
}

// MatchColor returns the score bar colour for a score in [0, 1].
func (t *Theme) MatchColor(score float64) lipgloss.Color {
	switch {
	case score >= strongMatch:
		return t.StrongMatch
	case score >= fairMatch:
		return t.FairMatch
	default:
		return t.WeakMatch
	}
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style

	// Badge renders category tags.
	Badge lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := lipgloss.NewStyle().Foreground(theme.Text)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)

	return &Styles{
		theme:    theme,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   text,
		Muted:    muted,
		Selected: text.Bold(true).Background(theme.Accent),
		Error:    lipgloss.NewStyle().Foreground(theme.Error),
		Warning:  lipgloss.NewStyle().Foreground(theme.Warning),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Frame).
			Padding(0, 1),
		StatusBar: muted.Background(theme.StatusBackground).Padding(0, 1),
		Help:      muted,
		Badge:     lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// SourceBadge renders the icon and name of src in its badge colour.
func (s *Styles) SourceBadge(src domain.Source) string {
	return lipgloss.NewStyle().
		Foreground(s.theme.SourceColor(src)).
		Render(src.Icon() + " " + string(src))
}

// CategoryTag renders a category ID as a "#id" tag, or "" when id is empty.
func (s *Styles) CategoryTag(id string) string {
	if id == "" {
		return ""
	}
	return s.Badge.Render("#" + id)
}

// ScoreBar renders score in [0, 1] as width cells. The filled cells take
// the match colour of the score.
func (s *Styles) ScoreBar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := max(0, min(int(score*float64(width)), width))
	fill := lipgloss.NewStyle().Foreground(s.theme.MatchColor(score))
	empty := lipgloss.NewStyle().Foreground(s.theme.Frame)
	return fill.Render(strings.Repeat("█", filled)) +
		empty.Render(strings.Repeat("░", width-filled))
}
