// Package categories provides the category browser view for the TUI.
package categories

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
)

// View lists categories with their entry counts.
type View struct {
	styles        *styles.Styles
	searchService driving.SearchService
	ctx           context.Context

	categories []domain.CategorySummary
	selected   int
	loading    bool
	width      int
	height     int
	ready      bool
	err        error
}

// NewView creates a new categories view.
func NewView(s *styles.Styles, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the category table.
func (v *View) Init() tea.Cmd {
	return v.loadCategories()
}

func (v *View) loadCategories() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.searchService == nil {
			return messages.CategoriesLoaded{Err: fmt.Errorf("search service not configured")}
		}
		cats, err := v.searchService.Categories(v.ctx)
		return messages.CategoriesLoaded{Categories: cats, Err: err}
	}
}

// Update handles messages for the categories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CategoriesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.categories = msg.Categories
			v.selected = 0
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.categories)-1 {
			v.selected++
		}
	case "r":
		return v, v.loadCategories()
	case "enter":
		if len(v.categories) == 0 {
			return v, nil
		}
		id := v.categories[v.selected].ID
		return v, func() tea.Msg {
			return messages.CategorySelected{ID: id}
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

// View renders the category list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Categories"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading categories..."))
		b.WriteString("\n")
	case len(v.categories) == 0:
		b.WriteString(v.styles.Muted.Render("No categories"))
		b.WriteString("\n")
	}

	visible := max(v.height-6, 1)
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := min(start+visible, len(v.categories))

	for i := start; i < end; i++ {
		c := v.categories[i]
		icon := c.Icon
		if icon == "" {
			icon = "•"
		}
		line := fmt.Sprintf("%s %s (%d)", icon, c.Name, c.Count)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [enter] browse  [r] reload  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Categories returns the loaded categories.
func (v *View) Categories() []domain.CategorySummary {
	return v.categories
}

// Selected returns the selected index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}
