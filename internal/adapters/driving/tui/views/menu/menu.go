// Package menu provides the start screen: a live overview of the catalog
// above the top-level navigation.
package menu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driving"
)

// largest is how many categories the overview names.
const largest = 3

var errNoSearchService = errors.New("search service not configured")

// Item is a menu entry. Its binding activates it from anywhere in the menu.
type Item struct {
	Label   string
	Hint    string
	Binding key.Binding
	View    messages.ViewType
	Quit    bool
}

// overviewLoaded carries the category counts behind the overview.
type overviewLoaded struct {
	categories []domain.CategorySummary
	err        error
}

// View is the start screen.
type View struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	searchService driving.SearchService
	ctx           context.Context

	items    []Item
	selected int

	categories []domain.CategorySummary
	loading    bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates the menu. Nil styles or keymap use the defaults.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		searchService: searchService,
		ctx:           context.Background(),
		items: []Item{
			{Label: "Search", Hint: "rank servers and skills across every source", Binding: km.NewSearch, View: messages.ViewSearch},
			{Label: "Browse categories", Hint: "list categories with entry counts", Binding: km.Browse, View: messages.ViewCategories},
			{Label: "Help", Hint: "keys for every screen", Binding: km.Help, View: messages.ViewHelp},
			{Label: "Quit", Binding: km.Quit, Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used to load the overview.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the catalog overview.
func (v *View) Init() tea.Cmd {
	v.loading = true
	svc, ctx := v.searchService, v.ctx
	return func() tea.Msg {
		if svc == nil {
			return overviewLoaded{err: errNoSearchService}
		}
		cats, err := svc.Categories(ctx)
		return overviewLoaded{categories: cats, err: err}
	}
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)

	case overviewLoaded:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.categories = msg.categories
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Up):
			v.selected = max(v.selected-1, 0)
		case key.Matches(msg, v.keymap.Down):
			v.selected = min(v.selected+1, len(v.items)-1)
		case key.Matches(msg, v.keymap.Open):
			return v, v.activate(v.items[v.selected])
		default:
			for i, item := range v.items {
				if key.Matches(msg, item.Binding) {
					v.selected = i
					return v, v.activate(item)
				}
			}
		}
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: item.View}
	}
}

// View renders the overview and the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("capseek"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render("MCP server and skill catalog search"))
	b.WriteString("\n\n")
	b.WriteString(v.overview())
	b.WriteString("\n\n")

	for i, item := range v.items {
		label := fmt.Sprintf("%-18s", item.Label)
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(label))
		}
		if h := item.Binding.Help(); h.Key != "" {
			hint := "[" + h.Key + "]"
			if item.Hint != "" {
				hint += " " + item.Hint
			}
			b.WriteString(" " + v.styles.Muted.Render(hint))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.footer())
	return b.String()
}

func (v *View) overview() string {
	switch {
	case v.loading && v.categories == nil:
		return v.styles.Muted.Render("Counting catalog entries...")
	case v.err != nil:
		return v.styles.Error.Render("Catalog unavailable: " + v.err.Error())
	}

	total, filled := v.Totals()
	if total == 0 {
		return v.styles.Muted.Render("The catalog is empty")
	}

	lines := []string{
		v.styles.Subtitle.Render(fmt.Sprintf("%d entries in %d categories", total, filled)),
	}
	top := v.Largest()
	names := make([]string, len(top))
	for i, c := range top {
		label := c.Name
		if label == "" {
			label = c.ID
		}
		if c.Icon != "" {
			label = c.Icon + " " + label
		}
		names[i] = fmt.Sprintf("%s (%d)", label, c.Count)
	}
	lines = append(lines, v.styles.Normal.Render("Largest: "+strings.Join(names, ", ")))
	return strings.Join(lines, "\n")
}

func (v *View) footer() string {
	hints := v.keymap.Hints(keymap.ModeMenu)
	parts := make([]string, len(hints))
	for i, b := range hints {
		parts[i] = b.Help().Key + ": " + b.Help().Desc
	}
	return v.styles.Help.Render(strings.Join(parts, " | "))
}

// Totals returns the number of entries across all categories and the
// number of categories holding at least one entry.
func (v *View) Totals() (entries, categories int) {
	for _, c := range v.categories {
		entries += c.Count
		if c.Count > 0 {
			categories++
		}
	}
	return entries, categories
}

// Largest returns up to three non-empty categories by descending count,
// ties broken by ID.
func (v *View) Largest() []domain.CategorySummary {
	out := make([]domain.CategorySummary, 0, len(v.categories))
	for _, c := range v.categories {
		if c.Count > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > largest {
		out = out[:largest]
	}
	return out
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the highlighted item index.
func (v *View) Selected() int {
	return v.selected
}

// Err returns the error from the last overview load, if any.
func (v *View) Err() error {
	return v.err
}
