package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/views/categories"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/capseek/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/capseek/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap is shared by every view and drives the help page.
	keymap *keymap.KeyMap

	// menuView is the main navigation menu.
	menuView *menu.View

	// searchView is the search input and ranked results.
	searchView *search.View

	// categoriesView lists categories with entry counts.
	categoriesView *categories.View

	// detailView shows one selected entry.
	detailView *detail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// query mirrors the search input.
	query string

	// results holds the current search results.
	results []domain.ScoredResult

	// selectedIndex is the currently selected result.
	selectedIndex int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		menuView:       menu.NewView(s, km, ports.Search),
		searchView:     search.NewView(s, km, ports.Search),
		categoriesView: categories.NewView(s, ports.Search),
		detailView:     detail.NewView(s),
		currentView:    messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.menuView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.categoriesView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("capseek - MCP & skill search"),
		a.menuView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.searchView.SetDimensions(msg.Width, msg.Height)
		a.categoriesView.SetDimensions(msg.Width, msg.Height)
		a.detailView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
			a.syncSearchState()
			return a, cmd

		case messages.ViewCategories:
			a.categoriesView, cmd = a.categoriesView.Update(msg)
			return a, cmd

		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if key.Matches(msg, a.keymap.Back) {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.syncSearchState()
		a.selectedIndex = 0
		return a, cmd

	case messages.ResultSelected:
		a.detailView.SetResult(msg.Result)
		a.currentView = messages.ViewDetail
		return a, nil

	case messages.CategoriesLoaded:
		a.categoriesView, cmd = a.categoriesView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, cmd

	case messages.CategorySelected:
		a.searchView.Reset()
		a.currentView = messages.ViewSearch
		return a, a.searchView.BrowseCategory(msg.ID)

	case messages.ViewChanged:
		// Returning to search from the detail view keeps the results.
		from := a.currentView
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			if from == messages.ViewDetail {
				return a, nil
			}
			a.searchView.Reset()
			a.syncSearchState()
			return a, a.searchView.Init()
		case messages.ViewCategories:
			return a, a.categoriesView.Init()
		case messages.ViewMenu:
			// Counts may have changed while the user was away.
			return a, a.menuView.Init()
		case messages.ViewHelp, messages.ViewDetail:
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewDetail:
			a.detailView, cmd = a.detailView.Update(msg)
		case messages.ViewMenu, messages.ViewCategories, messages.ViewHelp:
			// Other views don't handle error messages
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewCategories:
		a.categoriesView, cmd = a.categoriesView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// syncSearchState copies accessor state from the search view.
func (a *App) syncSearchState() {
	a.query = a.searchView.Query()
	a.results = a.searchView.Results()
	a.selectedIndex = a.searchView.SelectedIndex()
	a.err = a.searchView.Err()
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewCategories:
		return a.categoriesView.View()
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help page from the keymap sections.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n")
	for _, section := range a.keymap.Sections() {
		b.WriteString("\n")
		b.WriteString(a.styles.Subtitle.Render(section.Title))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("ctrl+c quits from any screen, esc returns to the menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.query
}

// Results returns the current search results.
func (a *App) Results() []domain.ScoredResult {
	return a.results
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.selectedIndex
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.categoriesView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
}
