package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/views/articles"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/views/claims"
	"github.com/custodia-labs/wikifinder/internal/adapters/driving/tui/views/sourcedetail"
	"github.com/custodia-labs/wikifinder/internal/core/domain"
)

// App is the report browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// report is the result set being browsed.
	report *domain.Report

	// styles holds the TUI styles.
	styles *styles.Styles

	// statusBar shows state and keybinding hints.
	statusBar *status.Bar

	// articlesView lists the report's articles.
	articlesView *articles.View

	// claimsView lists the selected article's claims.
	claimsView *claims.View

	// sourcesView lists the selected claim's candidate sources.
	sourcesView *sourcedetail.View

	// currentView tracks which view is active.
	currentView messages.ViewType

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

// NewApp creates a new report browser over the given report.
func NewApp(ports *Ports, report *domain.Report) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if report == nil {
		return nil, ErrMissingReport
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		report:       report,
		styles:       s,
		statusBar:    status.NewBar(s, keymap.DefaultKeyMap()),
		articlesView: articles.NewView(s, report.Articles),
		claimsView:   claims.NewView(s),
		sourcesView:  sourcedetail.NewView(s, ports.ResultAction),
		currentView:  messages.ViewArticles,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("wikifinder - Report Browser"),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.statusBar.SetWidth(msg.Width)
		a.articlesView.SetDimensions(msg.Width, msg.Height)
		a.claimsView.SetDimensions(msg.Width, msg.Height)
		a.sourcesView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ArticleSelected:
		a.claimsView.SetArticle(msg.Article)
		a.currentView = messages.ViewClaims
		return a, a.claimsView.Init()

	case messages.ClaimSelected:
		a.sourcesView.SetClaim(msg.Claim)
		a.currentView = messages.ViewSources
		return a, a.sourcesView.Init()

	case messages.CitationCopied:
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage("clipboard unavailable")
		} else {
			a.statusBar.SetState(status.StateCopied)
			a.statusBar.SetMessage("")
		}
		return a, nil

	case messages.URLOpened:
		if msg.Err != nil {
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage("could not open browser")
		} else {
			a.statusBar.Clear()
			a.statusBar.SetMessage("Opened " + msg.URL)
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewArticles:
		a.articlesView, cmd = a.articlesView.Update(msg)
	case messages.ViewClaims:
		a.claimsView, cmd = a.claimsView.Update(msg)
	case messages.ViewSources:
		a.sourcesView, cmd = a.sourcesView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't handle other messages
	}

	return a, cmd
}

// handleKeyMsg routes key presses to global bindings then the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "?":
		if a.currentView != messages.ViewHelp {
			a.currentView = messages.ViewHelp
			a.statusBar.SetState(status.StateHelp)
			return a, nil
		}
	}

	// New key press clears a stale copy/error notice
	if msg.String() != "c" && msg.String() != "o" {
		a.statusBar.Clear()
	}

	switch a.currentView {
	case messages.ViewArticles:
		a.articlesView, cmd = a.articlesView.Update(msg)
		return a, cmd

	case messages.ViewClaims:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewArticles
			return a, nil
		}
		a.claimsView, cmd = a.claimsView.Update(msg)
		return a, cmd

	case messages.ViewSources:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewClaims
			return a, nil
		}
		a.sourcesView, cmd = a.sourcesView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewArticles
			a.statusBar.Clear()
			return a, nil
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewArticles:
		body = a.articlesView.View()
	case messages.ViewClaims:
		body = a.claimsView.View()
	case messages.ViewSources:
		body = a.sourcesView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.articlesView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  j/k, ↑/↓    Move selection
  enter       Open selected article or claim
  esc         Back to the previous level
  ctrl+c, q   Quit

Sources:
  c           Copy the citation fragment to the clipboard
  o           Open the source URL in the default browser

[esc] back to articles`
}

// Run starts the report browser.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Report returns the report being browsed.
func (a *App) Report() *domain.Report {
	return a.report
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
	a.statusBar.SetWidth(width)
	a.articlesView.SetDimensions(width, height)
	a.claimsView.SetDimensions(width, height)
	a.sourcesView.SetDimensions(width, height)
}
