package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/views/catalog"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/views/wizard"
	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// windowTitle is shown in the terminal title bar.
const windowTitle = "GOV.UK - Apply for Benefits and Support"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// catalogView is the landing page with search and category filters.
	catalogView *catalog.View

	// wizardView runs the application steps.
	wizardView *wizard.View

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

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingCatalogService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		catalogView: catalog.NewView(s, km, ports.Catalog, ports.Applications),
		wizardView:  wizard.NewView(s, km, ports.Applications),
		currentView: messages.ViewCatalog,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.catalogView.WithContext(ctx)
	a.wizardView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle(windowTitle),
		a.catalogView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forward(msg)

	case messages.CatalogLoaded:
		a.catalogView, cmd = a.catalogView.Update(msg)
		return a, cmd

	case messages.ApplicationStarted:
		if msg.Err != nil {
			a.err = msg.Err
			logger.Warn("start application: %v", msg.Err)
			a.catalogView, cmd = a.catalogView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.err = nil
		a.currentView = messages.ViewWizard
		return a, a.wizardView.Start(msg.Session, a.serviceTitle(msg.Session.ServiceID))

	case messages.SessionUpdated:
		if msg.Err != nil {
			a.err = msg.Err
		}
		a.wizardView, cmd = a.wizardView.Update(msg)
		return a, cmd

	case messages.ApplicationExited:
		if msg.Err != nil {
			// The session is gone from the user's point of view either way.
			logger.Warn("exit application: %v", msg.Err)
		}
		a.wizardView.Reset()
		a.currentView = messages.ViewCatalog
		return a, a.catalogView.Reset()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCatalog {
			return a, a.catalogView.Refresh()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewWizard:
		a.wizardView, cmd = a.wizardView.Update(msg)
	default:
		a.catalogView, cmd = a.catalogView.Update(msg)
	}
	return cmd
}

func (a *App) serviceTitle(serviceID string) string {
	svc, err := a.ports.Catalog.Get(serviceID)
	if err != nil {
		return serviceID
	}
	return svc.Title
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewWizard:
		return a.wizardView.View()
	default:
		return a.catalogView.View()
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Catalog returns the catalog view.
func (a *App) Catalog() *catalog.View {
	return a.catalogView
}

// Wizard returns the wizard view.
func (a *App) Wizard() *wizard.View {
	return a.wizardView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.catalogView.SetDimensions(width, height)
	a.wizardView.SetDimensions(width, height)
}
