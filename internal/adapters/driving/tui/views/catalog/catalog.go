// Package catalog provides the service search view for the TUI.
package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
)

// View is the landing view: search box, category chips and the service list.
// Results refresh on every keystroke.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Input
	list      *list.ServiceList
	statusbar *status.Bar

	catalogService     driving.CatalogService
	applicationService driving.ApplicationService
	ctx                context.Context

	categories    []domain.Category
	categoryIndex int
	page          *domain.CatalogPage

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new catalog view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalogService driving.CatalogService,
	applicationService driving.ApplicationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.CatalogHelp())

	return &View{
		styles:             s,
		keymap:             km,
		input:              input.NewSearchInput(s),
		list:               list.NewServiceList(s),
		statusbar:          bar,
		catalogService:     catalogService,
		applicationService: applicationService,
		ctx:                context.Background(),
		categories:         domain.AllCategories(),
		width:              80,
		height:             24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the unfiltered catalog.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.browse())
}

// Update handles messages for the catalog view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CatalogLoaded:
		v.handleCatalogLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.NextCategory):
		v.categoryIndex = (v.categoryIndex + 1) % len(v.categories)
		return v, v.browse()

	case keymap.Matches(keyStr, v.keymap.PrevCategory):
		v.categoryIndex = (v.categoryIndex + len(v.categories) - 1) % len(v.categories)
		return v, v.browse()

	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		return v, v.startSelected()

	case keymap.Matches(keyStr, v.keymap.Back):
		// Esc clears the search first, then quits.
		if v.input.Value() != "" {
			v.input.SetValue("")
			return v, v.browse()
		}
		return v, func() tea.Msg { return messages.Quit{} }
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.browse())
	}
	return v, cmd
}

// startSelected opens an application for the highlighted service.
func (v *View) startSelected() tea.Cmd {
	svc := v.list.SelectedService()
	if svc == nil {
		return nil
	}
	if !svc.Available {
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage(svc.Title + " is coming soon")
		return nil
	}

	id := svc.ID
	return func() tea.Msg {
		if v.applicationService == nil {
			return messages.ApplicationStarted{Err: ErrNoApplicationService}
		}
		session, err := v.applicationService.Start(v.ctx, id)
		return messages.ApplicationStarted{Session: session, Err: err}
	}
}

// Refresh requests the catalog page for the current term and category.
func (v *View) Refresh() tea.Cmd {
	return v.browse()
}

// browse requests the catalog page for the current term and category.
func (v *View) browse() tea.Cmd {
	term := v.input.Value()
	category := v.Category()
	return func() tea.Msg {
		if v.catalogService == nil {
			return messages.CatalogLoaded{Err: ErrNoCatalogService}
		}
		page, err := v.catalogService.Browse(term, category)
		return messages.CatalogLoaded{Page: page, Err: err}
	}
}

func (v *View) handleCatalogLoaded(msg messages.CatalogLoaded) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	// Drop pages for a term or filter that has since changed.
	if msg.Page.Term != v.input.Value() || msg.Page.Category != v.Category() {
		return
	}

	v.err = nil
	v.page = msg.Page
	v.list.SetServices(msg.Page.Results)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetMessage(msg.Page.Heading)
	v.statusbar.SetResultCount(len(msg.Page.Results))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the catalog view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 16)
	sections = append(sections,
		v.styles.Title.Render("GOV.UK"),
		v.styles.Subtitle.Render("Apply for Benefits and Support"),
		v.styles.Muted.Render("Get financial support when you need it most · Secure and confidential"),
		"",
		v.input.View(),
		"",
		v.renderChips(),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.page != nil {
		if v.page.ShowPopular {
			titles := make([]string, 0, len(v.page.Popular))
			for _, p := range v.page.Popular {
				titles = append(titles, p.Title)
			}
			sections = append(sections,
				v.styles.Subtitle.Render(domain.PopularHeading),
				v.styles.Muted.Render(strings.Join(titles, " · ")),
				"",
			)
		}
		sections = append(sections, v.styles.Title.Render(v.page.Heading))
		if v.page.Empty {
			sections = append(sections,
				v.styles.Muted.Render(domain.EmptyCatalogMessage),
				v.styles.Muted.Render(domain.ClearFiltersLabel+" (esc, then tab to All Services)"),
			)
		} else {
			sections = append(sections, v.list.View())
		}
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderChips() string {
	var counts []domain.CategoryCount
	if v.page != nil {
		counts = v.page.Counts
	} else if v.catalogService != nil {
		counts = v.catalogService.Categories()
	}

	current := v.Category()
	chips := make([]string, 0, len(counts))
	for _, c := range counts {
		label := fmt.Sprintf("%s (%d)", c.Label, c.Count)
		if c.Category == current {
			chips = append(chips, v.styles.ChipSelected.Render(label))
		} else {
			chips = append(chips, v.styles.Chip.Render(label))
		}
	}
	return strings.Join(chips, " ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	// Reserve space for header, search, chips and status bar.
	v.list.SetDimensions(width, height-16)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search term.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the search term without refreshing results.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Category returns the selected category filter.
func (v *View) Category() domain.Category {
	return v.categories[v.categoryIndex]
}

// Page returns the last loaded catalog page.
func (v *View) Page() *domain.CatalogPage {
	return v.page
}

// SelectedService returns the highlighted service.
func (v *View) SelectedService() *domain.Service {
	return v.list.SelectedService()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the search and filter and reloads the catalog.
func (v *View) Reset() tea.Cmd {
	v.input.Reset()
	v.categoryIndex = 0
	v.err = nil
	v.statusbar.Clear()
	return tea.Batch(v.input.Focus(), v.browse())
}
