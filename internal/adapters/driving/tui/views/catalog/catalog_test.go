package catalog

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/services"
)

// MockApplicationService implements driving.ApplicationService for testing.
type MockApplicationService struct {
	StartFunc func(ctx context.Context, serviceID string) (*domain.Session, error)
}

func (m *MockApplicationService) Start(ctx context.Context, serviceID string) (*domain.Session, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, serviceID)
	}
	return &domain.Session{ID: "s1", ServiceID: serviceID, Step: domain.StepPersonalDetails}, nil
}

func (m *MockApplicationService) Get(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (m *MockApplicationService) UpdateField(context.Context, string, domain.Field, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (m *MockApplicationService) Next(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (m *MockApplicationService) Previous(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrSessionNotFound
}

func (m *MockApplicationService) Exit(context.Context, string) error {
	return nil
}

func (m *MockApplicationService) Receipts(context.Context) ([]domain.Receipt, error) {
	return nil, nil
}

func newTestView() *View {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), services.NewCatalogService(nil), &MockApplicationService{})
	v.SetDimensions(120, 60)
	return v
}

// load runs a refresh and feeds the result back into the view.
func load(t *testing.T, v *View) {
	t.Helper()
	msg := v.Refresh()()
	_, ok := msg.(messages.CatalogLoaded)
	require.True(t, ok, "expected CatalogLoaded, got %T", msg)
	v.Update(msg)
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressKey(v *View, keyType tea.KeyType) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func resultIDs(v *View) []string {
	ids := make([]string, 0, len(v.Page().Results))
	for _, s := range v.Page().Results {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Equal(t, domain.CategoryAll, v.Category())
	assert.Nil(t, v.Page())
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
}

func TestView_WithContext(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("k"), "v")

	assert.Equal(t, v, v.WithContext(ctx))
	assert.Equal(t, ctx, v.ctx)
}

func TestView_Init(t *testing.T) {
	v := newTestView()
	assert.NotNil(t, v.Init())
}

func TestView_InitialLoad(t *testing.T) {
	v := newTestView()

	load(t, v)

	require.NotNil(t, v.Page())
	assert.Len(t, v.Page().Results, 9)
	assert.True(t, v.Page().ShowPopular)

	view := v.View()
	assert.Contains(t, view, "GOV.UK")
	assert.Contains(t, view, "Apply for Benefits and Support")
	assert.Contains(t, view, "All Services (9)")
	assert.Contains(t, view, "Popular Services")
}

func TestView_SearchChild(t *testing.T) {
	v := newTestView()
	load(t, v)

	typeText(v, "Child")
	load(t, v)

	assert.Equal(t, "Child", v.Query())
	assert.Equal(t, []string{"child-benefit", "childcare-support"}, resultIDs(v))
	assert.Equal(t, "Search Results (2)", v.Page().Heading)
	assert.Contains(t, v.View(), "Search Results (2)")
}

func TestView_TabCyclesCategories(t *testing.T) {
	v := newTestView()
	load(t, v)

	cmd := pressKey(v, tea.KeyTab)
	assert.Equal(t, domain.CategoryBenefits, v.Category())
	require.NotNil(t, cmd)
	v.Update(cmd())
	assert.Equal(t, "Benefits & Support", v.Page().Heading)

	pressKey(v, tea.KeyShiftTab)
	pressKey(v, tea.KeyShiftTab)
	assert.Equal(t, domain.CategoryTransport, v.Category())

	pressKey(v, tea.KeyTab)
	assert.Equal(t, domain.CategoryAll, v.Category())
}

func TestView_SearchWithinCategory(t *testing.T) {
	v := newTestView()
	typeText(v, "childcare")
	pressKey(v, tea.KeyTab)
	pressKey(v, tea.KeyTab)
	require.Equal(t, domain.CategoryFamily, v.Category())

	load(t, v)

	assert.Equal(t, []string{"childcare-support"}, resultIDs(v))
}

func TestView_NoResults(t *testing.T) {
	v := newTestView()
	typeText(v, "zzzz")
	load(t, v)

	assert.True(t, v.Page().Empty)
	assert.Contains(t, v.View(), "No services found matching your criteria")
}

func TestView_DropsStalePages(t *testing.T) {
	v := newTestView()
	stale := v.Refresh()()

	typeText(v, "blue")
	v.Update(stale)

	assert.Nil(t, v.Page())
}

func TestView_Navigation(t *testing.T) {
	v := newTestView()
	load(t, v)

	pressKey(v, tea.KeyDown)
	pressKey(v, tea.KeyDown)
	require.NotNil(t, v.SelectedService())
	assert.Equal(t, "council-tax-support", v.SelectedService().ID)

	pressKey(v, tea.KeyUp)
	assert.Equal(t, "housing-benefit", v.SelectedService().ID)
}

func TestView_EnterStartsAvailableService(t *testing.T) {
	v := newTestView()
	load(t, v)

	cmd := pressKey(v, tea.KeyEnter)

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ApplicationStarted)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, domain.UniversalCreditID, msg.Session.ServiceID)
}

func TestView_EnterOnComingSoonService(t *testing.T) {
	v := newTestView()
	load(t, v)
	pressKey(v, tea.KeyDown)

	cmd := pressKey(v, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "Apply for Housing Benefit is coming soon", v.StatusMessage())
}

func TestView_EnterPropagatesStartError(t *testing.T) {
	app := &MockApplicationService{
		StartFunc: func(context.Context, string) (*domain.Session, error) {
			return nil, errors.New("store down")
		},
	}
	v := NewView(nil, nil, services.NewCatalogService(nil), app)
	v.SetDimensions(120, 60)
	load(t, v)

	msg := pressKey(v, tea.KeyEnter)()

	started, ok := msg.(messages.ApplicationStarted)
	require.True(t, ok)
	assert.EqualError(t, started.Err, "store down")
}

func TestView_MissingServices(t *testing.T) {
	v := NewView(nil, nil, nil, nil)
	v.SetDimensions(80, 24)

	loaded, ok := v.Refresh()().(messages.CatalogLoaded)
	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoCatalogService)

	v.Update(loaded)
	assert.ErrorIs(t, v.Err(), ErrNoCatalogService)
	assert.Contains(t, v.View(), "catalog service is required")
}

func TestView_EscClearsThenQuits(t *testing.T) {
	v := newTestView()
	typeText(v, "bus")

	cmd := pressKey(v, tea.KeyEsc)
	assert.Empty(t, v.Query())
	require.NotNil(t, cmd)
	_, ok := cmd().(messages.CatalogLoaded)
	assert.True(t, ok)

	cmd = pressKey(v, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.Quit{}, cmd())
}

func TestView_ErrorOccurred(t *testing.T) {
	v := newTestView()

	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
	assert.Equal(t, "boom", v.StatusMessage())
}

func TestView_Reset(t *testing.T) {
	v := newTestView()
	typeText(v, "child")
	pressKey(v, tea.KeyTab)

	cmd := v.Reset()

	assert.NotNil(t, cmd)
	assert.Empty(t, v.Query())
	assert.Equal(t, domain.CategoryAll, v.Category())
}

func TestView_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, nil)

	v.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.True(t, v.Ready())
	assert.Equal(t, 100, v.width)
}
