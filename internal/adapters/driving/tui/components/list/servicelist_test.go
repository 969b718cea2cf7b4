package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

func TestNewServiceList(t *testing.T) {
	l := NewServiceList(nil)

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.SelectedService())
	assert.Nil(t, l.Init())
}

func TestServiceList_EmptyView(t *testing.T) {
	l := NewServiceList(nil)
	assert.Contains(t, l.View(), "No services found matching your criteria")
}

func TestServiceList_Navigation(t *testing.T) {
	l := NewServiceList(nil)
	l.SetServices(domain.DefaultCatalog())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, l.Selected())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.NotNil(t, l.SelectedService())
	assert.Equal(t, "housing-benefit", l.SelectedService().ID)

	for range 20 {
		l.MoveDown()
	}
	assert.Equal(t, 8, l.Selected())
}

func TestServiceList_SetServicesResetsSelection(t *testing.T) {
	l := NewServiceList(nil)
	l.SetServices(domain.DefaultCatalog())
	l.MoveDown()

	l.SetServices(domain.DefaultCatalog()[:2])

	assert.Equal(t, 0, l.Selected())
	assert.Len(t, l.Services(), 2)
}

func TestServiceList_View(t *testing.T) {
	l := NewServiceList(nil)
	l.SetDimensions(120, 30)
	l.SetServices(domain.DefaultCatalog())

	view := l.View()

	assert.Contains(t, view, "> ")
	assert.Contains(t, view, "Apply for Universal Credit")
	assert.Contains(t, view, "Popular")
	assert.Contains(t, view, "Start application")
	assert.Contains(t, view, "Coming soon")
	assert.Contains(t, view, "Takes 30-45 minutes")
}

func TestServiceList_ViewScrollsToSelection(t *testing.T) {
	l := NewServiceList(nil)
	l.SetDimensions(120, 6)
	l.SetServices(domain.DefaultCatalog())

	for range 8 {
		l.MoveDown()
	}

	view := l.View()
	assert.Contains(t, view, "Apply for a Blue Badge")
	assert.NotContains(t, view, "Apply for Universal Credit")
}
