// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// linesPerService is the height of one rendered entry.
const linesPerService = 3

// ServiceList displays catalog services in a navigable list.
type ServiceList struct {
	services []domain.Service
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewServiceList creates a new service list component.
func NewServiceList(s *styles.Styles) *ServiceList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ServiceList{
		styles: s,
		width:  80,
		height: 12,
	}
}

// Init initialises the list.
func (l *ServiceList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ServiceList) Update(msg tea.Msg) (*ServiceList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
		}
	}
	return l, nil
}

// View renders the visible window of services around the selection.
func (l *ServiceList) View() string {
	if len(l.services) == 0 {
		return l.styles.Muted.Render(domain.EmptyCatalogMessage)
	}

	visible := l.height / linesPerService
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.services) {
		end = len(l.services)
	}

	entries := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, l.renderService(i, l.services[i]))
	}
	return strings.Join(entries, "\n")
}

func (l *ServiceList) renderService(index int, svc domain.Service) string {
	indicator := "  "
	title := l.styles.Normal.Render(svc.Title)
	if index == l.selected {
		indicator = "> "
		title = l.styles.Selected.Render(svc.Title)
	}
	if svc.Popular {
		title += " " + l.styles.Badge.Render("Popular")
	}

	action := l.styles.Success.Render(svc.ActionLabel(false))
	if !svc.Available {
		action = l.styles.Muted.Render(svc.ActionLabel(false))
	}
	meta := fmt.Sprintf("    Takes %s · %s", svc.EstimatedTime, svc.Category.Label())

	description := svc.Description
	maxLen := l.width - 6
	if maxLen < 20 {
		maxLen = 20
	}
	if len(description) > maxLen {
		description = description[:maxLen-3] + "..."
	}

	return indicator + title + "  " + action + "\n" +
		l.styles.Muted.Render("    "+description) + "\n" +
		l.styles.Muted.Render(meta)
}

// SetServices replaces the list contents and resets the selection.
func (l *ServiceList) SetServices(services []domain.Service) {
	l.services = services
	l.selected = 0
}

// Services returns the listed services.
func (l *ServiceList) Services() []domain.Service {
	return l.services
}

// Selected returns the index of the selected service.
func (l *ServiceList) Selected() int {
	return l.selected
}

// SelectedService returns the highlighted service, or nil if the list is empty.
func (l *ServiceList) SelectedService() *domain.Service {
	if l.selected < 0 || l.selected >= len(l.services) {
		return nil
	}
	return &l.services[l.selected]
}

// MoveUp moves selection up.
func (l *ServiceList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ServiceList) MoveDown() {
	if l.selected < len(l.services)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *ServiceList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of services.
func (l *ServiceList) Count() int {
	return len(l.services)
}
