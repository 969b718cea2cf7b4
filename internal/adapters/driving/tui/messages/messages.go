// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCatalog is the service search and category view.
	ViewCatalog ViewType = iota
	// ViewWizard is the application wizard.
	ViewWizard
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCatalog:
		return "catalog"
	case ViewWizard:
		return "wizard"
	default:
		return "unknown"
	}
}

// CatalogLoaded carries the catalog page for the current search and category.
type CatalogLoaded struct {
	Page *domain.CatalogPage
	Err  error
}

// ApplicationStarted carries the session opened for a service.
type ApplicationStarted struct {
	Session *domain.Session
	Err     error
}

// SessionUpdated carries the session after a wizard transition.
type SessionUpdated struct {
	Session *domain.Session
	Err     error
}

// ApplicationExited signals the wizard session was abandoned or finished.
type ApplicationExited struct {
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
