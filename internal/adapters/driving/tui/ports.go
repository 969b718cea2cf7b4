// Package tui provides an interactive terminal interface for browsing the
// service catalog and completing an application.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog serves the service catalog.
	Catalog driving.CatalogService

	// Applications runs the application wizard.
	Applications driving.ApplicationService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(catalog driving.CatalogService, applications driving.ApplicationService) *Ports {
	return &Ports{
		Catalog:      catalog,
		Applications: applications,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Applications == nil {
		return ErrMissingApplicationService
	}
	return nil
}
