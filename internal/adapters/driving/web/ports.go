package web

import (
	"net/http"

	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
)

// Ports holds the services the web server depends on.
type Ports struct {
	// Catalog serves the service catalog. Required.
	Catalog driving.CatalogService

	// Applications runs the application wizard. Required.
	Applications driving.ApplicationService

	// MCP is mounted at /mcp when set.
	MCP http.Handler
}

// Validate checks that all required ports are set.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Applications == nil {
		return ErrMissingApplicationService
	}
	return nil
}
