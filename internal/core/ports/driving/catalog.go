package driving

import "github.com/custodia-labs/benefits-portal/internal/core/domain"

// CatalogService exposes the service catalog.
type CatalogService interface {
	// List returns every service in display order.
	List() []domain.Service

	// Get returns a single service.
	// Returns domain.ErrNotFound for unknown IDs.
	Get(id string) (*domain.Service, error)

	// Browse filters the catalog and computes the landing page state.
	// Returns domain.ErrInvalidInput for an unknown category.
	Browse(term string, category domain.Category) (*domain.CatalogPage, error)

	// Categories returns per-category counts over the whole catalog.
	Categories() []domain.CategoryCount
}
