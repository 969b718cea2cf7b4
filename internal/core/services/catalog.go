package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
	"github.com/custodia-labs/benefits-portal/internal/logger"
	"github.com/custodia-labs/benefits-portal/internal/metrics"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves the static service catalog.
type CatalogService struct {
	services []domain.Service
}

// NewCatalogService creates a catalog service over the given entries.
// A nil slice selects the built-in catalog.
func NewCatalogService(services []domain.Service) *CatalogService {
	if services == nil {
		services = domain.DefaultCatalog()
	}
	return &CatalogService{services: services}
}

// List returns every service in display order.
func (s *CatalogService) List() []domain.Service {
	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// Get returns a single service by ID.
func (s *CatalogService) Get(id string) (*domain.Service, error) {
	svc, ok := domain.FindService(s.services, id)
	if !ok {
		return nil, fmt.Errorf("service %q: %w", id, domain.ErrNotFound)
	}
	return &svc, nil
}

// Browse filters the catalog and computes the landing page state.
func (s *CatalogService) Browse(term string, category domain.Category) (*domain.CatalogPage, error) {
	if !category.IsFilter() {
		return nil, fmt.Errorf("%w: %w %q", domain.ErrInvalidInput, domain.ErrUnknownCategory, category)
	}

	page := domain.BuildCatalogPage(s.services, term, category)
	metrics.CatalogSearches.WithLabelValues(category.String(), strconv.FormatBool(term != "")).Inc()
	logger.Debug("catalog browse term=%q category=%s results=%d", term, category, len(page.Results))
	return &page, nil
}

// Categories returns per-category counts over the whole catalog.
func (s *CatalogService) Categories() []domain.CategoryCount {
	return domain.CountByCategory(s.services)
}
