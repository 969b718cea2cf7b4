package mcp

import (
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	services []domain.Service
	service  *domain.Service
	page     *domain.CatalogPage
	counts   []domain.CategoryCount
	err      error

	lastTerm     string
	lastCategory domain.Category
}

func (m *mockCatalogService) List() []domain.Service {
	return m.services
}

func (m *mockCatalogService) Get(_ string) (*domain.Service, error) {
	return m.service, m.err
}

func (m *mockCatalogService) Browse(term string, category domain.Category) (*domain.CatalogPage, error) {
	m.lastTerm = term
	m.lastCategory = category
	return m.page, m.err
}

func (m *mockCatalogService) Categories() []domain.CategoryCount {
	return m.counts
}
