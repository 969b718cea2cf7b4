package domain

import (
	"fmt"
	"strings"
)

// Messages shown on the catalog page.
const (
	EmptyCatalogMessage = "No services found matching your criteria"
	ClearFiltersLabel   = "Clear filters and show all services"
	PopularHeading      = "Popular Services"
)

// Matches reports whether the service passes the search term and category predicates.
// The term is matched case-insensitively against title and description without
// trimming; an empty term matches everything. CategoryAll matches every category.
func (s Service) Matches(term string, category Category) bool {
	if category != CategoryAll && s.Category != category {
		return false
	}
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Description), needle)
}

// FilterServices returns the ordered subsequence of services matching the term and category.
// The result never aliases the input slice.
func FilterServices(services []Service, term string, category Category) []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if s.Matches(term, category) {
			out = append(out, s)
		}
	}
	return out
}

// CatalogPage is the computed state of the landing page for one filter selection.
type CatalogPage struct {
	// Term is the search term as entered.
	Term string `json:"term"`

	// Category is the selected filter value.
	Category Category `json:"category"`

	// Heading is the title above the results grid.
	Heading string `json:"heading"`

	// ShowPopular is true when no filter is active.
	ShowPopular bool `json:"show_popular"`

	// Popular lists popular services when ShowPopular is set.
	Popular []Service `json:"popular,omitempty"`

	// Results are the filtered services in catalog order.
	Results []Service `json:"results"`

	// Counts are the per-category counts over the whole catalog.
	Counts []CategoryCount `json:"counts"`

	// Empty is true when no service matches.
	Empty bool `json:"empty"`
}

// BuildCatalogPage filters the catalog and derives the landing page presentation.
func BuildCatalogPage(services []Service, term string, category Category) CatalogPage {
	results := FilterServices(services, term, category)
	page := CatalogPage{
		Term:        term,
		Category:    category,
		Heading:     catalogHeading(term, category, len(results)),
		ShowPopular: category == CategoryAll && term == "",
		Results:     results,
		Counts:      CountByCategory(services),
		Empty:       len(results) == 0,
	}
	if page.ShowPopular {
		page.Popular = PopularServices(services)
	}
	return page
}

func catalogHeading(term string, category Category, n int) string {
	if term != "" {
		return fmt.Sprintf("Search Results (%d)", n)
	}
	if category != CategoryAll {
		return category.Label()
	}
	return CategoryAll.Label()
}

// ActionLabel returns the call-to-action text for a service card.
// Cards in the Popular section use a shorter label.
func (s Service) ActionLabel(popularSection bool) string {
	if !s.Available {
		return "Coming soon"
	}
	if popularSection {
		return "Start now"
	}
	return "Start application"
}
