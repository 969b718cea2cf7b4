package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

func TestNewCatalogService_DefaultCatalog(t *testing.T) {
	service := NewCatalogService(nil)
	assert.Len(t, service.List(), 9)
}

func TestCatalogService_List_ReturnsCopy(t *testing.T) {
	service := NewCatalogService(nil)
	list := service.List()
	list[0].Title = "changed"
	assert.Equal(t, "Apply for Universal Credit", service.List()[0].Title)
}

func TestCatalogService_Get(t *testing.T) {
	service := NewCatalogService(nil)

	svc, err := service.Get("child-benefit")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFamily, svc.Category)

	_, err = service.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Browse(t *testing.T) {
	service := NewCatalogService(nil)

	tests := []struct {
		name     string
		term     string
		category domain.Category
		wantIDs  []string
		heading  string
	}{
		{
			name:     "child across all categories",
			term:     "Child",
			category: domain.CategoryAll,
			wantIDs:  []string{"child-benefit", "childcare-support"},
			heading:  "Search Results (2)",
		},
		{
			name:     "childcare within family",
			term:     "childcare",
			category: domain.CategoryFamily,
			wantIDs:  []string{"childcare-support"},
			heading:  "Search Results (1)",
		},
		{
			name:     "transport without term",
			category: domain.CategoryTransport,
			wantIDs:  []string{"blue-badge"},
			heading:  "Transport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := service.Browse(tt.term, tt.category)
			require.NoError(t, err)

			ids := make([]string, 0, len(page.Results))
			for _, s := range page.Results {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.heading, page.Heading)
		})
	}
}

func TestCatalogService_Browse_UnknownCategory(t *testing.T) {
	service := NewCatalogService(nil)

	_, err := service.Browse("", domain.Category("pets"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCatalogService_Categories(t *testing.T) {
	service := NewCatalogService(nil)
	counts := service.Categories()
	require.Len(t, counts, 6)
	assert.Equal(t, domain.CategoryAll, counts[0].Category)
	assert.Equal(t, 9, counts[0].Count)
}

func TestCatalogService_CustomCatalog(t *testing.T) {
	service := NewCatalogService([]domain.Service{
		{ID: "one", Title: "One", Category: domain.CategoryBenefits},
	})
	page, err := service.Browse("", domain.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, page.Results, 1)
	assert.Empty(t, page.Popular)
}
