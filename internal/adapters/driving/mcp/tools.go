package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// SearchServicesInput is the input schema for the search_services tool.
type SearchServicesInput struct {
	Query    string `json:"query,omitempty" jsonschema:"case-insensitive text matched against service titles and descriptions"`
	Category string `json:"category,omitempty" jsonschema:"one of all, benefits, family, employment, education, transport (default all)"`
}

// ServiceOutput describes one catalog entry.
type ServiceOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Eligibility   string `json:"eligibility"`
	EstimatedTime string `json:"estimated_time"`
	Category      string `json:"category"`
	Popular       bool   `json:"popular"`
	Available     bool   `json:"available"`
}

// SearchServicesOutput is the output schema for the search_services tool.
type SearchServicesOutput struct {
	Heading  string          `json:"heading"`
	Services []ServiceOutput `json:"services"`
	Count    int             `json:"count"`
}

// GetServiceInput is the input schema for the get_service tool.
type GetServiceInput struct {
	ID string `json:"id" jsonschema:"the service identifier, e.g. universal-credit"`
}

// ListCategoriesInput is the (empty) input schema for the list_categories tool.
type ListCategoriesInput struct{}

// CategoryOutput is one category with its service count.
type CategoryOutput struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// ListCategoriesOutput is the output schema for the list_categories tool.
type ListCategoriesOutput struct {
	Categories []CategoryOutput `json:"categories"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_services",
		Description: "Search the government services catalog by text and category",
	}, s.handleSearchServices)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_service",
		Description: "Get the details of one government service",
	}, s.handleGetService)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_categories",
		Description: "List service categories with the number of services in each",
	}, s.handleListCategories)
}

// handleSearchServices handles the search_services tool invocation.
func (s *Server) handleSearchServices(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SearchServicesInput,
) (*mcp.CallToolResult, SearchServicesOutput, error) {
	category, err := domain.ParseCategory(input.Category)
	if err != nil {
		return nil, SearchServicesOutput{}, fmt.Errorf("category %q: %w", input.Category, err)
	}

	page, err := s.ports.Catalog.Browse(input.Query, category)
	if err != nil {
		return nil, SearchServicesOutput{}, err
	}

	output := SearchServicesOutput{
		Heading:  page.Heading,
		Services: make([]ServiceOutput, len(page.Results)),
		Count:    len(page.Results),
	}
	for i := range page.Results {
		output.Services[i] = toServiceOutput(page.Results[i])
	}

	return nil, output, nil
}

// handleGetService handles the get_service tool invocation.
func (s *Server) handleGetService(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetServiceInput,
) (*mcp.CallToolResult, ServiceOutput, error) {
	svc, err := s.ports.Catalog.Get(input.ID)
	if err != nil {
		return nil, ServiceOutput{}, err
	}
	return nil, toServiceOutput(*svc), nil
}

// handleListCategories handles the list_categories tool invocation.
func (s *Server) handleListCategories(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListCategoriesInput,
) (*mcp.CallToolResult, ListCategoriesOutput, error) {
	counts := s.ports.Catalog.Categories()
	output := ListCategoriesOutput{Categories: make([]CategoryOutput, len(counts))}
	for i, c := range counts {
		output.Categories[i] = CategoryOutput{
			Category: c.Category.String(),
			Label:    c.Label,
			Count:    c.Count,
		}
	}
	return nil, output, nil
}

func toServiceOutput(svc domain.Service) ServiceOutput {
	return ServiceOutput{
		ID:            svc.ID,
		Title:         svc.Title,
		Description:   svc.Description,
		Eligibility:   svc.Eligibility,
		EstimatedTime: svc.EstimatedTime,
		Category:      svc.Category.String(),
		Popular:       svc.Popular,
		Available:     svc.Available,
	}
}
